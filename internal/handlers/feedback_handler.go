package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/odfbarbers/booking-api/internal/audit"
	"github.com/odfbarbers/booking-api/internal/httperr"
	"github.com/odfbarbers/booking-api/internal/httpresp"
	"github.com/odfbarbers/booking-api/internal/models"
)

type FeedbackHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewFeedbackHandler(db *gorm.DB, audit *audit.Dispatcher) *FeedbackHandler {
	return &FeedbackHandler{db: db, audit: audit}
}

func (h *FeedbackHandler) List(c *gin.Context) {
	var feedback []models.Feedback
	if err := h.db.Order("created_at DESC").Find(&feedback).Error; err != nil {
		httperr.Internal(c, "failed_to_list_feedback", "Could not load feedback.")
		return
	}
	httpresp.List(c, feedback)
}

func (h *FeedbackHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Feedback id must be numeric.")
		return
	}
	fbID := uint(id)

	res := h.db.Delete(&models.Feedback{}, fbID)
	if res.Error != nil {
		httperr.Internal(c, "failed_to_delete_feedback", "Could not delete feedback.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "feedback_not_found", "Feedback not found.")
		return
	}

	h.audit.Dispatch(audit.Event{
		Actor:    actor(c),
		Action:   "feedback_deleted",
		Entity:   "feedback",
		EntityID: &fbID,
	})

	c.Status(204)
}
