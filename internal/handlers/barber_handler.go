package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/odfbarbers/booking-api/internal/audit"
	"github.com/odfbarbers/booking-api/internal/httperr"
	"github.com/odfbarbers/booking-api/internal/httpresp"
	"github.com/odfbarbers/booking-api/internal/models"
	"github.com/odfbarbers/booking-api/internal/validators"
)

type BarberHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewBarberHandler(db *gorm.DB, audit *audit.Dispatcher) *BarberHandler {
	return &BarberHandler{db: db, audit: audit}
}

// --------- Requests ---------

type BarberRequest struct {
	Name         string `json:"name" binding:"required"`
	Email        string `json:"email" binding:"required"`
	Phone        string `json:"phone" binding:"required"`
	Bio          string `json:"bio"`
	ProfileImage string `json:"profile_image"`
}

func (r BarberRequest) validate() map[string]string {
	problems := map[string]string{}
	if !validators.IsValidEmail(r.Email) {
		problems["email"] = "invalid format"
	}
	if !validators.IsValidPhone(r.Phone) {
		problems["phone"] = "invalid format"
	}
	if len(problems) == 0 {
		return nil
	}
	return problems
}

// --------- Handlers ---------

func (h *BarberHandler) List(c *gin.Context) {
	var barbers []models.Barber
	if err := h.db.Order("name ASC").Find(&barbers).Error; err != nil {
		httperr.Internal(c, "failed_to_list_barbers", "Could not load barbers.")
		return
	}
	httpresp.List(c, barbers)
}

func (h *BarberHandler) Create(c *gin.Context) {
	var req BarberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Name, email and phone are required.")
		return
	}
	if problems := req.validate(); problems != nil {
		httperr.Validation(c, problems)
		return
	}

	barber := models.Barber{
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		Bio:          req.Bio,
		ProfileImage: req.ProfileImage,
		IsActive:     true,
	}

	if err := h.db.Create(&barber).Error; err != nil {
		httperr.Internal(c, "failed_to_create_barber", "Could not create barber.")
		return
	}

	h.audit.Dispatch(audit.Event{
		Actor:    actor(c),
		Action:   "barber_created",
		Entity:   "barber",
		EntityID: &barber.ID,
	})

	httpresp.Created(c, barber)
}

func (h *BarberHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var barber models.Barber
	if err := h.db.First(&barber, id).Error; err != nil {
		httperr.NotFound(c, "barber_not_found", "Barber not found.")
		return
	}

	var req BarberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Name, email and phone are required.")
		return
	}
	if problems := req.validate(); problems != nil {
		httperr.Validation(c, problems)
		return
	}

	barber.Name = req.Name
	barber.Email = req.Email
	barber.Phone = req.Phone
	barber.Bio = req.Bio
	if req.ProfileImage != "" {
		barber.ProfileImage = req.ProfileImage
	}

	if err := h.db.Save(&barber).Error; err != nil {
		httperr.Internal(c, "failed_to_update_barber", "Could not update barber.")
		return
	}

	h.audit.Dispatch(audit.Event{
		Actor:    actor(c),
		Action:   "barber_updated",
		Entity:   "barber",
		EntityID: &barber.ID,
	})

	httpresp.OK(c, barber)
}

func (h *BarberHandler) Toggle(c *gin.Context) {
	id := c.Param("id")

	var barber models.Barber
	if err := h.db.First(&barber, id).Error; err != nil {
		httperr.NotFound(c, "barber_not_found", "Barber not found.")
		return
	}

	barber.IsActive = !barber.IsActive
	if err := h.db.Save(&barber).Error; err != nil {
		httperr.Internal(c, "failed_to_update_barber", "Could not update barber.")
		return
	}

	h.audit.Dispatch(audit.Event{
		Actor:    actor(c),
		Action:   "barber_toggled",
		Entity:   "barber",
		EntityID: &barber.ID,
	})

	httpresp.OK(c, barber)
}

// Delete is a hard delete that takes the barber's slots and
// appointments with it, all in one transaction.
func (h *BarberHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Barber id must be numeric.")
		return
	}
	barberID := uint(id)

	var barber models.Barber
	if err := h.db.First(&barber, barberID).Error; err != nil {
		httperr.NotFound(c, "barber_not_found", "Barber not found.")
		return
	}

	err = h.db.Transaction(func(tx *gorm.DB) error {
		var appointments []models.Appointment
		if err := tx.Where("barber_id = ?", barberID).Find(&appointments).Error; err != nil {
			return err
		}
		for i := range appointments {
			if err := tx.Model(&appointments[i]).Association("Services").Clear(); err != nil {
				return err
			}
		}
		if err := tx.Where("barber_id = ?", barberID).Delete(&models.Appointment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("barber_id = ?", barberID).Delete(&models.TimeSlot{}).Error; err != nil {
			return err
		}
		return tx.Delete(&barber).Error
	})
	if err != nil {
		httperr.Internal(c, "failed_to_delete_barber", "Could not delete barber.")
		return
	}

	h.audit.Dispatch(audit.Event{
		Actor:    actor(c),
		Action:   "barber_deleted",
		Entity:   "barber",
		EntityID: &barberID,
	})

	c.Status(204)
}
