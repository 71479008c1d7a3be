package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/odfbarbers/booking-api/internal/audit"
	"github.com/odfbarbers/booking-api/internal/httperr"
	"github.com/odfbarbers/booking-api/internal/httpresp"
	"github.com/odfbarbers/booking-api/internal/models"
)

const minServiceDuration = 15

type ServiceHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewServiceHandler(db *gorm.DB, audit *audit.Dispatcher) *ServiceHandler {
	return &ServiceHandler{db: db, audit: audit}
}

// --------- Requests ---------

type ServiceRequest struct {
	Name            string          `json:"name" binding:"required"`
	Description     string          `json:"description"`
	Price           decimal.Decimal `json:"price"`
	DurationMinutes int             `json:"duration_minutes" binding:"required"`
}

func (r ServiceRequest) validate() map[string]string {
	problems := map[string]string{}
	if r.Price.IsNegative() {
		problems["price"] = "cannot be negative"
	}
	if r.DurationMinutes < minServiceDuration {
		problems["duration_minutes"] = "must be at least 15 minutes"
	}
	if len(problems) == 0 {
		return nil
	}
	return problems
}

// --------- Handlers ---------

func (h *ServiceHandler) List(c *gin.Context) {
	var services []models.Service
	if err := h.db.Order("name ASC").Find(&services).Error; err != nil {
		httperr.Internal(c, "failed_to_list_services", "Could not load services.")
		return
	}
	httpresp.List(c, services)
}

func (h *ServiceHandler) Create(c *gin.Context) {
	var req ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Name and duration are required.")
		return
	}
	if problems := req.validate(); problems != nil {
		httperr.Validation(c, problems)
		return
	}

	svc := models.Service{
		Name:            req.Name,
		Description:     req.Description,
		Price:           req.Price,
		DurationMinutes: req.DurationMinutes,
		IsActive:        true,
	}

	if err := h.db.Create(&svc).Error; err != nil {
		httperr.Conflict(c, "duplicate_service_name", "A service with this name already exists.")
		return
	}

	h.audit.Dispatch(audit.Event{
		Actor:    actor(c),
		Action:   "service_created",
		Entity:   "service",
		EntityID: &svc.ID,
	})

	httpresp.Created(c, svc)
}

// Update edits the catalog entry. Already-booked appointments keep the
// totals computed at their creation.
func (h *ServiceHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var svc models.Service
	if err := h.db.First(&svc, id).Error; err != nil {
		httperr.NotFound(c, "service_not_found", "Service not found.")
		return
	}

	var req ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Name and duration are required.")
		return
	}
	if problems := req.validate(); problems != nil {
		httperr.Validation(c, problems)
		return
	}

	svc.Name = req.Name
	svc.Description = req.Description
	svc.Price = req.Price
	svc.DurationMinutes = req.DurationMinutes

	if err := h.db.Save(&svc).Error; err != nil {
		httperr.Internal(c, "failed_to_update_service", "Could not update service.")
		return
	}

	h.audit.Dispatch(audit.Event{
		Actor:    actor(c),
		Action:   "service_updated",
		Entity:   "service",
		EntityID: &svc.ID,
	})

	httpresp.OK(c, svc)
}

func (h *ServiceHandler) Toggle(c *gin.Context) {
	id := c.Param("id")

	var svc models.Service
	if err := h.db.First(&svc, id).Error; err != nil {
		httperr.NotFound(c, "service_not_found", "Service not found.")
		return
	}

	svc.IsActive = !svc.IsActive
	if err := h.db.Save(&svc).Error; err != nil {
		httperr.Internal(c, "failed_to_update_service", "Could not update service.")
		return
	}

	h.audit.Dispatch(audit.Event{
		Actor:    actor(c),
		Action:   "service_toggled",
		Entity:   "service",
		EntityID: &svc.ID,
	})

	httpresp.OK(c, svc)
}
