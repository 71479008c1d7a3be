package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/odfbarbers/booking-api/internal/domain/booking"
	"github.com/odfbarbers/booking-api/internal/httperr"
	"github.com/odfbarbers/booking-api/internal/httpresp"
	"github.com/odfbarbers/booking-api/internal/models"
	ucBooking "github.com/odfbarbers/booking-api/internal/usecase/booking"
	ucSlots "github.com/odfbarbers/booking-api/internal/usecase/slots"
)

// ======================================================
// HANDLER
// ======================================================

type PublicHandler struct {
	db            *gorm.DB
	repo          domain.Repository
	createBooking *ucBooking.CreateBooking
	listBookable  *ucSlots.ListBookable
}

func NewPublicHandler(
	db *gorm.DB,
	repo domain.Repository,
	createBooking *ucBooking.CreateBooking,
	listBookable *ucSlots.ListBookable,
) *PublicHandler {
	return &PublicHandler{
		db:            db,
		repo:          repo,
		createBooking: createBooking,
		listBookable:  listBookable,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	CustomerName  string `json:"customer_name" binding:"required"`
	CustomerPhone string `json:"customer_phone" binding:"required"`
	CustomerEmail string `json:"customer_email" binding:"required"`

	AddressStreet     string `json:"address_street" binding:"required"`
	AddressCity       string `json:"address_city" binding:"required"`
	AddressPostalCode string `json:"address_postal_code" binding:"required"`
	AddressGmapsLink  string `json:"address_gmaps_link"`

	Notes               string `json:"notes"`
	IsFirstTimeCustomer bool   `json:"is_first_time_customer"`

	TimeSlotID uint   `json:"time_slot_id" binding:"required"`
	BarberID   uint   `json:"barber_id" binding:"required"`
	ServiceIDs []uint `json:"service_ids" binding:"required"`
}

type CreateFeedbackRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Message string `json:"message" binding:"required"`
}

// ======================================================
// AVAILABILITY
// ======================================================

type slotView struct {
	ID              uint   `json:"id"`
	Date            string `json:"date"`
	Period          string `json:"period"`
	PeriodLabel     string `json:"period_label"`
	BarberID        uint   `json:"barber_id"`
	RemainingSpaces int    `json:"remaining_spaces"`
}

func (h *PublicHandler) ListBookableSlots(c *gin.Context) {
	var from, to time.Time
	var err error

	if s := c.Query("from"); s != "" {
		if from, err = time.Parse("2006-01-02", s); err != nil {
			httperr.BadRequest(c, "invalid_date", "Dates must be YYYY-MM-DD.")
			return
		}
	}
	if s := c.Query("to"); s != "" {
		if to, err = time.Parse("2006-01-02", s); err != nil {
			httperr.BadRequest(c, "invalid_date", "Dates must be YYYY-MM-DD.")
			return
		}
	}

	slots, err := h.listBookable.Execute(c.Request.Context(), from, to)
	if err != nil {
		respondError(c, err)
		return
	}

	out := make([]slotView, 0, len(slots))
	for _, s := range slots {
		period := domain.Period(s.Period)
		out = append(out, slotView{
			ID:              s.ID,
			Date:            s.Date.Format("2006-01-02"),
			Period:          s.Period,
			PeriodLabel:     period.Label(),
			BarberID:        s.BarberID,
			RemainingSpaces: s.MaxAppointments - s.CurrentAppointments,
		})
	}

	httpresp.List(c, out)
}

// ======================================================
// BOOKING
// ======================================================

func (h *PublicHandler) CreateAppointment(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Malformed booking request.")
		return
	}

	ap, err := h.createBooking.Execute(c.Request.Context(), ucBooking.CreateBookingInput{
		CustomerName:        req.CustomerName,
		CustomerPhone:       req.CustomerPhone,
		CustomerEmail:       req.CustomerEmail,
		AddressStreet:       req.AddressStreet,
		AddressCity:         req.AddressCity,
		AddressPostalCode:   req.AddressPostalCode,
		AddressGmapsLink:    req.AddressGmapsLink,
		Notes:               req.Notes,
		IsFirstTimeCustomer: req.IsFirstTimeCustomer,
		TimeSlotID:          req.TimeSlotID,
		BarberID:            req.BarberID,
		ServiceIDs:          req.ServiceIDs,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.Created(c, ap)
}

// appointmentView is the confirmation-page projection: enough for the
// customer to verify their booking, nothing more.
type appointmentView struct {
	Ref               string   `json:"ref"`
	CustomerName      string   `json:"customer_name"`
	Date              string   `json:"date"`
	Period            string   `json:"period"`
	PeriodLabel       string   `json:"period_label"`
	BarberName        string   `json:"barber_name"`
	Services          []string `json:"services"`
	Status            string   `json:"status"`
	EstimatedDuration int      `json:"estimated_duration"`
	EstimatedPrice    string   `json:"estimated_price"`
}

func (h *PublicHandler) GetAppointmentByRef(c *gin.Context) {
	ap, err := h.repo.GetAppointmentByRef(c.Request.Context(), c.Param("ref"))
	if err != nil {
		respondError(c, err)
		return
	}

	names := make([]string, 0, len(ap.Services))
	for _, svc := range ap.Services {
		names = append(names, svc.Name)
	}

	period := domain.Period(ap.TimeSlot.Period)
	httpresp.OK(c, appointmentView{
		Ref:               ap.Ref,
		CustomerName:      ap.CustomerName,
		Date:              ap.TimeSlot.Date.Format("2006-01-02"),
		Period:            ap.TimeSlot.Period,
		PeriodLabel:       period.Label(),
		BarberName:        ap.Barber.Name,
		Services:          names,
		Status:            ap.Status,
		EstimatedDuration: ap.EstimatedDuration,
		EstimatedPrice:    ap.EstimatedPrice.StringFixed(2),
	})
}

// ======================================================
// CATALOG
// ======================================================

func (h *PublicHandler) ListServices(c *gin.Context) {
	var services []models.Service
	if err := h.db.
		Where("is_active = ?", true).
		Order("name ASC").
		Find(&services).Error; err != nil {
		httperr.Internal(c, "failed_to_list_services", "Could not load services.")
		return
	}

	httpresp.List(c, services)
}

func (h *PublicHandler) ListBarbers(c *gin.Context) {
	var barbers []models.Barber
	if err := h.db.
		Where("is_active = ?", true).
		Order("name ASC").
		Find(&barbers).Error; err != nil {
		httperr.Internal(c, "failed_to_list_barbers", "Could not load barbers.")
		return
	}

	httpresp.List(c, barbers)
}

// ======================================================
// FEEDBACK
// ======================================================

func (h *PublicHandler) CreateFeedback(c *gin.Context) {
	var req CreateFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Name, email and message are required.")
		return
	}

	fb := models.Feedback{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	}

	if err := h.db.Create(&fb).Error; err != nil {
		httperr.Internal(c, "failed_to_create_feedback", "Could not save feedback.")
		return
	}

	httpresp.Created(c, fb)
}
