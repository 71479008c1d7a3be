package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/odfbarbers/booking-api/internal/domain/booking"
	"github.com/odfbarbers/booking-api/internal/httperr"
	"github.com/odfbarbers/booking-api/internal/httpresp"
	ucBooking "github.com/odfbarbers/booking-api/internal/usecase/booking"
)

type AppointmentHandler struct {
	list         *ucBooking.ListAppointments
	updateStatus *ucBooking.UpdateStatus
	delete       *ucBooking.DeleteAppointment
	repo         domain.Repository
}

func NewAppointmentHandler(
	list *ucBooking.ListAppointments,
	updateStatus *ucBooking.UpdateStatus,
	del *ucBooking.DeleteAppointment,
	repo domain.Repository,
) *AppointmentHandler {
	return &AppointmentHandler{
		list:         list,
		updateStatus: updateStatus,
		delete:       del,
		repo:         repo,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ======================================================
// HANDLERS
// ======================================================

func appointmentID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Appointment id must be numeric.")
		return 0, false
	}
	return uint(id), true
}

func (h *AppointmentHandler) List(c *gin.Context) {
	var status *domain.Status
	if s := c.Query("status"); s != "" {
		parsed, err := domain.ParseStatus(s)
		if err != nil {
			respondError(c, err)
			return
		}
		status = &parsed
	}

	out, err := h.list.Execute(c.Request.Context(), status)
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.List(c, out)
}

func (h *AppointmentHandler) Get(c *gin.Context) {
	id, ok := appointmentID(c)
	if !ok {
		return
	}

	ap, err := h.repo.GetAppointment(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) UpdateStatus(c *gin.Context) {
	id, ok := appointmentID(c)
	if !ok {
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Status is required.")
		return
	}

	// Strict parse at the boundary; the engine only ever sees a
	// typed status.
	status, err := domain.ParseStatus(req.Status)
	if err != nil {
		respondError(c, err)
		return
	}

	ap, err := h.updateStatus.Execute(c.Request.Context(), id, status, actor(c))
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) Delete(c *gin.Context) {
	id, ok := appointmentID(c)
	if !ok {
		return
	}

	if err := h.delete.Execute(c.Request.Context(), id, actor(c)); err != nil {
		respondError(c, err)
		return
	}

	c.Status(204)
}
