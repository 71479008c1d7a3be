package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	domain "github.com/odfbarbers/booking-api/internal/domain/booking"
	"github.com/odfbarbers/booking-api/internal/httperr"
	"github.com/odfbarbers/booking-api/internal/httpresp"
	"github.com/odfbarbers/booking-api/internal/middleware"
	ucSlots "github.com/odfbarbers/booking-api/internal/usecase/slots"
)

type SlotHandler struct {
	add      *ucSlots.AddSlot
	update   *ucSlots.UpdateSlot
	delete   *ucSlots.DeleteSlot
	toggle   *ucSlots.ToggleAvailability
	generate *ucSlots.GenerateSlots
	repo     domain.Repository
}

func NewSlotHandler(
	add *ucSlots.AddSlot,
	update *ucSlots.UpdateSlot,
	del *ucSlots.DeleteSlot,
	toggle *ucSlots.ToggleAvailability,
	generate *ucSlots.GenerateSlots,
	repo domain.Repository,
) *SlotHandler {
	return &SlotHandler{
		add:      add,
		update:   update,
		delete:   del,
		toggle:   toggle,
		generate: generate,
		repo:     repo,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type AddSlotRequest struct {
	Date            string `json:"date" binding:"required"`
	Period          string `json:"period" binding:"required"`
	BarberID        uint   `json:"barber_id" binding:"required"`
	MaxAppointments int    `json:"max_appointments"`
	IsAvailable     *bool  `json:"is_available"`
}

type UpdateSlotRequest struct {
	Date            *string `json:"date"`
	Period          *string `json:"period"`
	BarberID        *uint   `json:"barber_id"`
	MaxAppointments *int    `json:"max_appointments"`
}

type GenerateSlotsRequest struct {
	BarberID  uint `json:"barber_id" binding:"required"`
	DaysAhead int  `json:"days_ahead"`
}

// ======================================================
// HANDLERS
// ======================================================

func actor(c *gin.Context) string {
	if v, ok := c.Get(middleware.ContextAdminUser); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func slotID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Slot id must be numeric.")
		return 0, false
	}
	return uint(id), true
}

func (h *SlotHandler) List(c *gin.Context) {
	from := domain.Today()
	to := from.Add(ucSlots.DefaultDaysAhead * 24 * time.Hour)

	if s := c.Query("from"); s != "" {
		t, err := time.Parse("2006-01-02", s)
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "Dates must be YYYY-MM-DD.")
			return
		}
		from = domain.UTCDate(t)
	}
	if s := c.Query("to"); s != "" {
		t, err := time.Parse("2006-01-02", s)
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "Dates must be YYYY-MM-DD.")
			return
		}
		to = domain.UTCDate(t)
	}

	slots, err := h.repo.ListSlots(c.Request.Context(), from, to)
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.List(c, slots)
}

func (h *SlotHandler) Create(c *gin.Context) {
	var req AddSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Date, period and barber are required.")
		return
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Date must be YYYY-MM-DD.")
		return
	}

	period, err := domain.ParsePeriod(req.Period)
	if err != nil {
		respondError(c, err)
		return
	}

	available := true
	if req.IsAvailable != nil {
		available = *req.IsAvailable
	}

	slot, err := h.add.Execute(c.Request.Context(), ucSlots.AddSlotInput{
		Date:            date,
		Period:          period,
		BarberID:        req.BarberID,
		MaxAppointments: req.MaxAppointments,
		IsAvailable:     available,
	}, actor(c))
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.Created(c, slot)
}

func (h *SlotHandler) Update(c *gin.Context) {
	id, ok := slotID(c)
	if !ok {
		return
	}

	var req UpdateSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Malformed slot update.")
		return
	}

	var in ucSlots.UpdateSlotInput

	if req.Date != nil {
		date, err := time.Parse("2006-01-02", *req.Date)
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "Date must be YYYY-MM-DD.")
			return
		}
		in.Date = &date
	}
	if req.Period != nil {
		period, err := domain.ParsePeriod(*req.Period)
		if err != nil {
			respondError(c, err)
			return
		}
		in.Period = &period
	}
	in.BarberID = req.BarberID
	in.MaxAppointments = req.MaxAppointments

	slot, err := h.update.Execute(c.Request.Context(), id, in, actor(c))
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.OK(c, slot)
}

func (h *SlotHandler) Delete(c *gin.Context) {
	id, ok := slotID(c)
	if !ok {
		return
	}

	if err := h.delete.Execute(c.Request.Context(), id, actor(c)); err != nil {
		respondError(c, err)
		return
	}

	c.Status(204)
}

func (h *SlotHandler) Toggle(c *gin.Context) {
	id, ok := slotID(c)
	if !ok {
		return
	}

	slot, err := h.toggle.Execute(c.Request.Context(), id, actor(c))
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.OK(c, slot)
}

func (h *SlotHandler) Generate(c *gin.Context) {
	var req GenerateSlotsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Barber id is required.")
		return
	}

	created, err := h.generate.Execute(c.Request.Context(), req.BarberID, req.DaysAhead, actor(c))
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.OK(c, gin.H{"created": created})
}
