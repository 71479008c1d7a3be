package booking

import (
	"context"

	"github.com/google/uuid"

	"github.com/odfbarbers/booking-api/internal/audit"
	domain "github.com/odfbarbers/booking-api/internal/domain/booking"
	"github.com/odfbarbers/booking-api/internal/httperr"
	"github.com/odfbarbers/booking-api/internal/models"
	"github.com/odfbarbers/booking-api/internal/validators"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	CustomerName  string
	CustomerPhone string
	CustomerEmail string

	AddressStreet     string
	AddressCity       string
	AddressPostalCode string
	AddressGmapsLink  string

	Notes               string
	IsFirstTimeCustomer bool

	TimeSlotID uint
	BarberID   uint
	ServiceIDs []uint
}

// FieldErrors reports the offending booking-form fields by name.
type FieldErrors struct {
	Fields map[string]string
}

func (e FieldErrors) Error() string {
	return "validation_failed"
}

// ======================================================
// USE CASE
// ======================================================

// CreateBooking is the single entry point turning an untrusted booking
// request into a committed appointment.
type CreateBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	clock domain.Clock
}

func NewCreateBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateBooking {
	return &CreateBooking{
		repo:  repo,
		audit: audit,
		clock: domain.SystemClock{},
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Appointment, error) {

	// 1. Field formats. Everything reported at once, by name.
	problems := validators.ValidateCustomer(validators.CustomerFields{
		Name:       in.CustomerName,
		Phone:      in.CustomerPhone,
		Email:      in.CustomerEmail,
		Street:     in.AddressStreet,
		City:       in.AddressCity,
		PostalCode: in.AddressPostalCode,
	})
	if len(in.ServiceIDs) == 0 {
		if problems == nil {
			problems = map[string]string{}
		}
		problems["service_ids"] = "at least one service is required"
	}
	if problems != nil {
		return nil, FieldErrors{Fields: problems}
	}

	// 2. Slot admission pre-check. This is the UX check; the
	// authoritative guard is the conditional increment inside
	// CreateAppointment.
	slot, err := uc.repo.GetSlot(ctx, in.TimeSlotID)
	if err != nil {
		return nil, err
	}
	if !slot.IsAvailable {
		return nil, httperr.ErrBusiness("slot_unavailable")
	}
	if slot.IsFullyBooked() {
		return nil, httperr.ErrBusiness("slot_full")
	}
	if slot.BarberID != in.BarberID {
		return nil, httperr.ErrBusiness("slot_barber_mismatch")
	}

	// 3. Services must exist and still be active.
	services, err := uc.repo.GetServicesByIDs(ctx, in.ServiceIDs)
	if err != nil {
		return nil, err
	}
	for _, svc := range services {
		if !svc.IsActive {
			return nil, httperr.ErrBusiness("service_inactive")
		}
	}

	// 4. Barber must exist and still be active.
	barber, err := uc.repo.GetBarber(ctx, in.BarberID)
	if err != nil {
		return nil, err
	}
	if !barber.IsActive {
		return nil, httperr.ErrBusiness("barber_inactive")
	}

	// 5. Totals are computed once here and never recomputed later,
	// so catalog edits don't rewrite history.
	duration, price := domain.Totals(services)

	ap := &models.Appointment{
		Ref:                 uuid.NewString(),
		CustomerName:        in.CustomerName,
		CustomerPhone:       in.CustomerPhone,
		CustomerEmail:       in.CustomerEmail,
		IsFirstTimeCustomer: in.IsFirstTimeCustomer,
		AddressStreet:       in.AddressStreet,
		AddressCity:         in.AddressCity,
		AddressPostalCode:   in.AddressPostalCode,
		AddressGmapsLink:    in.AddressGmapsLink,
		Notes:               in.Notes,
		TimeSlotID:          slot.ID,
		BarberID:            barber.ID,
		Status:              string(domain.InitialStatus()),
		EstimatedDuration:   duration,
		EstimatedPrice:      price,
		SubmittedAt:         uc.clock.Now(),
	}

	// 6. Appointment, service links and the capacity reservation
	// commit together or not at all.
	if err := uc.repo.CreateAppointment(ctx, ap, services); err != nil {
		return nil, err
	}
	ap.Services = services

	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
