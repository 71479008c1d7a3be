package booking

import (
	"context"
	"time"

	"github.com/odfbarbers/booking-api/internal/models"
)

type Repository interface {
	// -------- Catalog --------
	GetBarber(
		ctx context.Context,
		id uint,
	) (*models.Barber, error)

	GetServicesByIDs(
		ctx context.Context,
		ids []uint,
	) ([]models.Service, error)

	// -------- Slots --------
	GetSlot(
		ctx context.Context,
		id uint,
	) (*models.TimeSlot, error)

	FindBookable(
		ctx context.Context,
		from time.Time,
		to time.Time,
	) ([]models.TimeSlot, error)

	ListSlots(
		ctx context.Context,
		from time.Time,
		to time.Time,
	) ([]models.TimeSlot, error)

	CreateSlot(
		ctx context.Context,
		slot *models.TimeSlot,
	) error

	// CreateSlotIfAbsent inserts unless the (date, period, barber)
	// triple already exists. Reports whether a row was created.
	CreateSlotIfAbsent(
		ctx context.Context,
		slot *models.TimeSlot,
	) (bool, error)

	UpdateSlot(
		ctx context.Context,
		slot *models.TimeSlot,
	) error

	// DeleteEmptySlot removes the slot only while its counter is zero.
	DeleteEmptySlot(
		ctx context.Context,
		id uint,
	) error

	SlotExists(
		ctx context.Context,
		date time.Time,
		period Period,
		barberID uint,
		excludeID uint,
	) (bool, error)

	// -------- Appointments --------

	// CreateAppointment persists the appointment, its service
	// associations and the capacity reservation in one transaction.
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
		services []models.Service,
	) error

	GetAppointment(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	// GetAppointmentByRef resolves the public reference code handed to
	// the customer at booking time.
	GetAppointmentByRef(
		ctx context.Context,
		ref string,
	) (*models.Appointment, error)

	ListAppointments(
		ctx context.Context,
		status *Status,
	) ([]models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// DeleteAppointment removes the row, its associations and releases
	// the slot's capacity unit in one transaction.
	DeleteAppointment(
		ctx context.Context,
		id uint,
	) error
}
