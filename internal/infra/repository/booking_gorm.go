package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/odfbarbers/booking-api/internal/domain/booking"
	"github.com/odfbarbers/booking-api/internal/httperr"
	"github.com/odfbarbers/booking-api/internal/models"
)

// Slot ordering: date first, then the period's declared ordinal.
// Alphabetical period order would put AFTERNOON before MORNING.
const periodOrderExpr = "CASE period " +
	"WHEN 'MORNING' THEN 0 " +
	"WHEN 'AFTERNOON' THEN 1 " +
	"WHEN 'EVENING' THEN 2 " +
	"ELSE 3 END ASC"

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Catalog
// --------------------------------------------------

func (r *BookingGormRepository) GetBarber(
	ctx context.Context,
	id uint,
) (*models.Barber, error) {

	var barber models.Barber
	if err := r.db.WithContext(ctx).First(&barber, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("barber_not_found")
		}
		return nil, err
	}
	return &barber, nil
}

func (r *BookingGormRepository) GetServicesByIDs(
	ctx context.Context,
	ids []uint,
) ([]models.Service, error) {

	var services []models.Service
	if err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&services).Error; err != nil {
		return nil, err
	}

	if len(services) != len(uniqueIDs(ids)) {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	return services, nil
}

func uniqueIDs(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// --------------------------------------------------
// Slots
// --------------------------------------------------

func (r *BookingGormRepository) GetSlot(
	ctx context.Context,
	id uint,
) (*models.TimeSlot, error) {

	var slot models.TimeSlot
	if err := r.db.WithContext(ctx).First(&slot, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("slot_not_found")
		}
		return nil, err
	}
	return &slot, nil
}

func (r *BookingGormRepository) FindBookable(
	ctx context.Context,
	from time.Time,
	to time.Time,
) ([]models.TimeSlot, error) {

	var slots []models.TimeSlot
	if err := r.db.WithContext(ctx).
		Where(
			"is_available = ? AND current_appointments < max_appointments AND date BETWEEN ? AND ?",
			true, from, to,
		).
		Order("date ASC").
		Order(periodOrderExpr).
		Find(&slots).Error; err != nil {
		return nil, err
	}

	return slots, nil
}

func (r *BookingGormRepository) ListSlots(
	ctx context.Context,
	from time.Time,
	to time.Time,
) ([]models.TimeSlot, error) {

	var slots []models.TimeSlot
	if err := r.db.WithContext(ctx).
		Where("date BETWEEN ? AND ?", from, to).
		Order("date ASC").
		Order(periodOrderExpr).
		Find(&slots).Error; err != nil {
		return nil, err
	}

	return slots, nil
}

func (r *BookingGormRepository) CreateSlot(
	ctx context.Context,
	slot *models.TimeSlot,
) error {
	return r.db.WithContext(ctx).Create(slot).Error
}

func (r *BookingGormRepository) CreateSlotIfAbsent(
	ctx context.Context,
	slot *models.TimeSlot,
) (bool, error) {

	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "date"},
				{Name: "period"},
				{Name: "barber_id"},
			},
			DoNothing: true,
		}).
		Create(slot)

	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *BookingGormRepository) UpdateSlot(
	ctx context.Context,
	slot *models.TimeSlot,
) error {
	return r.db.WithContext(ctx).Save(slot).Error
}

func (r *BookingGormRepository) DeleteEmptySlot(
	ctx context.Context,
	id uint,
) error {

	res := r.db.WithContext(ctx).
		Where("id = ? AND current_appointments = 0", id).
		Delete(&models.TimeSlot{})

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		// Either gone or still carrying appointments; report which.
		var count int64
		if err := r.db.WithContext(ctx).
			Model(&models.TimeSlot{}).
			Where("id = ?", id).
			Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return httperr.ErrBusiness("slot_not_found")
		}
		return httperr.ErrBusiness("slot_has_appointments")
	}

	return nil
}

func (r *BookingGormRepository) SlotExists(
	ctx context.Context,
	date time.Time,
	period domain.Period,
	barberID uint,
	excludeID uint,
) (bool, error) {

	q := r.db.WithContext(ctx).
		Model(&models.TimeSlot{}).
		Where("date = ? AND period = ? AND barber_id = ?", date, string(period), barberID)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// --------------------------------------------------
// Capacity counter (transaction-local)
// --------------------------------------------------

// reserve is the authoritative admission guard: a conditional atomic
// increment that fails the enclosing transaction when the slot is full.
func reserve(tx *gorm.DB, slotID uint) error {
	res := tx.Model(&models.TimeSlot{}).
		Where("id = ? AND current_appointments < max_appointments", slotID).
		UpdateColumn("current_appointments", gorm.Expr("current_appointments + 1"))

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return httperr.ErrBusiness("slot_full")
	}
	return nil
}

// release decrements floored at zero. A zero counter makes this a
// no-op, which keeps concurrent double-deletes harmless.
func release(tx *gorm.DB, slotID uint) error {
	return tx.Model(&models.TimeSlot{}).
		Where("id = ? AND current_appointments > 0", slotID).
		UpdateColumn("current_appointments", gorm.Expr("current_appointments - 1")).
		Error
}

// --------------------------------------------------
// Appointments
// --------------------------------------------------

func (r *BookingGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
	services []models.Service,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		if err := tx.Omit("Services").Create(ap).Error; err != nil {
			return err
		}

		if len(services) > 0 {
			if err := tx.Model(ap).
				Omit("Services.*").
				Association("Services").
				Append(&services); err != nil {
				return err
			}
		}

		// Same unit of work as the insert above: both commit or
		// neither does.
		return reserve(tx, ap.TimeSlotID)
	})
}

func (r *BookingGormRepository) GetAppointment(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Services").
		Preload("TimeSlot").
		Preload("Barber").
		First(&ap, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("appointment_not_found")
		}
		return nil, err
	}
	return &ap, nil
}

func (r *BookingGormRepository) GetAppointmentByRef(
	ctx context.Context,
	ref string,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Services").
		Preload("TimeSlot").
		Preload("Barber").
		Where("ref = ?", ref).
		First(&ap).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("appointment_not_found")
		}
		return nil, err
	}
	return &ap, nil
}

func (r *BookingGormRepository) ListAppointments(
	ctx context.Context,
	status *domain.Status,
) ([]models.Appointment, error) {

	q := r.db.WithContext(ctx).
		Preload("Services").
		Preload("TimeSlot").
		Preload("Barber").
		Order("submitted_at DESC")

	if status != nil {
		q = q.Where("status = ?", string(*status))
	}

	var aps []models.Appointment
	if err := q.Find(&aps).Error; err != nil {
		return nil, err
	}
	return aps, nil
}

func (r *BookingGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Omit("Services").Save(ap).Error
}

func (r *BookingGormRepository) DeleteAppointment(
	ctx context.Context,
	id uint,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		var ap models.Appointment
		if err := tx.First(&ap, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return httperr.ErrBusiness("appointment_not_found")
			}
			return err
		}

		if err := tx.Model(&ap).Association("Services").Clear(); err != nil {
			return err
		}

		if err := tx.Delete(&ap).Error; err != nil {
			return err
		}

		return release(tx, ap.TimeSlotID)
	})
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
