package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	dbpkg "github.com/odfbarbers/booking-api/internal/db"
	domain "github.com/odfbarbers/booking-api/internal/domain/booking"
	"github.com/odfbarbers/booking-api/internal/httperr"
	"github.com/odfbarbers/booking-api/internal/infra/repository"
	"github.com/odfbarbers/booking-api/internal/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, dbpkg.Migrate(gdb))
	return gdb
}

func seedBarber(t *testing.T, gdb *gorm.DB) models.Barber {
	t.Helper()
	barber := models.Barber{
		Name:     "Test Barber",
		Email:    "barber@example.com",
		Phone:    "+1 555-0000000",
		IsActive: true,
	}
	require.NoError(t, gdb.Create(&barber).Error)
	return barber
}

func seedService(t *testing.T, gdb *gorm.DB, name, price string, minutes int) models.Service {
	t.Helper()
	svc := models.Service{
		Name:            name,
		Price:           decimal.RequireFromString(price),
		DurationMinutes: minutes,
		IsActive:        true,
	}
	require.NoError(t, gdb.Create(&svc).Error)
	return svc
}

func seedSlot(t *testing.T, gdb *gorm.DB, barberID uint, date time.Time, period domain.Period, max, current int) models.TimeSlot {
	t.Helper()
	slot := models.TimeSlot{
		Date:                domain.UTCDate(date),
		Period:              string(period),
		IsAvailable:         true,
		MaxAppointments:     max,
		CurrentAppointments: current,
		BarberID:            barberID,
	}
	require.NoError(t, gdb.Create(&slot).Error)
	return slot
}

func newAppointment(slotID, barberID uint) *models.Appointment {
	return &models.Appointment{
		Ref:               uuid.NewString(),
		CustomerName:      "A",
		CustomerPhone:     "+1 555-1234567",
		CustomerEmail:     "a@b.com",
		AddressStreet:     "1 Main St",
		AddressCity:       "Lagos",
		AddressPostalCode: "123456",
		TimeSlotID:        slotID,
		BarberID:          barberID,
		Status:            "PENDING",
		SubmittedAt:       time.Now().UTC(),
	}
}

func slotCounter(t *testing.T, gdb *gorm.DB, id uint) int {
	t.Helper()
	var slot models.TimeSlot
	require.NoError(t, gdb.First(&slot, id).Error)
	return slot.CurrentAppointments
}

func tomorrow() time.Time {
	return domain.Today().Add(24 * time.Hour)
}

// --------------------------------------------------
// Capacity reservation
// --------------------------------------------------

func TestCreateAppointmentReservesCapacity(t *testing.T) {
	gdb := newTestDB(t)
	repo := repository.NewBookingGormRepository(gdb)
	ctx := context.Background()

	barber := seedBarber(t, gdb)
	svc := seedService(t, gdb, "Cut", "15000.00", 45)
	slot := seedSlot(t, gdb, barber.ID, tomorrow(), domain.PeriodMorning, 2, 0)

	ap := newAppointment(slot.ID, barber.ID)
	require.NoError(t, repo.CreateAppointment(ctx, ap, []models.Service{svc}))

	assert.Equal(t, 1, slotCounter(t, gdb, slot.ID))

	got, err := repo.GetAppointment(ctx, ap.ID)
	require.NoError(t, err)
	assert.Len(t, got.Services, 1)
	assert.Equal(t, "Cut", got.Services[0].Name)
}

func TestGetAppointmentByRef(t *testing.T) {
	gdb := newTestDB(t)
	repo := repository.NewBookingGormRepository(gdb)
	ctx := context.Background()

	barber := seedBarber(t, gdb)
	svc := seedService(t, gdb, "Cut", "15000.00", 45)
	slot := seedSlot(t, gdb, barber.ID, tomorrow(), domain.PeriodMorning, 2, 0)

	ap := newAppointment(slot.ID, barber.ID)
	require.NoError(t, repo.CreateAppointment(ctx, ap, []models.Service{svc}))

	got, err := repo.GetAppointmentByRef(ctx, ap.Ref)
	require.NoError(t, err)
	assert.Equal(t, ap.ID, got.ID)
	assert.Equal(t, "Test Barber", got.Barber.Name)
	assert.Len(t, got.Services, 1)

	_, err = repo.GetAppointmentByRef(ctx, uuid.NewString())
	assert.True(t, httperr.IsBusiness(err, "appointment_not_found"))
}

func TestCreateAppointmentRejectsFullSlot(t *testing.T) {
	gdb := newTestDB(t)
	repo := repository.NewBookingGormRepository(gdb)
	ctx := context.Background()

	barber := seedBarber(t, gdb)
	svc := seedService(t, gdb, "Cut", "15000.00", 45)
	slot := seedSlot(t, gdb, barber.ID, tomorrow(), domain.PeriodMorning, 1, 0)

	require.NoError(t, repo.CreateAppointment(ctx, newAppointment(slot.ID, barber.ID), []models.Service{svc}))

	err := repo.CreateAppointment(ctx, newAppointment(slot.ID, barber.ID), []models.Service{svc})
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "slot_full"))

	// The rejected attempt left nothing behind: one appointment,
	// counter at capacity.
	assert.Equal(t, 1, slotCounter(t, gdb, slot.ID))

	var count int64
	require.NoError(t, gdb.Model(&models.Appointment{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestCapacityNeverExceeded(t *testing.T) {
	gdb := newTestDB(t)
	repo := repository.NewBookingGormRepository(gdb)
	ctx := context.Background()

	barber := seedBarber(t, gdb)
	svc := seedService(t, gdb, "Cut", "15000.00", 45)
	slot := seedSlot(t, gdb, barber.ID, tomorrow(), domain.PeriodMorning, 3, 0)

	attempts := 10
	succeeded := 0
	for i := 0; i < attempts; i++ {
		err := repo.CreateAppointment(ctx, newAppointment(slot.ID, barber.ID), []models.Service{svc})
		if err == nil {
			succeeded++
		} else {
			assert.True(t, httperr.IsBusiness(err, "slot_full"))
		}
	}

	assert.Equal(t, 3, succeeded)
	assert.Equal(t, 3, slotCounter(t, gdb, slot.ID))
}

func TestDeleteAppointmentReleasesCapacity(t *testing.T) {
	gdb := newTestDB(t)
	repo := repository.NewBookingGormRepository(gdb)
	ctx := context.Background()

	barber := seedBarber(t, gdb)
	svc := seedService(t, gdb, "Cut", "15000.00", 45)
	slot := seedSlot(t, gdb, barber.ID, tomorrow(), domain.PeriodMorning, 2, 0)

	ap := newAppointment(slot.ID, barber.ID)
	require.NoError(t, repo.CreateAppointment(ctx, ap, []models.Service{svc}))
	require.Equal(t, 1, slotCounter(t, gdb, slot.ID))

	require.NoError(t, repo.DeleteAppointment(ctx, ap.ID))
	assert.Equal(t, 0, slotCounter(t, gdb, slot.ID))

	// Join rows are gone too.
	var joins int64
	require.NoError(t, gdb.Table("appointment_services").Count(&joins).Error)
	assert.EqualValues(t, 0, joins)

	err := repo.DeleteAppointment(ctx, ap.ID)
	assert.True(t, httperr.IsBusiness(err, "appointment_not_found"))
}

func TestReleaseFlooredAtZero(t *testing.T) {
	gdb := newTestDB(t)
	repo := repository.NewBookingGormRepository(gdb)
	ctx := context.Background()

	barber := seedBarber(t, gdb)
	svc := seedService(t, gdb, "Cut", "15000.00", 45)
	slot := seedSlot(t, gdb, barber.ID, tomorrow(), domain.PeriodMorning, 2, 0)

	ap := newAppointment(slot.ID, barber.ID)
	require.NoError(t, repo.CreateAppointment(ctx, ap, []models.Service{svc}))

	// Zero the counter behind the repository's back, then delete:
	// the release must not drive it negative.
	require.NoError(t, gdb.Model(&models.TimeSlot{}).
		Where("id = ?", slot.ID).
		UpdateColumn("current_appointments", 0).Error)

	require.NoError(t, repo.DeleteAppointment(ctx, ap.ID))
	assert.Equal(t, 0, slotCounter(t, gdb, slot.ID))
}

// --------------------------------------------------
// Bookable query
// --------------------------------------------------

func TestFindBookableFiltersAndOrders(t *testing.T) {
	gdb := newTestDB(t)
	repo := repository.NewBookingGormRepository(gdb)
	ctx := context.Background()

	barber := seedBarber(t, gdb)
	day1 := tomorrow()
	day2 := day1.Add(24 * time.Hour)

	// Inserted out of order on purpose.
	seedSlot(t, gdb, barber.ID, day2, domain.PeriodMorning, 2, 0)
	seedSlot(t, gdb, barber.ID, day1, domain.PeriodEvening, 2, 0)
	seedSlot(t, gdb, barber.ID, day1, domain.PeriodMorning, 2, 0)
	seedSlot(t, gdb, barber.ID, day1, domain.PeriodAfternoon, 2, 0)

	full := seedSlot(t, gdb, barber.ID, day2, domain.PeriodAfternoon, 1, 1)
	closed := seedSlot(t, gdb, barber.ID, day2, domain.PeriodEvening, 2, 0)
	require.NoError(t, gdb.Model(&models.TimeSlot{}).
		Where("id = ?", closed.ID).
		UpdateColumn("is_available", false).Error)

	// Outside the range.
	seedSlot(t, gdb, barber.ID, day2.Add(24*time.Hour), domain.PeriodMorning, 2, 0)

	slots, err := repo.FindBookable(ctx, day1, day2)
	require.NoError(t, err)
	require.Len(t, slots, 4)

	type key struct {
		date   string
		period string
	}
	var got []key
	for _, s := range slots {
		assert.True(t, s.IsAvailable)
		assert.Less(t, s.CurrentAppointments, s.MaxAppointments)
		assert.NotEqual(t, full.ID, s.ID)
		assert.NotEqual(t, closed.ID, s.ID)
		got = append(got, key{s.Date.Format("2006-01-02"), s.Period})
	}

	d1 := day1.Format("2006-01-02")
	d2 := day2.Format("2006-01-02")
	assert.Equal(t, []key{
		{d1, "MORNING"},
		{d1, "AFTERNOON"},
		{d1, "EVENING"},
		{d2, "MORNING"},
	}, got)
}

// --------------------------------------------------
// Slot lifecycle
// --------------------------------------------------

func TestCreateSlotIfAbsent(t *testing.T) {
	gdb := newTestDB(t)
	repo := repository.NewBookingGormRepository(gdb)
	ctx := context.Background()

	barber := seedBarber(t, gdb)
	date := tomorrow()

	slot := &models.TimeSlot{
		Date:            domain.UTCDate(date),
		Period:          string(domain.PeriodMorning),
		IsAvailable:     true,
		MaxAppointments: 2,
		BarberID:        barber.ID,
	}

	created, err := repo.CreateSlotIfAbsent(ctx, slot)
	require.NoError(t, err)
	assert.True(t, created)

	dup := &models.TimeSlot{
		Date:            domain.UTCDate(date),
		Period:          string(domain.PeriodMorning),
		IsAvailable:     true,
		MaxAppointments: 2,
		BarberID:        barber.ID,
	}
	created, err = repo.CreateSlotIfAbsent(ctx, dup)
	require.NoError(t, err)
	assert.False(t, created)

	var count int64
	require.NoError(t, gdb.Model(&models.TimeSlot{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestDeleteEmptySlot(t *testing.T) {
	gdb := newTestDB(t)
	repo := repository.NewBookingGormRepository(gdb)
	ctx := context.Background()

	barber := seedBarber(t, gdb)
	svc := seedService(t, gdb, "Cut", "15000.00", 45)
	slot := seedSlot(t, gdb, barber.ID, tomorrow(), domain.PeriodMorning, 2, 0)

	ap := newAppointment(slot.ID, barber.ID)
	require.NoError(t, repo.CreateAppointment(ctx, ap, []models.Service{svc}))

	err := repo.DeleteEmptySlot(ctx, slot.ID)
	assert.True(t, httperr.IsBusiness(err, "slot_has_appointments"))

	// Conflict left everything untouched.
	assert.Equal(t, 1, slotCounter(t, gdb, slot.ID))
	_, err = repo.GetAppointment(ctx, ap.ID)
	require.NoError(t, err)

	require.NoError(t, repo.DeleteAppointment(ctx, ap.ID))
	require.NoError(t, repo.DeleteEmptySlot(ctx, slot.ID))

	_, err = repo.GetSlot(ctx, slot.ID)
	assert.True(t, httperr.IsBusiness(err, "slot_not_found"))

	err = repo.DeleteEmptySlot(ctx, slot.ID)
	assert.True(t, httperr.IsBusiness(err, "slot_not_found"))
}

// --------------------------------------------------
// Catalog reads
// --------------------------------------------------

func TestGetServicesByIDs(t *testing.T) {
	gdb := newTestDB(t)
	repo := repository.NewBookingGormRepository(gdb)
	ctx := context.Background()

	cut := seedService(t, gdb, "Cut", "15000.00", 45)
	trim := seedService(t, gdb, "Trim", "10000.00", 30)

	services, err := repo.GetServicesByIDs(ctx, []uint{cut.ID, trim.ID})
	require.NoError(t, err)
	assert.Len(t, services, 2)

	_, err = repo.GetServicesByIDs(ctx, []uint{cut.ID, 9999})
	assert.True(t, httperr.IsBusiness(err, "service_not_found"))
}

func TestGetBarberNotFound(t *testing.T) {
	gdb := newTestDB(t)
	repo := repository.NewBookingGormRepository(gdb)

	_, err := repo.GetBarber(context.Background(), 42)
	assert.True(t, httperr.IsBusiness(err, "barber_not_found"))
}
