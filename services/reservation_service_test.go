package services_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/dineres/booking-backend/integration"
	"github.com/dineres/booking-backend/models"
	"github.com/dineres/booking-backend/repositories"
	"github.com/dineres/booking-backend/services"
	"github.com/dineres/booking-backend/utils"
)

// fakeNotifier records the summaries it receives and can be told to fail.
type fakeNotifier struct {
	name  string
	fail  bool
	calls []integration.ReservationSummary
}

func (f *fakeNotifier) Name() string { return f.name }

func (f *fakeNotifier) Notify(summary integration.ReservationSummary) error {
	f.calls = append(f.calls, summary)
	if f.fail {
		return errors.New(f.name + " is down")
	}
	return nil
}

type reservationFixture struct {
	svc    *services.ReservationService
	crm    *fakeNotifier
	gastro *fakeNotifier
	user   models.User
	tables []models.Table
}

func newReservationFixture(t *testing.T) *reservationFixture {
	t.Helper()
	utils.InitLogger()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	err = db.AutoMigrate(&models.User{}, &models.Table{}, &models.Reservation{})
	if err != nil {
		t.Fatal(err)
	}

	f := &reservationFixture{
		crm:    &fakeNotifier{name: "crm"},
		gastro: &fakeNotifier{name: "gastro"},
		user:   models.User{Name: "John Doe", Email: "john@example.com", Phone: "0123456789"},
		tables: []models.Table{
			{Number: 1, Capacity: 4},
			{Number: 2, Capacity: 4},
		},
	}
	db.Create(&f.user)
	for i := range f.tables {
		db.Create(&f.tables[i])
	}

	f.svc = services.NewReservationService(
		repositories.NewReservationRepository(db),
		repositories.NewTableRepository(db),
		repositories.NewUserRepository(db),
		f.crm,
		f.gastro,
	)
	return f
}

func (f *reservationFixture) book(t *testing.T, table models.Table, date, timeOfDay string) *models.Reservation {
	t.Helper()
	reservation, err := f.svc.Create(&models.Reservation{
		UserID:         f.user.ID,
		TableID:        table.ID,
		Date:           date,
		Time:           timeOfDay,
		NumberOfGuests: 2,
	})
	assert.NoError(t, err)
	return reservation
}

func TestGetAvailableTablesExcludesReservedSlot(t *testing.T) {
	f := newReservationFixture(t)
	f.book(t, f.tables[0], "2025-08-25", "19:00")

	available, err := f.svc.GetAvailableTables("2025-08-25", "19:00", 2)
	assert.NoError(t, err)
	assert.Len(t, available, 1)
	assert.Equal(t, 2, available[0].Number)
	assert.Equal(t, 4, available[0].Capacity)
}

func TestGetAvailableTablesCapacityFilter(t *testing.T) {
	f := newReservationFixture(t)

	available, err := f.svc.GetAvailableTables("2025-08-25", "19:00", 5)
	assert.NoError(t, err)
	assert.Empty(t, available)

	available, err = f.svc.GetAvailableTables("2025-08-25", "19:00", 4)
	assert.NoError(t, err)
	assert.Len(t, available, 2)
}

func TestGetAvailableTablesExactSlotMatchOnly(t *testing.T) {
	f := newReservationFixture(t)
	f.book(t, f.tables[0], "2025-08-25", "19:00")

	// A different minute is a different slot; no duration is modelled.
	available, err := f.svc.GetAvailableTables("2025-08-25", "19:30", 2)
	assert.NoError(t, err)
	assert.Len(t, available, 2)

	available, err = f.svc.GetAvailableTables("2025-08-26", "19:00", 2)
	assert.NoError(t, err)
	assert.Len(t, available, 2)
}

func TestCreateReservationPersistsWhenNotifiersFail(t *testing.T) {
	f := newReservationFixture(t)
	f.crm.fail = true
	f.gastro.fail = true

	reservation := f.book(t, f.tables[0], "2025-08-25", "19:00")
	assert.NotZero(t, reservation.ID)

	stored, err := f.svc.List()
	assert.NoError(t, err)
	assert.Len(t, stored, 1)
	assert.Equal(t, reservation.ID, stored[0].ID)
}

func TestCreateReservationNotifiesBothSystems(t *testing.T) {
	f := newReservationFixture(t)

	reservation := f.book(t, f.tables[0], "2025-08-25", "19:00")

	assert.Len(t, f.crm.calls, 1)
	assert.Len(t, f.gastro.calls, 1)

	summary := f.crm.calls[0]
	assert.Equal(t, reservation.ID, summary.ReservationID)
	assert.Equal(t, "John Doe", summary.CustomerName)
	assert.Equal(t, "john@example.com", summary.CustomerEmail)
	assert.Equal(t, "0123456789", summary.CustomerPhone)
	assert.Equal(t, 1, summary.TableNumber)
	assert.Equal(t, "2025-08-25T19:00", summary.ReservationDateTime)
	assert.Equal(t, models.StatusBooked, summary.Status)
	assert.Equal(t, summary, f.gastro.calls[0])
}

func TestCreateReservationGastroStillNotifiedWhenCrmFails(t *testing.T) {
	f := newReservationFixture(t)
	f.crm.fail = true

	f.book(t, f.tables[0], "2025-08-25", "19:00")

	assert.Len(t, f.crm.calls, 1)
	assert.Len(t, f.gastro.calls, 1)
}

func TestCreateReservationDefaultsToBooked(t *testing.T) {
	f := newReservationFixture(t)

	reservation := f.book(t, f.tables[0], "2025-08-25", "19:00")
	assert.Equal(t, models.StatusBooked, reservation.Status)
}

func TestCreateReservationValidation(t *testing.T) {
	f := newReservationFixture(t)

	_, err := f.svc.Create(&models.Reservation{
		UserID: f.user.ID, TableID: f.tables[0].ID,
		Date: "25-08-2025", Time: "19:00", NumberOfGuests: 2,
	})
	assert.ErrorIs(t, err, services.ErrValidation)

	_, err = f.svc.Create(&models.Reservation{
		UserID: f.user.ID, TableID: f.tables[0].ID,
		Date: "2025-08-25", Time: "7pm", NumberOfGuests: 2,
	})
	assert.ErrorIs(t, err, services.ErrValidation)

	for _, guests := range []int{0, 11} {
		_, err = f.svc.Create(&models.Reservation{
			UserID: f.user.ID, TableID: f.tables[0].ID,
			Date: "2025-08-25", Time: "19:00", NumberOfGuests: guests,
		})
		assert.ErrorIs(t, err, services.ErrValidation, "guests=%d", guests)
	}

	_, err = f.svc.Create(&models.Reservation{
		UserID: 999, TableID: f.tables[0].ID,
		Date: "2025-08-25", Time: "19:00", NumberOfGuests: 2,
	})
	assert.ErrorIs(t, err, services.ErrValidation)

	_, err = f.svc.Create(&models.Reservation{
		UserID: f.user.ID, TableID: 999,
		Date: "2025-08-25", Time: "19:00", NumberOfGuests: 2,
	})
	assert.ErrorIs(t, err, services.ErrValidation)

	_, err = f.svc.Create(&models.Reservation{
		UserID: f.user.ID, TableID: f.tables[0].ID,
		Date: "2025-08-25", Time: "19:00", NumberOfGuests: 2,
		Status: "PENDING",
	})
	assert.ErrorIs(t, err, services.ErrValidation)

	// Nothing was persisted or forwarded.
	stored, err := f.svc.List()
	assert.NoError(t, err)
	assert.Empty(t, stored)
	assert.Empty(t, f.crm.calls)
}

func TestDoubleBookingIsNotGuarded(t *testing.T) {
	f := newReservationFixture(t)

	first := f.book(t, f.tables[0], "2025-08-25", "19:00")
	second := f.book(t, f.tables[0], "2025-08-25", "19:00")
	assert.NotEqual(t, first.ID, second.ID)

	stored, err := f.svc.List()
	assert.NoError(t, err)
	assert.Len(t, stored, 2)
}

func TestGetReservationsForTable(t *testing.T) {
	f := newReservationFixture(t)
	f.book(t, f.tables[0], "2025-08-25", "19:00")
	f.book(t, f.tables[0], "2025-08-26", "20:00")
	f.book(t, f.tables[1], "2025-08-25", "19:00")

	reservations, err := f.svc.GetReservationsForTable(f.tables[0].ID)
	assert.NoError(t, err)
	assert.Len(t, reservations, 2)
}
