package services

import (
	"fmt"
	"time"

	"github.com/dineres/booking-backend/integration"
	"github.com/dineres/booking-backend/models"
	"github.com/dineres/booking-backend/repositories"
	"github.com/dineres/booking-backend/utils"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"

	maxGuests = 10
)

// ReservationService implements the availability-and-booking workflow.
type ReservationService struct {
	reservations repositories.ReservationRepository
	tables       repositories.TableRepository
	users        repositories.UserRepository
	crm          integration.Notifier
	gastro       integration.Notifier
}

func NewReservationService(
	reservations repositories.ReservationRepository,
	tables repositories.TableRepository,
	users repositories.UserRepository,
	crm integration.Notifier,
	gastro integration.Notifier,
) *ReservationService {
	return &ReservationService{
		reservations: reservations,
		tables:       tables,
		users:        users,
		crm:          crm,
		gastro:       gastro,
	}
}

// NormalizeDate validates a calendar date and returns it in the canonical
// YYYY-MM-DD form used for slot matching.
func NormalizeDate(value string) (string, error) {
	d, err := time.Parse(dateLayout, value)
	if err != nil {
		return "", fmt.Errorf("%w: invalid date %q, expected YYYY-MM-DD", ErrValidation, value)
	}
	return d.Format(dateLayout), nil
}

// NormalizeTime validates a clock time and returns it in the canonical HH:MM
// form used for slot matching.
func NormalizeTime(value string) (string, error) {
	t, err := time.Parse(timeLayout, value)
	if err != nil {
		return "", fmt.Errorf("%w: invalid time %q, expected HH:MM", ErrValidation, value)
	}
	return t.Format(timeLayout), nil
}

// GetAvailableTables returns every table that has no reservation at exactly
// the given (date, time) slot and seats at least numberOfGuests. Slot
// matching is string equality over the canonical forms; reservations at a
// different minute never conflict, since no duration is modelled.
func (s *ReservationService) GetAvailableTables(date, timeOfDay string, numberOfGuests int) ([]models.Table, error) {
	utils.InfoLogger.Printf("Checking available tables for date: %s, time: %s, guests: %d",
		date, timeOfDay, numberOfGuests)

	reservations, err := s.reservations.FindByDateAndTime(date, timeOfDay)
	if err != nil {
		return nil, err
	}
	allTables, err := s.tables.FindAll()
	if err != nil {
		return nil, err
	}

	reservedTableIDs := make(map[uint]struct{}, len(reservations))
	for _, reservation := range reservations {
		reservedTableIDs[reservation.TableID] = struct{}{}
	}

	available := make([]models.Table, 0, len(allTables))
	for _, table := range allTables {
		if _, reserved := reservedTableIDs[table.ID]; reserved {
			continue
		}
		if table.Capacity >= numberOfGuests {
			available = append(available, table)
		}
	}

	utils.InfoLogger.Printf("Found %d available tables out of %d total tables",
		len(available), len(allTables))
	return available, nil
}

// Create persists the reservation and forwards a summary to the CRM and
// Gastro systems. Notifier failures are logged and swallowed: the booking is
// already committed and must not depend on third-party availability. There is
// deliberately no availability re-check here; two concurrent bookings for the
// same slot can both succeed.
func (s *ReservationService) Create(reservation *models.Reservation) (*models.Reservation, error) {
	if err := s.validateReservation(reservation); err != nil {
		return nil, err
	}

	user, err := s.users.FindByID(reservation.UserID)
	if err != nil {
		return nil, fmt.Errorf("%w: unknown user id %d", ErrValidation, reservation.UserID)
	}
	table, err := s.tables.FindByID(reservation.TableID)
	if err != nil {
		return nil, fmt.Errorf("%w: unknown table id %d", ErrValidation, reservation.TableID)
	}

	utils.InfoLogger.Printf("Creating reservation for user: %s, table: %d, date: %s, time: %s",
		user.Name, table.Number, reservation.Date, reservation.Time)

	if err := s.reservations.Create(reservation); err != nil {
		return nil, err
	}

	summary := integration.ReservationSummary{
		ReservationID:       reservation.ID,
		CustomerName:        user.Name,
		CustomerEmail:       user.Email,
		CustomerPhone:       user.Phone,
		TableNumber:         table.Number,
		ReservationDateTime: reservation.Date + "T" + reservation.Time,
		Status:              reservation.Status,
	}
	s.notify(s.crm, summary)
	s.notify(s.gastro, summary)

	reservation.User = *user
	reservation.Table = *table
	return reservation, nil
}

func (s *ReservationService) List() ([]models.Reservation, error) {
	return s.reservations.FindAll()
}

// GetReservationsForTable lists the reservations referencing one table.
func (s *ReservationService) GetReservationsForTable(tableID uint) ([]models.Reservation, error) {
	return s.reservations.FindByTableID(tableID)
}

func (s *ReservationService) notify(notifier integration.Notifier, summary integration.ReservationSummary) {
	if err := notifier.Notify(summary); err != nil {
		utils.ErrorLogger.Printf("Failed to send reservation %d to %s: %v",
			summary.ReservationID, notifier.Name(), err)
	}
}

func (s *ReservationService) validateReservation(reservation *models.Reservation) error {
	date, err := NormalizeDate(reservation.Date)
	if err != nil {
		return err
	}
	reservation.Date = date

	timeOfDay, err := NormalizeTime(reservation.Time)
	if err != nil {
		return err
	}
	reservation.Time = timeOfDay

	if reservation.NumberOfGuests < 1 || reservation.NumberOfGuests > maxGuests {
		return fmt.Errorf("%w: number of guests must be between 1 and %d", ErrValidation, maxGuests)
	}

	if reservation.Status == "" {
		reservation.Status = models.StatusBooked
	}
	switch reservation.Status {
	case models.StatusBooked, models.StatusAvailable, models.StatusCancelled, models.StatusCompleted:
	default:
		return fmt.Errorf("%w: unknown reservation status %q", ErrValidation, reservation.Status)
	}
	return nil
}
