package repositories

import (
	"gorm.io/gorm"

	"github.com/dineres/booking-backend/models"
)

type ReservationRepository interface {
	Create(reservation *models.Reservation) error
	FindByDateAndTime(date, time string) ([]models.Reservation, error)
	FindByTableID(tableID uint) ([]models.Reservation, error)
	FindAll() ([]models.Reservation, error)
}

type GormReservationRepository struct {
	db *gorm.DB
}

func NewReservationRepository(db *gorm.DB) *GormReservationRepository {
	return &GormReservationRepository{db: db}
}

func (r *GormReservationRepository) Create(reservation *models.Reservation) error {
	return r.db.Create(reservation).Error
}

// FindByDateAndTime matches the slot exactly. Availability is defined over
// this exact-match filter, not an interval overlap.
func (r *GormReservationRepository) FindByDateAndTime(date, time string) ([]models.Reservation, error) {
	var reservations []models.Reservation
	err := r.db.Where("date = ? AND time = ?", date, time).Find(&reservations).Error
	if err != nil {
		return nil, err
	}
	return reservations, nil
}

// FindByTableID replaces the old table->reservations back-reference with a
// query over the reservation store.
func (r *GormReservationRepository) FindByTableID(tableID uint) ([]models.Reservation, error) {
	var reservations []models.Reservation
	err := r.db.Where("table_id = ?", tableID).Find(&reservations).Error
	if err != nil {
		return nil, err
	}
	return reservations, nil
}

func (r *GormReservationRepository) FindAll() ([]models.Reservation, error) {
	var reservations []models.Reservation
	err := r.db.Preload("User").Preload("Table").Find(&reservations).Error
	if err != nil {
		return nil, err
	}
	return reservations, nil
}
