package models

import "time"

// Reservation statuses. No transition rules are enforced; a reservation is
// created with one of these values and never mutated afterwards.
const (
	StatusBooked    = "BOOKED"
	StatusAvailable = "AVAILABLE"
	StatusCancelled = "CANCELLED"
	StatusCompleted = "COMPLETED"
)

// Reservation books one table for one user at an exact date/time slot.
// Date and Time are stored as canonical "YYYY-MM-DD" and "HH:MM" strings so
// that slot equality is plain string equality. No duration is modelled: two
// reservations conflict only when their recorded (date, time) pairs are
// identical.
type Reservation struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	UserID         uint      `gorm:"not null;index" json:"user_id"`
	User           User      `gorm:"foreignKey:UserID" json:"user"`
	TableID        uint      `gorm:"not null;index" json:"table_id"`
	Table          Table     `gorm:"foreignKey:TableID" json:"table"`
	Date           string    `gorm:"type:varchar(10);not null;index:idx_reservation_slot" json:"date"`
	Time           string    `gorm:"type:varchar(5);not null;index:idx_reservation_slot" json:"time"`
	NumberOfGuests int       `gorm:"not null" json:"number_of_guests"`
	Status         string    `gorm:"type:varchar(20);not null;default:'BOOKED'" json:"status"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
