package models

import "time"

// DieselStation - one fuel fill during the trip. Replaced as a whole
// array, same as expenses.
type DieselStation struct {
	ID        uint      `gorm:"primaryKey"`
	TripID    uint      `gorm:"index;not null"`
	Seq       int       `gorm:"not null"`
	Name      string    `gorm:"size:100;not null"`
	Liters    float64   `gorm:"not null"`
	Amount    float64   `gorm:"not null"`
	Date      time.Time `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
