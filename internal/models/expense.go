package models

import "time"

// Expense - a trip running cost (toll, food, loading labour...).
// The API replaces the whole array per trip, so rows carry no identity
// beyond their position.
type Expense struct {
	ID          uint      `gorm:"primaryKey"`
	TripID      uint      `gorm:"index;not null"`
	Seq         int       `gorm:"not null"`
	Category    string    `gorm:"size:100;not null"`
	Amount      float64   `gorm:"not null"`
	Description string    `gorm:"size:255"`
	Date        time.Time `gorm:"not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
