package models

import "time"

// StockEntry - birds retained rather than sold, carried at purchase-rate
// valuation and excluded from profit until the trip is finalized.
type StockEntry struct {
	ID        uint      `gorm:"primaryKey"`
	TripID    uint      `gorm:"index;not null"`
	Seq       int       `gorm:"not null"`
	Birds     int       `gorm:"not null"`
	Weight    float64   `gorm:"not null"`
	Rate      float64   `gorm:"not null"`
	Value     float64   `gorm:"not null"` // weight * rate
	Notes     string    `gorm:"size:255"`
	AddedAt   time.Time `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
