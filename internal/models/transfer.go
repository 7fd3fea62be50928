package models

import "time"

// TransferRecord - remaining birds/weight moved out of this trip into a
// newly created transferred trip under a different supervisor/vehicle.
type TransferRecord struct {
	ID        uint      `gorm:"primaryKey"`
	TripID    uint      `gorm:"index;not null"` // source trip
	Seq       int       `gorm:"not null"`
	ToTripID  uint      `gorm:"index;not null"`
	Reference string    `gorm:"size:64;not null"` // uuid, correlates both sides
	Birds     int       `gorm:"not null"`
	Weight    float64   `gorm:"not null"`
	Rate      float64   // valuation rate carried to the new trip
	Date      time.Time `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
