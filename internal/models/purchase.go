package models

import "time"

// Purchase - birds bought from a vendor against a delivery challan.
type Purchase struct {
	ID        uint `gorm:"primaryKey"`
	TripID    uint `gorm:"index;not null"`
	Seq       int  `gorm:"not null"` // position within the trip, addressed by index
	VendorID  uint `gorm:"index;not null"`
	Vendor    Vendor
	DCNumber  string  `gorm:"size:50;not null"` // delivery challan, unique within trip
	Birds     int     `gorm:"not null"`
	Weight    float64 `gorm:"not null"` // kg
	AvgWeight float64
	Rate      float64 `gorm:"not null"` // per kg
	Amount    float64 `gorm:"not null"` // weight * rate
	CreatedAt time.Time
	UpdatedAt time.Time
}
