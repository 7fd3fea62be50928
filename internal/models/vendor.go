package models

import "time"

// Vendor - a supplier purchases are booked against.
type Vendor struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"size:100;not null"`
	Phone     string `gorm:"size:30"`
	Place     string `gorm:"size:100"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
