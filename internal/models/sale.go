package models

import "time"

// Sale - birds sold to a customer, or a bare payment receipt.
// A receipt is a sale row with birds/weight/rate forced to zero and
// IsReceipt set; both live in the same ordered array on the trip.
type Sale struct {
	ID         uint `gorm:"primaryKey"`
	TripID     uint `gorm:"index;not null"`
	Seq        int  `gorm:"not null"`
	CustomerID uint `gorm:"index;not null"`
	Customer   Customer
	BillNumber string `gorm:"size:50;not null"` // unique per trip, auto-generated when absent

	Birds     int
	Weight    float64
	AvgWeight float64
	Rate      float64
	Amount    float64 // weight * rate for sales, manual amount for receipts

	CashPaid       float64
	OnlinePaid     float64
	Discount       float64
	ReceivedAmount float64 // cash + online
	Balance        float64 // customer running balance after this record, clamped at zero

	IsReceipt bool `gorm:"not null;default:false"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
