package models

import "time"

type TripStatus string

const (
	TripStatusStarted   TripStatus = "started"
	TripStatusOngoing   TripStatus = "ongoing"
	TripStatusCompleted TripStatus = "completed"
)

type TripType string

const (
	TripTypeOriginal    TripType = "original"
	TripTypeTransferred TripType = "transferred"
)

// Trip - one vehicle dispatch cycle: purchase, sale and logistics of live birds.
// Child rows are ordered by Seq so the API can address entries by index.
type Trip struct {
	ID           uint       `gorm:"primaryKey"`
	TripCode     string     `gorm:"size:50;uniqueIndex;not null"` // display code, e.g. "TRP-2025-014"
	Status       TripStatus `gorm:"size:20;not null;default:started;index"`
	Type         TripType   `gorm:"size:20;not null;default:original"`
	SupervisorID uint       `gorm:"index;not null"`
	Supervisor   User

	Date          time.Time `gorm:"index;not null"`
	Place         string    `gorm:"size:100"`
	Driver        string    `gorm:"size:100"`
	Labour        string    `gorm:"size:100"`
	VehicleNumber string    `gorm:"size:30"`
	RouteFrom     string    `gorm:"size:100"`
	RouteTo       string    `gorm:"size:100"`
	RouteDistance float64

	OpeningReading float64 // odometer at dispatch
	ClosingReading float64 // odometer at completion

	// Opening stock inherited from a transfer. Zero on original trips.
	// Transferred trips cannot record purchases; these fields play the
	// purchased-total role in the ledger instead.
	OpeningBirds  int
	OpeningWeight float64
	OpeningRate   float64
	SourceTripID  *uint // trip this one was carved out of

	// Filled at completion.
	Mortality          int
	SuggestedMortality int    // residual computed at completion time, kept for audit
	FinalRemarks       string `gorm:"size:500"`
	CompletedAt        *time.Time

	Purchases []Purchase       `gorm:"foreignKey:TripID;constraint:OnDelete:CASCADE"`
	Sales     []Sale           `gorm:"foreignKey:TripID;constraint:OnDelete:CASCADE"`
	Expenses  []Expense        `gorm:"foreignKey:TripID;constraint:OnDelete:CASCADE"`
	Diesel    []DieselStation  `gorm:"foreignKey:TripID;constraint:OnDelete:CASCADE"`
	Stocks    []StockEntry     `gorm:"foreignKey:TripID;constraint:OnDelete:CASCADE"`
	Transfers []TransferRecord `gorm:"foreignKey:TripID;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
