package models

import "time"

type BalanceType string

const (
	BalanceTypeDebit  BalanceType = "debit"  // customer owes us
	BalanceTypeCredit BalanceType = "credit" // we owe the customer
)

// Customer - a buyer with a running ledger balance carried across trips.
type Customer struct {
	ID    uint   `gorm:"primaryKey"`
	Name  string `gorm:"size:100;not null"`
	Phone string `gorm:"size:30"`
	Place string `gorm:"size:100"`
	// Outstanding balance stored as magnitude + type. SignedBalance
	// converts to the single-signed form the calculator consumes.
	OutstandingAmount float64     `gorm:"not null;default:0"`
	OutstandingType   BalanceType `gorm:"size:10;not null;default:debit"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// SignedBalance returns the balance as a signed number: positive means
// the customer owes, negative means credit.
func (c Customer) SignedBalance() float64 {
	if c.OutstandingType == BalanceTypeCredit {
		return -c.OutstandingAmount
	}
	return c.OutstandingAmount
}

// SetSignedBalance stores a signed balance back as magnitude + type.
func (c *Customer) SetSignedBalance(v float64) {
	if v < 0 {
		c.OutstandingAmount = -v
		c.OutstandingType = BalanceTypeCredit
		return
	}
	c.OutstandingAmount = v
	c.OutstandingType = BalanceTypeDebit
}
