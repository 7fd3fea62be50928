package reconcile

import "fmt"

// ValidationError is a gate failure. Gate failures are synchronous and
// block the write entirely; nothing reaches the database.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func required(field, label string) *ValidationError {
	return &ValidationError{Field: field, Message: label + " is required"}
}

// Mandatory-field rule: a zero, empty or missing value is rejected. This
// deliberately makes a legitimately-zero numeric field (a free sample at
// rate 0) indistinguishable from "not filled in"; callers that need real
// zeros must carry a presence flag, which the current forms do not.

// ValidatePurchase checks the mandatory purchase fields:
// supplier, DC number, birds, weight, rate.
func ValidatePurchase(vendorID uint, dcNumber string, birds int, weight, rate float64) error {
	switch {
	case vendorID == 0:
		return required("vendor_id", "Supplier")
	case dcNumber == "":
		return required("dc_number", "DC number")
	case birds == 0:
		return required("birds", "Birds")
	case weight == 0:
		return required("weight", "Weight")
	case rate == 0:
		return required("rate", "Rate")
	}
	return nil
}

// ValidateSale checks mandatory fields for a sale (client, birds, weight,
// rate) and then the capacity rule against the adjusted remainder. The
// shortfall message names the exact available quantity.
func ValidateSale(customerID uint, in SaleInput, remaining Quantity) error {
	if customerID == 0 {
		return required("customer_id", "Client")
	}
	if in.Birds == 0 {
		return required("birds", "Birds")
	}
	if in.Weight == 0 {
		return required("weight", "Weight")
	}
	if in.Rate == 0 {
		return required("rate", "Rate")
	}
	if in.Birds > remaining.Birds {
		return &ValidationError{
			Field:   "birds",
			Message: fmt.Sprintf("Only %d birds are available", remaining.Birds),
		}
	}
	if in.Weight > remaining.Weight {
		return &ValidationError{
			Field:   "weight",
			Message: fmt.Sprintf("Only %.2f kg is available", remaining.Weight),
		}
	}
	return nil
}

// ValidateReceipt checks mandatory fields for a receipt: client and bill
// number. Receipts move no birds so there is no capacity rule.
func ValidateReceipt(customerID uint, billNumber string) error {
	if customerID == 0 {
		return required("customer_id", "Client")
	}
	if billNumber == "" {
		return required("bill_number", "Bill number")
	}
	return nil
}

// ValidateStock checks mandatory stock fields and capacity against what
// is left after sales and existing stock reservations.
func ValidateStock(birds int, weight, rate float64, available Quantity) error {
	switch {
	case birds == 0:
		return required("birds", "Birds")
	case weight == 0:
		return required("weight", "Weight")
	case rate == 0:
		return required("rate", "Rate")
	}
	if birds > available.Birds {
		return &ValidationError{
			Field:   "birds",
			Message: fmt.Sprintf("Only %d birds are available for stock", available.Birds),
		}
	}
	if weight > available.Weight {
		return &ValidationError{
			Field:   "weight",
			Message: fmt.Sprintf("Only %.2f kg is available for stock", available.Weight),
		}
	}
	return nil
}

// ValidateExpense checks one expense row.
func ValidateExpense(category string, amount float64) error {
	if category == "" {
		return required("category", "Category")
	}
	if amount == 0 {
		return required("amount", "Amount")
	}
	return nil
}

// ValidateDiesel checks one diesel station row.
func ValidateDiesel(name string, liters, amount float64) error {
	switch {
	case name == "":
		return required("name", "Station name")
	case liters == 0:
		return required("liters", "Liters")
	case amount == 0:
		return required("amount", "Amount")
	}
	return nil
}

// ValidateOdometer enforces the completion rule: the closing reading may
// not be behind the opening one.
func ValidateOdometer(opening, closing float64) error {
	if closing < opening {
		return &ValidationError{
			Field:   "closing_reading",
			Message: fmt.Sprintf("Closing reading %.1f cannot be less than opening reading %.1f", closing, opening),
		}
	}
	return nil
}

// ValidateMortality bounds the completion figure: mortality can only
// cover birds not otherwise accounted for, and never goes negative.
func ValidateMortality(mortality, unaccounted int) error {
	if mortality < 0 {
		return &ValidationError{
			Field:   "mortality",
			Message: "Mortality must not be negative",
		}
	}
	if mortality > unaccounted {
		return &ValidationError{
			Field:   "mortality",
			Message: fmt.Sprintf("Mortality cannot exceed the %d unaccounted birds", unaccounted),
		}
	}
	return nil
}

// ValidateTransfer checks that a transfer actually moves something and
// does not exceed the remainder.
func ValidateTransfer(birds int, weight float64, remaining Quantity) error {
	if birds == 0 {
		return required("birds", "Birds")
	}
	if weight == 0 {
		return required("weight", "Weight")
	}
	if birds > remaining.Birds {
		return &ValidationError{
			Field:   "birds",
			Message: fmt.Sprintf("Only %d birds are available", remaining.Birds),
		}
	}
	if weight > remaining.Weight {
		return &ValidationError{
			Field:   "weight",
			Message: fmt.Sprintf("Only %.2f kg is available", remaining.Weight),
		}
	}
	return nil
}
