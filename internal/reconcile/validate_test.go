package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatePurchaseMandatoryFields(t *testing.T) {
	tests := []struct {
		name     string
		vendorID uint
		dcNumber string
		birds    int
		weight   float64
		rate     float64
		wantErr  string
	}{
		{"ok", 1, "DC-100", 500, 750, 80, ""},
		{"missing vendor", 0, "DC-100", 500, 750, 80, "Supplier is required"},
		{"missing dc", 1, "", 500, 750, 80, "DC number is required"},
		{"zero birds", 1, "DC-100", 0, 750, 80, "Birds is required"},
		{"zero weight", 1, "DC-100", 1, 0, 80, "Weight is required"},
		{"zero rate", 1, "DC-100", 500, 750, 0, "Rate is required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePurchase(tt.vendorID, tt.dcNumber, tt.birds, tt.weight, tt.rate)
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Equal(t, tt.wantErr, err.Error())
			}
		})
	}
}

func TestValidateSaleCapacity(t *testing.T) {
	remaining := Quantity{Birds: 300, Weight: 450}

	// Exactly the remainder is accepted.
	err := ValidateSale(1, SaleInput{Birds: 300, Weight: 450, Rate: 95}, remaining)
	assert.NoError(t, err)

	// One over is rejected, naming the limit.
	err = ValidateSale(1, SaleInput{Birds: 350, Weight: 450, Rate: 95}, remaining)
	require.Error(t, err)
	assert.Equal(t, "Only 300 birds are available", err.Error())

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "birds", verr.Field)

	err = ValidateSale(1, SaleInput{Birds: 100, Weight: 500, Rate: 95}, remaining)
	require.Error(t, err)
	assert.Equal(t, "Only 450.00 kg is available", err.Error())
}

func TestValidateSaleMandatoryFields(t *testing.T) {
	remaining := Quantity{Birds: 100, Weight: 150}

	assert.EqualError(t, ValidateSale(0, SaleInput{Birds: 1, Weight: 1, Rate: 1}, remaining), "Client is required")
	assert.EqualError(t, ValidateSale(1, SaleInput{Birds: 0, Weight: 1, Rate: 1}, remaining), "Birds is required")
	assert.EqualError(t, ValidateSale(1, SaleInput{Birds: 1, Weight: 0, Rate: 1}, remaining), "Weight is required")
	assert.EqualError(t, ValidateSale(1, SaleInput{Birds: 1, Weight: 1, Rate: 0}, remaining), "Rate is required")
}

func TestValidateReceipt(t *testing.T) {
	assert.NoError(t, ValidateReceipt(1, "BILL123456"))
	assert.EqualError(t, ValidateReceipt(0, "BILL123456"), "Client is required")
	assert.EqualError(t, ValidateReceipt(1, ""), "Bill number is required")
}

func TestValidateStock(t *testing.T) {
	available := Quantity{Birds: 300, Weight: 450}

	assert.NoError(t, ValidateStock(300, 450, 80, available))

	err := ValidateStock(301, 450, 80, available)
	require.Error(t, err)
	assert.Equal(t, "Only 300 birds are available for stock", err.Error())

	err = ValidateStock(300, 451, 80, available)
	require.Error(t, err)
	assert.Equal(t, "Only 450.00 kg is available for stock", err.Error())

	assert.EqualError(t, ValidateStock(0, 450, 80, available), "Birds is required")
	assert.EqualError(t, ValidateStock(300, 450, 0, available), "Rate is required")
}

func TestValidateOdometer(t *testing.T) {
	assert.NoError(t, ValidateOdometer(1000, 1450))
	assert.NoError(t, ValidateOdometer(1000, 1000))

	err := ValidateOdometer(1000, 999)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot be less than opening reading")
}

func TestValidateTransfer(t *testing.T) {
	remaining := Quantity{Birds: 300, Weight: 450}

	assert.NoError(t, ValidateTransfer(300, 450, remaining))
	assert.EqualError(t, ValidateTransfer(0, 450, remaining), "Birds is required")
	assert.EqualError(t, ValidateTransfer(301, 450, remaining), "Only 300 birds are available")
	assert.EqualError(t, ValidateTransfer(300, 451, remaining), "Only 450.00 kg is available")
}

// Stocked birds are spoken for. A transfer sized to the raw remainder
// must fail once its stock set-asides are netted out, otherwise the
// completed flock can never balance.
func TestValidateTransferExcludesStockReservations(t *testing.T) {
	s := TripSnapshot{
		Purchases: []PurchaseLine{{Birds: 500, Weight: 750}},
		Stocks:    []StockLine{{Birds: 300, Weight: 450}},
	}

	movable := s.AvailableForStock()
	assert.Equal(t, 200, movable.Birds)

	assert.EqualError(t, ValidateTransfer(s.Remaining().Birds, s.Remaining().Weight, movable),
		"Only 200 birds are available")
	assert.NoError(t, ValidateTransfer(200, 300, movable))

	// Moving the movable pool keeps the flock accountable.
	s.Transferred = Quantity{Birds: 200, Weight: 300}
	assert.Equal(t, s.Purchased().Birds,
		s.Sold().Birds+s.Stocked().Birds+s.Transferred.Birds+s.SuggestMortality())
}

func TestValidateMortality(t *testing.T) {
	assert.NoError(t, ValidateMortality(0, 0))
	assert.NoError(t, ValidateMortality(30, 30))
	assert.EqualError(t, ValidateMortality(-1, 30), "Mortality must not be negative")
	assert.EqualError(t, ValidateMortality(31, 30), "Mortality cannot exceed the 30 unaccounted birds")
}

func TestValidateExpenseAndDiesel(t *testing.T) {
	assert.NoError(t, ValidateExpense("toll", 120))
	assert.EqualError(t, ValidateExpense("", 120), "Category is required")
	assert.EqualError(t, ValidateExpense("toll", 0), "Amount is required")

	assert.NoError(t, ValidateDiesel("HP Junction", 40, 3800))
	assert.EqualError(t, ValidateDiesel("", 40, 3800), "Station name is required")
	assert.EqualError(t, ValidateDiesel("HP Junction", 0, 3800), "Liters is required")
	assert.EqualError(t, ValidateDiesel("HP Junction", 40, 0), "Amount is required")
}
