package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeSaleDerivesFieldsInOrder(t *testing.T) {
	res := ComputeSale(SaleInput{
		Birds:           200,
		Weight:          300,
		Rate:            95,
		CashPaid:        20000,
		OnlinePaid:      5000,
		CustomerBalance: 0,
	})

	assert.Equal(t, 1.5, res.AvgWeight)
	assert.Equal(t, 28500.0, res.Amount)
	assert.Equal(t, 25000.0, res.ReceivedAmount)
	assert.Equal(t, 3500.0, res.Balance)
	assert.False(t, res.Overpaid)
}

func TestComputeSaleAvgWeight(t *testing.T) {
	tests := []struct {
		name   string
		birds  int
		weight float64
		want   float64
	}{
		{"normal", 3, 5, 1.67},
		{"exact", 500, 750, 1.5},
		{"zero birds", 0, 100, 0},
		{"zero weight", 100, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := ComputeSale(SaleInput{Birds: tt.birds, Weight: tt.weight, Rate: 80})
			assert.Equal(t, tt.want, res.AvgWeight)
		})
	}
}

func TestComputeSaleBalanceClampsAtZero(t *testing.T) {
	res := ComputeSale(SaleInput{
		Birds:           10,
		Weight:          15,
		Rate:            100, // amount 1500
		CashPaid:        2000,
		CustomerBalance: 0,
	})

	assert.Equal(t, 0.0, res.Balance)
	assert.True(t, res.Overpaid)
	assert.Equal(t, 500.0, res.Excess)
	assert.Equal(t, -500.0, res.RawBalance)
}

func TestComputeSaleBalanceNeverNegative(t *testing.T) {
	// Sweep a grid of non-negative inputs; the clamp must hold everywhere.
	values := []float64{0, 1, 499.99, 1000, 25000}
	for _, bal := range values {
		for _, cash := range values {
			for _, disc := range values {
				res := ComputeSale(SaleInput{
					Birds:           10,
					Weight:          20,
					Rate:            80,
					CashPaid:        cash,
					Discount:        disc,
					CustomerBalance: bal,
				})
				assert.GreaterOrEqual(t, res.Balance, 0.0)
			}
		}
	}
}

func TestComputeSaleCarriesPriorBalance(t *testing.T) {
	res := ComputeSale(SaleInput{
		Birds:           10,
		Weight:          15,
		Rate:            100,
		CashPaid:        1000,
		Discount:        200,
		CustomerBalance: 700,
	})
	// 700 + 1500 - 1000 - 200
	assert.Equal(t, 1000.0, res.Balance)
}

func TestComputeSaleReceipt(t *testing.T) {
	res := ComputeSale(SaleInput{
		IsReceipt:       true,
		Amount:          0,
		Birds:           50, // must be ignored
		Weight:          80,
		Rate:            90,
		CashPaid:        3000,
		CustomerBalance: 5000,
	})

	assert.Equal(t, 0.0, res.AvgWeight)
	assert.Equal(t, 0.0, res.Amount)
	assert.Equal(t, 3000.0, res.ReceivedAmount)
	assert.Equal(t, 2000.0, res.Balance)
}

func TestComputeSaleReceiptManualAmount(t *testing.T) {
	// A receipt can carry a standalone amount (an adjustment entry).
	res := ComputeSale(SaleInput{
		IsReceipt:       true,
		Amount:          1200,
		OnlinePaid:      1200,
		CustomerBalance: 0,
	})
	assert.Equal(t, 1200.0, res.Amount)
	assert.Equal(t, 0.0, res.Balance)
}

func TestComputePurchase(t *testing.T) {
	avg, amount := ComputePurchase(500, 750, 80)
	assert.Equal(t, 1.5, avg)
	assert.Equal(t, 60000.0, amount)

	avg, amount = ComputePurchase(0, 0, 80)
	assert.Equal(t, 0.0, avg)
	assert.Equal(t, 0.0, amount)
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 1.67, Round2(5.0/3.0))
	assert.Equal(t, 0.1, Round2(0.1))
	assert.Equal(t, 2.35, Round2(2.345000001))
}
