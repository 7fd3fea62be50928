package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Walks the full trip scenario end to end: one purchase, one sale with
// payments, a rejected over-capacity sale, a stock entry that exhausts
// availability, and a completion with a fully accounted flock.
func TestTripScenario(t *testing.T) {
	s := TripSnapshot{}

	// Purchase: 500 birds, 750kg at 80.
	avg, amount := ComputePurchase(500, 750, 80)
	assert.Equal(t, 1.5, avg)
	assert.Equal(t, 60000.0, amount)
	s.Purchases = append(s.Purchases, PurchaseLine{Birds: 500, Weight: 750, Amount: amount})

	// Sale 1: 200 birds, 300kg at 95, paid 20000 cash + 5000 online.
	in := SaleInput{Birds: 200, Weight: 300, Rate: 95, CashPaid: 20000, OnlinePaid: 5000}
	require.NoError(t, ValidateSale(1, in, s.Remaining()))
	res := ComputeSale(in)
	assert.Equal(t, 28500.0, res.Amount)
	assert.Equal(t, 1.5, res.AvgWeight)
	assert.Equal(t, 3500.0, res.Balance)
	s.Sales = append(s.Sales, SaleLine{Birds: 200, Weight: 300, Amount: res.Amount, Received: res.ReceivedAmount})

	r := s.Remaining()
	assert.Equal(t, 300, r.Birds)
	assert.Equal(t, 450.0, r.Weight)

	// Sale 2 at 350 birds must be rejected naming the limit.
	err := ValidateSale(1, SaleInput{Birds: 350, Weight: 400, Rate: 95}, s.Remaining())
	require.Error(t, err)
	assert.Equal(t, "Only 300 birds are available", err.Error())

	// Stock the remainder at purchase rate.
	require.NoError(t, ValidateStock(300, 450, 80, s.AvailableForStock()))
	s.Stocks = append(s.Stocks, StockLine{Birds: 300, Weight: 450, Value: ComputeStockValue(450, 80)})
	assert.Equal(t, 36000.0, s.Stocks[0].Value)
	assert.Equal(t, 0, s.AvailableForStock().Birds)

	// Completion: everything accounted for, suggested mortality zero.
	assert.Equal(t, 0, s.SuggestMortality())

	sum := Summarize(s, s.SuggestMortality(), 0, 0)
	assert.Equal(t, 500, sum.TotalBirdsPurchased)
	assert.Equal(t, 200, sum.TotalBirdsSold)
	assert.Equal(t, 300, sum.TotalBirdsInStock)
	assert.Equal(t, 80.0, sum.AvgPurchaseRate)
	// 28500 sales + 36000 stock value - 60000 purchases
	assert.Equal(t, 4500.0, sum.NetProfit)

	// Conservation invariant.
	assert.Equal(t, sum.TotalBirdsPurchased,
		sum.TotalBirdsSold+sum.TotalBirdsInStock+sum.BirdsTransferred+sum.Mortality)
}

func TestSummarizeConservationWithMortality(t *testing.T) {
	s := TripSnapshot{
		Purchases: []PurchaseLine{{Birds: 1000, Weight: 1500, Amount: 120000}},
		Sales: []SaleLine{
			{Birds: 600, Weight: 880, Amount: 83600, Received: 80000},
			{IsReceipt: true, Amount: 2000, Received: 2000},
		},
		Stocks:      []StockLine{{Birds: 250, Weight: 380, Value: 30400}},
		Transferred: Quantity{Birds: 120, Weight: 180},
	}

	mortality := s.SuggestMortality()
	assert.Equal(t, 30, mortality)

	sum := Summarize(s, mortality, 4500, 7200)
	assert.Equal(t, sum.TotalBirdsPurchased,
		sum.TotalBirdsSold+sum.TotalBirdsInStock+sum.BirdsTransferred+sum.Mortality)
	// The receipt's amount settles an old balance and stays out of
	// revenue; its cash still counts as received.
	assert.Equal(t, 83600.0, sum.TotalSalesAmount)
	assert.Equal(t, 82000.0, sum.TotalReceivedAmount)
	assert.Equal(t, 4500.0, sum.TotalExpenses)
	assert.Equal(t, 7200.0, sum.TotalDiesel)
}

func TestSummarizeTransferredTripOpening(t *testing.T) {
	s := TripSnapshot{
		Opening:     Quantity{Birds: 300, Weight: 450},
		OpeningRate: 80,
	}
	sum := Summarize(s, 0, 0, 0)
	assert.Equal(t, 300, sum.TotalBirdsPurchased)
	assert.Equal(t, 36000.0, sum.TotalPurchaseAmount)
	assert.Equal(t, 80.0, sum.AvgPurchaseRate)
}
