package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func snapshotWithOnePurchase() TripSnapshot {
	return TripSnapshot{
		Purchases: []PurchaseLine{{Birds: 500, Weight: 750, Amount: 60000}},
	}
}

func TestRemainingEmptyTrip(t *testing.T) {
	var s TripSnapshot
	assert.Equal(t, Quantity{}, s.Remaining())
	assert.Equal(t, Quantity{}, s.AvailableForStock())
	assert.Equal(t, 0, s.SuggestMortality())
}

func TestRemainingAfterSales(t *testing.T) {
	s := snapshotWithOnePurchase()
	s.Sales = []SaleLine{{Birds: 200, Weight: 300, Amount: 28500}}

	r := s.Remaining()
	assert.Equal(t, 300, r.Birds)
	assert.Equal(t, 450.0, r.Weight)
}

func TestReceiptsDoNotConsumeInventory(t *testing.T) {
	s := snapshotWithOnePurchase()
	s.Sales = []SaleLine{{IsReceipt: true, Amount: 0, Received: 5000}}

	assert.Equal(t, 500, s.Remaining().Birds)
	assert.Equal(t, 750.0, s.Remaining().Weight)
}

func TestAvailableForStockSubtractsReservations(t *testing.T) {
	s := snapshotWithOnePurchase()
	s.Sales = []SaleLine{{Birds: 200, Weight: 300}}
	s.Stocks = []StockLine{{Birds: 100, Weight: 150}}

	a := s.AvailableForStock()
	assert.Equal(t, 200, a.Birds)
	assert.Equal(t, 300.0, a.Weight)
}

func TestEditAddBackSymmetry(t *testing.T) {
	// Editing a sale without changing birds/weight must net to identity:
	// the add-back plus the re-subtraction of the same values leaves the
	// remainder exactly where it started.
	s := snapshotWithOnePurchase()
	s.Sales = []SaleLine{
		{Birds: 200, Weight: 300},
		{Birds: 100, Weight: 150},
	}

	before := s.Remaining()
	adjusted := s.RemainingExcludingSale(1)
	assert.Equal(t, before.Birds+100, adjusted.Birds)
	assert.Equal(t, before.Weight+150, adjusted.Weight)

	// Re-apply identical values.
	after := adjusted.Sub(Quantity{Birds: 100, Weight: 150})
	assert.Equal(t, before, after)
}

func TestRemainingExcludingSaleOutOfRange(t *testing.T) {
	s := snapshotWithOnePurchase()
	s.Sales = []SaleLine{{Birds: 200, Weight: 300}}

	assert.Equal(t, s.Remaining(), s.RemainingExcludingSale(5))
	assert.Equal(t, s.Remaining(), s.RemainingExcludingSale(-1))
}

func TestAvailableForStockExcluding(t *testing.T) {
	s := snapshotWithOnePurchase()
	s.Stocks = []StockLine{{Birds: 300, Weight: 450}}

	a := s.AvailableForStockExcluding(0)
	assert.Equal(t, 500, a.Birds)
	assert.Equal(t, 750.0, a.Weight)
}

func TestTransferredTripOpeningCountsAsPurchased(t *testing.T) {
	s := TripSnapshot{
		Opening:     Quantity{Birds: 120, Weight: 180},
		OpeningRate: 80,
	}
	assert.Equal(t, 120, s.Purchased().Birds)
	assert.Equal(t, 120, s.Remaining().Birds)

	// A transferred trip with no transfer-in yet simply has zero remaining.
	var empty TripSnapshot
	assert.Equal(t, 0, empty.Remaining().Birds)
}

func TestTransferReducesRemaining(t *testing.T) {
	s := snapshotWithOnePurchase()
	s.Transferred = Quantity{Birds: 150, Weight: 225}

	r := s.Remaining()
	assert.Equal(t, 350, r.Birds)
	assert.Equal(t, 525.0, r.Weight)
}

func TestSuggestMortality(t *testing.T) {
	s := snapshotWithOnePurchase()
	s.Sales = []SaleLine{{Birds: 200, Weight: 300}}
	s.Stocks = []StockLine{{Birds: 290, Weight: 440}}

	assert.Equal(t, 10, s.SuggestMortality())
}

func TestSuggestMortalityClampedAtZero(t *testing.T) {
	s := snapshotWithOnePurchase()
	s.Sales = []SaleLine{{Birds: 510, Weight: 760}} // over-sold data entry
	assert.Equal(t, 0, s.SuggestMortality())
}
