package trip

import (
	"testing"
	"time"

	"poultry-backend/internal/models"

	"github.com/stretchr/testify/assert"
)

func testTrip() *models.Trip {
	return &models.Trip{
		ID:           7,
		TripCode:     "TRP-2025-014",
		Status:       models.TripStatusOngoing,
		Type:         models.TripTypeOriginal,
		SupervisorID: 3,
		Supervisor:   models.User{Name: "Suresh"},
		Date:         time.Date(2025, 11, 3, 0, 0, 0, 0, time.UTC),
		Purchases: []models.Purchase{
			{Seq: 0, VendorID: 1, Vendor: models.Vendor{Name: "Sri Farms"}, DCNumber: "DC-100", Birds: 500, Weight: 750, AvgWeight: 1.5, Rate: 80, Amount: 60000},
		},
		Sales: []models.Sale{
			{Seq: 0, CustomerID: 2, Customer: models.Customer{Name: "Kumar Traders"}, BillNumber: "BILL1", Birds: 200, Weight: 300, AvgWeight: 1.5, Rate: 95, Amount: 28500, ReceivedAmount: 25000, Balance: 3500},
			{Seq: 1, CustomerID: 2, Customer: models.Customer{Name: "Kumar Traders"}, BillNumber: "BILL2", IsReceipt: true, Amount: 3500, CashPaid: 3500, ReceivedAmount: 3500},
		},
		Stocks: []models.StockEntry{
			{Seq: 0, Birds: 300, Weight: 450, Rate: 80, Value: 36000, AddedAt: time.Date(2025, 11, 3, 18, 0, 0, 0, time.UTC)},
		},
	}
}

func TestSnapshotFromTrip(t *testing.T) {
	s := snapshot(testTrip())

	assert.Equal(t, 500, s.Purchased().Birds)
	// Receipt rows never count against inventory.
	assert.Equal(t, 200, s.Sold().Birds)
	assert.Equal(t, 300, s.Stocked().Birds)
	// Remaining is the sellable pool before stock set-asides; stock
	// reservations come off in AvailableForStock.
	assert.Equal(t, 300, s.Remaining().Birds)
	assert.Equal(t, 0, s.AvailableForStock().Birds)
}

func TestSnapshotTransferredTripOpening(t *testing.T) {
	tr := &models.Trip{
		Type:          models.TripTypeTransferred,
		OpeningBirds:  250,
		OpeningWeight: 400,
		OpeningRate:   80,
	}
	s := snapshot(tr)

	assert.Equal(t, 250, s.Purchased().Birds)
	assert.Equal(t, 400.0, s.Purchased().Weight)
	assert.Equal(t, 250, s.Remaining().Birds)
}

func TestMarkActivity(t *testing.T) {
	tr := &models.Trip{Status: models.TripStatusStarted}
	markActivity(tr)
	assert.Equal(t, models.TripStatusOngoing, tr.Status)

	markActivity(tr)
	assert.Equal(t, models.TripStatusOngoing, tr.Status)

	tr.Status = models.TripStatusCompleted
	markActivity(tr)
	assert.Equal(t, models.TripStatusCompleted, tr.Status)
}

func TestBuildTripResponse(t *testing.T) {
	resp := buildTripResponse(testTrip())

	assert.Equal(t, "TRP-2025-014", resp.TripCode)
	assert.Equal(t, "ongoing", resp.Status)
	assert.Equal(t, "2025-11-03", resp.Date)
	assert.Len(t, resp.Sales, 2)
	assert.True(t, resp.Sales[1].IsReceipt)
	assert.Equal(t, 1, resp.Sales[1].Index)

	// Summary is recomputed from the rows, not read from storage.
	assert.Equal(t, 500, resp.Summary.TotalBirdsPurchased)
	// BirdsRemaining reports the pre-stock pool.
	assert.Equal(t, 300, resp.Summary.BirdsRemaining)
	assert.Equal(t, 36000.0, resp.Summary.StockValue)
	assert.Equal(t, 28500.0, resp.Summary.TotalSalesAmount)
	// 28500 sale + 36000 stock - 60000 purchase = 4500. The receipt's
	// 3500 is received cash, not revenue.
	assert.Equal(t, 4500.0, resp.Summary.NetProfit)

	// Empty arrays stay arrays in JSON, never null.
	assert.NotNil(t, resp.Expenses)
	assert.NotNil(t, resp.Transfers)
}
