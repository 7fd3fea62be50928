package report

import (
	"testing"
	"time"

	"poultry-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTrip() *models.Trip {
	return &models.Trip{
		TripCode: "TRP-TEST-1",
		Status:   models.TripStatusOngoing,
		Date:     time.Date(2025, 11, 3, 0, 0, 0, 0, time.UTC),
		Place:    "Nandyal",
		Driver:   "Ravi",
		Purchases: []models.Purchase{
			{Seq: 0, DCNumber: "DC-100", Vendor: models.Vendor{Name: "Sri Farms"}, Birds: 500, Weight: 750, AvgWeight: 1.5, Rate: 80, Amount: 60000},
		},
		Sales: []models.Sale{
			{Seq: 0, BillNumber: "BILL1001", Customer: models.Customer{Name: "Kumar Traders"}, Birds: 200, Weight: 300, AvgWeight: 1.5, Rate: 95, Amount: 28500, CashPaid: 20000, OnlinePaid: 5000, ReceivedAmount: 25000, Balance: 3500},
			{Seq: 1, BillNumber: "BILL000042", Customer: models.Customer{Name: "Kumar Traders"}, IsReceipt: true, CashPaid: 3500, ReceivedAmount: 3500},
		},
	}
}

func TestBuildSalesBook(t *testing.T) {
	f, err := BuildSalesBook(sampleTrip())
	require.NoError(t, err)
	defer f.Close()

	// Header and first data row on the sales sheet.
	v, err := f.GetCellValue("Sales Book", "B1")
	require.NoError(t, err)
	assert.Equal(t, "Bill No", v)

	v, _ = f.GetCellValue("Sales Book", "B2")
	assert.Equal(t, "BILL1001", v)
	v, _ = f.GetCellValue("Sales Book", "H2")
	assert.Equal(t, "28500", v)
	v, _ = f.GetCellValue("Sales Book", "N3")
	assert.Equal(t, "Receipt", v)

	// Totals row sits after the last sale.
	v, _ = f.GetCellValue("Sales Book", "C4")
	assert.Equal(t, "Total", v)
	v, _ = f.GetCellValue("Sales Book", "D4")
	assert.Equal(t, "200", v)
	v, _ = f.GetCellValue("Sales Book", "L4")
	assert.Equal(t, "28500", v)

	// Purchases sheet.
	v, _ = f.GetCellValue("Purchases", "B2")
	assert.Equal(t, "DC-100", v)
	v, _ = f.GetCellValue("Purchases", "H3")
	assert.Equal(t, "60000", v)
}

func TestRenderInvoiceHTML(t *testing.T) {
	trip := sampleTrip()
	html, err := RenderInvoiceHTML(trip, trip.Sales[0])
	require.NoError(t, err)

	assert.Contains(t, html, "BILL1001")
	assert.Contains(t, html, "Kumar Traders")
	assert.Contains(t, html, "TRP-TEST-1")
	assert.Contains(t, html, "28500")
}

func TestRenderTripReportHTML(t *testing.T) {
	trip := sampleTrip()
	trip.Expenses = []models.Expense{{Category: "toll", Amount: 450, Date: trip.Date}}
	trip.Diesel = []models.DieselStation{{Name: "HP Junction", Liters: 40, Amount: 3800, Date: trip.Date}}

	html, err := RenderTripReportHTML(trip)
	require.NoError(t, err)

	assert.Contains(t, html, "TRP-TEST-1")
	assert.Contains(t, html, "Sri Farms")
	assert.Contains(t, html, "450")
	assert.Contains(t, html, "3800")
}
