package report

import (
	"fmt"

	"poultry-backend/internal/models"

	"github.com/xuri/excelize/v2"
)

// BuildSalesBook renders a trip's purchases and sales into a workbook.
// Pure presentation over already-persisted rows.
func BuildSalesBook(t *models.Trip) (*excelize.File, error) {
	f := excelize.NewFile()

	const salesSheet = "Sales Book"
	f.SetSheetName("Sheet1", salesSheet)

	salesHeader := []any{"#", "Bill No", "Customer", "Birds", "Weight (kg)", "Avg Wt", "Rate", "Amount", "Cash", "Online", "Discount", "Received", "Balance", "Type"}
	if err := f.SetSheetRow(salesSheet, "A1", &salesHeader); err != nil {
		return nil, err
	}

	var totalBirds int
	var totalWeight, totalAmount, totalReceived float64
	for i, s := range t.Sales {
		kind := "Sale"
		if s.IsReceipt {
			kind = "Receipt"
		}
		row := []any{
			i + 1, s.BillNumber, s.Customer.Name, s.Birds, s.Weight, s.AvgWeight,
			s.Rate, s.Amount, s.CashPaid, s.OnlinePaid, s.Discount,
			s.ReceivedAmount, s.Balance, kind,
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(salesSheet, cell, &row); err != nil {
			return nil, err
		}
		totalBirds += s.Birds
		totalWeight += s.Weight
		totalAmount += s.Amount
		totalReceived += s.ReceivedAmount
	}

	totals := []any{"", "", "Total", totalBirds, totalWeight, "", "", totalAmount, "", "", "", totalReceived, ""}
	if err := f.SetSheetRow(salesSheet, fmt.Sprintf("A%d", len(t.Sales)+2), &totals); err != nil {
		return nil, err
	}

	const purchaseSheet = "Purchases"
	if _, err := f.NewSheet(purchaseSheet); err != nil {
		return nil, err
	}
	purchaseHeader := []any{"#", "DC No", "Supplier", "Birds", "Weight (kg)", "Avg Wt", "Rate", "Amount"}
	if err := f.SetSheetRow(purchaseSheet, "A1", &purchaseHeader); err != nil {
		return nil, err
	}
	var pBirds int
	var pWeight, pAmount float64
	for i, p := range t.Purchases {
		row := []any{i + 1, p.DCNumber, p.Vendor.Name, p.Birds, p.Weight, p.AvgWeight, p.Rate, p.Amount}
		if err := f.SetSheetRow(purchaseSheet, fmt.Sprintf("A%d", i+2), &row); err != nil {
			return nil, err
		}
		pBirds += p.Birds
		pWeight += p.Weight
		pAmount += p.Amount
	}
	pTotals := []any{"", "", "Total", pBirds, pWeight, "", "", pAmount}
	if err := f.SetSheetRow(purchaseSheet, fmt.Sprintf("A%d", len(t.Purchases)+2), &pTotals); err != nil {
		return nil, err
	}

	return f, nil
}
