package report

import (
	"fmt"
	"html/template"
	"strings"

	"poultry-backend/internal/models"
)

var invoiceTmpl = template.Must(template.New("invoice").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><style>
body { font-family: sans-serif; font-size: 13px; }
table { border-collapse: collapse; width: 100%; margin-top: 12px; }
td, th { border: 1px solid #999; padding: 6px 10px; text-align: left; }
.total { font-weight: bold; }
</style></head>
<body>
<h2>Invoice {{.BillNumber}}</h2>
<p>Trip: {{.TripCode}} &middot; Date: {{.Date}}</p>
<p>Customer: {{.Customer}}</p>
<table>
<tr><th>Birds</th><th>Weight (kg)</th><th>Avg Wt</th><th>Rate</th><th>Amount</th></tr>
<tr><td>{{.Birds}}</td><td>{{.Weight}}</td><td>{{.AvgWeight}}</td><td>{{.Rate}}</td><td>{{.Amount}}</td></tr>
</table>
<table>
<tr><td>Cash Paid</td><td>{{.CashPaid}}</td></tr>
<tr><td>Online Paid</td><td>{{.OnlinePaid}}</td></tr>
<tr><td>Discount</td><td>{{.Discount}}</td></tr>
<tr class="total"><td>Balance</td><td>{{.Balance}}</td></tr>
</table>
</body>
</html>`))

type invoiceData struct {
	BillNumber string
	TripCode   string
	Date       string
	Customer   string
	Birds      int
	Weight     float64
	AvgWeight  float64
	Rate       float64
	Amount     float64
	CashPaid   float64
	OnlinePaid float64
	Discount   float64
	Balance    float64
}

// RenderInvoiceHTML builds the printable invoice for one sale.
func RenderInvoiceHTML(t *models.Trip, s models.Sale) (string, error) {
	var b strings.Builder
	err := invoiceTmpl.Execute(&b, invoiceData{
		BillNumber: s.BillNumber,
		TripCode:   t.TripCode,
		Date:       s.CreatedAt.Format("2006-01-02"),
		Customer:   s.Customer.Name,
		Birds:      s.Birds,
		Weight:     s.Weight,
		AvgWeight:  s.AvgWeight,
		Rate:       s.Rate,
		Amount:     s.Amount,
		CashPaid:   s.CashPaid,
		OnlinePaid: s.OnlinePaid,
		Discount:   s.Discount,
		Balance:    s.Balance,
	})
	return b.String(), err
}

var tripReportTmpl = template.Must(template.New("trip").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><style>
body { font-family: sans-serif; font-size: 12px; }
table { border-collapse: collapse; width: 100%; margin: 10px 0 18px; }
td, th { border: 1px solid #999; padding: 4px 8px; text-align: left; }
h3 { margin-bottom: 2px; }
</style></head>
<body>
<h2>Trip Report {{.TripCode}}</h2>
<p>Date: {{.Date}} &middot; Place: {{.Place}} &middot; Driver: {{.Driver}} &middot; Status: {{.Status}}</p>

<h3>Purchases</h3>
<table>
<tr><th>DC No</th><th>Supplier</th><th>Birds</th><th>Weight</th><th>Rate</th><th>Amount</th></tr>
{{range .Purchases}}<tr><td>{{.DCNumber}}</td><td>{{.Vendor.Name}}</td><td>{{.Birds}}</td><td>{{.Weight}}</td><td>{{.Rate}}</td><td>{{.Amount}}</td></tr>
{{end}}</table>

<h3>Sales &amp; Receipts</h3>
<table>
<tr><th>Bill No</th><th>Customer</th><th>Birds</th><th>Weight</th><th>Rate</th><th>Amount</th><th>Received</th><th>Balance</th></tr>
{{range .Sales}}<tr><td>{{.BillNumber}}</td><td>{{.Customer.Name}}</td><td>{{.Birds}}</td><td>{{.Weight}}</td><td>{{.Rate}}</td><td>{{.Amount}}</td><td>{{.ReceivedAmount}}</td><td>{{.Balance}}</td></tr>
{{end}}</table>

<h3>Stock</h3>
<table>
<tr><th>Birds</th><th>Weight</th><th>Rate</th><th>Value</th><th>Notes</th></tr>
{{range .Stocks}}<tr><td>{{.Birds}}</td><td>{{.Weight}}</td><td>{{.Rate}}</td><td>{{.Value}}</td><td>{{.Notes}}</td></tr>
{{end}}</table>

<h3>Totals</h3>
<table>
<tr><td>Total Expenses</td><td>{{.TotalExpenses}}</td></tr>
<tr><td>Total Diesel</td><td>{{.TotalDiesel}}</td></tr>
<tr><td>Mortality</td><td>{{.Mortality}}</td></tr>
</table>
</body>
</html>`))

type tripReportData struct {
	TripCode      string
	Date          string
	Place         string
	Driver        string
	Status        string
	Purchases     []models.Purchase
	Sales         []models.Sale
	Stocks        []models.StockEntry
	TotalExpenses float64
	TotalDiesel   float64
	Mortality     int
}

// RenderTripReportHTML builds the full printable trip ledger.
func RenderTripReportHTML(t *models.Trip) (string, error) {
	var expenses, diesel float64
	for _, e := range t.Expenses {
		expenses += e.Amount
	}
	for _, d := range t.Diesel {
		diesel += d.Amount
	}

	var b strings.Builder
	err := tripReportTmpl.Execute(&b, tripReportData{
		TripCode:      t.TripCode,
		Date:          t.Date.Format("2006-01-02"),
		Place:         t.Place,
		Driver:        t.Driver,
		Status:        string(t.Status),
		Purchases:     t.Purchases,
		Sales:         t.Sales,
		Stocks:        t.Stocks,
		TotalExpenses: expenses,
		TotalDiesel:   diesel,
		Mortality:     t.Mortality,
	})
	if err != nil {
		return "", fmt.Errorf("render trip report: %w", err)
	}
	return b.String(), nil
}
