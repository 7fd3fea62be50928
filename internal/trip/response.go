package trip

import (
	"poultry-backend/internal/models"
	"poultry-backend/internal/reconcile"

	"github.com/gofiber/fiber/v2"
)

// Full trip payload. Every mutating endpoint answers with the updated
// trip inside a {success, data} envelope so the client can replace its
// local state wholesale.

type PurchaseResponse struct {
	Index     int     `json:"index"`
	VendorID  uint    `json:"vendor_id"`
	Vendor    string  `json:"vendor"`
	DCNumber  string  `json:"dc_number"`
	Birds     int     `json:"birds"`
	Weight    float64 `json:"weight"`
	AvgWeight float64 `json:"avg_weight"`
	Rate      float64 `json:"rate"`
	Amount    float64 `json:"amount"`
}

type SaleResponse struct {
	Index          int     `json:"index"`
	CustomerID     uint    `json:"customer_id"`
	Customer       string  `json:"customer"`
	BillNumber     string  `json:"bill_number"`
	Birds          int     `json:"birds"`
	Weight         float64 `json:"weight"`
	AvgWeight      float64 `json:"avg_weight"`
	Rate           float64 `json:"rate"`
	Amount         float64 `json:"amount"`
	CashPaid       float64 `json:"cash_paid"`
	OnlinePaid     float64 `json:"online_paid"`
	Discount       float64 `json:"discount"`
	ReceivedAmount float64 `json:"received_amount"`
	Balance        float64 `json:"balance"`
	IsReceipt      bool    `json:"is_receipt"`
}

type ExpenseResponse struct {
	Index       int     `json:"index"`
	Category    string  `json:"category"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
	Date        string  `json:"date"`
}

type DieselResponse struct {
	Index  int     `json:"index"`
	Name   string  `json:"name"`
	Liters float64 `json:"liters"`
	Amount float64 `json:"amount"`
	Date   string  `json:"date"`
}

type StockResponse struct {
	Index   int     `json:"index"`
	Birds   int     `json:"birds"`
	Weight  float64 `json:"weight"`
	Rate    float64 `json:"rate"`
	Value   float64 `json:"value"`
	Notes   string  `json:"notes"`
	AddedAt string  `json:"added_at"`
}

type TransferResponse struct {
	Index     int     `json:"index"`
	ToTripID  uint    `json:"to_trip_id"`
	Reference string  `json:"reference"`
	Birds     int     `json:"birds"`
	Weight    float64 `json:"weight"`
	Rate      float64 `json:"rate"`
	Date      string  `json:"date"`
}

type TripResponse struct {
	ID             uint    `json:"id"`
	TripCode       string  `json:"trip_code"`
	Status         string  `json:"status"`
	Type           string  `json:"type"`
	SupervisorID   uint    `json:"supervisor_id"`
	Supervisor     string  `json:"supervisor"`
	Date           string  `json:"date"`
	Place          string  `json:"place"`
	Driver         string  `json:"driver"`
	Labour         string  `json:"labour"`
	VehicleNumber  string  `json:"vehicle_number"`
	RouteFrom      string  `json:"route_from"`
	RouteTo        string  `json:"route_to"`
	RouteDistance  float64 `json:"route_distance"`
	OpeningReading float64 `json:"opening_reading"`
	ClosingReading float64 `json:"closing_reading"`

	OpeningBirds  int     `json:"opening_birds"`
	OpeningWeight float64 `json:"opening_weight"`
	OpeningRate   float64 `json:"opening_rate"`
	SourceTripID  *uint   `json:"source_trip_id"`

	Mortality          int    `json:"mortality"`
	SuggestedMortality int    `json:"suggested_mortality"`
	FinalRemarks       string `json:"final_remarks"`
	CompletedAt        string `json:"completed_at,omitempty"`

	Purchases []PurchaseResponse `json:"purchases"`
	Sales     []SaleResponse     `json:"sales"`
	Expenses  []ExpenseResponse  `json:"expenses"`
	Diesel    []DieselResponse   `json:"diesel"`
	Stocks    []StockResponse    `json:"stocks"`
	Transfers []TransferResponse `json:"transfer_history"`

	Summary reconcile.Summary `json:"summary"`
}

func buildTripResponse(t *models.Trip) TripResponse {
	resp := TripResponse{
		ID:                 t.ID,
		TripCode:           t.TripCode,
		Status:             string(t.Status),
		Type:               string(t.Type),
		SupervisorID:       t.SupervisorID,
		Supervisor:         t.Supervisor.Name,
		Date:               t.Date.Format(dateLayout),
		Place:              t.Place,
		Driver:             t.Driver,
		Labour:             t.Labour,
		VehicleNumber:      t.VehicleNumber,
		RouteFrom:          t.RouteFrom,
		RouteTo:            t.RouteTo,
		RouteDistance:      t.RouteDistance,
		OpeningReading:     t.OpeningReading,
		ClosingReading:     t.ClosingReading,
		OpeningBirds:       t.OpeningBirds,
		OpeningWeight:      t.OpeningWeight,
		OpeningRate:        t.OpeningRate,
		SourceTripID:       t.SourceTripID,
		Mortality:          t.Mortality,
		SuggestedMortality: t.SuggestedMortality,
		FinalRemarks:       t.FinalRemarks,
		Purchases:          make([]PurchaseResponse, 0, len(t.Purchases)),
		Sales:              make([]SaleResponse, 0, len(t.Sales)),
		Expenses:           make([]ExpenseResponse, 0, len(t.Expenses)),
		Diesel:             make([]DieselResponse, 0, len(t.Diesel)),
		Stocks:             make([]StockResponse, 0, len(t.Stocks)),
		Transfers:          make([]TransferResponse, 0, len(t.Transfers)),
	}
	if t.CompletedAt != nil {
		resp.CompletedAt = t.CompletedAt.Format("2006-01-02 15:04:05")
	}

	for _, p := range t.Purchases {
		resp.Purchases = append(resp.Purchases, PurchaseResponse{
			Index: p.Seq, VendorID: p.VendorID, Vendor: p.Vendor.Name,
			DCNumber: p.DCNumber, Birds: p.Birds, Weight: p.Weight,
			AvgWeight: p.AvgWeight, Rate: p.Rate, Amount: p.Amount,
		})
	}
	for _, s := range t.Sales {
		resp.Sales = append(resp.Sales, SaleResponse{
			Index: s.Seq, CustomerID: s.CustomerID, Customer: s.Customer.Name,
			BillNumber: s.BillNumber, Birds: s.Birds, Weight: s.Weight,
			AvgWeight: s.AvgWeight, Rate: s.Rate, Amount: s.Amount,
			CashPaid: s.CashPaid, OnlinePaid: s.OnlinePaid, Discount: s.Discount,
			ReceivedAmount: s.ReceivedAmount, Balance: s.Balance, IsReceipt: s.IsReceipt,
		})
	}
	for _, e := range t.Expenses {
		resp.Expenses = append(resp.Expenses, ExpenseResponse{
			Index: e.Seq, Category: e.Category, Amount: e.Amount,
			Description: e.Description, Date: e.Date.Format(dateLayout),
		})
	}
	for _, d := range t.Diesel {
		resp.Diesel = append(resp.Diesel, DieselResponse{
			Index: d.Seq, Name: d.Name, Liters: d.Liters,
			Amount: d.Amount, Date: d.Date.Format(dateLayout),
		})
	}
	for _, st := range t.Stocks {
		resp.Stocks = append(resp.Stocks, StockResponse{
			Index: st.Seq, Birds: st.Birds, Weight: st.Weight, Rate: st.Rate,
			Value: st.Value, Notes: st.Notes,
			AddedAt: st.AddedAt.Format("2006-01-02 15:04:05"),
		})
	}
	for _, tr := range t.Transfers {
		resp.Transfers = append(resp.Transfers, TransferResponse{
			Index: tr.Seq, ToTripID: tr.ToTripID, Reference: tr.Reference,
			Birds: tr.Birds, Weight: tr.Weight, Rate: tr.Rate,
			Date: tr.Date.Format(dateLayout),
		})
	}

	totalExpenses := 0.0
	for _, e := range t.Expenses {
		totalExpenses += e.Amount
	}
	totalDiesel := 0.0
	for _, d := range t.Diesel {
		totalDiesel += d.Amount
	}
	resp.Summary = reconcile.Summarize(snapshot(t), t.Mortality, totalExpenses, totalDiesel)

	return resp
}

func tripJSON(c *fiber.Ctx, status int, t *models.Trip, extra fiber.Map) error {
	payload := fiber.Map{
		"success": true,
		"data":    buildTripResponse(t),
	}
	for k, v := range extra {
		payload[k] = v
	}
	return c.Status(status).JSON(payload)
}
