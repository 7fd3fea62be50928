package trip

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"poultry-backend/internal/audit"
	"poultry-backend/internal/database"
	"poultry-backend/internal/models"
	"poultry-backend/internal/reconcile"

	"github.com/gofiber/fiber/v2"
)

type SaleRequest struct {
	CustomerID uint    `json:"customer_id"`
	BillNumber string  `json:"bill_number"` // generated when absent
	Birds      int     `json:"birds"`
	Weight     float64 `json:"weight"`
	Rate       float64 `json:"rate"`
	Amount     float64 `json:"amount"` // receipts only: manually entered
	CashPaid   float64 `json:"cash_paid"`
	OnlinePaid float64 `json:"online_paid"`
	Discount   float64 `json:"discount"`
	IsReceipt  bool    `json:"is_receipt"`
	// Overpayment is a soft gate: the first attempt reports the excess,
	// the retry carries this flag.
	ConfirmOverpayment bool `json:"confirm_overpayment"`
}

func generateBillNumber(isReceipt bool) string {
	if isReceipt {
		return fmt.Sprintf("BILL%06d", rand.Intn(1000000))
	}
	return fmt.Sprintf("BILL%d", time.Now().UnixMilli())
}

// syncCustomerBalance carries the post-record running balance onto the
// customer profile via write. The sale it follows is already committed;
// a write failure leaves the ledger stale and returns false, it never
// unwinds the sale.
func syncCustomerBalance(cu *models.Customer, balance float64, write func(map[string]any) error) bool {
	cu.SetSignedBalance(balance)
	if err := write(map[string]any{
		"outstanding_amount": cu.OutstandingAmount,
		"outstanding_type":   cu.OutstandingType,
	}); err != nil {
		log.Printf("[WARN] customer balance update failed for customer %d: %v", cu.ID, err)
		return false
	}
	return true
}

// saveSale validates, computes and persists one sale or receipt. editIdx
// is -1 for a create, otherwise the index being replaced.
func saveSale(c *fiber.Ctx, t *models.Trip, body SaleRequest, editIdx int) error {
	var customer models.Customer
	if body.CustomerID != 0 {
		if err := database.DB.First(&customer, body.CustomerID).Error; err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Client not found")
		}
	}

	// The customer's running balance BEFORE this record. On an edit the
	// prior record's contribution is not unwound here - matching the
	// source system, edits recompute against the current stored balance.
	in := reconcile.SaleInput{
		Birds:           body.Birds,
		Weight:          body.Weight,
		Rate:            body.Rate,
		CashPaid:        body.CashPaid,
		OnlinePaid:      body.OnlinePaid,
		Discount:        body.Discount,
		CustomerBalance: customer.SignedBalance(),
		IsReceipt:       body.IsReceipt,
		Amount:          body.Amount,
	}

	billNumber := body.BillNumber
	if billNumber == "" && editIdx >= 0 {
		billNumber = t.Sales[editIdx].BillNumber
	}
	if billNumber == "" {
		billNumber = generateBillNumber(body.IsReceipt)
	}

	s := snapshot(t)
	if body.IsReceipt {
		if err := reconcile.ValidateReceipt(body.CustomerID, billNumber); err != nil {
			return gateError(err)
		}
	} else {
		remaining := s.Remaining()
		if editIdx >= 0 {
			remaining = s.RemainingExcludingSale(editIdx)
		}
		if err := reconcile.ValidateSale(body.CustomerID, in, remaining); err != nil {
			return gateError(err)
		}
	}
	for i, existing := range t.Sales {
		if i != editIdx && existing.BillNumber == billNumber {
			return fiber.NewError(fiber.StatusBadRequest, "Bill number already used on this trip")
		}
	}

	res := reconcile.ComputeSale(in)
	if res.Overpaid && !body.ConfirmOverpayment {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"success":               false,
			"error":                 fmt.Sprintf("Payment exceeds the outstanding amount by %.2f. The excess will not be carried as credit.", res.Excess),
			"excess":                res.Excess,
			"confirmation_required": true,
		})
	}

	row := models.Sale{
		TripID:         t.ID,
		Seq:            len(t.Sales),
		CustomerID:     body.CustomerID,
		BillNumber:     billNumber,
		Birds:          body.Birds,
		Weight:         body.Weight,
		AvgWeight:      res.AvgWeight,
		Rate:           body.Rate,
		Amount:         res.Amount,
		CashPaid:       body.CashPaid,
		OnlinePaid:     body.OnlinePaid,
		Discount:       body.Discount,
		ReceivedAmount: res.ReceivedAmount,
		Balance:        res.Balance,
		IsReceipt:      body.IsReceipt,
	}
	if body.IsReceipt {
		row.Birds = 0
		row.Weight = 0
		row.Rate = 0
		row.AvgWeight = 0
	}

	action := models.AuditActionCreate
	var before any
	if editIdx >= 0 {
		old := t.Sales[editIdx]
		before = old
		action = models.AuditActionUpdate
		row.ID = old.ID
		row.Seq = old.Seq
		row.CreatedAt = old.CreatedAt
	}

	markActivity(t)
	if err := database.DB.Save(&row).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Could not save sale")
	}
	persistStatus(t)

	// Second, independent write: push the new running balance onto the
	// customer profile. Best effort - a failure here leaves the sale
	// recorded and the customer ledger stale, reported to the caller but
	// never rolled back.
	balanceSynced := syncCustomerBalance(&customer, res.Balance, func(fields map[string]any) error {
		return database.DB.Model(&models.Customer{}).Where("id = ?", customer.ID).Updates(fields).Error
	})

	userID, userName := currentUser(c)
	kind := "Sale"
	if body.IsReceipt {
		kind = "Receipt"
	}
	logAuditFailure(audit.WriteLog(audit.LogOptions{
		TripID: &t.ID, UserID: userID, UserName: userName,
		EntityType: "sale", EntityID: row.ID, Action: action,
		Description: fmt.Sprintf("%s %s: %s, amount %.2f", kind, billNumber, customer.Name, row.Amount),
		Before:      before, After: row,
	}))

	row.Customer = customer
	if editIdx >= 0 {
		t.Sales[editIdx] = row
	} else {
		t.Sales = append(t.Sales, row)
	}

	status := fiber.StatusCreated
	if editIdx >= 0 {
		status = fiber.StatusOK
	}
	return tripJSON(c, status, t, fiber.Map{"balance_synced": balanceSynced})
}

// POST /api/trips/:id/sales (receipts use the same endpoint with is_receipt)
func CreateSaleHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		t, err := loadTrip(c.Params("id"))
		if err != nil {
			return err
		}
		if err := guardEditable(c, t); err != nil {
			return err
		}

		var body SaleRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		return saveSale(c, t, body, -1)
	}
}

// PUT /api/trips/:id/sales/:index
func UpdateSaleHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		t, err := loadTrip(c.Params("id"))
		if err != nil {
			return err
		}
		if err := guardEditable(c, t); err != nil {
			return err
		}

		idx, err := parseIndex(c, "index", len(t.Sales))
		if err != nil {
			return err
		}

		var body SaleRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		return saveSale(c, t, body, idx)
	}
}
