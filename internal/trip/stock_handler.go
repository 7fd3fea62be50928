package trip

import (
	"fmt"
	"time"

	"poultry-backend/internal/audit"
	"poultry-backend/internal/database"
	"poultry-backend/internal/models"
	"poultry-backend/internal/reconcile"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type StockRequest struct {
	Birds  int     `json:"birds"`
	Weight float64 `json:"weight"`
	Rate   float64 `json:"rate"`
	Notes  string  `json:"notes"`
}

// POST /api/trips/:id/stock
func CreateStockHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		t, err := loadTrip(c.Params("id"))
		if err != nil {
			return err
		}
		if err := guardEditable(c, t); err != nil {
			return err
		}

		var body StockRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		if err := reconcile.ValidateStock(body.Birds, body.Weight, body.Rate, snapshot(t).AvailableForStock()); err != nil {
			return gateError(err)
		}

		row := models.StockEntry{
			TripID:  t.ID,
			Seq:     len(t.Stocks),
			Birds:   body.Birds,
			Weight:  body.Weight,
			Rate:    body.Rate,
			Value:   reconcile.ComputeStockValue(body.Weight, body.Rate),
			Notes:   body.Notes,
			AddedAt: time.Now(),
		}

		markActivity(t)
		if err := database.DB.Create(&row).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not save stock entry")
		}
		persistStatus(t)

		userID, userName := currentUser(c)
		logAuditFailure(audit.WriteLog(audit.LogOptions{
			TripID: &t.ID, UserID: userID, UserName: userName,
			EntityType: "stock", EntityID: row.ID, Action: models.AuditActionCreate,
			Description: fmt.Sprintf("Stock added: %d birds, %.2f kg", row.Birds, row.Weight),
			After:       row,
		}))

		t.Stocks = append(t.Stocks, row)
		return tripJSON(c, fiber.StatusCreated, t, nil)
	}
}

// PUT /api/trips/:id/stock/:index
func UpdateStockHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		t, err := loadTrip(c.Params("id"))
		if err != nil {
			return err
		}
		if err := guardEditable(c, t); err != nil {
			return err
		}

		idx, err := parseIndex(c, "index", len(t.Stocks))
		if err != nil {
			return err
		}

		var body StockRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		// Add the entry's own reservation back before comparing.
		available := snapshot(t).AvailableForStockExcluding(idx)
		if err := reconcile.ValidateStock(body.Birds, body.Weight, body.Rate, available); err != nil {
			return gateError(err)
		}

		old := t.Stocks[idx]
		updated := old
		updated.Birds = body.Birds
		updated.Weight = body.Weight
		updated.Rate = body.Rate
		updated.Value = reconcile.ComputeStockValue(body.Weight, body.Rate)
		updated.Notes = body.Notes

		markActivity(t)
		if err := database.DB.Save(&updated).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not update stock entry")
		}
		persistStatus(t)

		userID, userName := currentUser(c)
		logAuditFailure(audit.WriteLog(audit.LogOptions{
			TripID: &t.ID, UserID: userID, UserName: userName,
			EntityType: "stock", EntityID: updated.ID, Action: models.AuditActionUpdate,
			Description: fmt.Sprintf("Stock %d updated", idx),
			Before:      old, After: updated,
		}))

		t.Stocks[idx] = updated
		return tripJSON(c, fiber.StatusOK, t, nil)
	}
}

// DELETE /api/trips/:id/stock/:index
func DeleteStockHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		t, err := loadTrip(c.Params("id"))
		if err != nil {
			return err
		}
		if err := guardEditable(c, t); err != nil {
			return err
		}

		idx, err := parseIndex(c, "index", len(t.Stocks))
		if err != nil {
			return err
		}
		old := t.Stocks[idx]

		// Remove the row and close the seq gap so later indexes stay dense.
		err = database.DB.Transaction(func(tx *gorm.DB) error {
			if err := tx.Delete(&models.StockEntry{}, old.ID).Error; err != nil {
				return err
			}
			return tx.Model(&models.StockEntry{}).
				Where("trip_id = ? AND seq > ?", t.ID, idx).
				Update("seq", gorm.Expr("seq - 1")).Error
		})
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not delete stock entry")
		}

		userID, userName := currentUser(c)
		logAuditFailure(audit.WriteLog(audit.LogOptions{
			TripID: &t.ID, UserID: userID, UserName: userName,
			EntityType: "stock", EntityID: old.ID, Action: models.AuditActionDelete,
			Description: fmt.Sprintf("Stock %d deleted", idx),
			Before:      old,
		}))

		t.Stocks = append(t.Stocks[:idx], t.Stocks[idx+1:]...)
		for i := range t.Stocks {
			t.Stocks[i].Seq = i
		}
		return tripJSON(c, fiber.StatusOK, t, nil)
	}
}
