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

// Expenses and diesel stations are replaced as whole arrays: the client
// edits the list locally and submits it entire.

type ExpenseItem struct {
	Category    string  `json:"category"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
	Date        string  `json:"date"`
}

type ReplaceExpensesRequest struct {
	Expenses []ExpenseItem `json:"expenses"`
}

type DieselItem struct {
	Name   string  `json:"name"`
	Liters float64 `json:"liters"`
	Amount float64 `json:"amount"`
	Date   string  `json:"date"`
}

type ReplaceDieselRequest struct {
	Stations []DieselItem `json:"stations"`
}

// PUT /api/trips/:id/expenses
func ReplaceExpensesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		t, err := loadTrip(c.Params("id"))
		if err != nil {
			return err
		}
		if err := guardEditable(c, t); err != nil {
			return err
		}

		var body ReplaceExpensesRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		// Validate every row before touching the database; the whole
		// replace is all-or-nothing.
		rows := make([]models.Expense, 0, len(body.Expenses))
		for i, item := range body.Expenses {
			if err := reconcile.ValidateExpense(item.Category, item.Amount); err != nil {
				return gateError(err)
			}
			d, err := time.Parse(dateLayout, item.Date)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("Expense %d: date must be 'YYYY-MM-DD'", i))
			}
			rows = append(rows, models.Expense{
				TripID:      t.ID,
				Seq:         i,
				Category:    item.Category,
				Amount:      item.Amount,
				Description: item.Description,
				Date:        d,
			})
		}

		markActivity(t)
		err = database.DB.Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("trip_id = ?", t.ID).Delete(&models.Expense{}).Error; err != nil {
				return err
			}
			if len(rows) > 0 {
				if err := tx.Create(&rows).Error; err != nil {
					return err
				}
			}
			return tx.Model(&models.Trip{}).Where("id = ?", t.ID).Update("status", t.Status).Error
		})
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not save expenses")
		}

		userID, userName := currentUser(c)
		logAuditFailure(audit.WriteLog(audit.LogOptions{
			TripID: &t.ID, UserID: userID, UserName: userName,
			EntityType: "expenses", EntityID: t.ID, Action: models.AuditActionUpdate,
			Description: fmt.Sprintf("Expenses replaced, %d entries", len(rows)),
			Before:      t.Expenses, After: rows,
		}))

		t.Expenses = rows
		return tripJSON(c, fiber.StatusOK, t, nil)
	}
}

// PUT /api/trips/:id/diesel
func ReplaceDieselHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		t, err := loadTrip(c.Params("id"))
		if err != nil {
			return err
		}
		if err := guardEditable(c, t); err != nil {
			return err
		}

		var body ReplaceDieselRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		rows := make([]models.DieselStation, 0, len(body.Stations))
		for i, item := range body.Stations {
			if err := reconcile.ValidateDiesel(item.Name, item.Liters, item.Amount); err != nil {
				return gateError(err)
			}
			d, err := time.Parse(dateLayout, item.Date)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("Station %d: date must be 'YYYY-MM-DD'", i))
			}
			rows = append(rows, models.DieselStation{
				TripID: t.ID,
				Seq:    i,
				Name:   item.Name,
				Liters: item.Liters,
				Amount: item.Amount,
				Date:   d,
			})
		}

		markActivity(t)
		err = database.DB.Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("trip_id = ?", t.ID).Delete(&models.DieselStation{}).Error; err != nil {
				return err
			}
			if len(rows) > 0 {
				if err := tx.Create(&rows).Error; err != nil {
					return err
				}
			}
			return tx.Model(&models.Trip{}).Where("id = ?", t.ID).Update("status", t.Status).Error
		})
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not save diesel stations")
		}

		userID, userName := currentUser(c)
		logAuditFailure(audit.WriteLog(audit.LogOptions{
			TripID: &t.ID, UserID: userID, UserName: userName,
			EntityType: "diesel", EntityID: t.ID, Action: models.AuditActionUpdate,
			Description: fmt.Sprintf("Diesel stations replaced, %d entries", len(rows)),
			Before:      t.Diesel, After: rows,
		}))

		t.Diesel = rows
		return tripJSON(c, fiber.StatusOK, t, nil)
	}
}
