package report

import (
	"bytes"
	"fmt"
	"strconv"

	"poultry-backend/internal/config"
	"poultry-backend/internal/database"
	"poultry-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func loadTrip(id string) (*models.Trip, error) {
	bySeq := func(db *gorm.DB) *gorm.DB { return db.Order("seq asc") }

	var t models.Trip
	err := database.DB.
		Preload("Purchases", bySeq).
		Preload("Purchases.Vendor").
		Preload("Sales", bySeq).
		Preload("Sales.Customer").
		Preload("Expenses", bySeq).
		Preload("Diesel", bySeq).
		Preload("Stocks", bySeq).
		First(&t, "id = ?", id).Error
	if err != nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "Trip not found")
	}
	return &t, nil
}

// GET /api/trips/:id/report/sales-book
func SalesBookHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		t, err := loadTrip(c.Params("id"))
		if err != nil {
			return err
		}

		f, err := BuildSalesBook(t)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not build workbook")
		}

		var buf bytes.Buffer
		if err := f.Write(&buf); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not write workbook")
		}

		c.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Set("Content-Disposition", fmt.Sprintf(`attachment; filename="sales-book-%s.xlsx"`, t.TripCode))
		return c.Send(buf.Bytes())
	}
}

// GET /api/trips/:id/report/pdf
func TripReportPDFHandler(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if cfg.GotenbergURL == "" {
			return fiber.NewError(fiber.StatusServiceUnavailable, "PDF rendering is not configured")
		}

		t, err := loadTrip(c.Params("id"))
		if err != nil {
			return err
		}

		html, err := RenderTripReportHTML(t)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not render report")
		}

		pdf, err := NewGotenbergClient(cfg.GotenbergURL).RenderHTML(c.Context(), html)
		if err != nil {
			return fiber.NewError(fiber.StatusServiceUnavailable, "PDF service unavailable")
		}

		c.Set("Content-Type", "application/pdf")
		c.Set("Content-Disposition", fmt.Sprintf(`attachment; filename="trip-%s.pdf"`, t.TripCode))
		return c.Send(pdf)
	}
}

// GET /api/trips/:id/sales/:index/invoice
func SaleInvoicePDFHandler(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if cfg.GotenbergURL == "" {
			return fiber.NewError(fiber.StatusServiceUnavailable, "PDF rendering is not configured")
		}

		t, err := loadTrip(c.Params("id"))
		if err != nil {
			return err
		}

		idx, err := strconv.Atoi(c.Params("index"))
		if err != nil || idx < 0 || idx >= len(t.Sales) {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid index")
		}
		sale := t.Sales[idx]

		html, err := RenderInvoiceHTML(t, sale)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not render invoice")
		}

		pdf, err := NewGotenbergClient(cfg.GotenbergURL).RenderHTML(c.Context(), html)
		if err != nil {
			return fiber.NewError(fiber.StatusServiceUnavailable, "PDF service unavailable")
		}

		c.Set("Content-Type", "application/pdf")
		c.Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s.pdf"`, sale.BillNumber))
		return c.Send(pdf)
	}
}
