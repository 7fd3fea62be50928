package trip

import (
	"fmt"

	"poultry-backend/internal/audit"
	"poultry-backend/internal/database"
	"poultry-backend/internal/models"
	"poultry-backend/internal/reconcile"

	"github.com/gofiber/fiber/v2"
)

type PurchaseRequest struct {
	VendorID uint    `json:"vendor_id"`
	DCNumber string  `json:"dc_number"`
	Birds    int     `json:"birds"`
	Weight   float64 `json:"weight"`
	Rate     float64 `json:"rate"`
}

// POST /api/trips/:id/purchases
func CreatePurchaseHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		t, err := loadTrip(c.Params("id"))
		if err != nil {
			return err
		}
		if err := guardEditable(c, t); err != nil {
			return err
		}
		if t.Type == models.TripTypeTransferred {
			return fiber.NewError(fiber.StatusBadRequest, "Transferred trips cannot record new purchases")
		}

		var body PurchaseRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		if err := reconcile.ValidatePurchase(body.VendorID, body.DCNumber, body.Birds, body.Weight, body.Rate); err != nil {
			return gateError(err)
		}
		for _, p := range t.Purchases {
			if p.DCNumber == body.DCNumber {
				return fiber.NewError(fiber.StatusBadRequest, "DC number already used on this trip")
			}
		}
		var vendor models.Vendor
		if err := database.DB.First(&vendor, body.VendorID).Error; err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Supplier not found")
		}

		avgWeight, amount := reconcile.ComputePurchase(body.Birds, body.Weight, body.Rate)
		p := models.Purchase{
			TripID:    t.ID,
			Seq:       len(t.Purchases),
			VendorID:  body.VendorID,
			DCNumber:  body.DCNumber,
			Birds:     body.Birds,
			Weight:    body.Weight,
			AvgWeight: avgWeight,
			Rate:      body.Rate,
			Amount:    amount,
		}

		markActivity(t)
		if err := database.DB.Create(&p).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not save purchase")
		}
		persistStatus(t)

		userID, userName := currentUser(c)
		logAuditFailure(audit.WriteLog(audit.LogOptions{
			TripID: &t.ID, UserID: userID, UserName: userName,
			EntityType: "purchase", EntityID: p.ID, Action: models.AuditActionCreate,
			Description: fmt.Sprintf("Purchase added: %s, %d birds, %.2f kg", vendor.Name, p.Birds, p.Weight),
			After:       p,
		}))

		p.Vendor = vendor
		t.Purchases = append(t.Purchases, p)
		return tripJSON(c, fiber.StatusCreated, t, nil)
	}
}

// PUT /api/trips/:id/purchases/:index
func UpdatePurchaseHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		t, err := loadTrip(c.Params("id"))
		if err != nil {
			return err
		}
		if err := guardEditable(c, t); err != nil {
			return err
		}

		idx, err := parseIndex(c, "index", len(t.Purchases))
		if err != nil {
			return err
		}

		var body PurchaseRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		if err := reconcile.ValidatePurchase(body.VendorID, body.DCNumber, body.Birds, body.Weight, body.Rate); err != nil {
			return gateError(err)
		}
		for i, p := range t.Purchases {
			if i != idx && p.DCNumber == body.DCNumber {
				return fiber.NewError(fiber.StatusBadRequest, "DC number already used on this trip")
			}
		}
		var vendor models.Vendor
		if err := database.DB.First(&vendor, body.VendorID).Error; err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Supplier not found")
		}

		// Shrinking a purchase must not push the remainder negative:
		// already-sold or stocked birds cannot be un-bought.
		s := snapshot(t)
		s.Purchases[idx] = reconcile.PurchaseLine{Birds: body.Birds, Weight: body.Weight}
		if r := s.Remaining(); r.Birds < 0 || r.Weight < 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Purchase cannot be reduced below what is already sold, stocked or transferred")
		}
		if a := s.AvailableForStock(); a.Birds < 0 || a.Weight < 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Purchase cannot be reduced below what is already sold, stocked or transferred")
		}

		old := t.Purchases[idx]
		avgWeight, amount := reconcile.ComputePurchase(body.Birds, body.Weight, body.Rate)

		updated := old
		updated.VendorID = body.VendorID
		updated.DCNumber = body.DCNumber
		updated.Birds = body.Birds
		updated.Weight = body.Weight
		updated.AvgWeight = avgWeight
		updated.Rate = body.Rate
		updated.Amount = amount

		markActivity(t)
		if err := database.DB.Save(&updated).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not update purchase")
		}
		persistStatus(t)

		userID, userName := currentUser(c)
		logAuditFailure(audit.WriteLog(audit.LogOptions{
			TripID: &t.ID, UserID: userID, UserName: userName,
			EntityType: "purchase", EntityID: updated.ID, Action: models.AuditActionUpdate,
			Description: fmt.Sprintf("Purchase %d updated", idx),
			Before:      old, After: updated,
		}))

		updated.Vendor = vendor
		t.Purchases[idx] = updated
		return tripJSON(c, fiber.StatusOK, t, nil)
	}
}
