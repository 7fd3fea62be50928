package trip

import (
	"fmt"
	"time"

	"poultry-backend/internal/audit"
	"poultry-backend/internal/database"
	"poultry-backend/internal/models"
	"poultry-backend/internal/reconcile"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TransferRequest struct {
	SupervisorID  uint   `json:"supervisor_id"`
	TripCode      string `json:"trip_code"`
	VehicleNumber string `json:"vehicle_number"`
	Driver        string `json:"driver"`
	Place         string `json:"place"`
	Date          string `json:"date"`
	// Zero values mean "move the full remainder".
	Birds  int     `json:"birds"`
	Weight float64 `json:"weight"`
}

// POST /api/trips/:id/transfer
// Moves remaining birds/weight into a newly created transferred trip
// under a different supervisor/vehicle. The new trip inherits the moved
// quantity as opening stock and cannot record purchases of its own.
func TransferTripHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		t, err := loadTrip(c.Params("id"))
		if err != nil {
			return err
		}
		if err := guardEditable(c, t); err != nil {
			return err
		}

		var body TransferRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		if body.SupervisorID == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "supervisor_id is required")
		}
		var supervisor models.User
		if err := database.DB.First(&supervisor, body.SupervisorID).Error; err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Supervisor not found")
		}

		date := time.Now()
		if body.Date != "" {
			d, err := time.Parse(dateLayout, body.Date)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "Date must be 'YYYY-MM-DD'")
			}
			date = d
		}

		s := snapshot(t)
		// Birds already set aside as stock are not movable; the
		// transferable pool is the remainder net of stock entries.
		available := s.AvailableForStock()

		birds := body.Birds
		weight := body.Weight
		if birds == 0 && weight == 0 {
			birds = available.Birds
			weight = available.Weight
		}

		if err := reconcile.ValidateTransfer(birds, weight, available); err != nil {
			return gateError(err)
		}

		// Carry the source's average purchase rate as the opening
		// valuation of the new trip.
		sum := reconcile.Summarize(s, 0, 0, 0)
		rate := sum.AvgPurchaseRate

		code := body.TripCode
		if code == "" {
			code = fmt.Sprintf("TRP%d", time.Now().UnixMilli())
		}

		reference := uuid.NewString()
		newTrip := models.Trip{
			TripCode:      code,
			Status:        models.TripStatusStarted,
			Type:          models.TripTypeTransferred,
			SupervisorID:  body.SupervisorID,
			Date:          date,
			Place:         body.Place,
			Driver:        body.Driver,
			VehicleNumber: body.VehicleNumber,
			OpeningBirds:  birds,
			OpeningWeight: weight,
			OpeningRate:   rate,
			SourceTripID:  &t.ID,
		}
		record := models.TransferRecord{
			TripID:    t.ID,
			Seq:       len(t.Transfers),
			Reference: reference,
			Birds:     birds,
			Weight:    weight,
			Rate:      rate,
			Date:      date,
		}

		// Both sides of the move land together or not at all.
		markActivity(t)
		err = database.DB.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(&newTrip).Error; err != nil {
				return err
			}
			record.ToTripID = newTrip.ID
			if err := tx.Create(&record).Error; err != nil {
				return err
			}
			return tx.Model(&models.Trip{}).Where("id = ?", t.ID).Update("status", t.Status).Error
		})
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not transfer trip")
		}

		userID, userName := currentUser(c)
		logAuditFailure(audit.WriteLog(audit.LogOptions{
			TripID: &t.ID, UserID: userID, UserName: userName,
			EntityType: "transfer", EntityID: record.ID, Action: models.AuditActionCreate,
			Description: fmt.Sprintf("Transferred %d birds, %.2f kg to trip %s", birds, weight, newTrip.TripCode),
			After:       record,
		}))

		t.Transfers = append(t.Transfers, record)
		return tripJSON(c, fiber.StatusCreated, t, fiber.Map{
			"new_trip_id":   newTrip.ID,
			"new_trip_code": newTrip.TripCode,
			"reference":     reference,
		})
	}
}
