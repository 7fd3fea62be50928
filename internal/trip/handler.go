package trip

import (
	"fmt"
	"time"

	"poultry-backend/internal/audit"
	"poultry-backend/internal/auth"
	"poultry-backend/internal/database"
	"poultry-backend/internal/models"
	"poultry-backend/internal/reconcile"

	"github.com/gofiber/fiber/v2"
)

type CreateTripRequest struct {
	TripCode       string  `json:"trip_code"`
	SupervisorID   uint    `json:"supervisor_id"` // ignored for supervisors, they own their own trips
	Date           string  `json:"date" validate:"required"`
	Place          string  `json:"place"`
	Driver         string  `json:"driver"`
	Labour         string  `json:"labour"`
	VehicleNumber  string  `json:"vehicle_number"`
	RouteFrom      string  `json:"route_from"`
	RouteTo        string  `json:"route_to"`
	RouteDistance  float64 `json:"route_distance"`
	OpeningReading float64 `json:"opening_reading"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type CompleteTripRequest struct {
	ClosingReading float64 `json:"closing_reading"`
	FinalRemarks   string  `json:"final_remarks"`
	// When absent the computed suggestion is recorded as-is.
	Mortality *int `json:"mortality"`
}

// POST /api/trips
func CreateTripHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateTripRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}
		if err := validate.Struct(body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "date is required")
		}

		date, err := time.Parse(dateLayout, body.Date)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Date must be 'YYYY-MM-DD'")
		}

		role, err := auth.CurrentRole(c)
		if err != nil {
			return err
		}
		supervisorID := body.SupervisorID
		if role == models.RoleSupervisor {
			supervisorID, _ = auth.CurrentUserID(c)
		}
		if supervisorID == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "supervisor_id is required")
		}
		var supervisor models.User
		if err := database.DB.First(&supervisor, supervisorID).Error; err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Supervisor not found")
		}

		code := body.TripCode
		if code == "" {
			code = fmt.Sprintf("TRP%d", time.Now().UnixMilli())
		}

		t := models.Trip{
			TripCode:       code,
			Status:         models.TripStatusStarted,
			Type:           models.TripTypeOriginal,
			SupervisorID:   supervisorID,
			Date:           date,
			Place:          body.Place,
			Driver:         body.Driver,
			Labour:         body.Labour,
			VehicleNumber:  body.VehicleNumber,
			RouteFrom:      body.RouteFrom,
			RouteTo:        body.RouteTo,
			RouteDistance:  body.RouteDistance,
			OpeningReading: body.OpeningReading,
		}

		if err := database.DB.Create(&t).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not create trip")
		}

		userID, userName := currentUser(c)
		logAuditFailure(audit.WriteLog(audit.LogOptions{
			TripID: &t.ID, UserID: userID, UserName: userName,
			EntityType: "trip", EntityID: t.ID, Action: models.AuditActionCreate,
			Description: "Trip created: " + t.TripCode,
			After:       fiber.Map{"trip_code": t.TripCode, "date": body.Date},
		}))

		t.Supervisor = supervisor
		return tripJSON(c, fiber.StatusCreated, &t, nil)
	}
}

// GET /api/trips?status=ongoing&supervisor_id=3
func ListTripsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		dbq := database.DB.Model(&models.Trip{}).Preload("Supervisor")

		if status := c.Query("status"); status != "" {
			dbq = dbq.Where("status = ?", status)
		}
		if sidStr := c.Query("supervisor_id"); sidStr != "" {
			var sid uint
			if _, err := fmt.Sscan(sidStr, &sid); err != nil || sid == 0 {
				return fiber.NewError(fiber.StatusBadRequest, "supervisor_id invalid")
			}
			dbq = dbq.Where("supervisor_id = ?", sid)
		}
		// Supervisors only see their own trips.
		role, err := auth.CurrentRole(c)
		if err != nil {
			return err
		}
		if role == models.RoleSupervisor {
			uid, _ := auth.CurrentUserID(c)
			dbq = dbq.Where("supervisor_id = ?", uid)
		}

		var trips []models.Trip
		if err := dbq.Order("date desc, id desc").Find(&trips).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not list trips")
		}

		type tripListItem struct {
			ID            uint   `json:"id"`
			TripCode      string `json:"trip_code"`
			Status        string `json:"status"`
			Type          string `json:"type"`
			Supervisor    string `json:"supervisor"`
			Date          string `json:"date"`
			Place         string `json:"place"`
			VehicleNumber string `json:"vehicle_number"`
		}
		items := make([]tripListItem, 0, len(trips))
		for _, t := range trips {
			items = append(items, tripListItem{
				ID: t.ID, TripCode: t.TripCode, Status: string(t.Status),
				Type: string(t.Type), Supervisor: t.Supervisor.Name,
				Date: t.Date.Format(dateLayout), Place: t.Place,
				VehicleNumber: t.VehicleNumber,
			})
		}

		return c.JSON(fiber.Map{"success": true, "data": items})
	}
}

// GET /api/trips/:id
func GetTripHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		t, err := loadTrip(c.Params("id"))
		if err != nil {
			return err
		}
		return tripJSON(c, fiber.StatusOK, t, nil)
	}
}

// PUT /api/trips/:id/status
func UpdateStatusHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		t, err := loadTrip(c.Params("id"))
		if err != nil {
			return err
		}

		var body UpdateStatusRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}
		if body.Status != string(models.TripStatusOngoing) {
			return fiber.NewError(fiber.StatusBadRequest, "Only the transition to 'ongoing' may be requested here")
		}

		next, err := reconcile.AdvanceStatus(reconcile.Status(t.Status), reconcile.EventFirstActivity)
		if err != nil {
			return fiber.NewError(fiber.StatusConflict, err.Error())
		}
		t.Status = models.TripStatus(next)

		if err := database.DB.Model(&models.Trip{}).Where("id = ?", t.ID).
			Update("status", t.Status).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not update status")
		}

		return tripJSON(c, fiber.StatusOK, t, nil)
	}
}

// PUT /api/trips/:id/complete
func CompleteTripHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		t, err := loadTrip(c.Params("id"))
		if err != nil {
			return err
		}

		var body CompleteTripRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		if err := reconcile.ValidateOdometer(t.OpeningReading, body.ClosingReading); err != nil {
			return gateError(err)
		}

		next, err := reconcile.AdvanceStatus(reconcile.Status(t.Status), reconcile.EventComplete)
		if err != nil {
			return fiber.NewError(fiber.StatusConflict, err.Error())
		}

		// Mortality is the by-subtraction residual, pre-filled for the
		// user and editable. The suggestion is stored alongside the
		// accepted figure so silent corrections stay visible.
		suggested := snapshot(t).SuggestMortality()
		mortality := suggested
		if body.Mortality != nil {
			if err := reconcile.ValidateMortality(*body.Mortality, suggested); err != nil {
				return gateError(err)
			}
			mortality = *body.Mortality
		}

		now := time.Now()
		t.Status = models.TripStatus(next)
		t.ClosingReading = body.ClosingReading
		t.FinalRemarks = body.FinalRemarks
		t.Mortality = mortality
		t.SuggestedMortality = suggested
		t.CompletedAt = &now

		if err := database.DB.Model(&models.Trip{}).Where("id = ?", t.ID).Updates(map[string]any{
			"status":              t.Status,
			"closing_reading":     t.ClosingReading,
			"final_remarks":       t.FinalRemarks,
			"mortality":           t.Mortality,
			"suggested_mortality": t.SuggestedMortality,
			"completed_at":        t.CompletedAt,
		}).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not complete trip")
		}

		userID, userName := currentUser(c)
		logAuditFailure(audit.WriteLog(audit.LogOptions{
			TripID: &t.ID, UserID: userID, UserName: userName,
			EntityType: "trip", EntityID: t.ID, Action: models.AuditActionUpdate,
			Description: fmt.Sprintf("Trip completed, mortality %d (suggested %d)", mortality, suggested),
			After: fiber.Map{
				"closing_reading": body.ClosingReading,
				"mortality":       mortality,
			},
		}))

		return tripJSON(c, fiber.StatusOK, t, nil)
	}
}
