package dashboard

import (
	"poultry-backend/internal/auth"
	"poultry-backend/internal/database"
	"poultry-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type DashboardResponse struct {
	TripsStarted   int64 `json:"trips_started"`
	TripsOngoing   int64 `json:"trips_ongoing"`
	TripsCompleted int64 `json:"trips_completed"`

	BirdsPurchased int     `json:"birds_purchased"`
	BirdsSold      int     `json:"birds_sold"`
	PurchaseAmount float64 `json:"purchase_amount"`
	SalesAmount    float64 `json:"sales_amount"`
	ReceivedAmount float64 `json:"received_amount"`
}

// GET /api/dashboard/summary - the numbers behind the dashboard cards.
// Supervisors see only their own trips.
func SummaryHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, err := auth.CurrentRole(c)
		if err != nil {
			return err
		}

		var supervisorID uint
		if role == models.RoleSupervisor {
			supervisorID, _ = auth.CurrentUserID(c)
		}

		tripQuery := func() *gorm.DB {
			q := database.DB.Model(&models.Trip{})
			if supervisorID != 0 {
				q = q.Where("supervisor_id = ?", supervisorID)
			}
			return q
		}
		// Child rows join through trips to stay inside the same scope.
		childQuery := func(table string, model any) *gorm.DB {
			q := database.DB.Model(model).
				Joins("JOIN trips ON trips.id = " + table + ".trip_id")
			if supervisorID != 0 {
				q = q.Where("trips.supervisor_id = ?", supervisorID)
			}
			return q
		}

		var resp DashboardResponse
		if err := tripQuery().Where("status = ?", models.TripStatusStarted).Count(&resp.TripsStarted).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not compute summary")
		}
		if err := tripQuery().Where("status = ?", models.TripStatusOngoing).Count(&resp.TripsOngoing).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not compute summary")
		}
		if err := tripQuery().Where("status = ?", models.TripStatusCompleted).Count(&resp.TripsCompleted).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not compute summary")
		}

		type purchaseAgg struct {
			Birds  int     `gorm:"column:birds"`
			Amount float64 `gorm:"column:amount"`
		}
		var pa purchaseAgg
		if err := childQuery("purchases", &models.Purchase{}).
			Select("COALESCE(SUM(purchases.birds),0) as birds, COALESCE(SUM(purchases.amount),0) as amount").
			Scan(&pa).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not compute summary")
		}
		resp.BirdsPurchased = pa.Birds
		resp.PurchaseAmount = pa.Amount

		type saleAgg struct {
			Birds    int     `gorm:"column:birds"`
			Amount   float64 `gorm:"column:amount"`
			Received float64 `gorm:"column:received"`
		}
		var sa saleAgg
		if err := childQuery("sales", &models.Sale{}).
			Select("COALESCE(SUM(sales.birds),0) as birds, COALESCE(SUM(sales.amount),0) as amount, COALESCE(SUM(sales.received_amount),0) as received").
			Scan(&sa).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not compute summary")
		}
		resp.BirdsSold = sa.Birds
		resp.SalesAmount = sa.Amount
		resp.ReceivedAmount = sa.Received

		return c.JSON(fiber.Map{"success": true, "data": resp})
	}
}
