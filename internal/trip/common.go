package trip

import (
	"log"
	"strconv"

	"poultry-backend/internal/auth"
	"poultry-backend/internal/database"
	"poultry-backend/internal/models"
	"poultry-backend/internal/reconcile"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

var validate = validator.New()

const dateLayout = "2006-01-02"

// loadTrip fetches the trip with every owned array preloaded in seq
// order, so index-addressed operations see the same ordering the client
// does.
func loadTrip(id string) (*models.Trip, error) {
	bySeq := func(db *gorm.DB) *gorm.DB { return db.Order("seq asc") }

	var t models.Trip
	err := database.DB.
		Preload("Supervisor").
		Preload("Purchases", bySeq).
		Preload("Purchases.Vendor").
		Preload("Sales", bySeq).
		Preload("Sales.Customer").
		Preload("Expenses", bySeq).
		Preload("Diesel", bySeq).
		Preload("Stocks", bySeq).
		Preload("Transfers", bySeq).
		First(&t, "id = ?", id).Error
	if err != nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "Trip not found")
	}
	return &t, nil
}

// snapshot rebuilds the reconciliation view from the authoritative trip
// row. Always recomputed, never cached.
func snapshot(t *models.Trip) reconcile.TripSnapshot {
	s := reconcile.TripSnapshot{
		Opening:     reconcile.Quantity{Birds: t.OpeningBirds, Weight: t.OpeningWeight},
		OpeningRate: t.OpeningRate,
	}
	for _, p := range t.Purchases {
		s.Purchases = append(s.Purchases, reconcile.PurchaseLine{
			Birds: p.Birds, Weight: p.Weight, Amount: p.Amount,
		})
	}
	for _, sl := range t.Sales {
		s.Sales = append(s.Sales, reconcile.SaleLine{
			Birds: sl.Birds, Weight: sl.Weight, Amount: sl.Amount,
			Received: sl.ReceivedAmount, IsReceipt: sl.IsReceipt,
		})
	}
	for _, st := range t.Stocks {
		s.Stocks = append(s.Stocks, reconcile.StockLine{
			Birds: st.Birds, Weight: st.Weight, Value: st.Value,
		})
	}
	for _, tr := range t.Transfers {
		s.Transferred = s.Transferred.Add(reconcile.Quantity{Birds: tr.Birds, Weight: tr.Weight})
	}
	return s
}

// guardEditable blocks supervisors from touching a completed trip.
func guardEditable(c *fiber.Ctx, t *models.Trip) error {
	if t.Status != models.TripStatusCompleted {
		return nil
	}
	role, err := auth.CurrentRole(c)
	if err != nil {
		return err
	}
	if !role.CanEditCompleted() {
		return fiber.NewError(fiber.StatusForbidden, "Trip is completed, only admins may edit it")
	}
	return nil
}

// markActivity advances started -> ongoing on the first management
// action. All submit handlers funnel through here instead of carrying
// their own first-action checks.
func markActivity(t *models.Trip) {
	if t.Status == models.TripStatusCompleted {
		return
	}
	next, err := reconcile.AdvanceStatus(reconcile.Status(t.Status), reconcile.EventFirstActivity)
	if err != nil {
		return
	}
	t.Status = models.TripStatus(next)
}

// currentUser resolves id and display name for audit entries.
func currentUser(c *fiber.Ctx) (uint, string) {
	id, err := auth.CurrentUserID(c)
	if err != nil {
		return 0, ""
	}
	var u models.User
	if err := database.DB.First(&u, id).Error; err != nil {
		return id, ""
	}
	return id, u.Name
}

// gateError maps a reconcile validation failure to a 400. Gate failures
// happen before any write.
func gateError(err error) error {
	return fiber.NewError(fiber.StatusBadRequest, err.Error())
}

func logAuditFailure(err error) {
	if err != nil {
		log.Printf("[WARN] audit log write failed: %v", err)
	}
}

// parseListIndex rejects anything but a bare in-range decimal, so
// "3x" or "03 " never sneak through as 3.
func parseListIndex(raw string, length int) (int, bool) {
	idx, err := strconv.Atoi(raw)
	return idx, err == nil && idx >= 0 && idx < length
}

func parseIndex(c *fiber.Ctx, name string, length int) (int, error) {
	idx, ok := parseListIndex(c.Params(name), length)
	if !ok {
		return 0, fiber.NewError(fiber.StatusBadRequest, "Invalid index")
	}
	return idx, nil
}

// persistStatus writes a status advanced by markActivity back to the
// trip row. The child write already succeeded; a failure here leaves
// the status stale and is logged, not surfaced.
func persistStatus(t *models.Trip) {
	if err := database.DB.Model(&models.Trip{}).Where("id = ?", t.ID).
		Update("status", t.Status).Error; err != nil {
		log.Printf("[WARN] trip status update failed for trip %d: %v", t.ID, err)
	}
}
