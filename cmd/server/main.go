package main

import (
	"log"
	"strings"

	"poultry-backend/internal/audit"
	"poultry-backend/internal/auth"
	"poultry-backend/internal/config"
	"poultry-backend/internal/customer"
	"poultry-backend/internal/dashboard"
	"poultry-backend/internal/database"
	"poultry-backend/internal/models"
	"poultry-backend/internal/report"
	"poultry-backend/internal/trip"
	"poultry-backend/internal/vendor"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	cfg := config.Load()
	database.Init(cfg)

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*fiber.Error); ok {
				return c.Status(e.Code).JSON(fiber.Map{
					"error": e.Message,
				})
			}
			log.Println("Unexpected error:", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Unexpected server error",
			})
		},
	})

	corsOrigins := strings.Split(cfg.CORSOrigins, ",")
	for i := range corsOrigins {
		corsOrigins[i] = strings.TrimSpace(corsOrigins[i])
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(corsOrigins, ","),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))

	api := app.Group("/api")

	// Public auth
	api.Post("/auth/register-super-admin", auth.RegisterSuperAdminHandler(cfg))
	api.Post("/auth/login", auth.LoginHandler(cfg))

	// Protected
	protected := api.Group("")
	protected.Use(auth.JWTMiddleware(cfg))

	protected.Get("/auth/me", auth.MeHandler())

	// User management
	adminRoutes := protected.Group("/admin")
	adminRoutes.Use(auth.RequireRole(models.RoleAdmin, models.RoleSuperAdmin))
	adminRoutes.Post("/users", auth.CreateUserHandler())

	// Trips
	protected.Post("/trips", trip.CreateTripHandler())
	protected.Get("/trips", trip.ListTripsHandler())
	protected.Get("/trips/:id", trip.GetTripHandler())
	protected.Put("/trips/:id/status", trip.UpdateStatusHandler())
	protected.Put("/trips/:id/complete", trip.CompleteTripHandler())
	protected.Post("/trips/:id/transfer", trip.TransferTripHandler())

	// Purchases
	protected.Post("/trips/:id/purchases", trip.CreatePurchaseHandler())
	protected.Put("/trips/:id/purchases/:index", trip.UpdatePurchaseHandler())

	// Sales & receipts (receipts reuse the sale endpoints with is_receipt)
	protected.Post("/trips/:id/sales", trip.CreateSaleHandler())
	protected.Put("/trips/:id/sales/:index", trip.UpdateSaleHandler())

	// Expenses & diesel, whole-array replace
	protected.Put("/trips/:id/expenses", trip.ReplaceExpensesHandler())
	protected.Put("/trips/:id/diesel", trip.ReplaceDieselHandler())

	// Stock
	protected.Post("/trips/:id/stock", trip.CreateStockHandler())
	protected.Put("/trips/:id/stock/:index", trip.UpdateStockHandler())
	protected.Delete("/trips/:id/stock/:index", trip.DeleteStockHandler())

	// Exports
	protected.Get("/trips/:id/report/sales-book", report.SalesBookHandler())
	protected.Get("/trips/:id/report/pdf", report.TripReportPDFHandler(cfg))
	protected.Get("/trips/:id/sales/:index/invoice", report.SaleInvoicePDFHandler(cfg))

	// Customers
	protected.Post("/customers", customer.CreateCustomerHandler())
	protected.Get("/customers", customer.ListCustomersHandler())
	protected.Get("/customers/:id", customer.GetCustomerHandler())
	protected.Put("/customers/:id", customer.UpdateCustomerHandler())
	protected.Put("/customers/:id/outstanding-balance", customer.UpdateBalanceHandler())
	protected.Delete("/customers/:id", customer.DeleteCustomerHandler())

	// Vendors
	protected.Post("/vendors", vendor.CreateVendorHandler())
	protected.Get("/vendors", vendor.ListVendorsHandler())
	protected.Put("/vendors/:id", vendor.UpdateVendorHandler())
	protected.Delete("/vendors/:id", vendor.DeleteVendorHandler())

	// Dashboard
	protected.Get("/dashboard/summary", dashboard.SummaryHandler())

	// Audit logs
	protected.Get("/audit-logs", audit.ListAuditLogsHandler())

	log.Println("Server running on port:", cfg.HTTPPort)
	if err := app.Listen(":" + cfg.HTTPPort); err != nil {
		log.Fatal(err)
	}
}
