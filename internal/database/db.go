package database

import (
	"log"

	"poultry-backend/internal/config"
	"poultry-backend/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init(cfg *config.Config) {
	var err error

	DB, err = gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{})
	if err != nil {
		log.Fatalf("Could not connect to database: %v", err)
	}

	err = DB.AutoMigrate(
		&models.User{},
		&models.Vendor{},
		&models.Customer{},
		&models.Trip{},
		&models.Purchase{},
		&models.Sale{},
		&models.Expense{},
		&models.DieselStation{},
		&models.StockEntry{},
		&models.TransferRecord{},
		&models.AuditLog{},
	)
	if err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}

	// A DC number may repeat across trips but never within one.
	DB.Exec("CREATE UNIQUE INDEX IF NOT EXISTS idx_purchases_trip_dc ON purchases(trip_id, dc_number)")
	// Same for bill numbers.
	DB.Exec("CREATE UNIQUE INDEX IF NOT EXISTS idx_sales_trip_bill ON sales(trip_id, bill_number)")

	log.Println("Database connected, migration complete")
}
