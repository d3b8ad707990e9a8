package database

import (
	"store-admin-backend/internal/config"
	"store-admin-backend/internal/logger"
	"store-admin-backend/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init(cfg *config.Config) {
	db, err := gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{})
	if err != nil {
		logger.Log.Fatalf("database connection failed: %v", err)
	}

	if err := Migrate(db); err != nil {
		logger.Log.Fatalf("AutoMigrate failed: %v", err)
	}

	DB = db
	logger.Log.Info("database connected, migration complete")
}

// Migrate creates or updates every table the service owns.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Store{},
		&models.Billboard{},
		&models.Category{},
		&models.Size{},
		&models.Color{},
		&models.Product{},
		&models.Image{},
		&models.Order{},
		&models.OrderItem{},
		&models.AuditLog{},
	)
}
