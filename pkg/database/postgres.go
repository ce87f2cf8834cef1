package database

import (
	"log"

	"github.com/hostellink/backend/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func NewPostgresDB(dsn string) *gorm.DB {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.Student{},
		&models.Hostel{},
		&models.Reservation{},
		&models.Payment{},
		&models.Booking{},
		&models.Inspection{},
		&models.WebhookEvent{},
	); err != nil {
		log.Fatalf("failed to auto-migrate: %v", err)
	}

	// Supports the sweep query: pending reservations ordered by expiry.
	db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_reservations_pending_expiry
		ON reservations (expires_at)
		WHERE status = 'PENDING'
	`)

	return db
}
