package db

import (
	"log"
	"strings"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/odfbarbers/booking-api/internal/config"
	"github.com/odfbarbers/booking-api/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	var dialector gorm.Dialector

	// Postgres in production; embedded sqlite for local development.
	if strings.HasPrefix(cfg.DBUrl, "postgres") {
		log.Println("using PostgreSQL database")
		dialector = postgres.Open(cfg.DBUrl)
	} else {
		log.Printf("using local SQLite database: %s", cfg.SQLitePath)
		dialector = sqlite.Open(cfg.SQLitePath)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := Migrate(db); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	return db
}

// Migrate is shared with the test suites, which run the same schema
// against an in-memory store.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Barber{},
		&models.Service{},
		&models.TimeSlot{},
		&models.Appointment{},
		&models.Feedback{},
		&models.AuditLog{},
	)
}
