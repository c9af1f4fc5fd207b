package config

import (
	"fmt"
	"log"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/lapizzeria/orders-api/models"
)

// Connect opens a database handle for the given URL. A postgres:// or
// postgresql:// URL connects to PostgreSQL; anything else is treated as a
// SQLite file path (the shop runs on a local pizzas.db by default).
// The handle is owned by the caller: open it once at startup, pass it to the
// services, and Close it on shutdown.
func Connect(databaseURL string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	if strings.HasPrefix(databaseURL, "postgres://") || strings.HasPrefix(databaseURL, "postgresql://") {
		dialector = postgres.Open(databaseURL)
	} else {
		dialector = sqlite.Open(databaseURL)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// SQLite leaves foreign key enforcement off unless asked; the
	// field_options cascade depends on it.
	if dialector.Name() == "sqlite" {
		if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
			return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
		}
	}

	log.Println("Database connection established successfully")
	return db, nil
}

// Migrate brings the schema up to date. AutoMigrate only adds missing
// tables, columns, and indexes; it never drops anything, so running it on
// every startup is safe for existing data.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.Order{}, &models.FieldConfig{}, &models.FieldOption{}); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}

// Close releases the underlying connection pool.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
