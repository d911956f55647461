package postgres

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/pagoservicios/payments-api/internal/core/domain"
)

// Connect opens a PostgreSQL connection through gorm and migrates the schema.
func Connect(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("postgres connect: %w", err)
	}
	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate creates or updates the tables for every persisted entity.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&domain.User{},
		&domain.Client{},
		&domain.Package{},
		&domain.PaymentConcept{},
		&domain.Payment{},
		&domain.PaymentDetail{},
		&domain.Balance{},
	); err != nil {
		return fmt.Errorf("automigrate: %w", err)
	}
	return nil
}
