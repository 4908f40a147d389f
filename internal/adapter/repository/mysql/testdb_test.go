package mysql

import (
	"testing"

	"wattledger/internal/domain/listing"
	"wattledger/internal/domain/loan"
	"wattledger/internal/domain/source"
	"wattledger/internal/domain/token"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// openTestDB creates an in-memory sqlite DB with the real schema. The
// entity structs avoid MySQL-only column types so AutoMigrate works on
// both dialects.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("db handle: %v", err)
	}
	// A single connection keeps every session on the same :memory: database.
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&source.EnergySource{},
		&loan.Loan{},
		&listing.Listing{},
		&token.Balance{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}
