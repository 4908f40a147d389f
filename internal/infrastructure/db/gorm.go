package db

import (
	"log"
	"time"

	"wattledger/internal/domain/listing"
	"wattledger/internal/domain/loan"
	"wattledger/internal/domain/source"
	"wattledger/internal/domain/token"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func OpenGorm(dsn string) (*gorm.DB, error) {
	return OpenGormWithDialector(mysql.Open(dsn))
}

// OpenGormWithDialector lets tests inject a mocked or sqlite dialector.
func OpenGormWithDialector(dial gorm.Dialector) (*gorm.DB, error) {
	cfg := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	}
	gdb, err := gorm.Open(dial, cfg)
	if err != nil {
		return nil, err
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(30)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := sqlDB.Ping(); err != nil {
		return nil, err
	}
	log.Println("gorm: connected")
	return gdb, nil
}

// Migrate creates or updates the ledger tables.
func Migrate(gdb *gorm.DB) error {
	return gdb.AutoMigrate(
		&source.EnergySource{},
		&loan.Loan{},
		&listing.Listing{},
		&token.Balance{},
	)
}
