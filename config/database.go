package config

import (
	"fmt"

	"frontdesk/models"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// ConnectDB opens the configured database.
func ConnectDB(cfg *Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case "sqlite":
		dialector = sqlite.Open(cfg.SQLitePath)
	default:
		dialector = postgres.Open(cfg.DatabaseDSN())
	}

	gormCfg := &gorm.Config{TranslateError: true}
	if cfg.AppEnv == "production" {
		gormCfg.Logger = gormlogger.Default.LogMode(gormlogger.Silent)
	}

	db, err := gorm.Open(dialector, gormCfg)
	if err != nil {
		return nil, fmt.Errorf("fail to connect to db: %w", err)
	}

	if cfg.DBDriver == "sqlite" {
		// sqlite allows one writer; a single connection keeps transactions from tripping over each other.
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(1)
	}
	return db, nil
}

// Migrate creates or updates every table the service owns.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Room{},
		&models.Booking{},
		&models.RoomReservation{},
		&models.Expense{},
		&models.Income{},
		&models.DailySale{},
	)
}
