package database

import (
	"fmt"

	"github.com/pressly/goose/v3"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ConnectPostgres opens the catalog database. Schema is owned by the goose
// migrations in migrationsDir, which are applied before returning.
func ConnectPostgres(dsn, migrationsDir string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	if migrationsDir != "" {
		if err := goose.SetDialect("postgres"); err != nil {
			return nil, fmt.Errorf("set goose dialect: %w", err)
		}
		if err := goose.Up(sqlDB, migrationsDir); err != nil {
			return nil, fmt.Errorf("run goose up migrations: %w", err)
		}
	}

	log.Info().Str("migrations", migrationsDir).Msg("[database][postgres] connected")
	return db, nil
}
