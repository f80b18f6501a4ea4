package database

import (
	"fmt"
	"time"

	"portfolio-backend/internal/database/models"
	applog "portfolio-backend/internal/logger"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Options struct {
	LogLevel        logger.LogLevel
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
	AutoMigrate     bool
	SeedDataDir     string
}

// Initialize opens a Postgres connection and creates the schema from GORM models.
func Initialize(dsn string, opts *Options) (*gorm.DB, error) {
	log := applog.New()
	log.Info("Initializing database...")

	// Defaults
	if opts == nil {
		opts = &Options{AutoMigrate: true}
	}
	if opts.LogLevel == 0 {
		opts.LogLevel = logger.Error
	}
	if opts.MaxOpenConns == 0 {
		opts.MaxOpenConns = 20
	}
	if opts.MaxIdleConns == 0 {
		opts.MaxIdleConns = 10
	}
	if opts.ConnMaxLifetime == 0 {
		opts.ConnMaxLifetime = 30 * time.Minute
	}
	if opts.ConnMaxIdleTime == 0 {
		opts.ConnMaxIdleTime = 10 * time.Minute
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(opts.LogLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(opts.MaxOpenConns)
		sqlDB.SetMaxIdleConns(opts.MaxIdleConns)
		sqlDB.SetConnMaxLifetime(opts.ConnMaxLifetime)
		sqlDB.SetConnMaxIdleTime(opts.ConnMaxIdleTime)
	}

	// Ensure required extension for UUID generation (BaseModel default gen_random_uuid())
	_ = db.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto`).Error

	if opts.AutoMigrate {
		all := []interface{}{
			&models.User{},
			&models.Message{},
			&models.Project{},
			&models.BlogPost{},
		}
		if err := db.AutoMigrate(all...); err != nil {
			return nil, fmt.Errorf("auto-migrate: %w", err)
		}
	}

	if err := CreateIndexes(db); err != nil {
		return nil, fmt.Errorf("failed to create indexes: %w", err)
	}

	if opts.SeedDataDir != "" {
		if err := SeedFromYAML(db, opts.SeedDataDir); err != nil {
			return nil, fmt.Errorf("failed to seed data from YAML files: %w", err)
		}
	}

	log.Info("Initializing database done.")
	return db, nil
}

// CreateIndexes creates indexes that AutoMigrate does not cover.
func CreateIndexes(db *gorm.DB) error {
	// Identity resolution rule: one local user per (provider, provider_id).
	// The composite unique index backs ResolveOrCreate's conflict-as-lookup retry.
	if err := db.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS idx_users_provider_identity ON users (provider, provider_id)`).Error; err != nil {
		return fmt.Errorf("create unique index users.provider+provider_id: %w", err)
	}
	return nil
}
