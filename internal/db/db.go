package db

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"vehicle-query-service/internal/config"
)

// New opens the PostgreSQL pool, applies the schema and, when enabled,
// seeds demo data.
func New(cfg *config.Config, log zerolog.Logger) (*gorm.DB, error) {
	gormLog := newGormLogger(log, gormLogLevel(cfg.Environment), 200*time.Millisecond)

	database, err := gorm.Open(postgres.Open(cfg.DB.DSN), &gorm.Config{Logger: gormLog})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	sqlDB, err := database.DB()
	if err != nil {
		return nil, fmt.Errorf("database handle: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.DB.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.DB.MaxIdleConns)
	if cfg.DB.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(cfg.DB.ConnMaxLifetime)
	}

	if err := runMigrations(database); err != nil {
		return nil, err
	}
	log.Info().Int("statements", len(migrationStatements)).Msg("database schema ready")

	if cfg.DB.Seed {
		if err := seed(database); err != nil {
			return nil, err
		}
		log.Info().Msg("demo data seeded")
	}

	return database, nil
}

func gormLogLevel(env string) gormlogger.LogLevel {
	if env == "development" {
		return gormlogger.Info
	}
	return gormlogger.Warn
}
