//go:build integration

package containers

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"

	"vehicle-query-service/internal/config"
	"vehicle-query-service/internal/db"
)

// NewSeededDatabase starts a PostgreSQL container, applies the schema and
// loads the demo data. The container is terminated when the test ends.
func NewSeededDatabase(t *testing.T) *gorm.DB {
	t.Helper()

	ctx := context.Background()
	container, err := tcpostgres.Run(ctx, "postgres:16-alpine",
		tcpostgres.WithDatabase("transito_db"),
		tcpostgres.WithUsername("transito"),
		tcpostgres.WithPassword("transito"),
		tcpostgres.BasicWaitStrategies(),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}
	t.Cleanup(func() { _ = testcontainers.TerminateContainer(container) })

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to get postgres connection string: %v", err)
	}

	cfg := &config.Config{
		Environment: "test",
		DB: config.DBConfig{
			DSN:             dsn,
			MaxOpenConns:    2,
			MaxIdleConns:    2,
			ConnMaxLifetime: time.Minute,
			Seed:            true,
		},
	}

	database, err := db.New(cfg, zerolog.Nop())
	if err != nil {
		t.Fatalf("failed to prepare database: %v", err)
	}
	return database
}
