// Package testutil spins up a throwaway Postgres container for settlement
// tests. Each test gets its own container and schema.
package testutil

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/lolbd307-png/osamendibet25bd/database"
)

// SetupTestDatabase starts a Postgres container, migrates the schema and
// points the global database handle at it.
func SetupTestDatabase(t *testing.T) *gorm.DB {
	t.Helper()
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase("osamendibet_test"),
		tcpostgres.WithUsername("test_user"),
		tcpostgres.WithPassword("test_password"),
		tcpostgres.BasicWaitStrategies(),
		testcontainers.WithLabels(map[string]string{
			"test":      "osamendibet-settlement",
			"test-name": t.Name(),
		}),
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		if err := container.Terminate(context.Background()); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := gorm.Open(postgres.Open(connStr), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	database.DB = db
	return db
}
