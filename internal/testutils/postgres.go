//go:build integration

package testutils

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"testing"
	"time"

	_ "github.com/lib/pq"

	"github.com/linskybing/herbtrace/internal/config/db"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// NewPostgresDB returns a freshly migrated PostgreSQL database. TEST_DB_DSN
// points at an existing server; otherwise a throwaway container is started.
func NewPostgresDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DB_DSN")
	if dsn == "" {
		dsn = startPostgresContainer(t)
	}
	waitForPostgres(t, dsn)

	gormDB, err := db.Open(postgres.Open(dsn))
	require.NoError(t, err)
	sqlDB, err := gormDB.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, gormDB.Exec("DROP TABLE IF EXISTS audit_logs, lab_tickets, herb_data, farmers").Error)
	require.NoError(t, db.Migrate(gormDB))
	return gormDB
}

func startPostgresContainer(t *testing.T) string {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image: "postgres:15",
		Env: map[string]string{
			"POSTGRES_PASSWORD": "test",
			"POSTGRES_USER":     "test",
			"POSTGRES_DB":       "herbtrace",
		},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}

	pg, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = pg.Terminate(ctx) })

	host, err := pg.Host(ctx)
	require.NoError(t, err)
	port, err := pg.MappedPort(ctx, "5432")
	require.NoError(t, err)

	return fmt.Sprintf("postgres://test:test@%s:%s/herbtrace?sslmode=disable", host, port.Port())
}

// waitForPostgres pings through lib/pq until the server accepts connections.
func waitForPostgres(t *testing.T, dsn string) {
	t.Helper()

	var err error
	for i := 0; i < 10; i++ {
		var conn *sql.DB
		conn, err = sql.Open("postgres", dsn)
		if err == nil {
			err = conn.Ping()
			_ = conn.Close()
			if err == nil {
				return
			}
		}
		time.Sleep(time.Second)
	}
	require.NoError(t, err, "postgres never became ready")
}
