package testutils

import (
	"fmt"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/linskybing/herbtrace/internal/config/db"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// NewSQLiteDB opens a private in-memory database with the full schema. Each
// call gets its own database, so tests can run in parallel.
func NewSQLiteDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	gormDB, err := db.Open(sqlite.Open(dsn))
	require.NoError(t, err)

	sqlDB, err := gormDB.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.Migrate(gormDB))
	return gormDB
}
