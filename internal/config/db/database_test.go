package db

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/linskybing/herbtrace/internal/config"
	"github.com/linskybing/herbtrace/internal/domain/farmer"
	"github.com/linskybing/herbtrace/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"gorm.io/gorm"
)

func TestOpen_LogsThroughZap(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	logger.Set(zap.New(core))
	t.Cleanup(func() { logger.Set(zap.NewNop()) })

	gormDB, err := Open(sqlite.Open("file:dblogger?mode=memory&cache=shared"))
	require.NoError(t, err)
	sqlDB, err := gormDB.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, Migrate(gormDB))

	var f farmer.Farmer
	err = gormDB.Where("phone = ?", "000").First(&f).Error
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.Equal(t, 0, logs.Len(), "a missing row is not worth a log line")

	err = gormDB.Exec("SELECT * FROM no_such_table").Error
	assert.Error(t, err)
	failures := logs.FilterMessageSnippet("no_such_table")
	require.Equal(t, 1, failures.Len())
	assert.Equal(t, zap.WarnLevel, failures.All()[0].Level)
}

func TestDialector_UnknownDriver(t *testing.T) {
	old := config.DbDriver
	config.DbDriver = "oracle"
	t.Cleanup(func() { config.DbDriver = old })

	_, err := Dialector()
	assert.Error(t, err)
}
