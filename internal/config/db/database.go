package db

import (
	"fmt"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/linskybing/herbtrace/internal/config"
	"github.com/linskybing/herbtrace/internal/domain/audit"
	"github.com/linskybing/herbtrace/internal/domain/farmer"
	"github.com/linskybing/herbtrace/internal/domain/herb"
	"github.com/linskybing/herbtrace/internal/domain/ticket"
	"github.com/linskybing/herbtrace/pkg/logger"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var DB *gorm.DB

// Models lists every table owned by the service, in dependency order.
func Models() []any {
	return []any{
		&farmer.Farmer{},
		&herb.Herb{},
		&ticket.LabTicket{},
		&audit.AuditLog{},
	}
}

// Dialector picks the gorm driver from the configured DB_DRIVER.
func Dialector() (gorm.Dialector, error) {
	switch config.DbDriver {
	case config.DriverPostgres:
		dsn := fmt.Sprintf(
			"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
			config.DbHost,
			config.DbPort,
			config.DbUser,
			config.DbPassword,
			config.DbName,
		)
		return postgres.Open(dsn), nil
	case config.DriverSQLite:
		return sqlite.Open(config.DbPath), nil
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", config.DbDriver)
	}
}

// gormWriter sends gorm's slow-query and error traces to the zap logger.
type gormWriter struct{}

func (gormWriter) Printf(format string, args ...any) {
	logger.L().Sugar().Warnf(format, args...)
}

// NewGormLogger logs slow queries and failures. Lookups that find nothing
// are a normal outcome and stay silent.
func NewGormLogger() gormlogger.Interface {
	return gormlogger.New(gormWriter{}, gormlogger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  gormlogger.Warn,
		IgnoreRecordNotFoundError: true,
	})
}

// Open connects with the settings every caller shares. TranslateError lets
// services see gorm.ErrDuplicatedKey regardless of driver.
func Open(dialector gorm.Dialector) (*gorm.DB, error) {
	return gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger:         NewGormLogger(),
	})
}

func Init() {
	dialector, err := Dialector()
	if err != nil {
		logger.L().Fatal("Invalid database configuration", zap.Error(err))
	}

	DB, err = Open(dialector)
	if err != nil {
		logger.L().Fatal("Failed to connect to DB", zap.Error(err))
	}

	logger.L().Info("Database connected", zap.String("driver", config.DbDriver))
}

// Migrate creates or updates the schema. It runs from cmd/migrate or once at
// API start-up, never per request.
func Migrate(gormDB *gorm.DB) error {
	if err := gormDB.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
