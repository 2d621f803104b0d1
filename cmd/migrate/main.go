// Command migrate creates or updates the database schema and exits.
package main

import (
	"log"

	"github.com/linskybing/herbtrace/internal/config"
	"github.com/linskybing/herbtrace/internal/config/db"
	"github.com/linskybing/herbtrace/pkg/logger"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()

	zl, err := logger.Init(config.LogLevel, config.IsProduction)
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	db.Init()
	if err := db.Migrate(db.DB); err != nil {
		zl.Fatal("Migration failed", zap.Error(err))
	}
	zl.Info("Migration completed", zap.String("driver", config.DbDriver))
}
