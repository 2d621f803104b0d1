package cron

import (
	"context"
	"time"

	"github.com/linskybing/herbtrace/pkg/logger"
	"go.uber.org/zap"
)

const cleanupInterval = 24 * time.Hour

// AuditCleaner is satisfied by application.AuditService.
type AuditCleaner interface {
	CleanupOldLogs(days int) error
}

// StartCleanupTask prunes audit rows older than retentionDays once at start and
// then daily until ctx is done. A non-positive retention disables it.
func StartCleanupTask(ctx context.Context, cleaner AuditCleaner, retentionDays int) {
	if retentionDays <= 0 {
		logger.L().Info("Audit cleanup disabled")
		return
	}

	go func() {
		log := logger.L().With(zap.Int("retention_days", retentionDays))
		log.Info("Starting background audit cleanup task")

		runCleanup(log, cleaner, retentionDays)

		ticker := time.NewTicker(cleanupInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				log.Info("Audit cleanup task stopped")
				return
			case <-ticker.C:
				runCleanup(log, cleaner, retentionDays)
			}
		}
	}()
}

func runCleanup(log *zap.Logger, cleaner AuditCleaner, retentionDays int) {
	if err := cleaner.CleanupOldLogs(retentionDays); err != nil {
		log.Error("Failed to cleanup old audit logs", zap.Error(err))
		return
	}
	log.Debug("Audit log cleanup completed")
}
