package application

import (
	"context"
	"time"

	"github.com/linskybing/herbtrace/pkg/logger"
	"github.com/linskybing/herbtrace/pkg/storage"
	"go.uber.org/zap"
)

const archiveTimeout = 10 * time.Second

// archive copies a generated artefact to object storage. Failures are logged
// and never fail the request.
func archive(ctx context.Context, store storage.ObjectStore, objectName, contentType string, data []byte) {
	if store == nil || len(data) == 0 {
		return
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), archiveTimeout)
	defer cancel()

	if err := store.Put(ctx, objectName, contentType, data); err != nil {
		logger.L().Warn("archive upload failed",
			zap.String("object", objectName),
			zap.Error(err),
		)
		return
	}
	logger.L().Debug("archived artefact", zap.String("object", objectName), zap.Int("bytes", len(data)))
}
