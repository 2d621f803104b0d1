package utils

import (
	"encoding/json"

	"github.com/linskybing/herbtrace/internal/domain/audit"
	"github.com/linskybing/herbtrace/pkg/logger"
	"go.uber.org/zap"
	"gorm.io/datatypes"
)

// NewAuditLog snapshots before/after state of a mutation. Marshal failures are
// logged and recorded as JSON null so the mutation itself still commits.
func NewAuditLog(actor audit.Actor, action, resourceType, resourceID string, before, after any, description string) *audit.AuditLog {
	return &audit.AuditLog{
		ActorType:    actor.Type,
		ActorID:      actor.ID,
		Action:       action,
		ResourceType: resourceType,
		ResourceID:   resourceID,
		OldData:      snapshot(before),
		NewData:      snapshot(after),
		IPAddress:    actor.IPAddress,
		UserAgent:    actor.UserAgent,
		Description:  description,
	}
}

func snapshot(v any) datatypes.JSON {
	data, err := json.Marshal(v)
	if err != nil {
		logger.L().Warn("audit snapshot marshal failed", zap.Error(err))
		return datatypes.JSON("null")
	}
	return datatypes.JSON(data)
}
