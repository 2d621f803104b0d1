package application

import (
	"errors"

	"github.com/linskybing/herbtrace/internal/domain/audit"
	"github.com/linskybing/herbtrace/internal/repository"
)

var ErrInvalidHistoryRange = errors.New("history range ends before it starts")

// MaxAuditPage caps a single audit query.
const MaxAuditPage = 500

type AuditService struct {
	Repos *repository.Repos
}

func NewAuditService(repos *repository.Repos) *AuditService {
	return &AuditService{
		Repos: repos,
	}
}

// QueryAuditLogs validates the time window and bounds the page before hitting
// the store. An offset without a limit pages by MaxAuditPage.
func (s *AuditService) QueryAuditLogs(params repository.AuditQueryParams) ([]audit.AuditLog, error) {
	if params.StartTime != nil && params.EndTime != nil && params.EndTime.Before(*params.StartTime) {
		return nil, ErrInvalidHistoryRange
	}
	if params.Offset < 0 {
		params.Offset = 0
	}
	if params.Limit > MaxAuditPage || (params.Limit <= 0 && params.Offset > 0) {
		params.Limit = MaxAuditPage
	}
	return s.Repos.Audit.GetAuditLogs(params)
}

// TicketHistory returns the audit rows recorded against one ticket, oldest
// first, filtered by q.
func (s *AuditService) TicketHistory(ticketID string, q audit.HistoryQuery) ([]audit.AuditLog, error) {
	resourceType := audit.ResourceTicket
	params := repository.AuditQueryParams{
		ResourceType: &resourceType,
		ResourceID:   &ticketID,
		Limit:        q.Limit,
		Offset:       q.Offset,
	}
	if q.Action != "" {
		action := q.Action
		params.Action = &action
	}
	if !q.Since.IsZero() {
		since := q.Since
		params.StartTime = &since
	}
	if !q.Until.IsZero() {
		until := q.Until
		params.EndTime = &until
	}
	return s.QueryAuditLogs(params)
}

func (s *AuditService) CleanupOldLogs(days int) error {
	return s.Repos.Audit.DeleteOldAuditLogs(days)
}
