package application

import (
	"errors"
	"testing"
	"time"

	"github.com/linskybing/herbtrace/internal/domain/audit"
	"github.com/linskybing/herbtrace/internal/repository"
	"github.com/stretchr/testify/assert"
)

func TestCleanupOldLogs(t *testing.T) {
	repos, m := setupRepoMocks(t)
	svc := NewAuditService(repos)

	m.audit.EXPECT().DeleteOldAuditLogs(30).Return(nil)
	assert.NoError(t, svc.CleanupOldLogs(30))

	m.audit.EXPECT().DeleteOldAuditLogs(30).Return(errors.New("locked"))
	assert.Error(t, svc.CleanupOldLogs(30))
}

func TestQueryAuditLogs(t *testing.T) {
	repos, m := setupRepoMocks(t)
	svc := NewAuditService(repos)

	action := audit.ActionFinalize
	params := repository.AuditQueryParams{Action: &action, Limit: 10}
	m.audit.EXPECT().GetAuditLogs(params).Return([]audit.AuditLog{{Action: action}}, nil)

	logs, err := svc.QueryAuditLogs(params)
	assert.NoError(t, err)
	assert.Len(t, logs, 1)
}

func TestQueryAuditLogs_BoundsPage(t *testing.T) {
	tests := []struct {
		name string
		in   repository.AuditQueryParams
		want repository.AuditQueryParams
	}{
		{
			name: "limit above cap",
			in:   repository.AuditQueryParams{Limit: 10000},
			want: repository.AuditQueryParams{Limit: MaxAuditPage},
		},
		{
			name: "offset without limit",
			in:   repository.AuditQueryParams{Offset: 2},
			want: repository.AuditQueryParams{Limit: MaxAuditPage, Offset: 2},
		},
		{
			name: "negative offset",
			in:   repository.AuditQueryParams{Limit: 3, Offset: -1},
			want: repository.AuditQueryParams{Limit: 3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repos, m := setupRepoMocks(t)
			svc := NewAuditService(repos)

			m.audit.EXPECT().GetAuditLogs(tt.want).Return(nil, nil)
			_, err := svc.QueryAuditLogs(tt.in)
			assert.NoError(t, err)
		})
	}
}

func TestQueryAuditLogs_InvertedRange(t *testing.T) {
	repos, _ := setupRepoMocks(t)
	svc := NewAuditService(repos)

	start := time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC)
	end := start.Add(-time.Hour)

	_, err := svc.QueryAuditLogs(repository.AuditQueryParams{StartTime: &start, EndTime: &end})
	assert.ErrorIs(t, err, ErrInvalidHistoryRange)
}
