package application

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/linskybing/herbtrace/internal/config"
	"github.com/linskybing/herbtrace/internal/repository"
	"github.com/linskybing/herbtrace/internal/repository/mock"
	"github.com/linskybing/herbtrace/pkg/storage"
)

const testMapURL = "https://maps.test/search?query="

type repoMocks struct {
	farmer *mock.MockFarmerRepo
	herb   *mock.MockHerbRepo
	ticket *mock.MockTicketRepo
	audit  *mock.MockAuditRepo
}

// setupRepoMocks builds Repos without a connection, so ExecTx runs the
// callback directly against the mocks.
func setupRepoMocks(t *testing.T) (*repository.Repos, repoMocks) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	m := repoMocks{
		farmer: mock.NewMockFarmerRepo(ctrl),
		herb:   mock.NewMockHerbRepo(ctrl),
		ticket: mock.NewMockTicketRepo(ctrl),
		audit:  mock.NewMockAuditRepo(ctrl),
	}
	repos := &repository.Repos{
		Farmer: m.farmer,
		Herb:   m.herb,
		Ticket: m.ticket,
		Audit:  m.audit,
	}

	oldURL := config.MapSearchURL
	config.MapSearchURL = testMapURL
	t.Cleanup(func() { config.MapSearchURL = oldURL })

	return repos, m
}

func ptrFloat(v float64) *float64 { return &v }

func ptrUint(v uint) *uint { return &v }

type fakeStore struct {
	mu      sync.Mutex
	objects map[string][]byte
	failPut bool
}

var _ storage.ObjectStore = (*fakeStore)(nil)

func newFakeStore() *fakeStore {
	return &fakeStore{objects: map[string][]byte{}}
}

func (s *fakeStore) Put(_ context.Context, name, _ string, data []byte) error {
	if s.failPut {
		return errors.New("bucket unavailable")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[name] = data
	return nil
}
