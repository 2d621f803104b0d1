package application

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/linskybing/herbtrace/internal/config"
	"github.com/linskybing/herbtrace/internal/domain/audit"
	"github.com/linskybing/herbtrace/internal/domain/ticket"
	"github.com/linskybing/herbtrace/internal/repository"
	"github.com/linskybing/herbtrace/pkg/metrics"
	"github.com/linskybing/herbtrace/pkg/utils"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var ErrTicketNotFound = errors.New("ticket not found")

type LabService struct {
	Repos *repository.Repos
}

func NewLabService(repos *repository.Repos) *LabService {
	return &LabService{
		Repos: repos,
	}
}

func (s *LabService) ListPending() ([]ticket.LabTicket, error) {
	return s.Repos.Ticket.ListTicketsByStatus(ticket.StatusPendingReview)
}

// GetTicketDetail resolves a ticket together with its herb and farmer.
func (s *LabService) GetTicketDetail(ticketID string) (ticket.Detail, error) {
	return loadDetail(s.Repos, ticketID)
}

// SubmitReport records lab findings. Farmers only see the first finding.
// Submitting again overwrites the previous review.
func (s *LabService) SubmitReport(ticketID string, input ticket.LabReportInput, actor audit.Actor) (ticket.LabTicket, error) {
	lat, err := utils.ParseCoordinate(input.LabLatitude)
	if err != nil {
		return ticket.LabTicket{}, fmt.Errorf("%w: lab latitude %q", ErrInvalidCoordinate, input.LabLatitude)
	}
	lon, err := utils.ParseCoordinate(input.LabLongitude)
	if err != nil {
		return ticket.LabTicket{}, fmt.Errorf("%w: lab longitude %q", ErrInvalidCoordinate, input.LabLongitude)
	}

	findings := make([]string, 0, len(input.Findings))
	for _, f := range input.Findings {
		if f = strings.TrimSpace(f); f != "" {
			findings = append(findings, f)
		}
	}

	var t ticket.LabTicket
	err = s.Repos.ExecTx(func(tx *repository.Repos) error {
		var err error
		t, err = tx.Ticket.GetTicketByTicketID(ticketID)
		if err != nil {
			return ticketLookupErr(err)
		}
		before := t

		now := time.Now()
		t.LabReport = datatypes.JSONSlice[string](findings)
		t.FarmerReport = datatypes.JSONSlice[string]{}
		if len(findings) > 0 {
			t.FarmerReport = datatypes.JSONSlice[string]{findings[0]}
		}
		t.LabName = input.LabName
		t.LabLocation = input.LabLocation
		if link := utils.MapLink(config.MapSearchURL, lat, lon); link != "" {
			t.LabMapLink = link
		}
		t.Status = ticket.StatusReviewed
		t.ReviewedAt = &now

		if err := tx.Ticket.SaveTicket(&t); err != nil {
			return err
		}

		return tx.Audit.CreateAuditLog(utils.NewAuditLog(
			actor,
			audit.ActionLabReview,
			audit.ResourceTicket,
			t.TicketID,
			before,
			t,
			fmt.Sprintf("lab %s recorded %d findings", t.LabName, len(findings)),
		))
	})
	if err != nil {
		return ticket.LabTicket{}, err
	}

	metrics.LabReviews.Inc()
	return t, nil
}

func loadDetail(repos *repository.Repos, ticketID string) (ticket.Detail, error) {
	t, err := repos.Ticket.GetTicketByTicketID(ticketID)
	if err != nil {
		return ticket.Detail{}, ticketLookupErr(err)
	}

	h, err := repos.Herb.GetHerbByID(t.HerbID)
	if err != nil {
		return ticket.Detail{}, fmt.Errorf("load herb %d for %s: %w", t.HerbID, t.TicketID, err)
	}
	f, err := repos.Farmer.GetFarmerByID(t.FarmerID)
	if err != nil {
		return ticket.Detail{}, fmt.Errorf("load farmer %d for %s: %w", t.FarmerID, t.TicketID, err)
	}

	return ticket.Detail{
		Ticket:      t,
		Herb:        h,
		Farmer:      f,
		HerbMapLink: utils.MapLink(config.MapSearchURL, h.Latitude, h.Longitude),
	}, nil
}

func ticketLookupErr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrTicketNotFound
	}
	return err
}
