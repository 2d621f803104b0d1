package application

import (
	"errors"
	"fmt"

	"github.com/linskybing/herbtrace/internal/config"
	"github.com/linskybing/herbtrace/internal/domain/audit"
	"github.com/linskybing/herbtrace/internal/domain/herb"
	"github.com/linskybing/herbtrace/internal/domain/ticket"
	"github.com/linskybing/herbtrace/internal/repository"
	"github.com/linskybing/herbtrace/pkg/metrics"
	"github.com/linskybing/herbtrace/pkg/utils"
	"gorm.io/datatypes"
)

var ErrInvalidCoordinate = errors.New("latitude and longitude must be numbers")

type IntakeService struct {
	Repos *repository.Repos
}

func NewIntakeService(repos *repository.Repos) *IntakeService {
	return &IntakeService{
		Repos: repos,
	}
}

// SubmitHerb records a cultivation event and opens its lab ticket in the same
// transaction.
func (s *IntakeService) SubmitHerb(farmerID uint, input herb.SubmitHerbInput, actor audit.Actor) (ticket.LabTicket, error) {
	lat, err := utils.ParseCoordinate(input.Latitude)
	if err != nil {
		return ticket.LabTicket{}, fmt.Errorf("%w: latitude %q", ErrInvalidCoordinate, input.Latitude)
	}
	lon, err := utils.ParseCoordinate(input.Longitude)
	if err != nil {
		return ticket.LabTicket{}, fmt.Errorf("%w: longitude %q", ErrInvalidCoordinate, input.Longitude)
	}

	h := herb.Herb{
		FarmerID:         farmerID,
		HerbName:         input.HerbName,
		GrowthMonth:      input.GrowthMonth,
		FertilizerUsed:   input.UsesFertilizer(),
		HarvestingMethod: input.HarvestingMethod,
		Location:         input.Location,
		Latitude:         lat,
		Longitude:        lon,
	}
	if h.FertilizerUsed {
		details := input.FertilizerDetails
		h.FertilizerDetails = &details
	}

	var t ticket.LabTicket
	err = s.Repos.ExecTx(func(tx *repository.Repos) error {
		if err := tx.Herb.CreateHerb(&h); err != nil {
			return err
		}

		t = ticket.LabTicket{
			TicketID:  utils.NewTicketID(),
			HerbID:    h.ID,
			FarmerID:  farmerID,
			Status:    ticket.StatusPendingReview,
			MapLink:   utils.MapLink(config.MapSearchURL, lat, lon),
			LabReport: datatypes.JSONSlice[string]{},
		}
		if err := tx.Ticket.CreateTicket(&t); err != nil {
			return err
		}

		return tx.Audit.CreateAuditLog(utils.NewAuditLog(
			actor,
			audit.ActionSubmitHerb,
			audit.ResourceTicket,
			t.TicketID,
			nil,
			h,
			"herb submitted for "+h.HerbName,
		))
	})
	if err != nil {
		return ticket.LabTicket{}, err
	}

	metrics.TicketsCreated.Inc()
	return t, nil
}

// ListFarmerHerbs returns the farmer's herbs with their tickets and the
// farmer-visible part of each lab report.
func (s *IntakeService) ListFarmerHerbs(farmerID uint) ([]ticket.HerbEntry, error) {
	herbs, err := s.Repos.Herb.ListHerbsByFarmerID(farmerID)
	if err != nil {
		return nil, err
	}

	ids := make([]uint, 0, len(herbs))
	for _, h := range herbs {
		ids = append(ids, h.ID)
	}
	tickets, err := s.Repos.Ticket.ListTicketsByHerbIDs(ids)
	if err != nil {
		return nil, err
	}

	byHerb := make(map[uint]ticket.LabTicket, len(tickets))
	for _, t := range tickets {
		byHerb[t.HerbID] = t
	}

	entries := make([]ticket.HerbEntry, 0, len(herbs))
	for _, h := range herbs {
		entry := ticket.HerbEntry{Herb: h, FarmerReport: []string{}}
		if t, ok := byHerb[h.ID]; ok {
			t := t
			entry.Ticket = &t
			if t.FarmerReport != nil {
				entry.FarmerReport = []string(t.FarmerReport)
			}
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
