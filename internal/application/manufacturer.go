package application

import (
	"context"
	"time"

	"github.com/linskybing/herbtrace/internal/domain/audit"
	"github.com/linskybing/herbtrace/internal/domain/farmer"
	"github.com/linskybing/herbtrace/internal/domain/ticket"
	"github.com/linskybing/herbtrace/internal/repository"
	"github.com/linskybing/herbtrace/pkg/metrics"
	"github.com/linskybing/herbtrace/pkg/qr"
	"github.com/linskybing/herbtrace/pkg/storage"
	"github.com/linskybing/herbtrace/pkg/utils"
)

type ManufacturerService struct {
	Repos *repository.Repos
	Store storage.ObjectStore
}

func NewManufacturerService(repos *repository.Repos, store storage.ObjectStore) *ManufacturerService {
	return &ManufacturerService{
		Repos: repos,
		Store: store,
	}
}

// ListAwaitingFinalization returns reviewed tickets the manufacturer has not
// finalized yet.
func (s *ManufacturerService) ListAwaitingFinalization() ([]ticket.LabTicket, error) {
	return s.Repos.Ticket.ListTicketsAwaitingFinalization()
}

func (s *ManufacturerService) GetTicket(ticketID string) (ticket.LabTicket, error) {
	t, err := s.Repos.Ticket.GetTicketByTicketID(ticketID)
	if err != nil {
		return ticket.LabTicket{}, ticketLookupErr(err)
	}
	return t, nil
}

// Finalize overwrites the manufacturing record and regenerates the QR code
// from the ticket's current farmer, lab and manufacturing data. Calling it
// again on a finalized ticket is allowed and produces a fresh code.
func (s *ManufacturerService) Finalize(ctx context.Context, ticketID string, input ticket.FinalizeInput, actor audit.Actor) (ticket.LabTicket, error) {
	var (
		t       ticket.LabTicket
		encoded qr.Encoded
	)
	err := s.Repos.ExecTx(func(tx *repository.Repos) error {
		var err error
		t, err = tx.Ticket.GetTicketByTicketID(ticketID)
		if err != nil {
			return ticketLookupErr(err)
		}
		before := t

		f, err := tx.Farmer.GetFarmerByID(t.FarmerID)
		if err != nil {
			return err
		}

		applyFinalizeInput(&t, input)
		now := time.Now()
		t.ManufacturerFinalized = true
		t.FinalizedAt = &now

		encoded, err = qr.Encode(buildQRPayload(t, f), qr.DefaultSize)
		if err != nil {
			return err
		}
		t.QRCodeData = encoded.PNGBase64
		t.QRPayload = encoded.PayloadBase64

		if err := tx.Ticket.SaveTicket(&t); err != nil {
			return err
		}

		return tx.Audit.CreateAuditLog(utils.NewAuditLog(
			actor,
			audit.ActionFinalize,
			audit.ResourceTicket,
			t.TicketID,
			before,
			t,
			"manufacturer finalized batch "+t.BatchNumber,
		))
	})
	if err != nil {
		return ticket.LabTicket{}, err
	}

	metrics.Finalizations.Inc()
	archive(ctx, s.Store, storage.QRObjectName(t.TicketID), storage.ContentTypePNG, encoded.PNG)
	return t, nil
}

func applyFinalizeInput(t *ticket.LabTicket, in ticket.FinalizeInput) {
	t.ManufacturerReport = in.ManufacturerReport
	t.FinalProductData = in.FinalProductData
	t.RawMaterialVerification = in.RawMaterialVerification
	t.ProcessingMethod = in.ProcessingMethod
	t.QualityChecks = in.QualityChecks
	t.PackagingDetails = in.PackagingDetails
	t.StorageConditions = in.StorageConditions
	t.BatchNumber = in.BatchNumber
	t.CertificationInfo = in.CertificationInfo
	t.ManufacturerNotes = in.ManufacturerNotes
}

func buildQRPayload(t ticket.LabTicket, f farmer.Farmer) ticket.QRPayload {
	return ticket.QRPayload{
		TicketID:                     t.TicketID,
		FarmerName:                   f.Name,
		FarmerPhone:                  f.Phone,
		FarmLocationMapLink:          t.MapLink,
		LabName:                      t.LabName,
		LabLocation:                  t.LabLocation,
		LabMapLink:                   t.LabMapLink,
		ManufacturerProcessingMethod: t.ProcessingMethod,
		ManufacturerQualityChecks:    t.QualityChecks,
	}
}
