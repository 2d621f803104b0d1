package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/linskybing/herbtrace/internal/config"
	"github.com/linskybing/herbtrace/internal/domain/audit"
	"github.com/linskybing/herbtrace/internal/domain/farmer"
	"github.com/linskybing/herbtrace/internal/domain/ticket"
	"github.com/linskybing/herbtrace/internal/repository"
	"github.com/linskybing/herbtrace/pkg/document"
	"github.com/linskybing/herbtrace/pkg/logger"
	"github.com/linskybing/herbtrace/pkg/metrics"
	"github.com/linskybing/herbtrace/pkg/qr"
	"github.com/linskybing/herbtrace/pkg/storage"
	"go.uber.org/zap"
)

var (
	ErrReportUnavailable = errors.New("no report available for download")
	ErrNotTicketOwner    = errors.New("ticket belongs to another farmer")
	ErrQRNotGenerated    = errors.New("qr code has not been generated for this ticket")
)

const notAvailable = "N/A"

// Export is a rendered download.
type Export struct {
	Filename    string
	ContentType string
	Data        []byte
}

type ProvenanceService struct {
	Repos *repository.Repos
	Store storage.ObjectStore
	Audit *AuditService
}

func NewProvenanceService(repos *repository.Repos, store storage.ObjectStore) *ProvenanceService {
	return &ProvenanceService{
		Repos: repos,
		Store: store,
		Audit: NewAuditService(repos),
	}
}

// Scan returns the public view of a ticket. An unreadable or missing payload
// yields an empty one rather than an error.
func (s *ProvenanceService) Scan(ticketID string) (ticket.ScanView, error) {
	t, err := s.Repos.Ticket.GetTicketByTicketID(ticketID)
	if err != nil {
		return ticket.ScanView{}, ticketLookupErr(err)
	}

	view := ticket.ScanView{Ticket: t}
	if t.QRPayload == "" {
		return view, nil
	}

	var payload ticket.QRPayload
	if err := qr.DecodePayload(t.QRPayload, &payload); err != nil {
		logger.L().Warn("unreadable qr payload", zap.String("ticket_id", t.TicketID), zap.Error(err))
		return view, nil
	}
	view.Payload = payload
	view.HasPayload = true
	return view, nil
}

// QRImage returns the PNG generated at finalization.
func (s *ProvenanceService) QRImage(ticketID string) ([]byte, error) {
	t, err := s.Repos.Ticket.GetTicketByTicketID(ticketID)
	if err != nil {
		return nil, ticketLookupErr(err)
	}
	if !t.ManufacturerFinalized || t.QRCodeData == "" {
		return nil, ErrQRNotGenerated
	}

	png, err := qr.DecodeImage(t.QRCodeData)
	if err != nil {
		return nil, fmt.Errorf("decode qr image for %s: %w", t.TicketID, err)
	}
	return png, nil
}

// ExportDocument renders the consumer-facing traceability PDF.
func (s *ProvenanceService) ExportDocument(ctx context.Context, ticketID string) (Export, error) {
	t, err := s.Repos.Ticket.GetTicketByTicketID(ticketID)
	if err != nil {
		return Export{}, ticketLookupErr(err)
	}
	f, err := s.Repos.Farmer.GetFarmerByID(t.FarmerID)
	if err != nil {
		return Export{}, fmt.Errorf("load farmer %d for %s: %w", t.FarmerID, t.TicketID, err)
	}

	sections := traceabilitySections(t, f)
	data, err := document.RenderPDF("Product Traceability Report - Ticket ID: "+t.TicketID, sections, document.PDFOptions{FontPath: config.PDFFontPath})
	if err != nil {
		return Export{}, err
	}

	out := Export{
		Filename:    "ProductTraceability_" + t.TicketID + ".pdf",
		ContentType: storage.ContentTypePDF,
		Data:        data,
	}
	metrics.Exports.WithLabelValues(metrics.ExportPDF).Inc()
	archive(ctx, s.Store, storage.ExportObjectName(out.Filename), out.ContentType, out.Data)
	return out, nil
}

// ExportTextReport renders the farmer-visible lab findings as plain text. Only
// the farmer who owns the ticket may download it.
func (s *ProvenanceService) ExportTextReport(farmerID uint, ticketID string) (Export, error) {
	detail, err := loadDetail(s.Repos, ticketID)
	if err != nil {
		if errors.Is(err, ErrTicketNotFound) {
			return Export{}, ErrReportUnavailable
		}
		return Export{}, err
	}
	t := detail.Ticket
	if t.FarmerID != farmerID {
		return Export{}, ErrNotTicketOwner
	}
	if !t.HasFarmerReport() {
		return Export{}, ErrReportUnavailable
	}

	body := document.RenderNumberedText(
		[]string{
			"Lab Report for Ticket ID: " + t.TicketID,
			"Farmer: " + detail.Farmer.Name,
			"Herb: " + detail.Herb.HerbName,
		},
		"Report Details:",
		[]string(t.FarmerReport),
	)

	metrics.Exports.WithLabelValues(metrics.ExportText).Inc()
	return Export{
		Filename:    "LabReport_" + t.TicketID + ".txt",
		ContentType: "text/plain; charset=utf-8",
		Data:        []byte(body),
	}, nil
}

// History returns the audit trail of an existing ticket, oldest first.
func (s *ProvenanceService) History(ticketID string, q audit.HistoryQuery) ([]audit.AuditLog, error) {
	if _, err := s.Repos.Ticket.GetTicketByTicketID(ticketID); err != nil {
		return nil, ticketLookupErr(err)
	}
	return s.Audit.TicketHistory(ticketID, q)
}

// traceabilitySections lays out the PDF body in fixed order. Sections with
// nothing recorded are left out.
func traceabilitySections(t ticket.LabTicket, f farmer.Farmer) []document.Section {
	farmerInfo := document.Section{Title: "Farmer Information", Lines: []string{
		"Name: " + f.Name,
		"Phone: " + f.Phone,
		"Farm Location Map: " + orNA(t.MapLink),
	}}

	labInfo := document.Section{Title: "Lab Information"}
	if t.LabName != "" || t.LabLocation != "" || t.LabMapLink != "" {
		labInfo.Lines = []string{
			"Lab Name: " + orNA(t.LabName),
			"Lab Location: " + orNA(t.LabLocation),
			"Lab Map Link: " + orNA(t.LabMapLink),
		}
	}

	return document.Compact(
		farmerInfo,
		labInfo,
		document.Section{Title: "Processing Method", Lines: []string{t.ProcessingMethod}},
		document.Section{Title: "Quality Checks", Lines: []string{t.QualityChecks}},
	)
}

func orNA(s string) string {
	if s == "" {
		return notAvailable
	}
	return s
}
