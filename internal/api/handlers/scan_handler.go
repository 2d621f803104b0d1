package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/herbtrace/internal/application"
	"github.com/linskybing/herbtrace/internal/domain/audit"
	"github.com/linskybing/herbtrace/pkg/response"
	"github.com/linskybing/herbtrace/pkg/storage"
)

// ScanHandler serves the public provenance pages and downloads.
type ScanHandler struct {
	svc *application.ProvenanceService
}

func NewScanHandler(svc *application.ProvenanceService) *ScanHandler {
	return &ScanHandler{svc: svc}
}

func (h *ScanHandler) ProductScan(c *gin.Context) {
	view, err := h.svc.Scan(c.Param("ticket_id"))
	if err != nil {
		if errors.Is(err, application.ErrTicketNotFound) {
			notFound(c, "Ticket")
			return
		}
		serverError(c, err)
		return
	}
	render(c, "product_scan.html", gin.H{"Title": view.Ticket.TicketID, "Scan": view})
}

// QRImage godoc
// @Summary QR code PNG of a finalized ticket
// @Tags scan
// @Produce png
// @Param ticket_id path string true "Ticket ID"
// @Success 200 {file} binary
// @Failure 404 {string} string "QR code not found"
// @Router /product_scan/{ticket_id}/qr.png [get]
func (h *ScanHandler) QRImage(c *gin.Context) {
	png, err := h.svc.QRImage(c.Param("ticket_id"))
	if err != nil {
		if errors.Is(err, application.ErrTicketNotFound) || errors.Is(err, application.ErrQRNotGenerated) {
			notFound(c, "QR code")
			return
		}
		serverError(c, err)
		return
	}
	c.Header("Cache-Control", "no-cache")
	c.Data(http.StatusOK, storage.ContentTypePNG, png)
}

// Download godoc
// @Summary Download the product traceability PDF
// @Tags scan
// @Produce application/pdf
// @Param ticket_id path string true "Ticket ID"
// @Success 200 {file} binary
// @Failure 404 {string} string "Ticket not found"
// @Router /product_scan_download/{ticket_id} [get]
func (h *ScanHandler) Download(c *gin.Context) {
	out, err := h.svc.ExportDocument(c.Request.Context(), c.Param("ticket_id"))
	if err != nil {
		if errors.Is(err, application.ErrTicketNotFound) {
			notFound(c, "Ticket")
			return
		}
		serverError(c, err)
		return
	}
	attachment(c, out.Filename, out.ContentType, out.Data)
}

// ScanJSON godoc
// @Summary Decoded provenance payload of a ticket
// @Tags scan
// @Produce json
// @Param ticket_id path string true "Ticket ID"
// @Success 200 {object} ticket.ScanView
// @Failure 404 {object} response.ErrorResponse "Ticket not found"
// @Router /api/product_scan/{ticket_id} [get]
func (h *ScanHandler) ScanJSON(c *gin.Context) {
	view, err := h.svc.Scan(c.Param("ticket_id"))
	if err != nil {
		writeJSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// History godoc
// @Summary Audit trail of a ticket, oldest first
// @Tags scan
// @Produce json
// @Param ticket_id path string true "Ticket ID"
// @Param action query string false "Only this action"
// @Param since query string false "RFC 3339 lower bound"
// @Param until query string false "RFC 3339 upper bound"
// @Param limit query int false "Page size"
// @Param offset query int false "Rows to skip"
// @Success 200 {array} audit.AuditLog
// @Failure 400 {object} response.ErrorResponse "Invalid filter"
// @Failure 404 {object} response.ErrorResponse "Ticket not found"
// @Router /api/tickets/{ticket_id}/history [get]
func (h *ScanHandler) History(c *gin.Context) {
	var q audit.HistoryQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: bindingMessage(err)})
		return
	}

	logs, err := h.svc.History(c.Param("ticket_id"), q)
	if err != nil {
		writeJSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, logs)
}

func writeJSONError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, application.ErrTicketNotFound):
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
		return
	case errors.Is(err, application.ErrInvalidHistoryRange):
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}
	_ = c.Error(err)
	c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "internal server error"})
}
