package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/herbtrace/internal/application"
	"github.com/linskybing/herbtrace/internal/domain/audit"
	"github.com/linskybing/herbtrace/internal/domain/ticket"
)

type ManufacturerHandler struct {
	svc *application.ManufacturerService
}

func NewManufacturerHandler(svc *application.ManufacturerService) *ManufacturerHandler {
	return &ManufacturerHandler{svc: svc}
}

func (h *ManufacturerHandler) Dashboard(c *gin.Context) {
	tickets, err := h.svc.ListAwaitingFinalization()
	if err != nil {
		serverError(c, err)
		return
	}
	render(c, "manufacturer_dashboard.html", gin.H{"Title": "Manufacturer Dashboard", "Tickets": tickets})
}

func (h *ManufacturerHandler) TicketView(c *gin.Context) {
	t, err := h.svc.GetTicket(c.Param("ticket_id"))
	if err != nil {
		if errors.Is(err, application.ErrTicketNotFound) {
			notFound(c, "Ticket")
			return
		}
		serverError(c, err)
		return
	}
	render(c, "manufacturer_ticket_view.html", gin.H{"Title": t.TicketID, "Ticket": t})
}

// Finalize godoc
// @Summary Finalize a batch and generate its QR code
// @Tags manufacturer
// @Accept x-www-form-urlencoded
// @Param ticket_id path string true "Ticket ID"
// @Param input formData ticket.FinalizeInput true "Manufacturing record"
// @Success 302 "Redirect back to the ticket page"
// @Failure 404 {string} string "Ticket not found"
// @Router /manufacturer/ticket/{ticket_id} [post]
func (h *ManufacturerHandler) Finalize(c *gin.Context) {
	ticketID := c.Param("ticket_id")

	var input ticket.FinalizeInput
	if err := c.ShouldBind(&input); err != nil {
		redirectWithFlash(c, "/manufacturer/ticket/"+ticketID, FlashWarning, bindingMessage(err))
		return
	}

	t, err := h.svc.Finalize(c.Request.Context(), ticketID, input, actorFrom(c, audit.ActorManufacturer))
	if err != nil {
		if errors.Is(err, application.ErrTicketNotFound) {
			notFound(c, "Ticket")
			return
		}
		serverError(c, err)
		return
	}

	redirectWithFlash(c, "/manufacturer/ticket/"+t.TicketID, FlashSuccess, "Manufacturer report finalized and QR code generated.")
}
