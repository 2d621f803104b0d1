package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/herbtrace/internal/application"
	"github.com/linskybing/herbtrace/internal/domain/audit"
	"github.com/linskybing/herbtrace/internal/domain/ticket"
)

const labDashboardPath = "/lab_dashboard"

type LabHandler struct {
	svc *application.LabService
}

func NewLabHandler(svc *application.LabService) *LabHandler {
	return &LabHandler{svc: svc}
}

func (h *LabHandler) Dashboard(c *gin.Context) {
	tickets, err := h.svc.ListPending()
	if err != nil {
		serverError(c, err)
		return
	}
	render(c, "lab_dashboard.html", gin.H{"Title": "Lab Dashboard", "Tickets": tickets})
}

func (h *LabHandler) TicketView(c *gin.Context) {
	detail, err := h.svc.GetTicketDetail(c.Param("ticket_id"))
	if err != nil {
		if errors.Is(err, application.ErrTicketNotFound) {
			redirectWithFlash(c, labDashboardPath, FlashDanger, "Ticket not found.")
			return
		}
		serverError(c, err)
		return
	}
	render(c, "lab_ticket_view.html", gin.H{"Title": detail.Ticket.TicketID, "Detail": detail})
}

// SubmitReport godoc
// @Summary Record lab findings for a ticket
// @Tags lab
// @Accept x-www-form-urlencoded
// @Param ticket_id path string true "Ticket ID"
// @Param input formData ticket.LabReportInput true "Lab report"
// @Success 302 "Redirect to /lab_dashboard"
// @Router /lab_ticket_view/{ticket_id} [post]
func (h *LabHandler) SubmitReport(c *gin.Context) {
	ticketID := c.Param("ticket_id")
	back := "/lab_ticket_view/" + ticketID

	var input ticket.LabReportInput
	if err := c.ShouldBind(&input); err != nil {
		redirectWithFlash(c, back, FlashWarning, bindingMessage(err))
		return
	}

	if _, err := h.svc.SubmitReport(ticketID, input, actorFrom(c, audit.ActorLab)); err != nil {
		switch {
		case errors.Is(err, application.ErrTicketNotFound):
			redirectWithFlash(c, labDashboardPath, FlashDanger, "Ticket not found.")
		case errors.Is(err, application.ErrInvalidCoordinate):
			redirectWithFlash(c, back, FlashWarning, "Lab latitude and longitude must be numbers.")
		default:
			serverError(c, err)
		}
		return
	}

	redirectWithFlash(c, labDashboardPath, FlashSuccess, "Lab report submitted successfully!")
}
