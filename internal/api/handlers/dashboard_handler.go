package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/herbtrace/internal/api/middleware"
	"github.com/linskybing/herbtrace/internal/application"
	"github.com/linskybing/herbtrace/internal/config"
	"github.com/linskybing/herbtrace/internal/domain/audit"
	"github.com/linskybing/herbtrace/internal/domain/herb"
	"github.com/linskybing/herbtrace/pkg/utils"
)

// DashboardHandler serves the pages behind a farmer session.
type DashboardHandler struct {
	farmers    *application.FarmerService
	intake     *application.IntakeService
	provenance *application.ProvenanceService
}

func NewDashboardHandler(farmers *application.FarmerService, intake *application.IntakeService, provenance *application.ProvenanceService) *DashboardHandler {
	return &DashboardHandler{farmers: farmers, intake: intake, provenance: provenance}
}

func (h *DashboardHandler) Dashboard(c *gin.Context) {
	farmerID, err := utils.GetFarmerIDFromContext(c)
	if err != nil {
		c.Redirect(http.StatusFound, middleware.LoginPath)
		return
	}

	f, err := h.farmers.GetFarmer(farmerID)
	if err != nil {
		if errors.Is(err, application.ErrFarmerNotFound) {
			// Token outlived the account.
			c.SetCookie(middleware.TokenCookie, "", -1, "/", "", config.IsProduction, true)
			c.Redirect(http.StatusFound, middleware.LoginPath)
			return
		}
		serverError(c, err)
		return
	}

	entries, err := h.intake.ListFarmerHerbs(farmerID)
	if err != nil {
		serverError(c, err)
		return
	}

	render(c, "farmer_dashboard.html", gin.H{
		"Title":   "Dashboard",
		"Farmer":  f,
		"Entries": entries,
	})
}

// SubmitHerb godoc
// @Summary Record a harvest and open its lab ticket
// @Tags farmer
// @Accept x-www-form-urlencoded
// @Param input formData herb.SubmitHerbInput true "Herb details"
// @Success 302 "Redirect to /dashboard"
// @Router /dashboard [post]
func (h *DashboardHandler) SubmitHerb(c *gin.Context) {
	farmerID, err := utils.GetFarmerIDFromContext(c)
	if err != nil {
		c.Redirect(http.StatusFound, middleware.LoginPath)
		return
	}

	var input herb.SubmitHerbInput
	if err := c.ShouldBind(&input); err != nil {
		redirectWithFlash(c, "/dashboard", FlashWarning, bindingMessage(err))
		return
	}

	t, err := h.intake.SubmitHerb(farmerID, input, actorFrom(c, audit.ActorFarmer))
	if err != nil {
		if errors.Is(err, application.ErrInvalidCoordinate) {
			redirectWithFlash(c, "/dashboard", FlashWarning, "Latitude and longitude must be numbers.")
			return
		}
		_ = c.Error(err)
		redirectWithFlash(c, "/dashboard", FlashDanger, "Could not save herb. Please try again.")
		return
	}

	redirectWithFlash(c, "/dashboard", FlashSuccess, "Herb added successfully! Lab Ticket ID: "+t.TicketID)
}

// DownloadReport godoc
// @Summary Download the farmer-visible lab report as text
// @Tags farmer
// @Produce plain
// @Param ticket_id path string true "Ticket ID"
// @Success 200 {string} string "LabReport_<ticket_id>.txt"
// @Router /download_report/{ticket_id} [get]
func (h *DashboardHandler) DownloadReport(c *gin.Context) {
	farmerID, err := utils.GetFarmerIDFromContext(c)
	if err != nil {
		c.Redirect(http.StatusFound, middleware.LoginPath)
		return
	}

	out, err := h.provenance.ExportTextReport(farmerID, c.Param("ticket_id"))
	if err != nil {
		switch {
		case errors.Is(err, application.ErrReportUnavailable):
			redirectWithFlash(c, "/dashboard", FlashWarning, "No report available for download.")
		case errors.Is(err, application.ErrNotTicketOwner):
			redirectWithFlash(c, "/dashboard", FlashDanger, "You can only download reports for your own herbs.")
		default:
			serverError(c, err)
		}
		return
	}

	attachment(c, out.Filename, out.ContentType, out.Data)
}
