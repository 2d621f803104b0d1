package web

import (
	"bytes"
	"testing"
	"time"

	"github.com/linskybing/herbtrace/internal/domain/farmer"
	"github.com/linskybing/herbtrace/internal/domain/herb"
	"github.com/linskybing/herbtrace/internal/domain/ticket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplates_RenderEveryPage(t *testing.T) {
	tmpl, err := Templates()
	require.NoError(t, err)

	now := time.Now()
	tk := ticket.LabTicket{
		TicketID:              "LAB-1A2B3C4D",
		Status:                ticket.StatusReviewed,
		MapLink:               "https://maps.test/?q=1,2",
		LabName:               "Ayur Labs",
		LabReport:             []string{"Moisture OK"},
		ReviewedAt:            &now,
		ManufacturerFinalized: true,
	}

	pages := map[string]map[string]any{
		"index.html":           {},
		"farmer_register.html": {"Title": "Register"},
		"farmer_login.html":    {"Flash": map[string]string{"Category": "danger", "Message": "Invalid credentials. Try again."}},
		"farmer_dashboard.html": {
			"Farmer":  farmer.Farmer{Name: "Asha"},
			"Entries": []ticket.HerbEntry{{Herb: herb.Herb{HerbName: "Tulsi"}, Ticket: &tk, FarmerReport: []string{"Moisture OK"}}},
		},
		"lab_dashboard.html":          {"Tickets": []ticket.LabTicket{tk}},
		"lab_ticket_view.html":        {"Detail": ticket.Detail{Ticket: tk, Herb: herb.Herb{HerbName: "Tulsi"}}},
		"manufacturer_dashboard.html": {"Tickets": []ticket.LabTicket{tk}},
		"manufacturer_ticket_view.html": {"Ticket": tk},
		"product_scan.html": {"Scan": ticket.ScanView{
			Ticket:     tk,
			Payload:    ticket.QRPayload{TicketID: tk.TicketID, FarmerName: "Asha"},
			HasPayload: true,
		}},
	}

	for name, data := range pages {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, tmpl.ExecuteTemplate(&buf, name, data))
			assert.Contains(t, buf.String(), "</html>")
		})
	}
}

func TestTemplates_FlashIsRendered(t *testing.T) {
	tmpl, err := Templates()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, tmpl.ExecuteTemplate(&buf, "index.html", map[string]any{
		"Flash": map[string]string{"Category": "info", "Message": "Logged out successfully"},
	}))
	assert.Contains(t, buf.String(), `class="flash flash-info"`)
	assert.Contains(t, buf.String(), "Logged out successfully")
}
