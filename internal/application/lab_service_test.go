package application

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/linskybing/herbtrace/internal/domain/audit"
	"github.com/linskybing/herbtrace/internal/domain/farmer"
	"github.com/linskybing/herbtrace/internal/domain/herb"
	"github.com/linskybing/herbtrace/internal/domain/ticket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func pendingTicket() ticket.LabTicket {
	return ticket.LabTicket{ID: 1, TicketID: "LAB-1A2B3C4D", HerbID: 5, FarmerID: 2, Status: ticket.StatusPendingReview}
}

// --------------------- SubmitReport ---------------------
func TestSubmitReport_FarmerSeesFirstFinding(t *testing.T) {
	repos, m := setupRepoMocks(t)
	svc := NewLabService(repos)

	m.ticket.EXPECT().GetTicketByTicketID("LAB-1A2B3C4D").Return(pendingTicket(), nil)
	m.ticket.EXPECT().SaveTicket(gomock.Any()).Return(nil)
	m.audit.EXPECT().CreateAuditLog(gomock.Any()).DoAndReturn(func(l *audit.AuditLog) error {
		assert.Equal(t, audit.ActionLabReview, l.Action)
		assert.Equal(t, "LAB-1A2B3C4D", l.ResourceID)
		assert.Contains(t, string(l.OldData), "Pending Review")
		return nil
	})

	tk, err := svc.SubmitReport("LAB-1A2B3C4D", ticket.LabReportInput{
		Findings:     []string{"A", "B", "C"},
		LabName:      "Ayur Labs",
		LabLocation:  "Pune",
		LabLatitude:  "18.52",
		LabLongitude: "73.85",
	}, audit.Actor{Type: audit.ActorLab})
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B", "C"}, []string(tk.LabReport))
	assert.Equal(t, []string{"A"}, []string(tk.FarmerReport))
	assert.Equal(t, ticket.StatusReviewed, tk.Status)
	assert.Equal(t, testMapURL+"18.52,73.85", tk.LabMapLink)
	assert.NotNil(t, tk.ReviewedAt)
	assert.True(t, tk.HasFarmerReport())
}

func TestSubmitReport_NoFindings(t *testing.T) {
	repos, m := setupRepoMocks(t)
	svc := NewLabService(repos)

	m.ticket.EXPECT().GetTicketByTicketID("LAB-1A2B3C4D").Return(pendingTicket(), nil)
	m.ticket.EXPECT().SaveTicket(gomock.Any()).Return(nil)
	m.audit.EXPECT().CreateAuditLog(gomock.Any()).Return(nil)

	tk, err := svc.SubmitReport("LAB-1A2B3C4D", ticket.LabReportInput{
		Findings:    []string{"  "},
		LabName:     "Ayur Labs",
		LabLocation: "Pune",
		LabLatitude: "18.52",
	}, audit.Actor{})
	require.NoError(t, err)

	assert.Empty(t, tk.LabReport)
	assert.NotNil(t, tk.FarmerReport)
	assert.Empty(t, tk.FarmerReport)
	assert.Empty(t, tk.LabMapLink)
	assert.True(t, tk.HasFarmerReport())
}

func TestSubmitReport_BlankLeadingFinding(t *testing.T) {
	repos, m := setupRepoMocks(t)
	svc := NewLabService(repos)

	m.ticket.EXPECT().GetTicketByTicketID("LAB-1A2B3C4D").Return(pendingTicket(), nil)
	m.ticket.EXPECT().SaveTicket(gomock.Any()).Return(nil)
	m.audit.EXPECT().CreateAuditLog(gomock.Any()).Return(nil)

	tk, err := svc.SubmitReport("LAB-1A2B3C4D", ticket.LabReportInput{
		Findings:    []string{"", " B "},
		LabName:     "Ayur Labs",
		LabLocation: "Pune",
	}, audit.Actor{})
	require.NoError(t, err)

	assert.Equal(t, []string{"B"}, []string(tk.LabReport))
	assert.Equal(t, []string{"B"}, []string(tk.FarmerReport))
}

func TestSubmitReport_Overwrites(t *testing.T) {
	repos, m := setupRepoMocks(t)
	svc := NewLabService(repos)

	reviewed := pendingTicket()
	reviewed.Status = ticket.StatusReviewed
	reviewed.LabReport = []string{"old"}
	reviewed.FarmerReport = []string{"old"}
	reviewed.LabMapLink = "https://old"

	m.ticket.EXPECT().GetTicketByTicketID("LAB-1A2B3C4D").Return(reviewed, nil)
	m.ticket.EXPECT().SaveTicket(gomock.Any()).Return(nil)
	m.audit.EXPECT().CreateAuditLog(gomock.Any()).Return(nil)

	tk, err := svc.SubmitReport("LAB-1A2B3C4D", ticket.LabReportInput{
		Findings:    []string{"new"},
		LabName:     "Other Lab",
		LabLocation: "Delhi",
	}, audit.Actor{})
	require.NoError(t, err)
	assert.Equal(t, []string{"new"}, []string(tk.FarmerReport))
	assert.Equal(t, "Other Lab", tk.LabName)
	assert.Equal(t, "https://old", tk.LabMapLink)
}

func TestSubmitReport_TicketNotFound(t *testing.T) {
	repos, m := setupRepoMocks(t)
	svc := NewLabService(repos)

	m.ticket.EXPECT().GetTicketByTicketID("LAB-MISSING").Return(ticket.LabTicket{}, gorm.ErrRecordNotFound)

	_, err := svc.SubmitReport("LAB-MISSING", ticket.LabReportInput{LabName: "x", LabLocation: "y"}, audit.Actor{})
	assert.ErrorIs(t, err, ErrTicketNotFound)
}

func TestSubmitReport_InvalidCoordinate(t *testing.T) {
	repos, _ := setupRepoMocks(t)
	svc := NewLabService(repos)

	_, err := svc.SubmitReport("LAB-1A2B3C4D", ticket.LabReportInput{LabName: "x", LabLocation: "y", LabLongitude: "east"}, audit.Actor{})
	assert.ErrorIs(t, err, ErrInvalidCoordinate)
}

// --------------------- GetTicketDetail ---------------------
func TestGetTicketDetail_ResolvesHerbAndFarmer(t *testing.T) {
	repos, m := setupRepoMocks(t)
	svc := NewLabService(repos)

	m.ticket.EXPECT().GetTicketByTicketID("LAB-1A2B3C4D").Return(pendingTicket(), nil)
	m.herb.EXPECT().GetHerbByID(uint(5)).Return(herb.Herb{ID: 5, HerbName: "Tulsi", Latitude: ptrFloat(1.5), Longitude: ptrFloat(-2)}, nil)
	m.farmer.EXPECT().GetFarmerByID(uint(2)).Return(farmer.Farmer{ID: 2, Name: "Asha"}, nil)

	d, err := svc.GetTicketDetail("LAB-1A2B3C4D")
	require.NoError(t, err)
	assert.Equal(t, "Tulsi", d.Herb.HerbName)
	assert.Equal(t, "Asha", d.Farmer.Name)
	assert.Equal(t, testMapURL+"1.5,-2", d.HerbMapLink)
}

func TestGetTicketDetail_NotFound(t *testing.T) {
	repos, m := setupRepoMocks(t)
	svc := NewLabService(repos)

	m.ticket.EXPECT().GetTicketByTicketID("LAB-NONE").Return(ticket.LabTicket{}, gorm.ErrRecordNotFound)

	_, err := svc.GetTicketDetail("LAB-NONE")
	assert.ErrorIs(t, err, ErrTicketNotFound)
}

func TestListPending(t *testing.T) {
	repos, m := setupRepoMocks(t)
	svc := NewLabService(repos)

	m.ticket.EXPECT().ListTicketsByStatus(ticket.StatusPendingReview).Return([]ticket.LabTicket{pendingTicket()}, nil)

	tickets, err := svc.ListPending()
	require.NoError(t, err)
	assert.Len(t, tickets, 1)
}
