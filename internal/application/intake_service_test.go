package application

import (
	"errors"
	"regexp"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/linskybing/herbtrace/internal/domain/audit"
	"github.com/linskybing/herbtrace/internal/domain/herb"
	"github.com/linskybing/herbtrace/internal/domain/ticket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

var ticketIDPattern = regexp.MustCompile(`^LAB-[0-9A-F]{8}$`)

func baseHerbInput() herb.SubmitHerbInput {
	return herb.SubmitHerbInput{
		HerbName:         "Tulsi",
		GrowthMonth:      "March",
		FertilizerUsed:   "no",
		HarvestingMethod: "Hand picked",
		Location:         "Village A",
	}
}

func expectHerbCreate(m repoMocks, id uint, captured *herb.Herb) {
	m.herb.EXPECT().CreateHerb(gomock.Any()).DoAndReturn(func(h *herb.Herb) error {
		h.ID = id
		*captured = *h
		return nil
	})
}

// --------------------- SubmitHerb ---------------------
func TestSubmitHerb_WithCoordinates(t *testing.T) {
	repos, m := setupRepoMocks(t)
	svc := NewIntakeService(repos)

	input := baseHerbInput()
	input.FertilizerUsed = "yes"
	input.FertilizerDetails = "Compost"
	input.Latitude = "12.97"
	input.Longitude = "77.59"

	var created herb.Herb
	expectHerbCreate(m, 11, &created)
	m.ticket.EXPECT().CreateTicket(gomock.Any()).Return(nil)
	m.audit.EXPECT().CreateAuditLog(gomock.Any()).DoAndReturn(func(l *audit.AuditLog) error {
		assert.Equal(t, audit.ActionSubmitHerb, l.Action)
		assert.Equal(t, audit.ResourceTicket, l.ResourceType)
		return nil
	})

	tk, err := svc.SubmitHerb(4, input, audit.Actor{Type: audit.ActorFarmer, ID: ptrUint(4)})
	require.NoError(t, err)

	assert.Regexp(t, ticketIDPattern, tk.TicketID)
	assert.Equal(t, ticket.StatusPendingReview, tk.Status)
	assert.Equal(t, uint(11), tk.HerbID)
	assert.Equal(t, uint(4), tk.FarmerID)
	assert.Equal(t, testMapURL+"12.97,77.59", tk.MapLink)
	assert.False(t, tk.HasFarmerReport())

	assert.True(t, created.FertilizerUsed)
	require.NotNil(t, created.FertilizerDetails)
	assert.Equal(t, "Compost", *created.FertilizerDetails)
	require.NotNil(t, created.Latitude)
	assert.Equal(t, 12.97, *created.Latitude)
}

func TestSubmitHerb_SingleCoordinateHasNoMapLink(t *testing.T) {
	repos, m := setupRepoMocks(t)
	svc := NewIntakeService(repos)

	input := baseHerbInput()
	input.Latitude = "12.97"
	input.FertilizerDetails = "ignored"

	var created herb.Herb
	expectHerbCreate(m, 1, &created)
	m.ticket.EXPECT().CreateTicket(gomock.Any()).Return(nil)
	m.audit.EXPECT().CreateAuditLog(gomock.Any()).Return(nil)

	tk, err := svc.SubmitHerb(1, input, audit.Actor{})
	require.NoError(t, err)
	assert.Empty(t, tk.MapLink)
	assert.False(t, created.FertilizerUsed)
	assert.Nil(t, created.FertilizerDetails)
	assert.Nil(t, created.Longitude)
}

func TestSubmitHerb_InvalidCoordinate(t *testing.T) {
	repos, _ := setupRepoMocks(t)
	svc := NewIntakeService(repos)

	input := baseHerbInput()
	input.Latitude = "north"
	input.Longitude = "77.59"

	_, err := svc.SubmitHerb(1, input, audit.Actor{})
	assert.ErrorIs(t, err, ErrInvalidCoordinate)
}

func TestSubmitHerb_TicketInsertFails(t *testing.T) {
	repos, m := setupRepoMocks(t)
	svc := NewIntakeService(repos)
	dbErr := errors.New("insert failed")

	var created herb.Herb
	expectHerbCreate(m, 1, &created)
	m.ticket.EXPECT().CreateTicket(gomock.Any()).Return(dbErr)

	_, err := svc.SubmitHerb(1, baseHerbInput(), audit.Actor{})
	assert.ErrorIs(t, err, dbErr)
}

// --------------------- ListFarmerHerbs ---------------------
func TestListFarmerHerbs(t *testing.T) {
	repos, m := setupRepoMocks(t)
	svc := NewIntakeService(repos)

	m.herb.EXPECT().ListHerbsByFarmerID(uint(2)).Return([]herb.Herb{{ID: 1, HerbName: "Tulsi"}, {ID: 2, HerbName: "Neem"}}, nil)
	m.ticket.EXPECT().ListTicketsByHerbIDs([]uint{1, 2}).Return([]ticket.LabTicket{
		{TicketID: "LAB-00000001", HerbID: 1, FarmerReport: datatypes.JSONSlice[string]{"Moisture OK"}},
	}, nil)

	entries, err := svc.ListFarmerHerbs(2)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	require.NotNil(t, entries[0].Ticket)
	assert.Equal(t, "LAB-00000001", entries[0].Ticket.TicketID)
	assert.Equal(t, []string{"Moisture OK"}, entries[0].FarmerReport)

	assert.Nil(t, entries[1].Ticket)
	assert.Equal(t, []string{}, entries[1].FarmerReport)
}

func TestListFarmerHerbs_Empty(t *testing.T) {
	repos, m := setupRepoMocks(t)
	svc := NewIntakeService(repos)

	m.herb.EXPECT().ListHerbsByFarmerID(uint(2)).Return(nil, nil)
	m.ticket.EXPECT().ListTicketsByHerbIDs([]uint{}).Return(nil, nil)

	entries, err := svc.ListFarmerHerbs(2)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
