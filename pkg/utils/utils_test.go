package utils

import (
	"encoding/json"
	"net/http/httptest"
	"regexp"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/herbtrace/internal/domain/audit"
	"github.com/linskybing/herbtrace/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const mapBase = "https://www.google.com/maps/search/?api=1&query="

func TestNewTicketID_Format(t *testing.T) {
	pattern := regexp.MustCompile(`^LAB-[0-9A-F]{8}$`)
	seen := make(map[string]bool)
	for i := 0; i < 200; i++ {
		id := NewTicketID()
		assert.Regexp(t, pattern, id)
		seen[id] = true
	}
	assert.Greater(t, len(seen), 190)
}

func TestParseCoordinate(t *testing.T) {
	v, err := ParseCoordinate("  ")
	assert.NoError(t, err)
	assert.Nil(t, v)

	v, err = ParseCoordinate("12.9716")
	require.NoError(t, err)
	assert.InDelta(t, 12.9716, *v, 1e-9)

	_, err = ParseCoordinate("north")
	assert.Error(t, err)
}

func TestMapLink(t *testing.T) {
	lat, lon := 12.5, 77.25

	assert.Equal(t, mapBase+"12.5,77.25", MapLink(mapBase, &lat, &lon))
	assert.Empty(t, MapLink(mapBase, &lat, nil))
	assert.Empty(t, MapLink(mapBase, nil, &lon))
	assert.Empty(t, MapLink(mapBase, nil, nil))
}

func TestGetFarmerIDFromContext(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	_, err := GetFarmerIDFromContext(c)
	assert.ErrorIs(t, err, ErrNoSession)

	c.Set(ClaimsKey, "not claims")
	_, err = GetFarmerIDFromContext(c)
	assert.Error(t, err)

	c.Set(ClaimsKey, &types.Claims{FarmerID: 7})
	id, err := GetFarmerIDFromContext(c)
	assert.NoError(t, err)
	assert.Equal(t, uint(7), id)
}

func TestNewAuditLog(t *testing.T) {
	id := uint(3)
	actor := audit.Actor{Type: audit.ActorFarmer, ID: &id, IPAddress: "10.0.0.1", UserAgent: "test"}

	entry := NewAuditLog(actor, audit.ActionSubmitHerb, audit.ResourceTicket, "LAB-0000ABCD", nil, map[string]string{"status": "Pending Review"}, "created")

	assert.Equal(t, audit.ActorFarmer, entry.ActorType)
	assert.Equal(t, &id, entry.ActorID)
	assert.Equal(t, "LAB-0000ABCD", entry.ResourceID)
	assert.JSONEq(t, "null", string(entry.OldData))

	var after map[string]string
	require.NoError(t, json.Unmarshal(entry.NewData, &after))
	assert.Equal(t, "Pending Review", after["status"])

	bad := NewAuditLog(actor, audit.ActionSubmitHerb, audit.ResourceTicket, "x", make(chan int), nil, "")
	assert.JSONEq(t, "null", string(bad.OldData))
}
