package utils

import (
	"strings"

	"github.com/google/uuid"
)

const TicketIDPrefix = "LAB-"

// NewTicketID mints LAB- followed by the first 8 hex digits of a random UUID,
// upper-cased. Collisions are left to the unique index.
var NewTicketID = func() string {
	return TicketIDPrefix + strings.ToUpper(uuid.NewString()[:8])
}
