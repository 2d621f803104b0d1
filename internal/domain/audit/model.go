package audit

import (
	"time"

	"gorm.io/datatypes"
)

type ActorType string

const (
	ActorFarmer       ActorType = "farmer"
	ActorLab          ActorType = "lab"
	ActorManufacturer ActorType = "manufacturer"
)

const (
	ActionRegisterFarmer = "register_farmer"
	ActionSubmitHerb     = "submit_herb"
	ActionLabReview      = "lab_review"
	ActionFinalize       = "finalize"
)

const (
	ResourceFarmer = "farmer"
	ResourceTicket = "lab_ticket"
)

type AuditLog struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	ActorType    ActorType      `gorm:"size:20;not null" json:"actor_type"`
	ActorID      *uint          `json:"actor_id"`
	Action       string         `gorm:"size:50;not null;index" json:"action"`
	ResourceType string         `gorm:"size:50;not null" json:"resource_type"`
	ResourceID   string         `gorm:"size:50;not null;index" json:"resource_id"`
	OldData      datatypes.JSON `json:"old_data"`
	NewData      datatypes.JSON `json:"new_data"`
	IPAddress    string         `gorm:"size:64" json:"ip_address"`
	UserAgent    string         `gorm:"size:255" json:"user_agent"`
	Description  string         `gorm:"type:text" json:"description"`
	CreatedAt    time.Time      `gorm:"index" json:"created_at"`
}

// Actor identifies who performed a mutation and from where.
type Actor struct {
	Type      ActorType
	ID        *uint
	IPAddress string
	UserAgent string
}
