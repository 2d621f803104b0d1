package ticket

import (
	"time"

	"gorm.io/datatypes"
)

type Status string

const (
	StatusPendingReview Status = "Pending Review"
	StatusReviewed      Status = "Reviewed"
)

// LabTicket is the per-batch workflow record. Farmer, lab and manufacturer
// stages each fill their own columns; HerbID and FarmerID never change after
// creation.
type LabTicket struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	TicketID string `gorm:"size:50;not null;uniqueIndex" json:"ticket_id"`
	HerbID   uint   `gorm:"not null;uniqueIndex" json:"herb_id"`
	FarmerID uint   `gorm:"not null;index" json:"farmer_id"`
	Status   Status `gorm:"size:50;not null;index;default:'Pending Review'" json:"status"`
	MapLink  string `gorm:"size:300" json:"map_link"`

	LabName      string                      `gorm:"size:100" json:"lab_name"`
	LabLocation  string                      `gorm:"size:200" json:"lab_location"`
	LabMapLink   string                      `gorm:"size:300" json:"lab_map_link"`
	LabReport    datatypes.JSONSlice[string] `json:"lab_report"`
	FarmerReport datatypes.JSONSlice[string] `json:"farmer_report"`
	ReviewedAt   *time.Time                  `json:"reviewed_at"`

	ManufacturerReport      string     `gorm:"type:text" json:"manufacturer_report"`
	FinalProductData        string     `gorm:"type:text" json:"final_product_data"`
	RawMaterialVerification string     `gorm:"type:text" json:"raw_material_verification"`
	ProcessingMethod        string     `gorm:"type:text" json:"processing_method"`
	QualityChecks           string     `gorm:"type:text" json:"quality_checks"`
	PackagingDetails        string     `gorm:"type:text" json:"packaging_details"`
	StorageConditions       string     `gorm:"type:text" json:"storage_conditions"`
	BatchNumber             string     `gorm:"size:100" json:"batch_number"`
	CertificationInfo       string     `gorm:"type:text" json:"certification_info"`
	ManufacturerNotes       string     `gorm:"type:text" json:"manufacturer_notes"`
	ManufacturerFinalized   bool       `gorm:"not null;default:false;index" json:"manufacturer_finalized"`
	FinalizedAt             *time.Time `json:"finalized_at"`
	QRPayload               string     `gorm:"type:text" json:"qr_payload"`
	QRCodeData              string     `gorm:"type:text" json:"qr_code_data"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// HasFarmerReport is true once the lab has reviewed the ticket.
func (t LabTicket) HasFarmerReport() bool {
	return t.ReviewedAt != nil && t.FarmerReport != nil
}
