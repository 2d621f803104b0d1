package ticket

import (
	"github.com/linskybing/herbtrace/internal/domain/farmer"
	"github.com/linskybing/herbtrace/internal/domain/herb"
)

type LabReportInput struct {
	Findings     []string `form:"lab_report[]"`
	LabName      string   `form:"lab_name" binding:"required"`
	LabLocation  string   `form:"lab_location" binding:"required"`
	LabLatitude  string   `form:"lab_latitude"`
	LabLongitude string   `form:"lab_longitude"`
}

type FinalizeInput struct {
	ManufacturerReport      string `form:"manufacturer_report"`
	FinalProductData        string `form:"final_product_data"`
	RawMaterialVerification string `form:"raw_material_verification"`
	ProcessingMethod        string `form:"processing_method"`
	QualityChecks           string `form:"quality_checks"`
	PackagingDetails        string `form:"packaging_details"`
	StorageConditions       string `form:"storage_conditions"`
	BatchNumber             string `form:"batch_number"`
	CertificationInfo       string `form:"certification_info"`
	ManufacturerNotes       string `form:"manufacturer_notes"`
}

// QRPayload is the public subset of a finalized ticket encoded into the QR
// image. Field names are part of the external contract.
type QRPayload struct {
	TicketID                     string `json:"ticket_id"`
	FarmerName                   string `json:"farmer_name"`
	FarmerPhone                  string `json:"farmer_phone"`
	FarmLocationMapLink          string `json:"farm_location_map_link"`
	LabName                      string `json:"lab_name"`
	LabLocation                  string `json:"lab_location"`
	LabMapLink                   string `json:"lab_map_link"`
	ManufacturerProcessingMethod string `json:"manufacturer_processing_method"`
	ManufacturerQualityChecks    string `json:"manufacturer_quality_checks"`
}

// Detail is a ticket with its owning herb and farmer resolved.
type Detail struct {
	Ticket      LabTicket     `json:"ticket"`
	Herb        herb.Herb     `json:"herb"`
	Farmer      farmer.Farmer `json:"farmer"`
	HerbMapLink string        `json:"herb_map_link"`
}

// HerbEntry is one row of the farmer dashboard.
type HerbEntry struct {
	Herb         herb.Herb  `json:"herb"`
	Ticket       *LabTicket `json:"ticket"`
	FarmerReport []string   `json:"farmer_report"`
}

type ScanView struct {
	Ticket     LabTicket `json:"ticket"`
	Payload    QRPayload `json:"payload"`
	HasPayload bool      `json:"has_payload"`
}
