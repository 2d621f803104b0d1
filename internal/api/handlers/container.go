package handlers

import (
	"github.com/linskybing/herbtrace/internal/application"
	"gorm.io/gorm"
)

type Handlers struct {
	Farmer       *FarmerHandler
	Dashboard    *DashboardHandler
	Lab          *LabHandler
	Manufacturer *ManufacturerHandler
	Scan         *ScanHandler
	Health       *HealthHandler
}

func New(svc *application.Services, db *gorm.DB) *Handlers {
	return &Handlers{
		Farmer:       NewFarmerHandler(svc.Farmer),
		Dashboard:    NewDashboardHandler(svc.Farmer, svc.Intake, svc.Provenance),
		Lab:          NewLabHandler(svc.Lab),
		Manufacturer: NewManufacturerHandler(svc.Manufacturer),
		Scan:         NewScanHandler(svc.Provenance),
		Health:       NewHealthHandler(db),
	}
}
