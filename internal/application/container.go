package application

import (
	"github.com/linskybing/herbtrace/internal/repository"
	"github.com/linskybing/herbtrace/pkg/storage"
)

type Services struct {
	Audit        *AuditService
	Farmer       *FarmerService
	Intake       *IntakeService
	Lab          *LabService
	Manufacturer *ManufacturerService
	Provenance   *ProvenanceService
}

// New wires every service. store may be nil when archiving is disabled.
func New(repos *repository.Repos, store storage.ObjectStore) *Services {
	return &Services{
		Audit:        NewAuditService(repos),
		Farmer:       NewFarmerService(repos),
		Intake:       NewIntakeService(repos),
		Lab:          NewLabService(repos),
		Manufacturer: NewManufacturerService(repos, store),
		Provenance:   NewProvenanceService(repos, store),
	}
}
