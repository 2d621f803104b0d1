package repository

import (
	"gorm.io/gorm"
)

type Repos struct {
	Farmer FarmerRepo
	Herb   HerbRepo
	Ticket TicketRepo
	Audit  AuditRepo

	db *gorm.DB
}

func NewRepositories(db *gorm.DB) *Repos {
	return &Repos{
		Farmer: NewFarmerRepo(db),
		Herb:   NewHerbRepo(db),
		Ticket: NewTicketRepo(db),
		Audit:  NewAuditRepo(db),
		db:     db,
	}
}

func (r *Repos) WithTx(tx *gorm.DB) *Repos {
	return &Repos{
		Farmer: r.Farmer.WithTx(tx),
		Herb:   r.Herb.WithTx(tx),
		Ticket: r.Ticket.WithTx(tx),
		Audit:  r.Audit.WithTx(tx),
		db:     tx,
	}
}

// ExecTx runs fn inside one database transaction. Repos assembled by hand
// (as in service tests) have no connection and run fn directly.
func (r *Repos) ExecTx(fn func(*Repos) error) error {
	if r.db == nil {
		return fn(r)
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		txRepos := r.WithTx(tx)
		return fn(txRepos)
	})
}
