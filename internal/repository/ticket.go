package repository

import (
	"github.com/linskybing/herbtrace/internal/domain/ticket"
	"gorm.io/gorm"
)

type TicketRepo interface {
	CreateTicket(t *ticket.LabTicket) error
	GetTicketByTicketID(ticketID string) (ticket.LabTicket, error)
	ListTicketsByStatus(status ticket.Status) ([]ticket.LabTicket, error)
	ListTicketsAwaitingFinalization() ([]ticket.LabTicket, error)
	ListTicketsByHerbIDs(herbIDs []uint) ([]ticket.LabTicket, error)
	SaveTicket(t *ticket.LabTicket) error
	WithTx(tx *gorm.DB) TicketRepo
}

type DBTicketRepo struct {
	db *gorm.DB
}

func NewTicketRepo(db *gorm.DB) *DBTicketRepo {
	return &DBTicketRepo{
		db: db,
	}
}

func (r *DBTicketRepo) CreateTicket(t *ticket.LabTicket) error {
	return r.db.Create(t).Error
}

func (r *DBTicketRepo) GetTicketByTicketID(ticketID string) (ticket.LabTicket, error) {
	var t ticket.LabTicket
	if err := r.db.Where("ticket_id = ?", ticketID).First(&t).Error; err != nil {
		return t, err
	}
	return t, nil
}

func (r *DBTicketRepo) ListTicketsByStatus(status ticket.Status) ([]ticket.LabTicket, error) {
	var tickets []ticket.LabTicket
	err := r.db.Where("status = ?", status).Order("created_at asc").Find(&tickets).Error
	return tickets, err
}

func (r *DBTicketRepo) ListTicketsAwaitingFinalization() ([]ticket.LabTicket, error) {
	var tickets []ticket.LabTicket
	err := r.db.
		Where("status = ? AND manufacturer_finalized = ?", ticket.StatusReviewed, false).
		Order("reviewed_at asc").
		Find(&tickets).Error
	return tickets, err
}

func (r *DBTicketRepo) ListTicketsByHerbIDs(herbIDs []uint) ([]ticket.LabTicket, error) {
	var tickets []ticket.LabTicket
	if len(herbIDs) == 0 {
		return tickets, nil
	}
	err := r.db.Where("herb_id IN ?", herbIDs).Find(&tickets).Error
	return tickets, err
}

// SaveTicket writes every column; concurrent writers race and the last one wins.
func (r *DBTicketRepo) SaveTicket(t *ticket.LabTicket) error {
	return r.db.Save(t).Error
}

func (r *DBTicketRepo) WithTx(tx *gorm.DB) TicketRepo {
	if tx == nil {
		return r
	}
	return &DBTicketRepo{
		db: tx,
	}
}
