package repository

import (
	"github.com/linskybing/herbtrace/internal/domain/herb"
	"gorm.io/gorm"
)

type HerbRepo interface {
	CreateHerb(h *herb.Herb) error
	GetHerbByID(id uint) (herb.Herb, error)
	ListHerbsByFarmerID(farmerID uint) ([]herb.Herb, error)
	WithTx(tx *gorm.DB) HerbRepo
}

type DBHerbRepo struct {
	db *gorm.DB
}

func NewHerbRepo(db *gorm.DB) *DBHerbRepo {
	return &DBHerbRepo{
		db: db,
	}
}

func (r *DBHerbRepo) CreateHerb(h *herb.Herb) error {
	return r.db.Create(h).Error
}

func (r *DBHerbRepo) GetHerbByID(id uint) (herb.Herb, error) {
	var h herb.Herb
	if err := r.db.First(&h, id).Error; err != nil {
		return h, err
	}
	return h, nil
}

func (r *DBHerbRepo) ListHerbsByFarmerID(farmerID uint) ([]herb.Herb, error) {
	var herbs []herb.Herb
	err := r.db.Where("farmer_id = ?", farmerID).Order("id asc").Find(&herbs).Error
	return herbs, err
}

func (r *DBHerbRepo) WithTx(tx *gorm.DB) HerbRepo {
	if tx == nil {
		return r
	}
	return &DBHerbRepo{
		db: tx,
	}
}
