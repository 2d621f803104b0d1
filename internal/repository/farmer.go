package repository

import (
	"github.com/linskybing/herbtrace/internal/domain/farmer"
	"gorm.io/gorm"
)

type FarmerRepo interface {
	GetFarmerByPhone(phone string) (farmer.Farmer, error)
	GetFarmerByID(id uint) (farmer.Farmer, error)
	CreateFarmer(f *farmer.Farmer) error
	WithTx(tx *gorm.DB) FarmerRepo
}

type DBFarmerRepo struct {
	db *gorm.DB
}

func NewFarmerRepo(db *gorm.DB) *DBFarmerRepo {
	return &DBFarmerRepo{
		db: db,
	}
}

func (r *DBFarmerRepo) GetFarmerByPhone(phone string) (farmer.Farmer, error) {
	var f farmer.Farmer
	if err := r.db.Where("phone = ?", phone).First(&f).Error; err != nil {
		return f, err
	}
	return f, nil
}

func (r *DBFarmerRepo) GetFarmerByID(id uint) (farmer.Farmer, error) {
	var f farmer.Farmer
	if err := r.db.First(&f, id).Error; err != nil {
		return f, err
	}
	return f, nil
}

func (r *DBFarmerRepo) CreateFarmer(f *farmer.Farmer) error {
	return r.db.Create(f).Error
}

func (r *DBFarmerRepo) WithTx(tx *gorm.DB) FarmerRepo {
	if tx == nil {
		return r
	}
	return &DBFarmerRepo{
		db: tx,
	}
}
