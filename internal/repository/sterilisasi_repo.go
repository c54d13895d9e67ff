package repository

import (
	"go-kerat-tracking/internal/model"

	"gorm.io/gorm"
)

type SterilisasiRepository interface {
	CreateBatch(tx *gorm.DB, rows []model.Sterilisasi) error
}

type sterilisasiRepo struct {
	db *gorm.DB
}

func NewSterilisasiRepo(db *gorm.DB) SterilisasiRepository {
	return &sterilisasiRepo{db}
}

func (r *sterilisasiRepo) CreateBatch(tx *gorm.DB, rows []model.Sterilisasi) error {
	return tx.Create(&rows).Error
}
