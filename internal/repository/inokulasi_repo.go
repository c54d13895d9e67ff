package repository

import (
	"go-kerat-tracking/internal/model"

	"gorm.io/gorm"
)

type InokulasiRepository interface {
	Create(tx *gorm.DB, row *model.Inokulasi) error
}

type inokulasiRepo struct {
	db *gorm.DB
}

func NewInokulasiRepo(db *gorm.DB) InokulasiRepository {
	return &inokulasiRepo{db}
}

func (r *inokulasiRepo) Create(tx *gorm.DB, row *model.Inokulasi) error {
	return tx.Create(row).Error
}
