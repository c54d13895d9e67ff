package repository

import (
	"go-kerat-tracking/internal/model"

	"gorm.io/gorm"
)

type KumbungRepository interface {
	ExistsBySegmen(tx *gorm.DB, segmen string) (bool, error)
	Create(tx *gorm.DB, row *model.Kumbung) error
}

type kumbungRepo struct {
	db *gorm.DB
}

func NewKumbungRepo(db *gorm.DB) KumbungRepository {
	return &kumbungRepo{db}
}

// ExistsBySegmen: segmen kumbung sekali pakai, tidak ada konsep keluar.
func (r *kumbungRepo) ExistsBySegmen(tx *gorm.DB, segmen string) (bool, error) {
	var count int64
	err := tx.Model(&model.Kumbung{}).Where("id_segmen = ?", segmen).Count(&count).Error
	return count > 0, err
}

func (r *kumbungRepo) Create(tx *gorm.DB, row *model.Kumbung) error {
	return tx.Create(row).Error
}
