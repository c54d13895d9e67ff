package repository

import (
	"errors"
	"time"

	"go-kerat-tracking/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type InkubasiRepository interface {
	Create(tx *gorm.DB, row *model.Inkubasi) error
	FindOccupiedBySegmen(tx *gorm.DB, segmen string) (*model.Inkubasi, error)
	SetWaktuKeluar(tx *gorm.DB, id uuid.UUID, t time.Time) error
}

type inkubasiRepo struct {
	db *gorm.DB
}

func NewInkubasiRepo(db *gorm.DB) InkubasiRepository {
	return &inkubasiRepo{db}
}

func (r *inkubasiRepo) Create(tx *gorm.DB, row *model.Inkubasi) error {
	return tx.Create(row).Error
}

// FindOccupiedBySegmen mencari placement yang belum keluar di segmen itu.
// Partial unique index menjamin maksimal satu; nil tanpa error kalau kosong.
func (r *inkubasiRepo) FindOccupiedBySegmen(tx *gorm.DB, segmen string) (*model.Inkubasi, error) {
	var row model.Inkubasi
	err := tx.Where("id_segmen = ? AND waktu_keluar IS NULL", segmen).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *inkubasiRepo) SetWaktuKeluar(tx *gorm.DB, id uuid.UUID, t time.Time) error {
	return tx.Model(&model.Inkubasi{}).
		Where("id = ?", id).
		Update("waktu_keluar", t).Error
}
