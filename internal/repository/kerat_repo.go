package repository

import (
	"errors"

	"go-kerat-tracking/internal/model"

	"gorm.io/gorm"
)

type KeratRepository interface {
	FindLatest(tx *gorm.DB) (*model.Kerat, error)
	FindAll() ([]model.Kerat, error)
	Create(tx *gorm.DB, kerat *model.Kerat) error
	SetPenggunaan(tx *gorm.DB, id string, inUse bool) error
}

type keratRepo struct {
	db *gorm.DB
}

func NewKeratRepo(db *gorm.DB) KeratRepository {
	return &keratRepo{db}
}

// FindLatest mengambil kerat dengan ID tertinggi (order string cukup karena
// formatnya zero-padded). Mengembalikan nil tanpa error kalau tabel kosong.
func (r *keratRepo) FindLatest(tx *gorm.DB) (*model.Kerat, error) {
	var kerat model.Kerat
	err := tx.Order("id_kerat DESC").First(&kerat).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &kerat, nil
}

func (r *keratRepo) FindAll() ([]model.Kerat, error) {
	var kerats []model.Kerat
	err := r.db.Order("id_kerat ASC").Find(&kerats).Error
	return kerats, err
}

func (r *keratRepo) Create(tx *gorm.DB, kerat *model.Kerat) error {
	return tx.Create(kerat).Error
}

// SetPenggunaan meng-update mirror flag di row kerat. Update 0 row bukan
// error: kerat yang di-scan tidak wajib pernah di-mint lewat service ini.
func (r *keratRepo) SetPenggunaan(tx *gorm.DB, id string, inUse bool) error {
	return tx.Model(&model.Kerat{}).
		Where("id_kerat = ?", id).
		Update("penggunaan", inUse).Error
}
