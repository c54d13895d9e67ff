package repository

import (
	"errors"

	"go-kerat-tracking/internal/model"

	"gorm.io/gorm"
)

// MasterRepository melayani master data yang dipakai form scan: pilihan
// pallet, oven, dan bahan baku (join supplier).
type MasterRepository interface {
	FindAllPallets() ([]model.Pallet, error)
	FindAllOvens() ([]model.Oven, error)
	FindAllBahanBaku() ([]model.BahanBaku, error)
	FindBahanBakuByNama(tx *gorm.DB, nama string) (*model.BahanBaku, error)
}

type masterRepo struct {
	db *gorm.DB
}

func NewMasterRepo(db *gorm.DB) MasterRepository {
	return &masterRepo{db}
}

func (r *masterRepo) FindAllPallets() ([]model.Pallet, error) {
	var pallets []model.Pallet
	err := r.db.Order("id_pallet ASC").Find(&pallets).Error
	return pallets, err
}

func (r *masterRepo) FindAllOvens() ([]model.Oven, error) {
	var ovens []model.Oven
	err := r.db.Order("id_oven ASC").Find(&ovens).Error
	return ovens, err
}

func (r *masterRepo) FindAllBahanBaku() ([]model.BahanBaku, error) {
	var list []model.BahanBaku
	err := r.db.Preload("Supplier").Order("id_bahan_baku ASC").Find(&list).Error
	return list, err
}

func (r *masterRepo) FindBahanBakuByNama(tx *gorm.DB, nama string) (*model.BahanBaku, error) {
	var bb model.BahanBaku
	err := tx.Where("nama_bahan_baku = ?", nama).First(&bb).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &bb, nil
}
