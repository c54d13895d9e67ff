package repository

import (
	"errors"

	"go-kerat-tracking/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BatchRepository interface {
	Create(tx *gorm.DB, batch *model.BatchProduksi) error
	CreateMixingLinks(tx *gorm.DB, links []model.Mixing) error
	FindActiveByKerat(tx *gorm.DB, idKerat string) (*model.BatchProduksi, error)
	FindUnsterilizedByPallet(tx *gorm.DB, idPallet string) ([]model.BatchProduksi, error)
	MarkSterilized(tx *gorm.DB, ids []uuid.UUID) error
	SetPenggunaanKerat(tx *gorm.DB, id uuid.UUID, inUse bool) error
	FindByID(id uuid.UUID) (*model.BatchProduksi, error)
}

type batchRepo struct {
	db *gorm.DB
}

func NewBatchRepo(db *gorm.DB) BatchRepository {
	return &batchRepo{db}
}

func (r *batchRepo) Create(tx *gorm.DB, batch *model.BatchProduksi) error {
	return tx.Create(batch).Error
}

func (r *batchRepo) CreateMixingLinks(tx *gorm.DB, links []model.Mixing) error {
	return tx.Create(&links).Error
}

// FindActiveByKerat mencari batch yang keratnya masih dipakai. Maksimal satu
// yang diharapkan; nil tanpa error kalau tidak ada.
func (r *batchRepo) FindActiveByKerat(tx *gorm.DB, idKerat string) (*model.BatchProduksi, error) {
	var batch model.BatchProduksi
	err := tx.Where("id_kerat = ? AND penggunaan_kerat = ?", idKerat, true).First(&batch).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &batch, nil
}

func (r *batchRepo) FindUnsterilizedByPallet(tx *gorm.DB, idPallet string) ([]model.BatchProduksi, error) {
	var batches []model.BatchProduksi
	err := tx.Where("id_pallet = ? AND status_sterilisasi = ?", idPallet, 0).Find(&batches).Error
	return batches, err
}

// MarkSterilized bulk-update status_sterilisasi=1, selalu berpasangan dengan
// insert row Sterilisasi di transaksi yang sama.
func (r *batchRepo) MarkSterilized(tx *gorm.DB, ids []uuid.UUID) error {
	return tx.Model(&model.BatchProduksi{}).
		Where("id IN ?", ids).
		Update("status_sterilisasi", 1).Error
}

func (r *batchRepo) SetPenggunaanKerat(tx *gorm.DB, id uuid.UUID, inUse bool) error {
	return tx.Model(&model.BatchProduksi{}).
		Where("id = ?", id).
		Update("penggunaan_kerat", inUse).Error
}

func (r *batchRepo) FindByID(id uuid.UUID) (*model.BatchProduksi, error) {
	var batch model.BatchProduksi
	err := r.db.Preload("Kerat").Preload("Mixing").Preload("Mixing.Komposisi").First(&batch, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &batch, nil
}
