package repository

import (
	"errors"

	"go-kerat-tracking/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TransferRepository interface {
	Create(tx *gorm.DB, row *model.BatchTransfer) error
	FindActiveByKerat(tx *gorm.DB, idKerat string) (*model.BatchTransfer, error)
	SetPenggunaanKerat(tx *gorm.DB, id uuid.UUID, inUse bool) error
}

type transferRepo struct {
	db *gorm.DB
}

func NewTransferRepo(db *gorm.DB) TransferRepository {
	return &transferRepo{db}
}

func (r *transferRepo) Create(tx *gorm.DB, row *model.BatchTransfer) error {
	return tx.Create(row).Error
}

func (r *transferRepo) FindActiveByKerat(tx *gorm.DB, idKerat string) (*model.BatchTransfer, error) {
	var row model.BatchTransfer
	err := tx.Where("id_kerat = ? AND penggunaan_kerat = ?", idKerat, true).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *transferRepo) SetPenggunaanKerat(tx *gorm.DB, id uuid.UUID, inUse bool) error {
	return tx.Model(&model.BatchTransfer{}).
		Where("id = ?", id).
		Update("penggunaan_kerat", inUse).Error
}
