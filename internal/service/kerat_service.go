package service

import (
	"fmt"

	"go-kerat-tracking/internal/apperr"
	"go-kerat-tracking/internal/identifier"
	"go-kerat-tracking/internal/model"
	"go-kerat-tracking/internal/repository"

	"gorm.io/gorm"
)

// KeratService mencetak token kerat baru (alur halaman Generate: ID terakhir
// -> ID berikutnya -> insert; QR rendering urusan presentasi).
type KeratService interface {
	Generate() (*model.Kerat, error)
	GenerateN(n int) ([]model.Kerat, error)
	GetLatest() (*model.Kerat, error)
	GetAll() ([]model.Kerat, error)
}

type keratService struct {
	db        *gorm.DB
	keratRepo repository.KeratRepository
}

func NewKeratService(db *gorm.DB, keratRepo repository.KeratRepository) KeratService {
	return &keratService{db: db, keratRepo: keratRepo}
}

func (s *keratService) Generate() (*model.Kerat, error) {
	var kerat model.Kerat
	err := s.db.Transaction(func(tx *gorm.DB) error {
		// 1. ID tertinggi yang sudah ada
		latest, err := s.keratRepo.FindLatest(tx)
		if err != nil {
			return apperr.Store(err)
		}
		latestID := ""
		if latest != nil {
			latestID = latest.ID
		}

		// 2. ID berikutnya; state terakhir yang tidak terparse fatal
		next, err := identifier.NextKeratID(latestID)
		if err != nil {
			return apperr.Store(err)
		}

		// 3. Insert row baru
		kerat = model.Kerat{ID: next}
		if err := s.keratRepo.Create(tx, &kerat); err != nil {
			if apperr.IsUniqueViolation(err) {
				return fmt.Errorf("%w: kerat %s already minted", apperr.ErrConflict, next)
			}
			return apperr.Store(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &kerat, nil
}

func (s *keratService) GenerateN(n int) ([]model.Kerat, error) {
	if n <= 0 {
		return nil, apperr.Validationf("count must be positive, got %d", n)
	}
	kerats := make([]model.Kerat, 0, n)
	for i := 0; i < n; i++ {
		kerat, err := s.Generate()
		if err != nil {
			return kerats, err
		}
		kerats = append(kerats, *kerat)
	}
	return kerats, nil
}

func (s *keratService) GetLatest() (*model.Kerat, error) {
	kerat, err := s.keratRepo.FindLatest(s.db)
	if err != nil {
		return nil, apperr.Store(err)
	}
	if kerat == nil {
		return nil, fmt.Errorf("%w: no kerat minted yet", apperr.ErrNotFound)
	}
	return kerat, nil
}

func (s *keratService) GetAll() ([]model.Kerat, error) {
	return s.keratRepo.FindAll()
}
