package repository

import (
	"go-kerat-tracking/internal/model"

	"gorm.io/gorm"
)

type KomposisiRepository interface {
	FindAllActive(tx *gorm.DB) ([]model.KomposisiMixing, error)
	FindIDsByAbbrev(tx *gorm.DB, abbrev string) ([]string, error)
	DeactivateByAbbrev(tx *gorm.DB, abbrev string) (int64, error)
	Create(tx *gorm.DB, komposisi *model.KomposisiMixing) error
}

type komposisiRepo struct {
	db *gorm.DB
}

func NewKomposisiRepo(db *gorm.DB) KomposisiRepository {
	return &komposisiRepo{db}
}

func (r *komposisiRepo) FindAllActive(tx *gorm.DB) ([]model.KomposisiMixing, error) {
	var list []model.KomposisiMixing
	err := tx.Where("komposisi_terbaru = ?", true).Find(&list).Error
	return list, err
}

// FindIDsByAbbrev mengambil semua ID komposisi satu family singkatan, snapshot
// untuk derivasi sequence berikutnya.
func (r *komposisiRepo) FindIDsByAbbrev(tx *gorm.DB, abbrev string) ([]string, error) {
	var ids []string
	err := tx.Model(&model.KomposisiMixing{}).
		Where("id_bahan_baku LIKE ?", abbrev+"%").
		Pluck("id_komposisi", &ids).Error
	return ids, err
}

// DeactivateByAbbrev mematikan komposisi terbaru untuk satu family bahan baku
// (match prefix singkatan, lintas supplier) sebelum penggantinya diinsert.
func (r *komposisiRepo) DeactivateByAbbrev(tx *gorm.DB, abbrev string) (int64, error) {
	res := tx.Model(&model.KomposisiMixing{}).
		Where("komposisi_terbaru = ? AND id_bahan_baku LIKE ?", true, abbrev+"%").
		Update("komposisi_terbaru", false)
	return res.RowsAffected, res.Error
}

func (r *komposisiRepo) Create(tx *gorm.DB, komposisi *model.KomposisiMixing) error {
	return tx.Create(komposisi).Error
}
