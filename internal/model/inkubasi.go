package model

import (
	"time"

	"github.com/google/uuid"
)

// Inkubasi adalah placement batch di segmen rak inkubasi. WaktuKeluar nil
// berarti segmen masih terisi. Partial unique index menjaga maksimal satu
// placement aktif per segmen; segmen bisa dipakai lagi setelah keluar.
type Inkubasi struct {
	BaseModel
	BatchProduksiID uuid.UUID  `gorm:"column:id_batch_produksi;type:uuid;not null;index" json:"id_batch_produksi"`
	Segmen          string     `gorm:"column:id_segmen;type:varchar(20);not null;uniqueIndex:idx_inkubasi_segmen_aktif,where:waktu_keluar IS NULL" json:"id_segmen"`
	WaktuKeluar     *time.Time `gorm:"column:waktu_keluar" json:"waktu_keluar"`
}

func (Inkubasi) TableName() string {
	return "inkubasi"
}
