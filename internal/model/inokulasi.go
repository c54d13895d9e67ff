package model

import (
	"time"

	"github.com/google/uuid"
)

// Inokulasi mencatat pembuatan baglog untuk batch yang keratnya masih aktif.
type Inokulasi struct {
	BaseModel
	BatchProduksiID     uuid.UUID `gorm:"column:id_batch_produksi;type:uuid;not null;index" json:"id_batch_produksi"`
	TanggalBuatInokulan time.Time `gorm:"column:tanggal_buat_inokulan;not null" json:"tanggal_buat_inokulan"`
	UsiaBibit           time.Time `gorm:"column:usia_bibit" json:"usia_bibit"`
	JumlahBaglog        int       `gorm:"column:jumlah_baglog;not null" json:"jumlah_baglog"`
}

func (Inokulasi) TableName() string {
	return "inokulasi"
}
