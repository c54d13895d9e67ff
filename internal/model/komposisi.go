package model

import "time"

// KomposisiMixing adalah snapshot komposisi bahan baku yang diversioning
// lewat flag komposisi_terbaru. Invariant: maksimal satu komposisi terbaru
// per family bahan baku (prefix abbreviation) setelah setiap submit Mixing.
type KomposisiMixing struct {
	ID               string    `gorm:"column:id_komposisi;type:varchar(30);primaryKey" json:"id_komposisi"`
	BahanBakuID      string    `gorm:"column:id_bahan_baku;type:varchar(30);not null;index" json:"id_bahan_baku"`
	JumlahDigunakan  int       `gorm:"column:jumlah_digunakan;not null" json:"jumlah_digunakan"`
	KomposisiTerbaru bool      `gorm:"column:komposisi_terbaru;default:false;index" json:"komposisi_terbaru"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func (KomposisiMixing) TableName() string {
	return "komposisi_mixing"
}
