package model

import "time"

// Kerat adalah token fisik (keranjang) dengan kode scan format K###.
// Penggunaan di-mirror dari BatchProduksi/BatchTransfer yang sedang aktif:
// true sejak Logging sampai Inkubasi Masuk, lalu true lagi dari Inkubasi
// Keluar sampai Kumbung.
type Kerat struct {
	ID         string    `gorm:"column:id_kerat;type:varchar(10);primaryKey" json:"id_kerat"`
	Penggunaan bool      `gorm:"column:penggunaan;default:false" json:"penggunaan"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (Kerat) TableName() string {
	return "kerat"
}
