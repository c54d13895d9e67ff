package model

import "github.com/google/uuid"

// BatchTransfer adalah record hand-off saat batch keluar inkubasi, sebelum
// penempatan kumbung. PenggunaanKerat true berarti kerat transfer masih
// dipakai; maksimal satu transfer aktif per kerat.
type BatchTransfer struct {
	BaseModel
	KeratID         string    `gorm:"column:id_kerat;type:varchar(10);not null;index" json:"id_kerat"`
	InkubasiID      uuid.UUID `gorm:"column:id_inkubasi;type:uuid;not null" json:"id_inkubasi"`
	BatchProduksiID uuid.UUID `gorm:"column:id_batch_produksi;type:uuid;not null" json:"id_batch_produksi"`
	JumlahBaglog    int       `gorm:"column:jumlah_baglog" json:"jumlah_baglog"`
	PenggunaanKerat bool      `gorm:"column:penggunaan_kerat;default:true" json:"penggunaan_kerat"`
}

func (BatchTransfer) TableName() string {
	return "batch_transfer"
}
