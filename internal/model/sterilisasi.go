package model

import "github.com/google/uuid"

// Sterilisasi dibuat satu row per batch di pallet yang masih
// status_sterilisasi=0; pembuatannya selalu berpasangan dengan update status
// batch ke 1.
type Sterilisasi struct {
	BaseModel
	OvenID          string    `gorm:"column:id_oven;type:varchar(20);not null" json:"id_oven"`
	BatchProduksiID uuid.UUID `gorm:"column:id_batch_produksi;type:uuid;not null;index" json:"id_batch_produksi"`
}

func (Sterilisasi) TableName() string {
	return "sterilisasi"
}
