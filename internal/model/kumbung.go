package model

import "github.com/google/uuid"

// Kumbung adalah penempatan akhir di rumah tumbuh. Tidak ada konsep keluar:
// segmen kumbung sekali pakai, dijaga unique index penuh di id_segmen.
type Kumbung struct {
	BaseModel
	Segmen          string    `gorm:"column:id_segmen;type:varchar(20);not null;uniqueIndex" json:"id_segmen"`
	BatchTransferID uuid.UUID `gorm:"column:id_batch_transfer;type:uuid;not null" json:"id_batch_transfer"`
}

func (Kumbung) TableName() string {
	return "kumbung"
}
