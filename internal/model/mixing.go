package model

import "github.com/google/uuid"

// Mixing adalah join record batch <-> komposisi, dibuat saat Logging (satu
// row per komposisi terbaru saat itu). Immutable setelah dibuat.
type Mixing struct {
	BaseModel
	BatchProduksiID uuid.UUID `gorm:"column:id_batch_produksi;type:uuid;not null;uniqueIndex:idx_mixing_batch_komposisi" json:"id_batch_produksi"`
	KomposisiID     string    `gorm:"column:id_komposisi;type:varchar(30);not null;uniqueIndex:idx_mixing_batch_komposisi" json:"id_komposisi"`

	Komposisi *KomposisiMixing `gorm:"foreignKey:KomposisiID;references:ID" json:"komposisi,omitempty"`
}

func (Mixing) TableName() string {
	return "mixing"
}
