package model

type Supplier struct {
	ID   string `gorm:"column:id_supplier;type:varchar(20);primaryKey" json:"id_supplier"`
	Nama string `gorm:"column:nama_supplier;type:varchar(100);not null" json:"nama_supplier"`
}

func (Supplier) TableName() string {
	return "supplier"
}

// BahanBaku master data. ID format: {ABBREV}-{id_supplier}, misal SBK-S01.
type BahanBaku struct {
	ID         string    `gorm:"column:id_bahan_baku;type:varchar(30);primaryKey" json:"id_bahan_baku"`
	Nama       string    `gorm:"column:nama_bahan_baku;type:varchar(100);not null;index" json:"nama_bahan_baku"`
	SupplierID string    `gorm:"column:id_supplier;type:varchar(20);not null" json:"id_supplier"`
	Supplier   *Supplier `gorm:"foreignKey:SupplierID;references:ID" json:"supplier,omitempty"`
}

func (BahanBaku) TableName() string {
	return "bahan_baku"
}
