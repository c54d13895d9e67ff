package model

// BatchProduksi adalah satu production run, dibuat sekali per submit Logging.
// PenggunaanKerat true berarti kerat masih dipakai batch ini (belum masuk
// inkubasi). Maksimal satu batch aktif per kerat.
type BatchProduksi struct {
	BaseModel
	KeratID           string `gorm:"column:id_kerat;type:varchar(10);not null;index" json:"id_kerat"`
	PalletID          string `gorm:"column:id_pallet;type:varchar(20);not null;index" json:"id_pallet"`
	StatusSterilisasi int    `gorm:"column:status_sterilisasi;default:0" json:"status_sterilisasi"`
	PenggunaanKerat   bool   `gorm:"column:penggunaan_kerat;default:true" json:"penggunaan_kerat"`

	// Relasi
	Kerat  *Kerat   `gorm:"foreignKey:KeratID;references:ID" json:"kerat,omitempty"`
	Mixing []Mixing `gorm:"foreignKey:BatchProduksiID" json:"mixing,omitempty"`
}

func (BatchProduksi) TableName() string {
	return "batch_produksi"
}
