package model

type Pallet struct {
	ID string `gorm:"column:id_pallet;type:varchar(20);primaryKey" json:"id_pallet"`
}

func (Pallet) TableName() string {
	return "pallet"
}

type Oven struct {
	ID string `gorm:"column:id_oven;type:varchar(20);primaryKey" json:"id_oven"`
}

func (Oven) TableName() string {
	return "oven"
}
