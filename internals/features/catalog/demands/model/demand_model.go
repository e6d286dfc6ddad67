package model

// DemandModel merepresentasikan tabel demands (usulan buku baru).
// Baris hanya hidup sampai disetujui atau ditolak.
type DemandModel struct {
	ID          uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Title       string  `gorm:"size:255;not null" json:"title"`
	Author      string  `gorm:"size:255" json:"author"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	PictureURL  string  `gorm:"size:255" json:"picture_url"`
}

func (DemandModel) TableName() string {
	return "demands"
}
