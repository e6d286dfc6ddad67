package model

import "gorm.io/datatypes"

// BuyRequestModel merepresentasikan tabel buy_requests.
// book_id_list dan reader_id disimpan apa adanya, tanpa cek
// referensial ke books/readers; baris bersifat append-only.
type BuyRequestModel struct {
	ID         uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	BookIDList datatypes.JSON `gorm:"type:json" json:"book_id_list"`
	ReaderID   string         `gorm:"size:64" json:"reader_id"`
}

func (BuyRequestModel) TableName() string {
	return "buy_requests"
}
