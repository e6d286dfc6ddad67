package model

// BookModel merepresentasikan tabel books.
// Kolom author hanya nama bebas, bukan foreign key ke authors.
type BookModel struct {
	ID              uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Title           string  `gorm:"size:255;not null" json:"title"`
	Author          string  `gorm:"size:255" json:"author"`
	Price           float64 `json:"price"`
	Description     string  `json:"description"`
	PictureFilename string  `gorm:"size:255" json:"picture_filename"`
}

func (BookModel) TableName() string {
	return "books"
}
