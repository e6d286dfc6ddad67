package model

// AuthorModel merepresentasikan tabel authors (identitas penjual,
// terpisah total dari readers)
type AuthorModel struct {
	ID       string `gorm:"type:uuid;primaryKey" json:"id"`
	Name     string `gorm:"size:255;not null" json:"name"`
	Email    string `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Password string `gorm:"not null" json:"-"`
}

func (AuthorModel) TableName() string {
	return "authors"
}
