package model

// ReaderModel merepresentasikan tabel readers (identitas pembeli)
type ReaderModel struct {
	ID       string `gorm:"type:uuid;primaryKey" json:"id"`
	Name     string `gorm:"size:255;not null" json:"name"`
	Email    string `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Password string `gorm:"not null" json:"-"`
}

func (ReaderModel) TableName() string {
	return "readers"
}
