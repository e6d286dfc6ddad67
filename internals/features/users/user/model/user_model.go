package model

// UserModel merepresentasikan tabel users (akun generik dengan label role)
type UserModel struct {
	ID       uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	UserName string `gorm:"size:50;uniqueIndex;not null" json:"username"`
	Email    string `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Password string `gorm:"not null" json:"-"`
	Role     string `gorm:"type:varchar(20);not null;default:'user'" json:"role"`
}

func (UserModel) TableName() string {
	return "users"
}
