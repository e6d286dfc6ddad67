package helpers

import "golang.org/x/crypto/bcrypt"

// HashPassword membuat bcrypt hash; semua jenis identitas memakai ini
// (tidak ada lagi password plaintext di tabel mana pun).
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func CheckPasswordHash(hashed, plain string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain))
}
