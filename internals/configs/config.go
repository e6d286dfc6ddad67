package configs

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var (
	AdminEmail    string
	AdminPassword string
	UploadDir     string
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("⚠️ Tidak menemukan .env file, menggunakan ENV dari sistem")
		} else {
			log.Println("✅ .env file berhasil dimuat!")
		}
	} else {
		log.Println("🚀 Running in Railway, menggunakan ENV dari sistem")
	}

	AdminEmail = GetEnv("ADMIN_EMAIL", "admin@gmail.com")
	AdminPassword = GetEnv("ADMIN_PASSWORD", "12345678")
	UploadDir = GetEnv("UPLOAD_DIR", "images")

	if GetEnv("ADMIN_PASSWORD") == "" {
		log.Println("⚠️ ADMIN_PASSWORD belum diset, pakai default (jangan untuk produksi!)")
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}
