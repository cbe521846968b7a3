package config

import (
	"fmt"
	"log"
	"os"

	"careconnect-backend/internal/models"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// DB global, dipakai langsung dari handler
var DB *gorm.DB

// ConnectDB membuka koneksi MySQL dan migrasi tabel
func ConnectDB() {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		getEnv("DB_USER", "root"),
		os.Getenv("DB_PASSWORD"),
		getEnv("DB_HOST", "127.0.0.1"),
		getEnv("DB_PORT", "3306"),
		getEnv("DB_NAME", "careconnect"),
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Gagal konek database: ", err)
	}

	DB = db
	log.Println("Database connected!")

	if err := Migrate(db); err != nil {
		log.Fatal("Gagal migrasi database: ", err)
	}
}

// Migrate dipisah biar bisa dipakai juga di test (pakai SQLite in-memory)
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Caregiver{},
		&models.CareRecipient{},
		&models.Booking{},
		&models.Complaint{},
		&models.Wallet{},
		&models.WalletTransaction{},
	)
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
