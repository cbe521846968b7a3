package models

import (
	"time"

	"gorm.io/gorm"
)

// Role adalah himpunan tertutup peran user.
// Jangan pakai string bebas, cukup 3 ini saja biar tidak ada typo nyasar ke DB.
type Role string

const (
	RoleClient    Role = "client"
	RoleCaregiver Role = "caregiver"
	RoleAdmin     Role = "admin"
)

// User merepresentasikan tabel 'users' di database
type User struct {
	ID           uint64         `gorm:"primaryKey" json:"id"`
	Role         Role           `gorm:"size:20;not null" json:"role"`
	Name         string         `gorm:"size:100;not null" json:"name"`
	Email        string         `gorm:"uniqueIndex;size:100;not null" json:"email"`
	PasswordHash string         `gorm:"not null" json:"-"` // json:"-" artinya TIDAK dikirim balik ke frontend (rahasia)
	Phone        string         `gorm:"size:20" json:"phone"`
	Address      string         `gorm:"size:200" json:"address"`
	FCMToken     string         `gorm:"size:255" json:"-"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

// Struct untuk menangkap Input Register dari user.
// Admin tidak boleh daftar lewat endpoint publik, jadi oneof cuma client & caregiver.
type RegisterInput struct {
	Name     string `json:"name" binding:"required,min=2,max=50"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Role     Role   `json:"role" binding:"required,oneof=client caregiver"`
	Phone    string `json:"phone" binding:"required"`
}

// Struct untuk menangkap Input Login
type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	FCMToken string `json:"fcmToken"` // Opsional, buat push notification
}

// Input update profil user (nama & telepon saja, email tidak bisa diganti)
type UpdateUserInput struct {
	Name    string `json:"name" binding:"omitempty,min=2,max=50"`
	Phone   string `json:"phone"`
	Address string `json:"address" binding:"omitempty,max=200"`
}
