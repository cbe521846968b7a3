package models

import "time"

// CareRecipient adalah orang yang dirawat (bisa orang tua, anak, dll).
// Client boleh punya banyak, dan booking boleh nunjuk salah satunya.
type CareRecipient struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	ClientID  uint64    `gorm:"not null" json:"clientId"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	DOB       string    `gorm:"type:date" json:"dob"` // Format YYYY-MM-DD
	Gender    string    `gorm:"size:10" json:"gender"`
	CareNotes string    `gorm:"type:text" json:"careNotes"` // Kondisi/kebutuhan khusus
	Address   string    `gorm:"size:200" json:"address"`
	CreatedAt time.Time `json:"createdAt"`
}

type CreateRecipientInput struct {
	Name      string `json:"name" binding:"required,min=2,max=100"`
	DOB       string `json:"dob" binding:"required"`
	Gender    string `json:"gender" binding:"required,oneof=male female"`
	CareNotes string `json:"careNotes"`
	Address   string `json:"address" binding:"omitempty,max=200"`
}
