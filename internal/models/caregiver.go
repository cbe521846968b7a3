package models

import (
	"errors"
	"time"
)

// Status verifikasi dokumen caregiver
const (
	VerificationPending  = "pending"
	VerificationApproved = "approved"
	VerificationRejected = "rejected"
)

// Caregiver adalah profil lengkap si pengasuh. Relasi 1:1 dengan User.
// serviceTypes, availability, dan certifications disimpan sebagai kolom JSON
// biar tidak perlu tabel pivot segala macam.
type Caregiver struct {
	ID             uint64             `gorm:"primaryKey" json:"id"`
	UserID         uint64             `gorm:"uniqueIndex;not null" json:"userId"`
	HourlyRate     float64            `gorm:"default:0" json:"hourlyRate"`
	ServiceTypes   []string           `gorm:"serializer:json" json:"serviceTypes"`
	Availability   []AvailabilitySlot `gorm:"serializer:json" json:"availability"`
	Rating         float64            `gorm:"default:0" json:"rating"`
	ReviewCount    int                `gorm:"default:0" json:"reviewCount"`
	Location       string             `gorm:"size:100" json:"location"`
	Bio            string             `gorm:"type:text" json:"bio"`
	ExperienceYrs  int                `json:"experience"`
	Certifications []string           `gorm:"serializer:json" json:"certifications"`

	// Data verifikasi identitas (diisi caregiver, diputuskan admin)
	IDType             string `gorm:"size:50" json:"idType"`
	IDNumber           string `gorm:"size:50" json:"idNumber"`
	VerificationStatus string `gorm:"size:20;default:pending" json:"verificationStatus"`
	IsVerified         bool   `gorm:"default:false" json:"isVerified"`

	// IsActive false = tidak muncul di pencarian (belum diverifikasi / disuspend admin)
	IsActive  bool      `gorm:"default:false" json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

// AvailabilitySlot satu jadwal mingguan: hari + jam mulai + jam selesai
type AvailabilitySlot struct {
	Day       string `json:"day"`
	StartTime string `json:"startTime"` // Format "HH:MM"
	EndTime   string `json:"endTime"`
}

// WeekdayNames urut dari Minggu, index-nya cocok dengan time.Weekday
var WeekdayNames = [7]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

var (
	ErrInvalidDay       = errors.New("nama hari tidak dikenal")
	ErrInvalidTimeRange = errors.New("jam selesai harus setelah jam mulai")
)

// Validate mengecek slot sebelum disimpan: hari harus salah satu dari 7 nama hari,
// dan jam selesai harus lebih besar dari jam mulai. Dulu tidak ada validasi di sini
// sehingga slot kebalik lolos, sekarang kita tolak di pintu masuk.
func (s AvailabilitySlot) Validate() error {
	valid := false
	for _, name := range WeekdayNames {
		if s.Day == name {
			valid = true
			break
		}
	}
	if !valid {
		return ErrInvalidDay
	}
	if s.EndTime <= s.StartTime {
		// Perbandingan string cukup karena format "HH:MM" zero-padded
		return ErrInvalidTimeRange
	}
	return nil
}

// Input update dari caregiver (semua field opsional, yang nil tidak disentuh)
type UpdateCaregiverInput struct {
	HourlyRate     *float64            `json:"hourlyRate" binding:"omitempty,gt=0"`
	ServiceTypes   *[]string           `json:"serviceTypes"`
	Availability   *[]AvailabilitySlot `json:"availability"`
	Location       *string             `json:"location"`
	Bio            *string             `json:"bio"`
	ExperienceYrs  *int                `json:"experience"`
	Certifications *[]string           `json:"certifications"`

	// Kalau ini diisi, berarti caregiver submit ulang verifikasi
	IDType   *string `json:"idType"`
	IDNumber *string `json:"idNumber"`
}
