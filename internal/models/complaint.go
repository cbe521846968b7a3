package models

import "time"

// Status komplain. resolved & closed itu status terminal.
const (
	ComplaintOpen       = "open"
	ComplaintInProgress = "in_progress"
	ComplaintResolved   = "resolved"
	ComplaintClosed     = "closed"
)

type Complaint struct {
	ID          uint64  `gorm:"primaryKey" json:"id"`
	ClientID    uint64  `gorm:"not null" json:"clientId"`
	CaregiverID *uint64 `json:"caregiverId"` // Opsional, komplain bisa soal sistem
	BookingID   *uint64 `json:"bookingId"`

	Title       string `gorm:"size:200;not null" json:"title"`
	Description string `gorm:"type:text;not null" json:"description"`
	Category    string `gorm:"size:50" json:"category"` // service_quality, behavior, payment, cancellation, other
	Severity    string `gorm:"size:20" json:"severity"` // low, medium, high, critical

	Status      string `gorm:"size:20;default:open" json:"status"`
	AdminNotes  string `gorm:"type:text" json:"adminNotes"`
	AdminAction string `gorm:"size:50;default:none" json:"adminAction"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Client    *User      `gorm:"foreignKey:ClientID" json:"client,omitempty"`
	Caregiver *Caregiver `gorm:"foreignKey:CaregiverID" json:"caregiver,omitempty"`
}

type CreateComplaintInput struct {
	Title       string  `json:"title" binding:"required,max=200"`
	Description string  `json:"description" binding:"required"`
	Category    string  `json:"category" binding:"required,oneof=service_quality behavior payment cancellation other"`
	Severity    string  `json:"severity" binding:"required,oneof=low medium high critical"`
	CaregiverID *uint64 `json:"caregiverId"`
	BookingID   *uint64 `json:"bookingId"`
}

// Input update dari admin (client tidak boleh pegang field ini)
type UpdateComplaintInput struct {
	Status      string `json:"status" binding:"required,oneof=open in_progress resolved closed"`
	AdminNotes  string `json:"adminNotes"`
	AdminAction string `json:"adminAction" binding:"required,oneof=none refund suspend_caregiver warning investigation other"`
}

// Ringkasan buat dashboard admin
type ComplaintStats struct {
	TotalComplaints      int64 `json:"totalComplaints"`
	OpenComplaints       int64 `json:"openComplaints"`
	InProgressComplaints int64 `json:"inProgressComplaints"`
	ResolvedComplaints   int64 `json:"resolvedComplaints"`
}
