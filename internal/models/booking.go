package models

import "time"

// Status booking (siklus hidup pesanan)
const (
	BookingPending    = "pending"
	BookingConfirmed  = "confirmed"
	BookingInProgress = "in-progress"
	BookingCompleted  = "completed"
	BookingCancelled  = "cancelled"
)

// Status pembayaran
const (
	PaymentUnpaid  = "unpaid"
	PaymentPending = "pending" // Bank slip masih nunggu verifikasi admin
	PaymentPaid    = "paid"
)

// Metode pembayaran
const (
	MethodNone     = "none"
	MethodCard     = "card"
	MethodBankSlip = "bank_slip"
	MethodCash     = "cash"
)

type Booking struct {
	ID          uint64  `gorm:"primaryKey" json:"id"`
	BookingNo   string  `gorm:"unique;size:50" json:"bookingNo"`
	ClientID    uint64  `gorm:"not null" json:"clientId"`
	CaregiverID uint64  `gorm:"not null" json:"caregiverId"`
	RecipientID *uint64 `json:"recipientId"` // Pointer karena boleh NULL (booking untuk diri sendiri)

	StartDate   string  `gorm:"type:date" json:"startDate"` // Format YYYY-MM-DD
	EndDate     string  `gorm:"type:date" json:"endDate"`
	StartTime   string  `gorm:"size:5" json:"startTime"` // Format HH:MM
	EndTime     string  `gorm:"size:5" json:"endTime"`
	ServiceType string  `gorm:"size:100" json:"serviceType"`
	Notes       string  `gorm:"type:text" json:"notes"`
	TotalAmount float64 `json:"totalAmount"`

	Status        string     `gorm:"size:20;default:pending" json:"status"`
	PaymentStatus string     `gorm:"size:20;default:unpaid" json:"paymentStatus"`
	PaymentMethod string     `gorm:"size:20;default:none" json:"paymentMethod"`
	TransactionID string     `gorm:"size:100" json:"transactionId,omitempty"`
	BankSlipURL   string     `gorm:"type:text" json:"bankSlipUrl,omitempty"`
	PaymentDate   *time.Time `json:"paymentDate,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// Relasi (Preload) biar pas query datanya lengkap
	Client    *User          `gorm:"foreignKey:ClientID" json:"client,omitempty"`
	Caregiver *Caregiver     `gorm:"foreignKey:CaregiverID" json:"caregiver,omitempty"`
	Recipient *CareRecipient `gorm:"foreignKey:RecipientID" json:"recipient,omitempty"`
}

// Input bikin booking baru. totalAmount TIDAK diterima dari client,
// server yang hitung sendiri dari tarif caregiver (jangan percaya angka dari browser).
type CreateBookingInput struct {
	CaregiverID uint64  `json:"caregiver" binding:"required"`
	RecipientID *uint64 `json:"recipientId"`
	StartDate   string  `json:"startDate" binding:"required"`
	EndDate     string  `json:"endDate" binding:"required"`
	StartTime   string  `json:"startTime" binding:"required"`
	EndTime     string  `json:"endTime" binding:"required"`
	ServiceType string  `json:"serviceType" binding:"required"`
	Notes       string  `json:"notes" binding:"omitempty,max=500"`
}

// Input update pembayaran, kontraknya sama persis dengan yang dipakai frontend:
// card -> paid + transactionId, bank_slip -> pending + bankSlipUrl, cash -> paid.
// Admin juga pakai ini buat approve/reject slip (pending -> paid/unpaid).
type UpdatePaymentInput struct {
	PaymentMethod string `json:"paymentMethod" binding:"required,oneof=card bank_slip cash"`
	PaymentStatus string `json:"paymentStatus" binding:"required,oneof=unpaid pending paid"`
	TransactionID string `json:"transactionId"`
	BankSlipURL   string `json:"bankSlipUrl"`
}

// Input update status booking oleh caregiver
type UpdateBookingStatusInput struct {
	Status string `json:"status" binding:"required,oneof=confirmed in-progress completed cancelled"`
}
