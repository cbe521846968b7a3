package models

import "time"

// Tipe & status transaksi dompet
const (
	TxEarning    = "EARNING"
	TxWithdrawal = "WITHDRAWAL"

	TxPending = "PENDING"
	TxSuccess = "SUCCESS"
	TxFailed  = "FAILED"
)

// Wallet menampung pendapatan caregiver dari booking yang sudah dibayar
type Wallet struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	UserID    uint64    `gorm:"unique;not null" json:"userId"`
	Balance   float64   `gorm:"default:0" json:"balance"`
	UpdatedAt time.Time `json:"updatedAt"`

	// Relasi ke History Transaksi
	Transactions []WalletTransaction `gorm:"foreignKey:WalletID" json:"transactions,omitempty"`
}

type WalletTransaction struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	WalletID  uint64    `json:"walletId"`
	BookingID *uint64   `json:"bookingId,omitempty"` // NULL kalau withdrawal
	Amount    float64   `json:"amount"`
	Type      string    `json:"type"`   // EARNING, WITHDRAWAL
	Status    string    `json:"status"` // PENDING, SUCCESS, FAILED
	Bank      string    `gorm:"size:50" json:"bank,omitempty"`
	AccountNo string    `gorm:"size:50" json:"accountNo,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
