package handlers

import (
	"errors"
	"net/http"

	"careconnect-backend/internal/config"
	"careconnect-backend/internal/models"
	"careconnect-backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetMyWallet saldo + history transaksi caregiver yang login
func GetMyWallet(c *gin.Context) {
	userID, _ := c.Get("userID")

	var wallet models.Wallet
	err := config.DB.Preload("Transactions", func(db *gorm.DB) *gorm.DB {
		return db.Order("created_at desc")
	}).Where("user_id = ?", userID).First(&wallet).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Belum pernah terima pembayaran, kasih wallet kosong saja
			utils.APIResponse(c, http.StatusOK, true, "Dompet Saya", models.Wallet{UserID: userID.(uint64)})
			return
		}
		utils.APIResponse(c, http.StatusInternalServerError, false, "Gagal mengambil data dompet", nil)
		return
	}

	utils.APIResponse(c, http.StatusOK, true, "Dompet Saya", wallet)
}

type WithdrawalInput struct {
	Amount    float64 `json:"amount" binding:"required,gt=0"`
	Bank      string  `json:"bank" binding:"required"`
	AccountNo string  `json:"accountNo" binding:"required"`
}

// RequestWithdrawal caregiver minta tarik dana. Saldo langsung dipotong
// di sini, admin tinggal transfer lalu menandai SUCCESS/FAILED.
func RequestWithdrawal(c *gin.Context) {
	userID, _ := c.Get("userID")

	var input WithdrawalInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Input penarikan tidak valid", err.Error())
		return
	}

	var created models.WalletTransaction

	// Cek saldo & potong dalam satu transaksi DB biar tidak kena double-spend
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		var wallet models.Wallet
		if err := tx.Where("user_id = ?", userID).First(&wallet).Error; err != nil {
			return errors.New("Anda belum punya dompet")
		}
		if wallet.Balance < input.Amount {
			return errors.New("Saldo tidak mencukupi")
		}

		wallet.Balance -= input.Amount
		if err := tx.Save(&wallet).Error; err != nil {
			return err
		}

		created = models.WalletTransaction{
			WalletID:  wallet.ID,
			Amount:    input.Amount,
			Type:      models.TxWithdrawal,
			Status:    models.TxPending,
			Bank:      input.Bank,
			AccountNo: input.AccountNo,
		}
		return tx.Create(&created).Error
	})

	if err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, err.Error(), nil)
		return
	}

	utils.APIResponse(c, http.StatusCreated, true, "Permintaan Penarikan Dikirim", created)
}
