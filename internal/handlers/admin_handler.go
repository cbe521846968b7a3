package handlers

import (
	"fmt"
	"net/http"

	"careconnect-backend/internal/config"
	"careconnect-backend/internal/models"
	"careconnect-backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetAdminStats ringkasan angka-angka buat dashboard admin:
// jumlah user, booking per status pembayaran, dan total uang yang lewat sistem
func GetAdminStats(c *gin.Context) {
	var totalClients, totalCaregivers, totalBookings, pendingVerifications int64
	config.DB.Model(&models.User{}).Where("role = ?", models.RoleClient).Count(&totalClients)
	config.DB.Model(&models.User{}).Where("role = ?", models.RoleCaregiver).Count(&totalCaregivers)
	config.DB.Model(&models.Booking{}).Count(&totalBookings)
	config.DB.Model(&models.Caregiver{}).Where("verification_status = ?", models.VerificationPending).Count(&pendingVerifications)

	// COALESCE biar hasilnya 0 (bukan NULL) kalau belum ada data
	var totalRevenue, paidAmount, pendingAmount, unpaidAmount float64
	config.DB.Model(&models.Booking{}).
		Select("COALESCE(SUM(total_amount), 0)").Scan(&totalRevenue)
	config.DB.Model(&models.Booking{}).Where("payment_status = ?", models.PaymentPaid).
		Select("COALESCE(SUM(total_amount), 0)").Scan(&paidAmount)
	config.DB.Model(&models.Booking{}).Where("payment_status = ?", models.PaymentPending).
		Select("COALESCE(SUM(total_amount), 0)").Scan(&pendingAmount)
	config.DB.Model(&models.Booking{}).Where("payment_status = ?", models.PaymentUnpaid).
		Select("COALESCE(SUM(total_amount), 0)").Scan(&unpaidAmount)

	utils.APIResponse(c, http.StatusOK, true, "Statistik Platform", gin.H{
		"totalClients":         totalClients,
		"totalCaregivers":      totalCaregivers,
		"totalBookings":        totalBookings,
		"pendingVerifications": pendingVerifications,
		"totalRevenue":         totalRevenue,
		"paidAmount":           paidAmount,
		"pendingAmount":        pendingAmount,
		"unpaidAmount":         unpaidAmount,
	})
}

// GetAllClients daftar semua user dengan role client
func GetAllClients(c *gin.Context) {
	var clients []models.User
	config.DB.Where("role = ?", models.RoleClient).Order("created_at desc").Find(&clients)

	utils.APIResponse(c, http.StatusOK, true, "Data Semua Client", clients)
}

// GetPendingCaregivers antrian verifikasi: caregiver yang sudah submit
// dokumen identitas dan belum diputuskan
func GetPendingCaregivers(c *gin.Context) {
	var caregivers []models.Caregiver
	config.DB.
		Preload("User").
		Where("verification_status = ? AND id_number != ''", models.VerificationPending).
		Order("updated_at asc").
		Find(&caregivers)

	utils.APIResponse(c, http.StatusOK, true, "Antrian Verifikasi Caregiver", caregivers)
}

// Input keputusan verifikasi dari admin
type VerifyCaregiverInput struct {
	Decision string `json:"decision" binding:"required,oneof=approved rejected"`
	Notes    string `json:"notes"`
}

// VerifyCaregiver admin memutuskan verifikasi identitas caregiver.
// approved = boleh muncul di pencarian & terima booking, rejected = submit ulang.
func VerifyCaregiver(c *gin.Context) {
	caregiverID := c.Param("id")

	var input VerifyCaregiverInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Keputusan harus approved atau rejected", err.Error())
		return
	}

	var caregiver models.Caregiver
	if err := config.DB.Preload("User").First(&caregiver, caregiverID).Error; err != nil {
		utils.APIResponse(c, http.StatusNotFound, false, "Caregiver tidak ditemukan", nil)
		return
	}

	caregiver.VerificationStatus = input.Decision
	if input.Decision == models.VerificationApproved {
		caregiver.IsVerified = true
		caregiver.IsActive = true
	} else {
		caregiver.IsVerified = false
		caregiver.IsActive = false
	}

	if err := config.DB.Save(&caregiver).Error; err != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, "Gagal menyimpan keputusan", nil)
		return
	}

	// Kabari caregiver-nya hasil verifikasi
	if caregiver.User != nil {
		title, body := "Verifikasi Disetujui! 🎉", "Selamat! Profil Anda sudah aktif dan bisa menerima booking."
		if input.Decision == models.VerificationRejected {
			title, body = "Verifikasi Ditolak", "Mohon periksa kembali data identitas Anda lalu submit ulang."
		}
		go utils.SendNotification(caregiver.User.FCMToken, title, body,
			map[string]string{"caregiver_id": fmt.Sprintf("%d", caregiver.ID), "type": "verification_result"})
	}

	utils.APIResponse(c, http.StatusOK, true, "Keputusan Verifikasi Disimpan", caregiver)
}

// GetPendingWithdrawals daftar permintaan tarik dana yang belum diproses
func GetPendingWithdrawals(c *gin.Context) {
	var withdrawals []models.WalletTransaction
	config.DB.
		Where("type = ? AND status = ?", models.TxWithdrawal, models.TxPending).
		Order("created_at asc").
		Find(&withdrawals)

	utils.APIResponse(c, http.StatusOK, true, "Antrian Penarikan Dana", withdrawals)
}

type SettleWithdrawalInput struct {
	Status string `json:"status" binding:"required,oneof=SUCCESS FAILED"`
}

// SettleWithdrawal admin menandai penarikan sudah ditransfer (SUCCESS)
// atau gagal (FAILED, saldo dibalikin)
func SettleWithdrawal(c *gin.Context) {
	txID := c.Param("id")

	var input SettleWithdrawalInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Status harus SUCCESS atau FAILED", err.Error())
		return
	}

	var tx models.WalletTransaction
	if err := config.DB.First(&tx, txID).Error; err != nil {
		utils.APIResponse(c, http.StatusNotFound, false, "Transaksi tidak ditemukan", nil)
		return
	}
	if tx.Type != models.TxWithdrawal || tx.Status != models.TxPending {
		utils.APIResponse(c, http.StatusBadRequest, false, "Transaksi ini tidak menunggu diproses", nil)
		return
	}

	tx.Status = input.Status
	if err := config.DB.Save(&tx).Error; err != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, "Gagal update transaksi", nil)
		return
	}

	// Kalau transfer gagal, saldonya dikembalikan ke wallet
	if input.Status == models.TxFailed {
		config.DB.Model(&models.Wallet{}).
			Where("id = ?", tx.WalletID).
			Update("balance", gorm.Expr("balance + ?", tx.Amount))
	}

	utils.APIResponse(c, http.StatusOK, true, "Penarikan Diproses", tx)
}
