package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"careconnect-backend/internal/config"
	"careconnect-backend/internal/models"
	"careconnect-backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
	"gorm.io/gorm"
)

// Komisi platform yang dipotong dari pendapatan caregiver
const platformCommission = 0.10

// UpdateBookingPayment endpoint pembayaran utama: PUT /api/bookings/:id/payment
// Body: {paymentMethod, paymentStatus, transactionId?|bankSlipUrl?}
//
// Dari sisi client: card -> paid, bank_slip -> pending (nunggu admin), cash -> paid.
// Dari sisi admin: approve/reject slip yang pending (pending -> paid/unpaid).
func UpdateBookingPayment(c *gin.Context) {
	userID, _ := c.Get("userID")
	role, _ := c.Get("role")
	bookingID := c.Param("id")

	var input models.UpdatePaymentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Input pembayaran salah", err.Error())
		return
	}

	var booking models.Booking
	if err := config.DB.Preload("Client").Preload("Caregiver.User").First(&booking, bookingID).Error; err != nil {
		utils.APIResponse(c, http.StatusNotFound, false, "Booking tidak ditemukan", nil)
		return
	}

	switch role.(models.Role) {
	case models.RoleClient:
		if booking.ClientID != userID.(uint64) {
			utils.APIResponse(c, http.StatusForbidden, false, "Ini bukan booking Anda", nil)
			return
		}
		// Client cuma bisa bayar booking yang sudah selesai & belum dibayar
		if booking.Status != models.BookingCompleted || booking.PaymentStatus != models.PaymentUnpaid {
			utils.APIResponse(c, http.StatusBadRequest, false, "Booking ini belum bisa dibayar", nil)
			return
		}
		if err := applyClientPayment(&booking, input); err != nil {
			utils.APIResponse(c, http.StatusBadRequest, false, err.Error(), nil)
			return
		}

	case models.RoleAdmin:
		// Admin memverifikasi slip: dari pending boleh jadi paid atau balik unpaid
		if booking.PaymentStatus != models.PaymentPending {
			utils.APIResponse(c, http.StatusBadRequest, false, "Tidak ada pembayaran yang menunggu verifikasi", nil)
			return
		}
		if input.PaymentStatus != models.PaymentPaid && input.PaymentStatus != models.PaymentUnpaid {
			utils.APIResponse(c, http.StatusBadRequest, false, "Status verifikasi harus paid atau unpaid", nil)
			return
		}
		booking.PaymentStatus = input.PaymentStatus

	default:
		utils.APIResponse(c, http.StatusForbidden, false, "Akses Ditolak", nil)
		return
	}

	if booking.PaymentStatus == models.PaymentPaid {
		now := time.Now()
		booking.PaymentDate = &now
	}

	if err := config.DB.Save(&booking).Error; err != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, "Gagal menyimpan pembayaran", nil)
		return
	}

	// Kalau lunas: masukkan pendapatan ke dompet caregiver + kirim notifikasi
	if booking.PaymentStatus == models.PaymentPaid {
		settlePaidBooking(&booking)
	}

	utils.APIResponse(c, http.StatusOK, true, "Pembayaran Diupdate", booking)
}

// applyClientPayment menerapkan aturan per metode pembayaran dari sisi client
func applyClientPayment(booking *models.Booking, input models.UpdatePaymentInput) error {
	switch input.PaymentMethod {
	case models.MethodCard:
		if input.PaymentStatus != models.PaymentPaid {
			return errors.New("pembayaran kartu harus berstatus paid")
		}
		booking.PaymentMethod = models.MethodCard
		booking.PaymentStatus = models.PaymentPaid
		booking.TransactionID = input.TransactionID
		if booking.TransactionID == "" {
			booking.TransactionID = "TXN-" + uuid.NewString()
		}

	case models.MethodBankSlip:
		if input.BankSlipURL == "" {
			return errors.New("bank slip wajib diupload")
		}
		// Slip harus diverifikasi admin dulu, jadi statusnya pending
		booking.PaymentMethod = models.MethodBankSlip
		booking.PaymentStatus = models.PaymentPending
		booking.BankSlipURL = input.BankSlipURL

	case models.MethodCash:
		booking.PaymentMethod = models.MethodCash
		booking.PaymentStatus = models.PaymentPaid

	default:
		return errors.New("metode pembayaran tidak dikenal")
	}
	return nil
}

// settlePaidBooking efek samping saat pembayaran lunas:
// kredit dompet caregiver (dipotong komisi) + notifikasi dua arah
func settlePaidBooking(booking *models.Booking) {
	if booking.Caregiver != nil {
		earning := booking.TotalAmount * (1 - platformCommission)
		if err := creditWallet(booking.Caregiver.UserID, booking.ID, earning); err != nil {
			log.Printf("[Payment] Gagal kredit wallet booking %d: %v", booking.ID, err)
		}

		if booking.Caregiver.User != nil {
			go utils.SendNotification(
				booking.Caregiver.User.FCMToken,
				"Pembayaran Diterima 💰",
				"Pendapatan dari booking sudah masuk ke dompet Anda.",
				map[string]string{"booking_id": fmt.Sprintf("%d", booking.ID), "type": "payment_received"},
			)
		}
	}

	if booking.Client != nil {
		go utils.SendNotification(
			booking.Client.FCMToken,
			"Pembayaran Berhasil! ✅",
			"Terima kasih! Pembayaran Anda telah kami terima.",
			map[string]string{"booking_id": fmt.Sprintf("%d", booking.ID), "type": "payment_success"},
		)
	}
}

// creditWallet menambahkan saldo + mencatat history dalam satu transaksi DB
func creditWallet(userID, bookingID uint64, amount float64) error {
	return config.DB.Transaction(func(tx *gorm.DB) error {
		var wallet models.Wallet
		if err := tx.Where("user_id = ?", userID).First(&wallet).Error; err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			// Belum punya wallet, buatkan dulu
			wallet = models.Wallet{UserID: userID}
			if err := tx.Create(&wallet).Error; err != nil {
				return err
			}
		}

		wallet.Balance += amount
		if err := tx.Save(&wallet).Error; err != nil {
			return err
		}

		return tx.Create(&models.WalletTransaction{
			WalletID:  wallet.ID,
			BookingID: &bookingID,
			Amount:    amount,
			Type:      models.TxEarning,
			Status:    models.TxSuccess,
		}).Error
	})
}

// PayWithCard membuat transaksi Midtrans Snap untuk pembayaran kartu.
// Frontend dapat snap token, pembayaran beneran diselesaikan lewat webhook.
func PayWithCard(c *gin.Context) {
	userID, _ := c.Get("userID")
	bookingID := c.Param("id")

	var booking models.Booking
	if err := config.DB.Preload("Client").First(&booking, bookingID).Error; err != nil {
		utils.APIResponse(c, http.StatusNotFound, false, "Booking tidak ditemukan", nil)
		return
	}
	if booking.ClientID != userID.(uint64) {
		utils.APIResponse(c, http.StatusForbidden, false, "Ini bukan booking Anda", nil)
		return
	}
	if booking.Status != models.BookingCompleted || booking.PaymentStatus != models.PaymentUnpaid {
		utils.APIResponse(c, http.StatusBadRequest, false, "Booking ini belum bisa dibayar", nil)
		return
	}

	// A. Init Client Midtrans
	var s = snap.Client{}
	s.New(os.Getenv("MIDTRANS_SERVER_KEY"), midtrans.Sandbox)

	// B. Siapkan Request Snap
	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  booking.BookingNo,
			GrossAmt: int64(booking.TotalAmount), // Midtrans minta int64
		},
		CreditCard: &snap.CreditCardDetails{
			Secure: true,
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: booking.Client.Name,
			Email: booking.Client.Email,
			Phone: booking.Client.Phone,
		},
		Items: &[]midtrans.ItemDetails{
			{
				ID:    fmt.Sprintf("BOOK-%d", booking.ID),
				Name:  "Jasa Caregiver: " + booking.ServiceType,
				Price: int64(booking.TotalAmount),
				Qty:   1,
			},
		},
	}

	// C. Minta Token ke Midtrans
	snapResp, errSnap := s.CreateTransaction(req)
	if errSnap != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, "Midtrans Error", errSnap.GetMessage())
		return
	}

	// Tandai metodenya, status tetap unpaid sampai webhook masuk
	config.DB.Model(&booking).Update("payment_method", models.MethodCard)

	utils.APIResponse(c, http.StatusCreated, true, "Silakan Selesaikan Pembayaran", gin.H{
		"bookingId":   booking.ID,
		"bookingNo":   booking.BookingNo,
		"totalAmount": booking.TotalAmount,
		"snapToken":   snapResp.Token,       // <--- INI YG DIPAKAI FRONTEND
		"redirectUrl": snapResp.RedirectURL, // <--- Link pembayaran web
	})
}

// Struct sederhana untuk menangkap body notifikasi Midtrans
// Midtrans mengirim JSON banyak field, tapi kita cuma butuh ini
type MidtransNotification struct {
	TransactionStatus string `json:"transaction_status"`
	OrderID           string `json:"order_id"`
	TransactionID     string `json:"transaction_id"`
	FraudStatus       string `json:"fraud_status"`
}

// HandleMidtransNotification webhook dari Midtrans setelah user bayar
func HandleMidtransNotification(c *gin.Context) {
	var notification MidtransNotification

	// 1. Decode JSON dari Midtrans
	if err := c.ShouldBindJSON(&notification); err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Invalid JSON", nil)
		return
	}

	// 2. Map status Midtrans ke status pembayaran internal
	var paymentStatus string
	switch notification.TransactionStatus {
	case "capture":
		if notification.FraudStatus == "challenge" {
			paymentStatus = models.PaymentPending // Masih diverifikasi bank
		} else {
			paymentStatus = models.PaymentPaid // Sukses CC
		}
	case "settlement":
		paymentStatus = models.PaymentPaid // Sukses Transfer Bank
	case "deny", "cancel", "expire":
		paymentStatus = models.PaymentUnpaid // Gagal, balik ke unpaid
	default:
		paymentStatus = models.PaymentPending
	}

	log.Printf("[Webhook] Midtrans notification - OrderID: %s, TransactionStatus: %s, MappedStatus: %s",
		notification.OrderID, notification.TransactionStatus, paymentStatus)

	// 3. Cari booking berdasarkan nomor invoice (Midtrans kirim BK-xxxx)
	var booking models.Booking
	err := config.DB.Preload("Client").Preload("Caregiver.User").
		Where("booking_no = ?", notification.OrderID).First(&booking).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("[Webhook] Booking not found: %s", notification.OrderID)
			utils.APIResponse(c, http.StatusNotFound, false, "Booking Not Found", nil)
			return
		}
		utils.APIResponse(c, http.StatusInternalServerError, false, "Database error", err.Error())
		return
	}

	// 4. Update kalau memang berubah
	if booking.PaymentStatus != paymentStatus {
		booking.PaymentStatus = paymentStatus
		if paymentStatus == models.PaymentPaid {
			now := time.Now()
			booking.PaymentDate = &now
			booking.TransactionID = notification.TransactionID
		}
		if err := config.DB.Save(&booking).Error; err != nil {
			log.Printf("[Webhook] DB error updating booking: %v", err)
			utils.APIResponse(c, http.StatusInternalServerError, false, "Failed to update booking", err.Error())
			return
		}

		if paymentStatus == models.PaymentPaid {
			settlePaidBooking(&booking)
		}
	} else {
		log.Printf("[Webhook] Booking %s status unchanged (already %s)", notification.OrderID, paymentStatus)
	}

	// 5. Response OK ke Midtrans (Wajib biar Midtrans tau kita udah terima)
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
