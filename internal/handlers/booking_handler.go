package handlers

import (
	"fmt"
	"math"
	"net/http"
	"time"

	"careconnect-backend/internal/config"
	"careconnect-backend/internal/models"
	"careconnect-backend/internal/pricing"
	"careconnect-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

const dateLayout = "2006-01-02"

// CreateBooking membuat pesanan baru oleh client.
// Total biaya DIHITUNG DI SINI dari tarif caregiver, angka dari browser cuma preview.
func CreateBooking(c *gin.Context) {
	clientID, _ := c.Get("userID")

	var input models.CreateBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Input Booking Salah", err.Error())
		return
	}

	// 1. Validasi tanggal
	startDate, err1 := time.Parse(dateLayout, input.StartDate)
	endDate, err2 := time.Parse(dateLayout, input.EndDate)
	if err1 != nil || err2 != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Format tanggal harus YYYY-MM-DD", nil)
		return
	}
	if endDate.Before(startDate) {
		utils.APIResponse(c, http.StatusBadRequest, false, "Tanggal selesai harus setelah tanggal mulai", nil)
		return
	}
	today, _ := time.Parse(dateLayout, time.Now().Format(dateLayout))
	if startDate.Before(today) {
		utils.APIResponse(c, http.StatusBadRequest, false, "Tanggal mulai tidak boleh di masa lalu", nil)
		return
	}

	// 2. Validasi jam. Jam kebalik ditolak di sini supaya tidak ada
	// booking dengan total negatif yang nyangkut di database.
	hours := pricing.Hours(input.StartTime, input.EndTime)
	if math.IsNaN(hours) {
		utils.APIResponse(c, http.StatusBadRequest, false, "Format jam harus HH:MM", nil)
		return
	}
	if hours <= 0 {
		utils.APIResponse(c, http.StatusBadRequest, false, "Jam selesai harus setelah jam mulai", nil)
		return
	}

	// 3. Cek caregiver-nya ada & bisa dibooking
	var caregiver models.Caregiver
	if err := config.DB.Preload("User").First(&caregiver, input.CaregiverID).Error; err != nil {
		utils.APIResponse(c, http.StatusNotFound, false, "Caregiver tidak ditemukan", nil)
		return
	}
	if !caregiver.IsVerified || !caregiver.IsActive {
		utils.APIResponse(c, http.StatusBadRequest, false, "Caregiver belum bisa menerima booking", nil)
		return
	}

	// 4. Kalau booking untuk care recipient, pastikan punya client ini
	if input.RecipientID != nil {
		var recipient models.CareRecipient
		if err := config.DB.First(&recipient, *input.RecipientID).Error; err != nil || recipient.ClientID != clientID.(uint64) {
			utils.APIResponse(c, http.StatusBadRequest, false, "Care recipient tidak ditemukan", nil)
			return
		}
	}

	// 5. Hitung total: hari x jam x tarif, dibulatkan ke satuan utuh saat submit
	totalAmount := math.Round(pricing.Estimate(startDate, endDate, input.StartTime, input.EndTime, caregiver.HourlyRate))

	booking := models.Booking{
		BookingNo:     fmt.Sprintf("BK-%d", time.Now().UnixNano()),
		ClientID:      clientID.(uint64),
		CaregiverID:   caregiver.ID,
		RecipientID:   input.RecipientID,
		StartDate:     input.StartDate,
		EndDate:       input.EndDate,
		StartTime:     input.StartTime,
		EndTime:       input.EndTime,
		ServiceType:   input.ServiceType,
		Notes:         input.Notes,
		TotalAmount:   totalAmount,
		Status:        models.BookingPending,
		PaymentStatus: models.PaymentUnpaid,
		PaymentMethod: models.MethodNone,
	}

	if err := config.DB.Create(&booking).Error; err != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, "Gagal menyimpan booking", err.Error())
		return
	}

	// 6. Kabari caregiver-nya (pakai goroutine biar gak blocking)
	if caregiver.User != nil {
		go utils.SendNotification(
			caregiver.User.FCMToken,
			"Booking Baru Masuk! 🔔",
			"Ada client yang ingin memakai jasa Anda. Segera konfirmasi!",
			map[string]string{"booking_id": fmt.Sprintf("%d", booking.ID), "type": "new_booking"},
		)
	}

	utils.APIResponse(c, http.StatusCreated, true, "Booking Berhasil Dibuat!", booking)
}

// GetMyBookings history booking milik client yang login
func GetMyBookings(c *gin.Context) {
	userID, _ := c.Get("userID")

	var bookings []models.Booking
	// Preload biar data caregiver (plus nama usernya) ikut keambil
	config.DB.
		Preload("Caregiver.User").
		Preload("Recipient").
		Where("client_id = ?", userID).
		Order("created_at desc").
		Find(&bookings)

	utils.APIResponse(c, http.StatusOK, true, "History Booking", bookings)
}

// GetMyJobs daftar booking yang masuk ke caregiver yang login
func GetMyJobs(c *gin.Context) {
	userID, _ := c.Get("userID")

	// Cari dulu profil caregiver dari user yang login
	var caregiver models.Caregiver
	if err := config.DB.Where("user_id = ?", userID).First(&caregiver).Error; err != nil {
		utils.APIResponse(c, http.StatusNotFound, false, "Profil Caregiver tidak ditemukan", nil)
		return
	}

	var bookings []models.Booking
	config.DB.
		Preload("Client").
		Preload("Recipient").
		Where("caregiver_id = ?", caregiver.ID).
		Order("created_at desc").
		Find(&bookings)

	utils.APIResponse(c, http.StatusOK, true, "Daftar Job Saya", bookings)
}

// GetAllBookings semua booking di sistem (khusus admin), bisa difilter
// status pembayarannya: ?paymentStatus=pending
func GetAllBookings(c *gin.Context) {
	paymentStatus := c.Query("paymentStatus")

	query := config.DB.
		Preload("Client").
		Preload("Caregiver.User").
		Order("created_at desc")

	if paymentStatus != "" {
		query = query.Where("payment_status = ?", paymentStatus)
	}

	var bookings []models.Booking
	query.Find(&bookings)

	utils.APIResponse(c, http.StatusOK, true, "Data Semua Booking", bookings)
}

// GetBookingDetail detail satu booking. Cuma boleh dilihat client pemiliknya,
// caregiver yang bersangkutan, atau admin.
func GetBookingDetail(c *gin.Context) {
	userID, _ := c.Get("userID")
	role, _ := c.Get("role")
	bookingID := c.Param("id")

	var booking models.Booking
	err := config.DB.
		Preload("Client").
		Preload("Caregiver.User").
		Preload("Recipient").
		First(&booking, bookingID).Error
	if err != nil {
		utils.APIResponse(c, http.StatusNotFound, false, "Booking tidak ditemukan", nil)
		return
	}

	if !canSeeBooking(booking, userID.(uint64), role.(models.Role)) {
		utils.APIResponse(c, http.StatusForbidden, false, "Anda tidak berhak melihat booking ini", nil)
		return
	}

	utils.APIResponse(c, http.StatusOK, true, "Detail Booking", booking)
}

func canSeeBooking(b models.Booking, userID uint64, role models.Role) bool {
	switch role {
	case models.RoleAdmin:
		return true
	case models.RoleClient:
		return b.ClientID == userID
	case models.RoleCaregiver:
		return b.Caregiver != nil && b.Caregiver.UserID == userID
	}
	return false
}

// UpdateBookingStatus transisi status oleh caregiver:
// pending -> confirmed/cancelled, confirmed -> in-progress, in-progress -> completed
func UpdateBookingStatus(c *gin.Context) {
	userID, _ := c.Get("userID")
	bookingID := c.Param("id")

	var input models.UpdateBookingStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Input salah", err.Error())
		return
	}

	var booking models.Booking
	if err := config.DB.Preload("Caregiver").Preload("Client").First(&booking, bookingID).Error; err != nil {
		utils.APIResponse(c, http.StatusNotFound, false, "Booking tidak ditemukan", nil)
		return
	}

	// Validasi: apakah benar booking ini ditujukan ke caregiver yang login?
	if booking.Caregiver == nil || booking.Caregiver.UserID != userID.(uint64) {
		utils.APIResponse(c, http.StatusForbidden, false, "Anda tidak berhak mengubah booking ini", nil)
		return
	}

	if !validTransition(booking.Status, input.Status) {
		utils.APIResponse(c, http.StatusBadRequest, false,
			fmt.Sprintf("Tidak bisa mengubah status dari %s ke %s", booking.Status, input.Status), nil)
		return
	}

	booking.Status = input.Status
	if err := config.DB.Save(&booking).Error; err != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, "Gagal update status", nil)
		return
	}

	// Kabari client kalau bookingnya dikonfirmasi/dibatalkan
	if booking.Client != nil {
		title, body := "", ""
		switch input.Status {
		case models.BookingConfirmed:
			title, body = "Booking Dikonfirmasi ✅", "Caregiver Anda sudah mengkonfirmasi jadwal. Sampai jumpa!"
		case models.BookingCancelled:
			title, body = "Booking Dibatalkan ❌", "Maaf, caregiver membatalkan booking Anda."
		case models.BookingCompleted:
			title, body = "Booking Selesai 🎉", "Layanan sudah selesai. Silakan lakukan pembayaran."
		}
		if title != "" {
			go utils.SendNotification(booking.Client.FCMToken, title, body,
				map[string]string{"booking_id": fmt.Sprintf("%d", booking.ID), "type": "booking_status"})
		}
	}

	utils.APIResponse(c, http.StatusOK, true, "Status Booking Diupdate", booking)
}

// validTransition mengecek alur status booking. cancelled boleh dari
// pending/confirmed, sisanya harus urut.
func validTransition(from, to string) bool {
	switch to {
	case models.BookingConfirmed:
		return from == models.BookingPending
	case models.BookingInProgress:
		return from == models.BookingConfirmed
	case models.BookingCompleted:
		return from == models.BookingInProgress
	case models.BookingCancelled:
		return from == models.BookingPending || from == models.BookingConfirmed
	}
	return false
}
