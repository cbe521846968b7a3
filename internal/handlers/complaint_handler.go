package handlers

import (
	"fmt"
	"log"
	"net/http"

	"careconnect-backend/internal/config"
	"careconnect-backend/internal/models"
	"careconnect-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// CreateComplaint client mengajukan komplain (bisa soal caregiver tertentu,
// booking tertentu, atau masalah umum)
func CreateComplaint(c *gin.Context) {
	clientID, _ := c.Get("userID")

	var input models.CreateComplaintInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Input komplain tidak valid", err.Error())
		return
	}

	// Kalau komplain nunjuk booking, pastikan bookingnya memang milik client ini
	if input.BookingID != nil {
		var booking models.Booking
		if err := config.DB.First(&booking, *input.BookingID).Error; err != nil || booking.ClientID != clientID.(uint64) {
			utils.APIResponse(c, http.StatusBadRequest, false, "Booking tidak ditemukan", nil)
			return
		}
	}

	complaint := models.Complaint{
		ClientID:    clientID.(uint64),
		CaregiverID: input.CaregiverID,
		BookingID:   input.BookingID,
		Title:       input.Title,
		Description: input.Description,
		Category:    input.Category,
		Severity:    input.Severity,
		Status:      models.ComplaintOpen,
		AdminAction: "none",
	}

	if err := config.DB.Create(&complaint).Error; err != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, "Gagal menyimpan komplain", err.Error())
		return
	}

	utils.APIResponse(c, http.StatusCreated, true, "Komplain Berhasil Dikirim", complaint)
}

// GetMyComplaints daftar komplain milik client yang login
func GetMyComplaints(c *gin.Context) {
	clientID, _ := c.Get("userID")

	var complaints []models.Complaint
	config.DB.
		Preload("Caregiver.User").
		Where("client_id = ?", clientID).
		Order("created_at desc").
		Find(&complaints)

	utils.APIResponse(c, http.StatusOK, true, "Daftar Komplain Saya", complaints)
}

// GetAllComplaints semua komplain untuk admin, bisa difilter ?status=open
func GetAllComplaints(c *gin.Context) {
	status := c.Query("status")

	query := config.DB.
		Preload("Client").
		Preload("Caregiver.User").
		Order("created_at desc")

	if status != "" {
		query = query.Where("status = ?", status)
	}

	var complaints []models.Complaint
	query.Find(&complaints)

	utils.APIResponse(c, http.StatusOK, true, "Data Semua Komplain", complaints)
}

// GetComplaintStats ringkasan jumlah komplain per status buat dashboard admin
func GetComplaintStats(c *gin.Context) {
	var stats models.ComplaintStats

	config.DB.Model(&models.Complaint{}).Count(&stats.TotalComplaints)
	config.DB.Model(&models.Complaint{}).Where("status = ?", models.ComplaintOpen).Count(&stats.OpenComplaints)
	config.DB.Model(&models.Complaint{}).Where("status = ?", models.ComplaintInProgress).Count(&stats.InProgressComplaints)
	config.DB.Model(&models.Complaint{}).Where("status IN ?", []string{models.ComplaintResolved, models.ComplaintClosed}).Count(&stats.ResolvedComplaints)

	utils.APIResponse(c, http.StatusOK, true, "Statistik Komplain", stats)
}

// UpdateComplaint admin memproses komplain: ubah status, isi catatan,
// dan ambil tindakan. Tindakan suspend_caregiver langsung menonaktifkan
// caregiver yang bersangkutan dari pencarian.
func UpdateComplaint(c *gin.Context) {
	complaintID := c.Param("id")

	var input models.UpdateComplaintInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Input tidak valid", err.Error())
		return
	}

	var complaint models.Complaint
	if err := config.DB.Preload("Client").Preload("Caregiver.User").First(&complaint, complaintID).Error; err != nil {
		utils.APIResponse(c, http.StatusNotFound, false, "Komplain tidak ditemukan", nil)
		return
	}

	// resolved & closed itu status terminal: catatan masih boleh dirapikan,
	// tapi komplainnya tidak bisa dibuka lagi
	terminal := complaint.Status == models.ComplaintResolved || complaint.Status == models.ComplaintClosed
	if terminal && input.Status != complaint.Status {
		utils.APIResponse(c, http.StatusBadRequest, false,
			"Komplain yang sudah "+complaint.Status+" tidak bisa diubah statusnya", nil)
		return
	}

	complaint.Status = input.Status
	complaint.AdminNotes = input.AdminNotes
	complaint.AdminAction = input.AdminAction

	if err := config.DB.Save(&complaint).Error; err != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, "Gagal update komplain", nil)
		return
	}

	// Eksekusi tindakan suspend: caregiver dinonaktifkan sampai ditinjau ulang
	if input.AdminAction == "suspend_caregiver" && complaint.CaregiverID != nil {
		if err := config.DB.Model(&models.Caregiver{}).
			Where("id = ?", *complaint.CaregiverID).
			Update("is_active", false).Error; err != nil {
			log.Printf("[Complaint] Gagal suspend caregiver %d: %v", *complaint.CaregiverID, err)
		}

		if complaint.Caregiver != nil && complaint.Caregiver.User != nil {
			go utils.SendNotification(
				complaint.Caregiver.User.FCMToken,
				"Akun Anda Ditangguhkan ⚠️",
				"Akun Anda ditangguhkan sementara terkait laporan dari client.",
				map[string]string{"complaint_id": fmt.Sprintf("%d", complaint.ID), "type": "account_suspended"},
			)
		}
	}

	// Kabari client kalau komplainnya sudah selesai ditangani
	if input.Status == models.ComplaintResolved && complaint.Client != nil {
		go utils.SendNotification(
			complaint.Client.FCMToken,
			"Komplain Selesai Ditangani ✅",
			"Komplain Anda sudah kami tindak lanjuti. Cek detailnya di aplikasi.",
			map[string]string{"complaint_id": fmt.Sprintf("%d", complaint.ID), "type": "complaint_resolved"},
		)
	}

	utils.APIResponse(c, http.StatusOK, true, "Komplain Diupdate", complaint)
}
