package handlers

import (
	"net/http"
	"time"

	"careconnect-backend/internal/config"
	"careconnect-backend/internal/models"
	"careconnect-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// AddRecipient client mendaftarkan orang yang akan dirawat
func AddRecipient(c *gin.Context) {
	clientID, _ := c.Get("userID")

	var input models.CreateRecipientInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Input tidak valid", err.Error())
		return
	}

	// Tanggal lahir harus valid & tidak di masa depan
	dob, err := time.Parse(dateLayout, input.DOB)
	if err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Format tanggal lahir harus YYYY-MM-DD", nil)
		return
	}
	if dob.After(time.Now()) {
		utils.APIResponse(c, http.StatusBadRequest, false, "Tanggal lahir tidak boleh di masa depan", nil)
		return
	}

	recipient := models.CareRecipient{
		ClientID:  clientID.(uint64),
		Name:      input.Name,
		DOB:       input.DOB,
		Gender:    input.Gender,
		CareNotes: input.CareNotes,
		Address:   input.Address,
	}

	if err := config.DB.Create(&recipient).Error; err != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, "Gagal menyimpan data", err.Error())
		return
	}

	utils.APIResponse(c, http.StatusCreated, true, "Data Berhasil Ditambahkan!", recipient)
}

// GetMyRecipients daftar orang yang dirawat milik client yang login
func GetMyRecipients(c *gin.Context) {
	clientID, _ := c.Get("userID")

	var recipients []models.CareRecipient
	config.DB.Where("client_id = ?", clientID).Order("created_at desc").Find(&recipients)

	utils.APIResponse(c, http.StatusOK, true, "Daftar Care Recipient", recipients)
}
