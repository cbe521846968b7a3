package handlers

import (
	"net/http"

	"careconnect-backend/internal/config"
	"careconnect-backend/internal/models"
	"careconnect-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// GetUserProfile mengambil data user yang sedang login
func GetUserProfile(c *gin.Context) {
	// 1. Ambil User ID dari Context (Hasil kerja Middleware tadi)
	userID, exists := c.Get("userID")
	if !exists {
		utils.APIResponse(c, http.StatusUnauthorized, false, "Unauthorized", nil)
		return
	}

	// 2. Cari di Database
	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		utils.APIResponse(c, http.StatusNotFound, false, "User tidak ditemukan", nil)
		return
	}

	// 3. Return Data (Tanpa Password)
	utils.APIResponse(c, http.StatusOK, true, "Data Profile Berhasil Diambil", user)
}

// UpdateUser mengubah nama/telepon/alamat. User cuma boleh edit dirinya sendiri.
func UpdateUser(c *gin.Context) {
	userID, _ := c.Get("userID")
	targetID := utils.StringToUint64(c.Param("id"))

	if targetID != userID.(uint64) {
		utils.APIResponse(c, http.StatusForbidden, false, "Tidak boleh mengubah data user lain", nil)
		return
	}

	var input models.UpdateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Input tidak valid", err.Error())
		return
	}

	var user models.User
	if err := config.DB.First(&user, targetID).Error; err != nil {
		utils.APIResponse(c, http.StatusNotFound, false, "User tidak ditemukan", nil)
		return
	}

	// Update field yang dikirim saja
	if input.Name != "" {
		user.Name = input.Name
	}
	if input.Phone != "" {
		user.Phone = input.Phone
	}
	if input.Address != "" {
		user.Address = input.Address
	}

	if err := config.DB.Save(&user).Error; err != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, "Gagal menyimpan perubahan", nil)
		return
	}

	utils.APIResponse(c, http.StatusOK, true, "Profil Berhasil Diupdate!", user)
}
