package handlers

import (
	"net/http"

	"careconnect-backend/internal/config"
	"careconnect-backend/internal/models"
	"careconnect-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// REGISTER
func Register(c *gin.Context) {
	var input models.RegisterInput

	// 1. Validasi Input JSON
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Input tidak valid", err.Error())
		return
	}

	// 2. Cek kekuatan password (harus ada huruf besar, kecil, dan angka)
	if !utils.IsStrongPassword(input.Password) {
		utils.APIResponse(c, http.StatusBadRequest, false, "Password harus mengandung huruf besar, huruf kecil, dan angka", nil)
		return
	}

	// 3. Hash Password
	hashedPassword, err := utils.HashPassword(input.Password)
	if err != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, "Gagal memproses password", nil)
		return
	}

	// 4. Siapkan Data User
	user := models.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hashedPassword,
		Role:         input.Role,
		Phone:        input.Phone,
	}

	// 5. Simpan ke Database
	if err := config.DB.Create(&user).Error; err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Email sudah terdaftar!", nil)
		return
	}

	// 6. Kalau daftarnya sebagai caregiver, buatkan profil kosong sekalian.
	// Profil baru muncul di pencarian setelah dilengkapi & diverifikasi admin.
	if user.Role == models.RoleCaregiver {
		profile := models.Caregiver{
			UserID:             user.ID,
			VerificationStatus: models.VerificationPending,
		}
		if err := config.DB.Create(&profile).Error; err != nil {
			utils.APIResponse(c, http.StatusInternalServerError, false, "Gagal membuat profil caregiver", nil)
			return
		}
	}

	// 7. Sukses, langsung kasih token biar tidak perlu login ulang
	token, err := utils.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, "Gagal generate token", nil)
		return
	}

	utils.APIResponse(c, http.StatusCreated, true, "Registrasi Berhasil!", gin.H{
		"token": token,
		"id":    user.ID,
		"name":  user.Name,
		"email": user.Email,
		"role":  user.Role,
	})
}

// LOGIN
func Login(c *gin.Context) {
	var input models.LoginInput

	// 1. Validasi Input
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Input tidak valid", nil)
		return
	}

	// 2. Cari User berdasarkan Email
	var user models.User
	if err := config.DB.Where("email = ?", input.Email).First(&user).Error; err != nil {
		utils.APIResponse(c, http.StatusUnauthorized, false, "Email atau Password salah", nil)
		return
	}

	// 3. Cek Password
	if !utils.CheckPassword(input.Password, user.PasswordHash) {
		utils.APIResponse(c, http.StatusUnauthorized, false, "Email atau Password salah", nil)
		return
	}

	// 4. Jika frontend mengirim token FCM, simpan ke database
	if input.FCMToken != "" {
		user.FCMToken = input.FCMToken
		// Kita hanya update kolom fcm_token agar efisien
		config.DB.Model(&user).Update("fcm_token", input.FCMToken)
	}

	// 5. Generate JWT Token
	token, err := utils.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, "Gagal generate token", nil)
		return
	}

	// 6. Sukses & Kirim Token
	utils.APIResponse(c, http.StatusOK, true, "Login Berhasil", gin.H{
		"token": token,
		"user": gin.H{
			"id":    user.ID,
			"name":  user.Name,
			"role":  user.Role,
			"email": user.Email,
		},
	})
}
