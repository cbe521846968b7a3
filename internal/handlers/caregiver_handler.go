package handlers

import (
	"net/http"
	"time"

	"careconnect-backend/internal/availability"
	"careconnect-backend/internal/config"
	"careconnect-backend/internal/models"
	"careconnect-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// searchCaregiverQuery membangun query pencarian caregiver dari query param.
// Dipisah biar bisa dipakai endpoint list biasa & yang dikelompokkan.
func searchCaregiverQuery(c *gin.Context) ([]models.Caregiver, error) {
	name := c.Query("name")
	location := c.Query("location")
	serviceType := c.Query("serviceType")

	// Cuma caregiver terverifikasi & aktif yang boleh muncul di pencarian
	query := config.DB.
		Preload("User").
		Joins("JOIN users ON users.id = caregivers.user_id").
		Where("caregivers.is_verified = ? AND caregivers.is_active = ?", true, true)

	if name != "" {
		query = query.Where("users.name LIKE ?", "%"+name+"%")
	}
	if location != "" {
		query = query.Where("caregivers.location = ?", location)
	}
	if serviceType != "" {
		// serviceTypes disimpan sebagai JSON array, jadi cari substring-nya.
		// Tanda kutip ikut dicocokkan biar "Childcare" tidak match "Childcare Plus".
		query = query.Where(`caregivers.service_types LIKE ?`, `%"`+serviceType+`"%`)
	}

	var caregivers []models.Caregiver
	err := query.Order("caregivers.rating desc").Find(&caregivers).Error
	return caregivers, err
}

// SearchCaregivers list caregiver publik dengan filter nama/lokasi/jenis layanan
func SearchCaregivers(c *gin.Context) {
	caregivers, err := searchCaregiverQuery(c)
	if err != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, "Gagal mencari caregiver", err.Error())
		return
	}

	utils.APIResponse(c, http.StatusOK, true, "Daftar Caregiver", caregivers)
}

// GetCategorizedCaregivers sama seperti search, tapi hasilnya dibagi 3 kelompok
// (tersedia hari ini/besok, terbatas, tidak tersedia) buat tampilan per section
func GetCategorizedCaregivers(c *gin.Context) {
	caregivers, err := searchCaregiverQuery(c)
	if err != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, "Gagal mencari caregiver", err.Error())
		return
	}

	buckets := availability.Categorize(caregivers, time.Now())
	utils.APIResponse(c, http.StatusOK, true, "Daftar Caregiver", buckets)
}

// GetCaregiver detail satu caregiver
func GetCaregiver(c *gin.Context) {
	id := c.Param("id")

	var caregiver models.Caregiver
	if err := config.DB.Preload("User").First(&caregiver, id).Error; err != nil {
		utils.APIResponse(c, http.StatusNotFound, false, "Caregiver tidak ditemukan", nil)
		return
	}

	utils.APIResponse(c, http.StatusOK, true, "Detail Caregiver", caregiver)
}

// UpdateCaregiver update profil/jadwal/verifikasi oleh caregiver yang bersangkutan.
// :id di URL adalah ID caregiver, tapi yang dicek kepemilikannya user yang login.
func UpdateCaregiver(c *gin.Context) {
	userID, _ := c.Get("userID")
	id := c.Param("id")

	var input models.UpdateCaregiverInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Input tidak valid", err.Error())
		return
	}

	// 1. Cari profil & cek kepemilikan
	var caregiver models.Caregiver
	if err := config.DB.First(&caregiver, id).Error; err != nil {
		utils.APIResponse(c, http.StatusNotFound, false, "Caregiver tidak ditemukan", nil)
		return
	}
	if caregiver.UserID != userID.(uint64) {
		utils.APIResponse(c, http.StatusForbidden, false, "Tidak boleh mengubah profil caregiver lain", nil)
		return
	}

	// 2. Validasi jadwal dulu sebelum nyentuh DB.
	// Hari harus nama hari beneran & jam selesai harus setelah jam mulai.
	if input.Availability != nil {
		for _, slot := range *input.Availability {
			if err := slot.Validate(); err != nil {
				utils.APIResponse(c, http.StatusBadRequest, false, "Jadwal tidak valid: "+err.Error(), slot)
				return
			}
		}
		caregiver.Availability = *input.Availability
	}

	// 3. Update field profil yang dikirim
	if input.HourlyRate != nil {
		caregiver.HourlyRate = *input.HourlyRate
	}
	if input.ServiceTypes != nil {
		caregiver.ServiceTypes = *input.ServiceTypes
	}
	if input.Location != nil {
		caregiver.Location = *input.Location
	}
	if input.Bio != nil {
		caregiver.Bio = *input.Bio
	}
	if input.ExperienceYrs != nil {
		caregiver.ExperienceYrs = *input.ExperienceYrs
	}
	if input.Certifications != nil {
		caregiver.Certifications = *input.Certifications
	}

	// 4. Submit data verifikasi = status balik ke pending, nunggu admin lagi
	if input.IDType != nil || input.IDNumber != nil {
		if input.IDType != nil {
			caregiver.IDType = *input.IDType
		}
		if input.IDNumber != nil {
			caregiver.IDNumber = *input.IDNumber
		}
		caregiver.VerificationStatus = models.VerificationPending
		caregiver.IsVerified = false
	}

	if err := config.DB.Save(&caregiver).Error; err != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, "Gagal menyimpan profil", nil)
		return
	}

	utils.APIResponse(c, http.StatusOK, true, "Profil Caregiver Berhasil Diupdate!", caregiver)
}
