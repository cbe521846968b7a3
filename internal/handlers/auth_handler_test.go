package handlers_test

import (
	"net/http"
	"testing"

	"careconnect-backend/internal/config"
	"careconnect-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterCaregiverCreatesEmptyProfile(t *testing.T) {
	r := setupRouter(t)

	w := doRequest(r, http.MethodPost, "/api/auth/register", "", map[string]any{
		"name":     "Siti Pengasuh",
		"email":    "siti@test.local",
		"password": "Rahasia123",
		"role":     "caregiver",
		"phone":    "081234567890",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	// Profil caregiver harus otomatis dibuatkan, status verifikasi pending
	var user models.User
	require.NoError(t, config.DB.Where("email = ?", "siti@test.local").First(&user).Error)

	var caregiver models.Caregiver
	require.NoError(t, config.DB.Where("user_id = ?", user.ID).First(&caregiver).Error)
	assert.Equal(t, models.VerificationPending, caregiver.VerificationStatus)
	assert.False(t, caregiver.IsVerified)
	assert.False(t, caregiver.IsActive)
}

func TestRegisterRejectsWeakPassword(t *testing.T) {
	r := setupRouter(t)

	// Tidak ada huruf besar & angka
	w := doRequest(r, http.MethodPost, "/api/auth/register", "", map[string]any{
		"name":     "Budi",
		"email":    "budi@test.local",
		"password": "lemahsemua",
		"role":     "client",
		"phone":    "081234567890",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	r := setupRouter(t)

	payload := map[string]any{
		"name":     "Budi",
		"email":    "budi@test.local",
		"password": "Rahasia123",
		"role":     "client",
		"phone":    "081234567890",
	}
	w := doRequest(r, http.MethodPost, "/api/auth/register", "", payload)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doRequest(r, http.MethodPost, "/api/auth/register", "", payload)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRegisterRejectsUnknownRole(t *testing.T) {
	r := setupRouter(t)

	w := doRequest(r, http.MethodPost, "/api/auth/register", "", map[string]any{
		"name":     "Hacker",
		"email":    "hacker@test.local",
		"password": "Rahasia123",
		"role":     "admin", // Daftar jadi admin tidak boleh lewat endpoint publik
		"phone":    "081234567890",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLogin(t *testing.T) {
	r := setupRouter(t)
	user, _ := seedUser(t, models.RoleClient)

	w := doRequest(r, http.MethodPost, "/api/auth/login", "", map[string]any{
		"email":    user.Email,
		"password": "Rahasia123",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var data struct {
		Token string `json:"token"`
		User  struct {
			ID   uint64 `json:"id"`
			Role string `json:"role"`
		} `json:"user"`
	}
	decodeData(t, w, &data)
	assert.NotEmpty(t, data.Token)
	assert.Equal(t, user.ID, data.User.ID)
	assert.Equal(t, "client", data.User.Role)

	// Password salah harus 401, pesannya tidak boleh bocorin email valid/tidak
	w = doRequest(r, http.MethodPost, "/api/auth/login", "", map[string]any{
		"email":    user.Email,
		"password": "SalahTotal99",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestProtectedRouteNeedsToken(t *testing.T) {
	r := setupRouter(t)

	w := doRequest(r, http.MethodGet, "/api/profile", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doRequest(r, http.MethodGet, "/api/profile", "token-ngawur", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
