package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"
	"time"

	"careconnect-backend/internal/config"
	"careconnect-backend/internal/models"
	"careconnect-backend/internal/routes"
	"careconnect-backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupRouter menyiapkan DB SQLite in-memory + router lengkap dengan
// semua route & middleware, persis seperti server beneran
func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))
	config.DB = db

	r := gin.New()
	routes.SetupRoutes(r)
	return r
}

var userSeq int

// seedUser bikin user langsung di DB (lewat jalur belakang, bukan endpoint)
// dan balikin token login-nya
func seedUser(t *testing.T, role models.Role) (models.User, string) {
	t.Helper()

	hash, err := utils.HashPassword("Rahasia123")
	require.NoError(t, err)

	userSeq++
	user := models.User{
		Name:         fmt.Sprintf("User %s %d", role, userSeq),
		Email:        fmt.Sprintf("%s%d@test.local", role, userSeq),
		PasswordHash: hash,
		Role:         role,
	}
	require.NoError(t, config.DB.Create(&user).Error)

	token, err := utils.GenerateToken(user.ID, string(user.Role))
	require.NoError(t, err)
	return user, token
}

// seedCaregiver user caregiver + profil yang sudah diverifikasi & aktif
func seedCaregiver(t *testing.T, hourlyRate float64) (models.Caregiver, string) {
	t.Helper()

	user, token := seedUser(t, models.RoleCaregiver)
	caregiver := models.Caregiver{
		UserID:             user.ID,
		HourlyRate:         hourlyRate,
		ServiceTypes:       []string{"Elderly Care"},
		Location:           "Jakarta",
		VerificationStatus: models.VerificationApproved,
		IsVerified:         true,
		IsActive:           true,
	}
	require.NoError(t, config.DB.Create(&caregiver).Error)
	caregiver.User = &user
	return caregiver, token
}

// setUnverified membalikkan caregiver ke kondisi belum lolos verifikasi
func setUnverified(caregiverID uint64) error {
	return config.DB.Model(&models.Caregiver{}).Where("id = ?", caregiverID).
		Updates(map[string]any{
			"is_verified":         false,
			"is_active":           false,
			"verification_status": models.VerificationPending,
		}).Error
}

// seedBooking booking langsung di DB dengan status/payment tertentu
func seedBooking(t *testing.T, clientID uint64, caregiver models.Caregiver, status string, total float64) models.Booking {
	t.Helper()

	booking := models.Booking{
		BookingNo:     fmt.Sprintf("BK-%d", time.Now().UnixNano()),
		ClientID:      clientID,
		CaregiverID:   caregiver.ID,
		StartDate:     time.Now().AddDate(0, 0, 7).Format("2006-01-02"),
		EndDate:       time.Now().AddDate(0, 0, 7).Format("2006-01-02"),
		StartTime:     "09:00",
		EndTime:       "17:00",
		ServiceType:   "Elderly Care",
		TotalAmount:   total,
		Status:        status,
		PaymentStatus: models.PaymentUnpaid,
		PaymentMethod: models.MethodNone,
	}
	require.NoError(t, config.DB.Create(&booking).Error)
	return booking
}

// doRequest helper request JSON + Bearer token
func doRequest(r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// Bentuk response standar semua endpoint
type apiEnvelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) apiEnvelope {
	t.Helper()
	var env apiEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	env := decodeEnvelope(t, w)
	require.NoError(t, json.Unmarshal(env.Data, out))
}
