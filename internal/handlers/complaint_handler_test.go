package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"careconnect-backend/internal/config"
	"careconnect-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedComplaint(t *testing.T, clientID uint64, caregiverID *uint64, status string) models.Complaint {
	t.Helper()
	complaint := models.Complaint{
		ClientID:    clientID,
		CaregiverID: caregiverID,
		Title:       "Caregiver datang terlambat",
		Description: "Sudah dua kali telat lebih dari satu jam",
		Category:    "service_quality",
		Severity:    "medium",
		Status:      status,
		AdminAction: "none",
	}
	require.NoError(t, config.DB.Create(&complaint).Error)
	return complaint
}

func TestCreateComplaint(t *testing.T) {
	r := setupRouter(t)
	_, clientToken := seedUser(t, models.RoleClient)
	caregiver, _ := seedCaregiver(t, 100)

	w := doRequest(r, http.MethodPost, "/api/complaints", clientToken, map[string]any{
		"title":       "Perilaku kurang sopan",
		"description": "Caregiver berbicara kasar ke orang tua saya",
		"category":    "behavior",
		"severity":    "high",
		"caregiverId": caregiver.ID,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var complaint models.Complaint
	decodeData(t, w, &complaint)
	assert.Equal(t, models.ComplaintOpen, complaint.Status)
	assert.Equal(t, "none", complaint.AdminAction)
}

func TestCreateComplaintRejectsBadCategory(t *testing.T) {
	r := setupRouter(t)
	_, clientToken := seedUser(t, models.RoleClient)

	w := doRequest(r, http.MethodPost, "/api/complaints", clientToken, map[string]any{
		"title":       "Komplain aneh",
		"description": "Kategori tidak ada di daftar",
		"category":    "alien_invasion",
		"severity":    "high",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestComplaintStats(t *testing.T) {
	r := setupRouter(t)
	client, _ := seedUser(t, models.RoleClient)
	_, adminToken := seedUser(t, models.RoleAdmin)

	seedComplaint(t, client.ID, nil, models.ComplaintOpen)
	seedComplaint(t, client.ID, nil, models.ComplaintOpen)
	seedComplaint(t, client.ID, nil, models.ComplaintInProgress)
	seedComplaint(t, client.ID, nil, models.ComplaintResolved)
	seedComplaint(t, client.ID, nil, models.ComplaintClosed)

	w := doRequest(r, http.MethodGet, "/api/complaints/admin/stats", adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var stats models.ComplaintStats
	decodeData(t, w, &stats)
	assert.EqualValues(t, 5, stats.TotalComplaints)
	assert.EqualValues(t, 2, stats.OpenComplaints)
	assert.EqualValues(t, 1, stats.InProgressComplaints)
	assert.EqualValues(t, 2, stats.ResolvedComplaints) // resolved + closed
}

func TestSuspendCaregiverAction(t *testing.T) {
	r := setupRouter(t)
	client, _ := seedUser(t, models.RoleClient)
	_, adminToken := seedUser(t, models.RoleAdmin)
	caregiver, _ := seedCaregiver(t, 100)
	complaint := seedComplaint(t, client.ID, &caregiver.ID, models.ComplaintOpen)

	w := doRequest(r, http.MethodPut, fmt.Sprintf("/api/complaints/%d", complaint.ID),
		adminToken, map[string]any{
			"status":      "resolved",
			"adminNotes":  "Laporan terbukti, caregiver ditangguhkan",
			"adminAction": "suspend_caregiver",
		})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// Caregiver harus hilang dari pencarian
	var updated models.Caregiver
	require.NoError(t, config.DB.First(&updated, caregiver.ID).Error)
	assert.False(t, updated.IsActive)
}

func TestCannotReopenTerminalComplaint(t *testing.T) {
	r := setupRouter(t)
	client, _ := seedUser(t, models.RoleClient)
	_, adminToken := seedUser(t, models.RoleAdmin)
	resolved := seedComplaint(t, client.ID, nil, models.ComplaintResolved)
	closed := seedComplaint(t, client.ID, nil, models.ComplaintClosed)

	// Buka lagi komplain yang sudah selesai = ditolak
	w := doRequest(r, http.MethodPut, fmt.Sprintf("/api/complaints/%d", resolved.ID),
		adminToken, map[string]any{
			"status":      "open",
			"adminAction": "none",
		})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(r, http.MethodPut, fmt.Sprintf("/api/complaints/%d", closed.ID),
		adminToken, map[string]any{
			"status":      "in_progress",
			"adminAction": "none",
		})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Merapikan catatan tanpa mengubah status masih boleh
	w = doRequest(r, http.MethodPut, fmt.Sprintf("/api/complaints/%d", resolved.ID),
		adminToken, map[string]any{
			"status":      "resolved",
			"adminNotes":  "Refund sudah ditransfer tanggal 28",
			"adminAction": "refund",
		})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var updated models.Complaint
	require.NoError(t, config.DB.First(&updated, resolved.ID).Error)
	assert.Equal(t, models.ComplaintResolved, updated.Status)
	assert.Equal(t, "refund", updated.AdminAction)
}

func TestComplaintRoutesRequireAdmin(t *testing.T) {
	r := setupRouter(t)
	client, clientToken := seedUser(t, models.RoleClient)
	complaint := seedComplaint(t, client.ID, nil, models.ComplaintOpen)

	// Client tidak boleh pegang endpoint admin
	w := doRequest(r, http.MethodGet, "/api/complaints/admin/all", clientToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doRequest(r, http.MethodGet, "/api/complaints/admin/stats", clientToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doRequest(r, http.MethodPut, fmt.Sprintf("/api/complaints/%d", complaint.ID),
		clientToken, map[string]any{
			"status":      "closed",
			"adminAction": "none",
		})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestGetMyComplaintsOnlyOwn(t *testing.T) {
	r := setupRouter(t)
	client, clientToken := seedUser(t, models.RoleClient)
	other, _ := seedUser(t, models.RoleClient)

	seedComplaint(t, client.ID, nil, models.ComplaintOpen)
	seedComplaint(t, other.ID, nil, models.ComplaintOpen)

	w := doRequest(r, http.MethodGet, "/api/complaints/my-complaints", clientToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var complaints []models.Complaint
	decodeData(t, w, &complaints)
	require.Len(t, complaints, 1)
	assert.Equal(t, client.ID, complaints[0].ClientID)
}
