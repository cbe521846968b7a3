package availability

import (
	"fmt"
	"math/rand"
	"testing"
	"time"

	"careconnect-backend/internal/models"

	"github.com/stretchr/testify/assert"
)

// Minggu, 5 Januari 2025. Besoknya Senin.
var sunday = time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC)

func cg(id uint64, days ...string) models.Caregiver {
	slots := make([]models.AvailabilitySlot, 0, len(days))
	for _, d := range days {
		slots = append(slots, models.AvailabilitySlot{Day: d, StartTime: "09:00", EndTime: "17:00"})
	}
	return models.Caregiver{ID: id, Availability: slots}
}

func TestCategorize_InputKosong(t *testing.T) {
	b := Categorize(nil, sunday)
	assert.Empty(t, b.Available)
	assert.Empty(t, b.Limited)
	assert.Empty(t, b.Unavailable)
	// Harus slice kosong, bukan nil, biar JSON-nya []
	assert.NotNil(t, b.Available)
}

func TestCategorize_SlotHariIni(t *testing.T) {
	b := Categorize([]models.Caregiver{cg(1, "Sunday")}, sunday)
	assert.Len(t, b.Available, 1)
}

func TestCategorize_SlotBesok(t *testing.T) {
	// Hari ini Minggu, slot Senin = besok -> tetap masuk available
	b := Categorize([]models.Caregiver{cg(1, "Monday")}, sunday)
	assert.Len(t, b.Available, 1)
	assert.Empty(t, b.Limited)
}

func TestCategorize_SlotJauh(t *testing.T) {
	b := Categorize([]models.Caregiver{cg(1, "Friday")}, sunday)
	assert.Empty(t, b.Available)
	assert.Len(t, b.Limited, 1)
}

func TestCategorize_TanpaSlot(t *testing.T) {
	b := Categorize([]models.Caregiver{cg(1)}, sunday)
	assert.Len(t, b.Unavailable, 1)
}

func TestCategorize_NamaHariAnehMasukLimited(t *testing.T) {
	// Nama hari tidak dikenal tidak pernah match hari ini/besok,
	// tapi list-nya tidak kosong jadi jatuh ke limited (bukan error)
	b := Categorize([]models.Caregiver{cg(1, "Funday")}, sunday)
	assert.Empty(t, b.Available)
	assert.Len(t, b.Limited, 1)
}

func TestCategorize_UrutanStabil(t *testing.T) {
	input := []models.Caregiver{
		cg(1, "Friday"),
		cg(2, "Friday"),
		cg(3, "Friday"),
	}
	b := Categorize(input, sunday)
	assert.Equal(t, uint64(1), b.Limited[0].ID)
	assert.Equal(t, uint64(2), b.Limited[1].ID)
	assert.Equal(t, uint64(3), b.Limited[2].ID)
}

func TestCategorize_PartisiLengkapTanpaDuplikat(t *testing.T) {
	// 50 caregiver acak: gabungan ketiga bucket harus tepat 50, tanpa duplikat
	rng := rand.New(rand.NewSource(42))
	input := make([]models.Caregiver, 50)
	for i := range input {
		var days []string
		for d := 0; d < rng.Intn(4); d++ {
			days = append(days, models.WeekdayNames[rng.Intn(7)])
		}
		input[i] = cg(uint64(i+1), days...)
	}

	b := Categorize(input, sunday)
	assert.Equal(t, 50, len(b.Available)+len(b.Limited)+len(b.Unavailable))

	seen := map[uint64]bool{}
	for _, bucket := range [][]models.Caregiver{b.Available, b.Limited, b.Unavailable} {
		for _, c := range bucket {
			assert.False(t, seen[c.ID], fmt.Sprintf("caregiver %d muncul dua kali", c.ID))
			seen[c.ID] = true
		}
	}
}

func TestCategorize_SemuaHariAwal(t *testing.T) {
	// Cek tabel nama hari cocok dengan time.Weekday untuk semua 7 hari
	for i := 0; i < 7; i++ {
		today := sunday.AddDate(0, 0, i)
		todayName := models.WeekdayNames[int(today.Weekday())]
		b := Categorize([]models.Caregiver{cg(1, todayName)}, today)
		assert.Len(t, b.Available, 1, "hari ke-%d (%s)", i, todayName)
	}
}
