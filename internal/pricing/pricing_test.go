package pricing

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestDays_SameDateMinimalSatuHari(t *testing.T) {
	// Tanggal sama = tetap dihitung 1 hari
	assert.Equal(t, 1, Days(date("2025-01-01"), date("2025-01-01")))
}

func TestDays_TanggalKebalikJugaSatuHari(t *testing.T) {
	assert.Equal(t, 1, Days(date("2025-01-05"), date("2025-01-01")))
}

func TestDays_SelisihNHari(t *testing.T) {
	cases := []struct {
		start, end string
		want       int
	}{
		{"2025-01-01", "2025-01-02", 1},
		{"2025-01-01", "2025-01-04", 3},
		{"2025-01-01", "2025-01-31", 30},
		{"2025-02-27", "2025-03-02", 3}, // Lewat akhir bulan
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Days(date(c.start), date(c.end)), "%s -> %s", c.start, c.end)
	}
}

func TestHours_JamKerjaNormal(t *testing.T) {
	assert.Equal(t, 8.0, Hours("09:00", "17:00"))
}

func TestHours_SetengahJam(t *testing.T) {
	assert.Equal(t, 0.5, Hours("09:00", "09:30"))
}

func TestHours_KebalikJadiNegatif(t *testing.T) {
	// Quirk lama yang dipertahankan: jam kebalik menghasilkan angka negatif,
	// bukan error. Validasi input ada di layer handler.
	assert.Equal(t, -8.0, Hours("17:00", "09:00"))
}

func TestHours_FormatRusakJadiNaN(t *testing.T) {
	assert.True(t, math.IsNaN(Hours("banana", "17:00")))
	assert.True(t, math.IsNaN(Hours("09:00", "")))
	assert.True(t, math.IsNaN(Hours("09:xx", "17:00")))
}

func TestHours_DetikDiabaikan(t *testing.T) {
	assert.Equal(t, 8.0, Hours("09:00:30", "17:00:15"))
}

func TestEstimate_ContohDariForm(t *testing.T) {
	// 1 hari x 8 jam x 1000 = 8000
	got := Estimate(date("2025-01-01"), date("2025-01-01"), "09:00", "17:00", 1000)
	assert.Equal(t, 8000.0, got)
}

func TestEstimate_SetengahJamTetapKenaMinimalSehari(t *testing.T) {
	got := Estimate(date("2025-01-01"), date("2025-01-01"), "09:00", "09:30", 1000)
	assert.Equal(t, 500.0, got)
}

func TestEstimate_JamKebalikTotalNegatif(t *testing.T) {
	got := Estimate(date("2025-01-01"), date("2025-01-01"), "17:00", "09:00", 1000)
	assert.Equal(t, -8000.0, got)
}

func TestEstimate_MultiHari(t *testing.T) {
	// 3 hari x 8 jam x 500 = 12000
	got := Estimate(date("2025-01-01"), date("2025-01-04"), "09:00", "17:00", 500)
	assert.Equal(t, 12000.0, got)
}

func TestEstimate_Deterministik(t *testing.T) {
	// Fungsi pure: dipanggil berkali-kali hasilnya harus sama persis
	first := Estimate(date("2025-06-10"), date("2025-06-15"), "08:00", "16:30", 750)
	for i := 0; i < 100; i++ {
		assert.Equal(t, first, Estimate(date("2025-06-10"), date("2025-06-15"), "08:00", "16:30", 750))
	}
}

func TestEstimate_NaNMenular(t *testing.T) {
	got := Estimate(date("2025-01-01"), date("2025-01-02"), "abc", "17:00", 1000)
	assert.True(t, math.IsNaN(got))
}
