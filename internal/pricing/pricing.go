// Package pricing menghitung estimasi biaya booking.
// Semua fungsi di sini pure: input sama -> output sama, tidak nyentuh DB sama sekali,
// jadi aman dipanggil berulang-ulang (misal tiap kali user ganti tanggal di form).
package pricing

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// Days menghitung jumlah hari booking dari selisih tanggal, dibulatkan ke atas.
// Kalau hasilnya 0 atau negatif (tanggal sama / kebalik) dipatok jadi 1,
// karena booking minimal dihitung satu hari.
func Days(startDate, endDate time.Time) int {
	diff := endDate.Sub(startDate).Hours() / 24
	days := int(math.Ceil(diff))
	if days < 1 {
		return 1
	}
	return days
}

// Hours menghitung durasi kerja per hari dari jam "HH:MM".
// Tidak ada clamp di sini: kalau endTime lebih awal dari startTime hasilnya NEGATIF.
// Ini perilaku lama yang sengaja dipertahankan, yang nolak input kebalik itu
// tugasnya validasi di handler, bukan kalkulator ini.
// Format jam yang rusak menghasilkan NaN, bukan error.
func Hours(startTime, endTime string) float64 {
	sh, sm, ok1 := parseClock(startTime)
	eh, em, ok2 := parseClock(endTime)
	if !ok1 || !ok2 {
		return math.NaN()
	}
	return float64(eh-sh) + float64(em-sm)/60
}

// Estimate menghitung total biaya: hari x jam x tarif per jam.
// Pembulatan ke satuan utuh dilakukan di titik submit (handler), bukan di sini,
// supaya preview live tetap bisa menampilkan angka mentahnya.
func Estimate(startDate, endDate time.Time, startTime, endTime string, hourlyRate float64) float64 {
	return float64(Days(startDate, endDate)) * Hours(startTime, endTime) * hourlyRate
}

// parseClock membongkar "HH:MM" jadi jam & menit.
// Bagian setelah menit (misal detik) diabaikan saja.
func parseClock(t string) (h, m int, ok bool) {
	parts := strings.Split(t, ":")
	if len(parts) < 2 {
		return 0, 0, false
	}
	h, err1 := strconv.Atoi(parts[0])
	m, err2 := strconv.Atoi(parts[1])
	if err1 != nil || err2 != nil {
		return 0, 0, false
	}
	return h, m, true
}
