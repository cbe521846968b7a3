// Package availability mengelompokkan caregiver berdasarkan jadwal mingguannya,
// buat tampilan pencarian yang dibagi tiga section (tersedia / terbatas / tidak tersedia).
package availability

import (
	"time"

	"careconnect-backend/internal/models"
)

// Buckets hasil pembagian. Tiap caregiver masuk TEPAT satu bucket,
// urutan di dalam bucket mengikuti urutan input (stable).
type Buckets struct {
	Available   []models.Caregiver `json:"available"`
	Limited     []models.Caregiver `json:"limited"`
	Unavailable []models.Caregiver `json:"unavailable"`
}

// Categorize membagi caregiver jadi 3 kelompok:
//   - available: punya slot di hari ini atau besok
//   - limited: punya slot tapi bukan hari ini/besok (termasuk nama hari yang aneh,
//     sengaja dibiarkan jatuh ke sini daripada dianggap error)
//   - unavailable: tidak punya slot sama sekali
func Categorize(caregivers []models.Caregiver, today time.Time) Buckets {
	todayName := models.WeekdayNames[int(today.Weekday())]
	tomorrowName := models.WeekdayNames[int(today.AddDate(0, 0, 1).Weekday())]

	// Slice kosong (bukan nil) biar di JSON keluar [] bukan null
	b := Buckets{
		Available:   []models.Caregiver{},
		Limited:     []models.Caregiver{},
		Unavailable: []models.Caregiver{},
	}

	for _, cg := range caregivers {
		soon := false
		for _, slot := range cg.Availability {
			if slot.Day == todayName || slot.Day == tomorrowName {
				soon = true
				break
			}
		}

		switch {
		case soon:
			b.Available = append(b.Available, cg)
		case len(cg.Availability) > 0:
			b.Limited = append(b.Limited, cg)
		default:
			b.Unavailable = append(b.Unavailable, cg)
		}
	}

	return b
}
