package utils

import "strconv"

// StringToUint64 mengubah string angka menjadi uint64.
// Dipakai buat parsing ID dari URL parameter (/users/:id dan kawan-kawan).
// Kalau gagal parse hasilnya 0, yang tidak akan pernah match ID beneran.
func StringToUint64(str string) uint64 {
	val, err := strconv.ParseUint(str, 10, 64)
	if err != nil {
		return 0
	}
	return val
}
