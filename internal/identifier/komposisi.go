package identifier

import (
	"fmt"
	"strconv"
	"strings"

	"go-kerat-tracking/internal/apperr"
)

// Tabel singkatan nama bahan baku. Nama di luar tabel ini fatal sebelum
// write apa pun.
var bahanBakuAbbreviations = map[string]string{
	"Serbuk Kayu":   "SBK",
	"Polar":         "POL",
	"Kapur":         "KPR",
	"Tepung Jagung": "TPJ",
}

// Abbreviation memetakan nama bahan baku ke singkatan 3 huruf.
func Abbreviation(nama string) (string, error) {
	abbrev, ok := bahanBakuAbbreviations[nama]
	if !ok {
		return "", fmt.Errorf("%w: no abbreviation found for %q", apperr.ErrUnknownBahanBaku, nama)
	}
	return abbrev, nil
}

// BahanBakuID menyusun {ABBREV}-{idSupplier}, misal SBK-S01.
func BahanBakuID(nama, idSupplier string) (string, error) {
	abbrev, err := Abbreviation(nama)
	if err != nil {
		return "", err
	}
	return abbrev + "-" + idSupplier, nil
}

// AbbrevOf mengambil token singkatan di depan ID bahan baku / komposisi.
func AbbrevOf(id string) string {
	if i := strings.IndexByte(id, '-'); i >= 0 {
		return id[:i]
	}
	return id
}

// NextKomposisiID menyusun {idBahanBaku}-{NNNN}: field numerik terakhir
// tertinggi di existing (ID satu family singkatan) ditambah satu, pad 4
// digit. Mulai dari 0001 kalau belum ada.
func NextKomposisiID(idBahanBaku string, existing []string) string {
	highest := 0
	for _, id := range existing {
		parts := strings.Split(id, "-")
		n, err := strconv.Atoi(parts[len(parts)-1])
		if err != nil {
			continue
		}
		if n > highest {
			highest = n
		}
	}
	return fmt.Sprintf("%s-%04d", idBahanBaku, highest+1)
}
