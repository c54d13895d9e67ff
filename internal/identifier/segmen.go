package identifier

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"go-kerat-tracking/internal/apperr"
)

// ZoneInkubasi adalah nilai lokasi untuk segmen rak inkubasi. Zona kumbung
// ditulis "kumbung/{n}" (lihat KumbungZone).
const ZoneInkubasi = "Inkubasi"

// KumbungZone menyusun nilai lokasi untuk kumbung nomor n.
func KumbungZone(n int) string {
	return fmt.Sprintf("kumbung/%d", n)
}

// Segmen adalah alamat spasial hasil parse ID segmen. Kumbung 0 berarti
// zona inkubasi.
type Segmen struct {
	Kumbung int    `json:"kumbung,omitempty"`
	Rak     int    `json:"rak"`
	Baris   int    `json:"baris"`
	Kolom   string `json:"kolom"`
}

// Lokasi mengembalikan nilai zona yang round-trip dengan SegmenID.
func (s Segmen) Lokasi() string {
	if s.Kumbung > 0 {
		return KumbungZone(s.Kumbung)
	}
	return ZoneInkubasi
}

var (
	inkSegmen = regexp.MustCompile(`^INK-(\d{2})([A-Za-z]+)(\d{2})$`)
	kmbSegmen = regexp.MustCompile(`^KMB/(\d{2})-(\d{2})([A-Za-z]+)(\d{2})$`)
)

// SegmenID menyusun ID segmen: INK-{rak2}{kolom}{baris2} untuk inkubasi,
// KMB/{n2}-{rak2}{kolom}{baris2} untuk kumbung. Kolom sengaja tidak di-pad
// (format lama; tetap round-trip karena kolom alfabet).
func SegmenID(lokasi string, rak, baris int, kolom string) (string, error) {
	if rak <= 0 || baris <= 0 || kolom == "" {
		return "", apperr.Validationf("invalid segmen fields rak=%d baris=%d kolom=%q", rak, baris, kolom)
	}
	switch {
	case lokasi == ZoneInkubasi:
		return fmt.Sprintf("INK-%02d%s%02d", rak, kolom, baris), nil
	case strings.HasPrefix(lokasi, "kumbung/"):
		n, err := strconv.Atoi(strings.TrimPrefix(lokasi, "kumbung/"))
		if err != nil || n <= 0 {
			return "", apperr.Validationf("invalid kumbung zone %q", lokasi)
		}
		return fmt.Sprintf("KMB/%02d-%02d%s%02d", n, rak, kolom, baris), nil
	}
	return "", apperr.Validationf("invalid lokasi %q for segmen id", lokasi)
}

// ParseSegmenID membaca kembali ID segmen sesuai grammar SegmenID.
func ParseSegmenID(id string) (Segmen, error) {
	if m := inkSegmen.FindStringSubmatch(id); m != nil {
		rak, _ := strconv.Atoi(m[1])
		baris, _ := strconv.Atoi(m[3])
		return Segmen{Rak: rak, Kolom: m[2], Baris: baris}, nil
	}
	if m := kmbSegmen.FindStringSubmatch(id); m != nil {
		n, _ := strconv.Atoi(m[1])
		rak, _ := strconv.Atoi(m[2])
		baris, _ := strconv.Atoi(m[4])
		return Segmen{Kumbung: n, Rak: rak, Kolom: m[3], Baris: baris}, nil
	}
	return Segmen{}, apperr.Validationf("unrecognized segmen id %q", id)
}
