// Package identifier holds the pure ID codecs for kerat, komposisi, and
// segmen. All functions derive well-formed IDs from a snapshot of existing
// state; callers re-read the snapshot right before use.
package identifier

import (
	"fmt"
	"regexp"
	"strconv"
)

// KeratPattern adalah format kode scan kerat: K diikuti 3 digit.
var KeratPattern = regexp.MustCompile(`^K\d{3}$`)

var keratSuffix = regexp.MustCompile(`^K(\d+)$`)

// NextKeratID menurunkan ID kerat berikutnya dari ID tertinggi yang sudah
// ada. latest kosong berarti belum ada kerat sama sekali.
func NextKeratID(latest string) (string, error) {
	if latest == "" {
		return "K001", nil
	}
	m := keratSuffix.FindStringSubmatch(latest)
	if m == nil {
		return "", fmt.Errorf("malformed latest kerat id %q", latest)
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return "", fmt.Errorf("malformed latest kerat id %q", latest)
	}
	return fmt.Sprintf("K%03d", n+1), nil
}
