package identifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextKeratID(t *testing.T) {
	tests := []struct {
		name   string
		latest string
		want   string
	}{
		{"empty state starts at K001", "", "K001"},
		{"increments", "K001", "K002"},
		{"rolls over padding boundary", "K009", "K010"},
		{"keeps three digit padding", "K042", "K043"},
		{"grows past padding", "K999", "K1000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NextKeratID(tt.latest)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNextKeratID_MalformedLatest(t *testing.T) {
	for _, latest := range []string{"KAB", "001", "K", "kerat-1"} {
		_, err := NextKeratID(latest)
		assert.Error(t, err, "latest=%q", latest)
	}
}

func TestKeratPattern(t *testing.T) {
	assert.True(t, KeratPattern.MatchString("K001"))
	assert.True(t, KeratPattern.MatchString("K999"))
	assert.False(t, KeratPattern.MatchString("K1"))
	assert.False(t, KeratPattern.MatchString("K1234"))
	assert.False(t, KeratPattern.MatchString("X001"))
}
