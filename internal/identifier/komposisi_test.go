package identifier

import (
	"testing"

	"go-kerat-tracking/internal/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBahanBakuID(t *testing.T) {
	tests := []struct {
		nama       string
		idSupplier string
		want       string
	}{
		{"Serbuk Kayu", "S01", "SBK-S01"},
		{"Polar", "S02", "POL-S02"},
		{"Kapur", "S01", "KPR-S01"},
		{"Tepung Jagung", "S03", "TPJ-S03"},
	}

	for _, tt := range tests {
		got, err := BahanBakuID(tt.nama, tt.idSupplier)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}

func TestBahanBakuID_Unknown(t *testing.T) {
	_, err := BahanBakuID("Sekam Padi", "S01")
	assert.ErrorIs(t, err, apperr.ErrUnknownBahanBaku)
}

func TestAbbrevOf(t *testing.T) {
	assert.Equal(t, "SBK", AbbrevOf("SBK-S01"))
	assert.Equal(t, "POL", AbbrevOf("POL-S02-0004"))
	assert.Equal(t, "POL", AbbrevOf("POL"))
}

func TestNextKomposisiID(t *testing.T) {
	tests := []struct {
		name        string
		idBahanBaku string
		existing    []string
		want        string
	}{
		{"starts at 0001", "SBK-S01", nil, "SBK-S01-0001"},
		{"increments highest", "SBK-S01", []string{"SBK-S01-0001", "SBK-S01-0003"}, "SBK-S01-0004"},
		{"sequence scoped to family across suppliers", "SBK-S02", []string{"SBK-S01-0002"}, "SBK-S02-0003"},
		{"ignores unparsable tails", "POL-S02", []string{"POL-S02-xxxx", "POL-S02-0001"}, "POL-S02-0002"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NextKomposisiID(tt.idBahanBaku, tt.existing))
		})
	}
}
