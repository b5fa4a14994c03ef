package inference

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aledsdavies/sketchparams/core/types"
)

func TestHexToRGB(t *testing.T) {
	tests := []struct {
		hex   string
		style types.NumericArrayStyle
		want  []float64
	}{
		{"#ff0000", types.NumericArrayStyleByteColor, []float64{255, 0, 0}},
		{"#ff0000", types.NumericArrayStyleUnitColor, []float64{1, 0, 0}},
		{"#FF8800", types.NumericArrayStyleByteColor, []float64{255, 136, 0}},
		{"#ff8800", types.NumericArrayStyleUnitColor, []float64{1, 136.0 / 255, 0}},
		{"#000000", types.NumericArrayStyleCombo, []float64{0, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.hex+"/"+string(tt.style), func(t *testing.T) {
			got, err := HexToRGB(tt.hex, tt.style)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHexToRGBRejects(t *testing.T) {
	for _, hex := range []string{"red", "#fff", "ff0000", "#gg0000", "#ff00001"} {
		_, err := HexToRGB(hex, types.NumericArrayStyleUnitColor)
		assert.Error(t, err, hex)
	}
}

func TestCheckColor(t *testing.T) {
	tests := []struct {
		name   string
		style  types.NumericArrayStyle
		values []float64
		ok     bool
	}{
		{"unit in range", types.NumericArrayStyleUnitColor, []float64{1, 0, 0}, true},
		{"unit above one", types.NumericArrayStyleUnitColor, []float64{1.5, 0, 0}, false},
		{"unit negative", types.NumericArrayStyleUnitColor, []float64{0, -0.1, 0}, false},
		{"byte in range", types.NumericArrayStyleByteColor, []float64{255, 0, 0}, true},
		{"byte fractional", types.NumericArrayStyleByteColor, []float64{255.5, 0, 0}, false},
		{"byte non-integer in range", types.NumericArrayStyleByteColor, []float64{0.5, 0, 0}, false},
		{"byte above range", types.NumericArrayStyleByteColor, []float64{256, 0, 0}, false},
		{"too short", types.NumericArrayStyleUnitColor, []float64{0, 0}, false},
		{"too long", types.NumericArrayStyleByteColor, []float64{0, 0, 0, 0}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := checkColor("tint", tt.style, tt.values)
			if tt.ok {
				assert.NoError(t, err)
				return
			}
			var ce *types.InvalidColorArrayError
			require.True(t, errors.As(err, &ce), "want InvalidColorArrayError, got %v", err)
			assert.Equal(t, "tint", ce.Key)
			assert.Equal(t, tt.style, ce.Style)
		})
	}
}
