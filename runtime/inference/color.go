package inference

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/aledsdavies/sketchparams/core/types"
	"github.com/aledsdavies/sketchparams/runtime/lexer"
)

// HexToRGB converts #rrggbb to three components, 0-255 for byteColor and
// 0-1 for every other style.
func HexToRGB(hex string, style types.NumericArrayStyle) ([]float64, error) {
	if !lexer.IsHexColor(hex) {
		return nil, fmt.Errorf("%q is not a #rrggbb colour", hex)
	}
	n, err := strconv.ParseUint(strings.TrimPrefix(hex, "#"), 16, 32)
	if err != nil {
		return nil, fmt.Errorf("parse %q: %w", hex, err)
	}

	rgb := []float64{float64(n >> 16 & 0xff), float64(n >> 8 & 0xff), float64(n & 0xff)}
	if style != types.NumericArrayStyleByteColor {
		for i := range rgb {
			rgb[i] /= 255
		}
	}
	return rgb, nil
}

// colorStyleFor picks byte or unit colour from sample values. Without a
// sample (shader uniforms) unit colour is assumed. ok is false when the
// sample would fail both colour checks.
func colorStyleFor(sample []float64) (types.NumericArrayStyle, bool) {
	if sample == nil {
		return types.NumericArrayStyleUnitColor, true
	}
	for _, style := range []types.NumericArrayStyle{types.NumericArrayStyleUnitColor, types.NumericArrayStyleByteColor} {
		if checkColor("", style, sample) == nil {
			return style, true
		}
	}
	return "", false
}

// checkColor enforces the colour-style invariants on one vector.
func checkColor(key string, style types.NumericArrayStyle, values []float64) error {
	fail := func(format string, args ...interface{}) error {
		return &types.InvalidColorArrayError{Key: key, Style: style, Values: values, Reason: fmt.Sprintf(format, args...)}
	}

	if len(values) != 3 {
		return fail("expected 3 components, got %d", len(values))
	}

	upper := 1.0
	if style == types.NumericArrayStyleByteColor {
		upper = 255
	}
	for i, v := range values {
		if math.IsNaN(v) || v < 0 || v > upper {
			return fail("component %d out of range [0, %g]", i, upper)
		}
		if style == types.NumericArrayStyleByteColor && v != math.Trunc(v) {
			return fail("component %d is not an integer", i)
		}
	}
	return nil
}
