package inference

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aledsdavies/sketchparams/core/types"
)

type (
	namedFloat float64
	namedMode  string
	namedFlag  bool
)

func TestClassifyKinds(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  types.Kind
	}{
		{"int", 42, types.KindNumber},
		{"int8", int8(-3), types.KindNumber},
		{"uint", uint(7), types.KindNumber},
		{"float32", float32(0.5), types.KindNumber},
		{"float64", 0.25, types.KindNumber},
		{"json number", json.Number("3.5"), types.KindNumber},
		{"bool", true, types.KindBoolean},
		{"string", "hello", types.KindString},
		{"action", types.Action(func() {}), types.KindFunction},
		{"plain nullary func", func() {}, types.KindFunction},
		{"file handler", types.FileHandler(func([]types.LoadedFile) {}), types.KindFile},
		{"plain file func", func([]types.LoadedFile) {}, types.KindFile},
		{"float slice", []float64{1, 2, 3}, types.KindNumericArray},
		{"int array", [3]int{1, 2, 3}, types.KindNumericArray},
		{"mixed numeric interface slice", []any{1, 2.5, uint8(3)}, types.KindNumericArray},
		{"named float", namedFloat(0.5), types.KindNumber},
		{"named string", namedMode("fast"), types.KindString},
		{"named bool", namedFlag(true), types.KindBoolean},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Classify("field", tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg.Kind())
			assert.Equal(t, "field", cfg.Base().Key)
		})
	}
}

func TestClassifyDefaults(t *testing.T) {
	cfg, err := Classify("speed", 42)
	require.NoError(t, err)

	want := types.NewNumberConfig()
	want.Key = "speed"
	assert.Equal(t, want, cfg)
	assert.Equal(t, types.NumberStyleSlider, want.Style)
	assert.Equal(t, 0.01, want.Step)
}

func TestClassifyUnsupported(t *testing.T) {
	tests := []struct {
		name     string
		value    any
		wantType string
	}{
		{"nil", nil, "nil"},
		{"empty slice", []float64{}, "[]float64"},
		{"empty int slice", []int{}, "[]int"},
		{"mixed slice", []any{1, "a"}, "[]interface {}"},
		{"string slice", []string{"a"}, "[]string"},
		{"map", map[string]int{"a": 1}, "map[string]int"},
		{"struct", struct{ X int }{1}, "struct { X int }"},
		{"func with other args", func(int) {}, "func(int)"},
		{"func returning value", func() int { return 0 }, "func() int"},
		{"bad json number", json.Number("abc"), "json.Number"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Classify("thing", tt.value)
			var uve *types.UnsupportedValueError
			require.True(t, errors.As(err, &uve), "want UnsupportedValueError, got %v", err)
			assert.Equal(t, "thing", uve.Key)
			assert.Equal(t, tt.wantType, uve.Type)
			assert.Contains(t, err.Error(), `"thing"`)
		})
	}
}

func TestToVector(t *testing.T) {
	got, err := ToVector([]any{1, int64(2), 3.5})
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3.5}, got)

	src := []float64{1, 2}
	got, err = ToVector(src)
	require.NoError(t, err)
	got[0] = 9
	assert.Equal(t, 1.0, src[0], "ToVector must copy")

	_, err = ToVector(5)
	assert.Error(t, err)
}
