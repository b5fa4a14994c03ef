package inference

import (
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/aledsdavies/sketchparams/core/types"
)

// Classify picks the parameter kind for a field value and returns that
// kind's default config with the key assigned.
//
// Callables must be wrapped: types.Action (or a plain func()) becomes a
// Function parameter, types.FileHandler (or func([]types.LoadedFile)) a File
// parameter.
func Classify(key string, value any) (types.ParamConfig, error) {
	var cfg types.ParamConfig

	switch v := value.(type) {
	case nil:
		return nil, &types.UnsupportedValueError{Key: key, Type: "nil", Reason: "a parameter needs a value"}
	case bool:
		cfg = types.NewBooleanConfig()
	case string:
		cfg = types.NewStringConfig()
	case types.Action, func():
		cfg = types.NewFunctionConfig()
	case types.FileHandler, func([]types.LoadedFile):
		cfg = types.NewFileConfig()
	case json.Number:
		if _, err := v.Float64(); err != nil {
			return nil, &types.UnsupportedValueError{Key: key, Type: "json.Number", Reason: err.Error()}
		}
		cfg = types.NewNumberConfig()
	default:
		rv := reflect.ValueOf(value)
		switch {
		case isNumericKind(rv.Kind()):
			cfg = types.NewNumberConfig()
		case rv.Kind() == reflect.Bool:
			cfg = types.NewBooleanConfig()
		case rv.Kind() == reflect.String:
			cfg = types.NewStringConfig()
		case rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array:
			if _, err := ToVector(value); err != nil {
				return nil, &types.UnsupportedValueError{Key: key, Type: typeName(value), Reason: err.Error()}
			}
			cfg = types.NewNumericArrayConfig()
		case rv.Kind() == reflect.Func:
			return nil, &types.UnsupportedValueError{
				Key:    key,
				Type:   typeName(value),
				Reason: "callables must be types.Action or types.FileHandler",
			}
		default:
			return nil, &types.UnsupportedValueError{Key: key, Type: typeName(value)}
		}
	}

	cfg.Base().Key = key
	return cfg, nil
}

// ToFloat converts any Go numeric value (or json.Number) to float64.
func ToFloat(value any) (float64, bool) {
	if n, ok := value.(json.Number); ok {
		f, err := n.Float64()
		return f, err == nil
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	default:
		return 0, false
	}
}

// ToVector converts a slice or array whose elements are all numeric to
// []float64. Empty arrays and non-numeric elements are errors.
func ToVector(value any) ([]float64, error) {
	if v, ok := value.([]float64); ok {
		if len(v) == 0 {
			return nil, fmt.Errorf("empty array")
		}
		out := make([]float64, len(v))
		copy(out, v)
		return out, nil
	}

	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, fmt.Errorf("%s is not an array", typeName(value))
	}
	if rv.Len() == 0 {
		return nil, fmt.Errorf("empty array")
	}

	out := make([]float64, rv.Len())
	for i := range out {
		elem := rv.Index(i).Interface()
		f, ok := ToFloat(elem)
		if !ok {
			return nil, fmt.Errorf("element %d is %s, not a number", i, typeName(elem))
		}
		out[i] = f
	}
	return out, nil
}

func isNumericKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

func typeName(value any) string {
	if value == nil {
		return "nil"
	}
	return fmt.Sprintf("%T", value)
}
