package inference

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/aledsdavies/sketchparams/core/types"
	"github.com/aledsdavies/sketchparams/runtime/parser"
)

// ShaderConfigs builds configs for the uniforms declared in a shader source.
// Annotation literals become defaults; opts.Mode is ignored. Uniforms with no
// parameter mapping (samplers, matrices, bool vectors) are skipped.
func ShaderConfigs(src string, overrides map[string]json.RawMessage, opts Options) ([]types.ParamConfig, error) {
	opts.Mode = ModeShader
	log := opts.logger()

	var fields []types.Field
	integral := make(map[string]bool)
	for _, u := range parser.Uniforms(src) {
		value, isInt, ok := uniformValue(u.Type)
		if !ok {
			log.Debug("uniform skipped", "key", u.Name, "type", u.Type)
			continue
		}
		if isInt {
			integral[u.Name] = true
		}
		fields = append(fields, types.Field{Key: u.Name, Value: value, Annotation: u.Annotation})
	}

	return configsFrom(fields, overrides, opts, func(cfg types.ParamConfig) {
		if !integral[cfg.Base().Key] {
			return
		}
		switch c := cfg.(type) {
		case *types.NumberConfig:
			if c.Step == types.DefaultStep {
				c.Step = 1
			}
		case *types.NumericArrayConfig:
			if c.Step == types.DefaultStep {
				c.Step = 1
			}
		}
	})
}

// uniformValue returns the zero value standing in for a uniform of the
// given GLSL type, and whether its components are integers.
func uniformValue(glslType string) (value any, isInt bool, ok bool) {
	switch glslType {
	case "float":
		return 0.0, false, true
	case "int", "uint":
		return 0, true, true
	case "bool":
		return false, false, true
	}

	for _, prefix := range []string{"vec", "ivec", "uvec"} {
		rest, found := strings.CutPrefix(glslType, prefix)
		if !found {
			continue
		}
		n, err := strconv.Atoi(rest)
		if err != nil || n < 2 || n > 4 {
			return nil, false, false
		}
		return make([]float64, n), prefix != "vec", true
	}
	return nil, false, false
}
