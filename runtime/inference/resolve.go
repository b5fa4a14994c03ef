package inference

import (
	"fmt"

	"github.com/aledsdavies/sketchparams/core/types"
	"github.com/aledsdavies/sketchparams/internal/invariant"
	"github.com/aledsdavies/sketchparams/runtime/lexer"
)

// Mode selects how annotation literals are read.
type Mode int

const (
	// ModeProject reads fields of a project object. The field's own value is
	// authoritative and bare literals are ignored.
	ModeProject Mode = iota

	// ModeShader reads shader uniforms, which have no value at parse time.
	// The first literal of the matching type becomes the default.
	ModeShader
)

// String returns the mode name
func (m Mode) String() string {
	switch m {
	case ModeProject:
		return "project"
	case ModeShader:
		return "shader"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParamWithInference applies an annotation to a copy of cfg and returns the
// copy together with the default value inferred from it, if any. cfg itself
// is not modified.
func ParamWithInference(cfg types.ParamConfig, mode Mode, text string) (types.ParamConfig, any) {
	invariant.Precondition(cfg != nil, "ParamWithInference needs a config")
	return resolve(types.Clone(cfg), mode, lexer.IntentionsFrom(text), nil)
}

// resolve applies in to cfg in place. sample is the field's vector value in
// project mode, nil otherwise.
func resolve(cfg types.ParamConfig, mode Mode, in lexer.Intentions, sample []float64) (types.ParamConfig, any) {
	base := cfg.Base()
	if in.HasName && in.Name != "" && base.HasDefaultName() {
		base.Name = in.Name
	}

	var inferred any
	switch c := cfg.(type) {
	case *types.NumberConfig:
		c.Min, c.Max = applyRange(c.Min, c.Max, in.Range)
		c.Step = applyStep(c.Step, in.Step)
		if mode == ModeShader && len(in.NumberValues) > 0 {
			inferred = in.NumberValues[0]
		}

	case *types.BooleanConfig:
		if mode == ModeShader && len(in.BooleanValues) > 0 {
			inferred = in.BooleanValues[0]
		}

	case *types.NumericArrayConfig:
		c.Min, c.Max = applyRange(c.Min, c.Max, in.Range)
		c.Step = applyStep(c.Step, in.Step)
		if mode == ModeShader && len(in.NumericArrayValues) > 0 {
			sample = in.NumericArrayValues[0]
			inferred = append([]float64(nil), sample...)
		}
	}

	assignMeta(cfg, in.MetaStrings, sample)

	if c, ok := cfg.(*types.NumericArrayConfig); ok && mode == ModeShader && inferred == nil && c.Style.IsColor() {
		for _, meta := range in.MetaStrings {
			if rgb, err := HexToRGB(meta, c.Style); err == nil {
				inferred = rgb
				break
			}
		}
	}

	return cfg, inferred
}

// applyRange takes the annotated range only while both bounds are still the
// factory defaults. A written "0 to 1" is therefore indistinguishable from
// no range at all.
func applyRange(lo, hi float64, r *[2]float64) (float64, float64) {
	if r == nil || lo != types.DefaultMin || hi != types.DefaultMax {
		return lo, hi
	}
	return r[0], r[1]
}

func applyStep(step float64, s *float64) float64 {
	if s == nil || step != types.DefaultStep {
		return step
	}
	return *s
}
