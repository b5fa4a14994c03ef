// Package inference derives parameter configs from project fields. A config
// is built from the field's value, its trailing annotation and any explicit
// overrides, in that order of increasing precedence.
package inference

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"

	"github.com/aledsdavies/sketchparams/core/types"
	"github.com/aledsdavies/sketchparams/internal/invariant"
	"github.com/aledsdavies/sketchparams/runtime/lexer"
)

// ConfigFrom builds the config for one field. override is the field's raw
// JSON override object and may be nil.
//
// Steps run in a fixed order, each able to replace what the previous wrote:
// classify the value, apply the annotation, default the name to the key, take
// the project liveUpdates default, apply typed then JSON overrides. The
// structural checks run last against the merged result.
func ConfigFrom(field types.Field, override json.RawMessage, opts Options) (types.ParamConfig, error) {
	return configFrom(field, override, opts, nil)
}

// configFrom is ConfigFrom with a hook that runs after the annotation is
// applied and before overrides.
func configFrom(field types.Field, override json.RawMessage, opts Options, afterResolve func(types.ParamConfig)) (types.ParamConfig, error) {
	if field.Key == "" {
		return nil, &types.InvalidKeyError{Key: field.Key, Reason: "key must not be empty"}
	}

	cfg, err := Classify(field.Key, field.Value)
	if err != nil {
		return nil, err
	}

	log := opts.logger().With("key", field.Key, "kind", string(cfg.Kind()))

	var sample []float64
	if cfg.Kind() == types.KindNumericArray {
		sample, err = ToVector(field.Value)
		invariant.Invariant(err == nil, "classified %q as numericArray but value is not a vector: %v", field.Key, err)
	}

	in := lexer.IntentionsFrom(field.Annotation)
	for _, tok := range in.Dropped {
		log.Debug("annotation token dropped", "token", tok)
	}

	cfg, inferred := resolve(cfg, opts.Mode, in, sample)
	if inferred != nil {
		adoptDefault(cfg, inferred, sample, log)
	}
	if afterResolve != nil {
		afterResolve(cfg)
	}

	base := cfg.Base()
	if base.HasDefaultName() {
		base.Name = base.Key
	}
	base.LiveUpdates = opts.LiveUpdates

	for _, ov := range field.Overrides {
		if ov == nil {
			continue
		}
		if k := ov.Kind(); k != types.KindAny && k != cfg.Kind() {
			return nil, &types.InvalidOverrideError{
				Key:    field.Key,
				Reason: fmt.Sprintf("%s override applied to a %s parameter", k, cfg.Kind()),
			}
		}
		if err := ov.Apply(cfg); err != nil {
			return nil, err
		}
	}

	if err := types.ApplyJSON(cfg, override, opts.validator()); err != nil {
		return nil, err
	}
	invariant.Invariant(cfg.Base().Key == field.Key, "key changed from %q to %q during overrides", field.Key, cfg.Base().Key)

	if err := validate(cfg, field.Value); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ConfigsFrom builds configs for fields in declaration order. overrides maps
// field keys to raw JSON override objects. The first failing field aborts the
// whole list.
func ConfigsFrom(fields []types.Field, overrides map[string]json.RawMessage, opts Options) ([]types.ParamConfig, error) {
	return configsFrom(fields, overrides, opts, nil)
}

func configsFrom(fields []types.Field, overrides map[string]json.RawMessage, opts Options, afterResolve func(types.ParamConfig)) ([]types.ParamConfig, error) {
	log := opts.logger()
	seen := make(map[string]bool, len(fields))
	params := make([]types.ParamConfig, 0, len(fields))

	for _, field := range fields {
		if seen[field.Key] {
			return nil, &types.InvalidKeyError{Key: field.Key, Reason: "duplicate key"}
		}
		seen[field.Key] = true

		cfg, err := configFrom(field, overrides[field.Key], opts, afterResolve)
		if err != nil {
			return nil, err
		}
		params = append(params, cfg)
	}

	var unused []string
	for key := range overrides {
		if !seen[key] {
			unused = append(unused, key)
		}
	}
	sort.Strings(unused)
	for _, key := range unused {
		log.Warn("override names no field", "key", key)
	}

	for _, p := range params {
		b, ok := p.(*types.BooleanConfig)
		if !ok {
			continue
		}
		for _, target := range append(append([]string(nil), b.Enables...), b.Disables...) {
			if !seen[target] {
				log.Warn("toggle target names no field", "key", b.Key, "target", target)
			}
		}
	}

	return params, nil
}

// adoptDefault stores an annotation-inferred default when it fits the value.
// Annotations never fail a field, so a mismatch is only logged.
func adoptDefault(cfg types.ParamConfig, inferred any, sample []float64, log *slog.Logger) {
	switch c := cfg.(type) {
	case *types.NumberConfig:
		if v, ok := inferred.(float64); ok {
			c.Default = &v
		}
	case *types.BooleanConfig:
		if v, ok := inferred.(bool); ok {
			c.Default = &v
		}
	case *types.NumericArrayConfig:
		v, ok := inferred.([]float64)
		if !ok {
			return
		}
		if len(v) != len(sample) {
			log.Debug("inferred default ignored", "components", len(v), "want", len(sample))
			return
		}
		c.Default = v
	}
}
