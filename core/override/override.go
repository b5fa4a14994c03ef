// Package override builds typed configuration overrides for code-defined
// projects. Each builder records edits for one parameter kind; the config
// factory applies them after annotations and before JSON overrides.
//
//	override.Number().Name("Speed").Range(0, 100).Step(5).Build()
//
// Build panics on values no config could hold, as these are programmer
// errors in the project definition.
package override

import (
	"fmt"
	"math"

	"github.com/aledsdavies/sketchparams/core/types"
)

// base holds the edits shared by every kind. B is the concrete builder so
// the common methods chain into kind-specific ones.
type base[B any] struct {
	self     B
	kind     types.Kind
	edits    []func(types.ParamConfig)
	problems []string
}

func (b *base[B]) edit(fn func(types.ParamConfig)) B {
	b.edits = append(b.edits, fn)
	return b.self
}

func (b *base[B]) problem(format string, args ...any) {
	b.problems = append(b.problems, fmt.Sprintf(format, args...))
}

// Name sets the display name.
func (b *base[B]) Name(name string) B {
	return b.edit(func(c types.ParamConfig) { c.Base().Name = name })
}

// Section places the parameter in a named UI group.
func (b *base[B]) Section(section string) B {
	return b.edit(func(c types.ParamConfig) { c.Base().Section = section })
}

// HoverText sets the tooltip.
func (b *base[B]) HoverText(text string) B {
	return b.edit(func(c types.ParamConfig) { c.Base().HoverText = text })
}

// LiveUpdates sets whether changes apply during input.
func (b *base[B]) LiveUpdates(live bool) B {
	return b.edit(func(c types.ParamConfig) { c.Base().LiveUpdates = live })
}

// FullWidthInput sets the layout hint.
func (b *base[B]) FullWidthInput(full bool) B {
	return b.edit(func(c types.ParamConfig) { c.Base().FullWidthInput = full })
}

// Build validates the recorded edits and returns the override.
func (b *base[B]) Build() types.Override {
	if len(b.problems) > 0 {
		panic(fmt.Sprintf("invalid %s override: %s", kindLabel(b.kind), b.problems[0]))
	}
	edits := make([]func(types.ParamConfig), len(b.edits))
	copy(edits, b.edits)
	return &kindOverride{kind: b.kind, edits: edits}
}

// kindOverride is the built override. An empty kind applies to any config.
type kindOverride struct {
	kind  types.Kind
	edits []func(types.ParamConfig)
}

// Kind implements types.Override.
func (o *kindOverride) Kind() types.Kind { return o.kind }

// Apply implements types.Override.
func (o *kindOverride) Apply(cfg types.ParamConfig) error {
	if o.kind != types.KindAny && cfg.Kind() != o.kind {
		return &types.InvalidOverrideError{
			Key:    cfg.Base().Key,
			Reason: fmt.Sprintf("%s override applied to a %s parameter", kindLabel(o.kind), cfg.Kind()),
		}
	}
	for _, edit := range o.edits {
		edit(cfg)
	}
	return nil
}

func kindLabel(kind types.Kind) string {
	if kind == types.KindAny {
		return "common"
	}
	return string(kind)
}

func checkStep(b interface{ problem(string, ...any) }, step float64) {
	if math.IsNaN(step) || step <= 0 {
		b.problem("step must be positive, got %v", step)
	}
}

func checkFinite(b interface{ problem(string, ...any) }, name string, v float64) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		b.problem("%s must be finite, got %v", name, v)
	}
}

// CommonBuilder edits only the fields every kind shares.
type CommonBuilder struct {
	base[*CommonBuilder]
}

// Common starts an override that applies to a parameter of any kind.
func Common() *CommonBuilder {
	b := &CommonBuilder{}
	b.self, b.kind = b, types.KindAny
	return b
}
