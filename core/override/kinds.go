package override

import (
	"github.com/aledsdavies/sketchparams/core/types"
)

// NumberBuilder builds Number overrides.
type NumberBuilder struct {
	base[*NumberBuilder]
}

// Number starts a Number override.
func Number() *NumberBuilder {
	b := &NumberBuilder{}
	b.self, b.kind = b, types.KindNumber
	return b
}

func (b *NumberBuilder) number(fn func(*types.NumberConfig)) *NumberBuilder {
	return b.edit(func(c types.ParamConfig) { fn(c.(*types.NumberConfig)) })
}

// Range sets min and max. Inverted ranges are kept as given.
func (b *NumberBuilder) Range(lo, hi float64) *NumberBuilder {
	checkFinite(b, "min", lo)
	checkFinite(b, "max", hi)
	return b.number(func(c *types.NumberConfig) { c.Min, c.Max = lo, hi })
}

// Step sets the increment.
func (b *NumberBuilder) Step(step float64) *NumberBuilder {
	checkStep(b, step)
	return b.number(func(c *types.NumberConfig) { c.Step = step })
}

// Style sets the input style.
func (b *NumberBuilder) Style(style types.NumberStyle) *NumberBuilder {
	return b.number(func(c *types.NumberConfig) { c.Style = style })
}

// Options sets a plain choice list.
func (b *NumberBuilder) Options(values ...float64) *NumberBuilder {
	values = append([]float64(nil), values...)
	return b.number(func(c *types.NumberConfig) { c.Options = types.OptionList(append([]float64(nil), values...)...) })
}

// NamedOptions sets labelled choices in the given order.
func (b *NumberBuilder) NamedOptions(pairs ...types.NamedOption[float64]) *NumberBuilder {
	pairs = append([]types.NamedOption[float64](nil), pairs...)
	return b.number(func(c *types.NumberConfig) { c.Options = types.NamedOptions(pairs...) })
}

// Default sets the default value.
func (b *NumberBuilder) Default(v float64) *NumberBuilder {
	checkFinite(b, "default", v)
	return b.number(func(c *types.NumberConfig) {
		d := v
		c.Default = &d
	})
}

// BooleanBuilder builds Boolean overrides.
type BooleanBuilder struct {
	base[*BooleanBuilder]
}

// Boolean starts a Boolean override.
func Boolean() *BooleanBuilder {
	b := &BooleanBuilder{}
	b.self, b.kind = b, types.KindBoolean
	return b
}

func (b *BooleanBuilder) boolean(fn func(*types.BooleanConfig)) *BooleanBuilder {
	return b.edit(func(c types.ParamConfig) { fn(c.(*types.BooleanConfig)) })
}

// Enables lists the parameters this toggle enables.
func (b *BooleanBuilder) Enables(keys ...string) *BooleanBuilder {
	keys = append([]string(nil), keys...)
	return b.boolean(func(c *types.BooleanConfig) { c.Enables = append([]string(nil), keys...) })
}

// Disables lists the parameters this toggle disables.
func (b *BooleanBuilder) Disables(keys ...string) *BooleanBuilder {
	keys = append([]string(nil), keys...)
	return b.boolean(func(c *types.BooleanConfig) { c.Disables = append([]string(nil), keys...) })
}

// Default sets the default value.
func (b *BooleanBuilder) Default(v bool) *BooleanBuilder {
	return b.boolean(func(c *types.BooleanConfig) {
		d := v
		c.Default = &d
	})
}

// StringBuilder builds String overrides.
type StringBuilder struct {
	base[*StringBuilder]
}

// String starts a String override.
func String() *StringBuilder {
	b := &StringBuilder{}
	b.self, b.kind = b, types.KindString
	return b
}

func (b *StringBuilder) str(fn func(*types.StringConfig)) *StringBuilder {
	return b.edit(func(c types.ParamConfig) { fn(c.(*types.StringConfig)) })
}

// Style sets the input style.
func (b *StringBuilder) Style(style types.StringStyle) *StringBuilder {
	return b.str(func(c *types.StringConfig) { c.Style = style })
}

// Options sets a plain choice list.
func (b *StringBuilder) Options(values ...string) *StringBuilder {
	values = append([]string(nil), values...)
	return b.str(func(c *types.StringConfig) { c.Options = types.OptionList(append([]string(nil), values...)...) })
}

// NamedOptions sets labelled choices in the given order.
func (b *StringBuilder) NamedOptions(pairs ...types.NamedOption[string]) *StringBuilder {
	pairs = append([]types.NamedOption[string](nil), pairs...)
	return b.str(func(c *types.StringConfig) { c.Options = types.NamedOptions(pairs...) })
}

// Default sets the default value.
func (b *StringBuilder) Default(v string) *StringBuilder {
	return b.str(func(c *types.StringConfig) {
		d := v
		c.Default = &d
	})
}

// FunctionBuilder builds Function overrides.
type FunctionBuilder struct {
	base[*FunctionBuilder]
}

// Function starts a Function override.
func Function() *FunctionBuilder {
	b := &FunctionBuilder{}
	b.self, b.kind = b, types.KindFunction
	return b
}

// ButtonText sets the button label.
func (b *FunctionBuilder) ButtonText(text string) *FunctionBuilder {
	if text == "" {
		b.problem("button text must not be empty")
	}
	return b.edit(func(c types.ParamConfig) { c.(*types.FunctionConfig).ButtonText = text })
}

// FileBuilder builds File overrides.
type FileBuilder struct {
	base[*FileBuilder]
}

// File starts a File override.
func File() *FileBuilder {
	b := &FileBuilder{}
	b.self, b.kind = b, types.KindFile
	return b
}

func (b *FileBuilder) file(fn func(*types.FileConfig)) *FileBuilder {
	return b.edit(func(c types.ParamConfig) { fn(c.(*types.FileConfig)) })
}

// Accept sets the picker's MIME/pattern filter.
func (b *FileBuilder) Accept(filter string) *FileBuilder {
	return b.file(func(c *types.FileConfig) { c.Accept = filter })
}

// Multiple allows picking several files.
func (b *FileBuilder) Multiple(multiple bool) *FileBuilder {
	return b.file(func(c *types.FileConfig) { c.Multiple = multiple })
}

// Mode sets how file contents are read.
func (b *FileBuilder) Mode(mode types.FileMode) *FileBuilder {
	return b.file(func(c *types.FileConfig) { c.Mode = mode })
}

// NumericArrayBuilder builds NumericArray overrides.
type NumericArrayBuilder struct {
	base[*NumericArrayBuilder]
}

// NumericArray starts a NumericArray override.
func NumericArray() *NumericArrayBuilder {
	b := &NumericArrayBuilder{}
	b.self, b.kind = b, types.KindNumericArray
	return b
}

func (b *NumericArrayBuilder) array(fn func(*types.NumericArrayConfig)) *NumericArrayBuilder {
	return b.edit(func(c types.ParamConfig) { fn(c.(*types.NumericArrayConfig)) })
}

// Range sets the per-component min and max.
func (b *NumericArrayBuilder) Range(lo, hi float64) *NumericArrayBuilder {
	checkFinite(b, "min", lo)
	checkFinite(b, "max", hi)
	return b.array(func(c *types.NumericArrayConfig) { c.Min, c.Max = lo, hi })
}

// Step sets the per-component increment.
func (b *NumericArrayBuilder) Step(step float64) *NumericArrayBuilder {
	checkStep(b, step)
	return b.array(func(c *types.NumericArrayConfig) { c.Step = step })
}

// Style sets the input style.
func (b *NumericArrayBuilder) Style(style types.NumericArrayStyle) *NumericArrayBuilder {
	return b.array(func(c *types.NumericArrayConfig) { c.Style = style })
}

// Options sets a plain list of vector choices.
func (b *NumericArrayBuilder) Options(values ...[]float64) *NumericArrayBuilder {
	for i, v := range values {
		if len(v) == 0 {
			b.problem("option %d is empty", i)
		}
	}
	values = copyVectors(values)
	return b.array(func(c *types.NumericArrayConfig) { c.Options = types.OptionList(copyVectors(values)...) })
}

// Default sets the default vector.
func (b *NumericArrayBuilder) Default(values ...float64) *NumericArrayBuilder {
	if len(values) == 0 {
		b.problem("default must have at least one component")
	}
	values = append([]float64(nil), values...)
	return b.array(func(c *types.NumericArrayConfig) { c.Default = append([]float64(nil), values...) })
}

func copyVectors(values [][]float64) [][]float64 {
	out := make([][]float64, len(values))
	for i, v := range values {
		out[i] = append([]float64(nil), v...)
	}
	return out
}
