package types

// Factory defaults shared by Number and NumericArray parameters. The resolver
// compares against these to decide whether a bound is still unset.
const (
	DefaultMin  = 0.0
	DefaultMax  = 1.0
	DefaultStep = 0.01

	DefaultFunctionButtonText = "Run"
)

// ParamConfig is the fully resolved description of one parameter.
// Every kind is a distinct struct; callers switch on the concrete type.
type ParamConfig interface {
	Kind() Kind
	Base() *BaseConfig
}

// BaseConfig holds the fields every parameter kind carries.
type BaseConfig struct {
	// Key is the source field name. Immutable once assigned.
	Key string `json:"key"`

	// Name is the display label, defaults to Key.
	Name string `json:"name"`

	// LiveUpdates applies UI changes before commit.
	LiveUpdates bool `json:"liveUpdates"`

	// Section groups parameters in the UI; empty means ungrouped.
	Section string `json:"section,omitempty"`

	HoverText      string `json:"hoverText,omitempty"`
	FullWidthInput bool   `json:"fullWidthInput,omitempty"`
}

// Base returns the shared fields of a config.
func (b *BaseConfig) Base() *BaseConfig {
	return b
}

// HasDefaultName reports whether Name is still the unset sentinel (empty or
// equal to the key).
func (b *BaseConfig) HasDefaultName() bool {
	return b.Name == "" || b.Name == b.Key
}

// NumberConfig describes a scalar numeric parameter.
type NumberConfig struct {
	BaseConfig

	Min     float64           `json:"min"`
	Max     float64           `json:"max"`
	Step    float64           `json:"step"`
	Style   NumberStyle       `json:"style"`
	Options *Options[float64] `json:"options,omitempty"`
	Default *float64          `json:"default,omitempty"`
}

// Kind implements ParamConfig.
func (*NumberConfig) Kind() Kind { return KindNumber }

// NewNumberConfig returns the Number factory defaults.
func NewNumberConfig() *NumberConfig {
	return &NumberConfig{
		Min:   DefaultMin,
		Max:   DefaultMax,
		Step:  DefaultStep,
		Style: NumberStyleSlider,
	}
}

// BooleanConfig describes a toggle. Enables and Disables name other
// parameters whose inputs follow this toggle.
type BooleanConfig struct {
	BaseConfig

	Enables  []string `json:"enables,omitempty"`
	Disables []string `json:"disables,omitempty"`
	Default  *bool    `json:"default,omitempty"`
}

// Kind implements ParamConfig.
func (*BooleanConfig) Kind() Kind { return KindBoolean }

// NewBooleanConfig returns the Boolean factory defaults.
func NewBooleanConfig() *BooleanConfig {
	return &BooleanConfig{}
}

// StringConfig describes a text parameter.
type StringConfig struct {
	BaseConfig

	Style   StringStyle      `json:"style"`
	Options *Options[string] `json:"options,omitempty"`
	Default *string          `json:"default,omitempty"`
}

// Kind implements ParamConfig.
func (*StringConfig) Kind() Kind { return KindString }

// NewStringConfig returns the String factory defaults.
func NewStringConfig() *StringConfig {
	return &StringConfig{Style: StringStyleSingleLine}
}

// FunctionConfig describes an action button.
type FunctionConfig struct {
	BaseConfig

	ButtonText string `json:"buttonText"`
}

// Kind implements ParamConfig.
func (*FunctionConfig) Kind() Kind { return KindFunction }

// NewFunctionConfig returns the Function factory defaults.
func NewFunctionConfig() *FunctionConfig {
	return &FunctionConfig{ButtonText: DefaultFunctionButtonText}
}

// FileConfig describes a file picker. When Mode is image, Accept must
// mention "image".
type FileConfig struct {
	BaseConfig

	Accept   string   `json:"accept"`
	Multiple bool     `json:"multiple"`
	Mode     FileMode `json:"mode"`
}

// Kind implements ParamConfig.
func (*FileConfig) Kind() Kind { return KindFile }

// NewFileConfig returns the File factory defaults.
func NewFileConfig() *FileConfig {
	return &FileConfig{Mode: FileModeText}
}

// NumericArrayConfig describes a vector parameter. Min, Max and Step apply to
// each component. Colour styles require exactly three components.
type NumericArrayConfig struct {
	BaseConfig

	Min     float64             `json:"min"`
	Max     float64             `json:"max"`
	Step    float64             `json:"step"`
	Style   NumericArrayStyle   `json:"style"`
	Options *Options[[]float64] `json:"options,omitempty"`
	Default []float64           `json:"default,omitempty"`
}

// Kind implements ParamConfig.
func (*NumericArrayConfig) Kind() Kind { return KindNumericArray }

// NewNumericArrayConfig returns the NumericArray factory defaults.
func NewNumericArrayConfig() *NumericArrayConfig {
	return &NumericArrayConfig{
		Min:   DefaultMin,
		Max:   DefaultMax,
		Step:  DefaultStep,
		Style: NumericArrayStyleCombo,
	}
}

// Clone returns a deep copy of cfg.
func Clone(cfg ParamConfig) ParamConfig {
	switch c := cfg.(type) {
	case *NumberConfig:
		out := *c
		out.Options = cloneOptions(c.Options)
		if c.Default != nil {
			d := *c.Default
			out.Default = &d
		}
		return &out
	case *BooleanConfig:
		out := *c
		out.Enables = cloneSlice(c.Enables)
		out.Disables = cloneSlice(c.Disables)
		if c.Default != nil {
			d := *c.Default
			out.Default = &d
		}
		return &out
	case *StringConfig:
		out := *c
		out.Options = cloneOptions(c.Options)
		if c.Default != nil {
			d := *c.Default
			out.Default = &d
		}
		return &out
	case *FunctionConfig:
		out := *c
		return &out
	case *FileConfig:
		out := *c
		return &out
	case *NumericArrayConfig:
		out := *c
		out.Default = cloneSlice(c.Default)
		if c.Options != nil {
			opts := cloneOptions(c.Options)
			for i, v := range opts.List {
				opts.List[i] = cloneSlice(v)
			}
			for name, v := range opts.Named {
				opts.Named[name] = cloneSlice(v)
			}
			out.Options = opts
		}
		return &out
	default:
		return cfg
	}
}

func cloneSlice[T any](s []T) []T {
	if s == nil {
		return nil
	}
	out := make([]T, len(s))
	copy(out, s)
	return out
}

func cloneOptions[T any](o *Options[T]) *Options[T] {
	if o == nil {
		return nil
	}
	out := &Options[T]{List: cloneSlice(o.List), Names: cloneSlice(o.Names)}
	if o.Named != nil {
		out.Named = make(map[string]T, len(o.Named))
		for k, v := range o.Named {
			out.Named[k] = v
		}
	}
	return out
}
