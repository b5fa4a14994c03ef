package override

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/aledsdavies/sketchparams/core/types"
)

func apply(t *testing.T, ov types.Override, cfg types.ParamConfig) types.ParamConfig {
	t.Helper()
	if err := ov.Apply(cfg); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	return cfg
}

// TestNumber_AllFields tests every Number edit
func TestNumber_AllFields(t *testing.T) {
	ov := Number().
		Name("Speed").
		Section("Motion").
		HoverText("units per frame").
		LiveUpdates(true).
		FullWidthInput(true).
		Range(0, 100).
		Step(5).
		Style(types.NumberStyleCombo).
		NamedOptions(
			types.NamedOption[float64]{Name: "slow", Value: 1},
			types.NamedOption[float64]{Name: "fast", Value: 50},
		).
		Default(10).
		Build()

	if ov.Kind() != types.KindNumber {
		t.Errorf("expected kind number, got %q", ov.Kind())
	}

	cfg := types.NewNumberConfig()
	cfg.Key = "speed"
	apply(t, ov, cfg)

	def := 10.0
	want := &types.NumberConfig{
		BaseConfig: types.BaseConfig{
			Key:            "speed",
			Name:           "Speed",
			LiveUpdates:    true,
			Section:        "Motion",
			HoverText:      "units per frame",
			FullWidthInput: true,
		},
		Min:   0,
		Max:   100,
		Step:  5,
		Style: types.NumberStyleCombo,
		Options: types.NamedOptions(
			types.NamedOption[float64]{Name: "slow", Value: 1},
			types.NamedOption[float64]{Name: "fast", Value: 50},
		),
		Default: &def,
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("Number override mismatch (-want +got):\n%s", diff)
	}
}

// TestEditsApplyInOrder tests that a later edit of the same field wins
func TestEditsApplyInOrder(t *testing.T) {
	ov := String().Style(types.StringStyleColor).Style(types.StringStyleMultiLine).Build()

	cfg := apply(t, ov, types.NewStringConfig()).(*types.StringConfig)
	if cfg.Style != types.StringStyleMultiLine {
		t.Errorf("expected multiLine, got %q", cfg.Style)
	}
}

// TestBuiltOverridesDoNotShareState tests that two configs never alias
// slices or pointers through one override
func TestBuiltOverridesDoNotShareState(t *testing.T) {
	ov := NumericArray().Default(1, 2, 3).Options([]float64{0, 0, 0}).Build()

	a := apply(t, ov, types.NewNumericArrayConfig()).(*types.NumericArrayConfig)
	b := apply(t, ov, types.NewNumericArrayConfig()).(*types.NumericArrayConfig)

	a.Default[0] = 99
	a.Options.List[0][0] = 99
	if b.Default[0] != 1 || b.Options.List[0][0] != 0 {
		t.Errorf("configs share state: default %v options %v", b.Default, b.Options.List)
	}

	nb := Number().Default(4).Build()
	n1 := apply(t, nb, types.NewNumberConfig()).(*types.NumberConfig)
	n2 := apply(t, nb, types.NewNumberConfig()).(*types.NumberConfig)
	if n1.Default == n2.Default {
		t.Error("number defaults share a pointer")
	}
}

// TestBuilderEditsAfterBuild tests that Build snapshots the edit list
func TestBuilderEditsAfterBuild(t *testing.T) {
	b := Boolean().Enables("a")
	ov := b.Build()
	b.Disables("z")

	cfg := apply(t, ov, types.NewBooleanConfig()).(*types.BooleanConfig)
	if cfg.Disables != nil {
		t.Errorf("edit after Build leaked into override: %v", cfg.Disables)
	}
}

func TestOtherKinds(t *testing.T) {
	tests := []struct {
		name string
		ov   types.Override
		cfg  types.ParamConfig
		want types.ParamConfig
	}{
		{
			name: "boolean",
			ov:   Boolean().Enables("a", "b").Disables("c").Default(true).Build(),
			cfg:  types.NewBooleanConfig(),
			want: func() types.ParamConfig {
				on := true
				return &types.BooleanConfig{Enables: []string{"a", "b"}, Disables: []string{"c"}, Default: &on}
			}(),
		},
		{
			name: "string",
			ov:   String().Style(types.StringStyleOptions).Options("x", "y").Default("x").Build(),
			cfg:  types.NewStringConfig(),
			want: func() types.ParamConfig {
				d := "x"
				return &types.StringConfig{Style: types.StringStyleOptions, Options: types.OptionList("x", "y"), Default: &d}
			}(),
		},
		{
			name: "function",
			ov:   Function().ButtonText("Go").Build(),
			cfg:  types.NewFunctionConfig(),
			want: &types.FunctionConfig{ButtonText: "Go"},
		},
		{
			name: "file",
			ov:   File().Accept("image/png").Multiple(true).Mode(types.FileModeImage).Build(),
			cfg:  types.NewFileConfig(),
			want: &types.FileConfig{Accept: "image/png", Multiple: true, Mode: types.FileModeImage},
		},
		{
			name: "numeric array",
			ov:   NumericArray().Range(-1, 1).Step(0.1).Style(types.NumericArrayStyleSlider).Build(),
			cfg:  types.NewNumericArrayConfig(),
			want: &types.NumericArrayConfig{Min: -1, Max: 1, Step: 0.1, Style: types.NumericArrayStyleSlider},
		},
		{
			name: "common on a file",
			ov:   Common().Name("Upload").Section("Input").Build(),
			cfg:  types.NewFileConfig(),
			want: &types.FileConfig{BaseConfig: types.BaseConfig{Name: "Upload", Section: "Input"}, Mode: types.FileModeText},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := apply(t, tt.ov, tt.cfg)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("override mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestKindMismatch(t *testing.T) {
	cfg := types.NewStringConfig()
	cfg.Key = "title"

	err := Number().Step(1).Build().Apply(cfg)

	var oe *types.InvalidOverrideError
	if !errors.As(err, &oe) {
		t.Fatalf("expected InvalidOverrideError, got %v", err)
	}
	if oe.Key != "title" {
		t.Errorf("expected key title, got %q", oe.Key)
	}
	if cfg.Style != types.StringStyleSingleLine {
		t.Error("mismatched override must not edit the config")
	}
}

func TestCommonAppliesToEveryKind(t *testing.T) {
	ov := Common().HoverText("tip").Build()
	if ov.Kind() != types.KindAny {
		t.Fatalf("expected KindAny, got %q", ov.Kind())
	}

	for _, kind := range types.Kinds() {
		cfg, _ := types.Global().New(kind)
		apply(t, ov, cfg)
		if cfg.Base().HoverText != "tip" {
			t.Errorf("%s: hover text not applied", kind)
		}
	}
}

// TestBuild_Panics tests that invalid builder input panics at Build
func TestBuild_Panics(t *testing.T) {
	tests := []struct {
		name  string
		build func()
		want  string
	}{
		{"zero step", func() { Number().Step(0).Build() }, "invalid number override: step must be positive, got 0"},
		{"negative array step", func() { NumericArray().Step(-1).Build() }, "invalid numericArray override: step must be positive, got -1"},
		{"empty button text", func() { Function().ButtonText("").Build() }, "invalid function override: button text must not be empty"},
		{"empty default vector", func() { NumericArray().Default().Build() }, "invalid numericArray override: default must have at least one component"},
		{"empty option vector", func() { NumericArray().Options([]float64{1}, nil).Build() }, "invalid numericArray override: option 1 is empty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				r := recover()
				if r == nil {
					t.Fatal("expected panic")
				}
				if r != tt.want {
					t.Errorf("panic = %q, want %q", r, tt.want)
				}
			}()
			tt.build()
		})
	}
}
