package project

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aledsdavies/sketchparams/core/types"
	"github.com/aledsdavies/sketchparams/runtime/inference"
)

func writeFiles(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return dir
}

func TestCheckFormat(t *testing.T) {
	tests := []struct {
		format string
		ok     bool
	}{
		{"v1", true},
		{"1", true},
		{"1.2.0", true},
		{"v1.0.0-beta", true},
		{"v2", false},
		{"0.9.0", false},
		{"one", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			err := checkFormat(tt.format)
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestParseReportsEveryProblem(t *testing.T) {
	_, err := Parse([]byte(`
format: v2
fields:
  - key: a
    value: 1
  - key: a
    value: 2
  - key: run
    callable: action
    value: 3
  - key: pick
    callable: picker
  - key: empty
  - value: 4
`))
	require.Error(t, err)

	var errs *types.ConfigErrors
	require.True(t, errors.As(err, &errs), "want ConfigErrors, got %T", err)
	assert.Len(t, errs.Errors, 6)

	var ke *types.InvalidKeyError
	assert.True(t, errors.As(err, &ke))
	var ve *types.UnsupportedValueError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "empty", ve.Key)
}

func TestParseRejectsFieldsInShaderProjects(t *testing.T) {
	_, err := Parse([]byte(`
format: v1
shader: a.frag
fields:
  - key: x
    value: 1
`))
	assert.ErrorContains(t, err, "must not declare fields")
}

func TestParseMalformedYAML(t *testing.T) {
	_, err := Parse([]byte("format: [v1"))
	assert.ErrorContains(t, err, "parsing descriptor")
}

const sketchSource = `export default class Spiral {
    speed = 42 // "Speed", 0 to 100, step 5
    tint = [0.2, 0.4, 0.6] // color
    title = "Spiral" // multi
}
`

func TestLoadAndResolve(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"project.yaml": `
format: "1.0.0"
name: Spiral
liveUpdates: true
source: src/sketch.ts
params: params.json
fields:
  - key: speed
    value: 42
  - key: tint
    value: [0.2, 0.4, 0.6]
    section: Colour
  - key: title
    value: Spiral
    annotation: '"Title"'
  - key: reset
    callable: action
    hoverText: Start over
  - key: photo
    callable: file
`,
		"src/sketch.ts": sketchSource,
		"params.json":   `{"speed": {"max": 200}, "photo": {"mode": "image"}}`,
	})

	p, err := Load(filepath.Join(dir, "project.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "Spiral", p.Name)

	fields := p.ParamFields()
	require.Len(t, fields, 5)
	assert.Equal(t, `"Speed", 0 to 100, step 5`, fields[0].Annotation, "annotation from source")
	assert.Equal(t, `"Title"`, fields[2].Annotation, "descriptor annotation beats source")
	assert.Len(t, fields[1].Overrides, 1)
	assert.IsType(t, types.Action(nil), fields[3].Value)
	assert.IsType(t, types.FileHandler(nil), fields[4].Value)

	overrides, err := p.Overrides()
	require.NoError(t, err)

	params, err := p.Resolve(overrides, inference.DefaultOptions())
	require.NoError(t, err)
	require.Len(t, params, 5)

	speed := params[0].(*types.NumberConfig)
	assert.Equal(t, "Speed", speed.Name)
	assert.Equal(t, 200.0, speed.Max, "JSON override beats annotation")
	assert.Equal(t, 5.0, speed.Step)
	assert.True(t, speed.LiveUpdates)

	tint := params[1].(*types.NumericArrayConfig)
	assert.Equal(t, types.NumericArrayStyleUnitColor, tint.Style)
	assert.Equal(t, "Colour", tint.Section)

	title := params[2].(*types.StringConfig)
	assert.Equal(t, "Title", title.Name)
	assert.Equal(t, types.StringStyleSingleLine, title.Style, "source comment ignored when the descriptor annotates")

	assert.Equal(t, "Start over", params[3].Base().HoverText)

	photo := params[4].(*types.FileConfig)
	assert.Equal(t, types.FileModeImage, photo.Mode)
	assert.Equal(t, "image/*", photo.Accept)
}

func TestLoadShaderProject(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"shader.yaml": "format: v1\nshader: glow.frag\n",
		"glow.frag":   "uniform vec3 uColor; // #ff0000\nuniform float uGlow; // 0.5\n",
	})

	p, err := Load(filepath.Join(dir, "shader.yaml"))
	require.NoError(t, err)

	params, err := p.Resolve(nil, inference.DefaultOptions())
	require.NoError(t, err)
	require.Len(t, params, 2)

	color := params[0].(*types.NumericArrayConfig)
	assert.Equal(t, []float64{1, 0, 0}, color.Default)
	require.NotNil(t, params[1].(*types.NumberConfig).Default)
	assert.Equal(t, 0.5, *params[1].(*types.NumberConfig).Default)
}

func TestLoadMissingFiles(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorContains(t, err, "reading descriptor")

	dir := writeFiles(t, map[string]string{"p.yaml": "format: v1\nsource: gone.ts\n"})
	_, err = Load(filepath.Join(dir, "p.yaml"))
	assert.ErrorContains(t, err, "reading source gone.ts")
}

func TestLoadOverrides(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"params.json": `{"speed": {"min": -1, "options": {"b": 2, "a": 1}}}`,
		"params.yaml": "speed:\n  min: -1\n  section: Motion\n",
		"broken.json": `{"speed": `,
	})

	got, err := LoadOverrides(filepath.Join(dir, "params.json"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"min": -1, "options": {"b": 2, "a": 1}}`, string(got["speed"]))
	assert.Contains(t, string(got["speed"]), `{"b": 2, "a": 1}`, "raw JSON keeps option order")

	got, err = LoadOverrides(filepath.Join(dir, "params.yaml"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"min": -1, "section": "Motion"}`, string(got["speed"]))

	_, err = LoadOverrides(filepath.Join(dir, "broken.json"))
	assert.Error(t, err)
}

func TestOverridesWithoutParamsFile(t *testing.T) {
	p := &Project{}
	got, err := p.Overrides()
	require.NoError(t, err)
	assert.Nil(t, got)
}
