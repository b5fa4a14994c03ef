package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/aledsdavies/sketchparams/core/override"
	"github.com/aledsdavies/sketchparams/core/types"
	"github.com/aledsdavies/sketchparams/runtime/inference"
	"github.com/aledsdavies/sketchparams/runtime/parser"
)

// Project is a loaded descriptor together with the files it references.
type Project struct {
	Descriptor

	// Dir is the directory relative paths are resolved against.
	Dir string

	// Annotations maps field keys to comments read from Source.
	Annotations map[string]string

	// ShaderSource is the contents of Shader, empty for field projects.
	ShaderSource string
}

// Load reads the descriptor at path and the source files it references.
func Load(path string) (*Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading descriptor: %w", err)
	}

	d, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	p := &Project{Descriptor: *d, Dir: filepath.Dir(path)}

	if d.Source != "" {
		src, err := os.ReadFile(p.resolve(d.Source))
		if err != nil {
			return nil, fmt.Errorf("reading source %s: %w", d.Source, err)
		}
		p.Annotations = parser.Annotations(string(src))
	}

	if d.Shader != "" {
		src, err := os.ReadFile(p.resolve(d.Shader))
		if err != nil {
			return nil, fmt.Errorf("reading shader %s: %w", d.Shader, err)
		}
		p.ShaderSource = string(src)
	}

	return p, nil
}

func (p *Project) resolve(rel string) string {
	if filepath.IsAbs(rel) {
		return rel
	}
	return filepath.Join(p.Dir, rel)
}

// ParamFields returns the declared fields in order. A field's own annotation
// beats the comment found in the source file.
func (p *Project) ParamFields() []types.Field {
	fields := make([]types.Field, 0, len(p.Descriptor.Fields))
	for _, fs := range p.Descriptor.Fields {
		field := types.Field{Key: fs.Key, Value: fs.Value, Annotation: fs.Annotation}

		switch fs.Callable {
		case CallableAction:
			field.Value = types.Action(func() {})
		case CallableFile:
			field.Value = types.FileHandler(func([]types.LoadedFile) {})
		}

		if field.Annotation == "" {
			field.Annotation = p.Annotations[fs.Key]
		}

		if fs.Section != "" || fs.HoverText != "" {
			b := override.Common()
			if fs.Section != "" {
				b.Section(fs.Section)
			}
			if fs.HoverText != "" {
				b.HoverText(fs.HoverText)
			}
			field.Overrides = append(field.Overrides, b.Build())
		}

		fields = append(fields, field)
	}
	return fields
}

// Overrides loads the descriptor's params file, if any.
func (p *Project) Overrides() (map[string]json.RawMessage, error) {
	if p.Params == "" {
		return nil, nil
	}
	return LoadOverrides(p.resolve(p.Params))
}

// Resolve builds the parameter configs. The descriptor's liveUpdates
// replaces opts.LiveUpdates.
func (p *Project) Resolve(overrides map[string]json.RawMessage, opts inference.Options) ([]types.ParamConfig, error) {
	opts.LiveUpdates = p.LiveUpdates
	if p.Shader != "" {
		return inference.ShaderConfigs(p.ShaderSource, overrides, opts)
	}
	return inference.ConfigsFrom(p.ParamFields(), overrides, opts)
}

// LoadOverrides reads an override file: an object keyed by parameter, each
// value an override object. Files ending in .yaml or .yml are read as YAML.
// YAML mappings are unordered, so labelled options lose their order there.
func LoadOverrides(path string) (map[string]json.RawMessage, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading overrides: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return overridesFromYAML(data)
	default:
		var out map[string]json.RawMessage
		if err := json.Unmarshal(data, &out); err != nil {
			return nil, fmt.Errorf("parsing overrides %s: %w", path, err)
		}
		return out, nil
	}
}

func overridesFromYAML(data []byte) (map[string]json.RawMessage, error) {
	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing overrides: %w", err)
	}

	out := make(map[string]json.RawMessage, len(doc))
	for key, v := range doc {
		raw, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("override %q: %w", key, err)
		}
		out[key] = raw
	}
	return out, nil
}
