// Package project loads project descriptors: YAML files listing a project's
// fields, where to find its annotated source, and its override file.
package project

import (
	"fmt"
	"strings"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/aledsdavies/sketchparams/core/types"
)

// SupportedMajor is the descriptor format major version this loader reads.
const SupportedMajor = "v1"

// Callable values for FieldSpec.Callable.
const (
	CallableAction = "action"
	CallableFile   = "file"
)

// Descriptor is the on-disk description of a project.
type Descriptor struct {
	// Format is the descriptor format version, e.g. "v1" or "1.2.0".
	Format string `yaml:"format"`

	// Name is the project display name.
	Name string `yaml:"name"`

	// LiveUpdates is the default liveUpdates for every parameter.
	LiveUpdates bool `yaml:"liveUpdates"`

	// Source is a path, relative to the descriptor, of source text whose
	// trailing field comments are used as annotations.
	Source string `yaml:"source,omitempty"`

	// Shader is a path to shader source. Shader projects take their
	// parameters from uniforms and declare no fields.
	Shader string `yaml:"shader,omitempty"`

	// Params is a path to the JSON or YAML override file.
	Params string `yaml:"params,omitempty"`

	Fields []FieldSpec `yaml:"fields"`
}

// FieldSpec is one declared project field.
type FieldSpec struct {
	Key string `yaml:"key"`

	// Value is the field's current value. Leave empty for callables.
	Value any `yaml:"value"`

	// Callable is "action" for a button or "file" for a file picker.
	Callable string `yaml:"callable,omitempty"`

	// Annotation replaces the comment found in the source file.
	Annotation string `yaml:"annotation,omitempty"`

	Section   string `yaml:"section,omitempty"`
	HoverText string `yaml:"hoverText,omitempty"`
}

// Parse decodes and validates a descriptor.
func Parse(data []byte) (*Descriptor, error) {
	var d Descriptor
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("parsing descriptor: %w", err)
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return &d, nil
}

// Validate reports every problem in the descriptor at once.
func (d *Descriptor) Validate() error {
	var errs types.ConfigErrors

	errs.Add(checkFormat(d.Format))

	if d.Shader != "" && len(d.Fields) > 0 {
		errs.Addf("shader projects take parameters from uniforms and must not declare fields")
	}

	seen := make(map[string]bool, len(d.Fields))
	for i, f := range d.Fields {
		if f.Key == "" {
			errs.Add(&types.InvalidKeyError{Key: f.Key, Reason: fmt.Sprintf("field %d has no key", i)})
			continue
		}
		if seen[f.Key] {
			errs.Add(&types.InvalidKeyError{Key: f.Key, Reason: "duplicate key"})
		}
		seen[f.Key] = true

		switch f.Callable {
		case "":
			if f.Value == nil {
				errs.Add(&types.UnsupportedValueError{Key: f.Key, Type: "nil", Reason: "field has neither a value nor a callable"})
			}
		case CallableAction, CallableFile:
			if f.Value != nil {
				errs.Addf("field %q: a callable field must not have a value", f.Key)
			}
		default:
			errs.Addf("field %q: unknown callable %q (want %q or %q)", f.Key, f.Callable, CallableAction, CallableFile)
		}
	}

	return errs.Err()
}

// checkFormat accepts any v1.x.y version, with or without the v prefix.
func checkFormat(format string) error {
	if format == "" {
		return fmt.Errorf("format is required (e.g. %q)", SupportedMajor)
	}
	v := format
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	if !semver.IsValid(v) {
		return fmt.Errorf("format %q is not a semantic version", format)
	}
	if major := semver.Major(v); major != SupportedMajor {
		return fmt.Errorf("format %s is not supported (want %s.x)", semver.Canonical(v), SupportedMajor)
	}
	return nil
}
