package types

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// Validator validates override objects against each kind's schema
type Validator struct {
	config *ValidationConfig
	cache  *validatorCache
}

// NewValidator creates a new validator with given config
func NewValidator(config *ValidationConfig) *Validator {
	if config == nil {
		config = DefaultValidationConfig()
	}

	var cache *validatorCache
	if config.EnableCache {
		cache = newValidatorCache(config.MaxCacheSize)
	}

	return &Validator{
		config: config,
		cache:  cache,
	}
}

// ValidateOverride checks a raw override object for the parameter key of the
// given kind. Type and enum violations become InvalidOverrideError.
func (v *Validator) ValidateOverride(key string, kind Kind, data []byte) error {
	// Check document size (security)
	if v.config.MaxOverrideSize > 0 && len(data) > v.config.MaxOverrideSize {
		return &InvalidOverrideError{
			Key:    key,
			Reason: fmt.Sprintf("override too large: %d bytes (max: %d)", len(data), v.config.MaxOverrideSize),
		}
	}

	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return &InvalidOverrideError{Key: key, Reason: fmt.Sprintf("malformed JSON: %v", err)}
	}

	validator, err := v.getValidator(kind)
	if err != nil {
		return fmt.Errorf("validator compilation failed: %w", err)
	}

	if err := validator.Validate(doc); err != nil {
		return convertValidationError(key, err)
	}

	return nil
}

// getValidator gets cached validator or compiles new one
func (v *Validator) getValidator(kind Kind) (*jsonschema.Schema, error) {
	if v.cache != nil {
		if validator, ok := v.cache.get(kind); ok {
			return validator, nil
		}
	}

	validator, err := compileSchema(kind)
	if err != nil {
		return nil, err
	}

	if v.cache != nil {
		v.cache.put(kind, validator)
	}

	return validator, nil
}

// compileSchema compiles the override schema for kind
func compileSchema(kind Kind) (*jsonschema.Schema, error) {
	schema, err := OverrideSchema(kind)
	if err != nil {
		return nil, err
	}

	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	compiler.AssertFormat = true

	schemaJSON, err := json.Marshal(schema)
	if err != nil {
		return nil, err
	}

	url := "schema://" + string(kind) + ".json"
	if err := compiler.AddResource(url, strings.NewReader(string(schemaJSON))); err != nil {
		return nil, err
	}

	return compiler.Compile(url)
}

// convertValidationError turns the deepest jsonschema cause into an
// InvalidOverrideError naming the offending field
func convertValidationError(key string, err error) error {
	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return &InvalidOverrideError{Key: key, Reason: err.Error()}
	}

	leaf := ve
	for len(leaf.Causes) > 0 {
		leaf = leaf.Causes[0]
	}

	field := strings.TrimPrefix(leaf.InstanceLocation, "/")
	if i := strings.IndexByte(field, '/'); i >= 0 {
		field = field[:i]
	}
	return &InvalidOverrideError{Key: key, Field: field, Reason: leaf.Message}
}

// validatorCache holds compiled schemas per kind
type validatorCache struct {
	mu      sync.RWMutex
	max     int
	schemas map[Kind]*jsonschema.Schema
}

func newValidatorCache(max int) *validatorCache {
	return &validatorCache{
		max:     max,
		schemas: make(map[Kind]*jsonschema.Schema),
	}
}

func (c *validatorCache) get(kind Kind) (*jsonschema.Schema, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	s, ok := c.schemas[kind]
	return s, ok
}

func (c *validatorCache) put(kind Kind, s *jsonschema.Schema) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.max > 0 && len(c.schemas) >= c.max {
		return
	}
	c.schemas[kind] = s
}
