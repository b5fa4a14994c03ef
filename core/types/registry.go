package types

import (
	"reflect"
	"strings"
	"sync"
)

// Registry maps each parameter kind to the constructor of its default config.
type Registry struct {
	mu    sync.RWMutex
	kinds map[Kind]registration
}

type registration struct {
	newConfig func() ParamConfig
	fields    []string
}

// NewRegistry creates an empty kind registry
func NewRegistry() *Registry {
	return &Registry{
		kinds: make(map[Kind]registration),
	}
}

// Register adds a kind with its default-config constructor. The recognised
// field names are read from the config's JSON tags once, here.
func (r *Registry) Register(kind Kind, newConfig func() ParamConfig) {
	if kind == "" || newConfig == nil {
		return
	}
	fields := jsonFieldNames(reflect.TypeOf(newConfig()))

	r.mu.Lock()
	defer r.mu.Unlock()
	r.kinds[kind] = registration{newConfig: newConfig, fields: fields}
}

// IsRegistered checks if a kind is registered
func (r *Registry) IsRegistered(kind Kind) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.kinds[kind]
	return ok
}

// New returns a fresh default config for kind.
func (r *Registry) New(kind Kind) (ParamConfig, bool) {
	r.mu.RLock()
	reg, ok := r.kinds[kind]
	r.mu.RUnlock()
	if !ok {
		return nil, false
	}
	return reg.newConfig(), true
}

// Fields returns the JSON field names of kind's config, in struct order.
func (r *Registry) Fields(kind Kind) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	reg, ok := r.kinds[kind]
	if !ok {
		return nil
	}
	out := make([]string, len(reg.fields))
	copy(out, reg.fields)
	return out
}

// jsonFieldNames walks a struct (following embedded structs) and collects
// the names encoding/json would use.
func jsonFieldNames(t reflect.Type) []string {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	var names []string
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.Anonymous && f.Type.Kind() == reflect.Struct {
			names = append(names, jsonFieldNames(f.Type)...)
			continue
		}
		if !f.IsExported() {
			continue
		}
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			continue
		}
		if name == "" {
			name = f.Name
		}
		names = append(names, name)
	}
	return names
}

// Global registry instance
var globalRegistry = NewRegistry()

// Global returns the global kind registry
func Global() *Registry {
	return globalRegistry
}

func init() {
	globalRegistry.Register(KindNumber, func() ParamConfig { return NewNumberConfig() })
	globalRegistry.Register(KindBoolean, func() ParamConfig { return NewBooleanConfig() })
	globalRegistry.Register(KindString, func() ParamConfig { return NewStringConfig() })
	globalRegistry.Register(KindFunction, func() ParamConfig { return NewFunctionConfig() })
	globalRegistry.Register(KindFile, func() ParamConfig { return NewFileConfig() })
	globalRegistry.Register(KindNumericArray, func() ParamConfig { return NewNumericArrayConfig() })
}
