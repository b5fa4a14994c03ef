package types

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

// Options is a choice list for a parameter: either a plain list of values or
// an ordered set of labelled values. JSON objects keep their key order.
type Options[T any] struct {
	List  []T
	Names []string
	Named map[string]T
}

// OptionList builds list-style options.
func OptionList[T any](values ...T) *Options[T] {
	return &Options[T]{List: values}
}

// NamedOption is a label/value pair for NamedOptions.
type NamedOption[T any] struct {
	Name  string
	Value T
}

// NamedOptions builds labelled options in the given order. A repeated label
// keeps its first position and its last value.
func NamedOptions[T any](pairs ...NamedOption[T]) *Options[T] {
	o := &Options[T]{Named: make(map[string]T, len(pairs))}
	for _, p := range pairs {
		o.set(p.Name, p.Value)
	}
	return o
}

// IsNamed reports whether the options carry labels.
func (o *Options[T]) IsNamed() bool {
	return o != nil && o.Named != nil
}

// Len returns the number of choices.
func (o *Options[T]) Len() int {
	if o == nil {
		return 0
	}
	if o.IsNamed() {
		return len(o.Names)
	}
	return len(o.List)
}

// Values returns the choices in order, dropping labels.
func (o *Options[T]) Values() []T {
	if o == nil {
		return nil
	}
	if !o.IsNamed() {
		return o.List
	}
	out := make([]T, 0, o.Len())
	for _, name := range o.Names {
		out = append(out, o.Named[name])
	}
	return out
}

func (o *Options[T]) set(name string, v T) {
	if _, seen := o.Named[name]; !seen {
		o.Names = append(o.Names, name)
	}
	o.Named[name] = v
}

// MarshalJSON writes a list as an array and labelled options as an object in
// label order.
func (o Options[T]) MarshalJSON() ([]byte, error) {
	if !o.IsNamed() {
		if o.List == nil {
			return []byte("[]"), nil
		}
		return json.Marshal(o.List)
	}

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range o.Names {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(o.Named[name])
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON replaces the options entirely with the decoded value.
func (o *Options[T]) UnmarshalJSON(data []byte) error {
	*o = Options[T]{}

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return fmt.Errorf("options: empty input")
	}

	switch trimmed[0] {
	case '[':
		return json.Unmarshal(trimmed, &o.List)
	case '{':
		dec := json.NewDecoder(bytes.NewReader(trimmed))
		if _, err := dec.Token(); err != nil {
			return err
		}
		o.Named = make(map[string]T)
		for dec.More() {
			tok, err := dec.Token()
			if err != nil {
				return err
			}
			name, ok := tok.(string)
			if !ok {
				return fmt.Errorf("options: expected label, got %v", tok)
			}
			var v T
			if err := dec.Decode(&v); err != nil {
				return fmt.Errorf("options: label %q: %w", name, err)
			}
			o.set(name, v)
		}
		_, err := dec.Token()
		return err
	default:
		return fmt.Errorf("options: expected array or object, got %q", trimmed[:1])
	}
}

// optionsWire is the CBOR shape. CBOR maps are key-sorted in canonical form,
// so labels travel as a parallel array to keep their order.
type optionsWire[T any] struct {
	List   []T      `cbor:"1,keyasint,omitempty"`
	Names  []string `cbor:"2,keyasint,omitempty"`
	Values []T      `cbor:"3,keyasint,omitempty"`
	Named  bool     `cbor:"4,keyasint,omitempty"`
}

// MarshalCBOR implements cbor.Marshaler.
func (o Options[T]) MarshalCBOR() ([]byte, error) {
	w := optionsWire[T]{List: o.List}
	if o.IsNamed() {
		w.List = nil
		w.Named = true
		w.Names = o.Names
		w.Values = o.Values()
	}
	return cbor.Marshal(w)
}

// UnmarshalCBOR implements cbor.Unmarshaler.
func (o *Options[T]) UnmarshalCBOR(data []byte) error {
	var w optionsWire[T]
	if err := cbor.Unmarshal(data, &w); err != nil {
		return err
	}
	*o = Options[T]{List: w.List}
	if !w.Named {
		return nil
	}
	if len(w.Names) != len(w.Values) {
		return fmt.Errorf("options: %d labels for %d values", len(w.Names), len(w.Values))
	}
	o.List = nil
	o.Named = make(map[string]T, len(w.Names))
	for i, name := range w.Names {
		o.set(name, w.Values[i])
	}
	return nil
}
