package types

import (
	"errors"
	"fmt"
	"strings"
)

// UnsupportedValueError reports a field value with no parameter mapping.
type UnsupportedValueError struct {
	Key    string // Field the value came from
	Type   string // Runtime type name of the value
	Reason string
}

// Error formats the unsupported value error
func (e *UnsupportedValueError) Error() string {
	msg := fmt.Sprintf("parameter %q: unsupported value of type %s", e.Key, e.Type)
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	return msg
}

// UnsupportedFieldError reports an override naming a field the kind does not have.
type UnsupportedFieldError struct {
	Key        string
	Kind       Kind
	Field      string
	Suggestion string // Closest known field, if any
	Reason     string // Set when the field exists but cannot be overridden
}

// Error formats the unsupported field error
func (e *UnsupportedFieldError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("parameter %q: field %q cannot be overridden: %s", e.Key, e.Field, e.Reason)
	}
	msg := fmt.Sprintf("parameter %q: %s config has no field %q", e.Key, e.Kind, e.Field)
	if e.Suggestion != "" {
		msg += fmt.Sprintf(" (did you mean %q?)", e.Suggestion)
	}
	return msg
}

// InvalidAcceptFilterError reports an image-mode file parameter whose accept
// filter excludes images.
type InvalidAcceptFilterError struct {
	Key    string
	Accept string
}

// Error formats the accept filter error
func (e *InvalidAcceptFilterError) Error() string {
	return fmt.Sprintf("parameter %q: mode %q requires an accept filter containing \"image\", got %q",
		e.Key, FileModeImage, e.Accept)
}

// InvalidColorArrayError reports a colour-styled array that is not a valid colour.
type InvalidColorArrayError struct {
	Key    string
	Style  NumericArrayStyle
	Values []float64
	Reason string
}

// Error formats the colour array error
func (e *InvalidColorArrayError) Error() string {
	return fmt.Sprintf("parameter %q: style %q: %s (got %v)", e.Key, e.Style, e.Reason, e.Values)
}

// InvalidOverrideError reports an override whose value does not fit the field.
type InvalidOverrideError struct {
	Key    string
	Field  string // Empty when the whole override is rejected
	Reason string
}

// Error formats the invalid override error
func (e *InvalidOverrideError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("parameter %q: invalid override: %s", e.Key, e.Reason)
	}
	return fmt.Sprintf("parameter %q: invalid override for %q: %s", e.Key, e.Field, e.Reason)
}

// InvalidDefaultError reports a default that does not match the field's value.
type InvalidDefaultError struct {
	Key    string
	Reason string
}

// Error formats the invalid default error
func (e *InvalidDefaultError) Error() string {
	return fmt.Sprintf("parameter %q: invalid default: %s", e.Key, e.Reason)
}

// InvalidKeyError reports an empty or repeated parameter key.
type InvalidKeyError struct {
	Key    string
	Reason string
}

// Error formats the invalid key error
func (e *InvalidKeyError) Error() string {
	return fmt.Sprintf("parameter key %q: %s", e.Key, e.Reason)
}

// ConfigErrors collects several errors so a loader can report them together.
type ConfigErrors struct {
	Errors []error
}

// Add appends err when it is non-nil.
func (e *ConfigErrors) Add(err error) {
	if err != nil {
		e.Errors = append(e.Errors, err)
	}
}

// Addf appends a formatted error.
func (e *ConfigErrors) Addf(format string, args ...interface{}) {
	e.Errors = append(e.Errors, fmt.Errorf(format, args...))
}

// HasErrors returns true if any error was collected
func (e *ConfigErrors) HasErrors() bool {
	return len(e.Errors) > 0
}

// Err returns nil when empty, so callers can `return errs.Err()`.
func (e *ConfigErrors) Err() error {
	if !e.HasErrors() {
		return nil
	}
	return e
}

// Error joins all collected errors, one per line
func (e *ConfigErrors) Error() string {
	msgs := make([]string, len(e.Errors))
	for i, err := range e.Errors {
		msgs[i] = err.Error()
	}
	return strings.Join(msgs, "\n")
}

// Unwrap exposes the collected errors to errors.Is and errors.As.
func (e *ConfigErrors) Unwrap() []error {
	return e.Errors
}

// IsConfigError reports whether err is (or wraps) one of the configuration
// error types above.
func IsConfigError(err error) bool {
	var (
		unsupportedValue *UnsupportedValueError
		unsupportedField *UnsupportedFieldError
		accept           *InvalidAcceptFilterError
		color            *InvalidColorArrayError
		override         *InvalidOverrideError
		def              *InvalidDefaultError
		key              *InvalidKeyError
	)
	return errors.As(err, &unsupportedValue) ||
		errors.As(err, &unsupportedField) ||
		errors.As(err, &accept) ||
		errors.As(err, &color) ||
		errors.As(err, &override) ||
		errors.As(err, &def) ||
		errors.As(err, &key)
}
