// Package paramfmt is the binary interchange format for resolved parameter
// lists. Encoding is canonical: the same list always produces the same
// bytes, so the digest identifies a parameter set.
package paramfmt

import (
	"fmt"

	"github.com/aledsdavies/sketchparams/core/types"
)

// Document is a resolved parameter list plus format flags.
// Invariants:
// - every key is non-empty and unique
// - every param kind is registered, so the body can be read back
// - Params order is the declaration order and is significant
type Document struct {
	Flags  Flags
	Params []types.ParamConfig
}

// Flags is a bitmask describing where a document came from
type Flags uint16

const (
	// FlagShader marks parameters derived from shader uniforms
	FlagShader Flags = 1 << 0

	// FlagLiveUpdates records that the project default for liveUpdates was on
	FlagLiveUpdates Flags = 1 << 1

	knownFlags = FlagShader | FlagLiveUpdates
)

// Validate checks document invariants
func (d *Document) Validate() error {
	if d.Flags&^knownFlags != 0 {
		return fmt.Errorf("unknown flags 0x%04x", uint16(d.Flags&^knownFlags))
	}

	seen := make(map[string]bool, len(d.Params))
	for i, p := range d.Params {
		if p == nil {
			return fmt.Errorf("param %d is nil", i)
		}
		if !types.Global().IsRegistered(p.Kind()) {
			return fmt.Errorf("param %d has unregistered kind %q", i, p.Kind())
		}
		key := p.Base().Key
		if key == "" {
			return &types.InvalidKeyError{Key: key, Reason: fmt.Sprintf("param %d has an empty key", i)}
		}
		if seen[key] {
			return &types.InvalidKeyError{Key: key, Reason: "duplicate key"}
		}
		seen[key] = true
	}
	return nil
}
