package paramfmt

import (
	"encoding/json"
	"fmt"

	"github.com/fxamacker/cbor/v2"
	"golang.org/x/crypto/blake2b"

	"github.com/aledsdavies/sketchparams/core/types"
)

// entry tags a config with its kind so it can be decoded into the right
// struct.
type entry struct {
	Kind   types.Kind      `cbor:"1,keyasint"`
	Config cbor.RawMessage `cbor:"2,keyasint"`
}

var encMode = func() cbor.EncMode {
	em, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("paramfmt: canonical CBOR options: %v", err))
	}
	return em
}()

// EncodeBody returns the canonical CBOR encoding of params.
func EncodeBody(params []types.ParamConfig) ([]byte, error) {
	entries := make([]entry, len(params))
	for i, p := range params {
		raw, err := encMode.Marshal(p)
		if err != nil {
			return nil, fmt.Errorf("encode %q: %w", p.Base().Key, err)
		}
		entries[i] = entry{Kind: p.Kind(), Config: raw}
	}
	return encMode.Marshal(entries)
}

// DecodeBody is the inverse of EncodeBody.
func DecodeBody(body []byte) ([]types.ParamConfig, error) {
	var entries []entry
	if err := cbor.Unmarshal(body, &entries); err != nil {
		return nil, fmt.Errorf("decode body: %w", err)
	}

	params := make([]types.ParamConfig, len(entries))
	for i, e := range entries {
		cfg, err := newConfig(e.Kind)
		if err != nil {
			return nil, fmt.Errorf("param %d: %w", i, err)
		}
		if err := cbor.Unmarshal(e.Config, cfg); err != nil {
			return nil, fmt.Errorf("param %d (%s): %w", i, e.Kind, err)
		}
		params[i] = cfg
	}
	return params, nil
}

// Digest returns the BLAKE2b-256 hash of the canonical body.
func Digest(params []types.ParamConfig) ([32]byte, error) {
	body, err := EncodeBody(params)
	if err != nil {
		return [32]byte{}, err
	}
	return blake2b.Sum256(body), nil
}

// jsonEntry is the JSON form of entry, with the config inlined as an object.
type jsonEntry struct {
	Kind   types.Kind      `json:"kind"`
	Config json.RawMessage `json:"config"`
}

// MarshalJSON renders params as [{"kind": ..., "config": {...}}, ...].
func MarshalJSON(params []types.ParamConfig) ([]byte, error) {
	entries := make([]jsonEntry, len(params))
	for i, p := range params {
		raw, err := json.Marshal(p)
		if err != nil {
			return nil, fmt.Errorf("encode %q: %w", p.Base().Key, err)
		}
		entries[i] = jsonEntry{Kind: p.Kind(), Config: raw}
	}
	return json.MarshalIndent(entries, "", "  ")
}

// UnmarshalJSON is the inverse of MarshalJSON.
func UnmarshalJSON(data []byte) ([]types.ParamConfig, error) {
	var entries []jsonEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, err
	}

	params := make([]types.ParamConfig, len(entries))
	for i, e := range entries {
		cfg, err := newConfig(e.Kind)
		if err != nil {
			return nil, fmt.Errorf("param %d: %w", i, err)
		}
		if err := json.Unmarshal(e.Config, cfg); err != nil {
			return nil, fmt.Errorf("param %d (%s): %w", i, e.Kind, err)
		}
		params[i] = cfg
	}
	return params, nil
}

func newConfig(kind types.Kind) (types.ParamConfig, error) {
	cfg, ok := types.Global().New(kind)
	if !ok {
		return nil, fmt.Errorf("unknown kind %q", kind)
	}
	return cfg, nil
}
