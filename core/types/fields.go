package types

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// LiveUpdatesAlias is the older name of the liveUpdates field, still accepted
// in override data.
const LiveUpdatesAlias = "applyDuringInput"

// FieldNames returns the recognised override field names for kind, in
// struct order, including the liveUpdates alias.
func FieldNames(kind Kind) []string {
	names := Global().Fields(kind)
	if names == nil {
		return nil
	}
	return append(names, LiveUpdatesAlias)
}

// CheckFields rejects field names the kind's config does not have, and the
// immutable key field.
func CheckFields(key string, kind Kind, fields []string) error {
	known := FieldNames(kind)
	set := make(map[string]bool, len(known))
	for _, name := range known {
		set[name] = true
	}

	for _, field := range fields {
		if field == "key" {
			return &UnsupportedFieldError{Key: key, Kind: kind, Field: field, Reason: "the key is fixed by the source field"}
		}
		if !set[field] {
			return &UnsupportedFieldError{
				Key:        key,
				Kind:       kind,
				Field:      field,
				Suggestion: findClosestField(field, known),
			}
		}
	}
	return nil
}

// findClosestField finds the closest known field name using fuzzy matching
func findClosestField(target string, candidates []string) string {
	if len(candidates) == 0 {
		return ""
	}

	ranks := fuzzy.RankFindFold(target, candidates)
	if len(ranks) > 0 {
		best := ranks[0]
		for _, r := range ranks[1:] {
			if r.Distance < best.Distance {
				best = r
			}
		}
		return best.Target
	}

	// Typos are rarely subsequences, fall back to edit distance
	best, bestDist := "", 3
	for _, c := range candidates {
		if d := fuzzy.LevenshteinDistance(target, c); d < bestDist {
			best, bestDist = c, d
		}
	}
	return best
}

// ApplyJSON merges a raw JSON override object onto cfg. Unknown fields fail
// with UnsupportedFieldError, ill-typed values with InvalidOverrideError.
// Fields present in data replace the config's values wholesale.
func ApplyJSON(cfg ParamConfig, data json.RawMessage, validator *Validator) error {
	key := cfg.Base().Key
	if len(bytes.TrimSpace(data)) == 0 || bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return &InvalidOverrideError{Key: key, Reason: fmt.Sprintf("expected a JSON object: %v", err)}
	}

	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)
	if err := CheckFields(key, cfg.Kind(), names); err != nil {
		return err
	}

	if validator == nil {
		validator = NewValidator(nil)
	}
	if err := validator.ValidateOverride(key, cfg.Kind(), data); err != nil {
		return err
	}

	if alias, ok := fields[LiveUpdatesAlias]; ok {
		delete(fields, LiveUpdatesAlias)
		if _, both := fields["liveUpdates"]; !both {
			fields["liveUpdates"] = alias
		}
	}

	normalized, err := json.Marshal(fields)
	if err != nil {
		return &InvalidOverrideError{Key: key, Reason: err.Error()}
	}
	if err := json.Unmarshal(normalized, cfg); err != nil {
		return &InvalidOverrideError{Key: key, Reason: err.Error()}
	}
	return nil
}
