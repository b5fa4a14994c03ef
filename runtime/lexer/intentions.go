// Package lexer tokenizes parameter annotations: the free-text comments that
// sit next to a project field, such as
//
//	speed = 42 // "Speed", 0 to 100, step 5, slider
//
// Annotations are hints. Tokens that match nothing are dropped, never reported
// as errors.
package lexer

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/aledsdavies/sketchparams/internal/invariant"
)

// Intentions is the typed reading of one annotation.
type Intentions struct {
	Name    string // Display name from the first quoted token
	HasName bool

	Range *[2]float64 // [min, max] exactly as written, never reordered
	Step  *float64

	NumberValues       []float64   // Bare numbers, in order, duplicates kept
	BooleanValues      []bool      // Bare true/false, in order
	NumericArrayValues [][]float64 // Bracketed number lists, in order
	MetaStrings        []string    // Bare words and #rrggbb colours

	// Dropped holds tokens that were ignored, for diagnostics only.
	Dropped []string
}

const number = `[-+]?(?:\d+(?:\.\d*)?|\.\d+)(?:[eE][-+]?\d+)?`

var (
	quotedPattern  = regexp.MustCompile(`^(?:"([^"]*)"|'([^']*)')$`)
	rangePattern   = regexp.MustCompile(`^(` + number + `)\s+(?i:to)\s+(` + number + `)$`)
	stepPattern    = regexp.MustCompile(`^(?:(?i:step)\s+(` + number + `)|(` + number + `)\s+(?i:step))$`)
	numberPattern  = regexp.MustCompile(`^` + number + `$`)
	booleanPattern = regexp.MustCompile(`^(?:true|false)$`)
	arrayPattern   = regexp.MustCompile(`^\[\s*(` + number + `(?:\s*,\s*` + number + `)*)\s*\]$`)
	wordPattern    = regexp.MustCompile(`^[a-zA-Z]+$`)
	hexPattern     = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)
)

// IntentionsFrom splits text on top-level commas and classifies each token.
func IntentionsFrom(text string) Intentions {
	var in Intentions
	for _, tok := range SplitTopLevel(text) {
		in.classify(tok)
	}
	return in
}

// SplitTopLevel splits s on commas that are not inside [...] and returns the
// trimmed, non-empty parts.
func SplitTopLevel(s string) []string {
	var (
		parts []string
		depth int
		start int
	)
	for i := 0; i < len(s); i++ {
		invariant.Invariant(start <= i, "token start %d is past byte %d", start, i)
		switch s[i] {
		case '[':
			depth++
		case ']':
			if depth > 0 {
				depth--
			}
		case ',':
			if depth == 0 {
				parts = appendTrimmed(parts, s[start:i])
				start = i + 1
			}
		}
	}
	return appendTrimmed(parts, s[start:])
}

func appendTrimmed(parts []string, s string) []string {
	if t := strings.TrimSpace(s); t != "" {
		parts = append(parts, t)
	}
	return parts
}

// classify tries each matcher in precedence order and stops at the first hit.
func (in *Intentions) classify(tok string) {
	if m := quotedPattern.FindStringSubmatch(tok); m != nil {
		if in.HasName {
			in.drop(tok)
			return
		}
		name := m[1]
		if strings.HasPrefix(tok, "'") {
			name = m[2]
		}
		in.Name, in.HasName = strings.TrimSpace(name), true
		return
	}

	if m := rangePattern.FindStringSubmatch(tok); m != nil {
		if in.Range != nil {
			in.drop(tok)
			return
		}
		lo, okLo := parseNumber(m[1])
		hi, okHi := parseNumber(m[2])
		if !okLo || !okHi {
			in.drop(tok)
			return
		}
		in.Range = &[2]float64{lo, hi}
		return
	}

	if m := stepPattern.FindStringSubmatch(tok); m != nil {
		if in.Step != nil {
			in.drop(tok)
			return
		}
		raw := m[1]
		if raw == "" {
			raw = m[2]
		}
		step, ok := parseNumber(raw)
		if !ok {
			in.drop(tok)
			return
		}
		in.Step = &step
		return
	}

	if numberPattern.MatchString(tok) {
		if v, ok := parseNumber(tok); ok {
			in.NumberValues = append(in.NumberValues, v)
		} else {
			in.drop(tok)
		}
		return
	}

	if booleanPattern.MatchString(tok) {
		in.BooleanValues = append(in.BooleanValues, tok == "true")
		return
	}

	if m := arrayPattern.FindStringSubmatch(tok); m != nil {
		var values []float64
		for _, part := range strings.Split(m[1], ",") {
			v, ok := parseNumber(strings.TrimSpace(part))
			if !ok {
				in.drop(tok)
				return
			}
			values = append(values, v)
		}
		in.NumericArrayValues = append(in.NumericArrayValues, values)
		return
	}

	if wordPattern.MatchString(tok) || hexPattern.MatchString(tok) {
		in.MetaStrings = append(in.MetaStrings, tok)
		return
	}

	in.drop(tok)
}

func (in *Intentions) drop(tok string) {
	in.Dropped = append(in.Dropped, tok)
}

// parseNumber converts a token already matched by the number pattern. Only
// out-of-range literals such as 1e999 fail.
func parseNumber(s string) (float64, bool) {
	v, err := strconv.ParseFloat(s, 64)
	return v, err == nil
}

// IsHexColor reports whether s is a #rrggbb colour token.
func IsHexColor(s string) bool {
	return hexPattern.MatchString(s)
}
