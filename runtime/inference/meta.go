package inference

import (
	"strings"

	"github.com/aledsdavies/sketchparams/core/types"
	"github.com/aledsdavies/sketchparams/internal/invariant"
)

// AssignMeta resolves display style from bare annotation words, falling back
// to hints in the parameter key. Words always beat the key. cfg is modified
// in place and returned.
func AssignMeta(cfg types.ParamConfig, metas []string) types.ParamConfig {
	invariant.Precondition(cfg != nil, "AssignMeta needs a config")
	return assignMeta(cfg, metas, nil)
}

// assignMeta is AssignMeta with the field's vector value, used to choose
// between byte and unit colour.
func assignMeta(cfg types.ParamConfig, metas []string, sample []float64) types.ParamConfig {
	key := strings.ToLower(cfg.Base().Key)

	switch c := cfg.(type) {
	case *types.NumberConfig:
		if style, ok := matchWord(metas, types.NumberStyles()); ok {
			c.Style = style
		} else if style, ok := matchKey(key, types.NumberStyles()); ok {
			c.Style = style
		}

	case *types.StringConfig:
		if style, ok := matchWord(metas, types.StringStyles()); ok {
			c.Style = style
		} else if style, ok := matchAlias(metas, stringAliases); ok {
			c.Style = style
		} else if style, ok := stringStyleFromKey(key); ok {
			c.Style = style
		}

	case *types.NumericArrayConfig:
		if style, ok := matchWord(metas, types.NumericArrayStyles()); ok {
			c.Style = style
		} else if style, ok := colorStyleFor(sample); ok && (hasWord(metas, "color", "colour") || isColorKey(key)) {
			c.Style = style
		} else if style, ok := matchKey(key, types.NumericArrayStyles()); ok && !style.IsColor() {
			c.Style = style
		}

	case *types.FileConfig:
		if mode, ok := matchWord(metas, types.FileModes()); ok {
			c.Mode = mode
		} else if strings.Contains(key, "image") {
			c.Mode = types.FileModeImage
		}
		if hasWord(metas, "multiple", "multi") {
			c.Multiple = true
		} else if strings.Contains(key, "multiple") || strings.HasSuffix(key, "files") {
			c.Multiple = true
		}
	}
	return cfg
}

var stringAliases = map[string]types.StringStyle{
	"multi":  types.StringStyleMultiLine,
	"single": types.StringStyleSingleLine,
	"colour": types.StringStyleColor,
}

// matchWord returns the first meta word naming one of styles, ignoring case.
func matchWord[S ~string](metas []string, styles []S) (S, bool) {
	for _, m := range metas {
		for _, s := range styles {
			if strings.EqualFold(m, string(s)) {
				return s, true
			}
		}
	}
	var zero S
	return zero, false
}

func matchAlias[S ~string](metas []string, aliases map[string]S) (S, bool) {
	for _, m := range metas {
		if s, ok := aliases[strings.ToLower(m)]; ok {
			return s, true
		}
	}
	var zero S
	return zero, false
}

// matchKey returns the first style whose name the lower-cased key contains.
// Style lists are ordered so longer names shadow their suffixes.
func matchKey[S ~string](key string, styles []S) (S, bool) {
	for _, s := range styles {
		if strings.Contains(key, strings.ToLower(string(s))) {
			return s, true
		}
	}
	var zero S
	return zero, false
}

func stringStyleFromKey(key string) (types.StringStyle, bool) {
	switch {
	case isColorKey(key):
		return types.StringStyleColor, true
	case strings.Contains(key, "multi"):
		return types.StringStyleMultiLine, true
	}
	return "", false
}

func isColorKey(key string) bool {
	return strings.Contains(key, "color") || strings.Contains(key, "colour")
}

func hasWord(metas []string, words ...string) bool {
	for _, m := range metas {
		for _, w := range words {
			if strings.EqualFold(m, w) {
				return true
			}
		}
	}
	return false
}
