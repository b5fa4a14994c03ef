package types

// Kind identifies the closed set of parameter types a project field can map to.
type Kind string

const (
	// KindNumber is a scalar numeric parameter (sliders, fields, combos)
	KindNumber Kind = "number"

	// KindBoolean is a toggle
	KindBoolean Kind = "boolean"

	// KindString is a text parameter (single line, multi line, colour, options)
	KindString Kind = "string"

	// KindFunction is a nullary action invoked on demand
	KindFunction Kind = "function"

	// KindFile is a callback that receives file-load results
	KindFile Kind = "file"

	// KindNumericArray is a fixed-length vector of numbers
	KindNumericArray Kind = "numericArray"

	// KindAny is not a parameter kind. An Override reporting it applies to
	// every kind.
	KindAny Kind = ""
)

// Kinds lists every kind in declaration order.
func Kinds() []Kind {
	return []Kind{KindNumber, KindBoolean, KindString, KindFunction, KindFile, KindNumericArray}
}

// String returns the wire name of the kind.
func (k Kind) String() string {
	return string(k)
}

// NumberStyle selects the input widget for a Number parameter.
type NumberStyle string

const (
	NumberStyleSlider NumberStyle = "slider"
	NumberStyleField  NumberStyle = "field"
	NumberStyleCombo  NumberStyle = "combo"
)

// NumberStyles lists the known Number styles.
func NumberStyles() []NumberStyle {
	return []NumberStyle{NumberStyleSlider, NumberStyleField, NumberStyleCombo}
}

// StringStyle selects the input widget for a String parameter.
type StringStyle string

const (
	StringStyleSingleLine StringStyle = "singleLine"
	StringStyleMultiLine  StringStyle = "multiLine"
	StringStyleColor      StringStyle = "color"
	StringStyleOptions    StringStyle = "options"
)

// StringStyles lists the known String styles.
func StringStyles() []StringStyle {
	return []StringStyle{StringStyleSingleLine, StringStyleMultiLine, StringStyleColor, StringStyleOptions}
}

// NumericArrayStyle selects the input widget for a NumericArray parameter.
type NumericArrayStyle string

const (
	NumericArrayStyleCombo         NumericArrayStyle = "combo"
	NumericArrayStyleCompactField  NumericArrayStyle = "compactField"
	NumericArrayStyleCompactSlider NumericArrayStyle = "compactSlider"
	NumericArrayStyleSlider        NumericArrayStyle = "slider"
	NumericArrayStyleField         NumericArrayStyle = "field"
	NumericArrayStyleByteColor     NumericArrayStyle = "byteColor"
	NumericArrayStyleUnitColor     NumericArrayStyle = "unitColor"
)

// NumericArrayStyles lists the known NumericArray styles. Longer names come
// before names they contain so substring heuristics pick the most specific one.
func NumericArrayStyles() []NumericArrayStyle {
	return []NumericArrayStyle{
		NumericArrayStyleCompactField,
		NumericArrayStyleCompactSlider,
		NumericArrayStyleByteColor,
		NumericArrayStyleUnitColor,
		NumericArrayStyleCombo,
		NumericArrayStyleSlider,
		NumericArrayStyleField,
	}
}

// IsColor reports whether the style renders the array as an RGB colour.
func (s NumericArrayStyle) IsColor() bool {
	return s == NumericArrayStyleByteColor || s == NumericArrayStyleUnitColor
}

// FileMode selects how a File parameter reads the chosen files.
type FileMode string

const (
	FileModeArrayBuffer  FileMode = "arrayBuffer"
	FileModeBinaryString FileMode = "binaryString"
	FileModeDataURL      FileMode = "dataURL"
	FileModeText         FileMode = "text"
	FileModeImage        FileMode = "image"
)

// FileModes lists the known File read modes.
func FileModes() []FileMode {
	return []FileMode{FileModeArrayBuffer, FileModeBinaryString, FileModeDataURL, FileModeText, FileModeImage}
}
