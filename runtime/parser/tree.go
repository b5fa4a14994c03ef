package parser

// Declaration is one annotated field found in project source.
type Declaration struct {
	Line       int    // 1-based source line
	Key        string // Field name
	Annotation string // Trailing comment text without the // marker
}

// Uniform is one uniform declared in shader source.
type Uniform struct {
	Line       int
	Type       string // GLSL type name, e.g. float, vec3, sampler2D
	Name       string
	Annotation string // Trailing comment text, empty if none
}
