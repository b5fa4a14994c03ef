package parser

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

const projectSource = `
export default class Sketch extends Project {
    speed = 42 // "Speed", 0 to 100, step 5, slider
    tint: number[] = [0.2, 0.4, 0.6] // color
    private label = "a // not a comment" // "Label", multi
    count = 3
    readonly seed?: number = 7 //1 to 10
    url = 'http://example.com' // 'Link'
    speed = 1 // second declaration
    update() { // not a field
    }
}
`

func TestDeclarations(t *testing.T) {
	want := []Declaration{
		{Line: 3, Key: "speed", Annotation: `"Speed", 0 to 100, step 5, slider`},
		{Line: 4, Key: "tint", Annotation: "color"},
		{Line: 5, Key: "label", Annotation: `"Label", multi`},
		{Line: 7, Key: "seed", Annotation: "1 to 10"},
		{Line: 8, Key: "url", Annotation: "'Link'"},
		{Line: 9, Key: "speed", Annotation: "second declaration"},
	}

	if diff := cmp.Diff(want, Declarations(projectSource)); diff != "" {
		t.Errorf("Declarations mismatch (-want +got):\n%s", diff)
	}
}

func TestAnnotationsFirstWins(t *testing.T) {
	got := Annotations(projectSource)

	want := map[string]string{
		"speed": `"Speed", 0 to 100, step 5, slider`,
		"tint":  "color",
		"label": `"Label", multi`,
		"seed":  "1 to 10",
		"url":   "'Link'",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Annotations mismatch (-want +got):\n%s", diff)
	}
}

func TestUniforms(t *testing.T) {
	src := "precision highp float;\r\n" +
		"uniform float uTime;\r\n" +
		"uniform highp vec3 uColor; // color, #ff8800\n" +
		"uniform int uSteps; // \"Steps\", 1 to 16\n" +
		"uniform sampler2D uTex;\n" +
		"uniform float uWeights[4]; // ignored\n" +
		"// uniform float uCommented;\n" +
		"void main() {}\n"

	want := []Uniform{
		{Line: 2, Type: "float", Name: "uTime"},
		{Line: 3, Type: "vec3", Name: "uColor", Annotation: "color, #ff8800"},
		{Line: 4, Type: "int", Name: "uSteps", Annotation: `"Steps", 1 to 16`},
		{Line: 5, Type: "sampler2D", Name: "uTex"},
	}

	if diff := cmp.Diff(want, Uniforms(src)); diff != "" {
		t.Errorf("Uniforms mismatch (-want +got):\n%s", diff)
	}
}

func TestSplitComment(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		code    string
		comment string
		ok      bool
	}{
		{"no comment", "x = 1", "x = 1", "", false},
		{"plain", "x = 1 // hi", "x = 1 ", "hi", true},
		{"inside double quotes", `x = "//" // hi`, `x = "//" `, "hi", true},
		{"escaped quote", `x = "a\"//" // hi`, `x = "a\"//" `, "hi", true},
		{"inside template", "x = `//`", "x = `//`", "", false},
		{"unterminated string", `x = "abc // hi`, `x = "abc // hi`, "", false},
		{"empty comment", "x = 1 //", "x = 1 ", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, comment, ok := splitComment(tt.line)
			if code != tt.code || comment != tt.comment || ok != tt.ok {
				t.Errorf("splitComment(%q) = (%q, %q, %v), want (%q, %q, %v)",
					tt.line, code, comment, ok, tt.code, tt.comment, tt.ok)
			}
		})
	}
}
