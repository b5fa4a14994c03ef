// Package parser extracts parameter annotations from source text. It reads
// line by line and never fails: lines that do not look like declarations are
// skipped.
package parser

import (
	"regexp"
	"strings"
)

var (
	// [modifiers] name [?|!] [: type] = ...
	fieldPattern = regexp.MustCompile(
		`^\s*(?:(?:public|private|protected|readonly|static|declare|override)\s+)*` +
			`([A-Za-z_$][\w$]*)\s*[?!]?\s*(?::[^=]*)?=`)

	// uniform [precision] type name [array] ;
	uniformPattern = regexp.MustCompile(
		`^\s*uniform\s+(?:(?:lowp|mediump|highp)\s+)?([A-Za-z_]\w*)\s+([A-Za-z_]\w*)\s*(\[[^\]]*\])?\s*;`)
)

// Declarations returns the annotated field declarations in source order.
// Fields without a trailing comment are omitted.
func Declarations(src string) []Declaration {
	var decls []Declaration
	for i, line := range splitLines(src) {
		code, comment, ok := splitComment(line)
		if !ok {
			continue
		}
		m := fieldPattern.FindStringSubmatch(code)
		if m == nil {
			continue
		}
		decls = append(decls, Declaration{Line: i + 1, Key: m[1], Annotation: comment})
	}
	return decls
}

// Annotations maps field names to their trailing comment. When a name is
// declared twice the first annotation wins.
func Annotations(src string) map[string]string {
	out := make(map[string]string)
	for _, d := range Declarations(src) {
		if _, dup := out[d.Key]; !dup {
			out[d.Key] = d.Annotation
		}
	}
	return out
}

// Uniforms returns the non-array uniform declarations in source order.
func Uniforms(src string) []Uniform {
	var uniforms []Uniform
	for i, line := range splitLines(src) {
		code, comment, _ := splitComment(line)
		m := uniformPattern.FindStringSubmatch(code)
		if m == nil || m[3] != "" {
			continue
		}
		uniforms = append(uniforms, Uniform{Line: i + 1, Type: m[1], Name: m[2], Annotation: comment})
	}
	return uniforms
}

func splitLines(src string) []string {
	return strings.Split(strings.ReplaceAll(src, "\r\n", "\n"), "\n")
}

// splitComment cuts line at the first // that is not inside a string
// literal. ok is false when the line has no such comment.
func splitComment(line string) (code, comment string, ok bool) {
	var quote byte
	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case quote != 0:
			if c == '\\' {
				i++
			} else if c == quote {
				quote = 0
			}
		case c == '"' || c == '\'' || c == '`':
			quote = c
		case c == '/' && i+1 < len(line) && line[i+1] == '/':
			return line[:i], strings.TrimSpace(line[i+2:]), true
		}
	}
	return line, "", false
}
