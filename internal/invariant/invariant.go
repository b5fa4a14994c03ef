// Package invariant holds assertions for conditions that only a bug in this
// module can break. They panic; they are not for validating user input.
package invariant

import "fmt"

// Invariant panics with a formatted message when cond is false.
func Invariant(cond bool, format string, args ...interface{}) {
	if !cond {
		panic(fmt.Sprintf("invariant violated: "+format, args...))
	}
}

// Precondition panics when a caller breaks a function's contract.
func Precondition(cond bool, format string, args ...interface{}) {
	if !cond {
		panic(fmt.Sprintf("precondition violated: "+format, args...))
	}
}

// NotNil panics when v is nil.
func NotNil(v interface{}, name string) {
	if v == nil {
		panic(fmt.Sprintf("precondition violated: %s must not be nil", name))
	}
}
