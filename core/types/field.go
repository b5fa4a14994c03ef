package types

// Field is one project field handed to the engine by a loader, in declaration
// order. Value holds the field's current value; callables must be wrapped in
// Action or FileHandler so the kind is explicit.
type Field struct {
	Key        string
	Value      any
	Annotation string     // Trailing comment text, may be empty
	Overrides  []Override // Typed overrides, applied before JSON overrides
}

// Action is a nullary callback exposed as a button.
type Action func()

// LoadedFile is one file result delivered to a FileHandler.
type LoadedFile struct {
	Name string
	Type string // MIME type reported by the picker
	Data any    // []byte, string or decoded image depending on FileMode
}

// FileHandler is a callback that receives the files chosen by the user.
type FileHandler func(files []LoadedFile)

// Override is an explicit, typed configuration change for one kind.
type Override interface {
	// Kind is the parameter kind the override targets, or KindAny.
	Kind() Kind

	// Apply writes the override's fields onto cfg.
	Apply(cfg ParamConfig) error
}
