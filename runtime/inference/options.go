package inference

import (
	"log/slog"
	"sync"

	"github.com/aledsdavies/sketchparams/core/types"
)

// Options controls how fields are turned into parameter configs.
type Options struct {
	// Mode selects project or shader annotation semantics.
	Mode Mode

	// LiveUpdates is the project-level default for every parameter's
	// liveUpdates flag. Overrides may still change it per parameter.
	LiveUpdates bool

	// Logger receives diagnostics about dropped annotation tokens and unused
	// overrides. Nil discards them.
	Logger *slog.Logger

	// Validator checks JSON overrides. Nil uses a shared default validator.
	Validator *types.Validator
}

// DefaultOptions returns project mode with live updates off.
func DefaultOptions() Options {
	return Options{
		Mode:      ModeProject,
		Logger:    slog.New(slog.DiscardHandler),
		Validator: sharedValidator(),
	}
}

var sharedValidator = sync.OnceValue(func() *types.Validator {
	return types.NewValidator(nil)
})

func (o Options) logger() *slog.Logger {
	if o.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return o.Logger
}

func (o Options) validator() *types.Validator {
	if o.Validator == nil {
		return sharedValidator()
	}
	return o.Validator
}
