package stream

import (
	"log/slog"

	"github.com/signadot/jval/value"
)

// BuildOption configures a Builder.
type BuildOption func(*buildOpts)

type buildOpts struct {
	alloc   value.Allocator
	ordered bool
	logger  *slog.Logger
}

// WithAllocator makes the builder allocate strings, byte strings and
// containers from a.
func WithAllocator(a value.Allocator) BuildOption {
	return func(opts *buildOpts) {
		opts.alloc = a
	}
}

// WithOrderedObjects builds insertion-ordered objects instead of sorted
// ones.
func WithOrderedObjects() BuildOption {
	return func(opts *buildOpts) {
		opts.ordered = true
	}
}

// WithLogger sets the logger used to report aborted builds.
func WithLogger(l *slog.Logger) BuildOption {
	return func(opts *buildOpts) {
		opts.logger = l
	}
}
