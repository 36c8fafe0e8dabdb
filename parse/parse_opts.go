package parse

import (
	"github.com/signadot/jval/format"
	"github.com/signadot/jval/stream"
	"github.com/signadot/jval/value"
)

type parseOpts struct {
	format   format.Format
	alloc    value.Allocator
	ordered  bool
	maxDepth int
}

func (o *parseOpts) buildOpts() []stream.BuildOption {
	res := []stream.BuildOption{}
	if o.alloc != nil {
		res = append(res, stream.WithAllocator(o.alloc))
	}
	if o.ordered {
		res = append(res, stream.WithOrderedObjects())
	}
	return res
}

type ParseOption func(*parseOpts)

func ParseYAML() ParseOption {
	return ParseFormat(format.YAMLFormat)
}
func ParseJSON() ParseOption {
	return ParseFormat(format.JSONFormat)
}
func ParseFormat(f format.Format) ParseOption {
	return func(o *parseOpts) { o.format = f }
}

// ParseAllocator makes Parse allocate strings and byte strings from a.
func ParseAllocator(a value.Allocator) ParseOption {
	return func(o *parseOpts) { o.alloc = a }
}

// ParseOrdered makes Parse build insertion-ordered objects.
func ParseOrdered(v bool) ParseOption {
	return func(o *parseOpts) { o.ordered = v }
}

// MaxDepth limits container nesting. The default is 1000.
func MaxDepth(n int) ParseOption {
	return func(o *parseOpts) { o.maxDepth = n }
}

func newOpts(opts []ParseOption) *parseOpts {
	pOpts := &parseOpts{format: format.JSONFormat, maxDepth: 1000}
	for _, f := range opts {
		f(pOpts)
	}
	return pOpts
}

// FormatFromOpts extracts the format from parse options.
func FormatFromOpts(opts ...ParseOption) format.Format {
	return newOpts(opts).format
}
