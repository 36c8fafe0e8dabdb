package parse

import (
	"fmt"

	"github.com/signadot/jval/format"
	"github.com/signadot/jval/stream"
	"github.com/signadot/jval/value"
)

// Parse parses a single document into a value. JSON is the default format.
func Parse(d []byte, opts ...ParseOption) (value.Value, error) {
	pOpts := newOpts(opts)
	b := stream.NewBuilder(pOpts.buildOpts()...)
	if err := parseTo(d, b, pOpts); err != nil {
		b.Abort()
		return value.Value{}, err
	}
	return b.Value()
}

// ParseString is Parse for string input.
func ParseString(s string, opts ...ParseOption) (value.Value, error) {
	return Parse([]byte(s), opts...)
}

// ParseTo parses a single document, delivering its events to h, and then
// flushes h. Parsing stops at the first error from h.
func ParseTo(d []byte, h stream.Handler, opts ...ParseOption) error {
	return parseTo(d, h, newOpts(opts))
}

func parseTo(d []byte, h stream.Handler, opts *parseOpts) error {
	var err error
	switch opts.format {
	case format.JSONFormat:
		err = parseJSON(d, h, opts)
	case format.YAMLFormat:
		err = parseYAML(d, h, opts)
	default:
		return fmt.Errorf("%w: %w", ErrParse, format.ErrBadFormat)
	}
	if err != nil {
		return err
	}
	return h.Flush()
}
