package encode

import (
	"errors"
	"fmt"
	"io"

	"github.com/signadot/jval/format"
	"github.com/signadot/jval/stream"
	"github.com/signadot/jval/value"
)

var ErrEncoding = errors.New("encoding error")

type EncState struct {
	indent int
	format format.Format
	Color  func(value.Type, ColorAttr, string) string
}

// Encode writes v to w followed by a newline.
func Encode(v value.Value, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent: 2,
	}
	for _, opt := range opts {
		opt(es)
	}
	switch es.format {
	case format.JSONFormat:
		jw := NewJSONWriter(w, es)
		return stream.Walk(v, jw)
	case format.YAMLFormat:
		return encodeYAML(v, w, es)
	}
	return fmt.Errorf("%w: %w", ErrEncoding, format.ErrBadFormat)
}

func (es *EncState) color(t value.Type, a ColorAttr, s string) string {
	if es.Color == nil {
		return s
	}
	return es.Color(t, a, s)
}

func writeString(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}
