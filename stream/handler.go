package stream

import "github.com/signadot/jval/value"

// Handler consumes construction events. Returning a non-nil error declines
// further events; producers stop at the first error.
//
// Begin and End events must balance, and inside an object every value must
// be preceded by exactly one Key.
type Handler interface {
	Null(tag value.SemanticTag) error
	Bool(b bool, tag value.SemanticTag) error
	Int64(i int64, tag value.SemanticTag) error
	Uint64(u uint64, tag value.SemanticTag) error
	Half(bits uint16, tag value.SemanticTag) error
	Double(f float64, tag value.SemanticTag) error
	String(s string, tag value.SemanticTag) error
	ByteString(b []byte, tag value.SemanticTag) error

	BeginArray(sizeHint int, tag value.SemanticTag) error
	EndArray() error
	BeginObject(sizeHint int, tag value.SemanticTag) error
	Key(k string) error
	EndObject() error

	// Flush is called once a producer has delivered a complete value.
	Flush() error
}
