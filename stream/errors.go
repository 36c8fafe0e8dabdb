package stream

import "errors"

var (
	ErrUnbalanced       = errors.New("unbalanced begin/end")
	ErrKeyOutsideObject = errors.New("key outside object")
	ErrMissingKey       = errors.New("object member without key")
	ErrMissingValue     = errors.New("key without value")
	ErrIncomplete       = errors.New("incomplete value")
)

// Error represents a stream error at a position in the value being built.
type Error struct {
	Msg  string
	Path string
	Err  error
}

func (e *Error) Error() string {
	if e.Path == "" {
		return e.Msg
	}
	return e.Path + ": " + e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

func newError(s *State, err error, msg string) *Error {
	return &Error{Msg: msg, Path: s.CurrentPath(), Err: err}
}
