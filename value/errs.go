package value

import (
	"errors"
	"fmt"
)

var (
	ErrTypeMismatch    = errors.New("type mismatch")
	ErrKeyNotFound     = errors.New("key not found")
	ErrNotObject       = errors.New("not an object")
	ErrNotArray        = errors.New("not an array")
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrAllocation      = errors.New("allocation failed")
	ErrConversion      = errors.New("conversion failed")
)

// KeyError reports a keyed lookup on an object which lacks the key.
type KeyError struct {
	Key string
}

func (e *KeyError) Error() string {
	return fmt.Sprintf("key %q not found", e.Key)
}

func (e *KeyError) Unwrap() error { return ErrKeyNotFound }

// IndexError reports an index beyond the current size of an array.
type IndexError struct {
	Index int
	Size  int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("index %d out of range [0:%d]", e.Index, e.Size)
}

func (e *IndexError) Unwrap() error { return ErrIndexOutOfRange }

// KindError reports an operation invoked on a value whose storage kind
// cannot support it. Err is one of ErrTypeMismatch, ErrNotObject or
// ErrNotArray.
type KindError struct {
	Op   string
	Kind StorageKind
	Err  error
}

func (e *KindError) Error() string {
	return fmt.Sprintf("%s on %s: %v", e.Op, e.Kind, e.Err)
}

func (e *KindError) Unwrap() error { return e.Err }

func mismatch(op string, k StorageKind) error {
	return &KindError{Op: op, Kind: k, Err: ErrTypeMismatch}
}

func notObject(op string, k StorageKind) error {
	return &KindError{Op: op, Kind: k, Err: ErrNotObject}
}

func notArray(op string, k StorageKind) error {
	return &KindError{Op: op, Kind: k, Err: ErrNotArray}
}
