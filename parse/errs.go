package parse

import (
	"errors"
	"fmt"
)

var (
	ErrParse     = errors.New("parse error")
	ErrTrailing  = fmt.Errorf("%w: trailing data after value", ErrParse)
	ErrKeyTag    = fmt.Errorf("%w: key cannot be tagged", ErrParse)
	ErrBadKey    = fmt.Errorf("%w: key is not a string", ErrParse)
	ErrTooDeep   = fmt.Errorf("%w: nesting too deep", ErrParse)
	ErrEmptyJSON = fmt.Errorf("%w: empty document", ErrParse)
	ErrSyntax    = fmt.Errorf("%w: malformed json", ErrParse)
)
