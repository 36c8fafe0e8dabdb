package libdiff

import (
	"fmt"
	"strings"

	"github.com/signadot/jval/encode"
	"github.com/signadot/jval/value"
)

type Op int

const (
	OpAdd Op = iota
	OpRemove
	OpReplace
	OpText
)

func (o Op) String() string {
	switch o {
	case OpAdd:
		return "add"
	case OpRemove:
		return "remove"
	case OpReplace:
		return "replace"
	case OpText:
		return "text"
	}
	return fmt.Sprintf("<op %d>", int(o))
}

func (o Op) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

func (o *Op) UnmarshalText(d []byte) error {
	for _, op := range []Op{OpAdd, OpRemove, OpReplace, OpText} {
		if op.String() == string(d) {
			*o = op
			return nil
		}
	}
	return fmt.Errorf("unknown diff op %q", d)
}

// Change is one step of a diff. From is set for remove, replace and text
// changes and To for add, replace and text changes. Text holds the
// diffmatchpatch patch text of a text change.
type Change struct {
	Path *value.Path
	Op   Op
	From value.Value
	To   value.Value
	Text string
}

func (c *Change) String() string {
	show := func(v value.Value) string {
		return encode.MustString(v, encode.EncodeIndent(0))
	}
	switch c.Op {
	case OpAdd:
		return fmt.Sprintf("+ %s: %s", c.Path, show(c.To))
	case OpRemove:
		return fmt.Sprintf("- %s: %s", c.Path, show(c.From))
	case OpReplace:
		return fmt.Sprintf("~ %s: %s -> %s", c.Path, show(c.From), show(c.To))
	case OpText:
		return fmt.Sprintf("@ %s:\n%s", c.Path, strings.TrimRight(c.Text, "\n"))
	}
	return fmt.Sprintf("? %s", c.Path)
}

// Release releases the values held by changes.
func Release(changes []Change) {
	for i := range changes {
		changes[i].From.Release()
		changes[i].To.Release()
	}
}
