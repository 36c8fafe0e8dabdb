package libdiff

import (
	"github.com/signadot/jval/debug"
	"github.com/signadot/jval/value"
)

// Diff returns the changes turning from into to. Values that are Equal and
// carry the same tags produce no changes. The changes hold copies of the
// values they mention.
func Diff(from, to value.Value) []Change {
	d := &differ{}
	d.diff(nil, from, to)
	if debug.Diff() {
		debug.Logger().Debug("diff", "changes", len(d.changes))
	}
	return d.changes
}

type differ struct {
	changes []Change
}

func (d *differ) add(c Change) {
	d.changes = append(d.changes, c)
}

func (d *differ) replace(at segs, from, to value.Value) {
	d.add(Change{Path: at.path(), Op: OpReplace, From: from.MustClone(), To: to.MustClone()})
}

func (d *differ) diff(at segs, from, to value.Value) {
	if from.Tag() != to.Tag() {
		d.replace(at, from, to)
		return
	}
	ft, tt := from.Type(), to.Type()
	switch {
	case ft == value.ArrayType && tt == value.ArrayType:
		d.diffArray(at, from, to)
	case ft == value.ObjectType && tt == value.ObjectType:
		d.diffObject(at, from, to)
	case ft == value.StringType && tt == value.StringType:
		d.diffString(at, from, to)
	default:
		if !value.Equal(from, to) {
			d.replace(at, from, to)
		}
	}
}
