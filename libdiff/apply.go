package libdiff

import (
	"errors"
	"fmt"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/signadot/jval/debug"
	"github.com/signadot/jval/value"
)

var ErrConflict = errors.New("diff does not apply")

// Apply applies changes to doc in order. Removed and replaced values must
// equal what the change recorded. On error doc holds the changes applied so
// far.
func Apply(doc *value.Value, changes []Change) error {
	for i := range changes {
		c := &changes[i]
		if err := apply(doc, c); err != nil {
			return fmt.Errorf("change %d (%s %s): %w", i, c.Op, c.Path, err)
		}
		if debug.Diff() {
			debug.Logger().Debug("applied", "op", c.Op, "path", c.Path.String())
		}
	}
	return nil
}

func apply(doc *value.Value, c *Change) error {
	switch c.Op {
	case OpAdd:
		return applyAdd(doc, c)
	case OpRemove:
		if err := expect(doc, c.Path, c.From); err != nil {
			return err
		}
		return doc.Delete(c.Path)
	case OpReplace:
		if err := expect(doc, c.Path, c.From); err != nil {
			return err
		}
		return doc.Put(c.Path, c.To.MustClone())
	case OpText:
		return applyText(doc, c)
	}
	return fmt.Errorf("%w: unknown op %d", ErrConflict, int(c.Op))
}

func expect(doc *value.Value, p *value.Path, want value.Value) error {
	got, err := doc.Get(p)
	if err != nil {
		return err
	}
	if !value.Equal(*got, want) {
		return fmt.Errorf("%w: unexpected value at %s", ErrConflict, p)
	}
	return nil
}

// applyAdd inserts into arrays and adds object members; an existing member
// is a conflict.
func applyAdd(doc *value.Value, c *Change) error {
	parentPath, last := split(c.Path)
	if last == nil {
		return fmt.Errorf("%w: cannot add the root", ErrConflict)
	}
	parent, err := doc.Get(parentPath)
	if err != nil {
		return err
	}
	x := c.To.MustClone()
	switch {
	case parent.IsArray() && last.Index != nil:
		return parent.Insert(*last.Index, x)
	case parent.IsObject() && last.Field != nil:
		if _, inserted, err := parent.TryEmplace(*last.Field, x); err != nil || !inserted {
			x.Release()
			if err != nil {
				return err
			}
			return fmt.Errorf("%w: %s already exists", ErrConflict, c.Path)
		}
		return nil
	}
	x.Release()
	return fmt.Errorf("%w: cannot add under %v at %s", ErrConflict, parent.Kind(), c.Path)
}

func applyText(doc *value.Value, c *Change) error {
	target, err := doc.Get(c.Path)
	if err != nil {
		return err
	}
	s, err := target.AsStringView()
	if err != nil {
		return err
	}
	dmp := diffpatch.New()
	patches, err := dmp.PatchFromText(c.Text)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrConflict, err)
	}
	res, applied := dmp.PatchApply(patches, s)
	for _, ok := range applied {
		if !ok {
			return fmt.Errorf("%w: text patch failed at %s", ErrConflict, c.Path)
		}
	}
	x, err := value.StringWith(target.Allocator(), res, target.Tag())
	if err != nil {
		return err
	}
	target.Set(x)
	return nil
}
