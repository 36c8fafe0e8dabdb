package libdiff

import (
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Reverse returns changes undoing changes: applying changes and then the
// result restores the original document.
func Reverse(changes []Change) []Change {
	res := make([]Change, 0, len(changes))
	for i := len(changes) - 1; i >= 0; i-- {
		c := changes[i]
		r := Change{Path: c.Path}
		switch c.Op {
		case OpAdd:
			r.Op = OpRemove
			r.From = c.To.MustClone()
		case OpRemove:
			r.Op = OpAdd
			r.To = c.From.MustClone()
		case OpReplace:
			r.Op = OpReplace
			r.From, r.To = c.To.MustClone(), c.From.MustClone()
		case OpText:
			r.Op = OpText
			r.From, r.To = c.To.MustClone(), c.From.MustClone()
			dmp := diffpatch.New()
			fs, ts := r.From.MustStringView(), r.To.MustStringView()
			r.Text = dmp.PatchToText(dmp.PatchMake(fs, dmp.DiffMain(fs, ts, true)))
		}
		res = append(res, r)
	}
	return res
}
