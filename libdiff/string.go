package libdiff

import (
	"unicode/utf8"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/signadot/jval/value"
)

// MinTextLen is the rune length from which strings that mostly agree are
// diffed as text.
const MinTextLen = 32

func (d *differ) diffString(at segs, from, to value.Value) {
	fs, ts := from.MustStringView(), to.MustStringView()
	if fs == ts {
		return
	}
	fn, tn := utf8.RuneCountInString(fs), utf8.RuneCountInString(ts)
	if fn < MinTextLen || tn < MinTextLen {
		d.replace(at, from, to)
		return
	}
	dmp := diffpatch.New()
	diffs := dmp.DiffMain(fs, ts, true)
	diffSize := 0
	for i := range diffs {
		if diffs[i].Type != diffpatch.DiffEqual {
			diffSize += utf8.RuneCountInString(diffs[i].Text)
		}
	}
	if diffSize > min(fn, tn)/2 {
		d.replace(at, from, to)
		return
	}
	d.add(Change{
		Path: at.path(),
		Op:   OpText,
		From: from.MustClone(),
		To:   to.MustClone(),
		Text: dmp.PatchToText(dmp.PatchMake(fs, diffs)),
	})
}
