package libdiff

import (
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/signadot/jval/value"
)

// diffObject aligns the key sequences of two objects. Keys present in both
// are diffed in place wherever the alignment puts them, so reordering
// alone produces no changes.
func (d *differ) diffObject(at segs, from, to value.Value) {
	m := map[string]rune{}
	fromKeys, toKeys := keys(from), keys(to)
	diffs := diffpatch.New().DiffMainRunes(keyRunes(m, fromKeys), keyRunes(m, toKeys), false)

	fi, ti := 0, 0
	for i := range diffs {
		n := len([]rune(diffs[i].Text))
		switch diffs[i].Type {
		case diffpatch.DiffEqual:
			for range n {
				k := fromKeys[fi]
				d.diff(at.field(k), *from.AtOrNull(k), *to.AtOrNull(k))
				fi++
				ti++
			}
		case diffpatch.DiffDelete:
			for range n {
				k := fromKeys[fi]
				if x, err := to.AtKey(k); err == nil {
					d.diff(at.field(k), *from.AtOrNull(k), *x)
				} else {
					d.add(Change{Path: at.field(k).path(), Op: OpRemove, From: from.AtOrNull(k).MustClone()})
				}
				fi++
			}
		case diffpatch.DiffInsert:
			for range n {
				k := toKeys[ti]
				if !from.Contains(k) {
					d.add(Change{Path: at.field(k).path(), Op: OpAdd, To: to.AtOrNull(k).MustClone()})
				}
				ti++
			}
		}
	}
}

func keys(v value.Value) []string {
	res := make([]string, 0, v.Size())
	for k := range v.Members() {
		res = append(res, k)
	}
	return res
}

func keyRunes(m map[string]rune, ks []string) []rune {
	rs := make([]rune, len(ks))
	for i, k := range ks {
		r, ok := m[k]
		if !ok {
			r = rune(len(m))
			m[k] = r
		}
		rs[i] = r
	}
	return rs
}
