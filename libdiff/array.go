package libdiff

import (
	"strconv"
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/signadot/jval/value"
)

// diffArray aligns the elements of two arrays:
//
//  1. summarize each element; scalars by value, containers and
//     multi-line strings by type only
//  2. diff the sequences of summaries
//  3. recurse into aligned elements, remove deleted ones and add inserted
//     ones; a deletion directly followed by an insertion is a replacement
func (d *differ) diffArray(at segs, from, to value.Value) {
	m := map[string]rune{}
	fa, _ := from.Array()
	ta, _ := to.Array()
	fromVals, toVals := fa.Values(), ta.Values()
	fromRunes := summaries(m, fromVals)
	toRunes := summaries(m, toVals)
	diffs := diffpatch.New().DiffMainRunes(fromRunes, toRunes, false)

	// ri indexes the array as it is after the changes so far.
	fi, ti, ri := 0, 0, 0
	for i := range diffs {
		n := len([]rune(diffs[i].Text))
		switch diffs[i].Type {
		case diffpatch.DiffEqual:
			for range n {
				d.diff(at.index(ri), fromVals[fi], toVals[ti])
				fi++
				ti++
				ri++
			}
		case diffpatch.DiffDelete:
			ins := 0
			if i+1 < len(diffs) && diffs[i+1].Type == diffpatch.DiffInsert {
				ins = len([]rune(diffs[i+1].Text))
			}
			for j := range n {
				if j < ins {
					d.diff(at.index(ri), fromVals[fi], toVals[ti])
					ti++
					ri++
				} else {
					d.add(Change{Path: at.index(ri).path(), Op: OpRemove, From: fromVals[fi].MustClone()})
				}
				fi++
			}
			if ins > n {
				for range ins - n {
					d.add(Change{Path: at.index(ri).path(), Op: OpAdd, To: toVals[ti].MustClone()})
					ti++
					ri++
				}
			}
			if ins > 0 {
				// consumed the following insertion
				diffs[i+1].Text = ""
			}
		case diffpatch.DiffInsert:
			for range n {
				d.add(Change{Path: at.index(ri).path(), Op: OpAdd, To: toVals[ti].MustClone()})
				ti++
				ri++
			}
		}
	}
}

func summaries(m map[string]rune, vals []value.Value) []rune {
	rs := make([]rune, len(vals))
	for i := range vals {
		sum := summaryStr(vals[i])
		r, ok := m[sum]
		if !ok {
			r = rune(len(m))
			m[sum] = r
		}
		rs[i] = r
	}
	return rs
}

func summaryStr(v value.Value) string {
	t := v.Type()
	switch t {
	case value.ObjectType, value.ArrayType, value.NullType:
		return t.String()
	case value.StringType:
		s := v.MustStringView()
		if strings.Contains(s, "\n") {
			return t.String() + "/m"
		}
		return t.String() + "-" + s
	case value.Int64Type, value.Uint64Type, value.HalfType, value.DoubleType:
		// numbers that compare equal summarize equally
		return "Number-" + strconv.FormatUint(v.Hash(), 16)
	}
	return t.String() + "-" + strconv.FormatUint(v.Hash(), 16)
}
