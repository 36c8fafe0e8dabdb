package value

import (
	"bytes"
	"cmp"
	"math"
	"strings"
)

// Compare returns an integer comparing two values.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
//
// Values of unrelated kinds order by rank (see StorageKind.rank). All numeric
// kinds share a rank and compare by exact mathematical value rather than
// through conversion to double, so Int(1<<53+1) is greater than
// Double(1<<53) and ordering stays transitive. NaN is below every other
// number and equal to itself. Short and long strings compare by
// content. Tags are ignored.
func Compare(a, b Value) int {
	ka, kb := a.ext.kind(), b.ext.kind()
	ra, rb := ka.rank(), kb.rank()
	if ra != rb {
		return cmp.Compare(ra, rb)
	}
	switch ka {
	case NullKind:
		return 0
	case BoolKind:
		return compareBools(a.boolean(), b.boolean())
	case Int64Kind, Uint64Kind, HalfKind, DoubleKind:
		return compareNumbers(a, b)
	case ShortStringKind, LongStringKind:
		return strings.Compare(a.str(), b.str())
	case ByteStringKind:
		return bytes.Compare(a.bytes(), b.bytes())
	case ArrayKind:
		return compareArrays(a.array(), b.array())
	case EmptyObjectKind, ObjectKind:
		return compareObjects(a.object(), b.object())
	}
	return 0
}

// Equal reports whether a and b hold the same data. Objects are equal when
// they hold the same members regardless of order or policy.
func Equal(a, b Value) bool {
	return Compare(a, b) == 0
}

func Less(a, b Value) bool {
	return Compare(a, b) < 0
}

func (v Value) Compare(o Value) int { return Compare(v, o) }
func (v Value) Equal(o Value) bool  { return Compare(v, o) == 0 }
func (v Value) Less(o Value) bool   { return Compare(v, o) < 0 }

func compareBools(a, b bool) int {
	if a == b {
		return 0
	}
	if !a {
		return -1
	}
	return 1
}

func compareNumbers(a, b Value) int {
	switch a.ext.kind() {
	case Int64Kind:
		i := a.i64()
		switch b.ext.kind() {
		case Int64Kind:
			return cmp.Compare(i, b.i64())
		case Uint64Kind:
			return compareIntUint(i, b.u64())
		default:
			return compareIntFloat(i, b.float())
		}
	case Uint64Kind:
		u := a.u64()
		switch b.ext.kind() {
		case Int64Kind:
			return -compareIntUint(b.i64(), u)
		case Uint64Kind:
			return cmp.Compare(u, b.u64())
		default:
			return compareUintFloat(u, b.float())
		}
	default:
		f := a.float()
		switch b.ext.kind() {
		case Int64Kind:
			return -compareIntFloat(b.i64(), f)
		case Uint64Kind:
			return -compareUintFloat(b.u64(), f)
		default:
			return cmp.Compare(f, b.float())
		}
	}
}

// A negative int64 is below every uint64.
func compareIntUint(i int64, u uint64) int {
	if i < 0 {
		return -1
	}
	return cmp.Compare(uint64(i), u)
}

func compareIntFloat(i int64, f float64) int {
	switch {
	case math.IsNaN(f):
		return 1
	case f < -(1 << 63):
		return 1
	case f >= 1<<63:
		return -1
	}
	t := math.Trunc(f)
	if c := cmp.Compare(i, int64(t)); c != 0 {
		return c
	}
	return cmp.Compare(t, f)
}

func compareUintFloat(u uint64, f float64) int {
	switch {
	case math.IsNaN(f):
		return 1
	case f < 0:
		return 1
	case f >= 1<<64:
		return -1
	}
	t := math.Trunc(f)
	if c := cmp.Compare(u, uint64(t)); c != 0 {
		return c
	}
	return cmp.Compare(t, f)
}

func compareArrays(a, b *Array) int {
	n := min(a.Len(), b.Len())
	for i := 0; i < n; i++ {
		if c := Compare(a.elems[i], b.elems[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(a.Len(), b.Len())
}

// compareObjects treats a nil Object as empty. Objects with the same members
// are equal; otherwise they order pairwise in their own iteration order, so
// the result for unequal objects depends on their policies.
func compareObjects(a, b Object) int {
	la, lb := objLen(a), objLen(b)
	if la == lb && sameMembers(a, b) {
		return 0
	}
	n := min(la, lb)
	if n == 0 {
		return cmp.Compare(la, lb)
	}
	ma, mb := a.Members(), b.Members()
	for i := 0; i < n; i++ {
		if c := strings.Compare(ma[i].Key, mb[i].Key); c != 0 {
			return c
		}
		if c := Compare(ma[i].Value, mb[i].Value); c != 0 {
			return c
		}
	}
	return cmp.Compare(la, lb)
}

func objLen(o Object) int {
	if o == nil {
		return 0
	}
	return o.Len()
}

func sameMembers(a, b Object) bool {
	if objLen(a) == 0 {
		return true
	}
	for k, v := range a.All() {
		w, ok := b.Get(k)
		if !ok || Compare(*v, *w) != 0 {
			return false
		}
	}
	return true
}
