package value

import "math"

// Truth reports whether v is truthy: non-empty containers and strings,
// non-zero numbers and true. Null is false.
func Truth(v Value) bool {
	switch v.ext.kind() {
	case ArrayKind, ObjectKind:
		return v.Size() != 0
	case ShortStringKind, LongStringKind, ByteStringKind:
		return !v.Empty()
	case Int64Kind, Uint64Kind:
		return v.u64() != 0
	case HalfKind, DoubleKind:
		f := v.float()
		return f != 0 && !math.IsNaN(f)
	case BoolKind:
		return v.boolean()
	default:
		return false
	}
}
