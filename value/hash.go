package value

import (
	"encoding/binary"
	"hash/maphash"
	"math"
)

var seed = maphash.MakeSeed()

// Hash returns a hash of v consistent with Equal: equal values, including
// numbers of different kinds and objects of different policies, hash
// equally. Hashes are stable within a process only.
func (v Value) Hash() uint64 {
	var h maphash.Hash
	h.SetSeed(seed)
	writeHash(&h, v)
	return h.Sum64()
}

func writeHash(h *maphash.Hash, v Value) {
	k := v.ext.kind()
	h.WriteByte(byte(k.rank()))
	switch k {
	case BoolKind:
		h.WriteByte(v.inline[0])
	case Int64Kind:
		writeInt(h, v.i64())
	case Uint64Kind:
		u := v.u64()
		if u <= math.MaxInt64 {
			writeInt(h, int64(u))
			return
		}
		writeUint(h, u)
	case HalfKind, DoubleKind:
		writeFloat(h, v.float())
	case ShortStringKind, LongStringKind:
		h.WriteString(v.str())
	case ByteStringKind:
		h.Write(v.bytes())
	case ArrayKind:
		a := v.array()
		writeUint(h, uint64(a.Len()))
		for i := range a.elems {
			writeHash(h, a.elems[i])
		}
	case ObjectKind:
		o := v.object()
		writeUint(h, uint64(o.Len()))
		var sum uint64
		for key, x := range o.All() {
			var mh maphash.Hash
			mh.SetSeed(seed)
			mh.WriteString(key)
			writeHash(&mh, *x)
			sum += mh.Sum64()
		}
		writeUint(h, sum)
	case EmptyObjectKind:
		writeUint(h, 0)
		writeUint(h, 0)
	}
}

func writeInt(h *maphash.Hash, i int64) {
	h.WriteByte('i')
	h.Write(binary.LittleEndian.AppendUint64(nil, uint64(i)))
}

func writeUint(h *maphash.Hash, u uint64) {
	h.WriteByte('u')
	h.Write(binary.LittleEndian.AppendUint64(nil, u))
}

// writeFloat routes integral floats through the integer encodings so that
// 5.0 and 5 hash equally.
func writeFloat(h *maphash.Hash, f float64) {
	switch {
	case math.IsNaN(f):
		h.WriteByte('n')
		return
	case f == math.Trunc(f) && f >= -(1<<63) && f < 1<<63:
		writeInt(h, int64(f))
		return
	case f == math.Trunc(f) && f >= 0 && f < 1<<64:
		writeUint(h, uint64(f))
		return
	}
	h.WriteByte('f')
	h.Write(binary.LittleEndian.AppendUint64(nil, math.Float64bits(f)))
}
