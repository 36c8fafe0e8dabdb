package value

import (
	"encoding/binary"
	"math"
)

const inlineSize = 16

// Value holds exactly one of the storage kinds together with a semantic tag.
//
// The zero Value is null. Scalars and short strings live in the inline
// area; long strings, byte strings, arrays and objects are owned through
// heap. Constructors zero the areas a kind does not use.
//
// A Value exclusively owns its payload. Copying the struct does not copy the
// payload: use Clone for an independent copy, Move to transfer, and Release
// when done with a value holding an allocator other than Heap().
type Value struct {
	ext    ext
	inline [inlineSize]byte
	heap   payload
}

func Null() Value {
	return Value{}
}

func NullTagged(t SemanticTag) Value {
	return Value{ext: makeExt(NullKind, t)}
}

func Bool(b bool) Value {
	v := Value{ext: makeExt(BoolKind, NoTag)}
	if b {
		v.inline[0] = 1
	}
	return v
}

func Int(i int64) Value {
	v := Value{ext: makeExt(Int64Kind, NoTag)}
	binary.LittleEndian.PutUint64(v.inline[:8], uint64(i))
	return v
}

func Uint(u uint64) Value {
	v := Value{ext: makeExt(Uint64Kind, NoTag)}
	binary.LittleEndian.PutUint64(v.inline[:8], u)
	return v
}

// Half returns a half float value from its binary16 bits.
func Half(bits uint16) Value {
	v := Value{ext: makeExt(HalfKind, NoTag)}
	binary.LittleEndian.PutUint16(v.inline[:2], bits)
	return v
}

// HalfFromFloat returns the half float nearest to f.
func HalfFromFloat(f float64) Value {
	return Half(EncodeHalf(f))
}

func Double(f float64) Value {
	v := Value{ext: makeExt(DoubleKind, NoTag)}
	binary.LittleEndian.PutUint64(v.inline[:8], math.Float64bits(f))
	return v
}

// String returns a string value, inline when len(s) <= ShortStringCap and
// heap-owned otherwise.
func String(s string) Value {
	v, err := StringWith(nil, s, NoTag)
	if err != nil {
		panic(err)
	}
	return v
}

// StringWith returns a tagged string value whose long form, if any, is
// allocated from a.
func StringWith(a Allocator, s string, t SemanticTag) (Value, error) {
	if len(s) <= ShortStringCap {
		v := Value{ext: makeExt(ShortStringKind, t)}
		v.inline[0] = byte(len(s))
		copy(v.inline[1:], s)
		return v, nil
	}
	ls, err := newLongString(a, s)
	if err != nil {
		return Value{}, err
	}
	return Value{ext: makeExt(LongStringKind, t), heap: ls}, nil
}

// Bytes returns a byte string value holding a copy of b.
func Bytes(b []byte) Value {
	v, err := BytesWith(nil, b, NoTag)
	if err != nil {
		panic(err)
	}
	return v
}

// BytesWith returns a tagged byte string allocated from a.
func BytesWith(a Allocator, b []byte, t SemanticTag) (Value, error) {
	bs, err := newByteString(a, b)
	if err != nil {
		return Value{}, err
	}
	return Value{ext: makeExt(ByteStringKind, t), heap: bs}, nil
}

// EmptyObject returns the allocation free representation of {}.
func EmptyObject() Value {
	return Value{ext: makeExt(EmptyObjectKind, NoTag)}
}

// NewArray returns an array value owning elems.
func NewArray(elems ...Value) Value {
	return FromArray(MakeArray(elems...))
}

// FromArray returns an array value owning a. A nil a is an empty array.
func FromArray(a *Array) Value {
	if a == nil {
		a = MakeArray()
	}
	return Value{ext: makeExt(ArrayKind, NoTag), heap: a}
}

// NewObject returns a key-sorted object value owning the members' values.
func NewObject(members ...Member) Value {
	return FromObject(MakeSorted(members...))
}

// NewOrderedObject returns an insertion-ordered object value owning the
// members' values.
func NewOrderedObject(members ...Member) Value {
	return FromObject(MakeOrdered(members...))
}

// FromObject returns an object value owning o. A nil o yields EmptyObject.
func FromObject(o Object) Value {
	if o == nil {
		return EmptyObject()
	}
	return Value{ext: makeExt(ObjectKind, NoTag), heap: o}
}

// WithTag returns v with its tag replaced. Ownership of any payload passes
// to the result.
func (v Value) WithTag(t SemanticTag) Value {
	v.ext = makeExt(v.ext.kind(), t)
	return v
}

func (v *Value) SetTag(t SemanticTag) {
	v.ext = makeExt(v.ext.kind(), t)
}

func (v Value) Kind() StorageKind { return v.ext.kind() }
func (v Value) Tag() SemanticTag  { return v.ext.tag() }
func (v Value) Type() Type        { return v.ext.kind().Type() }

// Allocator returns the allocator owning v's heap payload, or Heap() for
// values without one.
func (v Value) Allocator() Allocator {
	if v.heap == nil {
		return Heap()
	}
	return v.heap.allocator()
}

// Clone returns a deep copy of v using the allocator of v's own payload.
func (v Value) Clone() (Value, error) {
	return v.CloneWith(nil)
}

// CloneWith returns a deep copy of v whose heap payloads come from a. A nil
// a keeps v's allocator. On failure nothing is left allocated.
func (v Value) CloneWith(a Allocator) (Value, error) {
	if v.heap == nil {
		return v, nil
	}
	if a == nil {
		a = v.heap.allocator()
	}
	p, err := v.heap.clone(a)
	if err != nil {
		return Value{}, err
	}
	return Value{ext: v.ext, heap: p}, nil
}

// MustClone is Clone, panicking on allocation failure.
func (v Value) MustClone() Value {
	c, err := v.Clone()
	if err != nil {
		panic(err)
	}
	return c
}

// Assign replaces v with a deep copy of src. If the copy fails v is
// unchanged.
func (v *Value) Assign(src Value) error {
	c, err := src.Clone()
	if err != nil {
		return err
	}
	v.Set(c)
	return nil
}

// Set releases v and takes ownership of x.
func (v *Value) Set(x Value) {
	old := *v
	*v = x
	old.Release()
}

// Move transfers src into v in constant time, releasing v's previous
// payload. src is left null. Moving a value onto itself does nothing.
func (v *Value) Move(src *Value) {
	if v == src {
		return
	}
	x := *src
	*src = Value{}
	v.Set(x)
}

// MoveWith moves src into v when src's payload belongs to an allocator equal
// to a, and otherwise copies it into a and releases src. On failure both
// values are unchanged.
func (v *Value) MoveWith(src *Value, a Allocator) error {
	if v == src {
		return nil
	}
	if src.heap == nil || sameAllocator(src.heap.allocator(), a) {
		v.Move(src)
		return nil
	}
	c, err := src.CloneWith(orHeap(a))
	if err != nil {
		return err
	}
	src.Release()
	v.Set(c)
	return nil
}

// Swap exchanges v and o without copying payloads.
func (v *Value) Swap(o *Value) {
	*v, *o = *o, *v
}

// Release frees v's heap payload, if any, and leaves v null.
func (v *Value) Release() {
	if v.heap != nil {
		v.heap.release()
	}
	*v = Value{}
}

// Materialize turns an EmptyObject into an empty sorted Object, keeping the
// tag. Other kinds are left alone.
func (v *Value) Materialize() {
	if v.ext.kind() != EmptyObjectKind {
		return
	}
	v.materializeWith(nil, false)
}

func (v *Value) materializeWith(a Allocator, ordered bool) {
	v.heap = newObject(a, ordered)
	v.ext = makeExt(ObjectKind, v.ext.tag())
}

func (v Value) boolean() bool { return v.inline[0] != 0 }
func (v Value) i64() int64    { return int64(binary.LittleEndian.Uint64(v.inline[:8])) }
func (v Value) u64() uint64   { return binary.LittleEndian.Uint64(v.inline[:8]) }
func (v Value) f64() float64  { return math.Float64frombits(binary.LittleEndian.Uint64(v.inline[:8])) }
func (v Value) half() uint16  { return binary.LittleEndian.Uint16(v.inline[:2]) }

// str returns string content. Short strings are copied out of the inline
// area; long strings are viewed in place.
func (v Value) str() string {
	switch v.ext.kind() {
	case ShortStringKind:
		return string(v.inline[1 : 1+int(v.inline[0])])
	case LongStringKind:
		return v.heap.(*longString).view()
	}
	return ""
}

func (v Value) bytes() []byte {
	if v.ext.kind() != ByteStringKind {
		return nil
	}
	return v.heap.(*byteString).buf
}

func (v Value) array() *Array {
	if v.ext.kind() != ArrayKind {
		return nil
	}
	return v.heap.(*Array)
}

func (v Value) object() Object {
	if v.ext.kind() != ObjectKind {
		return nil
	}
	return v.heap.(Object)
}
