package value

import (
	"fmt"
	"iter"
	"math"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

type integer interface {
	constraints.Integer
}

// Size returns the number of elements of an array or members of an object,
// and 0 for every other kind.
func (v Value) Size() int {
	switch v.ext.kind() {
	case ArrayKind:
		return v.array().Len()
	case ObjectKind:
		return v.object().Len()
	}
	return 0
}

// Empty reports whether a string, byte string, array or object has no
// content. Scalars and null are never empty.
func (v Value) Empty() bool {
	switch v.ext.kind() {
	case ShortStringKind:
		return v.inline[0] == 0
	case LongStringKind:
		return len(v.heap.(*longString).buf) == 0
	case ByteStringKind:
		return len(v.bytes()) == 0
	case ArrayKind, ObjectKind:
		return v.Size() == 0
	case EmptyObjectKind:
		return true
	}
	return false
}

// Capacity returns the reserved element capacity of an array or object.
func (v Value) Capacity() int {
	switch v.ext.kind() {
	case ArrayKind:
		return v.array().Cap()
	case ObjectKind:
		return v.object().Cap()
	}
	return 0
}

func (v Value) IsNull() bool   { return v.ext.kind() == NullKind }
func (v Value) IsBool() bool   { return v.ext.kind() == BoolKind }
func (v Value) IsHalf() bool   { return v.ext.kind() == HalfKind }
func (v Value) IsDouble() bool { return v.ext.kind() == DoubleKind }
func (v Value) IsArray() bool  { return v.ext.kind() == ArrayKind }

// IsInt64 reports whether v is an int64, or a uint64 that fits in one.
func (v Value) IsInt64() bool {
	switch v.ext.kind() {
	case Int64Kind:
		return true
	case Uint64Kind:
		return v.u64() <= math.MaxInt64
	}
	return false
}

// IsUint64 reports whether v is a uint64, or a non-negative int64.
func (v Value) IsUint64() bool {
	switch v.ext.kind() {
	case Uint64Kind:
		return true
	case Int64Kind:
		return v.i64() >= 0
	}
	return false
}

// IsNumber reports whether v is numeric: any of the numeric kinds, or a
// string tagged as a big number.
func (v Value) IsNumber() bool {
	switch v.ext.kind() {
	case Int64Kind, Uint64Kind, HalfKind, DoubleKind:
		return true
	case ShortStringKind, LongStringKind:
		return v.ext.tag().IsNumber()
	}
	return false
}

func (v Value) IsString() bool {
	k := v.ext.kind()
	return k == ShortStringKind || k == LongStringKind
}

func (v Value) IsByteString() bool { return v.ext.kind() == ByteStringKind }

// IsObject is true for both EmptyObject and Object.
func (v Value) IsObject() bool {
	k := v.ext.kind()
	return k == ObjectKind || k == EmptyObjectKind
}

// IsBignum reports whether v is an integer or a string of decimal digits
// with an optional leading minus.
func (v Value) IsBignum() bool {
	switch v.ext.kind() {
	case Int64Kind, Uint64Kind:
		return true
	case ShortStringKind, LongStringKind:
		return isBase10(v.str())
	}
	return false
}

func isBase10(s string) bool {
	s = strings.TrimPrefix(s, "-")
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func rangeErr(op string, v any) error {
	return fmt.Errorf("%w: %s: %v out of range", ErrConversion, op, v)
}

// AsBool returns a bool, or whether an integer is non-zero.
func (v Value) AsBool() (bool, error) {
	switch v.ext.kind() {
	case BoolKind:
		return v.boolean(), nil
	case Int64Kind:
		return v.i64() != 0, nil
	case Uint64Kind:
		return v.u64() != 0, nil
	}
	return false, mismatch("AsBool", v.ext.kind())
}

// AsInt64 converts numbers, bools and decimal strings to int64. Floats are
// truncated toward zero; values outside the int64 range fail with
// ErrConversion.
func (v Value) AsInt64() (int64, error) {
	switch v.ext.kind() {
	case BoolKind:
		if v.boolean() {
			return 1, nil
		}
		return 0, nil
	case Int64Kind:
		return v.i64(), nil
	case Uint64Kind:
		u := v.u64()
		if u > math.MaxInt64 {
			return 0, rangeErr("AsInt64", u)
		}
		return int64(u), nil
	case HalfKind, DoubleKind:
		f := v.float()
		if math.IsNaN(f) || f < -(1<<63) || f >= 1<<63 {
			return 0, rangeErr("AsInt64", f)
		}
		return int64(f), nil
	case ShortStringKind, LongStringKind:
		i, err := strconv.ParseInt(v.str(), 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: AsInt64: %w", ErrConversion, err)
		}
		return i, nil
	}
	return 0, mismatch("AsInt64", v.ext.kind())
}

// AsUint64 is AsInt64 for the uint64 range.
func (v Value) AsUint64() (uint64, error) {
	switch v.ext.kind() {
	case BoolKind:
		if v.boolean() {
			return 1, nil
		}
		return 0, nil
	case Int64Kind:
		i := v.i64()
		if i < 0 {
			return 0, rangeErr("AsUint64", i)
		}
		return uint64(i), nil
	case Uint64Kind:
		return v.u64(), nil
	case HalfKind, DoubleKind:
		f := v.float()
		if math.IsNaN(f) || f <= -1 || f >= 1<<64 {
			return 0, rangeErr("AsUint64", f)
		}
		return uint64(f), nil
	case ShortStringKind, LongStringKind:
		u, err := strconv.ParseUint(v.str(), 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: AsUint64: %w", ErrConversion, err)
		}
		return u, nil
	}
	return 0, mismatch("AsUint64", v.ext.kind())
}

// AsInteger converts v to the integer type T, failing with ErrConversion
// when the value does not fit.
func AsInteger[T integer](v Value) (T, error) {
	var zero T
	if ^zero < 0 {
		i, err := v.AsInt64()
		if err != nil {
			return 0, err
		}
		t := T(i)
		if int64(t) != i {
			return 0, rangeErr("AsInteger", i)
		}
		return t, nil
	}
	u, err := v.AsUint64()
	if err != nil {
		return 0, err
	}
	t := T(u)
	if uint64(t) != u {
		return 0, rangeErr("AsInteger", u)
	}
	return t, nil
}

// AsDouble converts numbers and numeric strings to float64.
func (v Value) AsDouble() (float64, error) {
	switch v.ext.kind() {
	case Int64Kind, Uint64Kind, HalfKind, DoubleKind:
		return v.float(), nil
	case ShortStringKind, LongStringKind:
		f, err := strconv.ParseFloat(v.str(), 64)
		if err != nil {
			return 0, fmt.Errorf("%w: AsDouble: %w", ErrConversion, err)
		}
		return f, nil
	}
	return 0, mismatch("AsDouble", v.ext.kind())
}

// AsHalf returns the binary16 bits of a half float.
func (v Value) AsHalf() (uint16, error) {
	if v.ext.kind() != HalfKind {
		return 0, mismatch("AsHalf", v.ext.kind())
	}
	return v.half(), nil
}

// float returns the value of a numeric kind as float64.
func (v Value) float() float64 {
	switch v.ext.kind() {
	case Int64Kind:
		return float64(v.i64())
	case Uint64Kind:
		return float64(v.u64())
	case HalfKind:
		return DecodeHalf(v.half())
	case DoubleKind:
		return v.f64()
	}
	return 0
}

// AsString returns the text of a scalar. Byte strings are encoded according
// to their tag; numbers, bools and null are formatted as JSON scalars
// (non-finite floats as null). Arrays and objects fail with
// ErrTypeMismatch.
func (v Value) AsString() (string, error) {
	switch v.ext.kind() {
	case NullKind:
		return "null", nil
	case BoolKind:
		return strconv.FormatBool(v.boolean()), nil
	case Int64Kind:
		return strconv.FormatInt(v.i64(), 10), nil
	case Uint64Kind:
		return strconv.FormatUint(v.u64(), 10), nil
	case HalfKind, DoubleKind:
		return FormatFloat(v.float()), nil
	case ShortStringKind, LongStringKind:
		return v.str(), nil
	case ByteStringKind:
		return EncodeBytes(v.bytes(), v.ext.tag()), nil
	}
	return "", mismatch("AsString", v.ext.kind())
}

// FormatFloat renders f as the shortest JSON number text that parses back to
// f. NaN and infinities render as null.
func FormatFloat(f float64) string {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "null"
	}
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

// AsStringView returns the content of a string value. Long strings are not
// copied; the result must not outlive v.
func (v Value) AsStringView() (string, error) {
	if !v.IsString() {
		return "", mismatch("AsStringView", v.ext.kind())
	}
	return v.str(), nil
}

// AsByteStringView returns the bytes of a byte string without copying. The
// caller must not modify them.
func (v Value) AsByteStringView() ([]byte, error) {
	if v.ext.kind() != ByteStringKind {
		return nil, mismatch("AsByteStringView", v.ext.kind())
	}
	return v.bytes(), nil
}

// AsBytes returns a copy of a byte string, or decodes a string whose tag
// (or, failing that, hint) names a binary text encoding.
func (v Value) AsBytes(hint SemanticTag) ([]byte, error) {
	switch v.ext.kind() {
	case ByteStringKind:
		return append([]byte(nil), v.bytes()...), nil
	case ShortStringKind, LongStringKind:
		t := v.ext.tag()
		if !t.IsBinaryText() {
			t = hint
		}
		return DecodeBytes(v.str(), t)
	}
	return nil, mismatch("AsBytes", v.ext.kind())
}

// At returns the array element at i. The pointer is valid until the array
// is next resized.
func (v Value) At(i int) (*Value, error) {
	a := v.array()
	if a == nil {
		return nil, notArray("At", v.ext.kind())
	}
	return a.At(i)
}

// AtKey returns the member value under k.
func (v Value) AtKey(k string) (*Value, error) {
	switch v.ext.kind() {
	case ObjectKind:
		if x, ok := v.object().Get(k); ok {
			return x, nil
		}
		return nil, &KeyError{Key: k}
	case EmptyObjectKind:
		return nil, &KeyError{Key: k}
	}
	return nil, notObject("AtKey", v.ext.kind())
}

// AtOrNull is AtKey returning a detached null when k is absent or v is not
// an object.
func (v Value) AtOrNull(k string) *Value {
	if o := v.object(); o != nil {
		if x, ok := o.Get(k); ok {
			return x
		}
	}
	return &Value{}
}

// Find returns the position of k in an object. It never fails: for absent
// keys and non-objects it reports false.
func (v Value) Find(k string) (int, bool) {
	if o := v.object(); o != nil {
		return o.Find(k)
	}
	return 0, false
}

func (v Value) Contains(k string) bool {
	_, ok := v.Find(k)
	return ok
}

func (v Value) Count(k string) int {
	if o := v.object(); o != nil {
		return o.Count(k)
	}
	return 0
}

// GetOr returns a copy of the member under k, or def when v lacks k.
// Ownership of def passes back to the caller in the latter case.
func (v Value) GetOr(k string, def Value) (Value, error) {
	if o := v.object(); o != nil {
		if x, ok := o.Get(k); ok {
			return x.Clone()
		}
	}
	return def, nil
}

func (v Value) Array() (*Array, error) {
	if a := v.array(); a != nil {
		return a, nil
	}
	return nil, notArray("Array", v.ext.kind())
}

// Object returns the object payload. For EmptyObject it returns a detached
// empty SortedObject: call Materialize first to mutate in place.
func (v Value) Object() (Object, error) {
	switch v.ext.kind() {
	case ObjectKind:
		return v.object(), nil
	case EmptyObjectKind:
		return MakeSorted(), nil
	}
	return nil, notObject("Object", v.ext.kind())
}

// Members iterates over an object's members. Other kinds yield nothing.
func (v Value) Members() iter.Seq2[string, *Value] {
	if o := v.object(); o != nil {
		return o.All()
	}
	return func(func(string, *Value) bool) {}
}

// Elements iterates over an array's elements. Other kinds yield nothing.
func (v Value) Elements() iter.Seq2[int, *Value] {
	if a := v.array(); a != nil {
		return a.All()
	}
	return func(func(int, *Value) bool) {}
}

// objectForWrite returns v's object, materializing an EmptyObject.
func (v *Value) objectForWrite(op string) (Object, error) {
	switch v.ext.kind() {
	case EmptyObjectKind:
		v.Materialize()
		fallthrough
	case ObjectKind:
		return v.object(), nil
	}
	return nil, notObject(op, v.ext.kind())
}

// InsertOrAssign stores x under k, taking ownership of x. On error x still
// belongs to the caller.
func (v *Value) InsertOrAssign(k string, x Value) (int, bool, error) {
	o, err := v.objectForWrite("InsertOrAssign")
	if err != nil {
		return 0, false, err
	}
	i, inserted := o.InsertOrAssign(k, x)
	return i, inserted, nil
}

// TryEmplace stores x under k if k is absent. Unless it reports an
// insertion, x still belongs to the caller.
func (v *Value) TryEmplace(k string, x Value) (int, bool, error) {
	o, err := v.objectForWrite("TryEmplace")
	if err != nil {
		return 0, false, err
	}
	i, inserted := o.TryEmplace(k, x)
	return i, inserted, nil
}

// EraseKey removes the member under k, reporting whether there was one.
func (v *Value) EraseKey(k string) (bool, error) {
	switch v.ext.kind() {
	case ObjectKind:
		return v.object().EraseKey(k), nil
	case EmptyObjectKind:
		return false, nil
	}
	return false, notObject("EraseKey", v.ext.kind())
}

// EraseAt removes the element or member at position i.
func (v *Value) EraseAt(i int) error {
	switch v.ext.kind() {
	case ArrayKind:
		return v.array().EraseAt(i)
	case ObjectKind:
		return v.object().EraseAt(i)
	case EmptyObjectKind:
		return &IndexError{Index: i}
	}
	return notArray("EraseAt", v.ext.kind())
}

// EraseRange removes the elements or members at positions [first, last).
func (v *Value) EraseRange(first, last int) error {
	switch v.ext.kind() {
	case ArrayKind:
		return v.array().EraseRange(first, last)
	case ObjectKind:
		return v.object().EraseRange(first, last)
	case EmptyObjectKind:
		if first == 0 && last == 0 {
			return nil
		}
		return &IndexError{Index: last}
	}
	return notArray("EraseRange", v.ext.kind())
}

// PushBack appends x to an array, taking ownership of x.
func (v *Value) PushBack(x Value) error {
	a := v.array()
	if a == nil {
		return notArray("PushBack", v.ext.kind())
	}
	a.PushBack(x)
	return nil
}

// Insert inserts xs before position i of an array, taking ownership.
func (v *Value) Insert(i int, xs ...Value) error {
	a := v.array()
	if a == nil {
		return notArray("Insert", v.ext.kind())
	}
	return a.Insert(i, xs...)
}

func srcObject(op string, src Value) (Object, error) {
	switch src.ext.kind() {
	case ObjectKind:
		return src.object(), nil
	case EmptyObjectKind:
		return nil, nil
	}
	return nil, notObject(op, src.ext.kind())
}

// Merge copies into v the members of src whose keys v lacks.
func (v *Value) Merge(src Value) error {
	so, err := srcObject("Merge", src)
	if err != nil {
		return err
	}
	o, err := v.objectForWrite("Merge")
	if err != nil {
		return err
	}
	if so == nil {
		return nil
	}
	return o.Merge(so)
}

// MergeOrUpdate copies every member of src into v, replacing the values of
// keys v already has.
func (v *Value) MergeOrUpdate(src Value) error {
	so, err := srcObject("MergeOrUpdate", src)
	if err != nil {
		return err
	}
	o, err := v.objectForWrite("MergeOrUpdate")
	if err != nil {
		return err
	}
	if so == nil {
		return nil
	}
	return o.MergeOrUpdate(so)
}

// Clear empties an array or object. Other kinds are left alone.
func (v *Value) Clear() {
	switch v.ext.kind() {
	case ArrayKind:
		v.array().Clear()
	case ObjectKind:
		v.object().Clear()
	}
}

// Resize truncates or null-extends an array.
func (v *Value) Resize(n int) error {
	a := v.array()
	if a == nil {
		return notArray("Resize", v.ext.kind())
	}
	a.Resize(n)
	return nil
}

// ResizeWith is Resize filling new slots with copies of fill. fill remains
// owned by the caller.
func (v *Value) ResizeWith(n int, fill Value) error {
	a := v.array()
	if a == nil {
		return notArray("ResizeWith", v.ext.kind())
	}
	return a.ResizeWith(n, fill)
}

// Reserve grows the capacity of an array or object to at least n.
func (v *Value) Reserve(n int) error {
	switch v.ext.kind() {
	case ArrayKind:
		v.array().Reserve(n)
		return nil
	case ObjectKind, EmptyObjectKind:
		o, _ := v.objectForWrite("Reserve")
		o.Reserve(n)
		return nil
	}
	return notArray("Reserve", v.ext.kind())
}

func (v *Value) ShrinkToFit() {
	switch v.ext.kind() {
	case ArrayKind:
		v.array().ShrinkToFit()
	case ObjectKind:
		v.object().ShrinkToFit()
	}
}
