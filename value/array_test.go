package value

import (
	"errors"
	"strings"
	"testing"
)

func ints(a *Array) []int64 {
	res := make([]int64, 0, a.Len())
	for _, v := range a.All() {
		res = append(res, v.MustInt64())
	}
	return res
}

func TestArrayEdits(t *testing.T) {
	a := MakeArray(Int(1), Int(2))
	a.PushBack(Int(5))
	if err := a.Insert(2, Int(3), Int(4)); err != nil {
		t.Fatal(err)
	}
	if err := a.Insert(0, Int(0)); err != nil {
		t.Fatal(err)
	}
	if err := a.Insert(7, Int(0)); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("Insert(7) = %v", err)
	}
	want := []int64{0, 1, 2, 3, 4, 5}
	if got := ints(a); !slicesEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	if err := a.EraseAt(0); err != nil {
		t.Fatal(err)
	}
	if err := a.EraseRange(1, 3); err != nil {
		t.Fatal(err)
	}
	if err := a.EraseRange(2, 1); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("EraseRange(2, 1) = %v", err)
	}
	want = []int64{1, 4, 5}
	if got := ints(a); !slicesEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	if _, err := a.At(3); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("At(3) = %v", err)
	}
	var ie *IndexError
	if _, err := a.At(-1); !errors.As(err, &ie) || ie.Size != 3 {
		t.Errorf("At(-1) = %v", err)
	}
}

func slicesEqual(a, b []int64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestArrayResize(t *testing.T) {
	arena := NewArena(0)
	a := MakeArrayWith(arena, Int(1))
	a.Resize(3)
	if a.Len() != 3 || !a.Values()[2].IsNull() {
		t.Fatalf("Resize(3): len %d", a.Len())
	}
	fill := String(strings.Repeat("f", 20))
	if err := a.ResizeWith(5, fill); err != nil {
		t.Fatal(err)
	}
	if a.Len() != 5 || arena.InUse() != 40 {
		t.Fatalf("ResizeWith(5): len %d in use %d", a.Len(), arena.InUse())
	}
	if !Equal(a.Values()[4], fill) {
		t.Errorf("fill not copied")
	}
	a.Resize(1)
	if a.Len() != 1 || arena.InUse() != 0 {
		t.Errorf("Resize(1): len %d in use %d", a.Len(), arena.InUse())
	}

	small := NewArena(30)
	b := MakeArrayWith(small)
	if err := b.ResizeWith(2, fill); !errors.Is(err, ErrAllocation) {
		t.Fatalf("err = %v", err)
	}
	if b.Len() != 0 || small.InUse() != 0 {
		t.Errorf("failed ResizeWith left len %d in use %d", b.Len(), small.InUse())
	}
}

func TestArrayCapacity(t *testing.T) {
	v := NewArray()
	if err := v.Reserve(10); err != nil {
		t.Fatal(err)
	}
	if v.Capacity() < 10 {
		t.Errorf("Capacity() = %d", v.Capacity())
	}
	if err := v.PushBack(Bool(true)); err != nil {
		t.Fatal(err)
	}
	v.ShrinkToFit()
	if v.Capacity() != 1 {
		t.Errorf("Capacity() after shrink = %d", v.Capacity())
	}
	v.Clear()
	if !v.Empty() {
		t.Errorf("not empty after Clear")
	}
}

func TestShrinkToFitReallocates(t *testing.T) {
	a := MakeArray(Int(1), Int(2))
	a.Reserve(16)
	old := &a.Values()[0]
	a.ShrinkToFit()
	if a.Cap() != 2 {
		t.Errorf("Cap() = %d after shrink", a.Cap())
	}
	if &a.Values()[0] == old {
		t.Errorf("ShrinkToFit kept the reserved backing array")
	}
	if got := ints(a); !slicesEqual(got, []int64{1, 2}) {
		t.Errorf("got %v", got)
	}

	o := MakeOrdered(Member{Key: "b", Value: Int(1)}, Member{Key: "a", Value: Int(2)})
	o.Reserve(16)
	oldM := &o.Members()[0]
	o.ShrinkToFit()
	if o.Cap() != 2 || &o.Members()[0] == oldM {
		t.Errorf("object shrink: cap %d, same backing %v", o.Cap(), &o.Members()[0] == oldM)
	}
	if v, ok := o.Get("a"); !ok || v.MustInt64() != 2 {
		t.Errorf("lookup after shrink failed")
	}
}
