package value

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

var equalValues = cmp.Comparer(Equal)

func TestConstructorKinds(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		kind StorageKind
	}{
		{"zero", Value{}, NullKind},
		{"null", Null(), NullKind},
		{"bool", Bool(true), BoolKind},
		{"int", Int(-7), Int64Kind},
		{"uint", Uint(7), Uint64Kind},
		{"half", Half(0x3c00), HalfKind},
		{"double", Double(0.25), DoubleKind},
		{"empty string", String(""), ShortStringKind},
		{"short string", String(strings.Repeat("x", ShortStringCap)), ShortStringKind},
		{"long string", String(strings.Repeat("x", ShortStringCap+1)), LongStringKind},
		{"bytes", Bytes([]byte{1, 2}), ByteStringKind},
		{"empty bytes", Bytes(nil), ByteStringKind},
		{"array", NewArray(Int(1)), ArrayKind},
		{"empty object", EmptyObject(), EmptyObjectKind},
		{"object", NewObject(), ObjectKind},
		{"ordered object", NewOrderedObject(), ObjectKind},
		{"nil object", FromObject(nil), EmptyObjectKind},
		{"nil array", FromArray(nil), ArrayKind},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.Kind(); got != tt.kind {
				t.Errorf("Kind() = %v, want %v", got, tt.kind)
			}
			if got := tt.v.Tag(); got != NoTag {
				t.Errorf("Tag() = %v", got)
			}
		})
	}
}

func TestTagKeepsKind(t *testing.T) {
	v := String("aGVsbG8").WithTag(Base64)
	if v.Kind() != ShortStringKind || v.Tag() != Base64 {
		t.Fatalf("got %v %v", v.Kind(), v.Tag())
	}
	v.SetTag(Bigint)
	if v.Kind() != ShortStringKind || v.Tag() != Bigint {
		t.Fatalf("got %v %v", v.Kind(), v.Tag())
	}
	for _, k := range Kinds() {
		e := makeExt(k, Regex)
		if e.kind() != k || e.tag() != Regex {
			t.Errorf("%v: ext round trip gave %v %v", k, e.kind(), e.tag())
		}
	}
}

func TestShortStringBoundary(t *testing.T) {
	prefix := "0123456789abcde"
	if len(prefix) != ShortStringCap {
		t.Fatalf("prefix length %d", len(prefix))
	}
	short := String(prefix)
	long := String(prefix + "f")
	if short.Kind() != ShortStringKind {
		t.Errorf("short kind %v", short.Kind())
	}
	if long.Kind() != LongStringKind {
		t.Errorf("long kind %v", long.Kind())
	}
	if got := short.MustStringView(); got != prefix {
		t.Errorf("short content %q", got)
	}
	if got := long.MustStringView(); got != prefix+"f" {
		t.Errorf("long content %q", got)
	}
	nul := String("a\x00b")
	if got := nul.MustStringView(); got != "a\x00b" {
		t.Errorf("embedded NUL lost: %q", got)
	}
	longNul := String(strings.Repeat("\x00", 40))
	if got := longNul.MustStringView(); len(got) != 40 {
		t.Errorf("long NUL string length %d", len(got))
	}
}

func TestCloneIndependence(t *testing.T) {
	a := NewObject(Member{Key: "list", Value: NewArray(Int(1), String(strings.Repeat("s", 20)))})
	b, err := a.Clone()
	if err != nil {
		t.Fatal(err)
	}
	if !Equal(a, b) {
		t.Fatal("clone not equal")
	}
	elem := b.MustAtKey("list").MustAt(0)
	elem.Set(Int(99))
	if got := a.MustAtKey("list").MustAt(0).MustInt64(); got != 1 {
		t.Errorf("original changed to %d", got)
	}
	if Equal(a, b) {
		t.Errorf("clone still equal after mutation")
	}
}

func TestMove(t *testing.T) {
	a := NewArray(Int(1), Int(2))
	var b Value
	b.Move(&a)
	if a.Kind() != NullKind {
		t.Errorf("source kind %v after move", a.Kind())
	}
	if b.Size() != 2 {
		t.Errorf("dest size %d", b.Size())
	}
	b.Move(&b)
	if b.Size() != 2 {
		t.Errorf("self move changed value: %v", b.Kind())
	}
}

func TestSwapAllKindPairs(t *testing.T) {
	mk := []func() Value{
		Null, func() Value { return Bool(true) }, func() Value { return Int(-1) },
		func() Value { return Uint(1) }, func() Value { return Half(0x3c00) },
		func() Value { return Double(2) }, func() Value { return String("s") },
		func() Value { return String(strings.Repeat("l", 30)) },
		func() Value { return Bytes([]byte{9}) }, func() Value { return NewArray(Int(3)) },
		EmptyObject, func() Value { return NewObject(Member{Key: "k", Value: Null()}) },
	}
	if len(mk) != len(Kinds()) {
		t.Fatalf("%d makers for %d kinds", len(mk), len(Kinds()))
	}
	for i := range mk {
		for j := range mk {
			a, b := mk[i](), mk[j]()
			a.SetTag(Datetime)
			ka, kb := a.Kind(), b.Kind()
			wantA, wantB := mk[i](), mk[j]()
			a.Swap(&b)
			if a.Kind() != kb || b.Kind() != ka {
				t.Errorf("swap %v/%v: got %v/%v", ka, kb, a.Kind(), b.Kind())
			}
			if b.Tag() != Datetime || a.Tag() != NoTag {
				t.Errorf("swap %v/%v: tags %v/%v", ka, kb, a.Tag(), b.Tag())
			}
			if !Equal(a, wantB) || !Equal(b, wantA) {
				t.Errorf("swap %v/%v: content mismatch", ka, kb)
			}
		}
	}
}

func TestArenaRelease(t *testing.T) {
	arena := NewArena(0)
	long, err := StringWith(arena, strings.Repeat("x", 32), NoTag)
	if err != nil {
		t.Fatal(err)
	}
	bs, err := BytesWith(arena, []byte("abcd"), Base16)
	if err != nil {
		t.Fatal(err)
	}
	v := FromArray(MakeArrayWith(arena, long, bs, String("short")))
	if got := arena.InUse(); got != 36 {
		t.Fatalf("InUse() = %d, want 36", got)
	}
	c, err := v.Clone()
	if err != nil {
		t.Fatal(err)
	}
	if got := arena.InUse(); got != 72 {
		t.Fatalf("InUse() after clone = %d, want 72", got)
	}
	c.Release()
	v.Release()
	v.Release()
	if got := arena.InUse(); got != 0 {
		t.Errorf("InUse() after release = %d", got)
	}
	if got := arena.Live(); got != 0 {
		t.Errorf("Live() after release = %d", got)
	}
	if !v.IsNull() {
		t.Errorf("released value is %v", v.Kind())
	}
}

func TestCloneFailureStrongGuarantee(t *testing.T) {
	src := NewArray(
		String(strings.Repeat("a", 20)),
		String(strings.Repeat("b", 20)),
		Bytes([]byte("ccccc")),
	)
	arena := NewArena(30)
	_, err := src.CloneWith(arena)
	if !errors.Is(err, ErrAllocation) {
		t.Fatalf("err = %v, want ErrAllocation", err)
	}
	if got := arena.InUse(); got != 0 {
		t.Errorf("arena InUse() = %d after failed clone", got)
	}
	if src.Size() != 3 || src.MustAt(1).MustStringView() != strings.Repeat("b", 20) {
		t.Errorf("source changed")
	}

	dst := Int(4)
	if err := dst.Assign(src); err != nil {
		t.Fatal(err)
	}
	if !Equal(dst, src) {
		t.Errorf("Assign did not copy")
	}
}

func TestMoveWith(t *testing.T) {
	a1, a2 := NewNamedArena("a1", 0), NewNamedArena("a2", 0)
	src, err := StringWith(a1, strings.Repeat("m", 16), NoTag)
	if err != nil {
		t.Fatal(err)
	}
	var dst Value
	if err := dst.MoveWith(&src, a1); err != nil {
		t.Fatal(err)
	}
	if !src.IsNull() || a1.InUse() != 16 {
		t.Fatalf("same allocator move: src %v, a1 %d", src.Kind(), a1.InUse())
	}

	var other Value
	if err := other.MoveWith(&dst, a2); err != nil {
		t.Fatal(err)
	}
	if !dst.IsNull() {
		t.Errorf("source kind %v after cross move", dst.Kind())
	}
	if a1.InUse() != 0 || a2.InUse() != 16 {
		t.Errorf("cross move: a1 %d a2 %d", a1.InUse(), a2.InUse())
	}
	if !other.Allocator().Equal(a2) {
		t.Errorf("payload not owned by a2")
	}

	full := NewArena(1)
	keep := other
	if err := dst.MoveWith(&other, full); !errors.Is(err, ErrAllocation) {
		t.Fatalf("err = %v", err)
	}
	if !Equal(other, keep) || !dst.IsNull() {
		t.Errorf("failed move changed values")
	}
}

func TestMaterialize(t *testing.T) {
	v := EmptyObject().WithTag(ID)
	v.Materialize()
	if v.Kind() != ObjectKind || v.Tag() != ID || v.Size() != 0 {
		t.Errorf("got %v %v %d", v.Kind(), v.Tag(), v.Size())
	}
	n := Int(1)
	n.Materialize()
	if n.Kind() != Int64Kind {
		t.Errorf("materialized an int")
	}

	w := EmptyObject()
	if _, _, err := w.InsertOrAssign("a", Int(1)); err != nil {
		t.Fatal(err)
	}
	if w.Kind() != ObjectKind || w.Size() != 1 {
		t.Errorf("implicit materialize: %v %d", w.Kind(), w.Size())
	}
}

func TestEndToEndFromMembers(t *testing.T) {
	v := NewObject(
		Member{Key: "a", Value: Int(1)},
		Member{Key: "b", Value: NewArray(Int(1), Int(2), Int(3))},
	)
	if v.Size() != 2 {
		t.Fatalf("size %d", v.Size())
	}
	b := v.MustAtKey("b")
	if b.Size() != 3 {
		t.Fatalf("b size %d", b.Size())
	}
	if got := MustInteger[int](*b.MustAt(2)); got != 3 {
		t.Errorf("b[2] = %d", got)
	}
	want := NewOrderedObject(
		Member{Key: "b", Value: NewArray(Uint(1), Double(2), Int(3))},
		Member{Key: "a", Value: HalfFromFloat(1)},
	)
	if diff := cmp.Diff(want, v, equalValues); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}
