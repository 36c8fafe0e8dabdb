package value

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParsePath(t *testing.T) {
	tests := []struct {
		in      string
		out     string
		pointer string
	}{
		{"$", "$", ""},
		{"$.a", "$.a", "/a"},
		{"$.a.b[0]", "$.a.b[0]", "/a/b/0"},
		{"$.'x.y'[2].z", "$.'x.y'[2].z", "/x.y/2/z"},
		{"$.'it\\'s'", "$.'it\\'s'", "/it's"},
		{"$.list[-]", "$.list[-]", "/list/-"},
		{"$.'a/b~c'", "$.a/b~c", "/a~1b~0c"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			p, err := ParsePath(tt.in)
			if err != nil {
				t.Fatal(err)
			}
			if got := p.String(); got != tt.out {
				t.Errorf("String() = %q, want %q", got, tt.out)
			}
			if got := p.Pointer(); got != tt.pointer {
				t.Errorf("Pointer() = %q, want %q", got, tt.pointer)
			}
		})
	}
	for _, bad := range []string{"", "a.b", "$a", "$[x]", "$.'open", "$[1"} {
		if _, err := ParsePath(bad); !errors.Is(err, ErrPath) {
			t.Errorf("ParsePath(%q) err = %v", bad, err)
		}
	}
}

func TestParsePointer(t *testing.T) {
	p, err := ParsePointer("/a~1b/0/~0")
	if err != nil {
		t.Fatal(err)
	}
	if got := p.String(); got != "$.a/b.0.~" {
		t.Errorf("String() = %q", got)
	}
	if got := p.Pointer(); got != "/a~1b/0/~0" {
		t.Errorf("Pointer() = %q", got)
	}
	if _, err := ParsePointer("a"); !errors.Is(err, ErrPath) {
		t.Errorf("ParsePointer(a) err = %v", err)
	}
}

func TestGetPath(t *testing.T) {
	v := obj("a", NewArray(Int(1), obj("b", String("deep"))))
	got, err := v.GetPath("a", "1", "b")
	if err != nil {
		t.Fatal(err)
	}
	if got.MustStringView() != "deep" {
		t.Errorf("got %v", got.Kind())
	}
	root, err := v.GetPath()
	if err != nil || root != &v {
		t.Errorf("empty path should return the root")
	}
	p, _ := ParsePath("$.a[0]")
	if x, err := v.Get(p); err != nil || x.MustInt64() != 1 {
		t.Errorf("Get(%s) = %v", p, err)
	}
	if _, err := v.GetPath("a", "x"); !errors.Is(err, ErrPath) {
		t.Errorf("non-index step into array err = %v", err)
	}
	if _, err := v.GetPath("a", "7"); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("out of range err = %v", err)
	}
	if _, err := v.GetPath("zz"); !errors.Is(err, ErrKeyNotFound) {
		t.Errorf("missing key err = %v", err)
	}
	if _, err := v.GetPath("a", "0", "q"); !errors.Is(err, ErrNotObject) {
		t.Errorf("step into int err = %v", err)
	}
}

func TestSetPath(t *testing.T) {
	var v Value
	if err := v.SetPath(Int(1), "a", "b"); err != nil {
		t.Fatal(err)
	}
	if err := v.SetPath(String("x"), "a", "c"); err != nil {
		t.Fatal(err)
	}
	p, _ := ParsePath("$.list[-]")
	if err := v.Put(p, Bool(true)); err != nil {
		t.Fatal(err)
	}
	if err := v.Put(p, Bool(false)); err != nil {
		t.Fatal(err)
	}
	if err := v.SetPath(Null(), "list", "0"); err != nil {
		t.Fatal(err)
	}
	p, _ = ParsePath("$.grid[0][0]")
	if err := v.Put(p, Int(9)); err != nil {
		t.Fatal(err)
	}
	want := obj(
		"a", obj("b", Int(1), "c", String("x")),
		"list", NewArray(Null(), Bool(false)),
		"grid", NewArray(NewArray(Int(9))),
	)
	if diff := cmp.Diff(want, v, equalValues); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}

	if err := v.SetPath(Int(0), "a", "b", "c"); !errors.Is(err, ErrNotObject) {
		t.Errorf("set below int err = %v", err)
	}
	if err := v.SetPath(Int(0), "list", "5"); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("set past end err = %v", err)
	}
	if err := v.SetPath(String("root")); err != nil || v.MustStringView() != "root" {
		t.Errorf("set root: %v", err)
	}
}

func TestPutFailureLeavesValueUnchanged(t *testing.T) {
	tests := []struct {
		name string
		v    func() Value
		path string
		want error
	}{
		{"index past end below new member", EmptyObject, "$.a[3]", ErrIndexOutOfRange},
		{"index past end below null", Null, "$[2]", ErrIndexOutOfRange},
		{"deep chain of new containers", func() Value { return obj("a", obj("b", Int(1))) }, "$.a.x.y[0].z[1]", ErrIndexOutOfRange},
		{"new chain succeeds", func() Value { return obj("a", Int(1)) }, "$.n.m[0].a.q", nil},
		{"index step on existing object", func() Value { return obj("a", obj()) }, "$.a[0]", ErrPath},
		{"field step below scalar", func() Value { return obj("a", String("s")) }, "$.a.b.c", ErrNotObject},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := tt.v()
			before := tt.v()
			p, err := ParsePath(tt.path)
			if err != nil {
				t.Fatal(err)
			}
			err = v.Put(p, Int(7))
			if tt.want == nil {
				if err != nil {
					t.Fatalf("Put(%s): %v", tt.path, err)
				}
				return
			}
			if !errors.Is(err, tt.want) {
				t.Fatalf("Put(%s) err = %v, want %v", tt.path, err, tt.want)
			}
			if v.Kind() != before.Kind() {
				t.Errorf("kind changed from %v to %v", before.Kind(), v.Kind())
			}
			if diff := cmp.Diff(before, v, equalValues); diff != "" {
				t.Errorf("value changed (-before +after):\n%s", diff)
			}
		})
	}
}

func TestDeletePath(t *testing.T) {
	v := obj("a", obj("b", Int(1), "c", Int(2)), "l", NewArray(Int(1), Int(2)))
	if err := v.DeletePath("a", "b"); err != nil {
		t.Fatal(err)
	}
	if err := v.DeletePath("l", "0"); err != nil {
		t.Fatal(err)
	}
	want := obj("a", obj("c", Int(2)), "l", NewArray(Int(2)))
	if diff := cmp.Diff(want, v, equalValues); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if err := v.DeletePath("a", "b"); !errors.Is(err, ErrKeyNotFound) {
		t.Errorf("delete missing err = %v", err)
	}
	if err := v.DeletePath(); !errors.Is(err, ErrPath) {
		t.Errorf("delete root err = %v", err)
	}
}
