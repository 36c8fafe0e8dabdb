package main

import (
	"bytes"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/signadot/jval/format"
	"github.com/signadot/jval/parse"
	"github.com/signadot/jval/value"
)

var equalValues = cmp.Comparer(value.Equal)

func mustParse(t *testing.T, s string) value.Value {
	t.Helper()
	v, err := parse.ParseString(s)
	if err != nil {
		t.Fatalf("parse %s: %v", s, err)
	}
	return v
}

func TestMainCommand(t *testing.T) {
	cmd := MainCommand()
	if cmd == nil {
		t.Fatal("nil command")
	}
}

func TestInFormat(t *testing.T) {
	cfg := &MainConfig{}
	if f := cfg.inFormat("x.yaml"); f != format.YAMLFormat {
		t.Errorf("x.yaml: %v", f)
	}
	if f := cfg.inFormat("-"); f != format.JSONFormat {
		t.Errorf("stdin: %v", f)
	}
	j := format.JSONFormat
	cfg.InFormat = &j
	if f := cfg.inFormat("x.yml"); f != format.JSONFormat {
		t.Errorf("-I json with x.yml: %v", f)
	}
}

func TestViewDocs(t *testing.T) {
	tests := []struct {
		name string
		cfg  MainConfig
		path string
		in   string
		out  string
	}{
		{
			name: "compact json",
			path: "a.json",
			in:   `{"b": [1, 2], "a": "x"}`,
			out:  "{\"a\":\"x\",\"b\":[1,2]}\n",
		},
		{
			name: "ordered",
			cfg:  MainConfig{Ordered: true},
			path: "a.json",
			in:   `{"b": 1, "a": 2}`,
			out:  "{\"b\":1,\"a\":2}\n",
		},
		{
			name: "yaml stream",
			path: "a.yaml",
			in:   "a: 1\n---\nb: true\n",
			out:  "{\"a\":1}\n---\n{\"b\":true}\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := bytes.NewBuffer(nil)
			if err := viewDocs(&tt.cfg, buf, []byte(tt.in), tt.path); err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tt.out, buf.String()); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
	if err := viewDocs(&MainConfig{}, bytes.NewBuffer(nil), []byte("{"), "-"); err == nil {
		t.Errorf("no error for truncated input")
	}
}

func TestWriteKinds(t *testing.T) {
	v := mustParse(t, `{"a":[1,-2,"s",{}],"b":"`+"0123456789abcdef"+`","c":null}`)
	v.AtOrNull("c").SetTag(value.Undefined)
	buf := bytes.NewBuffer(nil)
	if err := writeKinds(buf, v, true); err != nil {
		t.Fatal(err)
	}
	want := `$: object
  a: array
    [0]: int64
    [1]: int64
    [2]: short_string
    [3]: object
  b: long_string
  c: null !undefined
`
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestDiffInputs(t *testing.T) {
	a := mustParse(t, `{"a":1,"b":[1,2]}`)
	b := mustParse(t, `{"a":2,"b":[1,2]}`)
	buf := bytes.NewBuffer(nil)
	differs, err := diffInputs(buf, a, b, false)
	if err != nil {
		t.Fatal(err)
	}
	if !differs {
		t.Fatal("no difference reported")
	}
	if diff := cmp.Diff("~ $.a: 1 -> 2\n", buf.String()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	buf.Reset()
	if _, err := diffInputs(buf, a, b, true); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff("~ $.a: 2 -> 1\n", buf.String()); diff != "" {
		t.Errorf("reversed (-want +got):\n%s", diff)
	}
	buf.Reset()
	differs, err = diffInputs(buf, a, a, false)
	if err != nil || differs || buf.Len() != 0 {
		t.Errorf("equal inputs: %v %v %q", differs, err, buf.String())
	}
}

func TestMergeInto(t *testing.T) {
	a := mustParse(t, `{"a":1}`)
	if err := mergeInto(&a, mustParse(t, `{"a":2,"b":3}`), false); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(mustParse(t, `{"a":1,"b":3}`), a, equalValues); diff != "" {
		t.Errorf("merge (-want +got):\n%s", diff)
	}
	if err := mergeInto(&a, mustParse(t, `{"a":2}`), true); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(mustParse(t, `{"a":2,"b":3}`), a, equalValues); diff != "" {
		t.Errorf("update (-want +got):\n%s", diff)
	}
	if err := mergeInto(&a, value.Int(1), false); !errors.Is(err, value.ErrNotObject) {
		t.Errorf("merge of int err = %v", err)
	}
}

func TestApplyPatch(t *testing.T) {
	doc := mustParse(t, `{"a":1,"b":2}`)
	got, err := applyPatch(doc, mustParse(t, `{"a":null}`), true)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(mustParse(t, `{"b":2}`), got, equalValues); diff != "" {
		t.Errorf("merge patch (-want +got):\n%s", diff)
	}
	got, err = applyPatch(doc, mustParse(t, `[{"op":"add","path":"/c","value":3}]`), false)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(mustParse(t, `{"a":1,"b":2,"c":3}`), got, equalValues); diff != "" {
		t.Errorf("json patch (-want +got):\n%s", diff)
	}
}

func TestGetPaths(t *testing.T) {
	doc := mustParse(t, `{"a":{"b":[0,"x"]},"t":true}`)
	buf := bytes.NewBuffer(nil)
	truthy, err := getPaths(&MainConfig{}, buf, &doc, []string{"$.a.b[1]", "/t", "a.b"})
	if err != nil {
		t.Fatal(err)
	}
	if !truthy {
		t.Errorf("results should be truthy")
	}
	want := "\"x\"\n---\ntrue\n---\n[0,\"x\"]\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	truthy, err = getPaths(&MainConfig{}, bytes.NewBuffer(nil), &doc, []string{"/t", "$.a.b[0]"})
	if err != nil {
		t.Fatal(err)
	}
	if truthy {
		t.Errorf("zero should not be truthy")
	}
	if _, err := getPaths(&MainConfig{}, bytes.NewBuffer(nil), &doc, []string{"/missing"}); !errors.Is(err, value.ErrKeyNotFound) {
		t.Errorf("missing key err = %v", err)
	}
}

func TestSetPaths(t *testing.T) {
	doc := mustParse(t, `{"a":{}}`)
	if err := setPaths(&doc, mustParse(t, `[1]`), []string{"$.a.x", "/b/c", "l[0]"}); err != nil {
		t.Fatal(err)
	}
	want := mustParse(t, `{"a":{"x":[1]},"b":{"c":[1]},"l":[[1]]}`)
	if diff := cmp.Diff(want, doc, equalValues); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if err := setPaths(&doc, value.Null(), []string{"$.a.x[5]"}); !errors.Is(err, value.ErrIndexOutOfRange) {
		t.Errorf("set past end err = %v", err)
	}
}

func TestParsePath(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", "$"},
		{"$.a[1]", "$.a[1]"},
		{"/a/1", "$.a.1"},
		{"a[1]", "$.a[1]"},
		{"[2].b", "$[2].b"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			p, err := parsePath(tt.in)
			if err != nil {
				t.Fatal(err)
			}
			if got := p.String(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
	if _, err := parsePath("$[x"); !errors.Is(err, value.ErrPath) {
		t.Errorf("bad path err = %v", err)
	}
}
