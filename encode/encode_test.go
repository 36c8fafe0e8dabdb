package encode

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/google/go-cmp/cmp"

	"github.com/signadot/jval/format"
	"github.com/signadot/jval/parse"
	"github.com/signadot/jval/value"
)

var equalValues = cmp.Comparer(value.Equal)

func obj(kvs ...any) value.Value {
	ms := make([]value.Member, 0, len(kvs)/2)
	for i := 0; i < len(kvs); i += 2 {
		ms = append(ms, value.Member{Key: kvs[i].(string), Value: kvs[i+1].(value.Value)})
	}
	return value.NewObject(ms...)
}

func TestEncodeJSONCompact(t *testing.T) {
	tests := []struct {
		name string
		v    value.Value
		want string
	}{
		{"null", value.Null(), `null`},
		{"bool", value.Bool(false), `false`},
		{"int", value.Int(-12), `-12`},
		{"uint", value.Uint(math.MaxUint64), `18446744073709551615`},
		{"double", value.Double(1.5), `1.5`},
		{"whole double", value.Double(2), `2.0`},
		{"half", value.HalfFromFloat(0.5), `0.5`},
		{"nan", value.Double(math.NaN()), `null`},
		{"inf", value.Double(math.Inf(-1)), `null`},
		{"string", value.String(`a"b<c>`), `"a\"b<c>"`},
		{"nul", value.String("a\x00b"), `"a\u0000b"`},
		{"bigint", value.String("123456789012345678901234567890").WithTag(value.Bigint), `123456789012345678901234567890`},
		{"bad bigint", value.String("12x").WithTag(value.Bigint), `"12x"`},
		{"bytes", value.Bytes([]byte{0xfb, 0xff}), `"-_8"`},
		{"base16", value.Bytes([]byte{0xfb, 0xff}).WithTag(value.Base16), `"FBFF"`},
		{"base64", value.Bytes([]byte{0xfb, 0xff}).WithTag(value.Base64), `"+/8="`},
		{"empty array", value.NewArray(), `[]`},
		{"empty object", value.EmptyObject(), `{}`},
		{
			"nested",
			obj("a", value.Int(1), "b", value.NewArray(value.Int(1), value.Int(2), value.Int(3))),
			`{"a":1,"b":[1,2,3]}`,
		},
		{
			"ordered",
			value.NewOrderedObject(
				value.Member{Key: "z", Value: value.EmptyObject()},
				value.Member{Key: "a", Value: value.NewArray(value.NewArray())},
			),
			`{"z":{},"a":[[]]}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MustString(tt.v, EncodeIndent(0))
			if got != tt.want {
				t.Errorf("got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestEncodeJSONIndent(t *testing.T) {
	v := obj(
		"a", value.Int(1),
		"b", value.NewArray(value.Int(1), value.NewArray(), value.EmptyObject()),
		"c", obj("d", value.Null()),
	)
	want := `{
  "a": 1,
  "b": [
    1,
    [],
    {}
  ],
  "c": {
    "d": null
  }
}
`
	buf := &bytes.Buffer{}
	if err := Encode(v, buf); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if got := MustString(v, EncodeIndent(4)); !strings.Contains(got, "\n    \"a\": 1") {
		t.Errorf("indent 4:\n%s", got)
	}
}

func TestEncodeJSONRoundTrip(t *testing.T) {
	ins := []string{
		`{"a":1,"b":[1,2,3]}`,
		`[null,true,false,-1,18446744073709551615,0.25,"x\ty",{"":[]}]`,
		`{"k":{"n":{"m":{}}}}`,
		`123456789012345678901234567890`,
	}
	for _, in := range ins {
		t.Run(in, func(t *testing.T) {
			v, err := parse.ParseString(in)
			if err != nil {
				t.Fatal(err)
			}
			out := MustString(v, EncodeIndent(0))
			back, err := parse.ParseString(out)
			if err != nil {
				t.Fatalf("reparse %s: %v", out, err)
			}
			if diff := cmp.Diff(v, back, equalValues); diff != "" {
				t.Errorf("(-first +second):\n%s", diff)
			}
			if back.Tag() != v.Tag() {
				t.Errorf("tag %v, want %v", back.Tag(), v.Tag())
			}
		})
	}
}

func TestEncodeYAMLRoundTrip(t *testing.T) {
	vals := []value.Value{
		value.Null(),
		value.Int(42),
		value.String("multi\nline"),
		value.NewArray(),
		value.EmptyObject(),
		value.NewOrderedObject(
			value.Member{Key: "z", Value: value.NewArray(value.Int(1), value.Double(2.5), value.String("true"))},
			value.Member{Key: "a", Value: obj("x", value.Bool(true), "y", value.Null())},
			value.Member{Key: "bin", Value: value.Bytes([]byte("hello"))},
			value.Member{Key: "big", Value: value.String("123456789012345678901234567890").WithTag(value.Bigint)},
			value.Member{Key: "when", Value: value.String("2001-12-14").WithTag(value.Datetime)},
		),
	}
	for _, v := range vals {
		t.Run(v.Kind().String(), func(t *testing.T) {
			var buf bytes.Buffer
			if err := Encode(v, &buf, EncodeFormat(format.YAMLFormat)); err != nil {
				t.Fatal(err)
			}
			back, err := parse.Parse(buf.Bytes(), parse.ParseYAML(), parse.ParseOrdered(true))
			if err != nil {
				t.Fatalf("reparse:\n%s\n%v", buf.String(), err)
			}
			if diff := cmp.Diff(v, back, equalValues); diff != "" {
				t.Errorf("yaml:\n%s\n(-want +got):\n%s", buf.String(), diff)
			}
			for k, x := range v.Members() {
				if got := back.MustAtKey(k).Tag(); got != x.Tag() {
					t.Errorf("%s: tag %v, want %v", k, got, x.Tag())
				}
			}
			if v.IsObject() && v.Size() > 0 {
				o, _ := back.Object()
				if diff := cmp.Diff([]string{"z", "a", "bin", "big", "when"}, o.Keys()); diff != "" {
					t.Errorf("key order (-want +got):\n%s", diff)
				}
			}
		})
	}
}

func TestEncodeColors(t *testing.T) {
	saved := color.NoColor
	color.NoColor = false
	defer func() { color.NoColor = saved }()

	v := obj("a", value.NewArray(value.Int(1), value.String("s")))
	plain := MustString(v)
	colored := MustString(v, EncodeColors(NewColors()))
	if !strings.Contains(colored, "\x1b[") {
		t.Errorf("no escape sequences in %q", colored)
	}
	if colored == plain {
		t.Errorf("colors had no effect")
	}
	if got := MustString(v, EncodeColors(nil)); got != plain {
		t.Errorf("nil colors changed output: %q", got)
	}

	y := MustString(v, EncodeFormat(format.YAMLFormat), EncodeColors(NewColors()))
	if !strings.Contains(y, "\x1b[") {
		t.Errorf("no escape sequences in yaml %q", y)
	}
}

func TestColorsGet(t *testing.T) {
	c := NewColors()
	if c.Get(value.ArrayType, FieldColor) == nil {
		t.Errorf("missing default")
	}
	if got := c.Get(value.ArrayType, FieldColor)("x%y"); got != "x%y" {
		t.Errorf("default color changed text: %q", got)
	}
}

func TestFormatFromOpts(t *testing.T) {
	if f := FormatFromOpts(EncodeIndent(3), EncodeFormat(format.YAMLFormat)); f != format.YAMLFormat {
		t.Errorf("got %v", f)
	}
	if f := FormatFromOpts(); f != format.JSONFormat {
		t.Errorf("default %v", f)
	}
}
