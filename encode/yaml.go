package encode

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/goccy/go-yaml"
	"github.com/goccy/go-yaml/lexer"
	"github.com/goccy/go-yaml/printer"

	"github.com/signadot/jval/value"
)

// taggedScalar marshals as a YAML scalar carrying a local tag.
type taggedScalar struct {
	tag  string
	text string
}

func (s taggedScalar) MarshalYAML() ([]byte, error) {
	return []byte(s.tag + " " + s.text), nil
}

// yamlTree converts v into values goccy/go-yaml marshals in v's iteration
// order.
func yamlTree(v value.Value) (any, error) {
	tag := v.Tag()
	switch v.Kind() {
	case value.NullKind:
		if tag != value.NoTag {
			return taggedScalar{tag.String(), "null"}, nil
		}
		return nil, nil
	case value.BoolKind:
		if tag != value.NoTag {
			return taggedScalar{tag.String(), strconv.FormatBool(v.MustBool())}, nil
		}
		return v.MustBool(), nil
	case value.Int64Kind:
		if tag != value.NoTag {
			return taggedScalar{tag.String(), strconv.FormatInt(v.MustInt64(), 10)}, nil
		}
		return v.MustInt64(), nil
	case value.Uint64Kind:
		if tag != value.NoTag {
			return taggedScalar{tag.String(), strconv.FormatUint(v.MustUint64(), 10)}, nil
		}
		return v.MustUint64(), nil
	case value.HalfKind, value.DoubleKind:
		f := v.MustDouble()
		if tag != value.NoTag {
			return taggedScalar{tag.String(), yamlFloat(f)}, nil
		}
		return f, nil
	case value.ShortStringKind, value.LongStringKind:
		s := v.MustStringView()
		if tag == value.NoTag {
			return s, nil
		}
		if tag.IsNumber() && isJSONNumber(s) {
			return taggedScalar{tag.String(), s}, nil
		}
		return taggedScalar{tag.String(), quote(s)}, nil
	case value.ByteStringKind:
		bs, err := v.AsByteStringView()
		if err != nil {
			return nil, err
		}
		if tag.IsBinaryText() {
			return taggedScalar{tag.String(), quote(value.EncodeBytes(bs, tag))}, nil
		}
		return taggedScalar{"!!binary", value.EncodeBase64(bs)}, nil
	case value.ArrayKind:
		res := make([]any, 0, v.Size())
		for _, x := range v.Elements() {
			y, err := yamlTree(*x)
			if err != nil {
				return nil, err
			}
			res = append(res, y)
		}
		return res, nil
	case value.EmptyObjectKind, value.ObjectKind:
		res := make(yaml.MapSlice, 0, v.Size())
		for k, x := range v.Members() {
			y, err := yamlTree(*x)
			if err != nil {
				return nil, err
			}
			res = append(res, yaml.MapItem{Key: k, Value: y})
		}
		return res, nil
	}
	return nil, fmt.Errorf("%w: unknown kind %v", ErrEncoding, v.Kind())
}

func yamlFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return ".nan"
	case math.IsInf(f, 1):
		return ".inf"
	case math.IsInf(f, -1):
		return "-.inf"
	}
	return value.FormatFloat(f)
}

func encodeYAML(v value.Value, w io.Writer, es *EncState) error {
	tree, err := yamlTree(v)
	if err != nil {
		return err
	}
	indent := es.indent
	if indent <= 0 {
		indent = 2
	}
	d, err := yaml.MarshalWithOptions(tree, yaml.Indent(indent), yaml.IndentSequence(true))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	out := string(d)
	if es.Color != nil {
		out = colorYAML(out)
	}
	if !strings.HasSuffix(out, "\n") {
		out += "\n"
	}
	return writeString(w, out)
}

func ansi(attr color.Attribute) string {
	return fmt.Sprintf("\x1b[%dm", attr)
}

func property(attr color.Attribute) func() *printer.Property {
	return func() *printer.Property {
		return &printer.Property{Prefix: ansi(attr), Suffix: ansi(color.Reset)}
	}
}

// colorYAML re-prints YAML text with terminal colors.
func colorYAML(s string) string {
	tokens := lexer.Tokenize(s)
	var p printer.Printer
	p.Bool = property(color.FgCyan)
	p.Number = property(color.FgHiCyan)
	p.MapKey = property(color.FgHiBlue)
	p.Anchor = property(color.FgHiYellow)
	p.Alias = property(color.FgHiYellow)
	p.String = property(color.FgGreen)
	return p.PrintTokens(tokens)
}
