package parse

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/signadot/jval/stream"
	"github.com/signadot/jval/value"
)

// parseYAML delivers the events of the first YAML document in d. An empty
// document is null.
func parseYAML(d []byte, h stream.Handler, opts *parseOpts) error {
	var doc yaml.Node
	if err := yaml.Unmarshal(d, &doc); err != nil {
		return fmt.Errorf("%w: %w", ErrParse, err)
	}
	if doc.Kind == 0 {
		return h.Null(value.NoTag)
	}
	y := &yamlParser{h: h, maxDepth: opts.maxDepth}
	return y.node(&doc, 0)
}

type yamlParser struct {
	h        stream.Handler
	maxDepth int
}

func (y *yamlParser) errorf(n *yaml.Node, err error, format string, args ...any) error {
	return fmt.Errorf("%w: line %d column %d: %s", err, n.Line, n.Column, fmt.Sprintf(format, args...))
}

// tag returns the semantic tag named by a local YAML tag on n.
func (y *yamlParser) tag(n *yaml.Node) (value.SemanticTag, error) {
	if n.Tag == "!" || !strings.HasPrefix(n.Tag, "!") || strings.HasPrefix(n.Tag, "!!") {
		return value.NoTag, nil
	}
	t, err := value.ParseTag(n.Tag)
	if err != nil {
		return value.NoTag, y.errorf(n, ErrParse, "%v", err)
	}
	return t, nil
}

func (y *yamlParser) node(n *yaml.Node, depth int) error {
	if depth > y.maxDepth {
		return ErrTooDeep
	}
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return y.h.Null(value.NoTag)
		}
		return y.node(n.Content[0], depth)
	case yaml.AliasNode:
		return y.node(n.Alias, depth+1)
	case yaml.SequenceNode:
		tag, err := y.tag(n)
		if err != nil {
			return err
		}
		if err := y.h.BeginArray(len(n.Content), tag); err != nil {
			return err
		}
		for _, c := range n.Content {
			if err := y.node(c, depth+1); err != nil {
				return err
			}
		}
		return y.h.EndArray()
	case yaml.MappingNode:
		tag, err := y.tag(n)
		if err != nil {
			return err
		}
		if err := y.h.BeginObject(len(n.Content)/2, tag); err != nil {
			return err
		}
		for i := 0; i+1 < len(n.Content); i += 2 {
			k, v := n.Content[i], n.Content[i+1]
			if k.Kind == yaml.AliasNode {
				k = k.Alias
			}
			if k.Kind != yaml.ScalarNode {
				return y.errorf(k, ErrBadKey, "%s key", kindName(k.Kind))
			}
			if kt, _ := y.tag(k); kt != value.NoTag {
				return y.errorf(k, ErrKeyTag, "%s", k.Tag)
			}
			if err := y.h.Key(k.Value); err != nil {
				return err
			}
			if err := y.node(v, depth+1); err != nil {
				return err
			}
		}
		return y.h.EndObject()
	case yaml.ScalarNode:
		return y.scalar(n)
	}
	return y.errorf(n, ErrParse, "unexpected node kind %d", n.Kind)
}

func kindName(k yaml.Kind) string {
	switch k {
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.AliasNode:
		return "alias"
	}
	return "scalar"
}

func (y *yamlParser) scalar(n *yaml.Node) error {
	tag, err := y.tag(n)
	if err != nil {
		return err
	}
	if tag != value.NoTag {
		return y.tagged(n, tag)
	}
	switch n.ShortTag() {
	case "!!null":
		return y.h.Null(value.NoTag)
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err != nil {
			return y.errorf(n, ErrParse, "%v", err)
		}
		return y.h.Bool(b, value.NoTag)
	case "!!int":
		var i int64
		if err := n.Decode(&i); err == nil {
			return y.h.Int64(i, value.NoTag)
		}
		var u uint64
		if err := n.Decode(&u); err == nil {
			return y.h.Uint64(u, value.NoTag)
		}
		return y.h.String(n.Value, value.Bigint)
	case "!!float":
		var f float64
		if err := n.Decode(&f); err != nil {
			return y.h.String(n.Value, value.Bigdec)
		}
		return y.h.Double(f, value.NoTag)
	case "!!binary":
		b, err := value.DecodeBase64(strings.Join(strings.Fields(n.Value), ""))
		if err != nil {
			return y.errorf(n, ErrParse, "binary: %v", err)
		}
		return y.h.ByteString(b, value.NoTag)
	case "!!timestamp":
		return y.h.String(n.Value, value.Datetime)
	}
	return y.h.String(n.Value, value.NoTag)
}

// tagged delivers a scalar carrying a semantic tag.
func (y *yamlParser) tagged(n *yaml.Node, tag value.SemanticTag) error {
	switch tag {
	case value.Undefined:
		return y.h.Null(tag)
	case value.Timestamp, value.EpochMilli, value.EpochNano:
		if i, err := strconv.ParseInt(n.Value, 10, 64); err == nil {
			return y.h.Int64(i, tag)
		}
		if f, err := strconv.ParseFloat(n.Value, 64); err == nil && !math.IsInf(f, 0) {
			return y.h.Double(f, tag)
		}
		return y.errorf(n, ErrParse, "%s: not a number: %q", tag, n.Value)
	}
	return y.h.String(n.Value, tag)
}
