package parse

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	json "github.com/goccy/go-json"

	"github.com/signadot/jval/stream"
	"github.com/signadot/jval/value"
)

type jsonFrame struct {
	obj          bool
	expectingKey bool
}

// parseJSON delivers the events of a single JSON document. The token stream
// skips commas and colons, so the document is validated first. Nesting and
// key positions are tracked here; the handler sees keys as Key events.
func parseJSON(d []byte, h stream.Handler, opts *parseOpts) error {
	if len(bytes.TrimSpace(d)) == 0 {
		return ErrEmptyJSON
	}
	if !json.Valid(d) {
		return ErrSyntax
	}
	dec := json.NewDecoder(bytes.NewReader(d))
	dec.UseNumber()
	var stack []jsonFrame
	done := false
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("%w: %w", ErrParse, err)
		}
		if done {
			return ErrTrailing
		}
		if delim, ok := tok.(json.Delim); ok {
			switch delim {
			case '{', '[':
				if len(stack) >= opts.maxDepth {
					return ErrTooDeep
				}
				markValue(stack)
				stack = append(stack, jsonFrame{obj: delim == '{', expectingKey: delim == '{'})
				if delim == '{' {
					err = h.BeginObject(0, value.NoTag)
				} else {
					err = h.BeginArray(0, value.NoTag)
				}
			case '}', ']':
				if len(stack) == 0 {
					return fmt.Errorf("%w: unexpected %q", ErrParse, delim)
				}
				stack = stack[:len(stack)-1]
				if delim == '}' {
					err = h.EndObject()
				} else {
					err = h.EndArray()
				}
				done = len(stack) == 0
			}
			if err != nil {
				return err
			}
			continue
		}
		if n := len(stack); n > 0 && stack[n-1].obj && stack[n-1].expectingKey {
			k, ok := tok.(string)
			if !ok {
				return fmt.Errorf("%w: %v", ErrBadKey, tok)
			}
			stack[n-1].expectingKey = false
			if err := h.Key(k); err != nil {
				return err
			}
			continue
		}
		markValue(stack)
		if err := jsonScalar(tok, h); err != nil {
			return err
		}
		done = len(stack) == 0
	}
	if len(stack) != 0 {
		return fmt.Errorf("%w: unexpected end of input", ErrParse)
	}
	if !done {
		return ErrEmptyJSON
	}
	return nil
}

// markValue records that a value was seen at the top of stack.
func markValue(stack []jsonFrame) {
	if n := len(stack); n > 0 && stack[n-1].obj {
		stack[n-1].expectingKey = true
	}
}

func jsonScalar(tok json.Token, h stream.Handler) error {
	switch v := tok.(type) {
	case nil:
		return h.Null(value.NoTag)
	case bool:
		return h.Bool(v, value.NoTag)
	case string:
		return h.String(v, value.NoTag)
	case json.Number:
		return number(string(v), h)
	case float64:
		return h.Double(v, value.NoTag)
	}
	return fmt.Errorf("%w: unexpected token %T", ErrParse, tok)
}
