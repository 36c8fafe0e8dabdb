// Package patch applies RFC 6902 JSON patches and RFC 7386 merge patches to
// values.
//
// Documents pass through their JSON text, so tags are not preserved and
// byte strings come back as strings. Results are built with the document's
// allocator and object policy.
package patch

import (
	"bytes"
	"errors"
	"fmt"

	jsonpatch "github.com/evanphx/json-patch"

	"github.com/signadot/jval/debug"
	"github.com/signadot/jval/encode"
	"github.com/signadot/jval/parse"
	"github.com/signadot/jval/value"
)

var ErrPatch = errors.New("patch failed")

func marshal(v value.Value) ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(v, buf, encode.EncodeIndent(0)); err != nil {
		return nil, err
	}
	return bytes.TrimSpace(buf.Bytes()), nil
}

// rebuild parses d with the allocator and object policy of like.
func rebuild(d []byte, like value.Value) (value.Value, error) {
	opts := []parse.ParseOption{parse.ParseAllocator(like.Allocator())}
	if o, err := like.Object(); err == nil && o.PreservesOrder() {
		opts = append(opts, parse.ParseOrdered(true))
	}
	return parse.Parse(d, opts...)
}

// JSONPatch applies the RFC 6902 operations ops (an array of operation
// objects) to a copy of doc.
func JSONPatch(doc, ops value.Value) (value.Value, error) {
	if debug.Patch() {
		debug.Logger().Debug("json patch", "ops", ops.Size())
	}
	dOps, err := marshal(ops)
	if err != nil {
		return value.Value{}, err
	}
	p, err := jsonpatch.DecodePatch(dOps)
	if err != nil {
		return value.Value{}, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	d, err := marshal(doc)
	if err != nil {
		return value.Value{}, err
	}
	out, err := p.Apply(d)
	if err != nil {
		return value.Value{}, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	return rebuild(out, doc)
}

// MergePatch applies the RFC 7386 merge patch mergeDoc to a copy of doc.
// Null members of mergeDoc remove members of doc.
func MergePatch(doc, mergeDoc value.Value) (value.Value, error) {
	if debug.Patch() {
		debug.Logger().Debug("merge patch", "kind", mergeDoc.Kind().String())
	}
	d, err := marshal(doc)
	if err != nil {
		return value.Value{}, err
	}
	m, err := marshal(mergeDoc)
	if err != nil {
		return value.Value{}, err
	}
	out, err := jsonpatch.MergePatch(d, m)
	if err != nil {
		return value.Value{}, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	return rebuild(out, doc)
}

// CreateMergePatch returns the merge patch turning from into to. Both must
// be objects.
func CreateMergePatch(from, to value.Value) (value.Value, error) {
	if !from.IsObject() || !to.IsObject() {
		return value.Value{}, fmt.Errorf("%w: merge patches relate objects, got %v and %v", ErrPatch, from.Kind(), to.Kind())
	}
	f, err := marshal(from)
	if err != nil {
		return value.Value{}, err
	}
	t, err := marshal(to)
	if err != nil {
		return value.Value{}, err
	}
	out, err := jsonpatch.CreateMergePatch(f, t)
	if err != nil {
		return value.Value{}, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	return parse.Parse(out)
}
