package stream

import (
	"fmt"

	"github.com/signadot/jval/value"
)

// Walk delivers v to h as events, in the iteration order of v's containers,
// and flushes h.
func Walk(v value.Value, h Handler) error {
	if err := walk(v, h); err != nil {
		return err
	}
	return h.Flush()
}

func walk(v value.Value, h Handler) error {
	tag := v.Tag()
	switch v.Kind() {
	case value.NullKind:
		return h.Null(tag)
	case value.BoolKind:
		return h.Bool(v.MustBool(), tag)
	case value.Int64Kind:
		return h.Int64(v.MustInt64(), tag)
	case value.Uint64Kind:
		return h.Uint64(v.MustUint64(), tag)
	case value.HalfKind:
		bits, err := v.AsHalf()
		if err != nil {
			return err
		}
		return h.Half(bits, tag)
	case value.DoubleKind:
		return h.Double(v.MustDouble(), tag)
	case value.ShortStringKind, value.LongStringKind:
		return h.String(v.MustStringView(), tag)
	case value.ByteStringKind:
		bs, err := v.AsByteStringView()
		if err != nil {
			return err
		}
		return h.ByteString(bs, tag)
	case value.ArrayKind:
		if err := h.BeginArray(v.Size(), tag); err != nil {
			return err
		}
		for _, x := range v.Elements() {
			if err := walk(*x, h); err != nil {
				return err
			}
		}
		return h.EndArray()
	case value.EmptyObjectKind, value.ObjectKind:
		if err := h.BeginObject(v.Size(), tag); err != nil {
			return err
		}
		for k, x := range v.Members() {
			if err := h.Key(k); err != nil {
				return err
			}
			if err := walk(*x, h); err != nil {
				return err
			}
		}
		return h.EndObject()
	}
	return fmt.Errorf("walk: unknown kind %v", v.Kind())
}
