package stream

import (
	"errors"
	"log/slog"

	"github.com/signadot/jval/debug"
	"github.com/signadot/jval/value"
)

// maxReserve bounds how much a size hint may preallocate.
const maxReserve = 1 << 12

// Builder is a Handler that constructs a Value from events.
//
// The first failing event aborts the build: every partially built payload
// is released and the error is returned for all further events until Abort
// or Value is called.
type Builder struct {
	opts   buildOpts
	state  State
	frames []frame
	root   value.Value
	ok     bool
	err    error
}

type frame struct {
	v   value.Value
	key string
}

var _ Handler = (*Builder)(nil)

// NewBuilder returns a builder configured by opts.
func NewBuilder(opts ...BuildOption) *Builder {
	b := &Builder{}
	for _, o := range opts {
		o(&b.opts)
	}
	return b
}

func (b *Builder) logger() *slog.Logger {
	if b.opts.logger != nil {
		return b.opts.logger
	}
	if debug.Build() {
		return debug.Logger()
	}
	return nil
}

func (b *Builder) fail(err error) error {
	var se *Error
	if !errors.As(err, &se) {
		err = &Error{Msg: err.Error(), Path: b.state.CurrentPath(), Err: err}
	}
	if l := b.logger(); l != nil {
		l.Debug("build aborted", "err", err, "depth", len(b.frames))
	}
	b.release()
	b.err = err
	return err
}

func (b *Builder) release() {
	for i := len(b.frames) - 1; i >= 0; i-- {
		b.frames[i].v.Release()
	}
	b.frames = b.frames[:0]
	b.root.Release()
	b.ok = false
	b.state.Reset()
}

// Abort releases everything built so far and readies b for a new value.
func (b *Builder) Abort() {
	b.release()
	b.err = nil
}

// Value returns the completed root value, transferring ownership to the
// caller, and readies b for a new value.
func (b *Builder) Value() (value.Value, error) {
	if b.err != nil {
		err := b.err
		b.err = nil
		return value.Value{}, err
	}
	if !b.ok || len(b.frames) != 0 {
		return value.Value{}, &Error{Msg: "no complete value", Path: b.state.CurrentPath(), Err: ErrIncomplete}
	}
	var res value.Value
	res.Move(&b.root)
	b.ok = false
	b.state.Reset()
	return res, nil
}

func (b *Builder) process(ev *Event) error {
	if b.err != nil {
		return b.err
	}
	if err := b.state.ProcessEvent(ev); err != nil {
		return b.fail(err)
	}
	return nil
}

func (b *Builder) attach(x value.Value) error {
	n := len(b.frames)
	if n == 0 {
		b.root = x
		b.ok = true
		return nil
	}
	f := &b.frames[n-1]
	if f.v.IsArray() {
		return f.v.PushBack(x)
	}
	// duplicate keys: the last one wins
	_, _, err := f.v.InsertOrAssign(f.key, x)
	return err
}

func (b *Builder) scalar(ev *Event, mk func() (value.Value, error)) error {
	if err := b.process(ev); err != nil {
		return err
	}
	x, err := mk()
	if err != nil {
		return b.fail(err)
	}
	if err := b.attach(x); err != nil {
		x.Release()
		return b.fail(err)
	}
	return nil
}

func (b *Builder) Null(tag value.SemanticTag) error {
	return b.scalar(&Event{Type: EventNull, Tag: tag}, func() (value.Value, error) {
		return value.NullTagged(tag), nil
	})
}

func (b *Builder) Bool(x bool, tag value.SemanticTag) error {
	return b.scalar(&Event{Type: EventBool, Bool: x, Tag: tag}, func() (value.Value, error) {
		return value.Bool(x).WithTag(tag), nil
	})
}

func (b *Builder) Int64(i int64, tag value.SemanticTag) error {
	return b.scalar(&Event{Type: EventInt64, Int: i, Tag: tag}, func() (value.Value, error) {
		return value.Int(i).WithTag(tag), nil
	})
}

func (b *Builder) Uint64(u uint64, tag value.SemanticTag) error {
	return b.scalar(&Event{Type: EventUint64, Uint: u, Tag: tag}, func() (value.Value, error) {
		return value.Uint(u).WithTag(tag), nil
	})
}

func (b *Builder) Half(bits uint16, tag value.SemanticTag) error {
	return b.scalar(&Event{Type: EventHalf, Half: bits, Tag: tag}, func() (value.Value, error) {
		return value.Half(bits).WithTag(tag), nil
	})
}

func (b *Builder) Double(f float64, tag value.SemanticTag) error {
	return b.scalar(&Event{Type: EventDouble, Float: f, Tag: tag}, func() (value.Value, error) {
		return value.Double(f).WithTag(tag), nil
	})
}

func (b *Builder) String(s string, tag value.SemanticTag) error {
	return b.scalar(&Event{Type: EventString, String: s, Tag: tag}, func() (value.Value, error) {
		return value.StringWith(b.opts.alloc, s, tag)
	})
}

func (b *Builder) ByteString(bs []byte, tag value.SemanticTag) error {
	return b.scalar(&Event{Type: EventByteString, Bytes: bs, Tag: tag}, func() (value.Value, error) {
		return value.BytesWith(b.opts.alloc, bs, tag)
	})
}

func (b *Builder) BeginArray(sizeHint int, tag value.SemanticTag) error {
	if err := b.process(&Event{Type: EventBeginArray, SizeHint: sizeHint, Tag: tag}); err != nil {
		return err
	}
	a := value.MakeArrayWith(b.opts.alloc)
	a.Reserve(min(max(sizeHint, 0), maxReserve))
	b.frames = append(b.frames, frame{v: value.FromArray(a).WithTag(tag)})
	return nil
}

func (b *Builder) BeginObject(sizeHint int, tag value.SemanticTag) error {
	if err := b.process(&Event{Type: EventBeginObject, SizeHint: sizeHint, Tag: tag}); err != nil {
		return err
	}
	var o value.Object
	if b.opts.ordered {
		o = value.MakeOrderedWith(b.opts.alloc)
	} else {
		o = value.MakeSortedWith(b.opts.alloc)
	}
	o.Reserve(min(max(sizeHint, 0), maxReserve))
	b.frames = append(b.frames, frame{v: value.FromObject(o).WithTag(tag)})
	return nil
}

func (b *Builder) Key(k string) error {
	if err := b.process(&Event{Type: EventKey, Key: k}); err != nil {
		return err
	}
	b.frames[len(b.frames)-1].key = k
	return nil
}

func (b *Builder) end(ev *Event) error {
	if err := b.process(ev); err != nil {
		return err
	}
	n := len(b.frames)
	x := b.frames[n-1].v
	b.frames = b.frames[:n-1]
	if err := b.attach(x); err != nil {
		x.Release()
		return b.fail(err)
	}
	return nil
}

func (b *Builder) EndArray() error {
	return b.end(&Event{Type: EventEndArray})
}

func (b *Builder) EndObject() error {
	return b.end(&Event{Type: EventEndObject})
}

// Flush reports the first error of the current build, if any.
func (b *Builder) Flush() error {
	return b.err
}
