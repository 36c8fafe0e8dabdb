package value

import (
	"unsafe"
)

// ShortStringCap is the longest string stored inline in a Value. Longer
// strings are heap-owned.
const ShortStringCap = inlineSize - 1

// payload is a heap-owned value payload: a long string, a byte string, an
// Array or an Object.
type payload interface {
	allocator() Allocator
	clone(a Allocator) (payload, error)
	release()
}

// heapBuf is a length-tracked buffer obtained from an Allocator. It backs
// both long strings and byte strings.
type heapBuf struct {
	alloc Allocator
	buf   []byte
}

func newHeapBuf(a Allocator, b []byte) (heapBuf, error) {
	a = orHeap(a)
	buf, err := a.Alloc(len(b))
	if err != nil {
		return heapBuf{}, err
	}
	copy(buf, b)
	return heapBuf{alloc: a, buf: buf}, nil
}

func (h *heapBuf) free() {
	if h.buf == nil {
		return
	}
	h.alloc.Free(h.buf)
	h.buf = nil
}

type longString struct {
	heapBuf
}

func newLongString(a Allocator, s string) (*longString, error) {
	hb, err := newHeapBuf(a, unsafe.Slice(unsafe.StringData(s), len(s)))
	if err != nil {
		return nil, err
	}
	return &longString{heapBuf: hb}, nil
}

// view returns the string without copying. The buffer is never written after
// construction.
func (s *longString) view() string {
	if len(s.buf) == 0 {
		return ""
	}
	return unsafe.String(&s.buf[0], len(s.buf))
}

func (s *longString) allocator() Allocator { return s.alloc }

func (s *longString) clone(a Allocator) (payload, error) {
	hb, err := newHeapBuf(a, s.buf)
	if err != nil {
		return nil, err
	}
	return &longString{heapBuf: hb}, nil
}

func (s *longString) release() { s.free() }

type byteString struct {
	heapBuf
}

func newByteString(a Allocator, b []byte) (*byteString, error) {
	hb, err := newHeapBuf(a, b)
	if err != nil {
		return nil, err
	}
	return &byteString{heapBuf: hb}, nil
}

func (b *byteString) allocator() Allocator { return b.alloc }

func (b *byteString) clone(a Allocator) (payload, error) {
	hb, err := newHeapBuf(a, b.buf)
	if err != nil {
		return nil, err
	}
	return &byteString{heapBuf: hb}, nil
}

func (b *byteString) release() { b.free() }
