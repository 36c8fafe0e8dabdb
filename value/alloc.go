package value

import (
	"fmt"

	"github.com/signadot/jval/debug"
)

// Allocator supplies the buffers backing heap-owned payloads (long strings
// and byte strings). Containers record the allocator they were created with
// and use it for the children they copy.
//
// Allocators may carry state. Payloads are only ever transferred between
// values whose allocators compare Equal; otherwise they are copied.
type Allocator interface {
	// Alloc returns a buffer of length n or an error wrapping ErrAllocation.
	Alloc(n int) ([]byte, error)
	// Free returns a buffer obtained from Alloc. Each buffer is freed at most
	// once.
	Free(b []byte)
	// Equal reports whether buffers from o may be owned by values using the
	// receiver.
	Equal(o Allocator) bool
}

type heapAllocator struct{}

// Heap returns the default, stateless allocator backed by the Go heap. All
// heap allocators are equal.
func Heap() Allocator { return heapAllocator{} }

func (heapAllocator) Alloc(n int) ([]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: negative size %d", ErrAllocation, n)
	}
	return make([]byte, n), nil
}

func (heapAllocator) Free([]byte) {}

func (heapAllocator) Equal(o Allocator) bool {
	_, ok := o.(heapAllocator)
	return ok
}

func orHeap(a Allocator) Allocator {
	if a == nil {
		return heapAllocator{}
	}
	return a
}

func sameAllocator(a, b Allocator) bool {
	return orHeap(a).Equal(orHeap(b))
}

// Arena is an accounting allocator with an optional byte limit. It is not
// safe for concurrent use.
type Arena struct {
	name   string
	limit  int
	inUse  int
	allocs int
	frees  int
}

// NewArena returns an arena which refuses allocations that would take the
// bytes in use above limit. A limit <= 0 means no limit.
func NewArena(limit int) *Arena {
	return &Arena{limit: limit}
}

// NewNamedArena is NewArena with a name used in errors and debug logs.
func NewNamedArena(name string, limit int) *Arena {
	return &Arena{name: name, limit: limit}
}

func (a *Arena) Alloc(n int) ([]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: negative size %d", ErrAllocation, n)
	}
	if a.limit > 0 && a.inUse+n > a.limit {
		err := fmt.Errorf("%w: arena %s: %d bytes requested with %d of %d in use",
			ErrAllocation, a.String(), n, a.inUse, a.limit)
		if debug.Alloc() {
			debug.Logger().Debug("arena refused allocation", "arena", a.String(), "n", n, "inUse", a.inUse, "limit", a.limit)
		}
		return nil, err
	}
	a.inUse += n
	a.allocs++
	return make([]byte, n), nil
}

func (a *Arena) Free(b []byte) {
	a.inUse -= len(b)
	a.frees++
}

func (a *Arena) Equal(o Allocator) bool {
	oa, ok := o.(*Arena)
	return ok && oa == a
}

// InUse returns the number of allocated bytes not yet freed.
func (a *Arena) InUse() int { return a.inUse }

// Live returns the number of allocations not yet freed.
func (a *Arena) Live() int { return a.allocs - a.frees }

// Limit returns the arena's byte limit; <= 0 means unlimited.
func (a *Arena) Limit() int { return a.limit }

func (a *Arena) String() string {
	if a.name != "" {
		return a.name
	}
	return fmt.Sprintf("%p", a)
}
