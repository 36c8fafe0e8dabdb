package value

import (
	"iter"
	"slices"
)

// Array is an owned, ordered sequence of values. An Array owns its elements:
// removing or overwriting an element releases it.
type Array struct {
	alloc Allocator
	elems []Value
}

// MakeArray returns an array taking ownership of elems.
func MakeArray(elems ...Value) *Array {
	return MakeArrayWith(nil, elems...)
}

// MakeArrayWith is MakeArray with the allocator used for copies made into the
// array.
func MakeArrayWith(a Allocator, elems ...Value) *Array {
	res := &Array{alloc: orHeap(a)}
	if len(elems) != 0 {
		res.elems = slices.Clone(elems)
	}
	return res
}

func (a *Array) Len() int { return len(a.elems) }
func (a *Array) Cap() int { return cap(a.elems) }

// At returns a pointer to the element at i, valid until the array is next
// resized.
func (a *Array) At(i int) (*Value, error) {
	if i < 0 || i >= len(a.elems) {
		return nil, &IndexError{Index: i, Size: len(a.elems)}
	}
	return &a.elems[i], nil
}

// Values returns the backing elements. Callers must not retain the slice
// across mutations.
func (a *Array) Values() []Value { return a.elems }

func (a *Array) All() iter.Seq2[int, *Value] {
	return func(yield func(int, *Value) bool) {
		for i := range a.elems {
			if !yield(i, &a.elems[i]) {
				return
			}
		}
	}
}

// PushBack appends v, taking ownership of it.
func (a *Array) PushBack(v Value) {
	a.elems = append(a.elems, v)
}

// Insert inserts vs before position i (i == Len appends), taking ownership.
func (a *Array) Insert(i int, vs ...Value) error {
	if i < 0 || i > len(a.elems) {
		return &IndexError{Index: i, Size: len(a.elems)}
	}
	a.elems = slices.Insert(a.elems, i, vs...)
	return nil
}

// EraseAt removes and releases the element at i.
func (a *Array) EraseAt(i int) error {
	if i < 0 || i >= len(a.elems) {
		return &IndexError{Index: i, Size: len(a.elems)}
	}
	return a.EraseRange(i, i+1)
}

// EraseRange removes and releases the elements in [first, last).
func (a *Array) EraseRange(first, last int) error {
	n := len(a.elems)
	if first < 0 || first > n {
		return &IndexError{Index: first, Size: n}
	}
	if last < first || last > n {
		return &IndexError{Index: last, Size: n}
	}
	for i := first; i < last; i++ {
		a.elems[i].Release()
	}
	a.elems = slices.Delete(a.elems, first, last)
	return nil
}

// Resize truncates the array, releasing removed elements, or extends it with
// nulls.
func (a *Array) Resize(n int) {
	if n < 0 {
		n = 0
	}
	if n <= len(a.elems) {
		a.truncate(n)
		return
	}
	a.elems = slices.Grow(a.elems, n-len(a.elems))
	a.elems = a.elems[:n]
}

// ResizeWith is Resize filling new slots with copies of fill. If a copy
// fails the array is left unchanged.
func (a *Array) ResizeWith(n int, fill Value) error {
	if n < 0 {
		n = 0
	}
	if n <= len(a.elems) {
		a.truncate(n)
		return nil
	}
	extra := make([]Value, 0, n-len(a.elems))
	for len(extra) < cap(extra) {
		c, err := fill.CloneWith(a.alloc)
		if err != nil {
			releaseAll(extra)
			return err
		}
		extra = append(extra, c)
	}
	a.elems = append(a.elems, extra...)
	return nil
}

func (a *Array) truncate(n int) {
	for i := n; i < len(a.elems); i++ {
		a.elems[i].Release()
	}
	clear(a.elems[n:])
	a.elems = a.elems[:n]
}

func (a *Array) Reserve(n int) {
	if n > cap(a.elems) {
		a.elems = slices.Grow(a.elems, n-len(a.elems))
	}
}

func (a *Array) ShrinkToFit() {
	if cap(a.elems) == len(a.elems) {
		return
	}
	elems := make([]Value, len(a.elems))
	copy(elems, a.elems)
	a.elems = elems
}

// Clear releases every element.
func (a *Array) Clear() {
	a.truncate(0)
}

// Clone returns a deep copy of the array using allocator al (nil keeps the
// array's allocator).
func (a *Array) Clone(al Allocator) (*Array, error) {
	if al == nil {
		al = a.alloc
	}
	p, err := a.clone(al)
	if err != nil {
		return nil, err
	}
	return p.(*Array), nil
}

func (a *Array) allocator() Allocator { return a.alloc }

func (a *Array) clone(al Allocator) (payload, error) {
	res := &Array{alloc: orHeap(al), elems: make([]Value, 0, len(a.elems))}
	for i := range a.elems {
		c, err := a.elems[i].CloneWith(al)
		if err != nil {
			releaseAll(res.elems)
			return nil, err
		}
		res.elems = append(res.elems, c)
	}
	return res, nil
}

func (a *Array) release() {
	releaseAll(a.elems)
	a.elems = nil
}

func releaseAll(vs []Value) {
	for i := range vs {
		vs[i].Release()
	}
}
