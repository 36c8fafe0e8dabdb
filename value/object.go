package value

import (
	"iter"
	"slices"
	"strings"
)

// Member is a key/value entry of an object.
type Member struct {
	Key   string
	Value Value
}

// Policy selects how an object orders its members. It is fixed by the
// object's type: see SortedObject and OrderedObject.
type Policy interface {
	preservesOrder() bool
}

// Sorted keeps members ordered by key (byte-wise), with binary search
// lookup.
type Sorted struct{}

// Ordered keeps members in first-insertion order, with lookup through an
// auxiliary key index.
type Ordered struct{}

func (Sorted) preservesOrder() bool  { return false }
func (Ordered) preservesOrder() bool { return true }

// Object is the behaviour common to objects of either policy. Positions
// returned by Find, InsertOrAssign and TryEmplace play the role of
// iterators: Len() is the end position.
type Object interface {
	payload

	Len() int
	Cap() int
	// PreservesOrder reports whether the object iterates in insertion
	// order rather than key order.
	PreservesOrder() bool

	Find(key string) (int, bool)
	At(i int) (*Member, error)
	Get(key string) (*Value, bool)
	Count(key string) int
	Keys() []string
	Members() []Member
	All() iter.Seq2[string, *Value]

	InsertOrAssign(key string, v Value) (int, bool)
	TryEmplace(key string, v Value) (int, bool)
	EraseKey(key string) bool
	EraseAt(i int) error
	EraseRange(first, last int) error
	Merge(src Object) error
	MergeOrUpdate(src Object) error
	Clear()
	Reserve(n int)
	ShrinkToFit()

	CloneObject(a Allocator) (Object, error)
}

// ObjectOf is an owned collection of members under policy P.
type ObjectOf[P Policy] struct {
	alloc   Allocator
	members []Member
	index   map[string]int
}

type (
	SortedObject  = ObjectOf[Sorted]
	OrderedObject = ObjectOf[Ordered]
)

// MakeSorted returns a key-ordered object holding members. Later duplicates
// replace earlier ones.
func MakeSorted(members ...Member) *SortedObject {
	return makeObject[Sorted](nil, members)
}

// MakeOrdered returns an insertion-ordered object holding members. Later
// duplicates replace the value of earlier ones in place.
func MakeOrdered(members ...Member) *OrderedObject {
	return makeObject[Ordered](nil, members)
}

// MakeSortedWith is MakeSorted with an allocator for copies into the object.
func MakeSortedWith(a Allocator, members ...Member) *SortedObject {
	return makeObject[Sorted](a, members)
}

// MakeOrderedWith is MakeOrdered with an allocator for copies into the
// object.
func MakeOrderedWith(a Allocator, members ...Member) *OrderedObject {
	return makeObject[Ordered](a, members)
}

func makeObject[P Policy](a Allocator, members []Member) *ObjectOf[P] {
	res := &ObjectOf[P]{alloc: orHeap(a)}
	res.Reserve(len(members))
	for i := range members {
		res.InsertOrAssign(members[i].Key, members[i].Value)
	}
	return res
}

func newObject(a Allocator, ordered bool) Object {
	if ordered {
		return &OrderedObject{alloc: orHeap(a)}
	}
	return &SortedObject{alloc: orHeap(a)}
}

func (o *ObjectOf[P]) ordered() bool {
	var p P
	return p.preservesOrder()
}

func (o *ObjectOf[P]) PreservesOrder() bool { return o.ordered() }
func (o *ObjectOf[P]) Len() int             { return len(o.members) }
func (o *ObjectOf[P]) Cap() int             { return cap(o.members) }

// locate returns the position of key and whether it is present. When absent,
// the position is where the key would be inserted.
func (o *ObjectOf[P]) locate(key string) (int, bool) {
	if o.ordered() {
		if i, ok := o.index[key]; ok {
			return i, true
		}
		return len(o.members), false
	}
	return slices.BinarySearchFunc(o.members, key, func(m Member, k string) int {
		return strings.Compare(m.Key, k)
	})
}

func (o *ObjectOf[P]) reindex(from int) {
	if !o.ordered() {
		return
	}
	if o.index == nil {
		o.index = make(map[string]int, len(o.members))
	}
	for i := from; i < len(o.members); i++ {
		o.index[o.members[i].Key] = i
	}
}

// Find returns the position of key, or (Len(), false).
func (o *ObjectOf[P]) Find(key string) (int, bool) {
	i, ok := o.locate(key)
	if !ok {
		return len(o.members), false
	}
	return i, true
}

func (o *ObjectOf[P]) At(i int) (*Member, error) {
	if i < 0 || i >= len(o.members) {
		return nil, &IndexError{Index: i, Size: len(o.members)}
	}
	return &o.members[i], nil
}

func (o *ObjectOf[P]) Get(key string) (*Value, bool) {
	i, ok := o.locate(key)
	if !ok {
		return nil, false
	}
	return &o.members[i].Value, true
}

// Count returns the number of members with key: 0 or 1.
func (o *ObjectOf[P]) Count(key string) int {
	if _, ok := o.locate(key); ok {
		return 1
	}
	return 0
}

func (o *ObjectOf[P]) Keys() []string {
	res := make([]string, len(o.members))
	for i := range o.members {
		res[i] = o.members[i].Key
	}
	return res
}

// Members returns the backing members in iteration order. Callers must not
// retain the slice across mutations.
func (o *ObjectOf[P]) Members() []Member { return o.members }

func (o *ObjectOf[P]) All() iter.Seq2[string, *Value] {
	return func(yield func(string, *Value) bool) {
		for i := range o.members {
			if !yield(o.members[i].Key, &o.members[i].Value) {
				return
			}
		}
	}
}

// InsertOrAssign stores v under key, taking ownership of v. It reports
// whether a new member was created; otherwise the previous value was
// released and replaced in place.
func (o *ObjectOf[P]) InsertOrAssign(key string, v Value) (int, bool) {
	i, ok := o.locate(key)
	if ok {
		o.members[i].Value.Release()
		o.members[i].Value = v
		return i, false
	}
	o.members = slices.Insert(o.members, i, Member{Key: key, Value: v})
	o.reindex(i)
	return i, true
}

// TryEmplace stores v under key only if key is absent. When key is present
// the existing member is untouched and v remains owned by the caller.
func (o *ObjectOf[P]) TryEmplace(key string, v Value) (int, bool) {
	i, ok := o.locate(key)
	if ok {
		return i, false
	}
	o.members = slices.Insert(o.members, i, Member{Key: key, Value: v})
	o.reindex(i)
	return i, true
}

func (o *ObjectOf[P]) EraseKey(key string) bool {
	i, ok := o.locate(key)
	if !ok {
		return false
	}
	o.eraseRange(i, i+1)
	return true
}

func (o *ObjectOf[P]) EraseAt(i int) error {
	if i < 0 || i >= len(o.members) {
		return &IndexError{Index: i, Size: len(o.members)}
	}
	o.eraseRange(i, i+1)
	return nil
}

func (o *ObjectOf[P]) EraseRange(first, last int) error {
	n := len(o.members)
	if first < 0 || first > n {
		return &IndexError{Index: first, Size: n}
	}
	if last < first || last > n {
		return &IndexError{Index: last, Size: n}
	}
	o.eraseRange(first, last)
	return nil
}

func (o *ObjectOf[P]) eraseRange(first, last int) {
	for i := first; i < last; i++ {
		o.members[i].Value.Release()
		if o.index != nil {
			delete(o.index, o.members[i].Key)
		}
	}
	o.members = slices.Delete(o.members, first, last)
	o.reindex(first)
}

// Merge copies into o the members of src whose keys o lacks. On allocation
// failure o is unchanged.
func (o *ObjectOf[P]) Merge(src Object) error {
	var add []Member
	for k, v := range src.All() {
		if _, ok := o.locate(k); ok {
			continue
		}
		c, err := v.CloneWith(o.alloc)
		if err != nil {
			releaseMembers(add)
			return err
		}
		add = append(add, Member{Key: k, Value: c})
	}
	o.Reserve(len(o.members) + len(add))
	for i := range add {
		o.InsertOrAssign(add[i].Key, add[i].Value)
	}
	return nil
}

// MergeOrUpdate copies every member of src into o, overwriting values of
// existing keys. On allocation failure o is unchanged.
func (o *ObjectOf[P]) MergeOrUpdate(src Object) error {
	add := make([]Member, 0, src.Len())
	for k, v := range src.All() {
		c, err := v.CloneWith(o.alloc)
		if err != nil {
			releaseMembers(add)
			return err
		}
		add = append(add, Member{Key: k, Value: c})
	}
	for i := range add {
		o.InsertOrAssign(add[i].Key, add[i].Value)
	}
	return nil
}

func (o *ObjectOf[P]) Clear() {
	releaseMembers(o.members)
	clear(o.members)
	o.members = o.members[:0]
	clear(o.index)
}

func (o *ObjectOf[P]) Reserve(n int) {
	if n > cap(o.members) {
		o.members = slices.Grow(o.members, n-len(o.members))
	}
}

func (o *ObjectOf[P]) ShrinkToFit() {
	if cap(o.members) == len(o.members) {
		return
	}
	members := make([]Member, len(o.members))
	copy(members, o.members)
	o.members = members
}

func (o *ObjectOf[P]) CloneObject(a Allocator) (Object, error) {
	if a == nil {
		a = o.alloc
	}
	p, err := o.clone(a)
	if err != nil {
		return nil, err
	}
	return p.(Object), nil
}

func (o *ObjectOf[P]) allocator() Allocator { return o.alloc }

func (o *ObjectOf[P]) clone(a Allocator) (payload, error) {
	res := &ObjectOf[P]{alloc: orHeap(a), members: make([]Member, 0, len(o.members))}
	for i := range o.members {
		c, err := o.members[i].Value.CloneWith(a)
		if err != nil {
			releaseMembers(res.members)
			return nil, err
		}
		res.members = append(res.members, Member{Key: o.members[i].Key, Value: c})
	}
	res.reindex(0)
	return res, nil
}

func (o *ObjectOf[P]) release() {
	releaseMembers(o.members)
	o.members = nil
	o.index = nil
}

func releaseMembers(ms []Member) {
	for i := range ms {
		ms[i].Value.Release()
	}
}
