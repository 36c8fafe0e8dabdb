// Package value provides an in-memory representation of JSON-like data.
//
// # Overview
//
// A Value holds exactly one of twelve storage kinds together with a semantic
// tag. The kind says how the data is stored; the tag says how it should be
// interpreted when converted to text, bytes or numbers.
//
//   - NullKind: null
//   - BoolKind: true or false
//   - Int64Kind, Uint64Kind: integers
//   - HalfKind, DoubleKind: IEEE 754 binary16 and binary64 floats
//   - ShortStringKind: strings of at most ShortStringCap bytes, stored inline
//   - LongStringKind: longer strings, heap-owned
//   - ByteStringKind: binary data, always heap-owned
//   - ArrayKind: an ordered sequence of values
//   - EmptyObjectKind: {} without any allocation
//   - ObjectKind: key/value members under a sorted or insertion order policy
//
// The kind and the tag share the first byte of every Value, so Kind and Tag
// never look at the payload.
//
// # Creating Values
//
//	v := value.NewObject(
//		value.Member{Key: "a", Value: value.Int(1)},
//		value.Member{Key: "b", Value: value.NewArray(value.Int(1), value.Int(2), value.Int(3))},
//	)
//	b, _ := v.AtKey("b")
//	n, _ := value.AsInteger[int](*b.MustAt(2)) // 3
//
// Trees are more often built from events with the stream package, or parsed
// from text with the parse package.
//
// # Ownership
//
// A Value owns its payload exclusively and ownership forms a tree: arrays and
// objects own their elements. Assigning the Value struct does not copy the
// payload. Clone makes a deep, independent copy; Move transfers ownership and
// leaves the source null; Release frees the payload exactly once. Functions
// documented as taking ownership of an argument must not be given a value the
// caller still uses.
//
// Heap payloads are obtained from an Allocator. Heap() is the default and is
// backed by the Go runtime; an Arena accounts for and limits the bytes it
// hands out. Moving a payload between values is only done when their
// allocators are Equal: otherwise it is copied and the source released.
// Operations that allocate either succeed or leave every value unchanged.
//
// # Objects
//
// SortedObject keeps members in key order and finds them by binary search.
// OrderedObject keeps first insertion order with an index for lookup. Both
// implement Object. Keys are unique: InsertOrAssign replaces the value of an
// existing key in place, TryEmplace leaves it alone.
//
// An EmptyObject becomes an Object on the first write through a Value method,
// or explicitly with Materialize.
//
// # Comparison
//
// Compare defines a total order over values. Numbers of every kind compare by
// value, so Int(5) equals Uint(5) and Double(5). Objects are equal when they
// have the same members in any order and under any policy, and an EmptyObject
// equals an Object of size 0. Unequal objects order member by member in their
// own iteration order. Tags do not take part in comparison. Hash agrees with
// Equal.
//
// # Errors
//
// Accessors return errors wrapping ErrTypeMismatch, ErrKeyNotFound,
// ErrNotObject, ErrNotArray, ErrIndexOutOfRange, ErrAllocation or
// ErrConversion; a failed operation never mutates its receiver. Must
// variants panic instead. Predicates such as Contains, Find and the Is
// methods never fail.
//
// Values are not safe for concurrent mutation. Concurrent reads are safe.
package value
