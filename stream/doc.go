// Package stream provides the push-style event interface for constructing
// and replaying values.
//
// Producers (parsers, Walk) deliver events to a Handler. A Builder is the
// Handler that constructs a value.Value; a Recorder stores events for later
// Replay.
//
// # Example: Building
//
//	b := stream.NewBuilder(stream.WithOrderedObjects())
//	b.BeginObject(2, value.NoTag)
//	b.Key("a")
//	b.Int64(1, value.NoTag)
//	b.Key("b")
//	b.BeginArray(0, value.NoTag)
//	b.Int64(1, value.NoTag)
//	b.EndArray()
//	b.EndObject()
//	v, err := b.Value()
//
// # Example: Walking
//
//	err := stream.Walk(v, handler)
//
// # Validation
//
// State checks that begin and end events balance, that keys occur only
// inside objects and that each key is followed by exactly one value. Errors
// are *Error values carrying the path at which they occurred and wrapping
// one of ErrUnbalanced, ErrKeyOutsideObject, ErrMissingKey, ErrMissingValue
// or ErrIncomplete.
//
// # Tags
//
// Every value event carries a semantic tag. Keys carry none. Walk reports
// the tag stored on each value and the Builder stores it back.
package stream
