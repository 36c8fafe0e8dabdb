package stream

import (
	"fmt"

	"github.com/signadot/jval/value"
)

// Event is one construction event. Only the fields relevant to Type are
// set.
type Event struct {
	Type EventType
	Tag  value.SemanticTag

	// SizeHint is the expected number of children of BeginArray and
	// BeginObject, or 0 when unknown.
	SizeHint int

	Key    string
	String string
	Bytes  []byte
	Int    int64
	Uint   uint64
	Half   uint16
	Float  float64
	Bool   bool
}

// IsValueStart returns true if this event starts a value (as opposed to a
// key or end marker).
func (e *Event) IsValueStart() bool {
	switch e.Type {
	case EventKey, EventEndObject, EventEndArray:
		return false
	default:
		return true
	}
}

// Apply delivers e to h.
func (e *Event) Apply(h Handler) error {
	switch e.Type {
	case EventBeginObject:
		return h.BeginObject(e.SizeHint, e.Tag)
	case EventEndObject:
		return h.EndObject()
	case EventBeginArray:
		return h.BeginArray(e.SizeHint, e.Tag)
	case EventEndArray:
		return h.EndArray()
	case EventKey:
		return h.Key(e.Key)
	case EventNull:
		return h.Null(e.Tag)
	case EventBool:
		return h.Bool(e.Bool, e.Tag)
	case EventInt64:
		return h.Int64(e.Int, e.Tag)
	case EventUint64:
		return h.Uint64(e.Uint, e.Tag)
	case EventHalf:
		return h.Half(e.Half, e.Tag)
	case EventDouble:
		return h.Double(e.Float, e.Tag)
	case EventString:
		return h.String(e.String, e.Tag)
	case EventByteString:
		return h.ByteString(e.Bytes, e.Tag)
	}
	return fmt.Errorf("unknown event type %d", e.Type)
}

// Replay delivers events to h in order and then flushes it. It stops at the
// first error.
func Replay(events []Event, h Handler) error {
	for i := range events {
		if err := events[i].Apply(h); err != nil {
			return fmt.Errorf("event %d (%s): %w", i, events[i].Type, err)
		}
	}
	return h.Flush()
}

// EventType represents the type of a construction event.
type EventType int

const (
	EventBeginObject EventType = iota
	EventEndObject
	EventBeginArray
	EventEndArray
	EventKey
	EventNull
	EventBool
	EventInt64
	EventUint64
	EventHalf
	EventDouble
	EventString
	EventByteString
)

var eventNames = map[EventType]string{
	EventBeginObject: "BeginObject",
	EventEndObject:   "EndObject",
	EventBeginArray:  "BeginArray",
	EventEndArray:    "EndArray",
	EventKey:         "Key",
	EventNull:        "Null",
	EventBool:        "Bool",
	EventInt64:       "Int64",
	EventUint64:      "Uint64",
	EventHalf:        "Half",
	EventDouble:      "Double",
	EventString:      "String",
	EventByteString:  "ByteString",
}

func (t EventType) String() string {
	if s, ok := eventNames[t]; ok {
		return s
	}
	return "Unknown"
}

func (t EventType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *EventType) UnmarshalText(d []byte) error {
	k := string(d)
	for et, name := range eventNames {
		if name == k {
			*t = et
			return nil
		}
	}
	return fmt.Errorf("unknown type %q", k)
}
