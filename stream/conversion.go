package stream

import (
	"github.com/signadot/jval/value"
)

// ValueToEvents converts v to a sequence of events.
func ValueToEvents(v value.Value) ([]Event, error) {
	r := &Recorder{}
	if err := Walk(v, r); err != nil {
		return nil, err
	}
	return r.Events(), nil
}

// EventsToValue builds a Value from a complete sequence of events.
// An empty sequence is ErrIncomplete.
func EventsToValue(events []Event, opts ...BuildOption) (value.Value, error) {
	b := NewBuilder(opts...)
	if err := Replay(events, b); err != nil {
		b.Abort()
		return value.Value{}, err
	}
	return b.Value()
}
