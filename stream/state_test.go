package stream

import (
	"errors"
	"testing"
)

func TestStateDepth(t *testing.T) {
	state := NewState()

	if state.Depth() != 0 {
		t.Errorf("expected depth 0, got %d", state.Depth())
	}

	if err := state.ProcessEvent(&Event{Type: EventBeginObject}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if state.Depth() != 1 {
		t.Errorf("expected depth 1, got %d", state.Depth())
	}
	if !state.IsInObject() || state.IsInArray() {
		t.Errorf("expected to be in object")
	}

	if err := state.ProcessEvent(&Event{Type: EventEndObject}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if state.Depth() != 0 || !state.Done() {
		t.Errorf("expected complete root at depth 0, got depth %d done %v", state.Depth(), state.Done())
	}
}

func TestStatePath(t *testing.T) {
	state := NewState()
	events := []struct {
		ev   Event
		path string
	}{
		{Event{Type: EventBeginObject}, "$"},
		{Event{Type: EventKey, Key: "a"}, "$.a"},
		{Event{Type: EventBeginArray}, "$.a"},
		{Event{Type: EventInt64, Int: 1}, "$.a[0]"},
		{Event{Type: EventBeginObject}, "$.a[1]"},
		{Event{Type: EventKey, Key: "x.y"}, "$.a[1].'x.y'"},
		{Event{Type: EventNull}, "$.a[1].'x.y'"},
		{Event{Type: EventEndObject}, "$.a[1]"},
		{Event{Type: EventEndArray}, "$.a"},
		{Event{Type: EventKey, Key: "b"}, "$.b"},
		{Event{Type: EventBool, Bool: true}, "$.b"},
		{Event{Type: EventEndObject}, "$"},
	}
	for i := range events {
		ev := &events[i]
		if err := state.ProcessEvent(&ev.ev); err != nil {
			t.Fatalf("event %d (%s): %v", i, ev.ev.Type, err)
		}
		if got := state.CurrentPath(); got != ev.path {
			t.Errorf("after event %d (%s): path %q, want %q", i, ev.ev.Type, got, ev.path)
		}
	}
}

func TestStateCurrentKeyIndex(t *testing.T) {
	state := NewState()
	for _, ev := range []Event{
		{Type: EventBeginObject},
		{Type: EventKey, Key: "k"},
	} {
		if err := state.ProcessEvent(&ev); err != nil {
			t.Fatal(err)
		}
	}
	if k, ok := state.CurrentKey(); !ok || k != "k" {
		t.Errorf("CurrentKey() = %q, %v", k, ok)
	}
	if _, ok := state.CurrentIndex(); ok {
		t.Errorf("CurrentIndex() in object")
	}
	for _, ev := range []Event{
		{Type: EventBeginArray},
		{Type: EventString, String: "x"},
		{Type: EventString, String: "y"},
	} {
		if err := state.ProcessEvent(&ev); err != nil {
			t.Fatal(err)
		}
	}
	if i, ok := state.CurrentIndex(); !ok || i != 1 {
		t.Errorf("CurrentIndex() = %d, %v", i, ok)
	}
}

func TestStateErrors(t *testing.T) {
	tests := []struct {
		name   string
		events []Event
		want   error
	}{
		{
			name:   "end object at root",
			events: []Event{{Type: EventEndObject}},
			want:   ErrUnbalanced,
		},
		{
			name:   "end array in object",
			events: []Event{{Type: EventBeginObject}, {Type: EventEndArray}},
			want:   ErrUnbalanced,
		},
		{
			name:   "end object in array",
			events: []Event{{Type: EventBeginArray}, {Type: EventEndObject}},
			want:   ErrUnbalanced,
		},
		{
			name:   "key at root",
			events: []Event{{Type: EventKey, Key: "a"}},
			want:   ErrKeyOutsideObject,
		},
		{
			name:   "key in array",
			events: []Event{{Type: EventBeginArray}, {Type: EventKey, Key: "a"}},
			want:   ErrKeyOutsideObject,
		},
		{
			name:   "value without key",
			events: []Event{{Type: EventBeginObject}, {Type: EventInt64}},
			want:   ErrMissingKey,
		},
		{
			name:   "key after key",
			events: []Event{{Type: EventBeginObject}, {Type: EventKey, Key: "a"}, {Type: EventKey, Key: "b"}},
			want:   ErrMissingValue,
		},
		{
			name:   "end after key",
			events: []Event{{Type: EventBeginObject}, {Type: EventKey, Key: "a"}, {Type: EventEndObject}},
			want:   ErrMissingValue,
		},
		{
			name:   "second root",
			events: []Event{{Type: EventNull}, {Type: EventNull}},
			want:   ErrUnbalanced,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := NewState()
			var err error
			for i := range tt.events {
				if err = state.ProcessEvent(&tt.events[i]); err != nil {
					break
				}
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("got %v, want %v", err, tt.want)
			}
			var se *Error
			if err != nil && !errors.As(err, &se) {
				t.Errorf("error %T is not *Error", err)
			}
		})
	}
}

func TestEventTypeText(t *testing.T) {
	for et := EventBeginObject; et <= EventByteString; et++ {
		d, err := et.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var back EventType
		if err := back.UnmarshalText(d); err != nil {
			t.Fatalf("%s: %v", d, err)
		}
		if back != et {
			t.Errorf("%s round trip gave %s", et, back)
		}
	}
	var et EventType
	if err := et.UnmarshalText([]byte("Comment")); err == nil {
		t.Errorf("expected error for unknown event type")
	}
}
