package stream

import "github.com/signadot/jval/value"

// Recorder is a Handler that stores the events it receives. Byte strings
// are copied.
type Recorder struct {
	events  []Event
	flushes int
}

var _ Handler = (*Recorder)(nil)

// Events returns the recorded events.
func (r *Recorder) Events() []Event { return r.events }

// Flushes returns how many times Flush was called.
func (r *Recorder) Flushes() int { return r.flushes }

// Reset discards the recorded events.
func (r *Recorder) Reset() {
	r.events = r.events[:0]
	r.flushes = 0
}

func (r *Recorder) add(ev Event) error {
	r.events = append(r.events, ev)
	return nil
}

func (r *Recorder) Null(tag value.SemanticTag) error {
	return r.add(Event{Type: EventNull, Tag: tag})
}

func (r *Recorder) Bool(b bool, tag value.SemanticTag) error {
	return r.add(Event{Type: EventBool, Bool: b, Tag: tag})
}

func (r *Recorder) Int64(i int64, tag value.SemanticTag) error {
	return r.add(Event{Type: EventInt64, Int: i, Tag: tag})
}

func (r *Recorder) Uint64(u uint64, tag value.SemanticTag) error {
	return r.add(Event{Type: EventUint64, Uint: u, Tag: tag})
}

func (r *Recorder) Half(bits uint16, tag value.SemanticTag) error {
	return r.add(Event{Type: EventHalf, Half: bits, Tag: tag})
}

func (r *Recorder) Double(f float64, tag value.SemanticTag) error {
	return r.add(Event{Type: EventDouble, Float: f, Tag: tag})
}

func (r *Recorder) String(s string, tag value.SemanticTag) error {
	return r.add(Event{Type: EventString, String: s, Tag: tag})
}

func (r *Recorder) ByteString(b []byte, tag value.SemanticTag) error {
	return r.add(Event{Type: EventByteString, Bytes: append([]byte(nil), b...), Tag: tag})
}

func (r *Recorder) BeginArray(sizeHint int, tag value.SemanticTag) error {
	return r.add(Event{Type: EventBeginArray, SizeHint: sizeHint, Tag: tag})
}

func (r *Recorder) EndArray() error {
	return r.add(Event{Type: EventEndArray})
}

func (r *Recorder) BeginObject(sizeHint int, tag value.SemanticTag) error {
	return r.add(Event{Type: EventBeginObject, SizeHint: sizeHint, Tag: tag})
}

func (r *Recorder) Key(k string) error {
	return r.add(Event{Type: EventKey, Key: k})
}

func (r *Recorder) EndObject() error {
	return r.add(Event{Type: EventEndObject})
}

func (r *Recorder) Flush() error {
	r.flushes++
	return nil
}
