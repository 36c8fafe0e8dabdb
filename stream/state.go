package stream

import (
	"github.com/signadot/jval/value"
)

// State provides minimal stack/state/path management.
// It validates event order (balanced begin/end, keys only inside objects,
// exactly one value per key, a single root) and tracks the current path.
type State struct {
	stack []item
	done  bool
}

type item struct {
	inObj  bool
	n      int
	key    string
	hasKey bool
}

// NewState creates a new State for tracking structure state.
func NewState() *State {
	return &State{}
}

func (s *State) pop() {
	n := len(s.stack)
	s.stack = s.stack[:n-1]
	if len(s.stack) == 0 {
		s.done = true
	}
}

func (s *State) current() *item {
	n := len(s.stack)
	return &s.stack[n-1]
}

// value accounts for a value starting at the current position.
func (s *State) value() error {
	if len(s.stack) == 0 {
		if s.done {
			return newError(s, ErrUnbalanced, "value after complete root")
		}
		return nil
	}
	cur := s.current()
	if cur.inObj {
		if !cur.hasKey {
			return newError(s, ErrMissingKey, "value without key")
		}
		cur.hasKey = false
	}
	cur.n++
	return nil
}

// ProcessEvent processes an event and updates state/path tracking.
// Call this for each event in order. On error the state is unchanged.
func (s *State) ProcessEvent(event *Event) error {
	switch event.Type {
	case EventBeginObject, EventBeginArray:
		if err := s.value(); err != nil {
			return err
		}
		s.stack = append(s.stack, item{inObj: event.Type == EventBeginObject})

	case EventEndObject:
		if len(s.stack) == 0 || !s.current().inObj {
			return newError(s, ErrUnbalanced, "end object outside object")
		}
		if s.current().hasKey {
			return newError(s, ErrMissingValue, "end object after key")
		}
		s.pop()

	case EventEndArray:
		if len(s.stack) == 0 || s.current().inObj {
			return newError(s, ErrUnbalanced, "end array outside array")
		}
		s.pop()

	case EventKey:
		if len(s.stack) == 0 || !s.current().inObj {
			return newError(s, ErrKeyOutsideObject, "key "+event.Key)
		}
		cur := s.current()
		if cur.hasKey {
			return newError(s, ErrMissingValue, "key after key")
		}
		cur.hasKey = true
		cur.key = event.Key

	default:
		if err := s.value(); err != nil {
			return err
		}
		if len(s.stack) == 0 {
			s.done = true
		}
	}
	return nil
}

// Depth returns the current nesting depth (0 = top level).
func (s *State) Depth() int {
	return len(s.stack)
}

// Done reports whether a complete root value has been seen.
func (s *State) Done() bool {
	return s.done
}

// Reset forgets all state so that a new root may follow.
func (s *State) Reset() {
	s.stack = s.stack[:0]
	s.done = false
}

// CurrentPath returns the path of the most recently started value, for
// example "$.key[0]".
func (s *State) CurrentPath() string {
	segs := make([]*value.Path, 0, len(s.stack))
	for i := range s.stack {
		it := &s.stack[i]
		switch {
		case it.inObj && (it.hasKey || it.n > 0):
			k := it.key
			segs = append(segs, &value.Path{Field: &k})
		case !it.inObj && it.n > 0:
			n := it.n - 1
			segs = append(segs, &value.Path{Index: &n})
		}
	}
	root := &value.Path{}
	p := root
	for _, seg := range segs {
		p.Next = seg
		p = seg
	}
	return root.String()
}

// IsInObject returns true if currently inside an object.
func (s *State) IsInObject() bool {
	return len(s.stack) != 0 && s.current().inObj
}

// IsInArray returns true if currently inside an array.
func (s *State) IsInArray() bool {
	return len(s.stack) != 0 && !s.current().inObj
}

// CurrentKey returns the current object key (if in object).
func (s *State) CurrentKey() (string, bool) {
	if !s.IsInObject() {
		return "", false
	}
	cur := s.current()
	if !cur.hasKey && cur.n == 0 {
		return "", false
	}
	return cur.key, true
}

// CurrentIndex returns the index of the most recent element (if in array).
func (s *State) CurrentIndex() (int, bool) {
	if !s.IsInArray() {
		return 0, false
	}
	cur := s.current()
	if cur.n == 0 {
		return 0, false
	}
	return cur.n - 1, true
}
