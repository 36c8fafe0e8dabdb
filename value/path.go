package value

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrPath reports a malformed path or one that cannot be followed.
var ErrPath = errors.New("bad path")

// Path addresses a value below a root. Its text form is "$" for the root
// followed by ".field", ".'quoted.field'", "[index]" or "[-]" (one past the
// end of an array) steps. Paths built with PathOf hold only fields; a field
// step applied to an array is read as an index when it is a decimal number or
// "-".
type Path struct {
	Field  *string
	Index  *int
	Append bool
	Next   *Path
}

// PathOf returns the path of field steps segs. No segments is the root.
func PathOf(segs ...string) *Path {
	root := &Path{}
	x := root
	for i, seg := range segs {
		f := seg
		x.Field = &f
		if i < len(segs)-1 {
			x.Next = &Path{}
			x = x.Next
		}
	}
	return root
}

func (p *Path) isRoot() bool {
	return p == nil || (p.Field == nil && p.Index == nil && !p.Append && p.Next == nil)
}

func (p *Path) String() string {
	buf := bytes.NewBuffer([]byte{'$'})
	for x := p; x != nil; x = x.Next {
		switch {
		case x.Field != nil:
			buf.WriteString("." + pathField(*x.Field))
		case x.Index != nil:
			fmt.Fprintf(buf, "[%d]", *x.Index)
		case x.Append:
			buf.WriteString("[-]")
		}
	}
	return buf.String()
}

func pathField(f string) string {
	if f != "" && strings.IndexAny(f, "'.*$[]\\") == -1 {
		return f
	}
	return "'" + strings.NewReplacer("\\", "\\\\", "'", "\\'").Replace(f) + "'"
}

// Pointer returns p as an RFC 6901 JSON pointer.
func (p *Path) Pointer() string {
	var buf strings.Builder
	for x := p; x != nil; x = x.Next {
		switch {
		case x.Field != nil:
			buf.WriteByte('/')
			buf.WriteString(strings.NewReplacer("~", "~0", "/", "~1").Replace(*x.Field))
		case x.Index != nil:
			buf.WriteByte('/')
			buf.WriteString(strconv.Itoa(*x.Index))
		case x.Append:
			buf.WriteString("/-")
		}
	}
	return buf.String()
}

// ParsePointer parses an RFC 6901 JSON pointer into a path of field steps.
func ParsePointer(s string) (*Path, error) {
	if s == "" {
		return &Path{}, nil
	}
	if s[0] != '/' {
		return nil, fmt.Errorf("%w: pointer %q should start with '/'", ErrPath, s)
	}
	segs := strings.Split(s[1:], "/")
	r := strings.NewReplacer("~1", "/", "~0", "~")
	for i := range segs {
		segs[i] = r.Replace(segs[i])
	}
	return PathOf(segs...), nil
}

// ParsePath parses the text form of a path.
func ParsePath(p string) (*Path, error) {
	if len(p) == 0 || p[0] != '$' {
		return nil, fmt.Errorf("%w: path %q should start with '$'", ErrPath, p)
	}
	root := &Path{}
	if err := parseFrag(p[1:], root); err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrPath, p, err)
	}
	return root, nil
}

func parseFrag(frag string, x *Path) error {
	if len(frag) == 0 {
		return nil
	}
	var rest string
	switch frag[0] {
	case '.':
		field, r, err := parseField(frag[1:])
		if err != nil {
			return err
		}
		x.Field = &field
		rest = r
	case '[':
		i := strings.IndexByte(frag[1:], ']')
		if i == -1 {
			return fmt.Errorf("expected '[' <index> ']'")
		}
		is := frag[1 : i+1]
		if is == "-" {
			x.Append = true
		} else {
			u, err := strconv.ParseUint(is, 10, 31)
			if err != nil {
				return err
			}
			index := int(u)
			x.Index = &index
		}
		rest = frag[i+2:]
	default:
		return fmt.Errorf("expected '.' or '['")
	}
	if len(rest) == 0 {
		return nil
	}
	x.Next = &Path{}
	return parseFrag(rest, x.Next)
}

func parseField(frag string) (field, rest string, err error) {
	if len(frag) == 0 {
		return "", "", fmt.Errorf("expected field at end of string")
	}
	if frag[0] != '\'' {
		i := strings.IndexAny(frag, ".[")
		if i == -1 {
			return frag, "", nil
		}
		return frag[:i], frag[i:], nil
	}
	escaped := false
	res := make([]byte, 0, len(frag))
	for i := 1; i < len(frag); i++ {
		c := frag[i]
		switch {
		case escaped:
			escaped = false
			res = append(res, c)
		case c == '\\':
			escaped = true
		case c == '\'':
			return string(res), frag[i+1:], nil
		default:
			res = append(res, c)
		}
	}
	return "", "", fmt.Errorf("end of string scanning for \"'\"")
}

// arrayIndex resolves step x against an array of length n. It returns n for
// an append step.
func arrayIndex(x *Path, n int) (int, error) {
	switch {
	case x.Index != nil:
		return *x.Index, nil
	case x.Append:
		return n, nil
	case x.Field != nil:
		if *x.Field == "-" {
			return n, nil
		}
		i, err := strconv.Atoi(*x.Field)
		if err != nil || i < 0 {
			return 0, fmt.Errorf("%w: %q is not an array index", ErrPath, *x.Field)
		}
		return i, nil
	}
	return 0, fmt.Errorf("%w: empty step", ErrPath)
}

// step returns the child of v addressed by x.
func (v *Value) step(x *Path) (*Value, error) {
	switch v.ext.kind() {
	case ArrayKind:
		i, err := arrayIndex(x, v.Size())
		if err != nil {
			return nil, err
		}
		return v.At(i)
	case ObjectKind, EmptyObjectKind:
		if x.Field == nil {
			return nil, fmt.Errorf("%w: index step on object", ErrPath)
		}
		return v.AtKey(*x.Field)
	}
	return nil, notObject("Get", v.ext.kind())
}

// Get returns the value p addresses below v.
func (v *Value) Get(p *Path) (*Value, error) {
	res := v
	for x := p; x != nil; x = x.Next {
		if x.isRoot() {
			continue
		}
		c, err := res.step(x)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", p, err)
		}
		res = c
	}
	return res, nil
}

// GetPath is Get(PathOf(path...)).
func (v *Value) GetPath(path ...string) (*Value, error) {
	return v.Get(PathOf(path...))
}

// Put stores x at p, taking ownership of x. Missing object members and null
// values along the way become objects, or arrays when the following step is
// an index. A final array step may address one past the end to append. On
// error v is unchanged and x still belongs to the caller.
func (v *Value) Put(p *Path, x Value) error {
	if p.isRoot() {
		v.Set(x)
		return nil
	}
	if err := v.checkPut(p); err != nil {
		return fmt.Errorf("%s: %w", p, err)
	}
	parent := v
	cur := p
	for cur.Next != nil {
		c, err := parent.stepForWrite(cur)
		if err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
		parent = c
		cur = cur.Next
	}
	if err := parent.store(cur, x); err != nil {
		return fmt.Errorf("%s: %w", p, err)
	}
	return nil
}

// SetPath is Put(PathOf(path...), x).
func (v *Value) SetPath(x Value, path ...string) error {
	return v.Put(PathOf(path...), x)
}

// checkPut follows p the way Put does without changing v. Containers Put
// would create are stood in for by empty scratch values.
func (v *Value) checkPut(p *Path) error {
	cur := v
	for x := p; x != nil; x = x.Next {
		if cur.ext.kind() == NullKind {
			scratch := containerFor(x)
			cur = &scratch
		}
		var next *Value
		switch cur.ext.kind() {
		case ArrayKind:
			a := cur.array()
			i, err := arrayIndex(x, a.Len())
			if err != nil {
				return err
			}
			if i == a.Len() {
				break
			}
			if next, err = a.At(i); err != nil {
				return err
			}
		case ObjectKind, EmptyObjectKind:
			if x.Field == nil {
				return fmt.Errorf("%w: index step on object", ErrPath)
			}
			if o := cur.object(); o != nil {
				if m, ok := o.Get(*x.Field); ok {
					next = m
				}
			}
		default:
			return notObject("Put", cur.ext.kind())
		}
		if next == nil {
			if x.Next == nil {
				return nil
			}
			scratch := containerFor(x.Next)
			next = &scratch
		}
		cur = next
	}
	return nil
}

func containerFor(next *Path) Value {
	if next.Index != nil || next.Append {
		return NewArray()
	}
	return EmptyObject()
}

// stepForWrite is step creating what is missing for the step after x.
func (v *Value) stepForWrite(x *Path) (*Value, error) {
	if v.ext.kind() == NullKind {
		*v = containerFor(x)
	}
	switch v.ext.kind() {
	case ArrayKind:
		a := v.array()
		i, err := arrayIndex(x, a.Len())
		if err != nil {
			return nil, err
		}
		if i == a.Len() {
			a.PushBack(containerFor(x.Next))
		}
		return a.At(i)
	case ObjectKind, EmptyObjectKind:
		if x.Field == nil {
			return nil, fmt.Errorf("%w: index step on object", ErrPath)
		}
		o, _ := v.objectForWrite("Put")
		i, _ := o.TryEmplace(*x.Field, containerFor(x.Next))
		m, err := o.At(i)
		if err != nil {
			return nil, err
		}
		return &m.Value, nil
	}
	return nil, notObject("Put", v.ext.kind())
}

func (v *Value) store(x *Path, val Value) error {
	if v.ext.kind() == NullKind {
		*v = containerFor(x)
	}
	switch v.ext.kind() {
	case ArrayKind:
		a := v.array()
		i, err := arrayIndex(x, a.Len())
		if err != nil {
			return err
		}
		if i == a.Len() {
			a.PushBack(val)
			return nil
		}
		e, err := a.At(i)
		if err != nil {
			return err
		}
		e.Set(val)
		return nil
	case ObjectKind, EmptyObjectKind:
		if x.Field == nil {
			return fmt.Errorf("%w: index step on object", ErrPath)
		}
		_, _, err := v.InsertOrAssign(*x.Field, val)
		return err
	}
	return notObject("Put", v.ext.kind())
}

// Delete removes and releases the value p addresses. The root cannot be
// deleted.
func (v *Value) Delete(p *Path) error {
	if p.isRoot() {
		return fmt.Errorf("%w: cannot delete the root", ErrPath)
	}
	parent := v
	cur := p
	for cur.Next != nil {
		c, err := parent.step(cur)
		if err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
		parent = c
		cur = cur.Next
	}
	var err error
	switch parent.ext.kind() {
	case ArrayKind:
		var i int
		i, err = arrayIndex(cur, parent.Size())
		if err == nil {
			err = parent.EraseAt(i)
		}
	case ObjectKind, EmptyObjectKind:
		if cur.Field == nil {
			err = fmt.Errorf("%w: index step on object", ErrPath)
			break
		}
		var ok bool
		ok, err = parent.EraseKey(*cur.Field)
		if err == nil && !ok {
			err = &KeyError{Key: *cur.Field}
		}
	default:
		err = notObject("Delete", parent.ext.kind())
	}
	if err != nil {
		return fmt.Errorf("%s: %w", p, err)
	}
	return nil
}

// DeletePath is Delete(PathOf(path...)).
func (v *Value) DeletePath(path ...string) error {
	return v.Delete(PathOf(path...))
}
