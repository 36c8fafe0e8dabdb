package libdiff

import "github.com/signadot/jval/value"

// segs is a path under construction.
type segs []value.Path

func (s segs) field(k string) segs {
	res := make(segs, len(s), len(s)+1)
	copy(res, s)
	return append(res, value.Path{Field: &k})
}

func (s segs) index(i int) segs {
	res := make(segs, len(s), len(s)+1)
	copy(res, s)
	return append(res, value.Path{Index: &i})
}

func (s segs) path() *value.Path {
	if len(s) == 0 {
		return &value.Path{}
	}
	nodes := make([]value.Path, len(s))
	copy(nodes, s)
	for i := 0; i+1 < len(nodes); i++ {
		nodes[i].Next = &nodes[i+1]
	}
	return &nodes[0]
}

// split returns the path of p's parent and p's final step. The final step
// of the root is nil.
func split(p *value.Path) (*value.Path, *value.Path) {
	var steps segs
	for x := p; x != nil; x = x.Next {
		if x.Field == nil && x.Index == nil && !x.Append {
			continue
		}
		steps = append(steps, value.Path{Field: x.Field, Index: x.Index, Append: x.Append})
	}
	if len(steps) == 0 {
		return &value.Path{}, nil
	}
	last := steps[len(steps)-1]
	return steps[:len(steps)-1].path(), &last
}
