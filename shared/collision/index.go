package collision

import "github.com/automoto/arena/shared/geometry"

// Index stores leaves and answers bounding-box queries over them. Search must
// return every leaf whose bounds intersect box, edges touching included.
// Result order is not defined.
type Index interface {
	Insert(leaf *Leaf)
	Remove(leaf *Leaf) bool
	Search(box geometry.RectangleBody) []*Leaf
	All() []*Leaf
	Len() int
}

// leafList keeps leaves in insertion order for All.
type leafList []*Leaf

func (l leafList) indexOf(leaf *Leaf) int {
	for i, item := range l {
		if item == leaf {
			return i
		}
	}
	return -1
}

func (l *leafList) remove(leaf *Leaf) bool {
	i := l.indexOf(leaf)
	if i < 0 {
		return false
	}
	*l = append((*l)[:i], (*l)[i+1:]...)
	return true
}

func (l leafList) clone() []*Leaf {
	out := make([]*Leaf, len(l))
	copy(out, l)
	return out
}
