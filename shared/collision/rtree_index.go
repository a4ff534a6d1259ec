package collision

import (
	"github.com/automoto/arena/shared/geometry"
	"github.com/dhconnelly/rtreego"
)

const (
	DefaultMinChildren = 25
	DefaultMaxChildren = 50

	// rtreego rejects rectangles with a zero extent, so every box handed to
	// the tree is grown by this much. Results are filtered on exact bounds.
	rtreePadding = 1e-6
)

// rtreeEntry adapts a leaf to rtreego.Spatial.
type rtreeEntry struct {
	leaf *Leaf
	rect rtreego.Rect
}

func (e *rtreeEntry) Bounds() rtreego.Rect {
	return e.rect
}

// RTreeIndex is the default Index, backed by an rtreego R-tree.
type RTreeIndex struct {
	tree    *rtreego.Rtree
	entries map[*Leaf]*rtreeEntry
	order   leafList
}

// NewRTreeIndex creates an empty two-dimensional R-tree with the given node
// fan-out.
func NewRTreeIndex(minChildren, maxChildren int) *RTreeIndex {
	if minChildren <= 0 || maxChildren < 2*minChildren {
		minChildren, maxChildren = DefaultMinChildren, DefaultMaxChildren
	}
	return &RTreeIndex{
		tree:    rtreego.NewTree(2, minChildren, maxChildren),
		entries: make(map[*Leaf]*rtreeEntry),
	}
}

func paddedRect(minX, minY, maxX, maxY float64) (rtreego.Rect, error) {
	return rtreego.NewRect(
		rtreego.Point{minX - rtreePadding, minY - rtreePadding},
		[]float64{maxX - minX + 2*rtreePadding, maxY - minY + 2*rtreePadding},
	)
}

func (idx *RTreeIndex) Insert(leaf *Leaf) {
	if _, exists := idx.entries[leaf]; exists {
		return
	}
	rect, err := paddedRect(leaf.MinX, leaf.MinY, leaf.MaxX, leaf.MaxY)
	if err != nil {
		// Inverted bounds; TreeCollider validates leaves before they get here.
		panic(err)
	}
	entry := &rtreeEntry{leaf: leaf, rect: rect}
	idx.tree.Insert(entry)
	idx.entries[leaf] = entry
	idx.order = append(idx.order, leaf)
}

func (idx *RTreeIndex) Remove(leaf *Leaf) bool {
	entry, exists := idx.entries[leaf]
	if !exists {
		return false
	}
	idx.tree.Delete(entry)
	delete(idx.entries, leaf)
	idx.order.remove(leaf)
	return true
}

func (idx *RTreeIndex) Search(box geometry.RectangleBody) []*Leaf {
	if idx.tree.Size() == 0 {
		return nil
	}

	query, err := paddedRect(box.Left(), box.Top(), box.Right(), box.Bottom())
	if err != nil {
		return nil
	}

	var found []*Leaf
	for _, obj := range idx.tree.SearchIntersect(query) {
		leaf := obj.(*rtreeEntry).leaf
		if leaf.intersects(box) {
			found = append(found, leaf)
		}
	}
	return found
}

func (idx *RTreeIndex) All() []*Leaf {
	return idx.order.clone()
}

func (idx *RTreeIndex) Len() int {
	return len(idx.order)
}
