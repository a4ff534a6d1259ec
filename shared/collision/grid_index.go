package collision

import (
	"math"

	"github.com/automoto/arena/shared/geometry"
	"github.com/solarlune/resolv"
)

// GridIndex is an Index backed by a resolv.Space: a fixed grid of cells sized
// to the map. Leaves that do not fit inside the grid (including the partial
// cells past the last whole row or column) are kept on an overflow list and
// scanned linearly.
type GridIndex struct {
	space    *resolv.Space
	width    float64
	height   float64
	cols     int
	rows     int
	objects  map[*Leaf]*resolv.Object
	overflow leafList
	order    leafList
}

// NewGridIndex creates a grid covering width x height world units split into
// cellWidth x cellHeight cells.
func NewGridIndex(width, height, cellWidth, cellHeight int) *GridIndex {
	if cellWidth <= 0 {
		cellWidth = 16
	}
	if cellHeight <= 0 {
		cellHeight = 16
	}
	return &GridIndex{
		space:   resolv.NewSpace(width, height, cellWidth, cellHeight),
		width:   float64(width / cellWidth * cellWidth),
		height:  float64(height / cellHeight * cellHeight),
		cols:    width / cellWidth,
		rows:    height / cellHeight,
		objects: make(map[*Leaf]*resolv.Object),
	}
}

func (idx *GridIndex) contains(leaf *Leaf) bool {
	return leaf.MinX >= 0 && leaf.MinY >= 0 &&
		math.Max(leaf.MaxX, leaf.MinX+1) <= idx.width &&
		math.Max(leaf.MaxY, leaf.MinY+1) <= idx.height
}

func (idx *GridIndex) Insert(leaf *Leaf) {
	if _, exists := idx.objects[leaf]; exists || idx.order.indexOf(leaf) >= 0 {
		return
	}
	idx.order = append(idx.order, leaf)

	if !idx.contains(leaf) {
		idx.overflow = append(idx.overflow, leaf)
		return
	}

	// resolv registers objects by whole cells and skips anything thinner
	// than one unit, so the stored object is at least 1x1.
	obj := resolv.NewObject(leaf.MinX, leaf.MinY,
		math.Max(leaf.MaxX-leaf.MinX, 1), math.Max(leaf.MaxY-leaf.MinY, 1),
		leaf.Collider.String())
	obj.Data = leaf
	idx.space.Add(obj)
	idx.objects[leaf] = obj
}

func (idx *GridIndex) Remove(leaf *Leaf) bool {
	if !idx.order.remove(leaf) {
		return false
	}
	if obj, exists := idx.objects[leaf]; exists {
		idx.space.Remove(obj)
		delete(idx.objects, leaf)
		return true
	}
	idx.overflow.remove(leaf)
	return true
}

func (idx *GridIndex) Search(box geometry.RectangleBody) []*Leaf {
	var found []*Leaf
	seen := make(map[*Leaf]struct{})

	// One extra ring of cells: resolv stops registering an object one unit
	// short of its right and bottom edges.
	cx, cy := idx.space.WorldToSpace(box.Left(), box.Top())
	ex, ey := idx.space.WorldToSpace(box.Right(), box.Bottom())
	cx, cy = max(cx-1, 0), max(cy-1, 0)
	ex, ey = min(ex+1, idx.cols-1), min(ey+1, idx.rows-1)
	for y := cy; y <= ey; y++ {
		for x := cx; x <= ex; x++ {
			cell := idx.space.Cell(x, y)
			if cell == nil {
				continue
			}
			for _, obj := range cell.Objects {
				leaf, ok := obj.Data.(*Leaf)
				if !ok {
					continue
				}
				if _, dup := seen[leaf]; dup {
					continue
				}
				seen[leaf] = struct{}{}
				if leaf.intersects(box) {
					found = append(found, leaf)
				}
			}
		}
	}

	for _, leaf := range idx.overflow {
		if leaf.intersects(box) {
			found = append(found, leaf)
		}
	}
	return found
}

func (idx *GridIndex) All() []*Leaf {
	return idx.order.clone()
}

func (idx *GridIndex) Len() int {
	return len(idx.order)
}
