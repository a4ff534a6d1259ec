package collision

import (
	"fmt"

	"github.com/automoto/arena/shared/geometry"
)

// TreeCollider answers overlap, search and correction queries against the
// static geometry of one map. It owns its Index and is not safe for
// concurrent mutation: callers serialise Insert/Remove against queries.
type TreeCollider struct {
	index Index
}

// Option configures a TreeCollider.
type Option func(*TreeCollider)

// WithIndex replaces the default R-tree backend.
func WithIndex(index Index) Option {
	return func(t *TreeCollider) {
		t.index = index
	}
}

// NewTreeCollider creates an empty collider, backed by an R-tree unless
// WithIndex says otherwise.
func NewTreeCollider(opts ...Option) *TreeCollider {
	t := &TreeCollider{}
	for _, opt := range opts {
		opt(t)
	}
	if t.index == nil {
		t.index = NewRTreeIndex(DefaultMinChildren, DefaultMaxChildren)
	}
	return t
}

// Insert validates and indexes leaves. Nothing is inserted if any leaf is
// invalid.
func (t *TreeCollider) Insert(leaves ...*Leaf) error {
	for i, leaf := range leaves {
		if leaf == nil {
			return fmt.Errorf("leaf %d: %w: nil", i, ErrInvalidLeaf)
		}
		if err := leaf.Validate(); err != nil {
			return fmt.Errorf("leaf %d: %w", i, err)
		}
	}
	for _, leaf := range leaves {
		t.index.Insert(leaf)
	}
	return nil
}

// Remove drops a leaf previously passed to Insert.
func (t *TreeCollider) Remove(leaf *Leaf) bool {
	return t.index.Remove(leaf)
}

// Clear removes every leaf.
func (t *TreeCollider) Clear() {
	for _, leaf := range t.index.All() {
		t.index.Remove(leaf)
	}
}

// Len returns the number of indexed leaves.
func (t *TreeCollider) Len() int {
	return t.index.Len()
}

// All returns every indexed leaf.
func (t *TreeCollider) All() []*Leaf {
	return t.index.All()
}

// CollidesWithRectangle is a broad-phase test: true if any leaf's bounds
// intersect the rectangle.
func (t *TreeCollider) CollidesWithRectangle(body geometry.RectangleBody) bool {
	return len(t.index.Search(body)) > 0
}

// CollidesWithCircle tests the circle's bounding box, so it can report a hit
// near a leaf corner that the circle itself does not reach.
func (t *TreeCollider) CollidesWithCircle(body geometry.CircleBody) bool {
	return len(t.index.Search(body.Box())) > 0
}

// SearchWithRectangle returns the leaves whose bounds intersect the rectangle.
func (t *TreeCollider) SearchWithRectangle(body geometry.RectangleBody) []*Leaf {
	return t.index.Search(body)
}

// SearchWithCircle returns the leaves whose bounds intersect the circle's box.
func (t *TreeCollider) SearchWithCircle(body geometry.CircleBody) []*Leaf {
	return t.index.Search(body.Box())
}

// CorrectWithRectangle pushes body out of every solid leaf it overlaps, one
// leaf at a time in index order. Each side is classified against the value
// corrected so far. Non-solid leaves are ignored.
func (t *TreeCollider) CorrectWithRectangle(body geometry.RectangleBody) geometry.RectangleBody {
	corrected := body.Copy()

	leaves := t.SearchWithRectangle(body)
	if len(leaves) == 0 {
		return corrected
	}

	for _, leaf := range leaves {
		if !leaf.Solid() {
			continue
		}
		wall := leaf.Body()
		snap(&corrected, wall, RectangleToRectangleSide(corrected, wall))
	}
	return corrected
}

// CorrectWithCircle is CorrectWithRectangle for circles, except that every
// side is classified against body as passed in.
func (t *TreeCollider) CorrectWithCircle(body geometry.CircleBody) geometry.CircleBody {
	corrected := body.Copy()

	leaves := t.SearchWithCircle(body)
	if len(leaves) == 0 {
		return corrected
	}

	for _, leaf := range leaves {
		if !leaf.Solid() {
			continue
		}
		wall := leaf.Body()
		snap(&corrected, wall, CircleToRectangleSide(body, wall))
	}
	return corrected
}

// GetAllByType returns the bounds of every leaf of the given type.
func (t *TreeCollider) GetAllByType(leafType LeafType) []geometry.RectangleBody {
	var bodies []geometry.RectangleBody
	for _, leaf := range t.index.All() {
		if leaf.Type == leafType {
			bodies = append(bodies, leaf.Body())
		}
	}
	return bodies
}
