package collision

import (
	"errors"
	"fmt"
	"math"

	"github.com/automoto/arena/shared/geometry"
)

var (
	ErrInvalidLeaf     = errors.New("invalid leaf")
	ErrUnknownCollider = errors.New("unknown collider")
)

// ColliderKind tells whether an indexed leaf takes part in position correction.
type ColliderKind int

const (
	// ColliderFull leaves are solid: correction pushes bodies out of them.
	ColliderFull ColliderKind = iota
	// ColliderZone leaves are trigger areas, visible to searches only.
	ColliderZone
	// ColliderNone leaves are markers (spawn points and the like).
	ColliderNone
)

var colliderNames = map[ColliderKind]string{
	ColliderFull: "full",
	ColliderZone: "zone",
	ColliderNone: "none",
}

func (k ColliderKind) String() string {
	if name, ok := colliderNames[k]; ok {
		return name
	}
	return fmt.Sprintf("ColliderKind(%d)", int(k))
}

// ParseColliderKind maps a map-editor collider tag to its kind.
func ParseColliderKind(s string) (ColliderKind, error) {
	for kind, name := range colliderNames {
		if name == s {
			return kind, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownCollider, s)
}

// LeafType is an application-defined category for map geometry, e.g. walls or
// spawn markers.
type LeafType int

// Leaf is one piece of map geometry stored in the spatial index.
type Leaf struct {
	MinX, MinY float64
	MaxX, MaxY float64
	Collider   ColliderKind
	Type       LeafType
}

// NewLeaf creates a leaf from a top-left corner and extent.
func NewLeaf(x, y, width, height float64, collider ColliderKind, leafType LeafType) *Leaf {
	return &Leaf{
		MinX:     x,
		MinY:     y,
		MaxX:     x + width,
		MaxY:     y + height,
		Collider: collider,
		Type:     leafType,
	}
}

// Body converts the leaf's bounding box into a rectangle.
func (l *Leaf) Body() geometry.RectangleBody {
	return geometry.NewRectangleBody(l.MinX, l.MinY, l.MaxX-l.MinX, l.MaxY-l.MinY)
}

// Solid reports whether the leaf blocks movement.
func (l *Leaf) Solid() bool {
	return l.Collider == ColliderFull
}

// Validate checks the leaf is usable by the index.
func (l *Leaf) Validate() error {
	for _, v := range []float64{l.MinX, l.MinY, l.MaxX, l.MaxY} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: non-finite bounds %v", ErrInvalidLeaf, *l)
		}
	}
	if l.MinX > l.MaxX || l.MinY > l.MaxY {
		return fmt.Errorf("%w: min exceeds max %v", ErrInvalidLeaf, *l)
	}
	if _, ok := colliderNames[l.Collider]; !ok {
		return fmt.Errorf("%w: %v", ErrUnknownCollider, l.Collider)
	}
	return nil
}

// intersects uses inclusive bounds, so leaves touching the box are included.
func (l *Leaf) intersects(box geometry.RectangleBody) bool {
	return l.MinX <= box.Right() &&
		l.MaxX >= box.Left() &&
		l.MinY <= box.Bottom() &&
		l.MaxY >= box.Top()
}
