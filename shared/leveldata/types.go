// Package leveldata provides TMX level parsing shared between client and server.
// It turns a map into the leaves of the collision index and has no dependencies
// on any graphics library.
package leveldata

import (
	"errors"

	"github.com/automoto/arena/shared/collision"
)

var ErrUnknownBackend = errors.New("unknown index backend")

// CollisionData holds all collision-relevant data parsed from a TMX level file.
type CollisionData struct {
	Leaves    []collision.Leaf
	MapWidth  int
	MapHeight int
}

// Count returns how many leaves have the given collider kind.
func (d *CollisionData) Count(kind collision.ColliderKind) int {
	n := 0
	for i := range d.Leaves {
		if d.Leaves[i].Collider == kind {
			n++
		}
	}
	return n
}
