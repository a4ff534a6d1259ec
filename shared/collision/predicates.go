// Package collision implements the shape predicates, side classification and
// position correction used to keep bodies out of static map geometry, plus a
// spatial index over that geometry.
package collision

import (
	"github.com/automoto/arena/shared/gamemath"
	"github.com/automoto/arena/shared/geometry"
)

// RectangleToRectangle reports whether two rectangles overlap. Touching edges
// do not count.
func RectangleToRectangle(r1, r2 geometry.RectangleBody) bool {
	return r1.Left() < r2.Right() &&
		r1.Right() > r2.Left() &&
		r1.Top() < r2.Bottom() &&
		r1.Bottom() > r2.Top()
}

// CircleToCircle reports whether two circles overlap. Touching does not count.
func CircleToCircle(c1, c2 geometry.CircleBody) bool {
	return gamemath.Distance(c1.X, c1.Y, c2.X, c2.Y) < c1.Radius+c2.Radius
}

// CircleToRectangle reports whether a circle overlaps a rectangle. Unlike the
// other predicates, touching counts as a collision.
func CircleToRectangle(c geometry.CircleBody, r geometry.RectangleBody) bool {
	testX := gamemath.ClampFloat(c.X, r.Left(), r.Right())
	testY := gamemath.ClampFloat(c.Y, r.Top(), r.Bottom())

	return gamemath.Distance(c.X, c.Y, testX, testY) <= c.Radius
}
