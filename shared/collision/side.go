package collision

import (
	"errors"
	"fmt"
	"math"

	"github.com/automoto/arena/shared/geometry"
)

var ErrUnknownSide = errors.New("unknown side")

// Side is the side of an obstacle a body is penetrating from.
type Side int

const (
	SideNone Side = iota
	SideLeft
	SideTop
	SideRight
	SideBottom
)

var sideNames = [...]string{
	SideNone:   "none",
	SideLeft:   "left",
	SideTop:    "top",
	SideRight:  "right",
	SideBottom: "bottom",
}

func (s Side) String() string {
	if s >= 0 && int(s) < len(sideNames) {
		return sideNames[s]
	}
	return fmt.Sprintf("Side(%d)", int(s))
}

// ParseSide is the inverse of Side.String.
func ParseSide(s string) (Side, error) {
	for side, name := range sideNames {
		if name == s {
			return Side(side), nil
		}
	}
	return SideNone, fmt.Errorf("%w: %q", ErrUnknownSide, s)
}

// RectangleToRectangleSide returns the side of r2 that r1 collides with, or
// SideNone when they do not overlap.
//
// The combined box of both rectangles is split by its two diagonals into four
// triangles; the triangle holding the center offset picks the side.
func RectangleToRectangleSide(r1, r2 geometry.RectangleBody) Side {
	dx := r1.CenterX() - r2.CenterX()
	dy := r1.CenterY() - r2.CenterY()
	width := (r1.Width + r2.Width) / 2
	height := (r1.Height + r2.Height) / 2

	if math.Abs(dx) > width || math.Abs(dy) > height {
		return SideNone
	}

	crossWidth := width * dy
	crossHeight := height * dx

	if crossWidth > crossHeight {
		if crossWidth > -crossHeight {
			return SideBottom
		}
		return SideLeft
	}
	if crossWidth > -crossHeight {
		return SideRight
	}
	return SideTop
}

// CircleToRectangleSide classifies using the circle's bounding box.
func CircleToRectangleSide(c geometry.CircleBody, r geometry.RectangleBody) Side {
	return RectangleToRectangleSide(c.Box(), r)
}
