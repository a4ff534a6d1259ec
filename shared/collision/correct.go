package collision

import "github.com/automoto/arena/shared/geometry"

// edgeSetter is satisfied by *geometry.RectangleBody and *geometry.CircleBody.
type edgeSetter interface {
	SetLeft(float64)
	SetTop(float64)
	SetRight(float64)
	SetBottom(float64)
}

// snap puts the edge of body facing side flush with the opposite edge of to.
// Only the penetration axis changes.
func snap(body edgeSetter, to geometry.RectangleBody, side Side) {
	switch side {
	case SideLeft:
		body.SetRight(to.Left())
	case SideTop:
		body.SetBottom(to.Top())
	case SideRight:
		body.SetLeft(to.Right())
	case SideBottom:
		body.SetTop(to.Bottom())
	}
}

// CorrectedPositionFromSide returns a copy of from with the edge facing side
// snapped to the opposing edge of to. SideNone returns an unchanged copy.
func CorrectedPositionFromSide(from, to geometry.RectangleBody, side Side) geometry.RectangleBody {
	corrected := from.Copy()
	snap(&corrected, to, side)
	return corrected
}

// CorrectedCirclePositionFromSide is CorrectedPositionFromSide for circles.
func CorrectedCirclePositionFromSide(from geometry.CircleBody, to geometry.RectangleBody, side Side) geometry.CircleBody {
	corrected := from.Copy()
	snap(&corrected, to, side)
	return corrected
}

// RectangleToRectangles corrects rectangle against each obstacle in order.
// Every test and correction uses the value already corrected by the previous
// obstacles; the list is walked once. ok is false when nothing collided.
func RectangleToRectangles(rectangle geometry.RectangleBody, obstacles []geometry.RectangleBody) (corrected geometry.RectangleBody, ok bool) {
	corrected = rectangle.Copy()

	for _, obstacle := range obstacles {
		if !RectangleToRectangle(corrected, obstacle) {
			continue
		}
		ok = true
		snap(&corrected, obstacle, RectangleToRectangleSide(corrected, obstacle))
	}

	if !ok {
		return geometry.RectangleBody{}, false
	}
	return corrected, true
}

// CircleToRectangles corrects circle against each obstacle in order. The
// overlap test uses the running corrected circle, but the side is always
// classified against the circle as passed in.
func CircleToRectangles(circle geometry.CircleBody, obstacles []geometry.RectangleBody) (corrected geometry.CircleBody, ok bool) {
	corrected = circle.Copy()

	for _, obstacle := range obstacles {
		if !CircleToRectangle(corrected, obstacle) {
			continue
		}
		ok = true
		snap(&corrected, obstacle, CircleToRectangleSide(circle, obstacle))
	}

	if !ok {
		return geometry.CircleBody{}, false
	}
	return corrected, true
}
