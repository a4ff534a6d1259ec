package geometry

// CircleBody is a circle positioned by its center.
type CircleBody struct {
	X, Y   float64
	Radius float64
}

// NewCircleBody creates a circle from its center and radius.
func NewCircleBody(x, y, radius float64) CircleBody {
	return CircleBody{X: x, Y: y, Radius: radius}
}

// Box returns the tightest rectangle enclosing the circle.
func (c CircleBody) Box() RectangleBody {
	return RectangleBody{
		X:      c.X - c.Radius,
		Y:      c.Y - c.Radius,
		Width:  c.Radius * 2,
		Height: c.Radius * 2,
	}
}

func (c CircleBody) Left() float64   { return c.X - c.Radius }
func (c CircleBody) Top() float64    { return c.Y - c.Radius }
func (c CircleBody) Right() float64  { return c.X + c.Radius }
func (c CircleBody) Bottom() float64 { return c.Y + c.Radius }

// The edge setters move the center so the named box edge lands on the given
// value. The radius is never changed.

func (c *CircleBody) SetLeft(left float64)     { c.X = left + c.Radius }
func (c *CircleBody) SetTop(top float64)       { c.Y = top + c.Radius }
func (c *CircleBody) SetRight(right float64)   { c.X = right - c.Radius }
func (c *CircleBody) SetBottom(bottom float64) { c.Y = bottom - c.Radius }

// Copy returns an independent circle with the same fields.
func (c CircleBody) Copy() CircleBody {
	return c
}
