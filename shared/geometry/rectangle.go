// Package geometry provides the body shapes shared by client and server
// collision code. It has no dependencies on the spatial index or any graphics
// library.
package geometry

// RectangleBody is an axis-aligned rectangle with a top-left origin. Y grows
// downward.
type RectangleBody struct {
	X, Y          float64
	Width, Height float64
}

// NewRectangleBody creates a rectangle from its top-left corner and extent.
func NewRectangleBody(x, y, width, height float64) RectangleBody {
	return RectangleBody{X: x, Y: y, Width: width, Height: height}
}

func (r RectangleBody) Left() float64   { return r.X }
func (r RectangleBody) Top() float64    { return r.Y }
func (r RectangleBody) Right() float64  { return r.X + r.Width }
func (r RectangleBody) Bottom() float64 { return r.Y + r.Height }

func (r RectangleBody) CenterX() float64 { return r.X + r.Width/2 }
func (r RectangleBody) CenterY() float64 { return r.Y + r.Height/2 }

// SetLeft moves the left edge to left while the right edge stays put.
func (r *RectangleBody) SetLeft(left float64) {
	right := r.Right()
	r.X = left
	r.Width = nonNegative(right - left)
}

// SetTop moves the top edge to top while the bottom edge stays put.
func (r *RectangleBody) SetTop(top float64) {
	bottom := r.Bottom()
	r.Y = top
	r.Height = nonNegative(bottom - top)
}

// SetRight moves the right edge to right while the left edge stays put.
func (r *RectangleBody) SetRight(right float64) {
	r.Width = nonNegative(right - r.X)
}

// SetBottom moves the bottom edge to bottom while the top edge stays put.
func (r *RectangleBody) SetBottom(bottom float64) {
	r.Height = nonNegative(bottom - r.Y)
}

// Copy returns an independent rectangle with the same fields.
func (r RectangleBody) Copy() RectangleBody {
	return r
}

func nonNegative(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}
