package easel

// Point is a position on the surface in pixels. The coordinate system has
// its origin at the top-left, with Y increasing downward.
type Point struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. Width and Height are never negative.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether p lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.X+r.Width &&
		p.Y >= r.Y && p.Y <= r.Y+r.Height
}

// Origin returns the rectangle's top-left corner.
func (r Rect) Origin() Point {
	return Point{r.X, r.Y}
}

// At returns a copy of the rectangle with its origin moved to p.
func (r Rect) At(p Point) Rect {
	return Rect{p.X, p.Y, r.Width, r.Height}
}

// Union returns the minimal rectangle covering every rectangle in rects.
// Panics on an empty input: every composite control is guaranteed at least
// one child, so an empty union is a programming error, not a recoverable case.
func Union(rects []Rect) Rect {
	if len(rects) == 0 {
		panic("easel: union of zero rectangles")
	}
	u := rects[0]
	for _, r := range rects[1:] {
		x0 := min(u.X, r.X)
		y0 := min(u.Y, r.Y)
		x1 := max(u.X+u.Width, r.X+r.Width)
		y1 := max(u.Y+u.Height, r.Y+r.Height)
		u = Rect{x0, y0, x1 - x0, y1 - y0}
	}
	return u
}

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// Common colors used by the built-in controls.
var (
	ColorWhite = Color{1, 1, 1, 1}
	ColorBlack = Color{0, 0, 0, 1}
)

// MouseButton identifies a mouse button. MouseButtonLeft is the only button
// that can start or continue a drag.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary (left) mouse button
	MouseButtonRight                     // secondary (right) mouse button
	MouseButtonMiddle                    // middle mouse button
)

// HAlign controls horizontal text alignment relative to a label's X anchor.
type HAlign uint8

const (
	AlignLeft   HAlign = iota // anchor at the text's left edge (default)
	AlignCenter               // anchor at the text's horizontal center
	AlignRight                // anchor at the text's right edge
)

// VAlign controls vertical text alignment relative to a label's Y anchor.
type VAlign uint8

const (
	AlignTop    VAlign = iota // anchor at the text's top edge (default)
	AlignMiddle               // anchor at the text's vertical center
	AlignBottom               // anchor at the text's bottom edge
)
