package easel

// Drawable is a stateless-render leaf: it can paint itself and report the
// rectangle it occupies, but takes no part in event dispatch.
type Drawable interface {
	Draw(c Canvas)
	Bounds(c Canvas) Rect
}

var (
	_ Drawable = RectShape{}
	_ Drawable = TextLabel{}
)

// RectShape draws a filled rectangle with a solid border.
type RectShape struct {
	Rect   Rect
	Fill   Color
	Stroke Color
}

// Draw paints the filled rectangle and its border.
func (s RectShape) Draw(c Canvas) {
	c.FillRect(s.Rect, s.Fill)
	c.StrokeRect(s.Rect, s.Stroke, 1)
}

// Bounds returns the shape's own rectangle.
func (s RectShape) Bounds(Canvas) Rect {
	return s.Rect
}

// TextLabel draws a single line of text anchored at (X, Y) with the given
// alignment anchors.
type TextLabel struct {
	X      float64
	HAlign HAlign
	Y      float64
	VAlign VAlign
	Text   string
	Color  Color
}

// Draw paints the text.
func (l TextLabel) Draw(c Canvas) {
	c.FillText(l.Text, l.X, l.Y, l.HAlign, l.VAlign, l.Color)
}

// Bounds returns a rectangle at (X, Y) sized by the rendered text's advance
// width and the current font's pixel size. This is an approximation, not
// true glyph bounds.
func (l TextLabel) Bounds(c Canvas) Rect {
	return Rect{l.X, l.Y, c.MeasureText(l.Text), c.FontSize()}
}
