package easel

// Default box colors.
var (
	boxFill   = Color{0.3, 0.55, 0.85, 1}
	boxStroke = ColorBlack
)

// Box is a draggable rectangle. It is in exactly one of two states: idle
// (drag == nil) or dragging. Only the left button starts or continues a drag.
type Box struct {
	rect Rect
	drag *dragState
}

// dragState anchors an in-progress drag: the rect origin and the pointer
// position at the initiating press. The current origin is always
// anchorRect + (pointer - anchorPointer), so the final position depends only
// on the last pointer point, not the path taken.
type dragState struct {
	anchorRect    Point
	anchorPointer Point
}

// NewBox creates an idle box covering r.
func NewBox(r Rect) *Box {
	return &Box{rect: r}
}

// Rect returns the box's current rectangle.
func (b *Box) Rect() Rect {
	return b.rect
}

// Dragging reports whether a drag is in progress.
func (b *Box) Dragging() bool {
	return b.drag != nil
}

// MovedTo returns an idle copy of the box with its origin at p.
func (b *Box) MovedTo(p Point) *Box {
	return &Box{rect: b.rect.At(p)}
}

// HandleEvent runs the box's idle/dragging state machine.
func (b *Box) HandleEvent(ev Event, pass *Pass) Control {
	switch e := ev.(type) {
	case PointerEvent:
		switch e.Kind {
		case EventPointerDown:
			if b.drag == nil && e.Button == MouseButtonLeft && !pass.Handled && b.rect.Contains(e.Point) {
				// Claim the press so controls beneath see it as taken.
				pass.Handled = true
				return &Box{rect: b.rect, drag: &dragState{
					anchorRect:    b.rect.Origin(),
					anchorPointer: e.Point,
				}}
			}
		case EventPointerMove:
			// Hit testing is ignored while dragging: the capture follows the
			// pointer wherever it goes.
			if b.drag != nil {
				return &Box{rect: b.rect.At(b.dragOrigin(e.Point)), drag: b.drag}
			}
		case EventPointerUp:
			if b.drag != nil && e.Button == MouseButtonLeft {
				return &Box{rect: b.rect.At(b.dragOrigin(e.Point))}
			}
		}
	case CaptureCancelEvent:
		if b.drag != nil && e.Button == MouseButtonLeft {
			// Revert the drag entirely.
			return &Box{rect: b.rect.At(b.drag.anchorRect)}
		}
	}
	return b
}

// dragOrigin computes the rect origin for the current pointer position.
func (b *Box) dragOrigin(p Point) Point {
	return Point{
		X: b.drag.anchorRect.X + (p.X - b.drag.anchorPointer.X),
		Y: b.drag.anchorRect.Y + (p.Y - b.drag.anchorPointer.Y),
	}
}

// Draw renders the box as a filled, bordered rectangle.
func (b *Box) Draw(c Canvas) {
	RectShape{Rect: b.rect, Fill: boxFill, Stroke: boxStroke}.Draw(c)
}

// Bounds returns the box's current rectangle.
func (b *Box) Bounds() Rect {
	return b.rect
}
