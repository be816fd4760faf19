package easel

// Control is the unit of interaction on a Surface. The set of variants is
// closed: Box, MenuItem, and ContextMenu.
//
// HandleEvent returns the control's next state. A control that did not
// change must return itself — the *same* pointer, not a reconstructed equal
// value — because the Surface detects change by identity comparison. A
// control whose reaction mutates the surface (spawning or removing controls)
// does so through [Surface.Add] and [Surface.Remove], which are buffered for
// the duration of the pass.
type Control interface {
	HandleEvent(ev Event, pass *Pass) Control
	Draw(c Canvas)
	Bounds() Rect
}

var (
	_ Control = (*Box)(nil)
	_ Control = (*MenuItem)(nil)
	_ Control = (*ContextMenu)(nil)
)
