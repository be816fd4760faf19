package easel

// EventKind identifies a kind of surface event.
type EventKind uint8

const (
	EventPointerDown   EventKind = iota // a button was pressed over the surface
	EventPointerUp                      // a button was released over the surface
	EventPointerMove                    // the pointer moved over the surface
	EventKeyDown                        // a key was pressed
	EventCaptureCancel                  // a press begun over the surface ended elsewhere
	EventContextMenu                    // a context menu was requested
)

// Event is a normalized surface event delivered to controls during a dispatch
// pass. The set of event types is closed: PointerEvent, KeyEvent, and
// CaptureCancelEvent.
type Event interface {
	event()
}

// PointerEvent is a pointer press, release, or move. Button is meaningful
// only for EventPointerDown and EventPointerUp.
type PointerEvent struct {
	Kind   EventKind
	Point  Point
	Button MouseButton
}

func (PointerEvent) event() {}

// KeyEvent is a key press. Key carries the host's key code; no control in
// the built-in set reacts to it.
type KeyEvent struct {
	Key int
}

func (KeyEvent) event() {}

// CaptureCancelEvent reverts an in-progress capture. It is synthesized by
// the Surface when a press that began over the surface is released elsewhere;
// it is never produced by native input. A control with no outstanding capture
// for Button must treat it as a no-op.
type CaptureCancelEvent struct {
	Button MouseButton
}

func (CaptureCancelEvent) event() {}

// Pass is the shared state of a single dispatch pass. Handled is set by the
// first control that claims a press; downstream controls in the same pass
// must then treat the press as taken. A Pass lives exactly as long as its
// pass — it is never stored.
type Pass struct {
	Handled bool
}
