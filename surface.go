package easel

import "time"

// EventStore is the interface for optional ECS integration. When set on a
// Surface, every accepted input is forwarded as a SurfaceEvent.
type EventStore interface {
	EmitEvent(event SurfaceEvent)
}

// SurfaceEvent carries the outcome of one accepted input for the ECS bridge.
type SurfaceEvent struct {
	Kind   EventKind
	Point  Point
	Button MouseButton
	Key    int
	// Changed reports whether the pass produced a new control collection.
	Changed bool
	// Controls is the collection size after the pass.
	Controls int
}

// Surface owns the ordered control collection of one drawing surface and
// translates normalized input into dispatch passes over it. The controls
// slice is the sole source of truth for both draw order (back-to-front) and
// hit-test priority (front-to-back). A Surface is single-threaded: each
// input runs one full pass to completion before the next is processed.
type Surface struct {
	width, height float64

	controls []Control
	nextBuf  []Control

	// pressed records, per button, whether a press that began over the
	// surface is still outstanding.
	pressed map[MouseButton]bool

	// Deferred mutations queued by control callbacks during a pass.
	inPass  bool
	adds    []Control
	removes []Control

	dirty bool

	store EventStore
	debug bool
	stats passStats
}

// NewSurface creates an empty surface of the given pixel size.
func NewSurface(width, height float64) *Surface {
	return &Surface{
		width:   width,
		height:  height,
		pressed: make(map[MouseButton]bool),
		dirty:   true, // paint once on the first frame
	}
}

// Size returns the surface's pixel dimensions.
func (s *Surface) Size() (w, h float64) {
	return s.width, s.height
}

// Controls returns the current control collection, bottom to top.
// The returned slice MUST NOT be mutated.
func (s *Surface) Controls() []Control {
	return s.controls
}

// NeedsRedraw reports whether the next Draw will repaint.
func (s *Surface) NeedsRedraw() bool {
	return s.dirty
}

// SetEventStore sets the optional ECS bridge.
func (s *Surface) SetEventStore(store EventStore) {
	s.store = store
}

// SetDebugMode enables per-pass timing logs on stderr.
func (s *Surface) SetDebugMode(enabled bool) {
	s.debug = enabled
}

// --- Mutation queue ---

// Add appends c as the new topmost control. During a dispatch pass the
// addition is buffered and applied after every control has been visited,
// keeping the collection stable while it is iterated.
func (s *Surface) Add(c Control) {
	if c == nil {
		panic("easel: cannot add nil control")
	}
	if s.inPass {
		s.adds = append(s.adds, c)
		return
	}
	s.controls = append(s.controls, c)
	s.dirty = true
}

// Remove detaches c from the surface. During a dispatch pass the removal is
// buffered like Add. Removing a control that is not present is a no-op.
func (s *Surface) Remove(c Control) {
	if s.inPass {
		s.removes = append(s.removes, c)
		return
	}
	for i, ctl := range s.controls {
		if ctl == c {
			s.controls = append(s.controls[:i], s.controls[i+1:]...)
			s.dirty = true
			return
		}
	}
}

// Replace swaps old for next in place, preserving z-order. No-op if old is
// not present. Must not be called during a dispatch pass.
func (s *Surface) Replace(old, next Control) {
	if next == nil {
		panic("easel: cannot replace with nil control")
	}
	for i, ctl := range s.controls {
		if ctl == old {
			s.controls[i] = next
			s.dirty = true
			return
		}
	}
}

// --- Input normalization ---

// PointerDown normalizes a native press. Presses whose native target is not
// the surface are not this surface's concern and are dropped.
func (s *Surface) PointerDown(pt Point, btn MouseButton, overSurface bool) {
	if !overSurface {
		return
	}
	s.pressed[btn] = true
	s.dispatch(PointerEvent{Kind: EventPointerDown, Point: pt, Button: btn})
}

// PointerMove normalizes a native pointer move over the surface.
func (s *Surface) PointerMove(pt Point, overSurface bool) {
	if !overSurface {
		return
	}
	s.dispatch(PointerEvent{Kind: EventPointerMove, Point: pt})
}

// PointerUp normalizes a native release. A release over the surface with no
// matching press is ignored (it originated elsewhere). A release elsewhere
// of a press that began over the surface becomes a CaptureCancelEvent.
func (s *Surface) PointerUp(pt Point, btn MouseButton, overSurface bool) {
	if overSurface {
		if !s.pressed[btn] {
			return
		}
		delete(s.pressed, btn)
		s.dispatch(PointerEvent{Kind: EventPointerUp, Point: pt, Button: btn})
		return
	}
	if s.pressed[btn] {
		delete(s.pressed, btn)
		s.dispatch(CaptureCancelEvent{Button: btn})
	}
}

// KeyDown normalizes a native key press.
func (s *Surface) KeyDown(key int) {
	s.dispatch(KeyEvent{Key: key})
}

// ContextMenuRequest opens a context menu at pt, clamped to the surface, and
// appends it as the new topmost control. Requests whose native target is not
// the surface are dropped, like any other input; a request over the surface
// is always processed — it suppresses the host's native menu and bypasses
// the dispatch pass entirely. The menu offers a "Box" item that spawns a
// 150x150 box at pt, plus placeholder items.
func (s *Surface) ContextMenuRequest(pt Point, overSurface bool) {
	if !overSurface {
		return
	}
	var menu *ContextMenu
	entries := []MenuEntry{
		{Label: "Box", OnActivate: func() {
			s.Add(NewBox(Rect{pt.X, pt.Y, 150, 150}))
		}},
		{Label: "Placeholder 1"},
		{Label: "Placeholder 2"},
	}
	menu = NewContextMenu(pt, s.width, s.height, func() {
		s.Remove(menu)
	}, entries)
	s.controls = append(s.controls, menu)
	s.dirty = true
	s.emit(SurfaceEvent{Kind: EventContextMenu, Point: pt, Changed: true, Controls: len(s.controls)})
}

// --- Dispatch pass ---

// dispatch runs one full pass: every control sees ev exactly once, topmost
// first, sharing a single Pass. Queued additions and removals apply after
// the pass. The surface is marked dirty only when the resulting collection
// differs — by identity — from the one in effect before the pass.
func (s *Surface) dispatch(ev Event) {
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}

	changed := false
	n := len(s.controls)
	if n > 0 {
		pass := &Pass{}
		next := s.nextBuf
		if cap(next) < n {
			next = make([]Control, n)
		}
		next = next[:n]

		s.inPass = true
		for i := n - 1; i >= 0; i-- {
			c := s.controls[i]
			nc := c.HandleEvent(ev, pass)
			if nc == nil {
				nc = c
			}
			next[i] = nc
			if nc != c {
				changed = true
			}
		}
		s.inPass = false

		if changed || len(s.adds) > 0 || len(s.removes) > 0 {
			out := make([]Control, 0, n+len(s.adds))
			for i, nc := range next {
				if s.queuedForRemoval(s.controls[i], nc) {
					continue
				}
				out = append(out, nc)
			}
			for _, a := range s.adds {
				// An addition removed within the same pass never lands.
				if s.queuedForRemoval(a, a) {
					continue
				}
				out = append(out, a)
			}
			// Queued mutations can cancel out (or remove nothing at all);
			// only an actual difference counts as a change.
			if sameControls(out, s.controls) {
				changed = false
			} else {
				s.controls = out
				s.dirty = true
				changed = true
			}
		}
		s.adds = s.adds[:0]
		s.removes = s.removes[:0]
		clear(next)
		s.nextBuf = next
	}

	s.stats.events++
	if changed {
		s.stats.changed++
	}
	if s.debug {
		s.stats.lastPass = time.Since(t0)
		s.debugLog(ev, changed)
	}
	s.emit(surfaceEventFor(ev, changed, len(s.controls)))
}

// queuedForRemoval reports whether a control — under its pre- or post-pass
// identity — was queued for removal during the pass.
func (s *Surface) queuedForRemoval(orig, next Control) bool {
	for _, r := range s.removes {
		if r == orig || r == next {
			return true
		}
	}
	return false
}

// sameControls reports whether two collections hold the same controls, by
// identity, in the same order.
func sameControls(a, b []Control) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// surfaceEventFor flattens a dispatched event into its bridge form.
func surfaceEventFor(ev Event, changed bool, controls int) SurfaceEvent {
	se := SurfaceEvent{Changed: changed, Controls: controls}
	switch e := ev.(type) {
	case PointerEvent:
		se.Kind = e.Kind
		se.Point = e.Point
		se.Button = e.Button
	case KeyEvent:
		se.Kind = EventKeyDown
		se.Key = e.Key
	case CaptureCancelEvent:
		se.Kind = EventCaptureCancel
		se.Button = e.Button
	}
	return se
}

func (s *Surface) emit(se SurfaceEvent) {
	if s.store == nil {
		return
	}
	s.store.EmitEvent(se)
}

// --- Redraw ---

// Draw repaints the surface if the last pass changed the control collection:
// clear everything, then every control back-to-front. Otherwise rendering is
// skipped entirely and the previous frame stands.
func (s *Surface) Draw(c Canvas) {
	if !s.dirty {
		return
	}
	c.Clear()
	for _, ctl := range s.controls {
		ctl.Draw(c)
	}
	s.dirty = false
	s.stats.redraws++
}
