package easel

// syntheticKind distinguishes queued synthetic events.
type syntheticKind uint8

const (
	synthPress syntheticKind = iota
	synthMove
	synthRelease
	synthContextMenu
)

// syntheticEvent is a single injected input event. Injected events always
// target the surface (overSurface = true) and are consumed one per frame in
// queue order, exactly like real input.
type syntheticEvent struct {
	kind   syntheticKind
	x, y   float64
	button MouseButton
}

// InjectPress queues a left-button press at the given surface coordinates.
func (g *Game) InjectPress(x, y float64) {
	g.injectQueue = append(g.injectQueue, syntheticEvent{kind: synthPress, x: x, y: y, button: MouseButtonLeft})
}

// InjectMove queues a pointer move. Use between InjectPress and
// InjectRelease to simulate a drag.
func (g *Game) InjectMove(x, y float64) {
	g.injectQueue = append(g.injectQueue, syntheticEvent{kind: synthMove, x: x, y: y})
}

// InjectRelease queues a left-button release.
func (g *Game) InjectRelease(x, y float64) {
	g.injectQueue = append(g.injectQueue, syntheticEvent{kind: synthRelease, x: x, y: y, button: MouseButtonLeft})
}

// InjectClick queues a press followed by a release at the same coordinates.
// Consumes two frames.
func (g *Game) InjectClick(x, y float64) {
	g.InjectPress(x, y)
	g.InjectRelease(x, y)
}

// InjectContextMenu queues a context-menu request.
func (g *Game) InjectContextMenu(x, y float64) {
	g.injectQueue = append(g.injectQueue, syntheticEvent{kind: synthContextMenu, x: x, y: y})
}

// InjectDrag queues a full drag: press at (fromX, fromY), linearly
// interpolated moves over frames-2 intermediate frames, release at
// (toX, toY). Minimum frames is 2 (press + release).
func (g *Game) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	g.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		g.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	g.InjectRelease(toX, toY)
}

// processInjected pops one event from the inject queue and feeds it through
// the surface's normalization entry points. Returns true if an event was
// consumed, in which case real mouse input is skipped this frame.
func (g *Game) processInjected() bool {
	if len(g.injectQueue) == 0 {
		return false
	}
	evt := g.injectQueue[0]
	copy(g.injectQueue, g.injectQueue[1:])
	g.injectQueue = g.injectQueue[:len(g.injectQueue)-1]

	pt := Point{evt.x, evt.y}
	switch evt.kind {
	case synthPress:
		g.surface.PointerDown(pt, evt.button, true)
	case synthMove:
		g.surface.PointerMove(pt, true)
	case synthRelease:
		g.surface.PointerUp(pt, evt.button, true)
	case synthContextMenu:
		g.surface.ContextMenuRequest(pt, true)
	}
	return true
}
