package easel

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// BoxTween animates a Box's origin toward a target point. Because controls
// are immutable values, each Update replaces the box on the surface via
// [Surface.Replace] and tracks the replacement for the next tick. If the
// box was removed from the surface mid-flight, the tween stops.
//
// There is no global animation manager — callers drive Update themselves,
// typically from Game.OnUpdate.
type BoxTween struct {
	surface *Surface
	box     *Box
	x, y    *gween.Tween
	Done    bool
}

// NewBoxTween animates box to origin (toX, toY) over duration seconds using
// the given easing function.
func NewBoxTween(s *Surface, box *Box, toX, toY float64, duration float32, fn ease.TweenFunc) *BoxTween {
	r := box.Rect()
	return &BoxTween{
		surface: s,
		box:     box,
		x:       gween.New(float32(r.X), float32(toX), duration, fn),
		y:       gween.New(float32(r.Y), float32(toY), duration, fn),
	}
}

// Box returns the box value the tween currently tracks.
func (t *BoxTween) Box() *Box {
	return t.box
}

// Update advances the tween by dt seconds and moves the box on the surface.
func (t *BoxTween) Update(dt float32) {
	if t.Done {
		return
	}
	if !t.onSurface() {
		t.Done = true
		return
	}
	xv, xd := t.x.Update(dt)
	yv, yd := t.y.Update(dt)
	next := t.box.MovedTo(Point{float64(xv), float64(yv)})
	t.surface.Replace(t.box, next)
	t.box = next
	t.Done = xd && yd
}

func (t *BoxTween) onSurface() bool {
	for _, c := range t.surface.Controls() {
		if c == t.box {
			return true
		}
	}
	return false
}
