// Package easel is a small interactive 2D surface toolkit for [Ebitengine].
//
// Easel renders and manipulates an ordered collection of controls on a
// drawing surface: draggable boxes and a transient right-click context menu.
// The heart of the package is the [Surface]: it normalizes raw pointer and
// keyboard input into typed events, routes each event through the control
// collection topmost-first in a single dispatch pass, and repaints only when
// a pass actually changed the collection.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and game
// loop for you:
//
//	surface := easel.NewSurface(800, 600)
//	surface.Add(easel.NewBox(easel.Rect{X: 100, Y: 100, Width: 150, Height: 150}))
//	easel.Run(surface, easel.RunConfig{Title: "easel", Width: 800, Height: 600})
//
// For full control, implement [ebiten.Game] yourself and call the surface's
// normalization entry points and [Surface.Draw] directly.
//
// # Controls
//
// A [Control] is an immutable value: handling an event returns the control's
// next state, and an unchanged control returns itself. The Surface detects
// change by identity comparison, which makes the redraw decision a pure,
// auditable check. Controls that need to add or remove other controls do so
// through [Surface.Add] and [Surface.Remove], which are buffered while a
// dispatch pass is running and applied after it.
//
// Right-clicking the surface opens a [ContextMenu] whose first item spawns a
// draggable [Box] at the pointer. Any release or capture-cancel closes the
// menu.
//
// # Extras
//
// [BoxTween] animates boxes (via [gween]), [Game.InjectDrag] and friends
// feed synthetic input for tests and demos, [ScriptRunner] sequences JSON
// input scripts, and the easel/ecs package bridges surface events to a
// [Donburi] world.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
// [Donburi]: https://github.com/yohamta/donburi
package easel
