package easel

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a Surface to the ebiten game loop. Each Update it polls the
// mouse and keyboard, decides whether the cursor is over the surface (the
// "native target" distinction), and feeds the surface's normalization entry
// points. Synthetic input queued via the Inject methods takes priority over
// real input, one event per frame.
type Game struct {
	surface *Surface
	screen  *Screen
	debug   bool

	width, height int

	// OnUpdate, when set, runs once per frame with the tick duration in
	// seconds. Use it to drive tweens.
	OnUpdate func(dt float64)

	injectQueue []syntheticEvent
	script      *ScriptRunner

	lastX, lastY int
	keyBuf       []ebiten.Key
}

// NewGame wraps surface for the ebiten loop using cfg's window dimensions.
func NewGame(surface *Surface, cfg RunConfig) *Game {
	return &Game{
		surface: surface,
		debug:   cfg.Debug,
		width:   cfg.Width,
		height:  cfg.Height,
		lastX:   -1,
		lastY:   -1,
	}
}

// Surface returns the wrapped surface.
func (g *Game) Surface() *Surface {
	return g.surface
}

// SetScript attaches a ScriptRunner whose steps are executed ahead of input
// processing each frame.
func (g *Game) SetScript(r *ScriptRunner) {
	g.script = r
}

// Update implements ebiten.Game. One native or injected input event is
// normalized and dispatched to completion before the next frame.
func (g *Game) Update() error {
	if g.script != nil {
		g.script.step(g)
	}
	if !g.processInjected() {
		g.pollMouse()
	}
	g.pollKeys()
	if g.OnUpdate != nil {
		g.OnUpdate(1.0 / float64(ebiten.TPS()))
	}
	return nil
}

// pollMouse reads the ebiten mouse state and feeds the surface.
func (g *Game) pollMouse() {
	x, y := ebiten.CursorPosition()
	pt := Point{float64(x), float64(y)}
	over := x >= 0 && x < g.width && y >= 0 && y < g.height

	if x != g.lastX || y != g.lastY {
		g.surface.PointerMove(pt, over)
		g.lastX, g.lastY = x, y
	}

	buttons := [...]struct {
		native ebiten.MouseButton
		button MouseButton
	}{
		{ebiten.MouseButtonLeft, MouseButtonLeft},
		{ebiten.MouseButtonRight, MouseButtonRight},
		{ebiten.MouseButtonMiddle, MouseButtonMiddle},
	}
	for _, b := range buttons {
		if inpututil.IsMouseButtonJustPressed(b.native) {
			g.surface.PointerDown(pt, b.button, over)
		}
		if inpututil.IsMouseButtonJustReleased(b.native) {
			g.surface.PointerUp(pt, b.button, over)
		}
	}

	// The host has no native menu to show, so an over-surface request is
	// always ours to handle — delivered after the release, browser-style.
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonRight) {
		g.surface.ContextMenuRequest(pt, over)
	}
}

// pollKeys forwards just-pressed keys.
func (g *Game) pollKeys() {
	g.keyBuf = inpututil.AppendJustPressedKeys(g.keyBuf[:0])
	for _, k := range g.keyBuf {
		g.surface.KeyDown(int(k))
	}
}

// Draw implements ebiten.Game. The screen is not cleared between frames
// (see Run), so a skipped repaint genuinely leaves the previous frame.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.screen == nil || g.screen.img != screen {
		g.screen = NewScreen(screen)
	}
	g.surface.Draw(g.screen)
	if g.debug {
		events, changed, redraws := g.surface.Stats()
		ebitenutil.DebugPrint(screen, fmt.Sprintf(
			"FPS: %.1f\nTPS: %.1f\nevents: %d changed: %d redraws: %d",
			ebiten.ActualFPS(), ebiten.ActualTPS(), events, changed, redraws))
	}
}

// Layout implements ebiten.Game.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

// Run opens a window sized to cfg and drives surface with the ebiten loop
// until the window closes.
func Run(surface *Surface, cfg RunConfig) error {
	return RunGame(NewGame(surface, cfg), cfg)
}

// RunGame is Run for a Game built with NewGame, for callers that attach
// an OnUpdate hook or a script first.
func RunGame(g *Game, cfg RunConfig) error {
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetScreenClearedEveryFrame(false)
	return ebiten.RunGame(g)
}
