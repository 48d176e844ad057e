package pong

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// keyBindings maps physical keys to the four logical keys.
var keyBindings = [...]struct {
	physical ebiten.Key
	key      Key
}{
	{ebiten.KeyW, KeyLeftUp},
	{ebiten.KeyS, KeyLeftDown},
	{ebiten.KeyArrowUp, KeyRightUp},
	{ebiten.KeyArrowDown, KeyRightDown},
}

// keyEdges reports per-frame key transitions. Game reads inpututil through
// it; tests substitute scripted edges.
type keyEdges struct {
	pressed  func(ebiten.Key) bool
	released func(ebiten.Key) bool
}

var liveKeyEdges = keyEdges{
	pressed:  inpututil.IsKeyJustPressed,
	released: inpututil.IsKeyJustReleased,
}

// processInput turns this frame's key edges and clicks into Controller
// calls. A pending injected event replaces the real mouse for the frame;
// keyboard edges are always read so a real release is never lost.
func (g *Game) processInput() {
	injected := g.processInjectedInput()

	keys := g.keys
	for _, b := range keyBindings {
		if keys.pressed(b.physical) {
			g.ctrl.KeyDown(b.key)
		}
		if keys.released(b.physical) {
			g.ctrl.KeyUp(b.key)
		}
	}

	if keys.pressed(ebiten.Key1) {
		g.ctrl.ToggleAI(SideLeft)
	}
	if keys.pressed(ebiten.Key2) {
		g.ctrl.ToggleAI(SideRight)
	}
	if !injected && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		g.clickAt(float64(x), float64(y))
	}
	if keys.pressed(ebiten.KeyEscape) {
		g.quit = true
	}
}

// clickAt toggles the AI checkbox under the screen point, if any.
func (g *Game) clickAt(x, y float64) {
	for _, side := range [2]Side{SideLeft, SideRight} {
		if g.checkboxRect(side).Contains(x, y) {
			g.ctrl.ToggleAI(side)
			return
		}
	}
}
