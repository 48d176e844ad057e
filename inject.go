package pong

// syntheticKind selects what a syntheticInput does when consumed.
type syntheticKind uint8

const (
	syntheticIdle syntheticKind = iota
	syntheticKeyDown
	syntheticKeyUp
	syntheticClick
	syntheticToggleAI
)

// syntheticInput represents a single injected input event. Screen
// coordinates are used for clicks, matching what a screenshot shows.
type syntheticInput struct {
	kind             syntheticKind
	key              Key
	side             Side
	screenX, screenY float64
}

// InjectKeyDown queues a key press. The event is consumed on the next
// frame's input pass.
func (g *Game) InjectKeyDown(k Key) {
	g.injectQueue = append(g.injectQueue, syntheticInput{kind: syntheticKeyDown, key: k})
}

// InjectKeyUp queues a key release.
func (g *Game) InjectKeyUp(k Key) {
	g.injectQueue = append(g.injectQueue, syntheticInput{kind: syntheticKeyUp, key: k})
}

// InjectKeyPress queues a press, frames-2 idle frames and a release, so the
// key is held for the whole sequence. Minimum frames is 2.
func (g *Game) InjectKeyPress(k Key, frames int) {
	if frames < 2 {
		frames = 2
	}
	g.InjectKeyDown(k)
	for i := 0; i < frames-2; i++ {
		g.injectQueue = append(g.injectQueue, syntheticInput{kind: syntheticIdle})
	}
	g.InjectKeyUp(k)
}

// InjectClick queues a left click at the given screen coordinates.
func (g *Game) InjectClick(x, y float64) {
	g.injectQueue = append(g.injectQueue, syntheticInput{kind: syntheticClick, screenX: x, screenY: y})
}

// InjectToggleAI queues an AI toggle for side.
func (g *Game) InjectToggleAI(side Side) {
	g.injectQueue = append(g.injectQueue, syntheticInput{kind: syntheticToggleAI, side: side})
}

// processInjectedInput pops one event from the inject queue and applies it.
// Returns true if an event was consumed (real input should be skipped).
func (g *Game) processInjectedInput() bool {
	if len(g.injectQueue) == 0 {
		return false
	}
	evt := g.injectQueue[0]
	copy(g.injectQueue, g.injectQueue[1:])
	g.injectQueue = g.injectQueue[:len(g.injectQueue)-1]

	switch evt.kind {
	case syntheticKeyDown:
		g.ctrl.KeyDown(evt.key)
	case syntheticKeyUp:
		g.ctrl.KeyUp(evt.key)
	case syntheticClick:
		g.clickAt(evt.screenX, evt.screenY)
	case syntheticToggleAI:
		g.ctrl.ToggleAI(evt.side)
	}
	return true
}
