package pong

import (
	"errors"
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

const (
	hudHeight     = 50
	scoreFontSize = 26
	scoreGap      = 10 // horizontal gap between a score and the center line
	labelFontSize = 12
	bannerSize    = 20

	checkboxY      = 10
	checkboxWidth  = 100
	checkboxHeight = 25
)

// Game is the Ebitengine presentation adapter. It implements ebiten.Game:
// Update delivers input and drives one Controller tick, Draw renders the
// playfield, the score bar and the AI checkboxes.
type Game struct {
	ctrl  *Controller
	cfg   Config
	store EventStore
	debug bool
	stats debugStats

	showFPS bool
	quit    bool

	font      *TTFFont
	labelFont *TTFFont
	pulses    [2]*ScorePulse

	// ScreenshotDir is where Screenshot writes PNG files.
	ScreenshotDir   string
	screenshotQueue []string

	keys        keyEdges
	injectQueue []syntheticInput
	testRunner  *TestRunner
	exitOnDone  bool
}

// NewGame creates a Controller for cfg and wraps it in a Game.
func NewGame(cfg Config) (*Game, error) {
	ctrl, err := NewController(cfg)
	if err != nil {
		return nil, err
	}
	font, err := LoadTTFFont(gobold.TTF, scoreFontSize)
	if err != nil {
		return nil, err
	}
	labelFont, err := LoadTTFFont(goregular.TTF, labelFontSize)
	if err != nil {
		return nil, err
	}
	g := &Game{
		ctrl:          ctrl,
		cfg:           cfg,
		font:          font,
		labelFont:     labelFont,
		keys:          liveKeyEdges,
		ScreenshotDir: "screenshots",
	}
	ctrl.SetEventStore(g)
	return g, nil
}

// Controller returns the simulation driven by g.
func (g *Game) Controller() *Controller {
	return g.ctrl
}

// SetEventStore sets an optional receiver for match events. The Game keeps
// consuming events itself for score pulses and forwards each one.
func (g *Game) SetEventStore(store EventStore) {
	g.store = store
}

// SetDebugMode enables or disables debug output: every match event and
// per-frame timing stats are printed to stderr.
func (g *Game) SetDebugMode(enabled bool) {
	g.debug = enabled
	g.ctrl.SetDebugMode(enabled)
}

// EmitEvent implements EventStore for the Controller.
func (g *Game) EmitEvent(ev MatchEvent) {
	if ev.Type == EventScore {
		g.pulses[ev.Side&1] = NewScorePulse(g.cfg.ScoreColor)
	}
	if g.store != nil {
		g.store.EmitEvent(ev)
	}
}

// Update processes input and advances the match by one tick.
func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}

	var t0 time.Time
	if g.debug {
		t0 = time.Now()
	}

	if g.testRunner != nil {
		g.testRunner.step(g)
		if g.exitOnDone && g.testRunner.Done() && len(g.screenshotQueue) == 0 {
			return ebiten.Termination
		}
	}
	g.processInput()

	if g.debug {
		g.stats.inputTime = time.Since(t0)
		t0 = time.Now()
	}

	g.ctrl.Tick()

	dt := float32(1.0 / float64(g.cfg.TPS))
	for i, p := range g.pulses {
		if p == nil {
			continue
		}
		p.Update(dt)
		if p.Done() {
			g.pulses[i] = nil
		}
	}

	if g.debug {
		g.stats.tickTime = time.Since(t0)
		g.stats.tick = g.ctrl.Ticks()
		g.stats.state = g.ctrl.State()
	}
	return nil
}

// Draw renders the current match state. It runs every frame regardless of
// the Controller's state.
func (g *Game) Draw(screen *ebiten.Image) {
	var t0 time.Time
	if g.debug {
		t0 = time.Now()
	}

	screen.Fill(g.cfg.Background.RGBA())

	canvas := &imageCanvas{dst: screen, origin: Vec2{Y: hudHeight}}
	g.ctrl.Render(canvas)
	g.drawScores(screen, canvas.left, canvas.right)
	g.drawCheckboxes(screen)
	g.drawBanner(screen)

	if g.showFPS {
		drawFPS(screen)
	}

	if g.debug {
		g.stats.renderTime = time.Since(t0)
		debugLog(g.stats)
	}

	g.flushScreenshots(screen)
}

// Layout returns the fixed logical screen size: the playfield plus the
// score bar above it.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(g.cfg.Width), int(g.cfg.Height) + hudHeight
}

// checkboxRect returns the screen rectangle of a side's AI checkbox.
func (g *Game) checkboxRect(side Side) Rect {
	x := 0.0
	if side == SideRight {
		x = g.cfg.Width - checkboxWidth
	}
	return Rect{X1: x, Y1: checkboxY, X2: x + checkboxWidth, Y2: checkboxY + checkboxHeight}
}

// RunConfig configures the window created by Run.
type RunConfig struct {
	Title string
	// Scale multiplies the window size. Zero means 1.
	Scale   float64
	ShowFPS bool
	Debug   bool
	// Script, when set, is attached as the Game's TestRunner.
	Script *TestRunner
	// ExitWhenDone terminates the game once Script has run to completion.
	ExitWhenDone bool
}

// Run opens a window and runs g until the window is closed or Escape is
// pressed. The tick rate is the Config's TPS.
func Run(g *Game, rc RunConfig) error {
	w, h := g.Layout(0, 0)
	scale := rc.Scale
	if scale <= 0 {
		scale = 1
	}
	title := rc.Title
	if title == "" {
		title = "Pong"
	}

	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(int(float64(w)*scale), int(float64(h)*scale))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	ebiten.SetTPS(g.cfg.TPS)

	g.showFPS = rc.ShowFPS
	if rc.Debug {
		g.SetDebugMode(true)
	}
	if rc.Script != nil {
		g.SetTestRunner(rc.Script)
		g.exitOnDone = rc.ExitWhenDone
	}

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("pong: run: %w", err)
	}
	return nil
}
