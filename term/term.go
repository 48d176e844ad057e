// Package term renders a pong match in a terminal with tcell.
//
// Terminals report key presses but never releases. A held key shows up as a
// stream of auto-repeat presses, so the Frontend re-arms a release deadline
// on every press and delivers KeyUp once the stream stops for HoldTimeout.
package term

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/phanxgames/pong"
)

// DefaultHoldTimeout covers the usual keyboard auto-repeat delay.
const DefaultHoldTimeout = 550 * time.Millisecond

// hudRows is the number of rows above the playfield used for scores.
const hudRows = 1

// Frontend maps a Controller onto a tcell screen. All Controller access
// happens on the goroutine calling Step, HandleEvent or Run.
type Frontend struct {
	screen tcell.Screen
	ctrl   *pong.Controller
	cfg    pong.Config

	// HoldTimeout is how long after the last press a key counts as released.
	HoldTimeout time.Duration

	held map[pong.Key]time.Time

	cols, rows  int
	left, right int
}

// New creates a Frontend drawing ctrl onto an initialized screen.
func New(screen tcell.Screen, ctrl *pong.Controller) (*Frontend, error) {
	if screen == nil {
		return nil, fmt.Errorf("pong: term: nil screen")
	}
	if ctrl == nil {
		return nil, fmt.Errorf("pong: term: nil controller")
	}
	f := &Frontend{
		screen:      screen,
		ctrl:        ctrl,
		cfg:         ctrl.Config(),
		HoldTimeout: DefaultHoldTimeout,
		held:        make(map[pong.Key]time.Time),
	}
	f.cols, f.rows = screen.Size()
	return f, nil
}

// keyFor maps a tcell key event to a logical key.
func keyFor(ev *tcell.EventKey) pong.Key {
	switch ev.Key() {
	case tcell.KeyUp:
		return pong.KeyRightUp
	case tcell.KeyDown:
		return pong.KeyRightDown
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'W':
			return pong.KeyLeftUp
		case 's', 'S':
			return pong.KeyLeftDown
		}
	}
	return pong.KeyNone
}

// HandleEvent applies one terminal event at time now. It reports true when
// the event asks to quit.
func (f *Frontend) HandleEvent(ev tcell.Event, now time.Time) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return true
		}
		if ev.Key() == tcell.KeyRune {
			switch ev.Rune() {
			case 'q', 'Q':
				return true
			case '1':
				f.toggleAI(pong.SideLeft)
				return false
			case '2':
				f.toggleAI(pong.SideRight)
				return false
			}
		}
		k := keyFor(ev)
		if k == pong.KeyNone {
			return false
		}
		f.press(k, now)
	case *tcell.EventResize:
		f.cols, f.rows = f.screen.Size()
		f.screen.Sync()
	}
	return false
}

// press delivers KeyDown for k, releasing any other key held for the same
// paddle first so the newest direction wins.
func (f *Frontend) press(k pong.Key, now time.Time) {
	for other := range f.held {
		if other != k && samePaddle(other, k) {
			delete(f.held, other)
		}
	}
	f.held[k] = now.Add(f.HoldTimeout)
	f.ctrl.KeyDown(k)
}

func (f *Frontend) toggleAI(side pong.Side) {
	for k := range f.held {
		if sideOf(k) == side {
			delete(f.held, k)
		}
	}
	f.ctrl.ToggleAI(side)
}

// releaseExpired delivers KeyUp for every key whose hold deadline passed.
func (f *Frontend) releaseExpired(now time.Time) {
	for k, deadline := range f.held {
		if now.Before(deadline) {
			continue
		}
		delete(f.held, k)
		f.ctrl.KeyUp(k)
	}
}

// Held reports whether k is currently treated as held down.
func (f *Frontend) Held(k pong.Key) bool {
	_, ok := f.held[k]
	return ok
}

// Step releases expired keys, advances the match one tick and redraws.
func (f *Frontend) Step(now time.Time) {
	f.releaseExpired(now)
	f.ctrl.Tick()
	f.Draw()
}

// Draw renders the current match state and shows it.
func (f *Frontend) Draw() {
	f.screen.Clear()
	f.ctrl.Render(f)
	f.drawHUD()
	f.screen.Show()
}

// Run polls terminal events on a separate goroutine and forwards them to
// the loop, which owns the Controller and ticks it at the Config's TPS.
// It returns when ctx is done or a quit key is pressed.
func (f *Frontend) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 64)
	quit := make(chan struct{})
	defer close(quit)

	go func() {
		for {
			ev := f.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()

	ticker := time.NewTicker(f.cfg.TickInterval())
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			if f.HandleEvent(ev, time.Now()) {
				return nil
			}
		case now := <-ticker.C:
			f.Step(now)
		}
	}
}

// cell maps a playfield point to a screen cell below the HUD.
func (f *Frontend) cell(x, y float64) (int, int) {
	fieldRows := f.rows - hudRows
	if f.cols <= 0 || fieldRows <= 0 {
		return -1, -1
	}
	cx := int(x * float64(f.cols) / f.cfg.Width)
	cy := int(y*float64(fieldRows)/f.cfg.Height) + hudRows
	return min(max(cx, 0), f.cols-1), min(max(cy, hudRows), f.rows-1)
}

func (f *Frontend) fill(r pong.Rect, c pong.Color, ch rune) {
	x1, y1 := f.cell(r.X1, r.Y1)
	x2, y2 := f.cell(r.X2, r.Y2)
	if x1 < 0 {
		return
	}
	style := tcell.StyleDefault.Foreground(tcellColor(c))
	for y := y1; y <= y2; y++ {
		for x := x1; x <= x2; x++ {
			f.screen.SetContent(x, y, ch, nil, style)
		}
	}
}

// FillRect implements pong.Canvas.
func (f *Frontend) FillRect(r pong.Rect, c pong.Color) {
	f.fill(r, c, '█')
}

// FillOval implements pong.Canvas. The ball covers few cells, so it is drawn
// as a single glyph at its center.
func (f *Frontend) FillOval(r pong.Rect, c pong.Color) {
	m := r.Mid()
	x, y := f.cell(m.X, m.Y)
	if x < 0 {
		return
	}
	f.screen.SetContent(x, y, '●', nil, tcell.StyleDefault.Foreground(tcellColor(c)))
}

// SetScores implements pong.Canvas.
func (f *Frontend) SetScores(left, right int) {
	f.left, f.right = left, right
}

func (f *Frontend) drawHUD() {
	style := tcell.StyleDefault.Foreground(tcellColor(f.cfg.ScoreColor)).Bold(true)
	mid := f.cols / 2

	l := strconv.Itoa(f.left)
	f.text(mid-2-len(l), 0, l, style)
	f.text(mid+2, 0, strconv.Itoa(f.right), style)

	f.text(0, 0, aiLabel("P1", f.ctrl.AI(pong.SideLeft)), tcell.StyleDefault)
	r := aiLabel("P2", f.ctrl.AI(pong.SideRight))
	f.text(f.cols-len(r), 0, r, tcell.StyleDefault)

	if f.ctrl.State() == pong.StatePausedForRestart {
		msg := "get ready"
		_, y := f.cell(0, f.cfg.Height/4)
		f.text(mid-len(msg)/2, y, msg, tcell.StyleDefault.Dim(true))
	}
}

func (f *Frontend) text(x, y int, s string, style tcell.Style) {
	for i, r := range s {
		f.screen.SetContent(x+i, y, r, nil, style)
	}
}

func aiLabel(player string, on bool) string {
	if on {
		return "[x] " + player + " AI"
	}
	return "[ ] " + player + " AI"
}

func tcellColor(c pong.Color) tcell.Color {
	rgba := c.RGBA()
	return tcell.NewRGBColor(int32(rgba.R), int32(rgba.G), int32(rgba.B))
}

func sideOf(k pong.Key) pong.Side {
	if k == pong.KeyRightUp || k == pong.KeyRightDown {
		return pong.SideRight
	}
	return pong.SideLeft
}

func samePaddle(a, b pong.Key) bool {
	return sideOf(a) == sideOf(b)
}
