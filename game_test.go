package pong

import (
	"math"
	"testing"
)

func newTestGame(t *testing.T) *Game {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Seed = 7
	cfg.LeftAI = false
	cfg.RightAI = false
	g, err := NewGame(cfg)
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	return g
}

func TestNewGame_InvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = -1
	if _, err := NewGame(cfg); err == nil {
		t.Error("expected error for invalid config")
	}
}

func TestGameLayout(t *testing.T) {
	g := newTestGame(t)
	w, h := g.Layout(1920, 1080)
	if w != 640 || h != 480+hudHeight {
		t.Errorf("Layout = %dx%d, want 640x%d", w, h, 480+hudHeight)
	}
}

func TestGameUpdateTicksController(t *testing.T) {
	g := newTestGame(t)
	for i := 0; i < 3; i++ {
		if err := g.Update(); err != nil {
			t.Fatalf("Update: %v", err)
		}
	}
	if g.Controller().Ticks() != 3 {
		t.Errorf("Ticks = %d, want 3", g.Controller().Ticks())
	}
}

func TestGameEmitEvent_ScoreStartsPulse(t *testing.T) {
	g := newTestGame(t)
	var forwarded []MatchEvent
	g.SetEventStore(EventStoreFunc(func(ev MatchEvent) { forwarded = append(forwarded, ev) }))

	b := g.Controller().Ball()
	b.SetCenter(12, 30)
	b.Angle = math.Pi
	g.Controller().Tick()

	if g.pulses[SideRight] == nil {
		t.Fatal("expected a score pulse for the right player")
	}
	if g.pulses[SideLeft] != nil {
		t.Error("left player did not score")
	}
	if len(forwarded) != 2 || forwarded[0].Type != EventScore || forwarded[1].Type != EventRestart {
		t.Errorf("forwarded = %+v, want score then restart", forwarded)
	}
}

func TestGameUpdate_PulseExpires(t *testing.T) {
	g := newTestGame(t)
	g.pulses[SideLeft] = NewScorePulse(g.cfg.ScoreColor)
	// 0.6s at 60 TPS is 36 frames.
	for i := 0; i < 40; i++ {
		if err := g.Update(); err != nil {
			t.Fatal(err)
		}
	}
	if g.pulses[SideLeft] != nil {
		t.Error("pulse should be cleared once settled")
	}
}

func TestCheckboxRect(t *testing.T) {
	g := newTestGame(t)
	left := g.checkboxRect(SideLeft)
	if left != (Rect{X1: 0, Y1: 10, X2: 100, Y2: 35}) {
		t.Errorf("left checkbox = %+v", left)
	}
	right := g.checkboxRect(SideRight)
	if right != (Rect{X1: 540, Y1: 10, X2: 640, Y2: 35}) {
		t.Errorf("right checkbox = %+v", right)
	}
}

func TestClickAt(t *testing.T) {
	g := newTestGame(t)
	g.clickAt(50, 20)
	if !g.Controller().AI(SideLeft) {
		t.Error("click inside left checkbox should enable left AI")
	}
	g.clickAt(600, 30)
	if !g.Controller().AI(SideRight) {
		t.Error("click inside right checkbox should enable right AI")
	}
	g.clickAt(320, 20)
	g.clickAt(50, 200)
	if !g.Controller().AI(SideLeft) || !g.Controller().AI(SideRight) {
		t.Error("clicks outside the checkboxes must not toggle")
	}
}

func TestGameQuit(t *testing.T) {
	g := newTestGame(t)
	g.quit = true
	if err := g.Update(); err == nil {
		t.Error("expected termination after quit")
	}
}
