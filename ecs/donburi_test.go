package ecs

import (
	"testing"
	"time"

	"github.com/phanxgames/pong"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

func TestNewDonburiStore(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)
	if store == nil {
		t.Fatal("NewDonburiStore returned nil")
	}
}

func TestDonburiStore_EmitEvent(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)

	var received []pong.MatchEvent
	MatchEventType.Subscribe(world, func(w donburi.World, e pong.MatchEvent) {
		received = append(received, e)
	})

	store.EmitEvent(pong.MatchEvent{
		Type:       pong.EventScore,
		Side:       pong.SideRight,
		RightScore: 10,
	})
	store.EmitEvent(pong.MatchEvent{
		Type:      pong.EventPaddleHit,
		Side:      pong.SideLeft,
		BallSpeed: 5.1,
	})

	// Events are queued until processed.
	if len(received) != 0 {
		t.Fatalf("expected no events before processing, got %d", len(received))
	}
	MatchEventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}
	if e := received[0]; e.Type != pong.EventScore || e.Side != pong.SideRight || e.RightScore != 10 {
		t.Errorf("event 0: %+v", e)
	}
	if e := received[1]; e.Type != pong.EventPaddleHit || e.BallSpeed != 5.1 {
		t.Errorf("event 1: %+v", e)
	}
}

func TestDonburiStore_ImplementsEventStore(t *testing.T) {
	world := donburi.NewWorld()
	var store pong.EventStore = NewDonburiStore(world)
	_ = store // compile-time interface check
}

func TestDonburiStore_MultipleSubscribers(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)

	var count1, count2 int
	MatchEventType.Subscribe(world, func(w donburi.World, e pong.MatchEvent) {
		count1++
	})
	MatchEventType.Subscribe(world, func(w donburi.World, e pong.MatchEvent) {
		count2++
	})

	store.EmitEvent(pong.MatchEvent{Type: pong.EventWallBounce})
	events.ProcessAllEvents(world)

	if count1 != 1 || count2 != 1 {
		t.Errorf("expected both subscribers called once, got %d and %d", count1, count2)
	}
}

func TestMatchStatsApply(t *testing.T) {
	var s MatchStats
	s.Apply(pong.MatchEvent{Type: pong.EventPaddleHit, Side: pong.SideLeft, BallSpeed: 5.1})
	s.Apply(pong.MatchEvent{Type: pong.EventWallBounce})
	s.Apply(pong.MatchEvent{Type: pong.EventPaddleHit, Side: pong.SideRight, BallSpeed: 5.2})
	s.Apply(pong.MatchEvent{Type: pong.EventScore, Side: pong.SideRight})
	s.Apply(pong.MatchEvent{Type: pong.EventPaddleHit, Side: pong.SideLeft, BallSpeed: 5.1})

	if s.PaddleHits != [2]int{2, 1} {
		t.Errorf("PaddleHits = %v, want [2 1]", s.PaddleHits)
	}
	if s.WallBounces != 1 {
		t.Errorf("WallBounces = %d, want 1", s.WallBounces)
	}
	if s.Points != [2]int{0, 1} {
		t.Errorf("Points = %v, want [0 1]", s.Points)
	}
	if s.LongestRally != 2 {
		t.Errorf("LongestRally = %d, want 2", s.LongestRally)
	}
	if s.TopSpeed != 5.2 {
		t.Errorf("TopSpeed = %v, want 5.2", s.TopSpeed)
	}
}

// A full controller wired to the store: an unattended ball scores and the
// tracked entity sees the point.
func TestTrackMatchStats_FromController(t *testing.T) {
	cfg := pong.DefaultConfig()
	cfg.LeftAI, cfg.RightAI = false, false
	cfg.Seed = 7
	ctrl, err := pong.NewController(cfg)
	if err != nil {
		t.Fatal(err)
	}
	now := time.Unix(0, 0)
	ctrl.SetClock(func() time.Time { return now })

	world := donburi.NewWorld()
	ctrl.SetEventStore(NewDonburiStore(world))
	entity := TrackMatchStats(world)

	// Send the ball straight at the right edge, above the paddles' reach.
	ball := ctrl.Ball()
	ball.SetCenter(cfg.Width/2, 15)
	ball.Angle = 0

	for i := 0; i < 200 && ctrl.State() == pong.StateRunning; i++ {
		ctrl.Tick()
	}
	if ctrl.State() != pong.StatePausedForRestart {
		t.Fatal("expected a score within 200 ticks")
	}
	MatchEventType.ProcessEvents(world)

	stats := MatchStatsComponent.Get(world.Entry(entity))
	if stats.Points != [2]int{1, 0} {
		t.Errorf("Points = %v, want [1 0]", stats.Points)
	}
}
