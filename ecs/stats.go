package ecs

import (
	"github.com/phanxgames/pong"

	"github.com/yohamta/donburi"
)

// MatchStats accumulates per-match counters from match events.
type MatchStats struct {
	PaddleHits  [2]int
	WallBounces int
	Points      [2]int
	// LongestRally is the most paddle hits between two scores.
	LongestRally int
	TopSpeed     float64

	rally int
}

// MatchStatsComponent stores MatchStats on an entity.
var MatchStatsComponent = donburi.NewComponentType[MatchStats]()

// Apply folds one event into the counters.
func (s *MatchStats) Apply(e pong.MatchEvent) {
	switch e.Type {
	case pong.EventPaddleHit:
		s.PaddleHits[e.Side&1]++
		s.rally++
		s.LongestRally = max(s.LongestRally, s.rally)
		s.TopSpeed = max(s.TopSpeed, e.BallSpeed)
	case pong.EventWallBounce:
		s.WallBounces++
	case pong.EventScore:
		s.Points[e.Side&1]++
		s.rally = 0
	}
}

// TrackMatchStats creates an entity holding MatchStats and subscribes it to
// MatchEventType. It returns the entity so callers can read the component.
func TrackMatchStats(world donburi.World) donburi.Entity {
	entity := world.Create(MatchStatsComponent)
	MatchEventType.Subscribe(world, func(w donburi.World, e pong.MatchEvent) {
		entry := w.Entry(entity)
		if !entry.Valid() {
			return
		}
		MatchStatsComponent.Get(entry).Apply(e)
	})
	return entity
}
