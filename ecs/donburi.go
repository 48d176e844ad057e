package ecs

import (
	"github.com/phanxgames/pong"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// MatchEventType is the Donburi event type for pong match events.
var MatchEventType = events.NewEventType[pong.MatchEvent]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EventStore backed by a Donburi world.
// Match events are published to MatchEventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiStore(world donburi.World) pong.EventStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event pong.MatchEvent) {
	MatchEventType.Publish(s.world, event)
}
