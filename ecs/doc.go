// Package ecs bridges pong match events into a Donburi ECS world.
//
// Attach the store to a Controller (or a Game, which forwards every event it
// receives) and subscribe to MatchEventType in your systems:
//
//	world := donburi.NewWorld()
//	game.SetEventStore(ecs.NewDonburiStore(world))
//	ecs.MatchEventType.Subscribe(world, func(w donburi.World, e pong.MatchEvent) {
//		// react to scores, paddle hits, restarts ...
//	})
//
// Events are queued and delivered when ProcessEvents runs.
package ecs
