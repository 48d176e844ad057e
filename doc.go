// Package pong is a two-paddle ball game for [Ebitengine].
//
// The simulation core is [Controller]: it owns the [Ball], both [Paddle]s
// and the scores, and advances the match one [Controller.Tick] at a time.
// It knows nothing about windows, fonts or widgets. A presentation layer
// drives it through four narrow surfaces:
//
//   - a tick source calling Tick at a fixed rate (Config.TPS, 60 by default)
//   - key events via [Controller.KeyDown] and [Controller.KeyUp]
//   - AI toggles via [Controller.SetAI] and [Controller.ToggleAI]
//   - a [Canvas] passed to [Controller.Render] after every tick
//
// # Quick start
//
// The simplest way to play is [Run], which opens a window and drives the
// Controller from Ebitengine's game loop:
//
//	game, err := pong.NewGame(pong.DefaultConfig())
//	if err != nil {
//		log.Fatal(err)
//	}
//	if err := pong.Run(game, pong.RunConfig{Title: "Pong"}); err != nil {
//		log.Fatal(err)
//	}
//
// For a terminal instead of a window, see package term.
//
// # Match rules
//
// The ball travels at Speed along Angle and bounces off the top and bottom
// walls. A paddle hit relaunches the ball along the line from the paddle's
// center to the ball's center and adds Config.BallSpeedStep to its speed,
// up to Config.BallMaxSpeed. When the ball crosses the left or right edge
// the other player scores Config.PointValue points, the ball returns to the
// center at base speed, the paddles are reset and play pauses for
// Config.RestartDelay.
//
// The restart delay is an explicit deadline checked on every tick, so all
// state changes happen inside Tick on the caller's goroutine.
//
// # Events
//
// An optional [EventStore] receives a [MatchEvent] for every wall bounce,
// paddle hit, score, restart and resume. The ecs module bridges these into
// a [Donburi] world.
//
// [Ebitengine]: https://ebitengine.org
// [Donburi]: https://github.com/yohamta/donburi
package pong
