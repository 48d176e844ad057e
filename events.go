package pong

// EventType identifies a kind of match event.
type EventType uint8

const (
	EventWallBounce EventType = iota // ball reflected off the top or bottom wall
	EventPaddleHit                   // ball struck a paddle and was relaunched
	EventScore                       // ball left the playfield; Side scored
	EventRestart                     // ball and paddles reset, play paused
	EventResume                      // restart delay elapsed, play resumed
)

func (t EventType) String() string {
	switch t {
	case EventWallBounce:
		return "wall-bounce"
	case EventPaddleHit:
		return "paddle-hit"
	case EventScore:
		return "score"
	case EventRestart:
		return "restart"
	case EventResume:
		return "resume"
	default:
		return "unknown"
	}
}

// MatchEvent describes something that happened during a Controller tick.
type MatchEvent struct {
	Type EventType
	// Side is the paddle hit for EventPaddleHit and the scoring player for
	// EventScore. Unused otherwise.
	Side Side
	Tick uint64

	LeftScore  int
	RightScore int

	BallSpeed float64
	BallAngle float64
	BallPos   Vec2
}

// EventStore receives match events. When set on a Controller, every event is
// forwarded synchronously from within Tick, on the caller's goroutine.
type EventStore interface {
	EmitEvent(event MatchEvent)
}

// EventStoreFunc adapts a plain function to EventStore.
type EventStoreFunc func(event MatchEvent)

// EmitEvent calls f(event).
func (f EventStoreFunc) EmitEvent(event MatchEvent) {
	f(event)
}
