package pong

import (
	"fmt"
	"io"
	"os"
	"time"
)

// debugOut is where debug lines go. Tests swap it for a buffer.
var debugOut io.Writer = os.Stderr

// debugStats holds per-frame timing metrics.
// Only populated when Game debug mode is on.
type debugStats struct {
	inputTime  time.Duration
	tickTime   time.Duration
	renderTime time.Duration
	tick       uint64
	state      State
}

// debugLog prints timing stats for one frame.
func debugLog(stats debugStats) {
	total := stats.inputTime + stats.tickTime + stats.renderTime
	_, _ = fmt.Fprintf(debugOut,
		"[pong] tick %d (%s) | input: %v | tick: %v | render: %v | total: %v\n",
		stats.tick, stats.state, stats.inputTime, stats.tickTime, stats.renderTime, total)
}

// debugLogEvent prints one match event.
func debugLogEvent(ev MatchEvent) {
	switch ev.Type {
	case EventScore:
		_, _ = fmt.Fprintf(debugOut, "[pong] tick %d: %s scored | %d - %d\n",
			ev.Tick, ev.Side, ev.LeftScore, ev.RightScore)
	case EventPaddleHit:
		_, _ = fmt.Fprintf(debugOut, "[pong] tick %d: %s paddle hit | speed %.1f | angle %.1f°\n",
			ev.Tick, ev.Side, ev.BallSpeed, radToDeg(ev.BallAngle))
	default:
		_, _ = fmt.Fprintf(debugOut, "[pong] tick %d: %s | ball (%.1f, %.1f)\n",
			ev.Tick, ev.Type, ev.BallPos.X, ev.BallPos.Y)
	}
}
