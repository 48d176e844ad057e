package pong

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// ErrInvalidConfig is wrapped by every error returned from Config.Validate.
var ErrInvalidConfig = errors.New("pong: invalid config")

// Config holds every tunable value of a match. It is passed by value to
// NewController and is never read from process-wide state.
type Config struct {
	// Playfield size.
	Width, Height float64

	BallDiameter float64

	PaddleWidth  float64
	PaddleHeight float64
	// PaddleOffset is the distance from the left/right edge to a paddle's center.
	PaddleOffset float64
	PaddleSpeed  float64

	BallSpeed     float64 // base speed, restored on every restart
	BallMaxSpeed  float64 // paddle hits stop accelerating at this speed
	BallSpeedStep float64 // added on each paddle hit below the cap

	RestartDelay time.Duration
	PointValue   int

	// TPS is the tick rate of the presentation layer's clock.
	TPS int

	LeftAI, RightAI bool

	// Seed for launch angles. Zero seeds from the current time.
	Seed uint64

	Background Color
	BallColor  Color
	LeftColor  Color
	RightColor Color
	ScoreColor Color
}

// DefaultConfig returns the classic 640x480 setup with both paddles under AI
// control.
func DefaultConfig() Config {
	return Config{
		Width:         640,
		Height:        480,
		BallDiameter:  20,
		PaddleWidth:   16,
		PaddleHeight:  80,
		PaddleOffset:  40,
		PaddleSpeed:   5,
		BallSpeed:     5,
		BallMaxSpeed:  20,
		BallSpeedStep: 0.1,
		RestartDelay:  3000 * time.Millisecond,
		PointValue:    10,
		TPS:           60,
		LeftAI:        true,
		RightAI:       true,
		Background:    ColorHex(0x222222),
		BallColor:     ColorHex(0xdddddd),
		LeftColor:     ColorHex(0x00ff00),
		RightColor:    ColorHex(0x0000ff),
		ScoreColor:    ColorHex(0x444444),
	}
}

// TickInterval returns the duration of one tick at the configured TPS.
func (c Config) TickInterval() time.Duration {
	if c.TPS <= 0 {
		return 0
	}
	return time.Second / time.Duration(c.TPS)
}

// Validate reports the first problem found in c. Only well-formed positive
// constants are accepted, so the simulation never produces NaN or infinite
// velocities.
func (c Config) Validate() error {
	switch {
	case !finite(c.Width, c.Height, c.BallDiameter, c.PaddleWidth, c.PaddleHeight,
		c.PaddleOffset, c.PaddleSpeed, c.BallSpeed, c.BallMaxSpeed, c.BallSpeedStep):
		return fmt.Errorf("%w: dimensions and speeds must be finite", ErrInvalidConfig)
	case !(c.Width > 0) || !(c.Height > 0):
		return fmt.Errorf("%w: playfield %vx%v must be positive", ErrInvalidConfig, c.Width, c.Height)
	case !(c.BallDiameter > 0):
		return fmt.Errorf("%w: ball diameter %v must be positive", ErrInvalidConfig, c.BallDiameter)
	case c.BallDiameter >= c.Width || c.BallDiameter >= c.Height:
		return fmt.Errorf("%w: ball diameter %v does not fit the playfield", ErrInvalidConfig, c.BallDiameter)
	case !(c.PaddleWidth > 0) || !(c.PaddleHeight > 0):
		return fmt.Errorf("%w: paddle %vx%v must be positive", ErrInvalidConfig, c.PaddleWidth, c.PaddleHeight)
	case c.PaddleHeight > c.Height:
		return fmt.Errorf("%w: paddle height %v exceeds playfield height %v", ErrInvalidConfig, c.PaddleHeight, c.Height)
	case c.PaddleOffset < 0 || c.PaddleOffset*2 >= c.Width:
		return fmt.Errorf("%w: paddle offset %v out of range", ErrInvalidConfig, c.PaddleOffset)
	case !(c.PaddleSpeed > 0):
		return fmt.Errorf("%w: paddle speed %v must be positive", ErrInvalidConfig, c.PaddleSpeed)
	case !(c.BallSpeed > 0):
		return fmt.Errorf("%w: ball speed %v must be positive", ErrInvalidConfig, c.BallSpeed)
	case !(c.BallMaxSpeed >= c.BallSpeed):
		return fmt.Errorf("%w: ball max speed %v below base speed %v", ErrInvalidConfig, c.BallMaxSpeed, c.BallSpeed)
	case !(c.BallSpeedStep >= 0):
		return fmt.Errorf("%w: ball speed step %v must not be negative", ErrInvalidConfig, c.BallSpeedStep)
	case c.RestartDelay < 0:
		return fmt.Errorf("%w: restart delay %v must not be negative", ErrInvalidConfig, c.RestartDelay)
	case c.PointValue < 0:
		return fmt.Errorf("%w: point value %d must not be negative", ErrInvalidConfig, c.PointValue)
	case c.TPS <= 0:
		return fmt.Errorf("%w: tps %d must be positive", ErrInvalidConfig, c.TPS)
	}
	return nil
}

func finite(vals ...float64) bool {
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
