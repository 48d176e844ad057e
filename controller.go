package pong

import (
	"math/rand/v2"
	"time"
)

// State is the Controller's play state.
type State uint8

const (
	StateRunning          State = iota // simulation advances every tick
	StatePausedForRestart              // waiting out the restart delay after a score
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StatePausedForRestart:
		return "paused-for-restart"
	default:
		return "unknown"
	}
}

// Controller owns the ball, both paddles and the scores, and advances the
// match one tick at a time. It is not safe for concurrent use: ticks, key
// events and AI toggles must all arrive on the same goroutine.
type Controller struct {
	cfg     Config
	ball    *Ball
	paddles [2]*Paddle
	scores  [2]int

	state    State
	resumeAt time.Time
	ticks    uint64

	rng   *rand.Rand
	clock func() time.Time
	store EventStore
	debug bool
}

// NewController validates cfg and sets up a match: ball at the center with a
// random launch angle, paddles at their home positions, scores at zero and
// the state running.
func NewController(cfg Config) (*Controller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	c := &Controller{
		cfg:   cfg,
		rng:   rand.New(rand.NewPCG(seed, seed>>1|1)),
		clock: time.Now,
		state: StateRunning,
	}

	cx, cy := cfg.Width/2, cfg.Height/2
	c.ball = NewBall(cx, cy, cfg.BallDiameter, cfg.BallSpeed, c.launchAngle())
	c.paddles[SideLeft] = NewPaddle(cfg.PaddleOffset, cy, cfg.PaddleWidth, cfg.PaddleHeight, cfg.PaddleSpeed)
	c.paddles[SideRight] = NewPaddle(cfg.Width-cfg.PaddleOffset, cy, cfg.PaddleWidth, cfg.PaddleHeight, cfg.PaddleSpeed)
	c.paddles[SideLeft].AI = cfg.LeftAI
	c.paddles[SideRight].AI = cfg.RightAI

	return c, nil
}

// Config returns the configuration the Controller was built with.
func (c *Controller) Config() Config {
	return c.cfg
}

// SetClock replaces the time source used for the restart deadline.
// Defaults to time.Now.
func (c *Controller) SetClock(clock func() time.Time) {
	if clock == nil {
		clock = time.Now
	}
	c.clock = clock
}

// SetEventStore sets the optional receiver of match events. Pass nil to
// detach.
func (c *Controller) SetEventStore(store EventStore) {
	c.store = store
}

// SetDebugMode enables or disables printing every match event to stderr.
func (c *Controller) SetDebugMode(enabled bool) {
	c.debug = enabled
}

// Ball returns the match ball. Callers must not retain it across goroutines.
func (c *Controller) Ball() *Ball {
	return c.ball
}

// Paddle returns the paddle for the given side.
func (c *Controller) Paddle(side Side) *Paddle {
	return c.paddles[side&1]
}

// Scores returns the left (player 1) and right (player 2) scores.
func (c *Controller) Scores() (left, right int) {
	return c.scores[SideLeft], c.scores[SideRight]
}

// State returns the current play state.
func (c *Controller) State() State {
	return c.state
}

// Ticks returns the number of Tick calls so far.
func (c *Controller) Ticks() uint64 {
	return c.ticks
}

// ResumeAt returns the deadline at which a paused match resumes. It is the
// zero time while running.
func (c *Controller) ResumeAt() time.Time {
	if c.state != StatePausedForRestart {
		return time.Time{}
	}
	return c.resumeAt
}

// Tick advances the match by one step. While paused for a restart only the
// deadline is checked; once it has passed the match resumes and the same
// tick simulates.
func (c *Controller) Tick() {
	now := c.clock()
	c.ticks++

	if c.state == StatePausedForRestart {
		if now.Before(c.resumeAt) {
			return
		}
		c.state = StateRunning
		c.resumeAt = time.Time{}
		c.emit(EventResume, 0)
	}

	if c.ball.Update(c.cfg.Height) {
		c.emit(EventWallBounce, 0)
	}

	for _, p := range c.paddles {
		if p.AI {
			steer(p, c.ball.Rect)
		}
	}
	for _, p := range c.paddles {
		p.Update(c.cfg.Height)
	}

	c.checkForCollisions()
	c.checkBallOutOfBounds(now)
}

func (c *Controller) checkForCollisions() {
	for side, p := range c.paddles {
		if !c.ball.Overlaps(p.Rect) {
			continue
		}
		c.ball.HitPaddle(p, Side(side), c.cfg.BallMaxSpeed, c.cfg.BallSpeedStep)
		c.emit(EventPaddleHit, Side(side))
	}
}

func (c *Controller) checkBallOutOfBounds(now time.Time) {
	switch {
	case c.ball.X1 < 0:
		c.score(SideRight, now)
	case c.ball.X2 > c.cfg.Width:
		c.score(SideLeft, now)
	}
}

func (c *Controller) score(side Side, now time.Time) {
	c.scores[side] += c.cfg.PointValue
	c.emit(EventScore, side)
	c.restart(now)
}

// restart pauses play, recenters the ball at base speed with a fresh launch
// angle, sends both paddles home and arms the resume deadline.
func (c *Controller) restart(now time.Time) {
	c.state = StatePausedForRestart
	c.ball.SetCenter(c.cfg.Width/2, c.cfg.Height/2)
	c.ball.Speed = c.cfg.BallSpeed
	c.ball.Angle = c.launchAngle()
	for _, p := range c.paddles {
		p.Reset()
	}
	c.resumeAt = now.Add(c.cfg.RestartDelay)
	c.emit(EventRestart, 0)
}

// Reset starts a new match: scores return to zero and the restart sequence
// runs as if a point had just been scored.
func (c *Controller) Reset() {
	c.scores = [2]int{}
	c.restart(c.clock())
}

// launchAngle picks a direction inside a 90 degree cone centered on either
// 0 (towards the right player) or 180 degrees, both equally likely.
func (c *Controller) launchAngle() float64 {
	deg := c.rng.IntN(90) - 45 + 180*c.rng.IntN(2)
	return degToRad(float64(deg))
}

// KeyDown starts the paddle bound to k moving. Keys for an AI paddle and
// unmapped keys are ignored.
func (c *Controller) KeyDown(k Key) {
	side, dir, ok := k.binding()
	if !ok {
		return
	}
	if p := c.paddles[side]; !p.AI {
		p.StartMoving(dir)
	}
}

// KeyUp stops the paddle bound to k. Keys for an AI paddle and unmapped keys
// are ignored.
func (c *Controller) KeyUp(k Key) {
	side, _, ok := k.binding()
	if !ok {
		return
	}
	if p := c.paddles[side]; !p.AI {
		p.StopMoving()
	}
}

// SetAI switches AI control for a side on or off. The paddle always stops,
// so no velocity left over from the previous controller survives.
func (c *Controller) SetAI(side Side, enabled bool) {
	p := c.paddles[side&1]
	p.AI = enabled
	p.StopMoving()
}

// ToggleAI flips AI control for a side and stops the paddle.
func (c *Controller) ToggleAI(side Side) {
	c.SetAI(side, !c.paddles[side&1].AI)
}

// AI reports whether the paddle on side is under AI control.
func (c *Controller) AI(side Side) bool {
	return c.paddles[side&1].AI
}

func (c *Controller) emit(typ EventType, side Side) {
	if c.store == nil && !c.debug {
		return
	}
	ev := MatchEvent{
		Type:       typ,
		Side:       side,
		Tick:       c.ticks,
		LeftScore:  c.scores[SideLeft],
		RightScore: c.scores[SideRight],
		BallSpeed:  c.ball.Speed,
		BallAngle:  c.ball.Angle,
		BallPos:    c.ball.Mid(),
	}
	if c.debug {
		debugLogEvent(ev)
	}
	if c.store != nil {
		c.store.EmitEvent(ev)
	}
}
