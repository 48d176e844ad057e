package pong

// Canvas is the render sink a presentation layer hands to Controller.Render.
// Coordinates are playfield coordinates; mapping them to pixels or cells is
// the canvas's job.
type Canvas interface {
	FillRect(r Rect, c Color)
	FillOval(r Rect, c Color)
	SetScores(left, right int)
}

// Snapshot is a copy of everything a presentation layer may want to show
// after a tick.
type Snapshot struct {
	Ball      Rect
	BallSpeed float64
	BallAngle float64

	Left, Right     Rect
	LeftAI, RightAI bool

	LeftScore, RightScore int

	State State
	Tick  uint64
}

// Snapshot returns the current render state.
func (c *Controller) Snapshot() Snapshot {
	left, right := c.paddles[SideLeft], c.paddles[SideRight]
	return Snapshot{
		Ball:       c.ball.Rect,
		BallSpeed:  c.ball.Speed,
		BallAngle:  c.ball.Angle,
		Left:       left.Rect,
		Right:      right.Rect,
		LeftAI:     left.AI,
		RightAI:    right.AI,
		LeftScore:  c.scores[SideLeft],
		RightScore: c.scores[SideRight],
		State:      c.state,
		Tick:       c.ticks,
	}
}

// Render draws the ball and both paddles onto canvas and pushes the scores.
// It runs in every state, including while paused for a restart.
func (c *Controller) Render(canvas Canvas) {
	canvas.FillOval(c.ball.Rect, c.cfg.BallColor)
	canvas.FillRect(c.paddles[SideLeft].Rect, c.cfg.LeftColor)
	canvas.FillRect(c.paddles[SideRight].Rect, c.cfg.RightColor)
	canvas.SetScores(c.scores[SideLeft], c.scores[SideRight])
}
