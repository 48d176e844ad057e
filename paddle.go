package pong

// Paddle is a vertically moving bat. DY is one of -Speed, 0 or +Speed.
// When AI is set the Controller drives it from the ball position and
// key input for its side is ignored.
type Paddle struct {
	Rect
	Speed float64
	DY    float64
	AI    bool

	home Vec2
}

// NewPaddle creates a paddle centered on (cx, cy). That center is also the
// position restored by Reset.
func NewPaddle(cx, cy, width, height, speed float64) *Paddle {
	return &Paddle{
		Rect:  RectAt(cx, cy, width, height),
		Speed: speed,
		home:  Vec2{X: cx, Y: cy},
	}
}

// StartMoving sets the vertical velocity to Speed in the given direction.
func (p *Paddle) StartMoving(dir Direction) {
	p.DY = p.Speed * float64(dir)
}

// StopMoving zeroes the vertical velocity.
func (p *Paddle) StopMoving() {
	p.DY = 0
}

// Moving reports whether the paddle has a non-zero velocity.
func (p *Paddle) Moving() bool {
	return p.DY != 0
}

// Update moves the paddle by DY and clamps it inside [0, height].
func (p *Paddle) Update(height float64) {
	p.Move(0, p.DY)
	if p.Y1 < 0 {
		p.Move(0, -p.Y1)
	} else if p.Y2 > height {
		p.Move(0, height-p.Y2)
	}
}

// Home returns the paddle's initial center.
func (p *Paddle) Home() Vec2 {
	return p.home
}

// Reset moves the paddle back to its initial center. Velocity is left alone:
// a held key keeps driving the paddle after a restart.
func (p *Paddle) Reset() {
	p.SetCenter(p.home.X, p.home.Y)
}
