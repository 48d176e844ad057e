package pong

import "math"

// Ball is the moving square-bounded oval. Its direction of travel is Angle
// (radians, Y down) and its per-tick displacement is Speed.
type Ball struct {
	Rect
	Speed float64
	Angle float64
}

// NewBall creates a ball of the given diameter centered on (cx, cy).
func NewBall(cx, cy, diameter, speed, angle float64) *Ball {
	return &Ball{
		Rect:  RectAt(cx, cy, diameter, diameter),
		Speed: speed,
		Angle: angle,
	}
}

// Velocity returns the displacement applied by the next Update.
func (b *Ball) Velocity() Vec2 {
	return Vec2{X: b.Speed * math.Cos(b.Angle), Y: b.Speed * math.Sin(b.Angle)}
}

// Update moves the ball one tick and bounces it off the top and bottom walls
// of a playfield of the given height. It reports whether a wall was hit.
// The left and right edges are not walls; crossing them is a scoring event
// handled by the Controller.
func (b *Ball) Update(height float64) bool {
	v := b.Velocity()
	b.Move(v.X, v.Y)
	return b.bounceOffWalls(height)
}

func (b *Ball) bounceOffWalls(height float64) bool {
	bounced := false
	if b.Y1 < 0 {
		b.Angle = 2*math.Pi - b.Angle
		b.Move(0, -b.Y1)
		bounced = true
	}
	if b.Y2 > height {
		b.Move(0, height-b.Y2)
		b.Angle = 2*math.Pi - b.Angle
		bounced = true
	}
	return bounced
}

// HitPaddle applies the paddle-hit response: the ball is pushed out of the
// paddle along the x-axis by the penetration depth, away from the paddle's
// side of the field, then relaunched along the line from the paddle's center
// to its own center. Speed grows by step, never past maxSpeed.
func (b *Ball) HitPaddle(p *Paddle, side Side, maxSpeed, step float64) {
	switch side {
	case SideLeft:
		b.Move(p.X2-b.X1, 0)
	case SideRight:
		b.Move(p.X1-b.X2, 0)
	}

	pm, bm := p.Mid(), b.Mid()
	b.Angle = angleBetween(pm, bm)

	if b.Speed < maxSpeed {
		b.Speed = math.Min(b.Speed+step, maxSpeed)
	}
}

// angleBetween returns the direction in radians from a to b.
func angleBetween(a, b Vec2) float64 {
	return math.Atan2(b.Y-a.Y, b.X-a.X)
}

// degToRad converts degrees to radians.
func degToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// radToDeg converts radians to degrees.
func radToDeg(rad float64) float64 {
	return rad * 180 / math.Pi
}
