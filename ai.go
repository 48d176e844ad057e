package pong

// steer applies the AI rule to p for a ball occupying ball. The two checks
// are independent and neither stops the paddle: when the ball is within the
// paddle's vertical span the paddle keeps its previous velocity and may
// drift past the ball before the opposite check turns it around.
func steer(p *Paddle, ball Rect) {
	if p.Y1 > ball.Y2 {
		p.StartMoving(Up)
	}
	if p.Y2 < ball.Y1 {
		p.StartMoving(Down)
	}
}
