package pong

import (
	"math"
	"testing"
)

const eps = 1e-9

func TestBallUpdateMovesAlongAngle(t *testing.T) {
	b := NewBall(320, 240, 20, 5, 0)
	b.Update(480)
	if m := b.Mid(); math.Abs(m.X-325) > eps || math.Abs(m.Y-240) > eps {
		t.Errorf("after one tick at angle 0 mid = %+v, want (325,240)", m)
	}

	b = NewBall(320, 240, 20, 5, math.Pi/2)
	b.Update(480)
	if m := b.Mid(); math.Abs(m.X-320) > eps || math.Abs(m.Y-245) > eps {
		t.Errorf("after one tick at angle pi/2 mid = %+v, want (320,245)", m)
	}
}

func TestBallBounceTop(t *testing.T) {
	angle := degToRad(250) // up and to the left
	b := NewBall(100, 12, 20, 5, angle)
	bounced := b.Update(480)

	if !bounced {
		t.Fatal("expected a wall bounce")
	}
	if b.Y1 != 0 {
		t.Errorf("Y1 = %v, want 0", b.Y1)
	}
	if math.Abs(b.Angle-(2*math.Pi-angle)) > eps {
		t.Errorf("Angle = %v, want %v", b.Angle, 2*math.Pi-angle)
	}
	if b.Height() != 20 || b.Width() != 20 {
		t.Errorf("size changed: %vx%v", b.Width(), b.Height())
	}
}

func TestBallBounceBottom(t *testing.T) {
	angle := degToRad(80) // down
	b := NewBall(100, 468, 20, 5, angle)
	if !b.Update(480) {
		t.Fatal("expected a wall bounce")
	}
	if b.Y2 != 480 {
		t.Errorf("Y2 = %v, want 480", b.Y2)
	}
	if math.Abs(b.Angle-(2*math.Pi-angle)) > eps {
		t.Errorf("Angle = %v, want %v", b.Angle, 2*math.Pi-angle)
	}
	// The reflected angle now points up.
	if v := b.Velocity(); v.Y >= 0 {
		t.Errorf("velocity after bottom bounce = %+v, want upward", v)
	}
}

func TestBallDoesNotBounceOffSides(t *testing.T) {
	b := NewBall(5, 240, 20, 5, math.Pi)
	if b.Update(480) {
		t.Error("side walls must not bounce")
	}
	if b.X1 >= 0 {
		t.Errorf("X1 = %v, expected the ball to cross x=0", b.X1)
	}
	if b.Angle != math.Pi {
		t.Errorf("Angle changed to %v", b.Angle)
	}
}

func TestBallHitPaddleLeft(t *testing.T) {
	p := NewPaddle(40, 240, 16, 80, 5)       // spans x 32..48
	b := NewBall(50, 250, 20, 5, math.Pi) // spans x 40..60, overlapping by 8

	b.HitPaddle(p, SideLeft, 20, 0.1)

	if b.X1 != p.X2 {
		t.Errorf("ball X1 = %v, want pushed to paddle face %v", b.X1, p.X2)
	}
	if b.Overlaps(p.Rect) {
		t.Error("ball still overlaps the paddle")
	}
	pm, bm := p.Mid(), b.Mid()
	want := math.Atan2(bm.Y-pm.Y, bm.X-pm.X)
	if math.Abs(b.Angle-want) > eps {
		t.Errorf("Angle = %v, want %v (from paddle center to ball center)", b.Angle, want)
	}
	if v := b.Velocity(); v.X <= 0 {
		t.Errorf("velocity after left paddle hit = %+v, want rightward", v)
	}
	if math.Abs(b.Speed-5.1) > eps {
		t.Errorf("Speed = %v, want 5.1", b.Speed)
	}
}

func TestBallHitPaddleRight(t *testing.T) {
	p := NewPaddle(600, 240, 16, 80, 5)  // spans x 592..608
	b := NewBall(585, 220, 20, 5, 0)     // spans x 575..595

	b.HitPaddle(p, SideRight, 20, 0.1)

	if b.X2 != p.X1 {
		t.Errorf("ball X2 = %v, want pushed to paddle face %v", b.X2, p.X1)
	}
	if v := b.Velocity(); v.X >= 0 || v.Y >= 0 {
		t.Errorf("velocity after right paddle hit above center = %+v, want left and up", v)
	}
}

func TestBallSpeedCapped(t *testing.T) {
	p := NewPaddle(40, 240, 16, 80, 5)
	b := NewBall(50, 240, 20, 19.95, math.Pi)
	b.HitPaddle(p, SideLeft, 20, 0.1)
	if b.Speed != 20 {
		t.Errorf("Speed = %v, want capped at 20", b.Speed)
	}
	b.HitPaddle(p, SideLeft, 20, 0.1)
	if b.Speed != 20 {
		t.Errorf("Speed = %v, want unchanged at cap", b.Speed)
	}
}
