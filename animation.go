package pong

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const (
	pulseDuration = 0.6 // seconds
	pulseScale    = 1.8
)

// TweenGroup animates up to 4 float64 fields simultaneously. Create one via
// TweenValue or TweenColor and call Update(dt) each frame. Values are written
// straight into the target fields.
//
// There is no global animation manager; owners call Update themselves.
type TweenGroup struct {
	tweens [4]*gween.Tween
	count  int
	fields [4]*float64
	Done   bool
}

// Update advances all tweens by dt seconds and writes their values.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}

	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone
}

// TweenValue creates a TweenGroup that animates *field to the target value
// over the specified duration using the easing function.
func TweenValue(field *float64, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 1}
	g.tweens[0] = gween.New(float32(*field), float32(to), duration, fn)
	g.fields[0] = field
	return g
}

// TweenColor creates a TweenGroup that animates all four components of *c
// to the target color over the specified duration.
func TweenColor(c *Color, to Color, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 4}
	g.tweens[0] = gween.New(float32(c.R), float32(to.R), duration, fn)
	g.tweens[1] = gween.New(float32(c.G), float32(to.G), duration, fn)
	g.tweens[2] = gween.New(float32(c.B), float32(to.B), duration, fn)
	g.tweens[3] = gween.New(float32(c.A), float32(to.A), duration, fn)
	g.fields[0] = &c.R
	g.fields[1] = &c.G
	g.fields[2] = &c.B
	g.fields[3] = &c.A
	return g
}

// ScorePulse is the flash shown on a score label right after that player
// scores: the label jumps to a larger white rendering and eases back to its
// resting size and color. Purely cosmetic.
type ScorePulse struct {
	Scale float64
	Tint  Color

	scale *TweenGroup
	tint  *TweenGroup
}

// NewScorePulse starts a pulse that settles on the rest color.
func NewScorePulse(rest Color) *ScorePulse {
	p := &ScorePulse{
		Scale: pulseScale,
		Tint:  Color{R: 1, G: 1, B: 1, A: 1},
	}
	p.scale = TweenValue(&p.Scale, 1, pulseDuration, ease.OutBack)
	p.tint = TweenColor(&p.Tint, rest, pulseDuration, ease.InQuad)
	return p
}

// Update advances the pulse by dt seconds.
func (p *ScorePulse) Update(dt float32) {
	p.scale.Update(dt)
	p.tint.Update(dt)
}

// Done reports whether the pulse has settled.
func (p *ScorePulse) Done() bool {
	return p.scale.Done && p.tint.Done
}
