package pong

import (
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// imageCanvas draws playfield coordinates onto an Ebitengine image shifted
// by origin. Scores pushed by the Controller are kept for the HUD pass.
type imageCanvas struct {
	dst    *ebiten.Image
	origin Vec2

	left, right int
}

// FillRect implements Canvas.
func (c *imageCanvas) FillRect(r Rect, col Color) {
	vector.FillRect(c.dst,
		float32(r.X1+c.origin.X), float32(r.Y1+c.origin.Y),
		float32(r.Width()), float32(r.Height()),
		col.RGBA(), false)
}

// FillOval implements Canvas. Every oval in the game is a circle, so the
// circle inscribed in r is drawn.
func (c *imageCanvas) FillOval(r Rect, col Color) {
	m := r.Mid()
	radius := min(r.Width(), r.Height()) / 2
	vector.FillCircle(c.dst,
		float32(m.X+c.origin.X), float32(m.Y+c.origin.Y),
		float32(radius), col.RGBA(), true)
}

// SetScores implements Canvas.
func (c *imageCanvas) SetScores(left, right int) {
	c.left, c.right = left, right
}

// drawScores renders both scores in the bar above the playfield, left
// score ending and right score starting a small gap from the center line.
func (g *Game) drawScores(dst *ebiten.Image, left, right int) {
	mid := g.cfg.Width / 2
	y := float64(hudHeight) / 2

	labels := [2]label{
		{content: strconv.Itoa(left), x: mid - scoreGap, y: y, align: TextAlignRight, scale: 1, color: g.cfg.ScoreColor},
		{content: strconv.Itoa(right), x: mid + scoreGap, y: y, align: TextAlignLeft, scale: 1, color: g.cfg.ScoreColor},
	}
	for side, p := range g.pulses {
		if p == nil {
			continue
		}
		labels[side].scale = p.Scale
		labels[side].color = p.Tint
	}
	for _, l := range labels {
		drawLabel(dst, g.font, l)
	}
}

// drawCheckboxes renders the two AI toggles. Each label is shrunk to fit
// the space right of its box.
func (g *Game) drawCheckboxes(dst *ebiten.Image) {
	const (
		box = 14
		pad = 4
	)
	for _, side := range [2]Side{SideLeft, SideRight} {
		r := g.checkboxRect(side)
		bx := float32(r.X1 + pad)
		by := float32(r.Y1 + (checkboxHeight-box)/2)
		col := g.cfg.ScoreColor.RGBA()

		vector.StrokeRect(dst, bx, by, box, box, 1, col, false)
		if g.ctrl.AI(side) {
			vector.FillRect(dst, bx+3, by+3, box-6, box-6, col, false)
		}

		name := checkboxLabel(side)
		x := r.X1 + pad + box + pad
		drawLabel(dst, g.labelFont, label{
			content: name,
			x:       x,
			y:       r.Mid().Y,
			align:   TextAlignLeft,
			scale:   g.labelFont.fitScale(name, r.X2-x),
			color:   g.cfg.ScoreColor,
		})
	}
}

func checkboxLabel(side Side) string {
	if side == SideRight {
		return "Player 2 AI"
	}
	return "Player 1 AI"
}

// drawBanner shows "get ready" over the playfield while a restart is
// pending.
func (g *Game) drawBanner(dst *ebiten.Image) {
	if g.ctrl.State() != StatePausedForRestart {
		return
	}
	drawLabel(dst, g.font, label{
		content: "get ready",
		x:       g.cfg.Width / 2,
		y:       hudHeight + g.cfg.Height/4,
		align:   TextAlignCenter,
		scale:   float64(bannerSize) / scoreFontSize,
		color:   g.cfg.ScoreColor,
	})
}
