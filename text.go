package pong

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// TextAlign controls horizontal alignment of a label around its anchor x.
type TextAlign uint8

const (
	TextAlignLeft   TextAlign = iota // text starts at the anchor
	TextAlignCenter                  // text is centered on the anchor
	TextAlignRight                   // text ends at the anchor
)

// TTFFont wraps Ebitengine's text/v2 for TrueType font rendering.
type TTFFont struct {
	face *text.GoTextFace
	lh   float64 // cached line height
}

// LoadTTFFont loads a TrueType font from raw TTF/OTF data at the given size.
func LoadTTFFont(ttfData []byte, size float64) (*TTFFont, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(ttfData))
	if err != nil {
		return nil, fmt.Errorf("pong: failed to parse TTF data: %w", err)
	}

	face := &text.GoTextFace{
		Source: source,
		Size:   size,
	}

	m := face.Metrics()
	lh := m.HAscent + m.HDescent + m.HLineGap

	return &TTFFont{face: face, lh: lh}, nil
}

// MeasureString returns the width and height of the rendered text.
func (f *TTFFont) MeasureString(s string) (width, height float64) {
	return text.Measure(s, f.face, f.lh)
}

// label is one line of text drawn into the HUD.
type label struct {
	content string
	x, y    float64 // anchor; y is the vertical center of the line
	align   TextAlign
	scale   float64
	color   Color
}

// fitScale returns the scale at which s fits into maxWidth, never above 1.
func (f *TTFFont) fitScale(s string, maxWidth float64) float64 {
	w, _ := f.MeasureString(s)
	if w <= maxWidth || w == 0 {
		return 1
	}
	return maxWidth / w
}

// drawLabel renders l with f. Scaling is applied around the anchor so a
// pulsing score grows in place.
func drawLabel(dst *ebiten.Image, f *TTFFont, l label) {
	if f == nil || l.content == "" {
		return
	}
	scale := l.scale
	if scale <= 0 {
		scale = 1
	}

	op := &text.DrawOptions{}
	op.LineSpacing = f.lh
	switch l.align {
	case TextAlignCenter:
		op.PrimaryAlign = text.AlignCenter
	case TextAlignRight:
		op.PrimaryAlign = text.AlignEnd
	default:
		op.PrimaryAlign = text.AlignStart
	}
	op.SecondaryAlign = text.AlignCenter
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(l.x, l.y)
	op.ColorScale.ScaleWithColor(l.color.RGBA())

	text.Draw(dst, l.content, f.face, op)
}
