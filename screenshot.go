package pong

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Screenshot queues a labeled screenshot to be captured at the end of the
// current frame's Draw call. The PNG lands in ScreenshotDir, named after the
// match tick, score and state so a script's shots sort and read as a
// timeline. Safe to call from Update or Draw.
func (g *Game) Screenshot(label string) {
	g.screenshotQueue = append(g.screenshotQueue, label)
}

// screenshotName builds the file name for label at the current match state,
// e.g. "20240101_120000_t000063_10-0_paused_after-score.png".
func (g *Game) screenshotName(at time.Time, label string) string {
	left, right := g.ctrl.Scores()
	state := "running"
	if g.ctrl.State() == StatePausedForRestart {
		state = "paused"
	}
	return fmt.Sprintf("%s_t%06d_%d-%d_%s_%s.png",
		at.Format("20060102_150405"), g.ctrl.Ticks(), left, right, state, sanitizeLabel(label))
}

// flushScreenshots reads the finished frame back once and writes it under
// every queued label. Failures are reported on debugOut and never stop the
// frame. Called at the end of Game.Draw.
func (g *Game) flushScreenshots(screen *ebiten.Image) {
	if len(g.screenshotQueue) == 0 {
		return
	}
	defer func() { g.screenshotQueue = g.screenshotQueue[:0] }()

	if err := os.MkdirAll(g.ScreenshotDir, 0o755); err != nil {
		_, _ = fmt.Fprintf(debugOut, "[pong] screenshot: mkdir %s: %v\n", g.ScreenshotDir, err)
		return
	}

	img := captureFrame(screen)
	now := time.Now()
	for _, label := range g.screenshotQueue {
		path := filepath.Join(g.ScreenshotDir, g.screenshotName(now, label))
		if err := writePNG(path, img); err != nil {
			_, _ = fmt.Fprintf(debugOut, "[pong] screenshot: %v\n", err)
		}
	}
}

// captureFrame copies screen into a straight-alpha image for PNG encoding.
func captureFrame(screen *ebiten.Image) *image.NRGBA {
	b := screen.Bounds()
	pixels := make([]byte, 4*b.Dx()*b.Dy())
	screen.ReadPixels(pixels)
	return unpremultiply(pixels, b.Dx(), b.Dy())
}

// unpremultiply converts premultiplied RGBA pixels to a straight-alpha image.
func unpremultiply(pixels []byte, w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := 0; i+3 < len(pixels) && i+3 < len(img.Pix); i += 4 {
		cr, cg, cb, ca := pixels[i], pixels[i+1], pixels[i+2], pixels[i+3]
		if ca > 0 && ca < 255 {
			cr = uint8(min(int(cr)*255/int(ca), 255))
			cg = uint8(min(int(cg)*255/int(ca), 255))
			cb = uint8(min(int(cb)*255/int(ca), 255))
		}
		img.Pix[i] = cr
		img.Pix[i+1] = cg
		img.Pix[i+2] = cb
		img.Pix[i+3] = ca
	}
	return img
}

// writePNG encodes an image to a PNG file at the given path.
func writePNG(path string, img *image.NRGBA) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// sanitizeLabel replaces characters that are unsafe in file names with
// underscores and falls back to "unlabeled" for empty strings.
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	var b strings.Builder
	b.Grow(len(label))
	for _, r := range label {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9', r == '-', r == '.':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}
