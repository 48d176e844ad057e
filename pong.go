package pong

import "image/color"

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Colors are cosmetic only and never affect the simulation.
type Color struct {
	R, G, B, A float64
}

// RGBA converts c to the alpha-premultiplied color.RGBA used by image APIs.
func (c Color) RGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R*c.A) * 255),
		G: uint8(clamp01(c.G*c.A) * 255),
		B: uint8(clamp01(c.B*c.A) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

// ColorHex builds an opaque Color from a 0xRRGGBB value.
func ColorHex(rgb uint32) Color {
	return Color{
		R: float64((rgb>>16)&0xff) / 255,
		G: float64((rgb>>8)&0xff) / 255,
		B: float64(rgb&0xff) / 255,
		A: 1,
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Vec2 is a 2D point or displacement.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle given by its corners. The coordinate system
// has its origin at the top-left, with Y increasing downward. A well-formed
// Rect has X1 < X2 and Y1 < Y2.
type Rect struct {
	X1, Y1, X2, Y2 float64
}

// RectAt returns a rectangle of the given size centered on (cx, cy).
func RectAt(cx, cy, width, height float64) Rect {
	return Rect{
		X1: cx - width/2,
		Y1: cy - height/2,
		X2: cx + width/2,
		Y2: cy + height/2,
	}
}

// Width returns X2 - X1.
func (r Rect) Width() float64 { return r.X2 - r.X1 }

// Height returns Y2 - Y1.
func (r Rect) Height() float64 { return r.Y2 - r.Y1 }

// Mid returns the center of the rectangle.
func (r Rect) Mid() Vec2 {
	return Vec2{X: r.X1 + r.Width()/2, Y: r.Y1 + r.Height()/2}
}

// Overlaps reports whether r and other intersect with a strictly positive
// area. Rectangles that only share an edge do not overlap.
func (r Rect) Overlaps(other Rect) bool {
	return r.X1 < other.X2 &&
		r.X2 > other.X1 &&
		r.Y1 < other.Y2 &&
		r.Y2 > other.Y1
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X1 && x <= r.X2 && y >= r.Y1 && y <= r.Y2
}

// Move translates the rectangle by (dx, dy), preserving its size.
func (r *Rect) Move(dx, dy float64) {
	r.X1 += dx
	r.X2 += dx
	r.Y1 += dy
	r.Y2 += dy
}

// SetCenter repositions the rectangle so its center is (cx, cy), preserving
// its current size.
func (r *Rect) SetCenter(cx, cy float64) {
	*r = RectAt(cx, cy, r.Width(), r.Height())
}

// Side identifies one of the two players.
type Side uint8

const (
	SideLeft  Side = iota // player 1, paddle near x=0
	SideRight             // player 2, paddle near x=Width
)

func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	default:
		return "unknown"
	}
}

// Direction is a vertical paddle direction.
type Direction int

const (
	Up   Direction = -1
	Down Direction = 1
)

// Key identifies one of the four logical input keys. Values outside the
// declared set are ignored by the Controller.
type Key uint8

const (
	KeyNone      Key = iota // unmapped
	KeyLeftUp               // W
	KeyLeftDown             // S
	KeyRightUp              // arrow up
	KeyRightDown            // arrow down
)

func (k Key) String() string {
	switch k {
	case KeyLeftUp:
		return "left-up"
	case KeyLeftDown:
		return "left-down"
	case KeyRightUp:
		return "right-up"
	case KeyRightDown:
		return "right-down"
	default:
		return "none"
	}
}

// binding returns the paddle side and direction a key controls.
func (k Key) binding() (Side, Direction, bool) {
	switch k {
	case KeyLeftUp:
		return SideLeft, Up, true
	case KeyLeftDown:
		return SideLeft, Down, true
	case KeyRightUp:
		return SideRight, Up, true
	case KeyRightDown:
		return SideRight, Down, true
	default:
		return 0, 0, false
	}
}

// ParseKey maps a key name as accepted by test scripts ("left-up", "w",
// "right-down", "down", ...) to a Key. Unknown names return KeyNone.
func ParseKey(name string) Key {
	switch name {
	case "left-up", "w", "W":
		return KeyLeftUp
	case "left-down", "s", "S":
		return KeyLeftDown
	case "right-up", "up":
		return KeyRightUp
	case "right-down", "down":
		return KeyRightDown
	default:
		return KeyNone
	}
}
