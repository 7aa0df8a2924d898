// Package geometry holds the pure layout math behind the scrollbar overlay.
//
// Nothing in this package keeps state. Every function is a total function of
// its inputs, so the forward mapping (scroll state to handle frame) and the
// inverse mapping (handle position to content offset) can be tested without a
// live scroll surface. The functions are safe to call from any goroutine.
package geometry

import "math"

// ============================================================================
// Basic Types
// ============================================================================

// Point is a position in points.
type Point struct {
	X, Y float32
}

// Size is a width/height pair in points.
type Size struct {
	Width, Height float32
}

// Insets are distances from the four edges of a rectangle.
type Insets struct {
	Top, Left, Bottom, Right float32
}

// Add returns the component-wise sum of two insets.
func (in Insets) Add(o Insets) Insets {
	return Insets{
		Top:    in.Top + o.Top,
		Left:   in.Left + o.Left,
		Bottom: in.Bottom + o.Bottom,
		Right:  in.Right + o.Right,
	}
}

// Vertical returns Top + Bottom.
func (in Insets) Vertical() float32 {
	return in.Top + in.Bottom
}

// Rect is an axis-aligned rectangle. Y grows downward.
type Rect struct {
	X, Y          float32
	Width, Height float32
}

// MinY returns the top edge.
func (r Rect) MinY() float32 { return r.Y }

// MaxY returns the bottom edge.
func (r Rect) MaxY() float32 { return r.Y + r.Height }

// MidX returns the horizontal centre.
func (r Rect) MidX() float32 { return r.X + r.Width/2 }

// Contains checks if a point is within the rectangle.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.Width &&
		p.Y >= r.Y && p.Y < r.Y+r.Height
}

// Integral returns the smallest rectangle with integer coordinates that
// contains r: the origin is floored and the far edges are ceiled.
func (r Rect) Integral() Rect {
	minX := floor(r.X)
	minY := floor(r.Y)
	maxX := ceil(r.X + r.Width)
	maxY := ceil(r.Y + r.Height)
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// Lerp linearly interpolates every component between r and to.
func (r Rect) Lerp(to Rect, t float32) Rect {
	return Rect{
		X:      lerp(r.X, to.X, t),
		Y:      lerp(r.Y, to.Y, t),
		Width:  lerp(r.Width, to.Width, t),
		Height: lerp(r.Height, to.Height, t),
	}
}

// LocalPoint converts a point in the rectangle's parent space to the
// rectangle's own space.
func (r Rect) LocalPoint(p Point) Point {
	return Point{X: p.X - r.X, Y: p.Y - r.Y}
}

// ============================================================================
// Scroll Surface Snapshot
// ============================================================================

// Snapshot captures the scroll metrics of a surface at one instant. It is
// taken fresh for every layout pass and never cached across passes.
type Snapshot struct {
	// Frame is the viewport rectangle in the surface's parent space.
	Frame Rect

	// ContentSize is the total size of the scrollable content.
	ContentSize Size

	// ContentOffset is the current scroll position. Negative Y or Y past the
	// bottom edge means the surface is bouncing.
	ContentOffset Point

	// ContentInset is the inset configured by the host.
	ContentInset Insets

	// SafeArea is the inset imposed by the system (notches, bars).
	SafeArea Insets

	// AdjustedInset is ContentInset plus the safe area contribution.
	AdjustedInset Insets
}

// ViewportHeight returns the height of the visible area.
func (s Snapshot) ViewportHeight() float32 {
	return s.Frame.Height
}

// Scrollable reports whether the content overflows the viewport.
func (s Snapshot) Scrollable() bool {
	return s.ContentSize.Height > s.Frame.Height
}

// ============================================================================
// Helper Functions
// ============================================================================

// Clamp restricts v to [lo, hi]. When the range is empty (hi < lo) the lower
// bound wins.
func Clamp(v, lo, hi float32) float32 {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}

func lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}

func floor(v float32) float32 {
	return float32(math.Floor(float64(v)))
}

func ceil(v float32) float32 {
	return float32(math.Ceil(float64(v)))
}

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
