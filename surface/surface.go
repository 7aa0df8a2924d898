// Package surface describes the scrollable content view a scrollbar overlay
// controls, and provides View, an in-memory implementation used by hosts
// that draw their own content (and by tests).
package surface

import "github.com/agiangrant/scrollbar/geometry"

// ChangeKind identifies which property of a surface changed.
type ChangeKind uint8

const (
	ChangeContentOffset ChangeKind = iota + 1
	ChangeContentSize
)

func (k ChangeKind) String() string {
	switch k {
	case ChangeContentOffset:
		return "content-offset"
	case ChangeContentSize:
		return "content-size"
	default:
		return "unknown"
	}
}

// Change is delivered to observers after a property changed.
type Change struct {
	Kind ChangeKind
}

// Overlay is a view drawn above the surface's content, in content
// coordinates.
type Overlay interface {
	Frame() geometry.Rect
}

// Surface is the capability a scrollbar needs from the scrollable view it is
// attached to. Implementations are expected to be used from a single
// goroutine.
type Surface interface {
	// Snapshot returns the current scroll metrics.
	Snapshot() geometry.Snapshot

	ContentOffset() geometry.Point
	SetContentOffset(p geometry.Point)

	// ShowsVerticalIndicator reports whether the native indicator is drawn.
	ShowsVerticalIndicator() bool
	SetShowsVerticalIndicator(show bool)

	// ScrollEnabled reports whether the surface reacts to pan gestures.
	ScrollEnabled() bool
	SetScrollEnabled(enabled bool)

	// Observe registers fn for offset and content-size changes. The returned
	// func removes the registration; calling it more than once is harmless.
	Observe(fn func(Change)) (cancel func())

	AddOverlay(o Overlay)
	RemoveOverlay(o Overlay)
	BringOverlayToFront(o Overlay)

	// ScrollBar returns the overlay registered as this surface's scrollbar.
	// The surface does not own it.
	ScrollBar() Overlay
	SetScrollBar(o Overlay)
}
