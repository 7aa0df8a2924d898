package surface

import "github.com/agiangrant/scrollbar/geometry"

// ============================================================================
// View
// ============================================================================

// View is an in-memory scroll surface. It stores the scroll metrics, tracks
// overlays in back-to-front order and notifies observers when the content
// offset or content size changes.
//
// View is not safe for concurrent use; drive it from the run loop goroutine.
type View struct {
	frame         geometry.Rect
	contentSize   geometry.Size
	contentOffset geometry.Point
	contentInset  geometry.Insets
	safeArea      geometry.Insets

	showsVerticalIndicator bool
	scrollEnabled          bool

	overlays  []Overlay
	scrollBar Overlay

	observers []observer
	nextObsID uint64
}

type observer struct {
	id uint64
	fn func(Change)
}

// NewView creates a view with the given viewport frame. Like a platform
// scroll view it starts with its native indicator shown and scrolling
// enabled.
func NewView(frame geometry.Rect) *View {
	return &View{
		frame:                  frame,
		showsVerticalIndicator: true,
		scrollEnabled:          true,
	}
}

// Snapshot implements Surface.
func (v *View) Snapshot() geometry.Snapshot {
	return geometry.Snapshot{
		Frame:         v.frame,
		ContentSize:   v.contentSize,
		ContentOffset: v.contentOffset,
		ContentInset:  v.contentInset,
		SafeArea:      v.safeArea,
		AdjustedInset: v.AdjustedInset(),
	}
}

// Frame returns the viewport rectangle.
func (v *View) Frame() geometry.Rect { return v.frame }

// SetFrame resizes the viewport. Resizing is not a change observers are told
// about; hosts relayout explicitly after a resize.
func (v *View) SetFrame(r geometry.Rect) { v.frame = r }

// ContentSize returns the scrollable content size.
func (v *View) ContentSize() geometry.Size { return v.contentSize }

// SetContentSize updates the content size and notifies observers.
func (v *View) SetContentSize(s geometry.Size) {
	if v.contentSize == s {
		return
	}
	v.contentSize = s
	v.notify(Change{Kind: ChangeContentSize})
}

// ContentInset returns the host-configured inset.
func (v *View) ContentInset() geometry.Insets { return v.contentInset }

// SetContentInset sets the host-configured inset.
func (v *View) SetContentInset(in geometry.Insets) { v.contentInset = in }

// SafeArea returns the system-imposed inset.
func (v *View) SafeArea() geometry.Insets { return v.safeArea }

// SetSafeArea sets the system-imposed inset.
func (v *View) SetSafeArea(in geometry.Insets) { v.safeArea = in }

// AdjustedInset is the content inset with the safe area added on the
// vertical edges.
func (v *View) AdjustedInset() geometry.Insets {
	adjusted := v.contentInset
	adjusted.Top += v.safeArea.Top
	adjusted.Bottom += v.safeArea.Bottom
	return adjusted
}

// ContentOffset implements Surface.
func (v *View) ContentOffset() geometry.Point { return v.contentOffset }

// SetContentOffset implements Surface. Any value is accepted, including
// offsets past either edge (bounce).
func (v *View) SetContentOffset(p geometry.Point) {
	if v.contentOffset == p {
		return
	}
	v.contentOffset = p
	v.notify(Change{Kind: ChangeContentOffset})
}

// MinOffsetY is the offset that shows the top of the content.
func (v *View) MinOffsetY() float32 {
	return -v.AdjustedInset().Top
}

// MaxOffsetY is the offset that shows the bottom of the content.
func (v *View) MaxOffsetY() float32 {
	in := v.AdjustedInset()
	maxY := v.contentSize.Height + in.Bottom - v.frame.Height
	return max(maxY, -in.Top)
}

// ScrollBy moves the content by dy as a user pan would, clamped to the
// content edges. It does nothing while scrolling is disabled and reports
// whether the offset moved.
func (v *View) ScrollBy(dy float32) bool {
	if !v.scrollEnabled {
		return false
	}
	before := v.contentOffset
	y := geometry.Clamp(v.contentOffset.Y+dy, v.MinOffsetY(), v.MaxOffsetY())
	v.SetContentOffset(geometry.Point{X: before.X, Y: y})
	return v.contentOffset != before
}

// ShowsVerticalIndicator implements Surface.
func (v *View) ShowsVerticalIndicator() bool { return v.showsVerticalIndicator }

// SetShowsVerticalIndicator implements Surface.
func (v *View) SetShowsVerticalIndicator(show bool) { v.showsVerticalIndicator = show }

// ScrollEnabled implements Surface.
func (v *View) ScrollEnabled() bool { return v.scrollEnabled }

// SetScrollEnabled implements Surface.
func (v *View) SetScrollEnabled(enabled bool) { v.scrollEnabled = enabled }

// ============================================================================
// Observation
// ============================================================================

// Observe implements Surface.
func (v *View) Observe(fn func(Change)) (cancel func()) {
	v.nextObsID++
	id := v.nextObsID
	v.observers = append(v.observers, observer{id: id, fn: fn})

	return func() {
		for i, o := range v.observers {
			if o.id == id {
				v.observers = append(v.observers[:i:i], v.observers[i+1:]...)
				return
			}
		}
	}
}

// ObserverCount returns the number of live registrations.
func (v *View) ObserverCount() int {
	return len(v.observers)
}

func (v *View) notify(c Change) {
	// Copy so observers may cancel (or register) while being notified.
	observers := make([]observer, len(v.observers))
	copy(observers, v.observers)
	for _, o := range observers {
		o.fn(c)
	}
}

// ============================================================================
// Overlays
// ============================================================================

// AddOverlay implements Surface. Adding an overlay that is already present
// moves it to the front.
func (v *View) AddOverlay(o Overlay) {
	v.RemoveOverlay(o)
	v.overlays = append(v.overlays, o)
}

// RemoveOverlay implements Surface.
func (v *View) RemoveOverlay(o Overlay) {
	for i, existing := range v.overlays {
		if existing == o {
			v.overlays = append(v.overlays[:i:i], v.overlays[i+1:]...)
			return
		}
	}
}

// BringOverlayToFront implements Surface. Unknown overlays are ignored.
func (v *View) BringOverlayToFront(o Overlay) {
	for i, existing := range v.overlays {
		if existing == o {
			if i == len(v.overlays)-1 {
				return
			}
			v.overlays = append(v.overlays[:i:i], v.overlays[i+1:]...)
			v.overlays = append(v.overlays, o)
			return
		}
	}
}

// Overlays returns the overlays back to front.
func (v *View) Overlays() []Overlay {
	out := make([]Overlay, len(v.overlays))
	copy(out, v.overlays)
	return out
}

// ScrollBar implements Surface.
func (v *View) ScrollBar() Overlay { return v.scrollBar }

// SetScrollBar implements Surface.
func (v *View) SetScrollBar(o Overlay) { v.scrollBar = o }
