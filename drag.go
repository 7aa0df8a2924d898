package scrollbar

import (
	"math"

	"github.com/agiangrant/scrollbar/geometry"
	"github.com/agiangrant/scrollbar/gesture"
)

// edgeEpsilon is the distance below which the handle counts as resting on a
// track end, or as not having moved.
const edgeEpsilon = 1e-4

// DragSession is the state captured when a drag begins.
type DragSession struct {
	// OriginalHeight is the overlay height at drag start; the overlay keeps
	// it for the whole drag.
	OriginalHeight float32

	// OriginalYOffset is the overlay's y minus the content offset at drag
	// start, so the overlay stays fixed on screen while the content moves.
	OriginalYOffset float32

	// OriginalTopInset is the adjusted top inset at drag start, used by the
	// inverse mapping while a large title collapses underneath.
	OriginalTopInset float32

	// OffsetFromHandleTop is the distance from the handle top to the pointer.
	OffsetFromHandleTop float32
}

// Dragging reports whether a drag is in progress.
func (s *ScrollBar) Dragging() bool { return s.session != nil }

// Session returns a copy of the current drag session.
func (s *ScrollBar) Session() (DragSession, bool) {
	if s.session == nil {
		return DragSession{}, false
	}
	return *s.session, true
}

// HandlePointer feeds one pointer event, in overlay-local coordinates, to
// the drag gesture. It returns true if the event was consumed. Events are
// ignored while unattached or hidden.
func (s *ScrollBar) HandlePointer(ev gesture.Event) bool {
	if s.surface == nil {
		return false
	}
	if s.hidden && !s.recognizer.Tracking() {
		return false
	}
	return s.recognizer.Handle(ev)
}

// HitTest reports whether p, in overlay-local coordinates, falls on the
// overlay. While idle it also toggles surface scrolling so that touches on
// the overlay do not start a pan. During a drag scrolling is left alone.
func (s *ScrollBar) HitTest(p geometry.Point) bool {
	if s.surface == nil {
		return false
	}

	bounds := geometry.Rect{Width: s.frame.model.Width, Height: s.frame.model.Height}
	inside := !s.hidden && bounds.Contains(p)
	if s.session != nil {
		return inside
	}

	s.surface.SetScrollEnabled(!inside)
	return inside
}

func (s *ScrollBar) handleGesture(g gesture.Gesture) {
	switch g.Phase {
	case gesture.PhaseBegan:
		s.began(g.Position)
	case gesture.PhaseChanged:
		s.dragged(g.Position)
	case gesture.PhaseEnded, gesture.PhaseCancelled:
		s.ended()
	}
}

func (s *ScrollBar) began(p geometry.Point) {
	s.feedback.Prepare()
	s.surface.SetScrollEnabled(false)

	snap := s.surface.Snapshot()
	s.session = &DragSession{
		OriginalHeight:   s.frame.model.Height,
		OriginalYOffset:  s.frame.model.Y - snap.ContentOffset.Y,
		OriginalTopInset: snap.AdjustedInset.Top,
	}

	handle := s.handle.model
	if p.Y > handle.Y-s.tolerance && p.Y < handle.MaxY()+s.tolerance {
		s.session.OffsetFromHandleTop = p.Y - handle.Y
		return
	}

	// Track tap: centre the handle on the pointer.
	maxY := s.track.model.Height - handle.Height
	half := handle.Height * 0.5
	dest := max(0, p.Y-half)
	dest = min(s.frame.model.Height-half, dest)
	dest = min(dest, maxY)

	s.session.OffsetFromHandleTop = p.Y - dest
	handle.Y = dest
	s.withAnimation(func() {
		s.setFrame(&s.handle, handle)
	})

	s.setOffsetForHandleY(floor(dest))
}

func (s *ScrollBar) dragged(p geometry.Point) {
	sess := s.session
	if sess == nil {
		return
	}

	handle := s.handle.model
	track := s.track.model
	maxY := track.Height - handle.Height

	prev := handle.Y
	handle.Y = p.Y - sess.OffsetFromHandleTop

	if handle.Y < 0 {
		sess.OffsetFromHandleTop += handle.Y
		sess.OffsetFromHandleTop = max(0, sess.OffsetFromHandleTop)
		handle.Y = 0
	} else if handle.Y > maxY {
		overflow := handle.MaxY() - track.Height
		sess.OffsetFromHandleTop += overflow
		sess.OffsetFromHandleTop = min(sess.OffsetFromHandleTop, handle.Height)
		handle.Y = maxY
	}

	s.setFrame(&s.handle, handle)

	moved := abs(prev-handle.Y) > edgeEpsilon
	atEdge := handle.Y < edgeEpsilon || handle.Y >= maxY-edgeEpsilon
	if moved && atEdge {
		s.feedback.Pulse()
	}

	s.setOffsetForHandleY(floor(handle.Y))
}

func (s *ScrollBar) ended() {
	if s.surface == nil {
		s.session = nil
		return
	}

	s.surface.SetScrollEnabled(true)
	s.session = nil

	s.withAnimation(func() {
		s.relayout()
	})
}

// setOffsetForHandleY scrolls the surface so the handle's top sits at y.
func (s *ScrollBar) setOffsetForHandleY(y float32) {
	snap := s.surface.Snapshot()
	top := snap.AdjustedInset.Top
	if s.session != nil {
		top = s.session.OriginalTopInset
	}

	offsetY := geometry.OffsetForHandleOriginY(
		y,
		s.track.model.Height,
		s.handle.model.Height,
		snap.ContentSize.Height,
		snap.Frame.Height,
		top,
		snap.AdjustedInset.Bottom,
	)
	s.surface.SetContentOffset(geometry.Point{X: snap.ContentOffset.X, Y: offsetY})
}

func floor(v float32) float32 {
	return float32(math.Floor(float64(v)))
}

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
