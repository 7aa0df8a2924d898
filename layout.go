package scrollbar

import "github.com/agiangrant/scrollbar/geometry"

// Layout recomputes every frame from the surface's current state. Hosts call
// it after changes the surface does not report, such as a resize or an inset
// change. It does nothing while unattached.
func (s *ScrollBar) Layout() {
	s.relayout()
}

// relayout hides the scrollbar when the content does not overflow the
// viewport or the overlay is too short for the handle to travel, otherwise
// repositions the overlay and lays out its parts.
func (s *ScrollBar) relayout() {
	if s.surface == nil {
		return
	}

	snap := s.surface.Snapshot()
	overlay := s.overlayFrame(snap)
	height := geometry.HandleHeight(overlay.Height, snap.Frame.Height, snap.ContentSize.Height, s.metrics.MinimumHandleHeight)

	s.hidden = !snap.Scrollable() ||
		height >= snap.Frame.Height ||
		overlay.Height < s.metrics.MinimumHandleHeight ||
		height >= overlay.Height
	if s.hidden {
		return
	}

	s.positionSelf()
	s.layoutSubviews()
}

func (s *ScrollBar) overlayFrame(snap geometry.Snapshot) geometry.Rect {
	in := geometry.OverlayInput{
		Snapshot:            snap,
		TapAreaWidth:        s.tapAreaWidth,
		EdgeInset:           s.metrics.EdgeInset,
		VerticalInset:       s.metrics.VerticalInset,
		InsetForLargeTitles: s.insetForLargeTitles,
	}
	if s.session != nil {
		in.Dragging = true
		in.OriginalHeight = s.session.OriginalHeight
		in.OriginalYOffset = s.session.OriginalYOffset
	}
	return geometry.OverlayFrame(in)
}

// positionSelf moves the overlay so it stays pinned to the right edge of the
// viewport and keeps it above the surface's other overlays.
func (s *ScrollBar) positionSelf() {
	if s.surface == nil {
		return
	}
	s.setFrame(&s.frame, s.overlayFrame(s.surface.Snapshot()))
	s.surface.BringOverlayToFront(s)
}

// layoutSubviews places the track, and unless a drag owns the handle, the
// handle and knob.
func (s *ScrollBar) layoutSubviews() {
	size := geometry.Size{Width: s.frame.model.Width, Height: s.frame.model.Height}
	track := geometry.TrackFrame(size, s.metrics.TrackWidth, s.metrics.EdgeInset)
	s.setFrame(&s.track, track)

	if s.session != nil {
		return
	}

	snap := s.surface.Snapshot()
	in := geometry.HandleInputFrom(snap, size.Height, s.metrics.MinimumHandleHeight, s.metrics.TrackWidth)
	height := geometry.HandleHeight(size.Height, in.ViewportHeight, in.ContentHeight, in.MinimumHeight)

	handle := geometry.PreliminaryHandleFrame(track, s.metrics.HandleWidth, height)
	g := geometry.Handle(in)
	handle.Y = g.OriginY
	handle.Height = g.Height
	s.setFrame(&s.handle, handle)

	if s.metrics.Knob {
		s.setFrame(&s.knob, geometry.KnobFrame(handle))
	}
}
