package geometry

// ============================================================================
// Overlay and Subview Frames
// ============================================================================

// OverlayInput carries the parameters of the overlay placement pass.
type OverlayInput struct {
	Snapshot Snapshot

	// TapAreaWidth is the width of the touchable overlay (wider than the
	// track so the control is easy to grab).
	TapAreaWidth float32

	// EdgeInset is the gap between the track and the surface's right edge.
	EdgeInset float32

	// VerticalInset keeps the track away from the top and bottom edges.
	VerticalInset Insets

	// InsetForLargeTitles shortens the overlay while a collapsing title
	// pushes the content down (offset above the adjusted top inset).
	InsetForLargeTitles bool

	// Dragging freezes the overlay height and vertical offset at their
	// values from drag start.
	Dragging        bool
	OriginalHeight  float32
	OriginalYOffset float32
}

// LargeTitleDelta returns how far the content is pulled below the adjusted
// top inset, or 0 when large-title insetting is off.
func LargeTitleDelta(s Snapshot, enabled bool) float32 {
	if !enabled {
		return 0
	}
	return abs(min(s.AdjustedInset.Top+s.ContentOffset.Y, 0))
}

// OverlayFrame returns the overlay rectangle in the surface's content
// coordinates, so the overlay scrolls with the content and stays visually
// fixed at the right edge of the viewport.
func OverlayFrame(in OverlayInput) Rect {
	s := in.Snapshot
	insets := s.AdjustedInset
	offset := s.ContentOffset
	halfWidth := in.TapAreaWidth * 0.5

	visible := s.Frame
	visible.Height -= insets.Top + insets.Bottom
	largeTitleDelta := LargeTitleDelta(s, in.InsetForLargeTitles)

	height := max(visible.Height-in.VerticalInset.Vertical()-largeTitleDelta, 0)

	var frame Rect
	frame.Width = in.TapAreaWidth
	frame.Height = height
	if in.Dragging {
		frame.Height = in.OriginalHeight
	}

	frame.X = visible.Width - (in.EdgeInset + halfWidth)
	frame.X -= s.SafeArea.Right
	frame.X = min(frame.X, visible.Width-in.TapAreaWidth)

	if in.Dragging {
		frame.Y = in.OriginalYOffset
	} else {
		frame.Y = in.VerticalInset.Top + insets.Top + largeTitleDelta
	}
	frame.Y += offset.Y
	return frame
}

// TrackFrame returns the track strip inside an overlay of the given size,
// hugging the right side minus the edge inset.
func TrackFrame(overlay Size, trackWidth, edgeInset float32) Rect {
	r := Rect{
		X:      ceil(overlay.Width - trackWidth - edgeInset),
		Width:  trackWidth,
		Height: overlay.Height,
	}
	return r.Integral()
}

// PreliminaryHandleFrame returns the handle centred on the track at y=0.
// The forward pass sets the final origin.
func PreliminaryHandleFrame(track Rect, handleWidth, handleHeight float32) Rect {
	r := Rect{
		X:      track.MidX() - handleWidth/2,
		Width:  handleWidth,
		Height: handleHeight,
	}
	return r.Integral()
}

// KnobFrame returns the square grip drawn in the middle of a classic handle,
// in handle-local coordinates.
func KnobFrame(handle Rect) Rect {
	var knob Rect
	knob.Width = handle.Width - 4
	knob.Height = knob.Width
	knob.X = 2
	knob.Y = handle.Height/2 - knob.Height/2
	return knob.Integral()
}
