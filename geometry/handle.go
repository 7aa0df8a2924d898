package geometry

// ============================================================================
// Forward Mapping: scroll state -> handle
// ============================================================================

// HandleGeometry is the handle's vertical placement in overlay-local space.
type HandleGeometry struct {
	OriginY float32
	Height  float32
}

// HandleHeight returns the handle height for a track of overlayHeight points
// showing viewportHeight of contentHeight. The result never drops below
// minimumHeight. A zero content height yields minimumHeight.
func HandleHeight(overlayHeight, viewportHeight, contentHeight, minimumHeight float32) float32 {
	if contentHeight == 0 {
		return minimumHeight
	}
	height := floor(overlayHeight * viewportHeight / contentHeight)
	if height < minimumHeight {
		return minimumHeight
	}
	return height
}

// TotalScrollableHeight returns how far the content can travel, including the
// insets on both ends.
func TotalScrollableHeight(contentHeight, viewportHeight float32, insets Insets) float32 {
	return contentHeight + insets.Top + insets.Bottom - viewportHeight
}

// ScrollProgress maps a content offset to [0, 1] within the scrollable range.
// Values outside that range are returned as-is so callers can detect bounce.
// Returns 0 when there is nothing to scroll.
func ScrollProgress(offsetY, contentHeight, viewportHeight float32, insets Insets) float32 {
	total := TotalScrollableHeight(contentHeight, viewportHeight, insets)
	if total <= 0 {
		return 0
	}
	return (offsetY + insets.Top) / total
}

// HandleOriginY places a handle of handleHeight along a track of overlayHeight
// according to progress, clamped so the handle stays on the track.
func HandleOriginY(overlayHeight, handleHeight, progress float32) float32 {
	y := (overlayHeight - handleHeight) * progress
	return Clamp(y, 0, overlayHeight-handleHeight)
}

// HandleInput carries everything the forward pass needs.
type HandleInput struct {
	OverlayHeight  float32
	ViewportHeight float32
	ContentHeight  float32
	OffsetY        float32
	Insets         Insets
	MinimumHeight  float32
	TrackWidth     float32
}

// HandleInputFrom builds a HandleInput from a surface snapshot.
func HandleInputFrom(s Snapshot, overlayHeight, minimumHeight, trackWidth float32) HandleInput {
	return HandleInput{
		OverlayHeight:  overlayHeight,
		ViewportHeight: s.Frame.Height,
		ContentHeight:  s.ContentSize.Height,
		OffsetY:        s.ContentOffset.Y,
		Insets:         s.AdjustedInset,
		MinimumHeight:  minimumHeight,
		TrackWidth:     trackWidth,
	}
}

// Handle runs the full forward pass: size (capped at the overlay height),
// position, overscroll shrink and final clamp.
//
// Overscroll shrinks the handle by the bounce distance, never below
// TrackWidth*2. The top edge is checked first; the bottom edge is only
// considered when the surface is not past the top. When shrinking at the
// bottom the handle stays pinned to the bottom of the overlay.
func Handle(in HandleInput) HandleGeometry {
	in.OverlayHeight = max(in.OverlayHeight, 0)
	height := HandleHeight(in.OverlayHeight, in.ViewportHeight, in.ContentHeight, in.MinimumHeight)
	height = min(height, in.OverlayHeight)
	progress := ScrollProgress(in.OffsetY, in.ContentHeight, in.ViewportHeight, in.Insets)
	y := (in.OverlayHeight - height) * progress

	minShrunk := in.TrackWidth * 2
	contentBottom := in.ContentHeight + in.Insets.Bottom

	if in.OffsetY < -in.Insets.Top {
		height -= -in.OffsetY - in.Insets.Top
		height = max(height, minShrunk)
	} else if in.OffsetY+in.ViewportHeight > contentBottom {
		height -= in.OffsetY + in.ViewportHeight - contentBottom
		height = max(height, minShrunk)
		y = in.OverlayHeight - height
	}

	y = max(y, 0)
	y = min(y, in.OverlayHeight-height)
	return HandleGeometry{OriginY: y, Height: height}
}

// ============================================================================
// Inverse Mapping: handle -> scroll state
// ============================================================================

// OffsetForHandleOriginY returns the content offset that puts a handle of
// handleHeight at handleOriginY on a track of trackHeight. The origin is
// clamped onto the track first. A track with no travel maps to the top.
func OffsetForHandleOriginY(handleOriginY, trackHeight, handleHeight, contentHeight, viewportHeight, insetTop, insetBottom float32) float32 {
	travel := trackHeight - handleHeight
	y := Clamp(handleOriginY, 0, travel)

	var ratio float32
	if travel > 0 {
		ratio = y / travel
	}

	total := contentHeight + insetTop + insetBottom - viewportHeight
	return ratio*total - insetTop
}
