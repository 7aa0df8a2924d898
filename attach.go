package scrollbar

import "github.com/agiangrant/scrollbar/surface"

// Attach binds s to surf, replacing surf's native indicator. Attaching to the
// current surface does nothing. Attaching to a new surface first detaches
// from the old one, and detaches any other scrollbar surf already carries.
func (s *ScrollBar) Attach(surf surface.Surface) {
	if surf == nil || s.surface == surf {
		return
	}

	s.Detach()
	if other := For(surf); other != nil && other != s {
		other.Detach()
	}

	s.surface = surf
	s.previousShowsIndicator = surf.ShowsVerticalIndicator()
	surf.SetShowsVerticalIndicator(false)

	s.bind(surf)
	surf.AddOverlay(s)
	surf.SetScrollBar(s)
	s.relayout()
	s.frame.settle()
	s.track.settle()
	s.handle.settle()
	s.knob.settle()
}

// Detach restores the surface's native indicator and removes the overlay.
// Detaching an unattached scrollbar does nothing.
func (s *ScrollBar) Detach() {
	surf := s.surface
	if surf == nil {
		return
	}

	if s.session != nil {
		surf.SetScrollEnabled(true)
		s.session = nil
	}
	s.recognizer.Reset()

	surf.SetShowsVerticalIndicator(s.previousShowsIndicator)
	s.unbind()
	surf.RemoveOverlay(s)
	if surf.ScrollBar() == surface.Overlay(s) {
		surf.SetScrollBar(nil)
	}
	s.surface = nil
}

// Attach binds s to surf. It is shorthand for s.Attach(surf).
func Attach(surf surface.Surface, s *ScrollBar) {
	s.Attach(surf)
}

// Detach removes whichever scrollbar is attached to surf.
func Detach(surf surface.Surface) {
	if s := For(surf); s != nil {
		s.Detach()
	}
}

// For returns the scrollbar attached to surf, or nil.
func For(surf surface.Surface) *ScrollBar {
	if surf == nil {
		return nil
	}
	s, _ := surf.ScrollBar().(*ScrollBar)
	return s
}
