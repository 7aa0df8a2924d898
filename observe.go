package scrollbar

import "github.com/agiangrant/scrollbar/surface"

// bind subscribes to content offset and content size changes on surf.
func (s *ScrollBar) bind(surf surface.Surface) {
	s.unbind()
	s.cancelObserve = surf.Observe(s.relayoutOnChange)
}

// unbind cancels the subscription made by bind, if any.
func (s *ScrollBar) unbind() {
	if s.cancelObserve == nil {
		return
	}
	s.cancelObserve()
	s.cancelObserve = nil
}

func (s *ScrollBar) relayoutOnChange(surface.Change) {
	s.relayout()
}
