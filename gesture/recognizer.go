package gesture

import "github.com/agiangrant/scrollbar/geometry"

// Gesture is what a Recognizer reports to its handler.
type Gesture struct {
	Phase    Phase
	Position geometry.Point
}

// Handler receives recognized gesture phases.
type Handler func(Gesture)

// Recognizer tracks one pointer from down to up. While a pointer is tracked
// every other pointer is ignored, including a second down of the tracked
// pointer itself.
//
// Recognizer is not safe for concurrent use.
type Recognizer struct {
	handler  Handler
	tracking bool
	pointer  PointerID
	phase    Phase
	last     geometry.Point
}

// NewRecognizer creates a recognizer that reports to handler.
func NewRecognizer(handler Handler) *Recognizer {
	return &Recognizer{handler: handler}
}

// Phase returns the phase of the most recent reported gesture, or
// PhasePossible when idle.
func (r *Recognizer) Phase() Phase {
	return r.phase
}

// Tracking reports whether a pointer is currently tracked.
func (r *Recognizer) Tracking() bool {
	return r.tracking
}

// Handle consumes one event. It returns true if the event belonged to the
// tracked gesture (or started it).
func (r *Recognizer) Handle(ev Event) bool {
	switch ev.Type {
	case PointerDown:
		if r.tracking {
			return false
		}
		r.tracking = true
		r.pointer = ev.Pointer
		r.report(PhaseBegan, ev.Position)
		return true

	case PointerMove:
		if !r.tracking || ev.Pointer != r.pointer {
			return false
		}
		r.report(PhaseChanged, ev.Position)
		return true

	case PointerUp:
		if !r.tracking || ev.Pointer != r.pointer {
			return false
		}
		r.finish(PhaseEnded, ev.Position)
		return true

	case PointerCancel:
		if !r.tracking {
			return false
		}
		// Cancellation carries no position; report the last known one.
		r.finish(PhaseCancelled, r.last)
		return true
	}
	return false
}

// Reset drops any tracked pointer without reporting.
func (r *Recognizer) Reset() {
	r.tracking = false
	r.phase = PhasePossible
}

func (r *Recognizer) finish(phase Phase, pos geometry.Point) {
	r.tracking = false
	r.report(phase, pos)
	r.phase = PhasePossible
}

func (r *Recognizer) report(phase Phase, pos geometry.Point) {
	r.phase = phase
	r.last = pos
	if r.handler != nil {
		r.handler(Gesture{Phase: phase, Position: pos})
	}
}
