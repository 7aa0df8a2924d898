// Package gesture turns raw pointer input into the phases of a single-pointer
// drag gesture.
package gesture

import "github.com/agiangrant/scrollbar/geometry"

// ============================================================================
// Pointer Events
// ============================================================================

// EventType identifies the kind of pointer event.
type EventType uint8

const (
	PointerDown EventType = iota + 1
	PointerMove
	PointerUp
	PointerCancel // system interruption (incoming call, window lost focus)
)

func (t EventType) String() string {
	switch t {
	case PointerDown:
		return "down"
	case PointerMove:
		return "move"
	case PointerUp:
		return "up"
	case PointerCancel:
		return "cancel"
	default:
		return "unknown"
	}
}

// PointerID distinguishes simultaneous pointers (fingers, mouse).
type PointerID int

// Event is a raw pointer event. Position is in the receiving overlay's local
// coordinate space.
type Event struct {
	Type     EventType
	Pointer  PointerID
	Position geometry.Point
}

// Down is shorthand for a pointer-down event of pointer 0.
func Down(x, y float32) Event {
	return Event{Type: PointerDown, Position: geometry.Point{X: x, Y: y}}
}

// Move is shorthand for a pointer-move event of pointer 0.
func Move(x, y float32) Event {
	return Event{Type: PointerMove, Position: geometry.Point{X: x, Y: y}}
}

// Up is shorthand for a pointer-up event of pointer 0.
func Up(x, y float32) Event {
	return Event{Type: PointerUp, Position: geometry.Point{X: x, Y: y}}
}

// Cancel is shorthand for a cancel event of pointer 0.
func Cancel() Event {
	return Event{Type: PointerCancel}
}

// ============================================================================
// Phases
// ============================================================================

// Phase is the state a recognizer reports after consuming an event.
type Phase uint8

const (
	// PhasePossible - no gesture in progress.
	PhasePossible Phase = iota

	// PhaseBegan - a pointer went down and is now tracked.
	PhaseBegan

	// PhaseChanged - the tracked pointer moved.
	PhaseChanged

	// PhaseEnded - the tracked pointer lifted.
	PhaseEnded

	// PhaseCancelled - the system interrupted the gesture.
	PhaseCancelled
)

func (p Phase) String() string {
	switch p {
	case PhasePossible:
		return "possible"
	case PhaseBegan:
		return "began"
	case PhaseChanged:
		return "changed"
	case PhaseEnded:
		return "ended"
	case PhaseCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Finished reports whether p ends a gesture.
func (p Phase) Finished() bool {
	return p == PhaseEnded || p == PhaseCancelled
}
