// Package haptics loads a native haptic generator from a shared library at
// runtime. Hosts without haptic hardware get ErrUnavailable and fall back to
// Nop.
package haptics

import (
	"errors"
	"fmt"
	"log"
	"runtime"
)

// ErrUnavailable is returned when no native haptic generator can be loaded.
var ErrUnavailable = errors.New("haptics unavailable")

// Style represents the type of haptic feedback.
type Style int32

const (
	// Impact feedback styles
	ImpactLight  Style = 0
	ImpactMedium Style = 1
	ImpactHeavy  Style = 2
	ImpactSoft   Style = 3
	ImpactRigid  Style = 4

	// Selection feedback
	Selection Style = 10
)

// Supported returns true if the platform normally has haptic hardware.
func Supported() bool {
	switch runtime.GOOS {
	case "ios", "android":
		return true
	default:
		return false
	}
}

// ============================================================================
// Native Generator
// ============================================================================

// Native drives a generator exported by a shared library. The pulse symbol
// takes one int32 style argument. An optional "<symbol>_prepare" symbol with
// no arguments warms the hardware before a gesture.
//
// A nil *Native is valid and does nothing.
type Native struct {
	style   Style
	pulse   func(style int32)
	prepare func()
	close   func() error
}

// Open loads library and resolves symbol. Pulses use style.
func Open(library, symbol string, style Style) (*Native, error) {
	if library == "" || symbol == "" {
		return nil, ErrUnavailable
	}

	n, err := open(library, symbol)
	if err != nil {
		return nil, fmt.Errorf("failed to load haptics from %s: %w", library, err)
	}
	n.style = style
	log.Printf("haptics: loaded %s from %s (prepare=%v)", symbol, library, n.prepare != nil)
	return n, nil
}

// Prepare warms the generator. It is a no-op when the library has no
// prepare symbol.
func (n *Native) Prepare() {
	if n == nil || n.prepare == nil {
		return
	}
	n.prepare()
}

// Pulse fires one impact.
func (n *Native) Pulse() {
	if n == nil || n.pulse == nil {
		return
	}
	n.pulse(int32(n.style))
}

// Close releases the library handle.
func (n *Native) Close() error {
	if n == nil || n.close == nil {
		return nil
	}
	err := n.close()
	n.pulse, n.prepare, n.close = nil, nil, nil
	return err
}

// ============================================================================
// Nop Generator
// ============================================================================

// Nop is a generator that does nothing, used where no hardware exists.
type Nop struct{}

// Prepare does nothing.
func (Nop) Prepare() {}

// Pulse does nothing.
func (Nop) Pulse() {}
