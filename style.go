package scrollbar

import (
	"fmt"

	"github.com/agiangrant/scrollbar/geometry"
)

// Style selects the look of the scrollbar.
type Style uint8

const (
	// StyleClassic is the wide 90s desktop scrollbar with a knob in the handle.
	StyleClassic Style = iota

	// StyleModern is a thin line with a thin handle, inset from the edge.
	StyleModern
)

// String returns the config name of the style.
func (s Style) String() string {
	switch s {
	case StyleClassic:
		return "classic"
	case StyleModern:
		return "modern"
	default:
		return fmt.Sprintf("Style(%d)", uint8(s))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s Style) MarshalText() ([]byte, error) {
	switch s {
	case StyleClassic, StyleModern:
		return []byte(s.String()), nil
	default:
		return nil, fmt.Errorf("unknown scrollbar style %d", uint8(s))
	}
}

// UnmarshalText implements encoding.TextUnmarshaler. "default" is accepted
// as an alias for classic.
func (s *Style) UnmarshalText(text []byte) error {
	switch string(text) {
	case "classic", "default", "":
		*s = StyleClassic
	case "modern":
		*s = StyleModern
	default:
		return fmt.Errorf("unknown scrollbar style %q", text)
	}
	return nil
}

// ============================================================================
// Metrics
// ============================================================================

// TapAreaWidth is the width of the touchable overlay.
const TapAreaWidth float32 = 44

// Metrics are the per-style constants used by layout.
type Metrics struct {
	TrackWidth          float32
	HandleWidth         float32
	EdgeInset           float32
	MinimumHandleHeight float32

	// LayoutMarginRight is how far cell content should move left so it is
	// not covered by the scrollbar.
	LayoutMarginRight float32

	// VerticalInset keeps the track away from the top and bottom edges.
	VerticalInset geometry.Insets

	// Knob reports whether the handle carries a square grip.
	Knob bool
}

var metricsTable = map[Style]Metrics{
	StyleClassic: {
		TrackWidth:          20,
		HandleWidth:         20,
		EdgeInset:           0,
		MinimumHandleHeight: 64,
		LayoutMarginRight:   30,
		Knob:                true,
	},
	StyleModern: {
		TrackWidth:          2,
		HandleWidth:         4,
		EdgeInset:           7.5,
		MinimumHandleHeight: 4,
		LayoutMarginRight:   7.5 * 2,
		VerticalInset:       geometry.Insets{Top: 10, Bottom: 10},
	},
}

// MetricsFor returns the metrics of s. Unknown styles get the classic
// metrics.
func MetricsFor(s Style) Metrics {
	if m, ok := metricsTable[s]; ok {
		return m
	}
	return metricsTable[StyleClassic]
}

// ============================================================================
// Host Helpers
// ============================================================================

// AdjustedSeparatorInset returns insets with the right edge moved clear of
// the scrollbar, for list separators.
func (m Metrics) AdjustedSeparatorInset(insets geometry.Insets) geometry.Insets {
	insets.Right = m.EdgeInset * 2
	return insets
}

// AdjustedCellLayoutMargin returns margins with the right edge moved clear
// of the scrollbar, for list cell content.
func (m Metrics) AdjustedCellLayoutMargin(margins geometry.Insets) geometry.Insets {
	margins.Right = m.EdgeInset*2 + m.LayoutMarginRight
	return margins
}
