package anim

import (
	"time"

	"github.com/agiangrant/scrollbar/geometry"
)

// ============================================================================
// Scroll Animation Utilities
// ============================================================================

// Scroller is anything with a settable content offset.
type Scroller interface {
	ContentOffset() geometry.Point
	SetContentOffset(geometry.Point)
}

// ScrollToConfig configures a scroll animation.
type ScrollToConfig struct {
	Duration   time.Duration // Animation duration (default: 250ms)
	Easing     EasingFunc    // Easing function (default: EaseOutCubic)
	OnComplete func()        // Called when animation completes
}

// DefaultScrollToConfig returns sensible defaults for scroll animations.
func DefaultScrollToConfig() ScrollToConfig {
	return ScrollToConfig{
		Duration: 250 * time.Millisecond,
		Easing:   EaseOutCubic,
	}
}

// ScrollTo animates target's vertical content offset to toY. A second
// ScrollTo on the same target takes over from wherever the first one got to.
// Returns nil if target is already at toY.
func ScrollTo(registry *Registry, target Scroller, toY float32, cfg ScrollToConfig) *Animation {
	if registry == nil || target == nil {
		return nil
	}

	// Apply defaults
	if cfg.Duration == 0 {
		cfg.Duration = 250 * time.Millisecond
	}
	if cfg.Easing == nil {
		cfg.Easing = EaseOutCubic
	}

	from := target.ContentOffset()
	if from.Y == toY {
		return nil
	}

	builder := registry.Animate().
		Key(target).
		Duration(cfg.Duration).
		Easing(cfg.Easing)

	if cfg.OnComplete != nil {
		builder = builder.OnComplete(cfg.OnComplete)
	}

	return builder.ValueFromTo(from.Y, toY, func(y float32) {
		target.SetContentOffset(geometry.Point{X: from.X, Y: y})
	})
}
