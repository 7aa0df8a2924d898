// Package scrollbar draws a draggable vertical scrollbar over a scroll
// surface, replacing the surface's native indicator.
//
// A ScrollBar keeps its handle in step with the surface's content offset and
// turns drags on the handle or track back into content offsets. All methods
// must be called from the goroutine that drives the surface, typically a
// runloop.Loop.
package scrollbar

import (
	"io"
	"time"

	"github.com/agiangrant/scrollbar/anim"
	"github.com/agiangrant/scrollbar/geometry"
	"github.com/agiangrant/scrollbar/gesture"
	"github.com/agiangrant/scrollbar/surface"
)

// ScrollBar is an overlay bound to at most one surface.
type ScrollBar struct {
	style   Style
	metrics Metrics

	insetForLargeTitles bool
	tapAreaWidth        float32
	tolerance           float32
	duration            time.Duration
	easing              anim.EasingFunc

	surface                surface.Surface
	cancelObserve          func()
	previousShowsIndicator bool

	// Model frames. frame is in surface content coordinates, track and
	// handle are overlay-local and knob is handle-local.
	frame  layer
	track  layer
	handle layer
	knob   layer
	hidden bool

	recognizer *gesture.Recognizer
	session    *DragSession
	feedback   Feedback
	animations *anim.Registry

	// set while running inside withAnimation
	animating bool
}

// Option configures a ScrollBar.
type Option func(*ScrollBar)

// WithFeedback sets the haptic generator. The default does nothing.
func WithFeedback(f Feedback) Option {
	return func(s *ScrollBar) {
		if f != nil {
			s.feedback = f
		}
	}
}

// WithAnimations makes the scrollbar run its animations on registry, so a
// run loop ticking that registry drives them.
func WithAnimations(registry *anim.Registry) Option {
	return func(s *ScrollBar) {
		if registry != nil {
			s.animations = registry
		}
	}
}

// WithConfig applies the [scrollbar] section of a config file. The style in
// cfg overrides the one passed to New.
func WithConfig(cfg ScrollBarConfig) Option {
	return func(s *ScrollBar) {
		s.style = cfg.Style
		s.metrics = MetricsFor(cfg.Style)
		s.insetForLargeTitles = cfg.InsetForLargeTitles
		if cfg.TapAreaWidth > 0 {
			s.tapAreaWidth = cfg.TapAreaWidth
		}
		if cfg.HandleTolerance >= 0 {
			s.tolerance = cfg.HandleTolerance
		}
		if cfg.AnimationMS >= 0 {
			s.duration = cfg.Animation()
		}
		s.easing = cfg.EasingFunc()
	}
}

// WithInsetForLargeTitles shortens the track while a large title pushes the
// content down.
func WithInsetForLargeTitles(enabled bool) Option {
	return func(s *ScrollBar) {
		s.insetForLargeTitles = enabled
	}
}

// New creates an unattached scrollbar.
func New(style Style, opts ...Option) *ScrollBar {
	s := &ScrollBar{
		style:        style,
		metrics:      MetricsFor(style),
		tapAreaWidth: TapAreaWidth,
		tolerance:    20,
		duration:     500 * time.Millisecond,
		easing:       anim.EaseSpring,
		feedback:     NoFeedback(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.animations == nil {
		s.animations = anim.NewRegistry()
	}
	s.recognizer = gesture.NewRecognizer(s.handleGesture)
	return s
}

// FromConfig creates a scrollbar from a loaded config file, including its
// haptics library. opts are applied after the config.
func FromConfig(cfg Config, opts ...Option) *ScrollBar {
	base := []Option{
		WithConfig(cfg.ScrollBar),
		WithFeedback(FeedbackFromConfig(cfg.Haptics)),
	}
	return New(cfg.ScrollBar.Style, append(base, opts...)...)
}

// Style returns the scrollbar's style.
func (s *ScrollBar) Style() Style { return s.style }

// Metrics returns the per-style layout constants.
func (s *ScrollBar) Metrics() Metrics { return s.metrics }

// Surface returns the attached surface, or nil.
func (s *ScrollBar) Surface() surface.Surface { return s.surface }

// Animations returns the registry the scrollbar animates on.
func (s *ScrollBar) Animations() *anim.Registry { return s.animations }

// Tick advances the scrollbar's animations. Hosts whose run loop already
// ticks the registry passed to WithAnimations do not call it.
func (s *ScrollBar) Tick(now time.Time) bool {
	return s.animations.Tick(now)
}

// Close releases the feedback generator when it holds native resources, such
// as a haptics library loaded by FromConfig. Drags after Close play no
// feedback.
func (s *ScrollBar) Close() error {
	c, ok := s.feedback.(io.Closer)
	s.feedback = NoFeedback()
	if !ok {
		return nil
	}
	return c.Close()
}

// AdjustedSeparatorInset moves a list separator's right edge clear of the
// scrollbar.
func (s *ScrollBar) AdjustedSeparatorInset(insets geometry.Insets) geometry.Insets {
	return s.metrics.AdjustedSeparatorInset(insets)
}

// AdjustedCellLayoutMargin moves a list cell's right margin clear of the
// scrollbar.
func (s *ScrollBar) AdjustedCellLayoutMargin(margins geometry.Insets) geometry.Insets {
	return s.metrics.AdjustedCellLayoutMargin(margins)
}

// ============================================================================
// Frames
// ============================================================================

// Frame implements surface.Overlay. It is the overlay rectangle in surface
// content coordinates after the latest layout.
func (s *ScrollBar) Frame() geometry.Rect { return s.frame.model }

// TrackFrame returns the track in overlay-local coordinates.
func (s *ScrollBar) TrackFrame() geometry.Rect { return s.track.model }

// HandleFrame returns the handle in overlay-local coordinates.
func (s *ScrollBar) HandleFrame() geometry.Rect { return s.handle.model }

// KnobFrame returns the knob in handle-local coordinates. It is empty for
// styles without a knob.
func (s *ScrollBar) KnobFrame() geometry.Rect { return s.knob.model }

// PresentedFrame returns the overlay rectangle as currently drawn, which
// lags Frame while an animation runs.
func (s *ScrollBar) PresentedFrame() geometry.Rect { return s.frame.presented }

// PresentedTrackFrame returns the track as currently drawn.
func (s *ScrollBar) PresentedTrackFrame() geometry.Rect { return s.track.presented }

// PresentedHandleFrame returns the handle as currently drawn.
func (s *ScrollBar) PresentedHandleFrame() geometry.Rect { return s.handle.presented }

// PresentedKnobFrame returns the knob as currently drawn.
func (s *ScrollBar) PresentedKnobFrame() geometry.Rect { return s.knob.presented }

// Hidden reports whether the content is too short to need a scrollbar.
func (s *ScrollBar) Hidden() bool { return s.hidden }

// ============================================================================
// Animated Frames
// ============================================================================

// layer holds a model value and the value currently presented. Outside an
// animation the two are equal.
type layer struct {
	model     geometry.Rect
	presented geometry.Rect
	anim      *anim.Animation
}

// withAnimation runs fn with every frame change it makes animated.
func (s *ScrollBar) withAnimation(fn func()) {
	prev := s.animating
	s.animating = true
	defer func() { s.animating = prev }()
	fn()
}

// setFrame updates l's model value. Inside withAnimation the presented value
// springs from where it is now toward the model; since each update reads the
// model, a later layout retargets the animation in flight.
func (s *ScrollBar) setFrame(l *layer, r geometry.Rect) {
	l.model = r

	if !s.animating {
		if l.anim == nil {
			l.presented = r
		}
		return
	}

	if l.presented == r && l.anim == nil {
		return
	}

	from := l.presented
	var a *anim.Animation
	a = s.animations.Animate().
		Key(l).
		Duration(s.duration).
		Easing(s.easing).
		OnComplete(func() {
			if l.anim == a {
				l.anim = nil
				l.presented = l.model
			}
		}).
		Custom(func(progress float64) {
			l.presented = from.Lerp(l.model, float32(progress))
		})
	l.anim = a
}

// settle drops any running animation on l and shows its model value.
func (l *layer) settle() {
	if l.anim != nil {
		l.anim.Cancel()
		l.anim = nil
	}
	l.presented = l.model
}
