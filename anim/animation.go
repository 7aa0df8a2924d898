// Package anim runs fire-and-forget property animations. A Registry is ticked
// once per frame by the run loop; animations never block input handling.
package anim

import (
	"math"
	"sync"
	"sync/atomic"
	"time"

	"github.com/agiangrant/scrollbar/geometry"
)

// AnimationID uniquely identifies an animation.
type AnimationID uint64

var nextAnimationID atomic.Uint64

func newAnimationID() AnimationID {
	return AnimationID(nextAnimationID.Add(1))
}

// EasingFunc defines how animation progress maps to value progress.
// Input t is 0-1 (time progress), output is 0-1 (value progress).
type EasingFunc func(t float64) float64

// Common easing functions
var (
	// EaseLinear - constant speed
	EaseLinear EasingFunc = func(t float64) float64 { return t }

	// EaseOutQuad - decelerate to zero
	EaseOutQuad EasingFunc = func(t float64) float64 { return t * (2 - t) }

	// EaseInOutQuad - accelerate then decelerate
	EaseInOutQuad EasingFunc = func(t float64) float64 {
		if t < 0.5 {
			return 2 * t * t
		}
		return -1 + (4-2*t)*t
	}

	// EaseOutCubic - smooth deceleration (good for UI)
	EaseOutCubic EasingFunc = func(t float64) float64 {
		t--
		return t*t*t + 1
	}

	// EaseSpring - critically damped spring with a gentle initial push, the
	// curve the scrollbar uses for its handle and rest animations.
	EaseSpring = Spring(1.0, 0.1)
)

// springStiffness sets how quickly a spring settles inside the animation's
// duration; at 10 a critically damped spring is within 0.1% of its target at
// t=1.
const springStiffness = 10.0

// Spring returns a damped-spring easing. damping is the damping ratio (1 is
// critical, below 1 overshoots) and velocity the initial velocity in units of
// the total distance per duration.
func Spring(damping, velocity float64) EasingFunc {
	omega := springStiffness
	return func(t float64) float64 {
		if t <= 0 {
			return 0
		}
		if t >= 1 {
			return 1
		}

		var displacement float64
		if damping >= 1 {
			displacement = (1 + (omega-velocity)*t) * math.Exp(-omega*t)
		} else {
			zeta := damping
			wd := omega * math.Sqrt(1-zeta*zeta)
			decay := math.Exp(-zeta * omega * t)
			displacement = decay * (math.Cos(wd*t) + (zeta*omega-velocity)/wd*math.Sin(wd*t))
		}
		return 1 - displacement
	}
}

// Animation represents an active animation.
type Animation struct {
	id         AnimationID
	key        any
	startTime  time.Time
	duration   time.Duration
	update     func(progress float64) // Called each frame with eased progress 0-1
	onComplete func()                 // Called when animation finishes
	easing     EasingFunc
	cancelled  atomic.Bool
}

// ID returns the animation's unique identifier.
func (a *Animation) ID() AnimationID {
	return a.id
}

// Cancel stops the animation. The last applied value stays in place.
func (a *Animation) Cancel() {
	a.cancelled.Store(true)
}

// IsCancelled returns whether the animation was cancelled.
func (a *Animation) IsCancelled() bool {
	return a.cancelled.Load()
}

// Registry manages active animations and reports when the loop needs to keep
// drawing frames.
type Registry struct {
	mu         sync.Mutex
	animations map[AnimationID]*Animation
	byKey      map[any]AnimationID
	now        func() time.Time

	// Callback when animation state changes (for the loop to know when to
	// switch between idle and frame-rate redraws)
	onActiveChange func(hasActive bool)
}

// NewRegistry creates a registry using the wall clock.
func NewRegistry() *Registry {
	return NewRegistryWithClock(time.Now)
}

// NewRegistryWithClock creates a registry that stamps animation start times
// with now. Tests pass a fake clock and drive Tick with the same times.
func NewRegistryWithClock(now func() time.Time) *Registry {
	return &Registry{
		animations: make(map[AnimationID]*Animation),
		byKey:      make(map[any]AnimationID),
		now:        now,
	}
}

// OnActiveChange sets the callback for when animations become active/inactive.
func (r *Registry) OnActiveChange(fn func(hasActive bool)) {
	r.mu.Lock()
	r.onActiveChange = fn
	r.mu.Unlock()
}

// Add registers a new animation. An animation with the same non-nil key
// replaces the one already running.
func (r *Registry) Add(anim *Animation) {
	r.mu.Lock()
	if anim.key != nil {
		if prev, ok := r.byKey[anim.key]; ok {
			if old := r.animations[prev]; old != nil {
				old.cancelled.Store(true)
				delete(r.animations, prev)
			}
		}
		r.byKey[anim.key] = anim.id
	}
	wasEmpty := len(r.animations) == 0
	r.animations[anim.id] = anim
	callback := r.onActiveChange
	r.mu.Unlock()

	// Notify if we went from no animations to having animations
	if wasEmpty && callback != nil {
		callback(true)
	}
}

// HasActive returns true if there are any running animations.
func (r *Registry) HasActive() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.animations) > 0
}

// Count returns the number of active animations.
func (r *Registry) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.animations)
}

// Tick updates all animations and removes completed ones.
// Called once per frame by the loop. Returns true if any animations are still active.
func (r *Registry) Tick(now time.Time) bool {
	r.mu.Lock()

	var toRemove []*Animation
	var toComplete []*Animation

	for _, anim := range r.animations {
		if anim.cancelled.Load() {
			toRemove = append(toRemove, anim)
			continue
		}

		elapsed := now.Sub(anim.startTime)
		if elapsed >= anim.duration {
			toRemove = append(toRemove, anim)
			toComplete = append(toComplete, anim)
			// Final update at 100%
			if anim.update != nil {
				anim.update(anim.easing(1.0))
			}
			continue
		}

		t := float64(elapsed) / float64(anim.duration)
		if t < 0 {
			t = 0
		}
		if anim.update != nil {
			anim.update(anim.easing(t))
		}
	}

	for _, anim := range toRemove {
		delete(r.animations, anim.id)
		if anim.key != nil && r.byKey[anim.key] == anim.id {
			delete(r.byKey, anim.key)
		}
	}

	hasActive := len(r.animations) > 0
	callback := r.onActiveChange
	r.mu.Unlock()

	// Call completion callbacks outside the lock
	for _, anim := range toComplete {
		if anim.onComplete != nil {
			anim.onComplete()
		}
	}

	// Notify if all animations finished
	if len(toRemove) > 0 && !hasActive && callback != nil {
		callback(false)
	}

	return hasActive
}

// ============================================================================
// Animation Builder API
// ============================================================================

// Builder provides a fluent API for creating animations.
type Builder struct {
	registry   *Registry
	key        any
	duration   time.Duration
	easing     EasingFunc
	onComplete func()
}

// Animate starts building an animation on r.
func (r *Registry) Animate() *Builder {
	return &Builder{
		registry: r,
		duration: 300 * time.Millisecond, // Default duration
		easing:   EaseOutCubic,           // Default easing (smooth UI feel)
	}
}

// Duration sets how long the animation runs.
func (b *Builder) Duration(d time.Duration) *Builder {
	b.duration = d
	return b
}

// Easing sets the easing function.
func (b *Builder) Easing(fn EasingFunc) *Builder {
	if fn != nil {
		b.easing = fn
	}
	return b
}

// Key makes the animation supersede any running animation with the same key.
func (b *Builder) Key(key any) *Builder {
	b.key = key
	return b
}

// OnComplete sets a callback for when the animation finishes. It is not
// called for cancelled or superseded animations.
func (b *Builder) OnComplete(fn func()) *Builder {
	b.onComplete = fn
	return b
}

// Custom creates an animation with a custom update function.
// The update function receives eased progress from 0-1.
func (b *Builder) Custom(update func(progress float64)) *Animation {
	anim := &Animation{
		id:         newAnimationID(),
		key:        b.key,
		startTime:  b.registry.now(),
		duration:   b.duration,
		easing:     b.easing,
		onComplete: b.onComplete,
		update:     update,
	}

	b.registry.Add(anim)
	return anim
}

// RectFromTo animates a rectangle between two values, handing every
// intermediate frame to set.
func (b *Builder) RectFromTo(from, to geometry.Rect, set func(geometry.Rect)) *Animation {
	return b.Custom(func(progress float64) {
		set(from.Lerp(to, float32(progress)))
	})
}

// ValueFromTo animates a scalar between two values.
func (b *Builder) ValueFromTo(from, to float32, set func(float32)) *Animation {
	return b.Custom(func(progress float64) {
		set(lerp(from, to, float32(progress)))
	})
}

// ============================================================================
// Helper Functions
// ============================================================================

// lerp linearly interpolates between two float32 values.
func lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}

// EasingByName returns the easing function for a given name.
// Returns nil if the name is unknown.
func EasingByName(name string) EasingFunc {
	switch name {
	case "linear":
		return EaseLinear
	case "ease-out":
		return EaseOutQuad
	case "ease", "ease-in-out":
		return EaseInOutQuad
	case "cubic":
		return EaseOutCubic
	case "spring", "":
		return EaseSpring
	default:
		return nil
	}
}
