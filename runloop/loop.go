// Package runloop provides the single goroutine that owns all scrollbar and
// surface state. Other goroutines hand work to it with Post; the loop drains
// posted work, then ticks animations and the frame callback at a fixed rate.
package runloop

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"github.com/agiangrant/scrollbar/anim"
)

// ErrQueueFull is returned by Post when the work queue is at capacity.
var ErrQueueFull = errors.New("run loop queue full")

// Config configures the loop behavior.
type Config struct {
	// TargetFPS is the desired frames per second (default: 60).
	TargetFPS int

	// QueueSize bounds the number of posted functions waiting for the next
	// drain (default: 256).
	QueueSize int
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		TargetFPS: 60,
		QueueSize: 256,
	}
}

// Frame provides context for each loop iteration.
type Frame struct {
	// Number is the monotonically increasing frame counter.
	Number uint64

	// DeltaTime is seconds since the previous frame.
	DeltaTime float64

	// Time is seconds since loop start.
	Time float64

	// Animating reports whether any animation is still running after this
	// frame's tick.
	Animating bool
}

// Stats contains loop counters.
type Stats struct {
	FrameCount uint64
	Posted     uint64
	Dropped    uint64
	TargetFPS  int
}

// Loop is the main-thread executor.
type Loop struct {
	config     Config
	animations *anim.Registry
	pending    chan func()
	onFrame    func(Frame)

	running    atomic.Bool
	paused     atomic.Bool
	frameCount atomic.Uint64
	posted     atomic.Uint64
	dropped    atomic.Uint64

	startTime     time.Time
	lastFrameTime time.Time
}

// New creates a loop that ticks animations on every frame.
func New(config Config, animations *anim.Registry) *Loop {
	if config.TargetFPS <= 0 {
		config.TargetFPS = 60
	}
	if config.QueueSize <= 0 {
		config.QueueSize = 256
	}
	if animations == nil {
		animations = anim.NewRegistry()
	}
	return &Loop{
		config:     config,
		animations: animations,
		pending:    make(chan func(), config.QueueSize),
	}
}

// Animations returns the registry ticked by this loop.
func (l *Loop) Animations() *anim.Registry {
	return l.animations
}

// OnFrame sets the callback invoked after each frame's animation tick.
// Must be set before Run.
func (l *Loop) OnFrame(fn func(Frame)) {
	l.onFrame = fn
}

// Post queues fn to run on the loop goroutine. It never blocks; when the
// queue is full fn is dropped and ErrQueueFull returned. Safe to call from
// any goroutine.
func (l *Loop) Post(fn func()) error {
	select {
	case l.pending <- fn:
		l.posted.Add(1)
		return nil
	default:
		l.dropped.Add(1)
		return ErrQueueFull
	}
}

// Drain runs every queued function. It must be called from the loop
// goroutine; Run calls it at the start of each frame. Functions posted while
// draining run in the same drain.
func (l *Loop) Drain() int {
	n := 0
	for {
		select {
		case fn := <-l.pending:
			fn()
			n++
		default:
			return n
		}
	}
}

// Run drives the loop until ctx is done. Posted work is drained both as it
// arrives and at the top of every frame.
func (l *Loop) Run(ctx context.Context) error {
	if !l.running.CompareAndSwap(false, true) {
		return errors.New("run loop already running")
	}
	defer l.running.Store(false)

	ticker := time.NewTicker(time.Second / time.Duration(l.config.TargetFPS))
	defer ticker.Stop()

	l.startTime = time.Now()
	l.lastFrameTime = l.startTime

	for {
		select {
		case <-ctx.Done():
			l.Drain()
			return ctx.Err()
		case fn := <-l.pending:
			fn()
		case now := <-ticker.C:
			l.Step(now)
		}
	}
}

// Step runs a single frame at now: drain, tick animations, then call the
// frame callback. Run calls it on every ticker fire; tests call it directly.
func (l *Loop) Step(now time.Time) Frame {
	l.Drain()

	if l.startTime.IsZero() {
		l.startTime = now
		l.lastFrameTime = now
	}

	frame := Frame{
		Number:    l.frameCount.Add(1),
		DeltaTime: now.Sub(l.lastFrameTime).Seconds(),
		Time:      now.Sub(l.startTime).Seconds(),
	}
	l.lastFrameTime = now

	if l.paused.Load() {
		frame.Animating = l.animations.HasActive()
		return frame
	}

	frame.Animating = l.animations.Tick(now)
	if l.onFrame != nil {
		l.onFrame(frame)
	}
	return frame
}

// Pause stops animation ticks and frame callbacks. Posted work still runs.
func (l *Loop) Pause() {
	l.paused.Store(true)
}

// Resume resumes a paused loop.
func (l *Loop) Resume() {
	l.paused.Store(false)
}

// IsPaused returns whether the loop is paused.
func (l *Loop) IsPaused() bool {
	return l.paused.Load()
}

// IsRunning returns whether Run is active.
func (l *Loop) IsRunning() bool {
	return l.running.Load()
}

// Stats returns loop statistics.
func (l *Loop) Stats() Stats {
	return Stats{
		FrameCount: l.frameCount.Load(),
		Posted:     l.posted.Load(),
		Dropped:    l.dropped.Load(),
		TargetFPS:  l.config.TargetFPS,
	}
}
