package scrollbar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agiangrant/scrollbar/anim"
	"github.com/agiangrant/scrollbar/geometry"
	"github.com/agiangrant/scrollbar/surface"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) time.Time {
	c.t = c.t.Add(d)
	return c.t
}

// newTestSurface returns a 320x500 view with no insets.
func newTestSurface(contentHeight float32) *surface.View {
	v := surface.NewView(geometry.Rect{Width: 320, Height: 500})
	v.SetContentSize(geometry.Size{Width: 320, Height: contentHeight})
	return v
}

func newTestBar(style Style, opts ...Option) (*ScrollBar, *fakeClock) {
	clock := &fakeClock{t: time.Unix(2000, 0)}
	reg := anim.NewRegistryWithClock(clock.now)
	return New(style, append([]Option{WithAnimations(reg)}, opts...)...), clock
}

func TestAttachIsIdempotent(t *testing.T) {
	v := newTestSurface(1000)
	sb, _ := newTestBar(StyleClassic)

	sb.Attach(v)
	sb.Attach(v)

	assert.False(t, v.ShowsVerticalIndicator())
	assert.Equal(t, 1, v.ObserverCount())
	assert.Len(t, v.Overlays(), 1)
	assert.Same(t, sb, For(v))

	sb.Detach()
	assert.True(t, v.ShowsVerticalIndicator(), "indicator saved after suppression")
	assert.Equal(t, 0, v.ObserverCount())
	assert.Empty(t, v.Overlays())
	assert.Nil(t, For(v))
	assert.Nil(t, sb.Surface())

	// Detaching again is a no-op.
	sb.Detach()
	Detach(v)
}

func TestAttachMovesBetweenSurfaces(t *testing.T) {
	a := newTestSurface(1000)
	a.SetShowsVerticalIndicator(false)
	b := newTestSurface(2000)

	sb, _ := newTestBar(StyleModern)
	Attach(a, sb)
	Attach(b, sb)

	assert.False(t, a.ShowsVerticalIndicator(), "a restored to its pre-attach value")
	assert.False(t, b.ShowsVerticalIndicator())
	assert.Nil(t, For(a))
	assert.Same(t, sb, For(b))
	assert.Equal(t, 0, a.ObserverCount())
	assert.Equal(t, 1, b.ObserverCount())
	assert.Empty(t, a.Overlays())

	// Only b's changes drive layout now.
	before := sb.HandleFrame()
	a.SetContentOffset(geometry.Point{Y: 300})
	assert.Equal(t, before, sb.HandleFrame())
	b.SetContentOffset(geometry.Point{Y: 300})
	assert.NotEqual(t, before, sb.HandleFrame())
}

func TestAttachReplacesOtherScrollBar(t *testing.T) {
	v := newTestSurface(1000)
	first, _ := newTestBar(StyleClassic)
	second, _ := newTestBar(StyleModern)

	first.Attach(v)
	second.Attach(v)

	assert.Nil(t, first.Surface())
	assert.Same(t, second, For(v))
	assert.Equal(t, 1, v.ObserverCount())
	assert.False(t, v.ShowsVerticalIndicator())

	second.Detach()
	assert.True(t, v.ShowsVerticalIndicator())
}

func TestInitialLayoutClassic(t *testing.T) {
	v := newTestSurface(1000)
	sb, _ := newTestBar(StyleClassic)
	sb.Attach(v)

	require.False(t, sb.Hidden())
	assert.Equal(t, geometry.Rect{X: 276, Y: 0, Width: 44, Height: 500}, sb.Frame())
	assert.Equal(t, geometry.Rect{X: 24, Y: 0, Width: 20, Height: 500}, sb.TrackFrame())
	assert.Equal(t, geometry.Rect{X: 24, Y: 0, Width: 20, Height: 250}, sb.HandleFrame())
	assert.Equal(t, geometry.Rect{X: 2, Y: 117, Width: 16, Height: 16}, sb.KnobFrame())
	assert.Equal(t, sb.HandleFrame(), sb.PresentedHandleFrame())
}

func TestLayoutFollowsContentOffset(t *testing.T) {
	v := newTestSurface(1000)
	sb, _ := newTestBar(StyleClassic)
	sb.Attach(v)

	v.SetContentOffset(geometry.Point{Y: 250})
	assert.Equal(t, float32(125), sb.HandleFrame().Y)
	assert.Equal(t, float32(250), sb.Frame().Y, "overlay scrolls with the content")

	// Overscroll past the top shrinks the handle.
	v.SetContentOffset(geometry.Point{Y: -30})
	assert.Equal(t, float32(220), sb.HandleFrame().Height)
	assert.Equal(t, float32(0), sb.HandleFrame().Y)

	// Past the bottom the handle shrinks and stays pinned.
	v.SetContentOffset(geometry.Point{Y: 540})
	h := sb.HandleFrame()
	assert.Equal(t, float32(210), h.Height)
	assert.Equal(t, float32(500), h.MaxY())
}

func TestHiddenWhenContentFits(t *testing.T) {
	tests := []struct {
		name    string
		content float32
		hidden  bool
	}{
		{"empty", 0, true},
		{"shorter", 400, true},
		{"exact", 500, true},
		{"overflowing", 1000, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := newTestSurface(tt.content)
			sb, _ := newTestBar(StyleClassic)
			sb.Attach(v)
			assert.Equal(t, tt.hidden, sb.Hidden())
		})
	}
}

func TestBecomesVisibleWhenContentGrows(t *testing.T) {
	v := newTestSurface(300)
	sb, _ := newTestBar(StyleModern)
	sb.Attach(v)
	require.True(t, sb.Hidden())

	v.SetContentSize(geometry.Size{Width: 320, Height: 5000})
	assert.False(t, sb.Hidden())
	assert.NotZero(t, sb.HandleFrame().Height)
}

func TestHiddenWhenOverlayCollapses(t *testing.T) {
	tests := []struct {
		name        string
		style       Style
		viewport    float32
		safeArea    geometry.Insets
		offset      float32
		largeTitles bool
		hidden      bool
	}{
		{"insets taller than viewport", StyleModern, 100, geometry.Insets{Top: 60, Bottom: 50}, -60, false, true},
		{"large title pulled past viewport", StyleModern, 600, geometry.Insets{Top: 100, Bottom: 34}, -700, true, true},
		{"overlay shorter than classic handle", StyleClassic, 500, geometry.Insets{Top: 200, Bottom: 240}, -200, false, true},
		{"handle fills overlay", StyleModern, 100, geometry.Insets{Top: 30, Bottom: 46}, -30, false, true},
		{"room to travel", StyleModern, 600, geometry.Insets{Top: 100, Bottom: 34}, -100, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := surface.NewView(geometry.Rect{Width: 375, Height: tt.viewport})
			v.SetContentSize(geometry.Size{Width: 375, Height: 4400})
			v.SetSafeArea(tt.safeArea)
			v.SetContentOffset(geometry.Point{Y: tt.offset})

			sb, _ := newTestBar(tt.style, WithInsetForLargeTitles(tt.largeTitles))
			sb.Attach(v)

			assert.Equal(t, tt.hidden, sb.Hidden())
			if !tt.hidden {
				frame, handle := sb.Frame(), sb.HandleFrame()
				assert.Greater(t, frame.Height, float32(0))
				assert.GreaterOrEqual(t, handle.Y, float32(0))
				assert.LessOrEqual(t, handle.MaxY(), frame.Height)
			}
		})
	}
}

func TestRelayoutBringsOverlayToFront(t *testing.T) {
	v := newTestSurface(1000)
	sb, _ := newTestBar(StyleClassic)
	sb.Attach(v)

	other := &stubOverlay{}
	v.AddOverlay(other)
	v.SetContentOffset(geometry.Point{Y: 10})

	overlays := v.Overlays()
	require.Len(t, overlays, 2)
	assert.Equal(t, surface.Overlay(sb), overlays[1])
}

func TestModernLayoutWithInsets(t *testing.T) {
	v := surface.NewView(geometry.Rect{Width: 375, Height: 600})
	v.SetContentSize(geometry.Size{Width: 375, Height: 3000})
	v.SetSafeArea(geometry.Insets{Top: 100, Bottom: 34})
	v.SetContentOffset(geometry.Point{Y: -100})

	sb, _ := newTestBar(StyleModern)
	sb.Attach(v)

	assert.Equal(t, geometry.Rect{X: 331, Y: 10, Width: 44, Height: 446}, sb.Frame())
	assert.Equal(t, geometry.Rect{X: 35, Y: 0, Width: 2, Height: 446}, sb.TrackFrame())
	assert.Equal(t, float32(0), sb.HandleFrame().Y)
	assert.Zero(t, sb.KnobFrame(), "modern style has no knob")
}

func TestHostHelpers(t *testing.T) {
	classic := New(StyleClassic)
	modern := New(StyleModern)
	in := geometry.Insets{Top: 1, Left: 16, Bottom: 2, Right: 16}

	assert.Equal(t, geometry.Insets{Top: 1, Left: 16, Bottom: 2, Right: 0}, classic.AdjustedSeparatorInset(in))
	assert.Equal(t, geometry.Insets{Top: 1, Left: 16, Bottom: 2, Right: 15}, modern.AdjustedSeparatorInset(in))
	assert.Equal(t, float32(30), classic.AdjustedCellLayoutMargin(in).Right)
	assert.Equal(t, float32(30), modern.AdjustedCellLayoutMargin(in).Right)
}

type stubOverlay struct{}

func (*stubOverlay) Frame() geometry.Rect { return geometry.Rect{} }
