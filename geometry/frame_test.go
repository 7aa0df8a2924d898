package geometry

import "testing"

func phoneSnapshot(offsetY float32) Snapshot {
	return Snapshot{
		Frame:         Rect{Width: 375, Height: 600},
		ContentSize:   Size{Width: 375, Height: 4400},
		ContentOffset: Point{Y: offsetY},
		SafeArea:      Insets{Top: 100, Bottom: 34},
		AdjustedInset: Insets{Top: 100, Bottom: 34},
	}
}

func TestOverlayFrame(t *testing.T) {
	modernInset := Insets{Top: 10, Bottom: 10}

	tests := []struct {
		name string
		in   OverlayInput
		want Rect
	}{
		{
			name: "resting at top",
			in: OverlayInput{
				Snapshot:      phoneSnapshot(-100),
				TapAreaWidth:  44,
				EdgeInset:     7.5,
				VerticalInset: modernInset,
			},
			want: Rect{X: 331, Y: 10, Width: 44, Height: 446},
		},
		{
			name: "scrolled content carries the overlay",
			in: OverlayInput{
				Snapshot:      phoneSnapshot(900),
				TapAreaWidth:  44,
				EdgeInset:     7.5,
				VerticalInset: modernInset,
			},
			want: Rect{X: 331, Y: 1010, Width: 44, Height: 446},
		},
		{
			name: "large title pull shortens the overlay",
			in: OverlayInput{
				Snapshot:            phoneSnapshot(-150),
				TapAreaWidth:        44,
				EdgeInset:           7.5,
				VerticalInset:       modernInset,
				InsetForLargeTitles: true,
			},
			want: Rect{X: 331, Y: 10, Width: 44, Height: 396},
		},
		{
			name: "large title ignored when disabled",
			in: OverlayInput{
				Snapshot:      phoneSnapshot(-150),
				TapAreaWidth:  44,
				EdgeInset:     7.5,
				VerticalInset: modernInset,
			},
			want: Rect{X: 331, Y: -40, Width: 44, Height: 446},
		},
		{
			name: "large title pulled past the viewport floors the height",
			in: OverlayInput{
				Snapshot:            phoneSnapshot(-700),
				TapAreaWidth:        44,
				EdgeInset:           7.5,
				VerticalInset:       modernInset,
				InsetForLargeTitles: true,
			},
			want: Rect{X: 331, Y: 10, Width: 44, Height: 0},
		},
		{
			name: "dragging freezes height and offset",
			in: OverlayInput{
				Snapshot:        phoneSnapshot(200),
				TapAreaWidth:    44,
				Dragging:        true,
				OriginalHeight:  300,
				OriginalYOffset: 40,
			},
			want: Rect{X: 331, Y: 240, Width: 44, Height: 300},
		},
		{
			name: "wide edge inset moves the overlay left",
			in: OverlayInput{
				Snapshot:     phoneSnapshot(-100),
				TapAreaWidth: 44,
				EdgeInset:    30,
			},
			want: Rect{X: 323, Y: 0, Width: 44, Height: 466},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := OverlayFrame(tt.in)
			if got != tt.want {
				t.Errorf("OverlayFrame() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestOverlayFrameSafeAreaRight(t *testing.T) {
	s := phoneSnapshot(-100)
	s.Frame.Width = 812
	s.SafeArea.Right = 44
	got := OverlayFrame(OverlayInput{Snapshot: s, TapAreaWidth: 44, EdgeInset: 30})
	if got.X != 716 {
		t.Errorf("X = %v, want 716", got.X)
	}
}

func TestTrackFrame(t *testing.T) {
	classic := TrackFrame(Size{Width: 44, Height: 446}, 20, 0)
	if want := (Rect{X: 24, Width: 20, Height: 446}); classic != want {
		t.Errorf("classic track = %+v, want %+v", classic, want)
	}

	modern := TrackFrame(Size{Width: 44, Height: 446}, 2, 7.5)
	if want := (Rect{X: 35, Width: 2, Height: 446}); modern != want {
		t.Errorf("modern track = %+v, want %+v", modern, want)
	}
}

func TestPreliminaryHandleFrame(t *testing.T) {
	track := Rect{X: 35, Width: 2, Height: 446}
	got := PreliminaryHandleFrame(track, 4, 120)
	if want := (Rect{X: 34, Width: 4, Height: 120}); got != want {
		t.Errorf("handle = %+v, want %+v", got, want)
	}
}

func TestKnobFrameCentred(t *testing.T) {
	got := KnobFrame(Rect{X: 24, Y: 90, Width: 20, Height: 250})
	if want := (Rect{X: 2, Y: 117, Width: 16, Height: 16}); got != want {
		t.Errorf("knob = %+v, want %+v", got, want)
	}
}

func TestRectIntegral(t *testing.T) {
	got := Rect{X: 0.5, Y: 1.2, Width: 10, Height: 10}.Integral()
	if want := (Rect{X: 0, Y: 1, Width: 11, Height: 11}); got != want {
		t.Errorf("Integral() = %+v, want %+v", got, want)
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 10, Width: 20, Height: 20}
	if !r.Contains(Point{X: 10, Y: 29}) {
		t.Error("expected top-left edge to be inside")
	}
	if r.Contains(Point{X: 30, Y: 15}) {
		t.Error("expected right edge to be outside")
	}
}
