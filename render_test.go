package plot

import (
	"math"
	"testing"
)

func TestFormatTick(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{4.0, "4"},
		{4.5, "4.5"},
		{-6, "-6"},
		{0, "0"},
		{-2.25, "-2.25"},
		{12, "12"},
	}
	for _, tc := range cases {
		if got := formatTick(tc.in); got != tc.want {
			t.Errorf("formatTick(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestAxisMarksLabelsWin(t *testing.T) {
	marks := axisMarks([]float64{1, 2, 3}, []AxisLabel{{Tick: 7, Text: "Jul"}, {Tick: 14, Text: "Aug"}})
	if len(marks) != 2 {
		t.Fatalf("len(marks) = %d, want 2 (labels replace ticks)", len(marks))
	}
	if marks[0].text != "Jul" || marks[0].tick != 7 {
		t.Errorf("marks[0] = %+v, want Jul@7", marks[0])
	}

	marks = axisMarks([]float64{2, 4.5}, nil)
	if len(marks) != 2 || marks[0].text != "2" || marks[1].text != "4.5" {
		t.Errorf("numeric marks = %+v", marks)
	}
}

func TestSamplePathParabola(t *testing.T) {
	m := NewMapper(500, 400, testScene(t, -5, 5, -2, 20))
	path := samplePath(func(x float64) float64 { return x * x }, m)

	// The parabola is finite and inside the near-screen band across the
	// whole range: one subpath, sampled at every X from -1 to W.
	sps := path.Subpaths()
	if len(sps) != 1 {
		t.Fatalf("len(subpaths) = %d, want 1", len(sps))
	}
	if got, want := len(sps[0]), 502; got != want {
		t.Errorf("sample count = %d, want %d", got, want)
	}

	// No segment may jump more than the near-screen band allows.
	for i := 1; i < len(sps[0]); i++ {
		if d := math.Abs(sps[0][i].Y - sps[0][i-1].Y); d > 2*400 {
			t.Errorf("segment %d spans %g pixels vertically", i, d)
		}
	}
}

func TestSamplePathBreaksAtSingularity(t *testing.T) {
	m := NewMapper(400, 300, testScene(t, -2, 2, -10, 10))
	path := samplePath(func(x float64) float64 { return 1 / x }, m)

	sps := path.Subpaths()
	if len(sps) < 2 {
		t.Fatalf("len(subpaths) = %d, want >= 2 (break at x=0)", len(sps))
	}

	// The two branches must not be bridged: every subpath stays on one
	// side of the singularity.
	mid := float64(m.ScreenX(0))
	for i, sp := range sps {
		left, right := false, false
		for _, pt := range sp {
			if pt.X < mid {
				left = true
			}
			if pt.X > mid {
				right = true
			}
		}
		if left && right {
			t.Errorf("subpath %d crosses the singularity", i)
		}
	}
}

func TestSamplePathDropsNonFinite(t *testing.T) {
	m := NewMapper(100, 100, testScene(t, -1, 1, -1, 1))
	path := samplePath(func(x float64) float64 {
		if x < 0 {
			return math.NaN()
		}
		return 0
	}, m)

	for _, sp := range path.Subpaths() {
		for _, pt := range sp {
			if pt.X < float64(m.ScreenX(0)) {
				t.Fatalf("sample at screen X %g kept despite NaN result", pt.X)
			}
		}
	}
}

func TestNearScreen(t *testing.T) {
	if !nearScreen(0, 100) || !nearScreen(200, 100) || !nearScreen(-200, 100) {
		t.Error("band edges should be near-screen")
	}
	if nearScreen(201, 100) || nearScreen(-201, 100) {
		t.Error("outside the band should not be near-screen")
	}
}

func TestPathSegments(t *testing.T) {
	p := NewPath()
	if !p.IsEmpty() {
		t.Error("new path not empty")
	}
	p.MoveTo(0, 0)
	p.LineTo(1, 0)
	p.LineTo(2, 0)
	p.MoveTo(10, 10)
	p.LineTo(11, 10)
	if got := p.SegmentCount(); got != 3 {
		t.Errorf("SegmentCount = %d, want 3", got)
	}
	if len(p.Subpaths()) != 2 {
		t.Errorf("len(Subpaths) = %d, want 2", len(p.Subpaths()))
	}

	// LineTo on an empty path starts a subpath implicitly.
	q := NewPath()
	q.LineTo(5, 5)
	if len(q.Subpaths()) != 1 {
		t.Errorf("implicit subpath not created")
	}
}
