package plot

import (
	"errors"
	"testing"
)

func TestBuilderDefaults(t *testing.T) {
	s, err := NewSceneBuilder().Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if s.BackgroundColor() != White {
		t.Errorf("background = %+v, want White", s.BackgroundColor())
	}
	if s.AxesColor() != Black {
		t.Errorf("axes color = %+v, want Black", s.AxesColor())
	}

	xMin, xMax, yMin, yMax := s.WorldCoordinates()
	if xMin != -10 || xMax != 10 || yMin != -10 || yMax != 10 {
		t.Errorf("viewport = [%g,%g]x[%g,%g], want [-10,10]x[-10,10]", xMin, xMax, yMin, yMax)
	}

	ax, ay := s.Axes()
	if ax != 0 || ay != 0 {
		t.Errorf("axis origin = (%g,%g), want (0,0)", ax, ay)
	}

	want := []float64{-8, -6, -4, -2, 2, 4, 6, 8}
	for _, ticks := range [][]float64{s.XTicks(), s.YTicks()} {
		if len(ticks) != len(want) {
			t.Fatalf("ticks = %v, want %v", ticks, want)
		}
		for i := range want {
			if ticks[i] != want[i] {
				t.Fatalf("ticks = %v, want %v", ticks, want)
			}
		}
	}

	if len(s.XLabels()) != 0 || len(s.YLabels()) != 0 {
		t.Errorf("default scene has labels: %v / %v", s.XLabels(), s.YLabels())
	}
}

func TestBuilderChaining(t *testing.T) {
	b := NewSceneBuilder()
	got := b.
		SetWorldCoordinates(0, 1, 0, 1).
		SetAxes(0.5, 0.5).
		AddFunction(func(x float64) float64 { return x }).
		AddCircle(C(0.5, 0.5, 0.1))
	if got != b {
		t.Error("chained calls did not return the same builder")
	}
}

func TestBuilderColorCapturedAtCallTime(t *testing.T) {
	s, err := NewSceneBuilder().
		AddFunction(func(x float64) float64 { return x }).
		SetFunctionColor(Red).
		AddFunction(func(x float64) float64 { return -x }).
		SetFunctionColor(Blue). // must not recolor earlier elements
		Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	fns := s.Functions()
	if len(fns) != 2 {
		t.Fatalf("len(functions) = %d, want 2", len(fns))
	}
	if fns[0].Color != Black {
		t.Errorf("first function color = %+v, want Black", fns[0].Color)
	}
	if fns[1].Color != Red {
		t.Errorf("second function color = %+v, want Red", fns[1].Color)
	}
}

func TestBuilderSnapshots(t *testing.T) {
	b := NewSceneBuilder().AddFunction(func(x float64) float64 { return x })

	first, err := b.Build()
	if err != nil {
		t.Fatalf("first Build failed: %v", err)
	}

	b.AddFunction(func(x float64) float64 { return x * x })
	second, err := b.Build()
	if err != nil {
		t.Fatalf("second Build failed: %v", err)
	}

	if len(first.Functions()) != 1 {
		t.Errorf("first snapshot has %d functions, want 1 (mutated after Build?)", len(first.Functions()))
	}
	if len(second.Functions()) != 2 {
		t.Errorf("second snapshot has %d functions, want 2", len(second.Functions()))
	}
}

func TestBuilderCopiesPointInput(t *testing.T) {
	pts := []WorldPoint{{X: 1, Y: 2}, {X: 3, Y: 4}}
	b := NewSceneBuilder().AddPoints(pts).AddLineGraph(pts)
	pts[0] = WorldPoint{X: 99, Y: 99} // caller keeps ownership

	s, err := b.Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if got := s.Points()[0].Points[0]; got != Pt(1, 2) {
		t.Errorf("scatter point = %+v, caller mutation leaked in", got)
	}
	if got := s.LineGraphs()[0].Points[0]; got != Pt(1, 2) {
		t.Errorf("line graph point = %+v, caller mutation leaked in", got)
	}
}

func TestBuildRejectsInvalidViewport(t *testing.T) {
	cases := []struct {
		name                   string
		xMin, xMax, yMin, yMax float64
	}{
		{"x reversed", 10, -10, -10, 10},
		{"x collapsed", 3, 3, -10, 10},
		{"y reversed", -10, 10, 10, -10},
		{"y collapsed", -10, 10, 0, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewSceneBuilder().
				SetWorldCoordinates(tc.xMin, tc.xMax, tc.yMin, tc.yMax).
				Build()
			if !errors.Is(err, ErrInvalidViewport) {
				t.Errorf("err = %v, want ErrInvalidViewport", err)
			}
		})
	}
}

func TestBuildRejectsEmptyLineGraph(t *testing.T) {
	_, err := NewSceneBuilder().AddLineGraph(nil).Build()
	if !errors.Is(err, ErrEmptyLineGraph) {
		t.Errorf("err = %v, want ErrEmptyLineGraph", err)
	}

	// Empty scatter sets are legal no-ops.
	if _, err := NewSceneBuilder().AddPoints(nil).Build(); err != nil {
		t.Errorf("empty scatter set rejected: %v", err)
	}
}

func TestPointNormalizationOption(t *testing.T) {
	pts := []WorldPoint{{X: 3, Y: 1}, {X: 1, Y: 2}, {X: 3, Y: 1}, {X: 1, Y: 1}}

	// Default: insertion order, duplicates kept.
	s := NewSceneBuilder().AddPoints(pts).MustBuild()
	got := s.Points()[0].Points
	if len(got) != 4 || got[0] != Pt(3, 1) {
		t.Errorf("unnormalized points = %v, want input order", got)
	}

	// Opt-in: sorted lexicographically, deduplicated.
	s = NewSceneBuilder(WithPointNormalization()).AddPoints(pts).MustBuild()
	got = s.Points()[0].Points
	want := []WorldPoint{{X: 1, Y: 1}, {X: 1, Y: 2}, {X: 3, Y: 1}}
	if len(got) != len(want) {
		t.Fatalf("normalized points = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("normalized points = %v, want %v", got, want)
		}
	}

	// Line graphs keep their order either way.
	s = NewSceneBuilder(WithPointNormalization()).AddLineGraph(pts).MustBuild()
	got = s.LineGraphs()[0].Points
	if len(got) != 4 || got[0] != Pt(3, 1) {
		t.Errorf("line graph points normalized: %v", got)
	}
}

func TestMustBuildPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustBuild did not panic on invalid viewport")
		}
	}()
	NewSceneBuilder().SetWorldCoordinates(1, 0, 0, 1).MustBuild()
}

func TestWorldPointLess(t *testing.T) {
	if !Pt(1, 5).Less(Pt(2, 0)) {
		t.Error("(1,5) should order before (2,0)")
	}
	if !Pt(1, 1).Less(Pt(1, 2)) {
		t.Error("(1,1) should order before (1,2)")
	}
	if Pt(1, 1).Less(Pt(1, 1)) {
		t.Error("a point must not order before itself")
	}
}
