package plot

import (
	"errors"
	"fmt"
	"slices"
)

// Errors returned by SceneBuilder.Build.
var (
	// ErrInvalidViewport is returned when the world viewport is degenerate
	// (xMin >= xMax or yMin >= yMax). A degenerate viewport would make the
	// coordinate mapping divide by zero or invert, so it is rejected at
	// build time rather than discovered mid-draw.
	ErrInvalidViewport = errors.New("plot: invalid world viewport")

	// ErrEmptyLineGraph is returned when a line graph was added with no
	// points. An empty polyline has no defined start point.
	ErrEmptyLineGraph = errors.New("plot: empty line graph point set")
)

// BuilderOption configures a SceneBuilder at creation time.
type BuilderOption func(*SceneBuilder)

// WithPointNormalization makes Build sort each scatter point set
// lexicographically (X first, then Y) and drop exact duplicates.
//
// Normalization is off by default: scatter input is rendered in the order
// given. Line graphs are never normalized — their point order is meaning.
func WithPointNormalization() BuilderOption {
	return func(b *SceneBuilder) {
		b.normalizePoints = true
	}
}

// SceneBuilder accumulates scene elements and view configuration, then
// produces an immutable [Scene]. All methods return the builder itself so
// calls can be chained.
//
// The zero-argument appenders (AddFunction, AddPoints, ...) use the current
// default color for their category, captured at call time: a later
// Set*Color call does not retroactively recolor elements already added.
//
// Build does not reset the builder. It may be mutated further and rebuilt;
// each Build returns an independent snapshot.
//
// A SceneBuilder is not safe for concurrent use.
type SceneBuilder struct {
	functions []ColoredFunction
	points    []ColoredPointSet
	lines     []ColoredPointSet
	circles   []ColoredCircle

	background    RGBA
	axesColor     RGBA
	functionColor RGBA
	pointColor    RGBA
	circleColor   RGBA

	xMin, xMax float64
	yMin, yMax float64
	axisX      float64
	axisY      float64

	xTicks, yTicks   []float64
	xLabels, yLabels []AxisLabel

	normalizePoints bool
}

// defaultTicks is the tick set applied to both axes of a new builder.
// Zero is omitted: a tick at the axis origin would sit on the crossing.
var defaultTicks = []float64{-8, -6, -4, -2, 2, 4, 6, 8}

// NewSceneBuilder creates a builder with default configuration: white
// background, black axes and elements, world viewport [-10,10]x[-10,10],
// axis origin (0,0), ticks at every even coordinate except zero, no labels.
func NewSceneBuilder(opts ...BuilderOption) *SceneBuilder {
	b := &SceneBuilder{
		background:    White,
		axesColor:     Black,
		functionColor: Black,
		pointColor:    Black,
		circleColor:   Black,
		xMin:          -10,
		xMax:          10,
		yMin:          -10,
		yMax:          10,
		xTicks:        slices.Clone(defaultTicks),
		yTicks:        slices.Clone(defaultTicks),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// AddFunction appends a sampled curve drawn in the current default
// function color.
func (b *SceneBuilder) AddFunction(fn Function) *SceneBuilder {
	return b.AddFunctionWith(fn, b.functionColor)
}

// AddFunctionWith appends a sampled curve drawn in the given color.
func (b *SceneBuilder) AddFunctionWith(fn Function, col RGBA) *SceneBuilder {
	b.functions = append(b.functions, ColoredFunction{Fn: fn, Color: col})
	return b
}

// AddPoints appends a scatter set drawn in the current default point color.
func (b *SceneBuilder) AddPoints(pts []WorldPoint) *SceneBuilder {
	return b.AddPointsWith(pts, b.pointColor)
}

// AddPointsWith appends a scatter set drawn in the given color.
// The slice is copied; the caller keeps ownership of its argument.
func (b *SceneBuilder) AddPointsWith(pts []WorldPoint, col RGBA) *SceneBuilder {
	b.points = append(b.points, ColoredPointSet{Points: slices.Clone(pts), Color: col})
	return b
}

// AddLineGraph appends a polyline drawn in the current default point color.
func (b *SceneBuilder) AddLineGraph(pts []WorldPoint) *SceneBuilder {
	return b.AddLineGraphWith(pts, b.pointColor)
}

// AddLineGraphWith appends a polyline drawn in the given color.
// The slice is copied; points are connected in the order given.
func (b *SceneBuilder) AddLineGraphWith(pts []WorldPoint, col RGBA) *SceneBuilder {
	b.lines = append(b.lines, ColoredPointSet{Points: slices.Clone(pts), Color: col})
	return b
}

// AddCircle appends a circle drawn in the current default circle color.
func (b *SceneBuilder) AddCircle(c Circle) *SceneBuilder {
	return b.AddCircleWith(c, b.circleColor)
}

// AddCircleWith appends a circle drawn in the given color.
func (b *SceneBuilder) AddCircleWith(c Circle, col RGBA) *SceneBuilder {
	b.circles = append(b.circles, ColoredCircle{Circle: c, Color: col})
	return b
}

// SetBackgroundColor replaces the surface fill color.
func (b *SceneBuilder) SetBackgroundColor(col RGBA) *SceneBuilder {
	b.background = col
	return b
}

// SetAxesColor replaces the color of the frame, axes, ticks, and labels.
func (b *SceneBuilder) SetAxesColor(col RGBA) *SceneBuilder {
	b.axesColor = col
	return b
}

// SetFunctionColor replaces the default color for functions added later.
func (b *SceneBuilder) SetFunctionColor(col RGBA) *SceneBuilder {
	b.functionColor = col
	return b
}

// SetPointColor replaces the default color for scatter sets and line
// graphs added later.
func (b *SceneBuilder) SetPointColor(col RGBA) *SceneBuilder {
	b.pointColor = col
	return b
}

// SetCircleColor replaces the default color for circles added later.
func (b *SceneBuilder) SetCircleColor(col RGBA) *SceneBuilder {
	b.circleColor = col
	return b
}

// SetWorldCoordinates replaces the world viewport.
// The viewport must satisfy xMin < xMax and yMin < yMax; this is checked
// at Build, not here, so chained configuration never fails midway.
func (b *SceneBuilder) SetWorldCoordinates(xMin, xMax, yMin, yMax float64) *SceneBuilder {
	b.xMin, b.xMax = xMin, xMax
	b.yMin, b.yMax = yMin, yMax
	return b
}

// SetAxes replaces the axis origin: x positions the vertical axis line,
// y positions the horizontal axis line.
func (b *SceneBuilder) SetAxes(x, y float64) *SceneBuilder {
	b.axisX, b.axisY = x, y
	return b
}

// SetXTicks replaces the tick set of the horizontal axis.
func (b *SceneBuilder) SetXTicks(ticks ...float64) *SceneBuilder {
	b.xTicks = slices.Clone(ticks)
	return b
}

// SetYTicks replaces the tick set of the vertical axis.
func (b *SceneBuilder) SetYTicks(ticks ...float64) *SceneBuilder {
	b.yTicks = slices.Clone(ticks)
	return b
}

// SetXLabels replaces the label set of the horizontal axis. A non-empty
// label set suppresses numeric tick rendering for that axis.
func (b *SceneBuilder) SetXLabels(labels ...AxisLabel) *SceneBuilder {
	b.xLabels = slices.Clone(labels)
	return b
}

// SetYLabels replaces the label set of the vertical axis. A non-empty
// label set suppresses numeric tick rendering for that axis.
func (b *SceneBuilder) SetYLabels(labels ...AxisLabel) *SceneBuilder {
	b.yLabels = slices.Clone(labels)
	return b
}

// Build validates the accumulated configuration and returns an immutable
// Scene snapshot. All element lists are copied: mutating the builder after
// Build never changes a scene it already produced.
//
// Build fails fast with ErrInvalidViewport on a degenerate viewport and
// with ErrEmptyLineGraph when a line graph has no points.
func (b *SceneBuilder) Build() (*Scene, error) {
	if b.xMin >= b.xMax || b.yMin >= b.yMax {
		return nil, fmt.Errorf("%w: [%g, %g] x [%g, %g]",
			ErrInvalidViewport, b.xMin, b.xMax, b.yMin, b.yMax)
	}
	for i, lg := range b.lines {
		if len(lg.Points) == 0 {
			return nil, fmt.Errorf("%w: line graph %d", ErrEmptyLineGraph, i)
		}
	}

	points := make([]ColoredPointSet, len(b.points))
	for i, ps := range b.points {
		pts := ps.Points
		if b.normalizePoints {
			pts = normalizePoints(pts)
		} else {
			pts = slices.Clone(pts)
		}
		points[i] = ColoredPointSet{Points: pts, Color: ps.Color}
	}

	lines := make([]ColoredPointSet, len(b.lines))
	for i, lg := range b.lines {
		lines[i] = ColoredPointSet{Points: slices.Clone(lg.Points), Color: lg.Color}
	}

	return &Scene{
		functions:  slices.Clone(b.functions),
		points:     points,
		lines:      lines,
		circles:    slices.Clone(b.circles),
		background: b.background,
		axesColor:  b.axesColor,
		xMin:       b.xMin,
		xMax:       b.xMax,
		yMin:       b.yMin,
		yMax:       b.yMax,
		axisX:      b.axisX,
		axisY:      b.axisY,
		xTicks:     slices.Clone(b.xTicks),
		yTicks:     slices.Clone(b.yTicks),
		xLabels:    slices.Clone(b.xLabels),
		yLabels:    slices.Clone(b.yLabels),
	}, nil
}

// MustBuild is like Build but panics on error.
// Use only when the scene configuration is hardcoded and known valid.
func (b *SceneBuilder) MustBuild() *Scene {
	s, err := b.Build()
	if err != nil {
		panic(err)
	}
	return s
}
