package plot

// Function is a real-valued function of one real variable, sampled by the
// render pipeline across the visible X range. Results that are NaN or
// infinite are treated as "no sample here", not as errors.
type Function func(x float64) float64

// ColoredFunction pairs a function with its draw color.
type ColoredFunction struct {
	Fn    Function
	Color RGBA
}

// ColoredPointSet pairs an ordered point sequence with its draw color.
// The same type backs both scatter sets and line graphs; the scene keeps
// the two categories in separate lists.
type ColoredPointSet struct {
	Points []WorldPoint
	Color  RGBA
}

// ColoredCircle pairs a circle with its draw color.
type ColoredCircle struct {
	Circle Circle
	Color  RGBA
}

// Scene is an immutable description of everything to draw: the scene
// elements plus the view configuration (world viewport, axis origin, ticks,
// labels, colors).
//
// A Scene is created by [SceneBuilder.Build] and never mutated afterwards.
// It is safe to share across goroutines and to render any number of times
// on surfaces of different sizes.
type Scene struct {
	functions []ColoredFunction
	points    []ColoredPointSet
	lines     []ColoredPointSet
	circles   []ColoredCircle

	background RGBA
	axesColor  RGBA

	xMin, xMax float64
	yMin, yMax float64
	axisX      float64 // world X of the vertical axis line
	axisY      float64 // world Y of the horizontal axis line

	xTicks, yTicks   []float64
	xLabels, yLabels []AxisLabel
}

// Functions returns the sampled-curve elements in insertion order.
func (s *Scene) Functions() []ColoredFunction { return s.functions }

// Points returns the scatter elements in insertion order.
func (s *Scene) Points() []ColoredPointSet { return s.points }

// LineGraphs returns the polyline elements in insertion order.
func (s *Scene) LineGraphs() []ColoredPointSet { return s.lines }

// Circles returns the circle elements in insertion order.
func (s *Scene) Circles() []ColoredCircle { return s.circles }

// BackgroundColor returns the surface fill color.
func (s *Scene) BackgroundColor() RGBA { return s.background }

// AxesColor returns the color used for the frame, axes, ticks, and labels.
func (s *Scene) AxesColor() RGBA { return s.axesColor }

// WorldCoordinates returns the world viewport as xMin, xMax, yMin, yMax.
func (s *Scene) WorldCoordinates() (xMin, xMax, yMin, yMax float64) {
	return s.xMin, s.xMax, s.yMin, s.yMax
}

// Axes returns the axis origin: the world X of the vertical axis line and
// the world Y of the horizontal axis line.
func (s *Scene) Axes() (x, y float64) { return s.axisX, s.axisY }

// XTicks returns the tick positions of the horizontal axis.
func (s *Scene) XTicks() []float64 { return s.xTicks }

// YTicks returns the tick positions of the vertical axis.
func (s *Scene) YTicks() []float64 { return s.yTicks }

// XLabels returns the custom labels of the horizontal axis.
func (s *Scene) XLabels() []AxisLabel { return s.xLabels }

// YLabels returns the custom labels of the vertical axis.
func (s *Scene) YLabels() []AxisLabel { return s.yLabels }
