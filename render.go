package plot

import (
	"math"
	"strconv"
)

// RenderOption configures a render pass.
type RenderOption func(*renderOptions)

// renderOptions holds optional configuration for a render pass.
type renderOptions struct {
	style Style
}

// WithStyle sets the display-density style constants for a render pass.
//
// Example:
//
//	st := plot.DefaultStyle()
//	st.PointRadius = 6 // high-density display
//	plot.Render(scene, canvas, plot.WithStyle(st))
func WithStyle(st Style) RenderOption {
	return func(o *renderOptions) {
		o.style = st
	}
}

// Render draws a scene onto a canvas. It is the pipeline's single entry
// point, invoked by the host once per redraw.
//
// A pass executes six stages in fixed order, later stages drawing on top
// of earlier ones: frame, axes with ticks and labels, functions, scatter
// points, line graphs, circles. The pass is a pure function of the scene
// and the canvas dimensions; it performs no mutation and holds no state
// across calls, so a scene may be rendered concurrently onto different
// canvases.
func Render(s *Scene, canvas Canvas, opts ...RenderOption) {
	options := renderOptions{style: DefaultStyle()}
	for _, opt := range opts {
		opt(&options)
	}

	w, h := canvas.Size()
	r := renderer{
		scene:  s,
		canvas: canvas,
		mapper: NewMapper(w, h, s),
		style:  options.style,
	}

	Logger().Debug("render pass",
		"width", w, "height", h,
		"functions", len(s.Functions()),
		"pointSets", len(s.Points()),
		"lineGraphs", len(s.LineGraphs()),
		"circles", len(s.Circles()))

	r.drawFrame()
	r.drawAxes()
	r.drawFunctions()
	r.drawPoints()
	r.drawLineGraphs()
	r.drawCircles()
}

// renderer carries the per-pass state: the scene being drawn, the target
// canvas, and the mapper derived from the canvas' current size.
type renderer struct {
	scene  *Scene
	canvas Canvas
	mapper Mapper
	style  Style
}

// drawFrame fills the background and strokes the surface outline.
func (r *renderer) drawFrame() {
	w, h := float64(r.mapper.Width), float64(r.mapper.Height)
	r.canvas.FillBackground(r.scene.BackgroundColor())
	r.canvas.StrokeRect(0, 0, w, h, r.style.AxisWidth, r.scene.AxesColor())
}

// drawAxes strokes the axis lines and their ticks or labels.
//
// Each axis line is drawn only when its own screen coordinate is in range.
// Ticks and labels are filtered independently by their own position, so an
// axis whose line sits just outside the surface still gets its marks.
func (r *renderer) drawAxes() {
	m := r.mapper
	col := r.scene.AxesColor()
	axisX, axisY := r.scene.Axes()

	sx := m.ScreenX(axisX)
	sy := m.ScreenY(axisY)

	if sy >= 0 && sy <= m.Height {
		r.canvas.StrokeLine(0, float64(sy), float64(m.Width), float64(sy), r.style.AxisWidth, col)
	}
	if sx >= 0 && sx < m.Width {
		r.canvas.StrokeLine(float64(sx), 0, float64(sx), float64(m.Height), r.style.AxisWidth, col)
	}

	for _, mark := range axisMarks(r.scene.XTicks(), r.scene.XLabels()) {
		tx := m.ScreenX(mark.tick)
		if tx < 0 || tx >= m.Width {
			continue
		}
		r.drawXMark(float64(tx), float64(sy), mark.text, col)
	}
	for _, mark := range axisMarks(r.scene.YTicks(), r.scene.YLabels()) {
		ty := m.ScreenY(mark.tick)
		if ty < 0 || ty > m.Height {
			continue
		}
		r.drawYMark(float64(sx), float64(ty), mark.text, col)
	}
}

// drawXMark draws one tick mark below the horizontal axis with its text
// centered underneath: tick length, then the gap, then half the text
// height, so the text clears the mark.
func (r *renderer) drawXMark(tx, sy float64, text string, col RGBA) {
	st := r.style
	r.canvas.StrokeLine(tx, sy, tx, sy+st.TickLength, st.AxisWidth, col)
	_, th := r.canvas.MeasureText(text)
	r.canvas.DrawText(text, tx, sy+st.TickLength+st.LabelGap+th/2, 0.5, 0.5, col)
}

// drawYMark draws one tick mark to the left of the vertical axis with its
// text centered further left.
func (r *renderer) drawYMark(sx, ty float64, text string, col RGBA) {
	st := r.style
	r.canvas.StrokeLine(sx-st.TickLength, ty, sx, ty, st.AxisWidth, col)
	tw, _ := r.canvas.MeasureText(text)
	r.canvas.DrawText(text, sx-st.TickLength-st.LabelGap-tw/2, ty, 0.5, 0.5, col)
}

// axisMark is one position on an axis with its rendered text.
type axisMark struct {
	tick float64
	text string
}

// axisMarks resolves what an axis renders: a non-empty label list wins and
// the numeric tick list is ignored; otherwise every tick renders its
// numeric form.
func axisMarks(ticks []float64, labels []AxisLabel) []axisMark {
	if len(labels) > 0 {
		marks := make([]axisMark, len(labels))
		for i, l := range labels {
			marks[i] = axisMark{tick: l.Tick, text: l.Text}
		}
		return marks
	}
	marks := make([]axisMark, len(ticks))
	for i, t := range ticks {
		marks[i] = axisMark{tick: t, text: formatTick(t)}
	}
	return marks
}

// formatTick renders a tick value: integer-valued ticks drop the fraction
// ("4", not "4.0"), everything else uses the shortest decimal form.
func formatTick(v float64) string {
	if v == math.Round(v) {
		return strconv.FormatFloat(v, 'f', 0, 64)
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// drawFunctions samples and strokes every function element.
func (r *renderer) drawFunctions() {
	for _, cf := range r.scene.Functions() {
		path := samplePath(cf.Fn, r.mapper)
		if !path.IsEmpty() {
			r.canvas.StrokePath(path, r.style.LineWidth, cf.Color)
		}
	}
}

// samplePath samples fn at every integer screen X from -1 to the surface
// width inclusive and connects the kept samples into subpaths.
//
// A sample is dropped when the function result is not finite or when its
// screen Y falls outside the near-screen band (twice the surface height in
// either direction — loose on purpose, so a curve that dips below the
// visible range still connects correctly where it crosses back in).
// Consecutive kept samples join into one segment only when their screen X
// differ by exactly one pixel; any dropped sample in between starts a new
// subpath. That breaks the path at asymptotes (1/x at zero) instead of
// stroking a false vertical line across the gap.
func samplePath(fn Function, m Mapper) *Path {
	path := NewPath()
	prevSX := 0
	connected := false

	for sx := -1; sx <= m.Width; sx++ {
		y := fn(m.WorldX(sx))
		if math.IsNaN(y) || math.IsInf(y, 0) {
			connected = false
			continue
		}
		sy := m.ScreenY(y)
		if !nearScreen(sy, m.Height) {
			connected = false
			continue
		}
		if connected && sx-prevSX == 1 {
			path.LineTo(float64(sx), float64(sy))
		} else {
			path.MoveTo(float64(sx), float64(sy))
		}
		prevSX = sx
		connected = true
	}
	return path
}

// nearScreen reports whether a screen coordinate lies within twice the
// surface extent of the origin. Geometry outside this band is dropped
// silently; it could not influence visible output.
func nearScreen(v, extent int) bool {
	return v >= -2*extent && v <= 2*extent
}

// drawPoints fills a dot for every near-screen scatter point.
// Points outside the band are skipped, not errors.
func (r *renderer) drawPoints() {
	m := r.mapper
	for _, ps := range r.scene.Points() {
		for _, pt := range ps.Points {
			sx := m.ScreenX(pt.X)
			sy := m.ScreenY(pt.Y)
			if !nearScreen(sx, m.Width) || !nearScreen(sy, m.Height) {
				continue
			}
			r.canvas.FillCircle(float64(sx), float64(sy), r.style.PointRadius, ps.Color)
		}
	}
}

// drawLineGraphs strokes every polyline element as one continuous path.
// Unlike scatter points, polyline vertices are not filtered: an off-screen
// vertex still shapes the segments that re-enter the surface.
func (r *renderer) drawLineGraphs() {
	m := r.mapper
	for _, lg := range r.scene.LineGraphs() {
		if len(lg.Points) == 0 {
			continue
		}
		path := NewPath()
		for i, pt := range lg.Points {
			sx := float64(m.ScreenX(pt.X))
			sy := float64(m.ScreenY(pt.Y))
			if i == 0 {
				path.MoveTo(sx, sy)
			} else {
				path.LineTo(sx, sy)
			}
		}
		r.canvas.StrokePath(path, r.style.LineWidth, lg.Color)
	}
}

// drawCircles strokes every circle element. The screen radius is measured
// along the X mapping only; if the X and Y scale factors differ the drawn
// circle will not match the world-space ellipse.
func (r *renderer) drawCircles() {
	m := r.mapper
	for _, cc := range r.scene.Circles() {
		c := cc.Circle
		scx := m.ScreenX(c.X)
		scy := m.ScreenY(c.Y)
		sr := m.ScreenX(c.X+c.Radius) - scx
		r.canvas.StrokeCircle(float64(scx), float64(scy), float64(sr), r.style.LineWidth, cc.Color)
	}
}
