package plot

// Canvas is the minimal drawing surface the render pipeline needs. The
// pipeline assumes nothing about the backend beyond these primitives;
// implementations exist for gg raster output (ggcanvas), ebiten windows
// (ebitencanvas), terminals (termcanvas), and command capture (recording).
//
// All coordinates are screen pixels. Stroke operations take an explicit
// line width because width is a display-density concern the backend cannot
// choose on its own (see [Style]).
type Canvas interface {
	// Size returns the current surface dimensions in pixels.
	Size() (width, height int)

	// FillBackground fills the whole surface with a color.
	FillBackground(c RGBA)

	// StrokeRect strokes the outline of a rectangle.
	StrokeRect(x, y, w, h, width float64, c RGBA)

	// StrokeLine strokes a single straight segment.
	StrokeLine(x0, y0, x1, y1, width float64, c RGBA)

	// StrokePath strokes every subpath of p.
	StrokePath(p *Path, width float64, c RGBA)

	// FillCircle fills a circle centered at (x, y).
	FillCircle(x, y, r float64, c RGBA)

	// StrokeCircle strokes the outline of a circle centered at (x, y).
	StrokeCircle(x, y, r, width float64, c RGBA)

	// MeasureText returns the rendered extent of s in pixels.
	MeasureText(s string) (w, h float64)

	// DrawText draws s anchored at (x, y). The anchor point (ax, ay) is in
	// the range [0, 1] relative to the text's bounding box:
	//
	//	(0, 0) = top-left
	//	(0.5, 0.5) = center
	//	(1, 1) = bottom-right
	DrawText(s string, x, y, ax, ay float64, c RGBA)
}

// Style holds the display-density-derived constants the pipeline positions
// marks and text with. Values are in pixels. The host supplies a Style
// scaled for its display rather than the core guessing one.
type Style struct {
	// PointRadius is the radius of a scatter point.
	PointRadius float64

	// TickLength is the length of an axis tick mark.
	TickLength float64

	// LabelGap is the extra space between a tick mark and its text.
	LabelGap float64

	// LineWidth is the stroke width for curves, polylines, and circles.
	LineWidth float64

	// AxisWidth is the stroke width for the frame, axes, and tick marks.
	AxisWidth float64
}

// DefaultStyle returns a Style suited to an ordinary-density display.
func DefaultStyle() Style {
	return Style{
		PointRadius: 3,
		TickLength:  4,
		LabelGap:    3,
		LineWidth:   1.5,
		AxisWidth:   1,
	}
}
