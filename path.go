package plot

// Path is a set of polyline subpaths in screen coordinates. It is the
// currency between the render pipeline and a [Canvas]: the pipeline emits
// paths, the canvas strokes them.
//
// A subpath with a single point is legal but draws nothing when stroked.
type Path struct {
	subpaths [][]Point
}

// NewPath creates an empty path.
func NewPath() *Path {
	return &Path{}
}

// MoveTo starts a new subpath at the given screen position.
func (p *Path) MoveTo(x, y float64) {
	p.subpaths = append(p.subpaths, []Point{{X: x, Y: y}})
}

// LineTo extends the current subpath with a straight segment.
// LineTo without a preceding MoveTo starts a subpath implicitly.
func (p *Path) LineTo(x, y float64) {
	if len(p.subpaths) == 0 {
		p.MoveTo(x, y)
		return
	}
	last := len(p.subpaths) - 1
	p.subpaths[last] = append(p.subpaths[last], Point{X: x, Y: y})
}

// Subpaths returns the subpaths in draw order.
func (p *Path) Subpaths() [][]Point {
	return p.subpaths
}

// IsEmpty reports whether the path contains no subpaths.
func (p *Path) IsEmpty() bool {
	return len(p.subpaths) == 0
}

// SegmentCount returns the total number of straight segments across all
// subpaths.
func (p *Path) SegmentCount() int {
	n := 0
	for _, sp := range p.subpaths {
		if len(sp) > 1 {
			n += len(sp) - 1
		}
	}
	return n
}
