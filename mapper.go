package plot

// Mapper is a stateless bidirectional transform between world coordinates
// and integer device pixels. It is parameterized by the current surface
// dimensions and the scene's world viewport, and is rebuilt (cheaply) on
// every draw, so a resize never invalidates the scene itself.
//
// The forward direction truncates toward zero rather than rounding. This
// is an inherited numeric policy, kept so pixel output stays reproducible;
// switching to rounding would shift exact positions by up to one pixel.
type Mapper struct {
	Width, Height int
	xMin, xMax    float64
	yMin, yMax    float64
}

// NewMapper creates a Mapper for the given surface dimensions and the
// scene's world viewport.
func NewMapper(width, height int, s *Scene) Mapper {
	xMin, xMax, yMin, yMax := s.WorldCoordinates()
	return Mapper{
		Width:  width,
		Height: height,
		xMin:   xMin,
		xMax:   xMax,
		yMin:   yMin,
		yMax:   yMax,
	}
}

// ScreenX maps a world X coordinate to a screen X pixel.
func (m Mapper) ScreenX(x float64) int {
	return int(float64(m.Width) * (x - m.xMin) / (m.xMax - m.xMin))
}

// ScreenY maps a world Y coordinate to a screen Y pixel.
// World Y increases up, screen Y increases down.
func (m Mapper) ScreenY(y float64) int {
	return int(float64(m.Height) * (m.yMax - y) / (m.yMax - m.yMin))
}

// WorldX maps a screen X pixel back to a world X coordinate.
func (m Mapper) WorldX(sx int) float64 {
	return m.xMin + float64(sx)*(m.xMax-m.xMin)/float64(m.Width)
}

// WorldY maps a screen Y pixel back to a world Y coordinate.
func (m Mapper) WorldY(sy int) float64 {
	return m.yMax - float64(sy)*(m.yMax-m.yMin)/float64(m.Height)
}
