package plot

// Circle is a circle in world coordinates.
type Circle struct {
	X, Y   float64 // center
	Radius float64
}

// C is a convenience function to create a Circle.
func C(x, y, radius float64) Circle {
	return Circle{X: x, Y: y, Radius: radius}
}
