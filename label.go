package plot

// AxisLabel attaches caller-supplied text to an axis position.
// When a scene carries labels for an axis, they replace the numeric
// rendering of that axis' tick list entirely.
type AxisLabel struct {
	Tick float64 // axis position in world coordinates
	Text string
}

// Label is a convenience function to create an AxisLabel.
func Label(tick float64, text string) AxisLabel {
	return AxisLabel{Tick: tick, Text: text}
}
