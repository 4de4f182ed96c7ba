// Package recording captures plot draw operations as typed commands.
//
// A [Canvas] implements plot.Canvas but records what the pipeline asked
// for instead of rasterizing it. The resulting [Recording] is immutable
// and can be inspected (the render pipeline's test harness lives on this)
// or replayed onto any other plot.Canvas — the seam a vector exporter
// would plug into.
//
// Design follows Cairo's approach of typed command structs for
// inspectability, rather than a binary serialization format.
//
// # Example
//
//	rec := recording.New(800, 600)
//	plot.Render(scene, rec)
//	r := rec.Finish()
//
//	for _, cmd := range r.Commands() {
//	    fmt.Println(cmd.Type())
//	}
//
//	// Replay onto a raster backend
//	r.Playback(ggCanvas)
package recording

import "github.com/gogpu/plot"

// CommandType identifies the type of a recorded command. The values mirror
// the plot.Canvas interface one to one.
type CommandType uint8

const (
	CmdFillBackground CommandType = iota
	CmdStrokeRect
	CmdStrokeLine
	CmdStrokePath
	CmdFillCircle
	CmdStrokeCircle
	CmdDrawText
)

// commandTypeNames maps CommandType values to their string representation.
var commandTypeNames = [...]string{
	CmdFillBackground: "FillBackground",
	CmdStrokeRect:     "StrokeRect",
	CmdStrokeLine:     "StrokeLine",
	CmdStrokePath:     "StrokePath",
	CmdFillCircle:     "FillCircle",
	CmdStrokeCircle:   "StrokeCircle",
	CmdDrawText:       "DrawText",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is the interface implemented by all recorded commands.
type Command interface {
	// Type returns the CommandType for this command.
	Type() CommandType
}

// FillBackgroundCommand fills the whole surface with a color.
type FillBackgroundCommand struct {
	Color plot.RGBA
}

// Type implements Command.
func (FillBackgroundCommand) Type() CommandType { return CmdFillBackground }

// StrokeRectCommand strokes a rectangle outline.
type StrokeRectCommand struct {
	X, Y, W, H float64
	Width      float64
	Color      plot.RGBA
}

// Type implements Command.
func (StrokeRectCommand) Type() CommandType { return CmdStrokeRect }

// StrokeLineCommand strokes a single straight segment.
type StrokeLineCommand struct {
	X0, Y0, X1, Y1 float64
	Width          float64
	Color          plot.RGBA
}

// Type implements Command.
func (StrokeLineCommand) Type() CommandType { return CmdStrokeLine }

// StrokePathCommand strokes a polyline path.
type StrokePathCommand struct {
	Path  *plot.Path
	Width float64
	Color plot.RGBA
}

// Type implements Command.
func (StrokePathCommand) Type() CommandType { return CmdStrokePath }

// FillCircleCommand fills a circle.
type FillCircleCommand struct {
	X, Y, R float64
	Color   plot.RGBA
}

// Type implements Command.
func (FillCircleCommand) Type() CommandType { return CmdFillCircle }

// StrokeCircleCommand strokes a circle outline.
type StrokeCircleCommand struct {
	X, Y, R float64
	Width   float64
	Color   plot.RGBA
}

// Type implements Command.
func (StrokeCircleCommand) Type() CommandType { return CmdStrokeCircle }

// DrawTextCommand draws anchored text.
type DrawTextCommand struct {
	Text   string
	X, Y   float64
	AX, AY float64
	Color  plot.RGBA
}

// Type implements Command.
func (DrawTextCommand) Type() CommandType { return CmdDrawText }
