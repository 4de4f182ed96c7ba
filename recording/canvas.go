package recording

import (
	"slices"

	"github.com/gogpu/plot"
)

// Canvas records drawing operations as commands. It implements
// plot.Canvas but generates typed commands instead of pixels. Use Finish
// to obtain an immutable [Recording] for inspection or replay.
//
// Text metrics are synthetic and deterministic: every rune measures
// glyphW x glyphH pixels. That keeps recordings reproducible across
// machines, which is what a test harness wants from them.
//
// Canvas is not safe for concurrent use.
type Canvas struct {
	width, height  int
	glyphW, glyphH float64
	commands       []Command
}

// Option configures a recording Canvas.
type Option func(*Canvas)

// WithGlyphSize sets the synthetic per-rune text metrics.
// The default is 7 x 13 pixels per rune.
func WithGlyphSize(w, h float64) Option {
	return func(c *Canvas) {
		c.glyphW, c.glyphH = w, h
	}
}

// New creates a recording Canvas with the given dimensions.
func New(width, height int, opts ...Option) *Canvas {
	c := &Canvas{
		width:    width,
		height:   height,
		glyphW:   7,
		glyphH:   13,
		commands: make([]Command, 0, 64),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var _ plot.Canvas = (*Canvas)(nil)

// Size implements plot.Canvas.
func (c *Canvas) Size() (int, int) { return c.width, c.height }

// FillBackground implements plot.Canvas.
func (c *Canvas) FillBackground(col plot.RGBA) {
	c.commands = append(c.commands, FillBackgroundCommand{Color: col})
}

// StrokeRect implements plot.Canvas.
func (c *Canvas) StrokeRect(x, y, w, h, width float64, col plot.RGBA) {
	c.commands = append(c.commands, StrokeRectCommand{X: x, Y: y, W: w, H: h, Width: width, Color: col})
}

// StrokeLine implements plot.Canvas.
func (c *Canvas) StrokeLine(x0, y0, x1, y1, width float64, col plot.RGBA) {
	c.commands = append(c.commands, StrokeLineCommand{X0: x0, Y0: y0, X1: x1, Y1: y1, Width: width, Color: col})
}

// StrokePath implements plot.Canvas.
func (c *Canvas) StrokePath(p *plot.Path, width float64, col plot.RGBA) {
	c.commands = append(c.commands, StrokePathCommand{Path: p, Width: width, Color: col})
}

// FillCircle implements plot.Canvas.
func (c *Canvas) FillCircle(x, y, r float64, col plot.RGBA) {
	c.commands = append(c.commands, FillCircleCommand{X: x, Y: y, R: r, Color: col})
}

// StrokeCircle implements plot.Canvas.
func (c *Canvas) StrokeCircle(x, y, r, width float64, col plot.RGBA) {
	c.commands = append(c.commands, StrokeCircleCommand{X: x, Y: y, R: r, Width: width, Color: col})
}

// MeasureText implements plot.Canvas with synthetic metrics.
func (c *Canvas) MeasureText(s string) (float64, float64) {
	n := 0
	for range s {
		n++
	}
	return float64(n) * c.glyphW, c.glyphH
}

// DrawText implements plot.Canvas.
func (c *Canvas) DrawText(s string, x, y, ax, ay float64, col plot.RGBA) {
	c.commands = append(c.commands, DrawTextCommand{Text: s, X: x, Y: y, AX: ax, AY: ay, Color: col})
}

// Commands returns the commands recorded so far.
func (c *Canvas) Commands() []Command { return c.commands }

// Reset discards all recorded commands, keeping the allocation.
func (c *Canvas) Reset() { c.commands = c.commands[:0] }

// Finish returns an immutable Recording of everything recorded so far.
// The Recording keeps its own copy of the command list, so the Canvas may
// be reset and reused afterwards without disturbing it.
func (c *Canvas) Finish() *Recording {
	return &Recording{
		width:    c.width,
		height:   c.height,
		commands: slices.Clone(c.commands),
	}
}

// Recording is an immutable container for recorded draw commands.
type Recording struct {
	width, height int
	commands      []Command
}

// Width returns the width of the recorded surface.
func (r *Recording) Width() int { return r.width }

// Height returns the height of the recorded surface.
func (r *Recording) Height() int { return r.height }

// Commands returns the recorded commands in draw order.
func (r *Recording) Commands() []Command { return r.commands }

// Playback replays the recording onto another canvas.
func (r *Recording) Playback(target plot.Canvas) {
	for _, cmd := range r.commands {
		switch c := cmd.(type) {
		case FillBackgroundCommand:
			target.FillBackground(c.Color)
		case StrokeRectCommand:
			target.StrokeRect(c.X, c.Y, c.W, c.H, c.Width, c.Color)
		case StrokeLineCommand:
			target.StrokeLine(c.X0, c.Y0, c.X1, c.Y1, c.Width, c.Color)
		case StrokePathCommand:
			target.StrokePath(c.Path, c.Width, c.Color)
		case FillCircleCommand:
			target.FillCircle(c.X, c.Y, c.R, c.Color)
		case StrokeCircleCommand:
			target.StrokeCircle(c.X, c.Y, c.R, c.Width, c.Color)
		case DrawTextCommand:
			target.DrawText(c.Text, c.X, c.Y, c.AX, c.AY, c.Color)
		}
	}
}
