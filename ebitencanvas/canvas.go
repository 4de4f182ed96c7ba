// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ebitencanvas

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	etext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/plot"
)

// ErrNoFont is returned when the embedded fallback font fails to parse.
var ErrNoFont = errors.New("ebitencanvas: no usable font face")

// Canvas implements plot.Canvas on top of an ebiten image. The host's
// Draw callback points the canvas at the frame's target image with
// SetTarget and then renders:
//
//	func (g *game) Draw(screen *ebiten.Image) {
//	    g.canvas.SetTarget(screen)
//	    plot.Render(g.scene, g.canvas)
//	}
//
// Because the scene is immutable and the mapper re-reads the target size
// on every pass, window resizes need no bookkeeping: the next Draw call
// simply renders at the new dimensions.
//
// Canvas is NOT safe for concurrent use.
type Canvas struct {
	dst       *ebiten.Image
	face      *etext.GoTextFace
	antialias bool
}

// Option configures a Canvas during creation.
type Option func(*Canvas)

// WithFace sets the font face used for tick and label text.
// Without this option the canvas uses the embedded Go Regular face at
// 13 points.
func WithFace(face *etext.GoTextFace) Option {
	return func(c *Canvas) {
		c.face = face
	}
}

// WithoutAntialias disables anti-aliased strokes and fills.
func WithoutAntialias() Option {
	return func(c *Canvas) {
		c.antialias = false
	}
}

// New creates a canvas with no target. Call SetTarget before rendering.
func New(opts ...Option) (*Canvas, error) {
	c := &Canvas{antialias: true}
	for _, opt := range opts {
		opt(c)
	}
	if c.face == nil {
		source, err := etext.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrNoFont, err)
		}
		c.face = &etext.GoTextFace{Source: source, Size: 13}
	}
	return c, nil
}

// SetTarget points the canvas at the image subsequent draw calls hit.
// Typically called once per frame with the screen image.
func (c *Canvas) SetTarget(dst *ebiten.Image) {
	c.dst = dst
}

var _ plot.Canvas = (*Canvas)(nil)

// Size implements plot.Canvas. It reports the current target's size, or
// zero before SetTarget.
func (c *Canvas) Size() (int, int) {
	if c.dst == nil {
		return 0, 0
	}
	b := c.dst.Bounds()
	return b.Dx(), b.Dy()
}

// FillBackground implements plot.Canvas.
func (c *Canvas) FillBackground(col plot.RGBA) {
	c.dst.Fill(col.Color())
}

// StrokeRect implements plot.Canvas.
func (c *Canvas) StrokeRect(x, y, w, h, width float64, col plot.RGBA) {
	vector.StrokeRect(c.dst, float32(x), float32(y), float32(w), float32(h),
		float32(width), col.Color(), c.antialias)
}

// StrokeLine implements plot.Canvas.
func (c *Canvas) StrokeLine(x0, y0, x1, y1, width float64, col plot.RGBA) {
	vector.StrokeLine(c.dst, float32(x0), float32(y0), float32(x1), float32(y1),
		float32(width), col.Color(), c.antialias)
}

// StrokePath implements plot.Canvas.
func (c *Canvas) StrokePath(p *plot.Path, width float64, col plot.RGBA) {
	for _, sp := range p.Subpaths() {
		for i := 1; i < len(sp); i++ {
			c.StrokeLine(sp[i-1].X, sp[i-1].Y, sp[i].X, sp[i].Y, width, col)
		}
	}
}

// FillCircle implements plot.Canvas.
func (c *Canvas) FillCircle(x, y, r float64, col plot.RGBA) {
	vector.DrawFilledCircle(c.dst, float32(x), float32(y), float32(r), col.Color(), c.antialias)
}

// StrokeCircle implements plot.Canvas.
func (c *Canvas) StrokeCircle(x, y, r, width float64, col plot.RGBA) {
	vector.StrokeCircle(c.dst, float32(x), float32(y), float32(r),
		float32(width), col.Color(), c.antialias)
}

// MeasureText implements plot.Canvas.
func (c *Canvas) MeasureText(s string) (float64, float64) {
	return etext.Measure(s, c.face, c.face.Size*1.2)
}

// DrawText implements plot.Canvas.
func (c *Canvas) DrawText(s string, x, y, ax, ay float64, col plot.RGBA) {
	w, h := c.MeasureText(s)
	op := &etext.DrawOptions{}
	op.GeoM.Translate(x-w*ax, y-h*ay)
	op.ColorScale.ScaleWithColor(col.Color())
	etext.Draw(c.dst, s, c.face, op)
}
