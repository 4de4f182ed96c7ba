// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggcanvas

import (
	"errors"
	"fmt"
	"image"
	"io"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/plot"
)

// Common errors returned by Canvas operations.
var (
	// ErrInvalidDimensions is returned when width or height is invalid.
	ErrInvalidDimensions = errors.New("ggcanvas: invalid dimensions")

	// ErrNoFont is returned when the embedded fallback font fails to parse.
	ErrNoFont = errors.New("ggcanvas: no usable font face")
)

// Canvas implements plot.Canvas on top of a gg drawing context. Output is
// a raster image: use Image for in-memory access or SavePNG/EncodePNG for
// files.
//
// Canvas is NOT safe for concurrent use.
type Canvas struct {
	ctx    *gg.Context
	face   text.Face
	width  int
	height int
}

// Option configures a Canvas during creation.
type Option func(*Canvas)

// WithFace sets the font face used for tick and label text.
// Without this option the canvas uses the embedded Go Regular face at
// 13 points.
func WithFace(face text.Face) Option {
	return func(c *Canvas) {
		c.face = face
	}
}

// New creates a raster canvas with the given dimensions.
func New(width, height int, opts ...Option) (*Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: width=%d, height=%d", ErrInvalidDimensions, width, height)
	}

	c := &Canvas{
		ctx:    gg.NewContext(width, height),
		width:  width,
		height: height,
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.face == nil {
		source, err := text.NewFontSource(goregular.TTF)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrNoFont, err)
		}
		c.face = source.Face(13)
	}
	c.ctx.SetFont(c.face)
	return c, nil
}

// MustNew is like New but panics on error.
// Use only when dimensions are hardcoded and known valid.
func MustNew(width, height int, opts ...Option) *Canvas {
	c, err := New(width, height, opts...)
	if err != nil {
		panic(err)
	}
	return c
}

var _ plot.Canvas = (*Canvas)(nil)

// Size implements plot.Canvas.
func (c *Canvas) Size() (int, int) { return c.width, c.height }

// FillBackground implements plot.Canvas.
func (c *Canvas) FillBackground(col plot.RGBA) {
	c.ctx.ClearWithColor(ggColor(col))
}

// StrokeRect implements plot.Canvas.
func (c *Canvas) StrokeRect(x, y, w, h, width float64, col plot.RGBA) {
	c.ctx.SetColor(col.Color())
	c.ctx.SetLineWidth(width)
	c.ctx.DrawRectangle(x, y, w, h)
	_ = c.ctx.Stroke()
}

// StrokeLine implements plot.Canvas.
func (c *Canvas) StrokeLine(x0, y0, x1, y1, width float64, col plot.RGBA) {
	c.ctx.SetColor(col.Color())
	c.ctx.SetLineWidth(width)
	c.ctx.DrawLine(x0, y0, x1, y1)
	_ = c.ctx.Stroke()
}

// StrokePath implements plot.Canvas.
func (c *Canvas) StrokePath(p *plot.Path, width float64, col plot.RGBA) {
	c.ctx.SetColor(col.Color())
	c.ctx.SetLineWidth(width)
	c.ctx.ClearPath()
	for _, sp := range p.Subpaths() {
		for i, pt := range sp {
			if i == 0 {
				c.ctx.MoveTo(pt.X, pt.Y)
			} else {
				c.ctx.LineTo(pt.X, pt.Y)
			}
		}
	}
	_ = c.ctx.Stroke()
}

// FillCircle implements plot.Canvas.
func (c *Canvas) FillCircle(x, y, r float64, col plot.RGBA) {
	c.ctx.SetColor(col.Color())
	c.ctx.DrawCircle(x, y, r)
	_ = c.ctx.Fill()
}

// StrokeCircle implements plot.Canvas.
func (c *Canvas) StrokeCircle(x, y, r, width float64, col plot.RGBA) {
	c.ctx.SetColor(col.Color())
	c.ctx.SetLineWidth(width)
	c.ctx.DrawCircle(x, y, r)
	_ = c.ctx.Stroke()
}

// MeasureText implements plot.Canvas.
func (c *Canvas) MeasureText(s string) (float64, float64) {
	return c.ctx.MeasureString(s)
}

// DrawText implements plot.Canvas.
//
// plot anchors on the text bounding box while gg anchors on the baseline,
// so the vertical anchor is flipped before delegating.
func (c *Canvas) DrawText(s string, x, y, ax, ay float64, col plot.RGBA) {
	c.ctx.SetColor(col.Color())
	c.ctx.DrawStringAnchored(s, x, y, ax, 1-ay)
}

// Resize changes the canvas dimensions, reusing the gg context's buffers
// where possible. The next render pass picks up the new size through Size.
func (c *Canvas) Resize(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: width=%d, height=%d", ErrInvalidDimensions, width, height)
	}
	if err := c.ctx.Resize(width, height); err != nil {
		return err
	}
	c.width = width
	c.height = height
	return nil
}

// Context returns the underlying gg drawing context, for callers that
// want to draw on top of a rendered plot.
func (c *Canvas) Context() *gg.Context { return c.ctx }

// Image returns the rendered image.
func (c *Canvas) Image() image.Image { return c.ctx.Image() }

// SavePNG writes the rendered image to a PNG file.
func (c *Canvas) SavePNG(path string) error { return c.ctx.SavePNG(path) }

// EncodePNG writes the rendered image as PNG to w.
func (c *Canvas) EncodePNG(w io.Writer) error { return c.ctx.EncodePNG(w) }

// Close releases the gg context's resources.
func (c *Canvas) Close() error { return c.ctx.Close() }

// ggColor converts a plot color to a gg color.
func ggColor(c plot.RGBA) gg.RGBA {
	return gg.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}
