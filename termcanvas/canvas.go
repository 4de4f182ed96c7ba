// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package termcanvas

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/gogpu/plot"
)

// Canvas implements plot.Canvas on a grid of terminal cells. Each cell is
// a braille character carrying 2x4 micro-pixels, so a cols x rows canvas
// exposes a 2*cols x 4*rows pixel surface to the render pipeline. Colors
// map to per-cell foreground styles via lipgloss.
//
// Text occupies whole cells and overdraws any braille geometry beneath it.
//
// Canvas is NOT safe for concurrent use.
type Canvas struct {
	cols, rows int

	mask  [][]uint8     // per-cell braille dot mask
	fg    [][]plot.RGBA // color of the last geometry drawn into the cell
	runes [][]rune      // text overlay, 0 = none
	tfg   [][]plot.RGBA // text overlay colors
	bg    plot.RGBA
}

// New creates a canvas of cols x rows terminal cells.
func New(cols, rows int) *Canvas {
	c := &Canvas{cols: cols, rows: rows, bg: plot.White}
	c.mask = make([][]uint8, rows)
	c.fg = make([][]plot.RGBA, rows)
	c.runes = make([][]rune, rows)
	c.tfg = make([][]plot.RGBA, rows)
	for i := 0; i < rows; i++ {
		c.mask[i] = make([]uint8, cols)
		c.fg[i] = make([]plot.RGBA, cols)
		c.runes[i] = make([]rune, cols)
		c.tfg[i] = make([]plot.RGBA, cols)
	}
	return c
}

var _ plot.Canvas = (*Canvas)(nil)

// Size implements plot.Canvas, reporting micro-pixel dimensions.
func (c *Canvas) Size() (int, int) {
	return c.cols * 2, c.rows * 4
}

// FillBackground implements plot.Canvas.
func (c *Canvas) FillBackground(col plot.RGBA) {
	c.bg = col
	for y := 0; y < c.rows; y++ {
		for x := 0; x < c.cols; x++ {
			c.mask[y][x] = 0
			c.runes[y][x] = 0
		}
	}
}

// setPixel sets a micro-pixel. Out-of-range coordinates are ignored.
func (c *Canvas) setPixel(mx, my int, col plot.RGBA) {
	if mx < 0 || my < 0 {
		return
	}
	cx, rx := mx/2, mx%2
	cy, ry := my/4, my%4
	if cy >= c.rows || cx >= c.cols {
		return
	}
	var bit uint8
	if rx == 0 {
		switch ry {
		case 0:
			bit = 0x01
		case 1:
			bit = 0x02
		case 2:
			bit = 0x04
		case 3:
			bit = 0x40
		}
	} else {
		switch ry {
		case 0:
			bit = 0x08
		case 1:
			bit = 0x10
		case 2:
			bit = 0x20
		case 3:
			bit = 0x80
		}
	}
	c.mask[cy][cx] |= bit
	c.fg[cy][cx] = col
}

// line draws a micro-pixel line using Bresenham.
func (c *Canvas) line(x0, y0, x1, y1 int, col plot.RGBA) {
	dx := abs(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -abs(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		c.setPixel(x0, y0, col)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// StrokeLine implements plot.Canvas. Stroke width below one cell has no
// visual effect on a braille grid and is ignored.
func (c *Canvas) StrokeLine(x0, y0, x1, y1, _ float64, col plot.RGBA) {
	c.line(round(x0), round(y0), round(x1), round(y1), col)
}

// StrokeRect implements plot.Canvas.
func (c *Canvas) StrokeRect(x, y, w, h, width float64, col plot.RGBA) {
	c.StrokeLine(x, y, x+w-1, y, width, col)
	c.StrokeLine(x+w-1, y, x+w-1, y+h-1, width, col)
	c.StrokeLine(x+w-1, y+h-1, x, y+h-1, width, col)
	c.StrokeLine(x, y+h-1, x, y, width, col)
}

// StrokePath implements plot.Canvas.
func (c *Canvas) StrokePath(p *plot.Path, width float64, col plot.RGBA) {
	for _, sp := range p.Subpaths() {
		for i := 1; i < len(sp); i++ {
			c.StrokeLine(sp[i-1].X, sp[i-1].Y, sp[i].X, sp[i].Y, width, col)
		}
	}
}

// StrokeCircle implements plot.Canvas, using the midpoint circle
// algorithm on the micro-pixel grid.
func (c *Canvas) StrokeCircle(x, y, r, _ float64, col plot.RGBA) {
	cx, cy, cr := round(x), round(y), round(r)
	if cr <= 0 {
		c.setPixel(cx, cy, col)
		return
	}
	px, py := cr, 0
	d := 1 - cr
	for px >= py {
		c.setPixel(cx+px, cy+py, col)
		c.setPixel(cx+py, cy+px, col)
		c.setPixel(cx-py, cy+px, col)
		c.setPixel(cx-px, cy+py, col)
		c.setPixel(cx-px, cy-py, col)
		c.setPixel(cx-py, cy-px, col)
		c.setPixel(cx+py, cy-px, col)
		c.setPixel(cx+px, cy-py, col)
		py++
		if d < 0 {
			d += 2*py + 1
		} else {
			px--
			d += 2*(py-px) + 1
		}
	}
}

// FillCircle implements plot.Canvas with horizontal span fills.
func (c *Canvas) FillCircle(x, y, r float64, col plot.RGBA) {
	cx, cy, cr := round(x), round(y), round(r)
	if cr <= 0 {
		c.setPixel(cx, cy, col)
		return
	}
	for dy := -cr; dy <= cr; dy++ {
		for dx := -cr; dx <= cr; dx++ {
			if dx*dx+dy*dy <= cr*cr {
				c.setPixel(cx+dx, cy+dy, col)
			}
		}
	}
}

// MeasureText implements plot.Canvas. Every rune occupies one cell:
// 2 micro-pixels wide, 4 high.
func (c *Canvas) MeasureText(s string) (float64, float64) {
	n := 0
	for range s {
		n++
	}
	return float64(n * 2), 4
}

// DrawText implements plot.Canvas, snapping the anchored box to cells.
func (c *Canvas) DrawText(s string, x, y, ax, ay float64, col plot.RGBA) {
	w, h := c.MeasureText(s)
	cx := round((x - w*ax) / 2)
	cy := round((y - h*ay) / 4)
	if cy < 0 || cy >= c.rows {
		return
	}
	for _, r := range s {
		if cx >= 0 && cx < c.cols {
			c.runes[cy][cx] = r
			c.tfg[cy][cx] = col
		}
		cx++
	}
}

// String renders the canvas as styled terminal lines.
func (c *Canvas) String() string {
	bgStyle := lipgloss.NewStyle().Background(lipgloss.Color(hex(c.bg)))

	var sb strings.Builder
	for y := 0; y < c.rows; y++ {
		for x := 0; x < c.cols; x++ {
			switch {
			case c.runes[y][x] != 0:
				st := bgStyle.Foreground(lipgloss.Color(hex(c.tfg[y][x])))
				sb.WriteString(st.Render(string(c.runes[y][x])))
			case c.mask[y][x] != 0:
				st := bgStyle.Foreground(lipgloss.Color(hex(c.fg[y][x])))
				sb.WriteString(st.Render(string(rune(0x2800 + int(c.mask[y][x])))))
			default:
				sb.WriteString(bgStyle.Render(" "))
			}
		}
		if y < c.rows-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// hex converts a plot color to a lipgloss hex string.
func hex(c plot.RGBA) string {
	n := c.Color().(color.NRGBA)
	return fmt.Sprintf("#%02X%02X%02X", n.R, n.G, n.B)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func round(v float64) int {
	if v < 0 {
		return int(v - 0.5)
	}
	return int(v + 0.5)
}
