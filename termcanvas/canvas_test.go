// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package termcanvas

import (
	"strings"
	"testing"

	"github.com/gogpu/plot"
)

func TestSizeInMicroPixels(t *testing.T) {
	c := New(80, 24)
	w, h := c.Size()
	if w != 160 || h != 96 {
		t.Errorf("Size = %dx%d, want 160x96", w, h)
	}
}

func TestStrokeLineSetsCells(t *testing.T) {
	c := New(10, 10)
	c.StrokeLine(0, 0, 19, 0, 1, plot.White)

	for x := 0; x < 10; x++ {
		if c.mask[0][x] == 0 {
			t.Errorf("cell (0,%d) empty after horizontal line", x)
		}
	}
	for y := 1; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if c.mask[y][x] != 0 {
				t.Errorf("cell (%d,%d) set outside the line", y, x)
			}
		}
	}
}

func TestOutOfRangeIgnored(t *testing.T) {
	c := New(4, 4)
	// Must not panic or wrap around.
	c.StrokeLine(-50, -50, 500, 500, 1, plot.White)
	c.FillCircle(-10, -10, 3, plot.Red)
	c.DrawText("far", 1e6, 1e6, 0, 0, plot.Black)
}

func TestDrawTextOccupiesCells(t *testing.T) {
	c := New(10, 4)
	c.DrawText("ab", 0, 0, 0, 0, plot.White)
	if c.runes[0][0] != 'a' || c.runes[0][1] != 'b' {
		t.Errorf("text cells = %q %q, want 'a' 'b'", c.runes[0][0], c.runes[0][1])
	}
}

func TestStringOutput(t *testing.T) {
	c := New(6, 3)
	c.FillBackground(plot.Black)
	c.StrokeLine(0, 0, 11, 11, 1, plot.Cyan)

	out := c.String()
	if lines := strings.Split(out, "\n"); len(lines) != 3 {
		t.Fatalf("output has %d lines, want 3", len(lines))
	}
	found := false
	for _, r := range out {
		if r >= 0x2800 && r <= 0x28FF {
			found = true
			break
		}
	}
	if !found {
		t.Error("no braille cells in output")
	}
}

func TestRenderSceneSmoke(t *testing.T) {
	scene := plot.NewSceneBuilder().
		AddFunction(func(x float64) float64 { return x }).
		MustBuild()

	c := New(40, 12)
	plot.Render(scene, c)

	set := 0
	for y := range c.mask {
		for x := range c.mask[y] {
			if c.mask[y][x] != 0 {
				set++
			}
		}
	}
	if set == 0 {
		t.Error("render pass set no cells")
	}
}
