// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggcanvas

import (
	"errors"
	"testing"

	"github.com/gogpu/plot"
)

func TestNewRejectsInvalidDimensions(t *testing.T) {
	if _, err := New(0, 100); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("err = %v, want ErrInvalidDimensions", err)
	}
	if _, err := New(100, -1); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("err = %v, want ErrInvalidDimensions", err)
	}
}

func TestFillBackground(t *testing.T) {
	c := MustNew(16, 16)
	defer c.Close()

	c.FillBackground(plot.Red)

	r, g, b, _ := c.Image().At(8, 8).RGBA()
	if r < 0xF000 || g > 0x0FFF || b > 0x0FFF {
		t.Errorf("pixel = %v, want red", c.Image().At(8, 8))
	}
}

func TestResize(t *testing.T) {
	c := MustNew(16, 16)
	defer c.Close()

	if err := c.Resize(32, 24); err != nil {
		t.Fatalf("Resize failed: %v", err)
	}
	if w, h := c.Size(); w != 32 || h != 24 {
		t.Errorf("Size after resize = %dx%d, want 32x24", w, h)
	}
	if err := c.Resize(0, 24); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("err = %v, want ErrInvalidDimensions", err)
	}
}

func TestMeasureText(t *testing.T) {
	c := MustNew(16, 16)
	defer c.Close()

	w, h := c.MeasureText("hello")
	if w <= 0 || h <= 0 {
		t.Errorf("MeasureText = %gx%g, want positive extents", w, h)
	}
}

func TestRenderSceneSmoke(t *testing.T) {
	scene := plot.NewSceneBuilder().
		SetBackgroundColor(plot.White).
		AddFunctionWith(func(x float64) float64 { return x }, plot.Blue).
		AddCircleWith(plot.C(0, 0, 5), plot.Green).
		MustBuild()

	c := MustNew(120, 120)
	defer c.Close()
	plot.Render(scene, c)

	// Something other than the white background must have been drawn.
	img := c.Image()
	touched := false
	for y := 0; y < 120 && !touched; y++ {
		for x := 0; x < 120; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			if r < 0xF000 || g < 0xF000 || b < 0xF000 {
				touched = true
				break
			}
		}
	}
	if !touched {
		t.Error("render pass left the image blank")
	}
}
