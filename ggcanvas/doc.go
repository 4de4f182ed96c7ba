// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package ggcanvas backs a plot.Canvas with the gg 2D graphics library.
//
// This is the raster backend: scenes render into a pixel buffer that can
// be read as an image.Image or written out as PNG.
//
//	canvas, err := ggcanvas.New(800, 600)
//	if err != nil {
//	    return err
//	}
//	defer canvas.Close()
//
//	plot.Render(scene, canvas)
//	if err := canvas.SavePNG("plot.png"); err != nil {
//	    return err
//	}
//
// Text is drawn with gg's text stack; by default the embedded Go Regular
// face at 13 points, overridable with [WithFace].
package ggcanvas
