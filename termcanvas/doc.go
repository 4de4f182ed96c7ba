// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package termcanvas backs a plot.Canvas with a grid of braille terminal
// cells, styled through lipgloss. Each cell carries 2x4 micro-pixels, so
// even a modest terminal gives the pipeline a usable resolution.
//
//	canvas := termcanvas.New(cols, rows)
//	plot.Render(scene, canvas)
//	fmt.Println(canvas.String())
//
// See cmd/plottui for a bubbletea host that re-renders on every terminal
// resize.
package termcanvas
