// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package ebitencanvas backs a plot.Canvas with an ebiten image, for
// scenes hosted in a resizable desktop window.
//
// The host owns the ebiten game loop; the canvas only translates plot
// draw calls into ebiten vector and text operations. See cmd/plotwin for
// a complete host.
package ebitencanvas
