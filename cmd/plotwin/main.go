// Command plotwin shows a scene in a resizable desktop window.
//
// The scene is built exactly once; every frame renders the same immutable
// descriptor at whatever size the window currently has.
package main

import (
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gogpu/plot"
	"github.com/gogpu/plot/ebitencanvas"
)

type game struct {
	scene  *plot.Scene
	canvas *ebitencanvas.Canvas
}

func (g *game) Update() error { return nil }

func (g *game) Draw(screen *ebiten.Image) {
	g.canvas.SetTarget(screen)
	plot.Render(g.scene, g.canvas)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

func main() {
	scene, err := plot.NewSceneBuilder().
		SetWorldCoordinates(-10, 10, -10, 10).
		AddFunctionWith(math.Tan, plot.Blue).
		AddFunctionWith(func(x float64) float64 { return 1 / x }, plot.Red).
		AddCircleWith(plot.C(0, 0, 5), plot.Green).
		Build()
	if err != nil {
		log.Fatalf("Failed to build scene: %v", err)
	}

	canvas, err := ebitencanvas.New()
	if err != nil {
		log.Fatalf("Failed to create canvas: %v", err)
	}

	ebiten.SetWindowTitle("plot")
	ebiten.SetWindowSize(800, 600)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(&game{scene: scene, canvas: canvas}); err != nil {
		log.Fatal(err)
	}
}
