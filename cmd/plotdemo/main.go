// Command plotdemo renders a demonstration scene to a PNG file.
package main

import (
	"flag"
	"log"
	"math"

	"github.com/gogpu/plot"
	"github.com/gogpu/plot/ggcanvas"
)

func main() {
	var (
		width  = flag.Int("width", 800, "image width")
		height = flag.Int("height", 600, "image height")
		output = flag.String("output", "plot.png", "output file")
	)
	flag.Parse()

	scene, err := buildScene()
	if err != nil {
		log.Fatalf("Failed to build scene: %v", err)
	}

	canvas, err := ggcanvas.New(*width, *height)
	if err != nil {
		log.Fatalf("Failed to create canvas: %v", err)
	}
	defer canvas.Close()

	plot.Render(scene, canvas)

	if err := canvas.SavePNG(*output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	log.Printf("Demo saved to %s (%dx%d)\n", *output, *width, *height)
}

func buildScene() (*plot.Scene, error) {
	temperatures := []plot.WorldPoint{
		{X: 1, Y: 3}, {X: 4, Y: 4}, {X: 7, Y: 4.5}, {X: 10, Y: 6},
		{X: 13, Y: 8}, {X: 16, Y: 9}, {X: 19, Y: 8.5}, {X: 22, Y: 7},
		{X: 25, Y: 5}, {X: 28, Y: 4}, {X: 31, Y: 3.5},
	}

	return plot.NewSceneBuilder().
		SetWorldCoordinates(-2, 34, -12, 12).
		SetXLabels(
			plot.Label(4, "wk 1"), plot.Label(11, "wk 2"),
			plot.Label(18, "wk 3"), plot.Label(25, "wk 4"),
		).
		SetYTicks(-10, -5, 5, 10).
		AddFunctionWith(func(x float64) float64 {
			return 8 * math.Sin(x/3)
		}, plot.Blue).
		AddFunctionWith(func(x float64) float64 {
			return 1 / (x - 16) // breaks cleanly at the asymptote
		}, plot.Gray).
		AddLineGraphWith(temperatures, plot.Hex("#CC5500")).
		AddPointsWith(temperatures, plot.Red).
		AddCircleWith(plot.C(16, -6, 4), plot.Green).
		Build()
}
