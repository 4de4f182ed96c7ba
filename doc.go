// Package plot renders mathematical functions, scatter points, polylines,
// and circles onto a bounded drawing surface using caller-supplied world
// coordinates.
//
// # Overview
//
// plot separates what to draw from where to draw it. A scene is described
// once in an arbitrary real-valued coordinate system and rendered onto any
// surface that implements the small [Canvas] interface; the world-to-pixel
// translation happens transparently on every draw.
//
// # Quick Start
//
//	import "github.com/gogpu/plot"
//
//	scene, err := plot.NewSceneBuilder().
//	    SetWorldCoordinates(-5, 5, -2, 20).
//	    AddFunction(func(x float64) float64 { return x * x }).
//	    AddPointsWith([]plot.WorldPoint{plot.Pt(1, 2), plot.Pt(3, 9)}, plot.Red).
//	    Build()
//	if err != nil {
//	    return err
//	}
//
//	canvas := ggcanvas.MustNew(800, 600)
//	defer canvas.Close()
//	plot.Render(scene, canvas)
//	canvas.SavePNG("plot.png")
//
// # Architecture
//
// The library is organized into:
//   - Scene model: [SceneBuilder], [Scene], the geometric value types
//   - Coordinate mapping: [Mapper], a stateless world/screen transform
//   - Pipeline: [Render], which turns a scene into ordered draw calls
//   - Backends: ggcanvas (raster/PNG), ebitencanvas (windowed),
//     termcanvas (terminal), recording (command capture)
//
// A [Scene] is immutable once built. It can be rendered many times, on
// surfaces of different sizes, without rebuilding; only the [Mapper] inputs
// change between draws. This makes redraw-on-resize free: the host calls
// [Render] again with the new surface dimensions and the same scene.
//
// # Coordinate Systems
//
// World coordinates are caller-chosen: X increases right, Y increases up.
// Screen coordinates are integer pixels: origin top-left, Y increases down.
// The mapping between them is affine and is derived from the scene's world
// viewport and the current surface dimensions.
package plot
