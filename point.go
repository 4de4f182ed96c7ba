package plot

import (
	"slices"
	"sort"
)

// WorldPoint is a point in caller-supplied world coordinates.
// X increases right, Y increases up.
type WorldPoint struct {
	X, Y float64
}

// Pt is a convenience function to create a WorldPoint.
func Pt(x, y float64) WorldPoint {
	return WorldPoint{X: x, Y: y}
}

// Less reports whether p orders before q lexicographically (X first, then Y).
func (p WorldPoint) Less(q WorldPoint) bool {
	if p.X != q.X {
		return p.X < q.X
	}
	return p.Y < q.Y
}

// Point is a point in screen coordinates.
// The origin is the top-left corner of the surface, Y increases down.
type Point struct {
	X, Y float64
}

// normalizePoints returns a sorted, deduplicated copy of pts.
// Ordering is lexicographic (X first, then Y). The input is not modified.
//
// Whether scatter input should be normalized at all is a deliberate choice
// left to the caller; see [WithPointNormalization].
func normalizePoints(pts []WorldPoint) []WorldPoint {
	out := slices.Clone(pts)
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return slices.Compact(out)
}
