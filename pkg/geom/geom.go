// Package geom provides integer grid geometry for antenna maps.
//
// Points live on an integer grid (x is the column, y is the row). The only
// non-trivial operation is [Intersect], which decides whether two line
// segments cross and where.
//
// # Intersection Semantics
//
// [Intersect] uses the parametric form of both segments. The parameters ua
// and ub are computed with single-precision division and the resulting point
// is truncated toward zero, not rounded, so results are bit-compatible with
// existing antenna reports.
//
// Parallel and collinear segments (zero denominator) never intersect, even
// when collinear segments overlap. Overlap detection is a known gap and is
// not special-cased.
package geom

import "fmt"

// Point is an integer grid coordinate.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point { return Point{X: x, Y: y} }

// Add returns p+q.
func (p Point) Add(q Point) Point { return Point{X: p.X + q.X, Y: p.Y + q.Y} }

// Sub returns p-q.
func (p Point) Sub(q Point) Point { return Point{X: p.X - q.X, Y: p.Y - q.Y} }

// String formats the point as "(x,y)".
func (p Point) String() string { return fmt.Sprintf("(%d,%d)", p.X, p.Y) }

// Less orders points row-major: by Y, then by X.
func (p Point) Less(q Point) bool {
	if p.Y != q.Y {
		return p.Y < q.Y
	}
	return p.X < q.X
}

// Compare returns -1, 0 or 1 following the row-major order of [Point.Less].
// It is suitable for slices.SortFunc.
func Compare(p, q Point) int {
	switch {
	case p == q:
		return 0
	case p.Less(q):
		return -1
	default:
		return 1
	}
}

// Segment is the closed line segment between A and B.
type Segment struct {
	A, B Point
}

// Intersect reports whether s and o cross and returns the crossing point.
func (s Segment) Intersect(o Segment) (Point, bool) {
	return Intersect(s.A, s.B, o.A, o.B)
}

// Intersect reports whether segment p1-p2 crosses segment p3-p4.
//
// When the segments cross, the returned point is p1 + ua·(p2−p1) with each
// coordinate truncated toward zero. When the denominator is zero (parallel or
// collinear) or either parameter falls outside [0, 1], Intersect returns the
// zero Point and false. It never fails.
func Intersect(p1, p2, p3, p4 Point) (Point, bool) {
	denom := (p4.Y-p3.Y)*(p2.X-p1.X) - (p4.X-p3.X)*(p2.Y-p1.Y)
	if denom == 0 {
		return Point{}, false
	}

	ua := float32((p4.X-p3.X)*(p1.Y-p3.Y)-(p4.Y-p3.Y)*(p1.X-p3.X)) / float32(denom)
	ub := float32((p2.X-p1.X)*(p1.Y-p3.Y)-(p2.Y-p1.Y)*(p1.X-p3.X)) / float32(denom)

	if ua < 0 || ua > 1 || ub < 0 || ub > 1 {
		return Point{}, false
	}

	// The explicit float32 conversions keep the product rounded before the
	// sum (no fused multiply-add); int conversion truncates toward zero.
	x := int(float32(p1.X) + float32(ua*float32(p2.X-p1.X)))
	y := int(float32(p1.Y) + float32(ua*float32(p2.Y-p1.Y)))
	return Point{X: x, Y: y}, true
}

// Abs returns |v|.
func Abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
