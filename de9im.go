package georelate

import (
	"math"

	"github.com/ctessum/geom"
)

// DE9IM is a Dimensionally Extended 9-Intersection matrix, laid out in
// OGC row-major order: [II, IB, IE, BI, BB, BE, EI, EB, EE] where I/B/E
// are Interior/Boundary/Exterior of the first and second geometry
// respectively. Each cell holds 'F' (empty intersection) or a non-F
// dimension character; this package only ever needs to distinguish F
// from non-F; non-F cells are written as '0' when their exact dimension
// does not matter to any of the mask tables in topology.go.
type DE9IM [9]byte

const (
	idxII = 0
	idxIB = 1
	idxIE = 2
	idxBI = 3
	idxBB = 4
	idxBE = 5
	idxEI = 6
	idxEB = 7
	idxEE = 8
)

// matchMask reports whether m satisfies mask, a 9-character string over
// {F, T, *}, per spec.md §4.5's match rule: '*' matches anything, 'F'
// requires 'F', 'T' requires any non-F character.
func matchMask(m DE9IM, mask string) bool {
	for i := 0; i < 9; i++ {
		switch mask[i] {
		case '*':
			continue
		case 'F':
			if m[i] != 'F' {
				return false
			}
		case 'T':
			if m[i] == 'F' {
				return false
			}
		}
	}
	return true
}

// matchAny reports whether m satisfies any of masks.
func matchAny(m DE9IM, masks ...string) bool {
	for _, mask := range masks {
		if matchMask(m, mask) {
			return true
		}
	}
	return false
}

// transpose swaps the roles of the two geometries in m, turning the
// matrix for (r, s) into the matrix for (s, r).
func (m DE9IM) transpose() DE9IM {
	var t DE9IM
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			t[col*3+row] = m[row*3+col]
		}
	}
	return t
}

// eps2 is the area/position tolerance used by the matrix builders below.
const eps2 = 1e-9

// buildDE9IM computes the DE-9IM matrix for the ordered pair (r, s).
// There is no DE-9IM implementation in the example pack's geometry
// library (ctessum/geom exposes Within/Intersection/Area but no general
// relate()), so the matrix is built by category dispatch: since every
// supported shape kind falls into one of three ctessum/geom interfaces
// (PointLike, Linear, Polygonal), and the set of topological outcomes
// reachable between any two categories is small and enumerable, each
// branch below classifies the pair with the predicates the library does
// provide and returns the literal canonical matrix for that outcome.
func buildDE9IM(r, s *Shape) DE9IM {
	rc, sc := r.category(), s.category()
	switch {
	case rc == categoryPoint && sc == categoryPoint:
		return pointPointMatrix(r.Geometry.(geom.Point), s.Geometry.(geom.Point))
	case rc == categoryPoint && sc == categoryLinear:
		return pointLinearMatrix(r.Geometry.(geom.Point), s.Geometry.(geom.LineString))
	case rc == categoryLinear && sc == categoryPoint:
		return pointLinearMatrix(s.Geometry.(geom.Point), r.Geometry.(geom.LineString)).transpose()
	case rc == categoryPoint && sc == categoryPolygonal:
		return pointPolygonalMatrix(r.Geometry.(geom.Point), s.asPolygonal())
	case rc == categoryPolygonal && sc == categoryPoint:
		return pointPolygonalMatrix(s.Geometry.(geom.Point), r.asPolygonal()).transpose()
	case rc == categoryLinear && sc == categoryLinear:
		return linearLinearMatrix(r.Geometry.(geom.LineString), s.Geometry.(geom.LineString))
	case rc == categoryLinear && sc == categoryPolygonal:
		return linearPolygonalMatrix(r.Geometry.(geom.LineString), s.asPolygonal())
	case rc == categoryPolygonal && sc == categoryLinear:
		return linearPolygonalMatrix(s.Geometry.(geom.LineString), r.asPolygonal()).transpose()
	default:
		return polygonalPolygonalMatrix(r, s)
	}
}

// matrixDisjoint is the canonical matrix for two shapes that share no
// points at all: the interior and boundary cells (II, IB, BI, BB) are F,
// as the disjoint mask requires, and every other cell carries a non-F
// placeholder.
var matrixDisjoint = DE9IM{'F', 'F', '0', 'F', 'F', '0', '0', '0', '0'}

func pointPointMatrix(r, s geom.Point) DE9IM {
	if r.Equals(s) {
		return DE9IM{'0', '0', 'F', '0', '0', 'F', 'F', 'F', '0'} // equal
	}
	return matrixDisjoint
}

// pointStatus classifies a point-like reference against a target with a
// boundary (a line's endpoints, or a polygon's ring) into the three
// outcomes the DE-9IM mask tables distinguish for a zero-dimensional
// geometry: strictly outside, on the target's boundary, or strictly
// inside its interior.
type pointStatus int

const (
	statusOutside pointStatus = iota
	statusOnBoundary
	statusInside
)

// pointStatusMatrix returns the matrix for a point r against a target s
// with a boundary, given r's classification relative to s. A point has
// no boundary of its own, so idxBI/idxBB/idxBE are always 'F'.
func pointStatusMatrix(st pointStatus) DE9IM {
	switch st {
	case statusInside:
		return DE9IM{'0', 'F', 'F', 'F', 'F', 'F', '0', '0', '0'}
	case statusOnBoundary:
		return DE9IM{'F', '0', 'F', 'F', 'F', 'F', '0', '0', '0'}
	default:
		return DE9IM{'F', 'F', '0', 'F', 'F', 'F', '0', '0', '0'}
	}
}

func pointLinearMatrix(p geom.Point, l geom.LineString) DE9IM {
	return pointStatusMatrix(classifyPointOnLine(p, l))
}

func pointPolygonalMatrix(p geom.Point, pg geom.Polygonal) DE9IM {
	switch p.Within(pg) {
	case geom.Inside:
		return pointStatusMatrix(statusInside)
	case geom.OnEdge:
		return pointStatusMatrix(statusOnBoundary)
	default:
		return pointStatusMatrix(statusOutside)
	}
}

// classifyPointOnLine reports whether p lies off l, on one of l's two
// endpoints (its boundary, per OGC simple-feature semantics), or on an
// interior segment of l.
func classifyPointOnLine(p geom.Point, l geom.LineString) pointStatus {
	if len(l) == 0 {
		return statusOutside
	}
	if p.Equals(l[0]) || p.Equals(l[len(l)-1]) {
		return statusOnBoundary
	}
	for i := 1; i < len(l); i++ {
		if pointOnSegment(p, l[i-1], l[i]) {
			return statusInside
		}
	}
	return statusOutside
}

// pointOnSegment reports whether p lies on the closed segment a-b,
// within eps2 tolerance.
func pointOnSegment(p, a, b geom.Point) bool {
	cross := (p.X-a.X)*(b.Y-a.Y) - (p.Y-a.Y)*(b.X-a.X)
	if math.Abs(cross) > eps2*math.Max(1, math.Hypot(b.X-a.X, b.Y-a.Y)) {
		return false
	}
	dot := (p.X-a.X)*(b.X-a.X) + (p.Y-a.Y)*(b.Y-a.Y)
	if dot < -eps2 {
		return false
	}
	lenSq := (b.X-a.X)*(b.X-a.X) + (b.Y-a.Y)*(b.Y-a.Y)
	return dot <= lenSq+eps2
}

// segmentsIntersect reports whether segments a0-a1 and b0-b1 share a
// point, and whether that point is in the interior of both segments
// (a proper crossing) as opposed to only at an endpoint.
func segmentsIntersect(a0, a1, b0, b1 geom.Point) (touches, proper bool) {
	d1 := cross(b1, b0, a0)
	d2 := cross(b1, b0, a1)
	d3 := cross(a1, a0, b0)
	d4 := cross(a1, a0, b1)
	if ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) && ((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0)) {
		return true, true
	}
	if math.Abs(d1) < eps2 && pointOnSegment(a0, b0, b1) {
		return true, false
	}
	if math.Abs(d2) < eps2 && pointOnSegment(a1, b0, b1) {
		return true, false
	}
	if math.Abs(d3) < eps2 && pointOnSegment(b0, a0, a1) {
		return true, false
	}
	if math.Abs(d4) < eps2 && pointOnSegment(b1, a0, a1) {
		return true, false
	}
	return false, false
}

func cross(a, b, c geom.Point) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

// linearLinearMatrix classifies two linestrings by sampling every pair
// of segments for an intersection. ctessum/geom exposes no line-line
// predicate (its Within is defined only against Polygonal targets), so
// this is a direct segment-intersection scan, the standard technique
// used where the vendored library stops short (see its own intersection
// helpers in polyclip-go, used internally only for polygon clipping).
func linearLinearMatrix(r, s geom.LineString) DE9IM {
	if !r.Bounds().Overlaps(s.Bounds()) {
		return matrixDisjoint
	}
	if linesEqual(r, s) {
		return DE9IM{'0', '0', 'F', '0', '0', 'F', 'F', 'F', '0'}
	}
	var anyProper, anyTouch bool
	for i := 1; i < len(r); i++ {
		for j := 1; j < len(s); j++ {
			touches, proper := segmentsIntersect(r[i-1], r[i], s[j-1], s[j])
			if proper {
				anyProper = true
			}
			if touches {
				anyTouch = true
			}
		}
	}
	switch {
	case anyProper:
		return DE9IM{'0', '0', '0', '0', '0', '0', '0', '0', '0'} // intersect (crosses)
	case anyTouch:
		return DE9IM{'F', '0', '0', '0', 'F', '0', '0', '0', '0'} // meet
	default:
		return matrixDisjoint
	}
}

func linesEqual(r, s geom.LineString) bool {
	if len(r) != len(s) {
		return false
	}
	forward, reverse := true, true
	for i := range r {
		if !r[i].Equals(s[i]) {
			forward = false
		}
		if !r[i].Equals(s[len(s)-1-i]) {
			reverse = false
		}
	}
	return forward || reverse
}

// linearPolygonalMatrix classifies a linestring against a polygonal
// target by the per-vertex Within status ctessum/geom's pointInPolygonal
// (reached through Point.Within) provides: if every vertex is strictly
// inside, the line is contained; if some touch the boundary but none lie
// outside, it gets the same matrix, which the refiners classify as
// inside; if vertices fall on both sides, the line
// crosses the boundary and the relation is a general intersect; if every
// vertex is outside the line may still be disjoint or may cross the
// polygon without ever placing a vertex inside it, a case this
// vertex-sampling approximation cannot distinguish from true disjoint.
func linearPolygonalMatrix(l geom.LineString, pg geom.Polygonal) DE9IM {
	if !l.Bounds().Overlaps(pg.Bounds()) {
		return matrixDisjoint
	}
	var inside, onEdge, outside int
	for _, v := range l {
		switch v.Within(pg) {
		case geom.Inside:
			inside++
		case geom.OnEdge:
			onEdge++
		default:
			outside++
		}
	}
	switch {
	case outside == len(l) && inside == 0 && onEdge == 0:
		return matrixDisjoint
	case outside > 0:
		return DE9IM{'0', '0', '0', 'F', 'F', 'F', '0', '0', '0'} // intersect
	case onEdge > 0:
		return DE9IM{'0', 'F', 'F', 'F', 'F', 'F', '0', '0', '0'} // touches boundary: same matrix as inside
	default:
		return DE9IM{'0', 'F', 'F', 'F', 'F', 'F', '0', '0', '0'} // inside
	}
}

// polygonalPolygonalMatrix classifies two areal shapes using
// Polygonal.Intersection/Area, the only generic predicate ctessum/geom
// provides for polygon-vs-polygon. Coverage (touching only at the
// boundary) versus strict containment, and meet versus disjoint for
// shapes with no common area, are distinguished with a boundary
// vertex-proximity check, since the library has no boundary-intersection
// primitive either.
func polygonalPolygonalMatrix(r, s *Shape) DE9IM {
	rp, sp := r.asPolygonal(), s.asPolygonal()
	if !rp.Bounds().Overlaps(sp.Bounds()) {
		return matrixDisjoint
	}
	interArea := rp.Intersection(sp).Area()
	rArea, sArea := rp.Area(), sp.Area()
	touching := ringsTouch(r, s) || ringsTouch(s, r)
	if interArea < eps2 {
		if touching {
			return DE9IM{'F', 'F', '0', 'F', '0', '0', '0', '0', '0'} // meet
		}
		return matrixDisjoint
	}
	switch {
	case approxEqualArea(interArea, rArea) && approxEqualArea(interArea, sArea):
		return DE9IM{'0', '0', 'F', '0', '0', 'F', 'F', 'F', '0'} // equal
	case approxEqualArea(interArea, sArea):
		// s is fully within r: contains, or covers if touching along a boundary
		if touching {
			return DE9IM{'F', '0', '0', '0', '0', '0', 'F', 'F', '0'} // covers
		}
		return DE9IM{'0', 'F', '0', 'F', 'F', '0', 'F', 'F', '0'} // contains
	case approxEqualArea(interArea, rArea):
		// r is fully within s: inside, or covered_by if touching along a boundary
		if touching {
			return DE9IM{'F', '0', 'F', '0', '0', 'F', '0', '0', '0'} // covered_by
		}
		return DE9IM{'0', 'F', 'F', 'F', 'F', 'F', '0', '0', '0'} // inside
	default:
		return DE9IM{'0', '0', '0', '0', '0', '0', '0', '0', '0'} // intersect
	}
}

func approxEqualArea(a, b float64) bool {
	return math.Abs(a-b) < 1e-6*math.Max(1, math.Max(a, b))
}

// ringsTouch reports whether any vertex of s's rings lies on an edge of
// r's rings. polygonalPolygonalMatrix checks both argument orders; the
// result is the signal used to tell "covers"/"covered_by" (boundary
// contact) apart from strict "contains"/"inside", and "meet" from
// "disjoint".
func ringsTouch(r, s *Shape) bool {
	rv, sv := vertices(r.Geometry), vertices(s.Geometry)
	for i := 1; i < len(sv); i++ {
		for j := 1; j < len(rv); j++ {
			if pointOnSegment(sv[i], rv[j-1], rv[j]) || pointOnSegment(sv[i-1], rv[j-1], rv[j]) {
				return true
			}
		}
	}
	return false
}
