package georelate

import "math"

// MBRCase classifies the relationship between two shapes' bounding
// rectangles, the first dispatch step before any DE-9IM computation.
// Grounded on original_source/src/index/filter.cpp's relateMBRs.
type MBRCase int

const (
	MBREqual MBRCase = iota
	MBRSInR          // s entirely inside r
	MBRRInS          // r entirely inside s
	MBRCross
	MBRIntersect
	MBRDisjoint
)

func (c MBRCase) String() string {
	switch c {
	case MBREqual:
		return "equal"
	case MBRSInR:
		return "s_in_r"
	case MBRRInS:
		return "r_in_s"
	case MBRCross:
		return "cross"
	case MBRIntersect:
		return "intersect"
	default:
		return "disjoint"
	}
}

// eps is the floating-point tolerance used throughout MBR and mask
// comparisons, matching the original's EPS constant.
const eps = 1e-10

// classifyMBR dispatches (r, s) into one of the five in-range MBR cases,
// per spec.md §4.4, in the stated evaluation order (first match wins).
// Callers must have already established the MBRs overlap (see
// mbrDisjointFast) before calling this.
func classifyMBR(r, s *Shape) MBRCase {
	dxmin := r.MBR.Min.X - s.MBR.Min.X
	dymin := r.MBR.Min.Y - s.MBR.Min.Y
	dxmax := r.MBR.Max.X - s.MBR.Max.X
	dymax := r.MBR.Max.Y - s.MBR.Max.Y

	if math.Abs(dxmin) < eps && math.Abs(dxmax) < eps && math.Abs(dymin) < eps && math.Abs(dymax) < eps {
		return MBREqual
	}
	if dxmin <= 0 && dxmax >= 0 && dymin <= 0 && dymax >= 0 {
		return MBRSInR
	}
	if dxmin >= 0 && dxmax <= 0 && dymin >= 0 && dymax <= 0 {
		return MBRRInS
	}
	if (dxmin < 0 && dxmax > 0 && dymin > 0 && dymax < 0) ||
		(dxmin > 0 && dxmax < 0 && dymin < 0 && dymax > 0) {
		return MBRCross
	}
	return MBRIntersect
}

// mbrDisjointFast reports whether r's and s's MBRs are separated along
// the x axis or the y axis, the fast short-circuit evaluated ahead of the
// full dispatch table.
func mbrDisjointFast(r, s *Shape) bool {
	if r.MBR.Max.X < s.MBR.Min.X || s.MBR.Max.X < r.MBR.Min.X {
		return true
	}
	if r.MBR.Max.Y < s.MBR.Min.Y || s.MBR.Max.Y < r.MBR.Min.Y {
		return true
	}
	return false
}
