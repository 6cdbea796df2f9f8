package georelate

import "github.com/ctessum/geom"

// centroid returns the centroid of g. geom.Polygon and geom.MultiPolygon
// already implement Centroid() as part of the Polygonal interface; Point
// and LineString do not, since ctessum/geom only defines Centroid on
// areal geometry, so those two cases are handled directly here.
func centroid(g geom.Geom) geom.Point {
	switch v := g.(type) {
	case geom.Point:
		return v
	case geom.LineString:
		return lineStringCentroid(v)
	case geom.Polygon:
		return v.Centroid()
	case geom.MultiPolygon:
		return v.Centroid()
	default:
		return geom.Point{}
	}
}

// lineStringCentroid returns the arithmetic mean of a linestring's
// vertices. ctessum/geom does not define a centroid for LineString, so
// this is the simplest reasonable stand-in: the center of mass of a
// uniform-density polyline is not exactly the vertex mean in general, but
// for the direction/area computations this package needs (a bearing
// between two shapes) the vertex mean is an adequate approximation.
func lineStringCentroid(l geom.LineString) geom.Point {
	if len(l) == 0 {
		return geom.Point{}
	}
	var sx, sy float64
	for _, p := range l {
		sx += p.X
		sy += p.Y
	}
	n := float64(len(l))
	return geom.Point{X: sx / n, Y: sy / n}
}

// vertices returns every coordinate making up g, used by the boundary
// contact check (ringsTouch) in the DE-9IM matrix builder (de9im.go).
func vertices(g geom.Geom) []geom.Point {
	switch v := g.(type) {
	case geom.Point:
		return []geom.Point{v}
	case geom.LineString:
		return append([]geom.Point(nil), v...)
	case geom.Polygon:
		var pts []geom.Point
		for _, ring := range v {
			pts = append(pts, ring...)
		}
		return pts
	case geom.MultiPolygon:
		var pts []geom.Point
		for _, poly := range v {
			for _, ring := range poly {
				pts = append(pts, ring...)
			}
		}
		return pts
	default:
		return nil
	}
}
