package georelate

import (
	"math"

	"github.com/ctessum/geom"
)

// ShapeKind tags the five geometry families this package supports.
type ShapeKind int

// Supported shape kinds, matching the WKT prefixes recognized by wkt.go.
const (
	KindInvalid ShapeKind = iota
	KindPoint
	KindLinestring
	KindRectangle
	KindPolygon
	KindMultiPolygon
)

func (k ShapeKind) String() string {
	switch k {
	case KindPoint:
		return "POINT"
	case KindLinestring:
		return "LINESTRING"
	case KindRectangle:
		return "RECTANGLE"
	case KindPolygon:
		return "POLYGON"
	case KindMultiPolygon:
		return "MULTIPOLYGON"
	default:
		return "INVALID"
	}
}

// category classifies a shape kind into one of ctessum/geom's three
// geometry interfaces. DE-9IM matrix construction (de9im.go) dispatches
// on category rather than on ShapeKind directly, since Rectangle,
// Polygon, and MultiPolygon are all areal and share identical
// topological behavior.
type category int

const (
	categoryPoint category = iota
	categoryLinear
	categoryPolygonal
)

func (k ShapeKind) category() category {
	switch k {
	case KindPoint:
		return categoryPoint
	case KindLinestring:
		return categoryLinear
	default:
		return categoryPolygonal
	}
}

// Shape is a tagged geometry value: one of Point, Linestring, Rectangle,
// Polygon, or MultiPolygon, carrying the dataset-assigned identity and
// the precomputed index data every downstream component needs.
type Shape struct {
	Kind       ShapeKind
	RecID      uint64
	Name       string
	MBR        *geom.Bounds
	Partitions []int32

	// Geometry is the underlying ctessum/geom value: geom.Point,
	// geom.LineString, or geom.Polygon/geom.MultiPolygon. Rectangle
	// shapes are stored as a closed 5-point geom.Polygon ring so that
	// every areal predicate (Within, Intersection, Area, Centroid)
	// works on Rectangle for free.
	Geometry geom.Geom
}

// NewPointShape builds a Point shape from a coordinate pair.
func NewPointShape(x, y float64) *Shape {
	p := geom.Point{X: x, Y: y}
	return &Shape{Kind: KindPoint, Geometry: p, MBR: p.Bounds()}
}

// NewLinestringShape builds a Linestring shape from an ordered vertex list.
func NewLinestringShape(points []geom.Point) *Shape {
	l := geom.LineString(points)
	return &Shape{Kind: KindLinestring, Geometry: l, MBR: l.Bounds()}
}

// NewRectangleShape builds a Rectangle shape from its corner pair,
// normalizing pMin/pMax so pMin.X <= pMax.X and pMin.Y <= pMax.Y.
func NewRectangleShape(x0, y0, x1, y1 float64) *Shape {
	xMin, xMax := math.Min(x0, x1), math.Max(x0, x1)
	yMin, yMax := math.Min(y0, y1), math.Max(y0, y1)
	ring := rectangleRing(xMin, yMin, xMax, yMax)
	poly := geom.Polygon{ring}
	return &Shape{Kind: KindRectangle, Geometry: poly, MBR: poly.Bounds()}
}

func rectangleRing(xMin, yMin, xMax, yMax float64) []geom.Point {
	return []geom.Point{
		{X: xMin, Y: yMin},
		{X: xMax, Y: yMin},
		{X: xMax, Y: yMax},
		{X: xMin, Y: yMax},
		{X: xMin, Y: yMin},
	}
}

// NewPolygonShape builds a Polygon shape from its rings (outer ring first,
// followed by any hole rings).
func NewPolygonShape(rings [][]geom.Point) *Shape {
	poly := make(geom.Polygon, len(rings))
	for i, r := range rings {
		poly[i] = r
	}
	return &Shape{Kind: KindPolygon, Geometry: poly, MBR: poly.Bounds()}
}

// NewMultiPolygonShape builds a MultiPolygon shape from its member polygons.
func NewMultiPolygonShape(polys [][][]geom.Point) *Shape {
	mp := make(geom.MultiPolygon, len(polys))
	for i, rings := range polys {
		poly := make(geom.Polygon, len(rings))
		for j, r := range rings {
			poly[j] = r
		}
		mp[i] = poly
	}
	return &Shape{Kind: KindMultiPolygon, Geometry: mp, MBR: mp.Bounds()}
}

// category reports which of ctessum/geom's three geometry interfaces s
// belongs to.
func (s *Shape) category() category {
	return s.Kind.category()
}

// asPolygonal returns s.Geometry as a geom.Polygonal, valid only when
// s.category() == categoryPolygonal (Rectangle, Polygon, MultiPolygon).
func (s *Shape) asPolygonal() geom.Polygonal {
	switch g := s.Geometry.(type) {
	case geom.Polygon:
		return g
	case geom.MultiPolygon:
		return g
	default:
		return nil
	}
}

// Area returns the shape's area. Points and linestrings have zero area by
// convention (spec.md §4.6).
func (s *Shape) Area() float64 {
	switch s.category() {
	case categoryPolygonal:
		return s.asPolygonal().Area()
	default:
		return 0
	}
}

// Centroid returns the shape's centroid, used as the reference point for
// cardinal-direction computation.
func (s *Shape) Centroid() geom.Point {
	return centroid(s.Geometry)
}

// IntersectionArea returns the area shared by s and other, both of which
// must be areal (Rectangle/Polygon/MultiPolygon); zero otherwise.
func (s *Shape) IntersectionArea(other *Shape) float64 {
	sp, op := s.asPolygonal(), other.asPolygonal()
	if sp == nil || op == nil {
		return 0
	}
	return sp.Intersection(op).Area()
}

// setPartitions records the partition ids computed for s by the loader.
func (s *Shape) setPartitions(ids []int32) {
	s.Partitions = ids
}
