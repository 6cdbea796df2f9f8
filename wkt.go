package georelate

import (
	"strconv"
	"strings"

	"github.com/ctessum/geom"
)

// parseWKT decodes a single-line OGC WKT literal for one of the five
// shape kinds this package supports. It is intentionally minimal: this
// is the boundary component spec.md §1 places out of scope ("assumed
// provided by a geometry library"), and no library in the example pack
// exposes WKT decoding for these shapes, so a small hand-written scanner
// stands in for it. An unrecognized prefix is reported as
// ErrInvalidDataType and any other parse failure as ErrInvalidGeometry;
// both are recoverable per-row errors.
func parseWKT(wkt string) (*Shape, error) {
	wkt = strings.TrimSpace(wkt)
	upper := strings.ToUpper(wkt)

	open := strings.IndexByte(wkt, '(')
	if open < 0 {
		return nil, newErr(StatusInvalidGeometry, "no coordinate list in %q", wkt)
	}
	prefix := strings.TrimSpace(upper[:open])
	body := wkt[open:]

	switch prefix {
	case "POINT":
		pts, err := parseCoordList(stripOuterParens(body))
		if err != nil || len(pts) != 1 {
			return nil, newErr(StatusInvalidGeometry, "malformed POINT: %q", wkt)
		}
		return NewPointShape(pts[0].X, pts[0].Y), nil
	case "LINESTRING":
		pts, err := parseCoordList(stripOuterParens(body))
		if err != nil || len(pts) < 2 {
			return nil, newErr(StatusInvalidGeometry, "malformed LINESTRING: %q", wkt)
		}
		return NewLinestringShape(pts), nil
	case "BOX":
		pts, err := parseCoordList(stripOuterParens(body))
		if err != nil || len(pts) != 2 {
			return nil, newErr(StatusInvalidGeometry, "malformed BOX: %q", wkt)
		}
		return NewRectangleShape(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y), nil
	case "POLYGON":
		rings, err := parseRingList(body)
		if err != nil || len(rings) == 0 {
			return nil, newErr(StatusInvalidGeometry, "malformed POLYGON: %q", wkt)
		}
		return NewPolygonShape(rings), nil
	case "MULTIPOLYGON":
		polys, err := parsePolygonList(body)
		if err != nil || len(polys) == 0 {
			return nil, newErr(StatusInvalidGeometry, "malformed MULTIPOLYGON: %q", wkt)
		}
		return NewMultiPolygonShape(polys), nil
	default:
		return nil, newErr(StatusInvalidDataType, "unrecognized WKT prefix %q", prefix)
	}
}

// stripOuterParens removes exactly one matching pair of enclosing
// parentheses, tolerating surrounding whitespace.
func stripOuterParens(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 2 && s[0] == '(' && s[len(s)-1] == ')' {
		return s[1 : len(s)-1]
	}
	return s
}

// parseCoordList parses a comma-separated "x y" coordinate list with no
// nested parentheses, e.g. "1 2, 3 4".
func parseCoordList(s string) ([]geom.Point, error) {
	parts := strings.Split(s, ",")
	pts := make([]geom.Point, 0, len(parts))
	for _, part := range parts {
		fields := strings.Fields(part)
		if len(fields) != 2 {
			return nil, newErr(StatusInvalidGeometry, "malformed coordinate %q", part)
		}
		x, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return nil, err
		}
		y, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, err
		}
		pts = append(pts, geom.Point{X: x, Y: y})
	}
	return pts, nil
}

// parseRingList parses "((x y, x y, ...), (x y, ...), ...)", the ring
// list of a single POLYGON.
func parseRingList(s string) ([][]geom.Point, error) {
	s = stripOuterParens(s)
	groups, err := splitParenGroups(s)
	if err != nil {
		return nil, err
	}
	rings := make([][]geom.Point, 0, len(groups))
	for _, g := range groups {
		pts, err := parseCoordList(stripOuterParens(g))
		if err != nil || len(pts) < 3 {
			return nil, newErr(StatusInvalidGeometry, "malformed ring %q", g)
		}
		rings = append(rings, pts)
	}
	return rings, nil
}

// parsePolygonList parses "(((ring, ring), (ring)), ((ring)), ...)", the
// polygon list of a MULTIPOLYGON.
func parsePolygonList(s string) ([][][]geom.Point, error) {
	s = stripOuterParens(s)
	groups, err := splitParenGroups(s)
	if err != nil {
		return nil, err
	}
	polys := make([][][]geom.Point, 0, len(groups))
	for _, g := range groups {
		rings, err := parseRingList(g)
		if err != nil {
			return nil, err
		}
		polys = append(polys, rings)
	}
	return polys, nil
}

// splitParenGroups splits s on top-level commas, where "top-level" means
// outside of any parenthesis nesting, returning each parenthesized group
// including its own parens.
func splitParenGroups(s string) ([]string, error) {
	var groups []string
	depth := 0
	start := -1
	for i, r := range s {
		switch r {
		case '(':
			if depth == 0 {
				start = i
			}
			depth++
		case ')':
			depth--
			if depth == 0 {
				if start < 0 {
					return nil, newErr(StatusInvalidGeometry, "unbalanced parentheses in %q", s)
				}
				groups = append(groups, s[start:i+1])
				start = -1
			}
			if depth < 0 {
				return nil, newErr(StatusInvalidGeometry, "unbalanced parentheses in %q", s)
			}
		}
	}
	if depth != 0 {
		return nil, newErr(StatusInvalidGeometry, "unbalanced parentheses in %q", s)
	}
	return groups, nil
}

// shapeKindFromWKT returns the ShapeKind implied by a WKT literal's
// leading token without parsing its coordinates. The loader does not
// call it; parseWKT reads the prefix itself.
func shapeKindFromWKT(wkt string) ShapeKind {
	wkt = strings.TrimSpace(wkt)
	open := strings.IndexByte(wkt, '(')
	if open < 0 {
		return KindInvalid
	}
	switch strings.TrimSpace(strings.ToUpper(wkt[:open])) {
	case "POINT":
		return KindPoint
	case "LINESTRING":
		return KindLinestring
	case "BOX":
		return KindRectangle
	case "POLYGON":
		return KindPolygon
	case "MULTIPOLYGON":
		return KindMultiPolygon
	default:
		return KindInvalid
	}
}
