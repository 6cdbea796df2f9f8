package georelate

import "testing"

func TestClassifyMBR(t *testing.T) {
	cases := []struct {
		name   string
		r, s   *Shape
		want   MBRCase
	}{
		{"equal", NewRectangleShape(0, 0, 10, 10), NewRectangleShape(0, 0, 10, 10), MBREqual},
		{"s_in_r", NewRectangleShape(0, 0, 10, 10), NewRectangleShape(2, 2, 4, 4), MBRSInR},
		{"r_in_s", NewRectangleShape(2, 2, 4, 4), NewRectangleShape(0, 0, 10, 10), MBRRInS},
		{"intersect", NewRectangleShape(0, 0, 10, 10), NewRectangleShape(5, 5, 15, 15), MBRIntersect},
		{"plus_cross", NewRectangleShape(-10, -1, 10, 1), NewRectangleShape(-1, -10, 1, 10), MBRCross},
		{"plus_cross_swapped", NewRectangleShape(-1, -10, 1, 10), NewRectangleShape(-10, -1, 10, 1), MBRCross},
	}
	for _, c := range cases {
		if got := classifyMBR(c.r, c.s); got != c.want {
			t.Errorf("%s: classifyMBR = %v, want %v", c.name, got, c.want)
		}
	}
}

func TestMBRDisjointFast(t *testing.T) {
	r := NewRectangleShape(0, 0, 5, 5)
	s := NewRectangleShape(10, 10, 15, 15)
	if !mbrDisjointFast(r, s) {
		t.Error("expected disjoint MBRs to be detected by the fast path")
	}
	s2 := NewRectangleShape(3, 3, 8, 8)
	if mbrDisjointFast(r, s2) {
		t.Error("expected overlapping MBRs not to be flagged disjoint")
	}
}
