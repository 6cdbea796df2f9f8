package georelate

import "testing"

func TestRefineDisjointInsideCoveredbyMeetIntersect(t *testing.T) {
	cases := []struct {
		name string
		m    DE9IM
		want TopologyRelation
	}{
		{"disjoint", matrixDisjoint, RelDisjoint},
		{"inside", DE9IM{'0', 'F', 'F', 'F', 'F', 'F', '0', '0', '0'}, RelInside},
		{"covered_by", DE9IM{'F', 'F', 'F', '0', 'F', 'F', '0', '0', '0'}, RelCoveredBy},
		{"meet", DE9IM{'F', '0', '0', '0', 'F', '0', '0', '0', '0'}, RelMeet},
		{"intersect", DE9IM{'0', '0', '0', '0', '0', '0', '0', '0', '0'}, RelIntersect},
	}
	for _, c := range cases {
		if got := refineDisjointInsideCoveredbyMeetIntersect(c.m); got != c.want {
			t.Errorf("%s: got %v, want %v", c.name, got, c.want)
		}
	}
}

func TestRefineDisjointContainsCoversMeetIntersect(t *testing.T) {
	cases := []struct {
		name string
		m    DE9IM
		want TopologyRelation
	}{
		{"disjoint", matrixDisjoint, RelDisjoint},
		{"contains", DE9IM{'0', 'F', '0', 'F', 'F', '0', 'F', 'F', '0'}, RelContains},
		{"covers", DE9IM{'F', '0', '0', '0', '0', '0', 'F', 'F', '0'}, RelCovers},
		{"meet", DE9IM{'F', '0', '0', '0', 'F', '0', '0', '0', '0'}, RelMeet},
		{"intersect", DE9IM{'0', '0', '0', '0', '0', '0', '0', '0', '0'}, RelIntersect},
	}
	for _, c := range cases {
		if got := refineDisjointContainsCoversMeetIntersect(c.m); got != c.want {
			t.Errorf("%s: got %v, want %v", c.name, got, c.want)
		}
	}
}

func TestRefineEqualCoversCoveredbyIntersectCollapsesToContainsInside(t *testing.T) {
	equal := DE9IM{'0', '0', 'F', '0', '0', 'F', 'F', 'F', '0'}
	covers := DE9IM{'F', '0', '0', '0', '0', '0', 'F', 'F', '0'}
	coveredBy := DE9IM{'F', 'F', 'F', '0', 'F', 'F', '0', '0', '0'}

	if got := refineEqualCoversCoveredbyIntersect(equal); got != RelEqual {
		t.Errorf("equal: got %v, want RelEqual", got)
	}
	if got := refineEqualCoversCoveredbyIntersect(covers); got != RelContains {
		t.Errorf("covers should collapse to contains, got %v", got)
	}
	if got := refineEqualCoversCoveredbyIntersect(coveredBy); got != RelInside {
		t.Errorf("covered_by should collapse to inside, got %v", got)
	}
}

func TestRefineDisjointMeetIntersect(t *testing.T) {
	if got := refineDisjointMeetIntersect(matrixDisjoint); got != RelDisjoint {
		t.Errorf("got %v, want RelDisjoint", got)
	}
	meet := DE9IM{'F', '0', '0', '0', 'F', '0', '0', '0', '0'}
	if got := refineDisjointMeetIntersect(meet); got != RelMeet {
		t.Errorf("got %v, want RelMeet", got)
	}
	cross := DE9IM{'0', '0', '0', '0', '0', '0', '0', '0', '0'}
	if got := refineDisjointMeetIntersect(cross); got != RelIntersect {
		t.Errorf("got %v, want RelIntersect", got)
	}
}

func TestRefineMBRCrossIsAlwaysIntersect(t *testing.T) {
	r := square(0, 0, 10, 10)
	s := square(5, 5, 20, 20)
	if got := refine(r, s, MBRCross); got != RelIntersect {
		t.Errorf("MBRCross should always report intersect without consulting the matrix, got %v", got)
	}
}

func TestVerbTable(t *testing.T) {
	cases := map[TopologyRelation]string{
		RelIntersect: "intersects with",
		RelContains:  "contains",
		RelDisjoint:  "is disjoint with",
		RelEqual:     "is equal with",
		RelCovers:    "covers",
		RelMeet:      "is adjacent to",
		RelCoveredBy: "is covered by",
		RelInside:    "is inside of",
	}
	for rel, want := range cases {
		if got := rel.verb(); got != want {
			t.Errorf("%v.verb() = %q, want %q", rel, got, want)
		}
	}
	if got := RelInvalid.verb(); got != "" {
		t.Errorf("RelInvalid.verb() = %q, want empty", got)
	}
}
