package georelate

import (
	"fmt"
	"math"
)

// DocumentType selects one of the three text-rendering modes, configured
// per spec.md §6's INI `documenttype` key.
type DocumentType int

const (
	DocSentences DocumentType = iota
	DocParagraphs
	DocParagraphsCompressed
)

// areaEps is the threshold below which a common area is omitted from
// rendered text rather than printed as "0.00".
const areaEps = 1e-9

// renderSentence renders the sentences-mode text for an ordered pair,
// per spec.md §4.7: a topology sentence, an optional direction clause
// (meet/disjoint only), and an optional area clause.
func renderSentence(r, s *Shape, rel TopologyRelation) string {
	var out string
	if verb := rel.verb(); verb != "" {
		out += fmt.Sprintf("%s %s %s. ", r.Name, verb, s.Name)
	}
	if rel == RelMeet || rel == RelDisjoint {
		if dir := cardinalDirection(r, s); dir != DirNone {
			out += fmt.Sprintf("%s is %s of %s. ", r.Name, dir, s.Name)
		}
	}
	if area := commonAreaKm2(r, s, rel); area >= areaEps {
		out += fmt.Sprintf("%s and %s have approximately %.2f square kilometers of common area. ", r.Name, s.Name, area)
	}
	return out
}

// renderParagraphLeg renders one direction's paragraph-mode contribution
// (the topology sentence plus its optional direction and area clauses),
// used for both the forward and, when not a self-join, reverse leg.
func renderParagraphLeg(r, s *Shape, rel TopologyRelation, dir CardinalDirection) string {
	var out string
	if verb := rel.verb(); verb != "" {
		out += fmt.Sprintf("%s %s %s. ", r.Name, verb, s.Name)
	}
	if (rel == RelMeet || rel == RelDisjoint) && dir != DirNone {
		out += fmt.Sprintf("%s is %s of %s. ", r.Name, dir, s.Name)
	}
	if area := commonAreaKm2(r, s, rel); area >= areaEps {
		out += fmt.Sprintf("%s and %s have approximately %.2f square kilometers of common area. ", r.Name, s.Name, area)
	}
	return out
}

// renderCompressed renders one paragraphs_compressed sentence for an
// ordered pair, per spec.md §4.7's single-sentence template: the verb
// clause, an optional direction fragment for meet/disjoint, or an
// optional area fragment for every other relation.
func renderCompressed(r, s *Shape, rel TopologyRelation, dir CardinalDirection, area float64) string {
	verb := rel.verb()
	if verb == "" {
		return ""
	}
	switch {
	case (rel == RelMeet || rel == RelDisjoint) && dir != DirNone:
		return fmt.Sprintf("%s %s and %s of %s. ", r.Name, verb, dir, s.Name)
	case rel != RelMeet && rel != RelDisjoint && area >= areaEps:
		return fmt.Sprintf("%s %s %s, and they have %.2f square km of area in common. ", r.Name, verb, s.Name, math.Round(area*100)/100)
	default:
		return fmt.Sprintf("%s %s %s. ", r.Name, verb, s.Name)
	}
}
