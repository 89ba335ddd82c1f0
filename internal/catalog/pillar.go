package catalog

import "strings"

// Pillar is one of the four top-level life-domain groupings that
// sections roll up into.
type Pillar string

const (
	PillarCareer      Pillar = "career"
	PillarFinances    Pillar = "finances"
	PillarHealth      Pillar = "health"
	PillarConnections Pillar = "connections"
)

// AllPillars returns the four pillars in display order.
func AllPillars() []Pillar {
	return []Pillar{PillarCareer, PillarFinances, PillarHealth, PillarConnections}
}

// PillarDisplayName returns a human-readable name for a pillar.
func PillarDisplayName(p Pillar) string {
	switch p {
	case PillarCareer:
		return "Career"
	case PillarFinances:
		return "Financial Wellbeing"
	case PillarHealth:
		return "Health"
	case PillarConnections:
		return "Connections"
	default:
		return string(p)
	}
}

// PillarOf derives the pillar from a section identifier: the prefix up
// to the first "-". Legacy catalogs used "financials" for the finances
// pillar; the alias is normalized here.
func PillarOf(sectionID string) Pillar {
	prefix, _, _ := strings.Cut(sectionID, "-")
	if prefix == "financials" {
		return PillarFinances
	}
	return Pillar(prefix)
}

// SectionsOfPillar returns the catalog's section IDs belonging to the
// given pillar, in section-flow order.
func (c *Catalog) SectionsOfPillar(p Pillar) []string {
	var out []string
	for _, id := range c.sectionFlow {
		if PillarOf(id) == p {
			out = append(out, id)
		}
	}
	return out
}

// PillarLastFlowPosition returns the flow position of the last question
// belonging to the given pillar, or false when the pillar has no
// questions in the flow.
func (c *Catalog) PillarLastFlowPosition(p Pillar) (int, bool) {
	last, found := 0, false
	for i, qid := range c.questionFlow {
		q := c.questions[qid]
		if q == nil {
			continue
		}
		if PillarOf(q.Section) == p {
			last, found = i, true
		}
	}
	return last, found
}
