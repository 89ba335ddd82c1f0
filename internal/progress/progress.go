// Package progress converts section scores into normalized per-pillar
// percentages for display.
package progress

import (
	"math"

	"github.com/infinitelife/pulse/internal/catalog"
)

// Calculate maps each of the four pillars to a percentage in [0, 100].
//
// earned/possible are summed over the pillar's sections from the given
// (display-clamped) section scores. nextPos is the flow index of the
// next question to present; pass cat.FlowLen() for a completed session.
// A pillar whose last question lies before nextPos is forced to exactly
// 100: no partial credit is shown once a whole life area is behind the
// user. Pillars with zero possible points read 0.
func Calculate(cat *catalog.Catalog, sectionScores map[string]float64, nextPos int) map[catalog.Pillar]float64 {
	out := make(map[catalog.Pillar]float64, 4)
	for _, p := range catalog.AllPillars() {
		out[p] = pillarPercent(cat, p, sectionScores, nextPos)
	}
	return out
}

func pillarPercent(cat *catalog.Catalog, p catalog.Pillar, sectionScores map[string]float64, nextPos int) float64 {
	if last, ok := cat.PillarLastFlowPosition(p); ok && nextPos > last {
		return 100
	}

	var possible, earned float64
	for _, secID := range cat.SectionsOfPillar(p) {
		sec := cat.Section(secID)
		possible += sec.TotalPoints
		earned += sectionScores[secID]
	}
	if possible == 0 {
		return 0
	}

	pct := round2(earned / possible * 100)
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
