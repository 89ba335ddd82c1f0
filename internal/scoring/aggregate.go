package scoring

import "github.com/infinitelife/pulse/internal/catalog"

// Aggregate re-derives per-section totals from the complete answer set.
// It is idempotent: the same answers always produce the same totals,
// with no incremental drift. Answers for unknown questions are skipped.
// Only sections with at least one answered question appear in the map.
func Aggregate(cat *catalog.Catalog, answers AnswerSet) map[string]float64 {
	totals := make(map[string]float64)
	for qid, ans := range answers {
		q := cat.Question(qid)
		if q == nil {
			continue
		}
		totals[q.Section] += Score(q, ans)
	}
	return totals
}

// SectionMastered reports whether a section qualifies for early
// full-credit completion: at least one of its adaptive triggers has
// been answered and the running score has reached the threshold
// fraction of the section's adaptive max score.
func SectionMastered(sec *catalog.Section, answers AnswerSet, raw map[string]float64, threshold float64) bool {
	if sec == nil || sec.AdaptiveMaxScore <= 0 {
		return false
	}
	triggered := false
	for _, qid := range sec.AdaptiveTriggers {
		if _, ok := answers[qid]; ok {
			triggered = true
			break
		}
	}
	if !triggered {
		return false
	}
	return raw[sec.ID]/sec.AdaptiveMaxScore >= threshold
}

// DisplayScores returns a scratch copy of the raw section totals with
// adaptively mastered sections clamped to full credit, plus the set of
// sections that were finalized. The clamp is display-only: raw
// per-question scores are never rewritten, so a later answer edit still
// recomputes correctly from raw data.
func DisplayScores(cat *catalog.Catalog, answers AnswerSet, raw map[string]float64, threshold float64) (map[string]float64, map[string]bool) {
	display := make(map[string]float64, len(raw))
	for k, v := range raw {
		display[k] = v
	}

	completed := make(map[string]bool)
	for _, secID := range cat.Sections() {
		sec := cat.Section(secID)
		if SectionMastered(sec, answers, raw, threshold) {
			display[secID] = sec.TotalPoints
			completed[secID] = true
		}
	}
	return display, completed
}
