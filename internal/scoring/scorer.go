package scoring

import (
	"strings"

	"github.com/infinitelife/pulse/internal/catalog"
)

// Score computes the score for one (question, answer) pair. It is pure
// and never fails: malformed shapes, unknown choice keys and missing
// scoring sub-rules all resolve to zero so a single bad answer degrades
// gracefully instead of aborting the submission.
func Score(q *catalog.Question, a Answer) float64 {
	if q == nil {
		return 0
	}

	switch q.Type {
	case catalog.TypeSlider:
		// Slider answers are on a 0-10 scale.
		v, ok := a.Number()
		if !ok {
			return 0
		}
		return v / 10 * q.Scoring.Points

	case catalog.TypeYesNo:
		if q.Scoring.TargetAnswer == "" {
			return 0
		}
		if strings.EqualFold(a.String(), q.Scoring.TargetAnswer) {
			return q.Scoring.Points
		}
		return 0

	case catalog.TypeMultipleChoice:
		return q.Scoring.Choices[a.String()]

	default:
		return 0
	}
}
