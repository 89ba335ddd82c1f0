package progress

import (
	"testing"

	"github.com/infinitelife/pulse/internal/catalog"
)

func progressCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.New(catalog.Definition{
		Version: "v1.0.0",
		Questions: map[string]catalog.Question{
			"c1": {Text: "Career", Type: catalog.TypeSlider, Section: "career-a", Scoring: catalog.Scoring{Points: 30}},
			"f1": {Text: "Money", Type: catalog.TypeSlider, Section: "financials-a", Scoring: catalog.Scoring{Points: 60}},
			"h1": {Text: "Health", Type: catalog.TypeSlider, Section: "health-a", Scoring: catalog.Scoring{Points: 50}},
			"x1": {Text: "Bonds", Type: catalog.TypeYesNo, Section: "connections-a", Scoring: catalog.Scoring{Points: 40, TargetAnswer: "yes"}},
		},
		Sections: map[string]catalog.Section{
			"career-a":      {Questions: []string{"c1"}, TotalPoints: 30},
			"financials-a":  {Questions: []string{"f1"}, TotalPoints: 60},
			"health-a":      {Questions: []string{"h1"}, TotalPoints: 50},
			"connections-a": {Questions: []string{"x1"}, TotalPoints: 40},
		},
		QuestionFlow: []string{"c1", "f1", "h1", "x1"},
		SectionFlow:  []string{"career-a", "financials-a", "health-a", "connections-a"},
	})
	if err != nil {
		t.Fatalf("catalog.New: %v", err)
	}
	return c
}

func TestCalculateBasicPercentages(t *testing.T) {
	c := progressCatalog(t)
	scores := map[string]float64{
		"career-a":     15,   // 50%
		"financials-a": 20,   // 33.33%
	}

	// Position 1: only c1 has been passed, so career is forced to 100
	// while finances keeps its arithmetic percentage.
	got := Calculate(c, scores, 1)
	if got[catalog.PillarCareer] != 100 {
		t.Errorf("career = %v, want 100 (fully traversed)", got[catalog.PillarCareer])
	}
	if got[catalog.PillarFinances] != 33.33 {
		t.Errorf("finances = %v, want 33.33", got[catalog.PillarFinances])
	}
	if got[catalog.PillarHealth] != 0 {
		t.Errorf("health = %v, want 0", got[catalog.PillarHealth])
	}
}

func TestCalculateCompletedSession(t *testing.T) {
	c := progressCatalog(t)
	got := Calculate(c, map[string]float64{}, c.FlowLen())
	for _, p := range catalog.AllPillars() {
		if got[p] != 100 {
			t.Errorf("%s = %v, want 100 on completion", p, got[p])
		}
	}
}

func TestCalculateClampsOverflow(t *testing.T) {
	c := progressCatalog(t)
	// Display-clamped scores can never exceed total_points, but defend
	// against drift from stored legacy state anyway.
	got := Calculate(c, map[string]float64{"health-a": 75}, 2)
	if got[catalog.PillarHealth] != 100 {
		t.Errorf("health = %v, want clamp to 100", got[catalog.PillarHealth])
	}
}

func TestCalculateZeroPossibleReadsZero(t *testing.T) {
	c, err := catalog.New(catalog.Definition{
		Version: "v1.0.0",
		Questions: map[string]catalog.Question{
			"c1": {Text: "Career", Type: catalog.TypeSlider, Section: "career-a", Scoring: catalog.Scoring{Points: 30}},
		},
		Sections: map[string]catalog.Section{
			"career-a": {Questions: []string{"c1"}, TotalPoints: 30},
		},
		QuestionFlow: []string{"c1"},
		SectionFlow:  []string{"career-a"},
	})
	if err != nil {
		t.Fatalf("catalog.New: %v", err)
	}

	got := Calculate(c, nil, 0)
	if got[catalog.PillarHealth] != 0 {
		t.Errorf("pillar with no sections = %v, want 0 (no division error)", got[catalog.PillarHealth])
	}
}

func TestCalculateRoundsToTwoDecimals(t *testing.T) {
	c := progressCatalog(t)
	got := Calculate(c, map[string]float64{"financials-a": 40}, 0)
	if got[catalog.PillarFinances] != 66.67 {
		t.Errorf("finances = %v, want 66.67", got[catalog.PillarFinances])
	}
}
