package scoring

import (
	"reflect"
	"testing"

	"github.com/infinitelife/pulse/internal/catalog"
)

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.New(catalog.Definition{
		Version: "v1.0.0",
		Questions: map[string]catalog.Question{
			"q1": {Text: "One", Type: catalog.TypeYesNo, Section: "career-a", Scoring: catalog.Scoring{Points: 10, TargetAnswer: "yes"}},
			"q2": {Text: "Two", Type: catalog.TypeSlider, Section: "career-a", Scoring: catalog.Scoring{Points: 20}},
			"q3": {Text: "Three", Type: catalog.TypeMultipleChoice, Section: "career-a", Scoring: catalog.Scoring{Choices: map[string]float64{"a": 5, "b": 0}}},
			"q4": {Text: "Four", Type: catalog.TypeSlider, Section: "health-b", Scoring: catalog.Scoring{Points: 10}},
		},
		Sections: map[string]catalog.Section{
			"career-a": {Questions: []string{"q1", "q2", "q3"}, TotalPoints: 35},
			"health-b": {Questions: []string{"q4"}, TotalPoints: 10},
		},
		QuestionFlow: []string{"q1", "q2", "q3", "q4"},
		SectionFlow:  []string{"career-a", "health-b"},
	})
	if err != nil {
		t.Fatalf("catalog.New: %v", err)
	}
	return c
}

// adaptiveCatalog mirrors the canonical skip scenario: a 100-point
// section whose trigger fires after 10 achievable points.
func adaptiveCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.New(catalog.Definition{
		Version: "v1.0.0",
		Questions: map[string]catalog.Question{
			"t1": {Text: "Trigger", Type: catalog.TypeSlider, Section: "career-deep", Scoring: catalog.Scoring{Points: 10}},
			"t2": {Text: "Rest", Type: catalog.TypeSlider, Section: "career-deep", Scoring: catalog.Scoring{Points: 90}},
			"n1": {Text: "Next", Type: catalog.TypeSlider, Section: "health-next", Scoring: catalog.Scoring{Points: 10}},
		},
		Sections: map[string]catalog.Section{
			"career-deep": {
				Questions:        []string{"t1", "t2"},
				TotalPoints:      100,
				AdaptiveTriggers: []string{"t1"},
				AdaptiveMaxScore: 10,
			},
			"health-next": {Questions: []string{"n1"}, TotalPoints: 10},
		},
		QuestionFlow: []string{"t1", "t2", "n1"},
		SectionFlow:  []string{"career-deep", "health-next"},
	})
	if err != nil {
		t.Fatalf("catalog.New: %v", err)
	}
	return c
}

func TestAggregateSpecScenario(t *testing.T) {
	c := testCatalog(t)
	answers := AnswerSet{
		"q1": Text("yes"),  // 10
		"q2": Number(5),    // 10.0
	}

	totals := Aggregate(c, answers)
	if totals["career-a"] != 20 {
		t.Errorf("career-a total = %v, want 20", totals["career-a"])
	}
	if _, ok := totals["health-b"]; ok {
		t.Error("unanswered section should not appear in totals")
	}
}

func TestAggregateIsIdempotent(t *testing.T) {
	c := testCatalog(t)
	answers := AnswerSet{"q1": Text("yes"), "q2": Number(7), "q4": Number(3)}

	first := Aggregate(c, answers)
	second := Aggregate(c, answers)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated aggregation diverged: %v vs %v", first, second)
	}
}

func TestAggregateSkipsUnknownQuestions(t *testing.T) {
	c := testCatalog(t)
	answers := AnswerSet{"q1": Text("yes"), "q_ghost": Number(9)}

	totals := Aggregate(c, answers)
	if totals["career-a"] != 10 {
		t.Errorf("career-a total = %v, want 10", totals["career-a"])
	}
}

func TestAggregateMonotonicity(t *testing.T) {
	c := testCatalog(t)
	answers := AnswerSet{"q1": Text("yes")}
	before := Aggregate(c, answers)["career-a"]

	answers["q3"] = Text("a")
	after := Aggregate(c, answers)["career-a"]
	if after < before {
		t.Errorf("adding a scoring answer decreased the total: %v -> %v", before, after)
	}
}

func TestSectionMastered(t *testing.T) {
	c := adaptiveCatalog(t)
	sec := c.Section("career-deep")

	// Trigger answered at 8/10 with threshold 0.80.
	answers := AnswerSet{"t1": Number(8)}
	raw := Aggregate(c, answers)
	if !SectionMastered(sec, answers, raw, 0.80) {
		t.Error("8/10 at threshold 0.80 should qualify")
	}
	if SectionMastered(sec, answers, raw, 0.90) {
		t.Error("8/10 at threshold 0.90 should not qualify")
	}

	// Same score without the trigger answered.
	if SectionMastered(sec, AnswerSet{}, raw, 0.80) {
		t.Error("unanswered trigger should never qualify")
	}

	// Sections without adaptive scoring never qualify.
	if SectionMastered(c.Section("health-next"), answers, raw, 0.80) {
		t.Error("section without adaptive_max_score should never qualify")
	}
}

func TestDisplayScoresClampIsScratchOnly(t *testing.T) {
	c := adaptiveCatalog(t)
	answers := AnswerSet{"t1": Number(8)}
	raw := Aggregate(c, answers)

	display, completed := DisplayScores(c, answers, raw, 0.80)
	if display["career-deep"] != 100 {
		t.Errorf("display score = %v, want full credit 100", display["career-deep"])
	}
	if !completed["career-deep"] {
		t.Error("career-deep should be reported as completed")
	}
	if raw["career-deep"] != 8 {
		t.Errorf("raw score mutated to %v; clamp must be display-only", raw["career-deep"])
	}
}

func TestDisplayScoresBelowThreshold(t *testing.T) {
	c := adaptiveCatalog(t)
	answers := AnswerSet{"t1": Number(7)} // 7/10 < 0.80
	raw := Aggregate(c, answers)

	display, completed := DisplayScores(c, answers, raw, 0.80)
	if display["career-deep"] != 7 {
		t.Errorf("display score = %v, want raw 7", display["career-deep"])
	}
	if len(completed) != 0 {
		t.Errorf("no section should be completed, got %v", completed)
	}
}
