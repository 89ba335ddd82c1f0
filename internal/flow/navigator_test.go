package flow

import (
	"errors"
	"testing"

	"github.com/infinitelife/pulse/internal/catalog"
	"github.com/infinitelife/pulse/internal/scoring"
)

func navCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.New(catalog.Definition{
		Version: "v1.0.0",
		Questions: map[string]catalog.Question{
			"t1": {Text: "Trigger", Type: catalog.TypeSlider, Section: "career-deep", Scoring: catalog.Scoring{Points: 10}},
			"t2": {Text: "Rest", Type: catalog.TypeSlider, Section: "career-deep", Scoring: catalog.Scoring{Points: 90}},
			"n1": {Text: "Next one", Type: catalog.TypeSlider, Section: "health-next", Scoring: catalog.Scoring{Points: 10}},
			"n2": {Text: "Next two", Type: catalog.TypeYesNo, Section: "health-next", Scoring: catalog.Scoring{Points: 10, TargetAnswer: "yes"}},
		},
		Sections: map[string]catalog.Section{
			"career-deep": {
				Questions:        []string{"t1", "t2"},
				TotalPoints:      100,
				AdaptiveTriggers: []string{"t1"},
				AdaptiveMaxScore: 10,
			},
			"health-next": {Questions: []string{"n1", "n2"}, TotalPoints: 20},
		},
		QuestionFlow: []string{"t1", "t2", "n1", "n2"},
		SectionFlow:  []string{"career-deep", "health-next"},
	})
	if err != nil {
		t.Fatalf("catalog.New: %v", err)
	}
	return c
}

func TestNextDefaultTransition(t *testing.T) {
	nav := NewNavigator(navCatalog(t), 0.80)

	// Below the mastery threshold the flow stays linear.
	answers := scoring.AnswerSet{"t1": scoring.Number(5)}
	raw := map[string]float64{"career-deep": 5}

	tr, err := nav.Next("t1", answers, raw)
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if tr.Next != "t2" || tr.Completed || tr.SkippedFrom != "" {
		t.Errorf("transition = %+v, want linear advance to t2", tr)
	}
}

func TestNextAdaptiveSkip(t *testing.T) {
	nav := NewNavigator(navCatalog(t), 0.80)

	// 8/10 on the trigger reaches the 0.80 threshold: jump to the
	// first question of the next section, skipping t2.
	answers := scoring.AnswerSet{"t1": scoring.Number(8)}
	raw := map[string]float64{"career-deep": 8}

	tr, err := nav.Next("t1", answers, raw)
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if tr.Next != "n1" {
		t.Errorf("Next = %q, want n1 (skip rest of career-deep)", tr.Next)
	}
	if tr.SkippedFrom != "career-deep" {
		t.Errorf("SkippedFrom = %q, want career-deep", tr.SkippedFrom)
	}
}

func TestNextSkipFromLastSectionCompletes(t *testing.T) {
	c, err := catalog.New(catalog.Definition{
		Version: "v1.0.0",
		Questions: map[string]catalog.Question{
			"t1": {Text: "Trigger", Type: catalog.TypeSlider, Section: "career-only", Scoring: catalog.Scoring{Points: 10}},
			"t2": {Text: "Rest", Type: catalog.TypeSlider, Section: "career-only", Scoring: catalog.Scoring{Points: 90}},
		},
		Sections: map[string]catalog.Section{
			"career-only": {
				Questions:        []string{"t1", "t2"},
				TotalPoints:      100,
				AdaptiveTriggers: []string{"t1"},
				AdaptiveMaxScore: 10,
			},
		},
		QuestionFlow: []string{"t1", "t2"},
		SectionFlow:  []string{"career-only"},
	})
	if err != nil {
		t.Fatalf("catalog.New: %v", err)
	}
	nav := NewNavigator(c, 0.80)

	tr, err := nav.Next("t1", scoring.AnswerSet{"t1": scoring.Number(9)}, map[string]float64{"career-only": 9})
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if !tr.Completed {
		t.Errorf("skip from last section should complete, got %+v", tr)
	}
}

func TestNextEndOfFlowCompletes(t *testing.T) {
	nav := NewNavigator(navCatalog(t), 0.80)

	tr, err := nav.Next("n2", scoring.AnswerSet{"n2": scoring.Text("yes")}, map[string]float64{"health-next": 10})
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if !tr.Completed || tr.Next != "" {
		t.Errorf("final question should complete, got %+v", tr)
	}
}

func TestNextUnknownQuestion(t *testing.T) {
	nav := NewNavigator(navCatalog(t), 0.80)

	if _, err := nav.Next("ghost", nil, nil); !errors.Is(err, ErrUnknownQuestion) {
		t.Errorf("err = %v, want ErrUnknownQuestion", err)
	}
}

func TestPrevious(t *testing.T) {
	nav := NewNavigator(navCatalog(t), 0.80)

	prev, err := nav.Previous("t2")
	if err != nil || prev != "t1" {
		t.Errorf("Previous(t2) = %q, %v; want t1", prev, err)
	}

	if _, err := nav.Previous("t1"); !errors.Is(err, ErrAtStart) {
		t.Errorf("Previous at start = %v, want ErrAtStart", err)
	}
	if _, err := nav.Previous("ghost"); !errors.Is(err, ErrUnknownQuestion) {
		t.Errorf("Previous unknown = %v, want ErrUnknownQuestion", err)
	}
}

// Moving back across an adaptive skip needs no special restore: the
// previous question is simply the flow predecessor.
func TestPreviousIgnoresAdaptiveSkips(t *testing.T) {
	nav := NewNavigator(navCatalog(t), 0.80)

	prev, err := nav.Previous("n1")
	if err != nil || prev != "t2" {
		t.Errorf("Previous(n1) = %q, %v; want t2 (sequential order)", prev, err)
	}
}
