package scoring

import (
	"testing"

	"github.com/infinitelife/pulse/internal/catalog"
)

func sliderQ(points float64) *catalog.Question {
	return &catalog.Question{ID: "s", Type: catalog.TypeSlider, Section: "career-a", Scoring: catalog.Scoring{Points: points}}
}

func yesNoQ(points float64, target string) *catalog.Question {
	return &catalog.Question{ID: "y", Type: catalog.TypeYesNo, Section: "career-a", Scoring: catalog.Scoring{Points: points, TargetAnswer: target}}
}

func choiceQ(choices map[string]float64) *catalog.Question {
	return &catalog.Question{ID: "m", Type: catalog.TypeMultipleChoice, Section: "career-a", Scoring: catalog.Scoring{Choices: choices}}
}

func TestScoreSlider(t *testing.T) {
	cases := []struct {
		name   string
		points float64
		ans    Answer
		want   float64
	}{
		{"mid scale", 20, Number(5), 10},
		{"full scale", 20, Number(10), 20},
		{"zero", 20, Number(0), 0},
		{"numeric string", 20, Text("5"), 10},
		{"non-numeric defaults to zero", 20, Text("lots"), 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Score(sliderQ(tc.points), tc.ans); got != tc.want {
				t.Errorf("Score = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestScoreYesNo(t *testing.T) {
	q := yesNoQ(10, "yes")

	if got := Score(q, Text("yes")); got != 10 {
		t.Errorf("exact match = %v, want 10", got)
	}
	if got := Score(q, Text("YES")); got != 10 {
		t.Errorf("case-insensitive match = %v, want 10", got)
	}
	if got := Score(q, Text("no")); got != 0 {
		t.Errorf("mismatch = %v, want 0", got)
	}
	if got := Score(yesNoQ(10, ""), Text("yes")); got != 0 {
		t.Errorf("missing target = %v, want 0", got)
	}
}

func TestScoreMultipleChoice(t *testing.T) {
	q := choiceQ(map[string]float64{"a": 5, "b": 0})

	if got := Score(q, Text("a")); got != 5 {
		t.Errorf("known key = %v, want 5", got)
	}
	if got := Score(q, Text("c")); got != 0 {
		t.Errorf("unknown key = %v, want 0 (no rejection)", got)
	}
	if got := Score(choiceQ(nil), Text("a")); got != 0 {
		t.Errorf("missing choices = %v, want 0", got)
	}
}

func TestScoreUnknownType(t *testing.T) {
	q := &catalog.Question{ID: "x", Type: "freeform", Scoring: catalog.Scoring{Points: 10}}
	if got := Score(q, Text("anything")); got != 0 {
		t.Errorf("unknown type = %v, want 0", got)
	}
	if got := Score(nil, Text("anything")); got != 0 {
		t.Errorf("nil question = %v, want 0", got)
	}
}
