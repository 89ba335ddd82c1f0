package catalog

import "testing"

func testDefinition() Definition {
	return Definition{
		Version: "v1.0.0",
		Questions: map[string]Question{
			"q1": {Text: "One", Type: TypeYesNo, Section: "career-a", Scoring: Scoring{Points: 10, TargetAnswer: "yes"}},
			"q2": {Text: "Two", Type: TypeSlider, Section: "career-a", Scoring: Scoring{Points: 20}},
			"q3": {Text: "Three", Type: TypeMultipleChoice, Section: "financials-b", Scoring: Scoring{Choices: map[string]float64{"a": 5, "b": 0}}},
		},
		Sections: map[string]Section{
			"career-a":     {Questions: []string{"q1", "q2"}, TotalPoints: 30},
			"financials-b": {Questions: []string{"q3"}, TotalPoints: 5},
		},
		QuestionFlow: []string{"q1", "q2", "q3"},
		SectionFlow:  []string{"career-a", "financials-b"},
	}
}

func mustCatalog(t *testing.T, def Definition) *Catalog {
	t.Helper()
	c, err := New(def)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return c
}

func TestBuiltinIsValid(t *testing.T) {
	c := Builtin()
	if c.FirstQuestion() == "" {
		t.Fatal("builtin catalog has no first question")
	}
	if c.FlowLen() == 0 {
		t.Fatal("builtin catalog has empty flow")
	}
}

func TestFlowNavigation(t *testing.T) {
	c := mustCatalog(t, testDefinition())

	if got := c.FirstQuestion(); got != "q1" {
		t.Errorf("FirstQuestion = %q, want q1", got)
	}

	next, ok := c.NextInFlow("q1")
	if !ok || next != "q2" {
		t.Errorf("NextInFlow(q1) = %q, %v; want q2, true", next, ok)
	}

	if _, ok := c.NextInFlow("q3"); ok {
		t.Error("NextInFlow at end of flow should report absence")
	}
	if _, ok := c.NextInFlow("nope"); ok {
		t.Error("NextInFlow for unknown id should report absence")
	}

	prev, ok := c.PreviousInFlow("q2")
	if !ok || prev != "q1" {
		t.Errorf("PreviousInFlow(q2) = %q, %v; want q1, true", prev, ok)
	}
	if _, ok := c.PreviousInFlow("q1"); ok {
		t.Error("PreviousInFlow at start of flow should report absence")
	}
}

func TestLookupsReturnAbsence(t *testing.T) {
	c := mustCatalog(t, testDefinition())

	if c.Question("missing") != nil {
		t.Error("Question for unknown id should be nil")
	}
	if c.Section("missing") != nil {
		t.Error("Section for unknown id should be nil")
	}
	if c.SectionOf("missing") != nil {
		t.Error("SectionOf for unknown question should be nil")
	}
	if sec := c.SectionOf("q1"); sec == nil || sec.ID != "career-a" {
		t.Errorf("SectionOf(q1) = %v, want career-a", sec)
	}
}

func TestNextSectionStart(t *testing.T) {
	c := mustCatalog(t, testDefinition())

	start, ok := c.NextSectionStart("career-a")
	if !ok || start != "q3" {
		t.Errorf("NextSectionStart(career-a) = %q, %v; want q3, true", start, ok)
	}
	if _, ok := c.NextSectionStart("financials-b"); ok {
		t.Error("NextSectionStart for last section should report absence")
	}
}

func TestPillarOf(t *testing.T) {
	cases := []struct {
		section string
		want    Pillar
	}{
		{"career-path", PillarCareer},
		{"financials-foundations", PillarFinances},
		{"finances-basics", PillarFinances},
		{"health-habits", PillarHealth},
		{"connections-belonging", PillarConnections},
	}
	for _, tc := range cases {
		if got := PillarOf(tc.section); got != tc.want {
			t.Errorf("PillarOf(%q) = %q, want %q", tc.section, got, tc.want)
		}
	}
}

func TestSectionsOfPillar(t *testing.T) {
	c := mustCatalog(t, testDefinition())

	fin := c.SectionsOfPillar(PillarFinances)
	if len(fin) != 1 || fin[0] != "financials-b" {
		t.Errorf("SectionsOfPillar(finances) = %v, want [financials-b]", fin)
	}
	if got := c.SectionsOfPillar(PillarHealth); len(got) != 0 {
		t.Errorf("SectionsOfPillar(health) = %v, want empty", got)
	}
}

func TestPillarLastFlowPosition(t *testing.T) {
	c := mustCatalog(t, testDefinition())

	pos, ok := c.PillarLastFlowPosition(PillarCareer)
	if !ok || pos != 1 {
		t.Errorf("PillarLastFlowPosition(career) = %d, %v; want 1, true", pos, ok)
	}
	if _, ok := c.PillarLastFlowPosition(PillarHealth); ok {
		t.Error("PillarLastFlowPosition for absent pillar should report absence")
	}
}
