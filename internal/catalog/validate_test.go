package catalog

import (
	"strings"
	"testing"
)

func TestValidateRejectsDanglingFlowReference(t *testing.T) {
	def := testDefinition()
	def.QuestionFlow = append(def.QuestionFlow, "q_ghost")

	_, err := New(def)
	if err == nil {
		t.Fatal("expected error for dangling flow reference")
	}
	if !strings.Contains(err.Error(), "q_ghost") {
		t.Errorf("error should name the dangling question: %v", err)
	}
}

func TestValidateRejectsEmptyFlow(t *testing.T) {
	def := testDefinition()
	def.QuestionFlow = nil

	if _, err := New(def); err == nil {
		t.Fatal("expected error for empty question_flow")
	}
}

func TestValidateRejectsDanglingSection(t *testing.T) {
	def := testDefinition()
	q := def.Questions["q1"]
	q.Section = "nowhere"
	def.Questions["q1"] = q

	if _, err := New(def); err == nil {
		t.Fatal("expected error for question referencing nonexistent section")
	}
}

func TestValidateRejectsBadVersion(t *testing.T) {
	def := testDefinition()
	def.Version = "1.0"

	_, err := New(def)
	if err == nil {
		t.Fatal("expected error for non-semver version")
	}
	if !strings.Contains(err.Error(), "semver") {
		t.Errorf("error should mention semver: %v", err)
	}
}

func TestValidateRejectsForeignTrigger(t *testing.T) {
	def := testDefinition()
	sec := def.Sections["career-a"]
	sec.AdaptiveTriggers = []string{"q3"} // belongs to financials-b
	sec.AdaptiveMaxScore = 10
	def.Sections["career-a"] = sec

	if _, err := New(def); err == nil {
		t.Fatal("expected error for trigger from another section")
	}
}

func TestValidateRejectsTriggerWithoutMaxScore(t *testing.T) {
	def := testDefinition()
	sec := def.Sections["career-a"]
	sec.AdaptiveTriggers = []string{"q1"}
	def.Sections["career-a"] = sec

	if _, err := New(def); err == nil {
		t.Fatal("expected error for triggers without adaptive_max_score")
	}
}

func TestValidateRejectsSectionMissingFromSectionFlow(t *testing.T) {
	def := testDefinition()
	def.SectionFlow = []string{"career-a"}

	if _, err := New(def); err == nil {
		t.Fatal("expected error for section missing from section_flow")
	}
}

func TestValidateCollectsMultipleProblems(t *testing.T) {
	def := testDefinition()
	def.Version = "bogus"
	def.QuestionFlow = append(def.QuestionFlow, "q_ghost")

	_, err := New(def)
	if err == nil {
		t.Fatal("expected combined validation error")
	}
	msg := err.Error()
	if !strings.Contains(msg, "semver") || !strings.Contains(msg, "q_ghost") {
		t.Errorf("error should report all problems, got: %v", err)
	}
}
