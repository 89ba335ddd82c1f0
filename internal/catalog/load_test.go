package catalog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const validArtifact = `{
  "version": "v2.0.0",
  "questions": {
    "q1": {"text": "Do you save monthly?", "type": "yes-no", "section": "finances-basics",
           "scoring": {"points": 10, "target_answer": "yes"}},
    "q2": {"text": "Financial confidence?", "type": "slider", "section": "finances-basics",
           "scoring": {"points": 20}}
  },
  "sections": {
    "finances-basics": {"questions": ["q1", "q2"], "total_points": 30}
  },
  "question_flow": ["q1", "q2"],
  "section_flow": ["finances-basics"]
}`

func TestLoadValidArtifact(t *testing.T) {
	c, err := Load([]byte(validArtifact))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Version() != "v2.0.0" {
		t.Errorf("Version = %q, want v2.0.0", c.Version())
	}
	q := c.Question("q1")
	if q == nil || q.Type != TypeYesNo || q.Scoring.TargetAnswer != "yes" {
		t.Errorf("q1 not loaded correctly: %+v", q)
	}
}

func TestLoadRejectsInvalidJSON(t *testing.T) {
	_, err := Load([]byte("{not json"))
	if err == nil || !strings.Contains(err.Error(), "JSON") {
		t.Fatalf("expected JSON error, got %v", err)
	}
}

func TestLoadRejectsSchemaViolation(t *testing.T) {
	// Question type outside the enum.
	bad := strings.Replace(validArtifact, `"yes-no"`, `"freeform"`, 1)
	_, err := Load([]byte(bad))
	if err == nil || !strings.Contains(err.Error(), "schema") {
		t.Fatalf("expected schema validation error, got %v", err)
	}
}

func TestLoadRejectsMissingRequiredField(t *testing.T) {
	bad := strings.Replace(validArtifact, `"version": "v2.0.0",`, "", 1)
	if _, err := Load([]byte(bad)); err == nil {
		t.Fatal("expected error for missing version")
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	if err := os.WriteFile(path, []byte(validArtifact), 0o644); err != nil {
		t.Fatal(err)
	}

	c, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if c.FirstQuestion() != "q1" {
		t.Errorf("FirstQuestion = %q, want q1", c.FirstQuestion())
	}

	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected error for missing file")
	}
}
