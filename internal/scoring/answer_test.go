package scoring

import (
	"encoding/json"
	"testing"
)

func TestAnswerShapes(t *testing.T) {
	if v, ok := Number(7.5).Number(); !ok || v != 7.5 {
		t.Errorf("Number(7.5).Number() = %v, %v", v, ok)
	}
	if v, ok := Text("6").Number(); !ok || v != 6 {
		t.Errorf("numeric text should parse: %v, %v", v, ok)
	}
	if _, ok := Text("maybe").Number(); ok {
		t.Error("non-numeric text should not parse as number")
	}
	if got := Number(5).String(); got != "5" {
		t.Errorf("Number(5).String() = %q, want 5", got)
	}
}

func TestAnswerUnmarshalAcceptsLegacyShapes(t *testing.T) {
	var set AnswerSet
	payload := `{"q1": 5, "q2": "yes", "q3": true}`
	if err := json.Unmarshal([]byte(payload), &set); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if v, ok := set["q1"].Number(); !ok || v != 5 {
		t.Errorf("q1 = %v, %v; want 5", v, ok)
	}
	if set["q2"].String() != "yes" {
		t.Errorf("q2 = %q, want yes", set["q2"].String())
	}
	if set["q3"].String() != "true" {
		t.Errorf("q3 = %q, want true", set["q3"].String())
	}

	if err := json.Unmarshal([]byte(`{"q": [1]}`), &set); err == nil {
		t.Error("array answer values should be rejected")
	}
}
