package summary

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/infinitelife/pulse/internal/auth"
	"github.com/infinitelife/pulse/internal/catalog"
	"github.com/infinitelife/pulse/internal/llm"
	"github.com/infinitelife/pulse/internal/scoring"
	"github.com/infinitelife/pulse/internal/store"
)

const validSummaryJSON = `{
	"title": "Your Self-Discovery Summary",
	"overallSummary": "You build stability but rarely pause to enjoy it.",
	"keyInsights": [
		{"title": "The Architect of Stability", "description": "Your habits are consistent across every area."}
	],
	"actionableSteps": [
		{"pillar": "Career", "recommendation": "Explore what energises you.", "firstStep": "Keep a one-week energy journal."}
	]
}`

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.New(catalog.Definition{
		Version: "v1.0.0",
		Questions: map[string]catalog.Question{
			"c1": {Text: "How satisfied are you with your growth?", Type: catalog.TypeSlider, Section: "career-a", Scoring: catalog.Scoring{Points: 10}},
			"f1": {Text: "Do you keep a budget?", Type: catalog.TypeYesNo, Section: "financials-b", Scoring: catalog.Scoring{Points: 10, TargetAnswer: "yes"}},
		},
		Sections: map[string]catalog.Section{
			"career-a":     {Questions: []string{"c1"}, TotalPoints: 10},
			"financials-b": {Questions: []string{"f1"}, TotalPoints: 10},
		},
		QuestionFlow: []string{"c1", "f1"},
		SectionFlow:  []string{"career-a", "financials-b"},
	})
	if err != nil {
		t.Fatalf("build catalog: %v", err)
	}
	return cat
}

type memStateRepo struct {
	recs   map[string]*store.SessionRecord
	putErr error
}

func newMemStateRepo() *memStateRepo {
	return &memStateRepo{recs: map[string]*store.SessionRecord{}}
}

func (m *memStateRepo) Get(_ context.Context, userID string) (*store.SessionRecord, error) {
	rec, ok := m.recs[userID]
	if !ok {
		return nil, nil
	}
	cp := *rec
	return &cp, nil
}

func (m *memStateRepo) Put(_ context.Context, rec *store.SessionRecord) error {
	if m.putErr != nil {
		return m.putErr
	}
	cp := *rec
	m.recs[rec.UserID] = &cp
	return nil
}

func (m *memStateRepo) Delete(_ context.Context, userID string) error {
	delete(m.recs, userID)
	return nil
}

func TestGenerateParsesSummary(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(validSummaryJSON)})
	g := NewGenerator(testCatalog(t), mock, nil)

	answers := scoring.AnswerSet{"c1": scoring.Number(7), "f1": scoring.Text("yes")}
	res, err := g.Generate(context.Background(), auth.Subject{}, answers)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if res.Summary.Title != "Your Self-Discovery Summary" {
		t.Errorf("title = %q", res.Summary.Title)
	}
	if len(res.Summary.KeyInsights) != 1 || len(res.Summary.ActionableSteps) != 1 {
		t.Errorf("insights = %d, steps = %d, want 1 each", len(res.Summary.KeyInsights), len(res.Summary.ActionableSteps))
	}
	if res.StorageErr != nil {
		t.Errorf("storage err = %v, want nil for anonymous", res.StorageErr)
	}
}

func TestGeneratePromptContainsTranscript(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(validSummaryJSON)})
	g := NewGenerator(testCatalog(t), mock, nil)

	answers := scoring.AnswerSet{"f1": scoring.Text("yes"), "c1": scoring.Number(7)}
	if _, err := g.Generate(context.Background(), auth.Subject{}, answers); err != nil {
		t.Fatalf("generate: %v", err)
	}

	prompt := mock.Calls[0].Prompt
	if !strings.Contains(prompt, "How satisfied are you with your growth?") {
		t.Error("prompt missing question text")
	}
	ci := strings.Index(prompt, "How satisfied")
	fi := strings.Index(prompt, "Do you keep a budget?")
	if ci == -1 || fi == -1 || ci > fi {
		t.Error("transcript should follow catalog flow order")
	}
	if mock.Calls[0].Schema == nil {
		t.Error("expected structured output schema on the request")
	}
}

func TestGenerateUsesStoredAnswers(t *testing.T) {
	states := newMemStateRepo()
	states.recs["u1"] = &store.SessionRecord{
		UserID:  "u1",
		Answers: scoring.AnswerSet{"c1": scoring.Number(5)},
	}
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(validSummaryJSON)})
	g := NewGenerator(testCatalog(t), mock, states)

	res, err := g.Generate(context.Background(), auth.Subject{ID: "u1"}, nil)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !strings.Contains(mock.Calls[0].Prompt, "How satisfied") {
		t.Error("expected stored answers in transcript")
	}

	rec := states.recs["u1"]
	if rec.Summary == nil {
		t.Fatal("expected summary persisted onto session record")
	}
	if res.StorageErr != nil {
		t.Errorf("storage err = %v", res.StorageErr)
	}
}

func TestGenerateNoAnswers(t *testing.T) {
	mock := llm.NewMockProvider()
	g := NewGenerator(testCatalog(t), mock, nil)

	_, err := g.Generate(context.Background(), auth.Subject{}, nil)
	if !errors.Is(err, ErrNoAnswers) {
		t.Fatalf("expected ErrNoAnswers, got %v", err)
	}
	if mock.CallCount() != 0 {
		t.Error("provider should not be called without answers")
	}
}

func TestGeneratePersistFailureIsNonFatal(t *testing.T) {
	states := newMemStateRepo()
	states.recs["u1"] = &store.SessionRecord{
		UserID:  "u1",
		Answers: scoring.AnswerSet{"c1": scoring.Number(5)},
	}
	states.putErr = errors.New("disk full")
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(validSummaryJSON)})
	g := NewGenerator(testCatalog(t), mock, states)

	res, err := g.Generate(context.Background(), auth.Subject{ID: "u1"}, nil)
	if err != nil {
		t.Fatalf("generate should survive persist failure: %v", err)
	}
	if res.StorageErr == nil {
		t.Error("expected storage error surfaced")
	}
	if res.Summary == nil {
		t.Error("expected summary despite persist failure")
	}
}

func TestCached(t *testing.T) {
	states := newMemStateRepo()
	g := NewGenerator(testCatalog(t), llm.NewMockProvider(), states)

	_, err := g.Cached(context.Background(), auth.Subject{ID: "u1"})
	if !errors.Is(err, ErrNoSummary) {
		t.Fatalf("expected ErrNoSummary, got %v", err)
	}

	s := &Summary{Title: "t", OverallSummary: "o"}
	m, err := s.ToMap()
	if err != nil {
		t.Fatalf("to map: %v", err)
	}
	states.recs["u1"] = &store.SessionRecord{UserID: "u1", Summary: m}

	got, err := g.Cached(context.Background(), auth.Subject{ID: "u1"})
	if err != nil {
		t.Fatalf("cached: %v", err)
	}
	if got.Title != "t" {
		t.Errorf("title = %q, want t", got.Title)
	}
}

func TestTranscriptUnknownQuestionFallsBack(t *testing.T) {
	cat := testCatalog(t)
	answers := scoring.AnswerSet{
		"c1":      scoring.Number(7),
		"retired": scoring.Text("maybe"),
	}
	got := Transcript(cat, answers)
	if !strings.Contains(got, "Q: retired\nA: maybe") {
		t.Errorf("expected fallback to question id, got:\n%s", got)
	}
}
