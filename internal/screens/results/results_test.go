package results

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/infinitelife/pulse/internal/auth"
	"github.com/infinitelife/pulse/internal/catalog"
	"github.com/infinitelife/pulse/internal/engine"
	"github.com/infinitelife/pulse/internal/llm"
	"github.com/infinitelife/pulse/internal/scoring"
	"github.com/infinitelife/pulse/internal/store"
	"github.com/infinitelife/pulse/internal/summary"
)

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.New(catalog.Definition{
		Version: "v1.0.0",
		Questions: map[string]catalog.Question{
			"q1": {Text: "Fulfilled?", Type: catalog.TypeSlider, Section: "career-a", Scoring: catalog.Scoring{Points: 10}},
		},
		Sections: map[string]catalog.Section{
			"career-a": {Title: "Career Path", Questions: []string{"q1"}, TotalPoints: 10},
		},
		QuestionFlow: []string{"q1"},
		SectionFlow:  []string{"career-a"},
	})
	if err != nil {
		t.Fatalf("catalog.New: %v", err)
	}
	return cat
}

type memStateRepo struct {
	recs map[string]*store.SessionRecord
}

func newMemStateRepo() *memStateRepo {
	return &memStateRepo{recs: make(map[string]*store.SessionRecord)}
}

func (m *memStateRepo) Get(_ context.Context, userID string) (*store.SessionRecord, error) {
	return m.recs[userID], nil
}

func (m *memStateRepo) Put(_ context.Context, rec *store.SessionRecord) error {
	m.recs[rec.UserID] = rec
	return nil
}

func (m *memStateRepo) Delete(_ context.Context, userID string) error {
	delete(m.recs, userID)
	return nil
}

const validSummaryJSON = `{
	"title": "Your Life Snapshot",
	"overallSummary": "You are doing well overall.",
	"keyInsights": [
		{"title": "Career momentum", "description": "Work is a source of energy."}
	],
	"actionableSteps": [
		{"pillar": "Career", "recommendation": "Keep learning.", "firstStep": "Book a course."}
	]
}`

func completedSnapshot() *engine.Snapshot {
	return &engine.Snapshot{
		Completed:     true,
		SectionScores: map[string]float64{"career-a": 8},
		PillarProgress: map[catalog.Pillar]float64{
			catalog.PillarCareer: 100,
		},
	}
}

func TestViewShowsScores(t *testing.T) {
	s := New(testCatalog(t), nil, auth.Subject{}, completedSnapshot())
	view := s.View(80, 30)
	if !strings.Contains(view, "Career Path") {
		t.Errorf("view missing section title:\n%s", view)
	}
	if !strings.Contains(view, "Questionnaire complete!") {
		t.Error("view missing completion banner")
	}
}

func TestNoGeneratorHint(t *testing.T) {
	s := New(testCatalog(t), nil, auth.Subject{}, completedSnapshot())
	view := s.View(80, 30)
	if !strings.Contains(view, "Configure an LLM provider") {
		t.Error("expected provider hint when generator is absent")
	}
}

func TestGenerateSummary(t *testing.T) {
	cat := testCatalog(t)
	states := newMemStateRepo()

	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(validSummaryJSON)})
	gen := summary.NewGenerator(cat, mock, states)

	snap := completedSnapshot()
	snap.Answers = scoring.AnswerSet{"q1": scoring.Number(8)}

	s := New(cat, gen, auth.Subject{ID: "u1"}, snap)

	_, cmd := s.Update(tea.KeyPressMsg{Code: 'g'})
	if cmd == nil {
		t.Fatal("expected generation command")
	}
	res, ok := findMsg[summaryReadyMsg](cmd())
	if !ok {
		t.Fatalf("no summaryReadyMsg produced")
	}
	if res.Err != nil {
		t.Fatalf("generation failed: %v", res.Err)
	}

	s.Update(res)
	if s.sum == nil || s.sum.Title != "Your Life Snapshot" {
		t.Fatalf("summary not installed: %+v", s.sum)
	}

	view := s.View(80, 40)
	if !strings.Contains(view, "Career momentum") {
		t.Error("view missing insight title")
	}
	if !strings.Contains(view, "Book a course.") {
		t.Error("view missing first step")
	}
}

// findMsg runs a command, unwrapping batches, until a message of type T
// turns up.
func findMsg[T tea.Msg](msg tea.Msg) (T, bool) {
	if m, ok := msg.(T); ok {
		return m, true
	}
	if batch, ok := msg.(tea.BatchMsg); ok {
		for _, c := range batch {
			if c == nil {
				continue
			}
			if m, ok := findMsg[T](c()); ok {
				return m, true
			}
		}
	}
	var zero T
	return zero, false
}

func TestCachedMissIsSilent(t *testing.T) {
	cat := testCatalog(t)
	gen := summary.NewGenerator(cat, llm.NewMockProvider(), newMemStateRepo())
	s := New(cat, gen, auth.Subject{ID: "u1"}, completedSnapshot())

	cmd := s.Init()
	if cmd == nil {
		t.Fatal("expected cache lookup command")
	}
	s.Update(cmd())

	if s.genErr != "" {
		t.Errorf("cache miss should not surface an error, got %q", s.genErr)
	}
}
