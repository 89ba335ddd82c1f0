package questionnaire

import (
	"context"
	"strings"
	"sync"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/infinitelife/pulse/internal/auth"
	"github.com/infinitelife/pulse/internal/catalog"
	"github.com/infinitelife/pulse/internal/engine"
	"github.com/infinitelife/pulse/internal/router"
	"github.com/infinitelife/pulse/internal/screens/results"
	"github.com/infinitelife/pulse/internal/store"
)

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.New(catalog.Definition{
		Version: "v1.0.0",
		Questions: map[string]catalog.Question{
			"q1": {Text: "How fulfilled are you?", Type: catalog.TypeSlider, Section: "career-a", Scoring: catalog.Scoring{Points: 10}},
			"q2": {Text: "Learned something new?", Type: catalog.TypeYesNo, Section: "career-a", Scoring: catalog.Scoring{Points: 10, TargetAnswer: "yes"}},
			"q3": {
				Text: "How do you track spending?", Type: catalog.TypeMultipleChoice, Section: "financials-b",
				Scoring:     catalog.Scoring{Choices: map[string]float64{"detailed-budget": 5, "not-at-all": 0}},
				ChoiceOrder: []string{"detailed-budget", "not-at-all"},
			},
		},
		Sections: map[string]catalog.Section{
			"career-a":     {Title: "Career Path", Questions: []string{"q1", "q2"}, TotalPoints: 20},
			"financials-b": {Title: "Money Basics", Questions: []string{"q3"}, TotalPoints: 5},
		},
		QuestionFlow: []string{"q1", "q2", "q3"},
		SectionFlow:  []string{"career-a", "financials-b"},
	})
	if err != nil {
		t.Fatalf("catalog.New: %v", err)
	}
	return cat
}

type memStateRepo struct {
	mu   sync.Mutex
	recs map[string]*store.SessionRecord
}

func newMemStateRepo() *memStateRepo {
	return &memStateRepo{recs: make(map[string]*store.SessionRecord)}
}

func (m *memStateRepo) Get(_ context.Context, userID string) (*store.SessionRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.recs[userID], nil
}

func (m *memStateRepo) Put(_ context.Context, rec *store.SessionRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.recs[rec.UserID] = rec
	return nil
}

func (m *memStateRepo) Delete(_ context.Context, userID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.recs, userID)
	return nil
}

type memEventRepo struct{}

func (memEventRepo) AppendResponse(context.Context, store.ResponseEventData) error { return nil }
func (memEventRepo) AppendSummaryRequest(context.Context, store.SummaryRequestEventData) error {
	return nil
}

func newTestScreen(t *testing.T) *QuestionnaireScreen {
	t.Helper()
	eng := engine.New(testCatalog(t), newMemStateRepo(), memEventRepo{}, engine.DefaultConfig())
	snap, err := eng.CurrentState(context.Background(), auth.Subject{})
	if err != nil {
		t.Fatalf("CurrentState: %v", err)
	}
	return New(eng, nil, auth.Subject{}, snap)
}

// drain runs a returned command and feeds its message back into the screen.
func drain(t *testing.T, s *QuestionnaireScreen, cmd tea.Cmd) tea.Msg {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a command")
	}
	return cmd()
}

func TestStartsAtFirstQuestion(t *testing.T) {
	s := newTestScreen(t)
	if s.snap.NextQuestion == nil || s.snap.NextQuestion.ID != "q1" {
		t.Fatalf("expected q1, got %+v", s.snap.NextQuestion)
	}
}

func TestSliderKeysAdjustValue(t *testing.T) {
	s := newTestScreen(t)

	s.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	if s.slider.Value != 6 {
		t.Errorf("slider value = %d, want 6", s.slider.Value)
	}

	s.Update(tea.KeyPressMsg{Code: '9'})
	if s.slider.Value != 9 {
		t.Errorf("slider value = %d, want 9", s.slider.Value)
	}
}

func TestEnterSubmitsAndAdvances(t *testing.T) {
	s := newTestScreen(t)

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	msg := drain(t, s, cmd)

	res, ok := msg.(answerResultMsg)
	if !ok {
		t.Fatalf("expected answerResultMsg, got %T", msg)
	}
	if res.Err != nil {
		t.Fatalf("submit failed: %v", res.Err)
	}

	s.Update(res)
	if s.snap.NextQuestion == nil || s.snap.NextQuestion.ID != "q2" {
		t.Fatalf("expected q2 after submit, got %+v", s.snap.NextQuestion)
	}
	if s.submitting {
		t.Error("submitting flag should be cleared")
	}
}

func TestPreviousAtStartIsIgnored(t *testing.T) {
	s := newTestScreen(t)

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift})
	msg := drain(t, s, cmd)

	s.Update(msg)
	if s.errMsg != "" {
		t.Errorf("at-start rejection should not surface an error, got %q", s.errMsg)
	}
	if s.snap.NextQuestion == nil || s.snap.NextQuestion.ID != "q1" {
		t.Fatalf("expected to stay on q1, got %+v", s.snap.NextQuestion)
	}
}

func TestPreviousStepsBack(t *testing.T) {
	s := newTestScreen(t)

	// Answer q1 to move into q2.
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	s.Update(drain(t, s, cmd))

	_, cmd = s.Update(tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift})
	s.Update(drain(t, s, cmd))

	if s.snap.NextQuestion == nil || s.snap.NextQuestion.ID != "q1" {
		t.Fatalf("expected q1 after previous, got %+v", s.snap.NextQuestion)
	}
}

func TestCompletionReplacesWithResults(t *testing.T) {
	s := newTestScreen(t)

	// q1 slider, q2 yes/no, q3 choice.
	for i := 0; i < 3; i++ {
		_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
		msg := drain(t, s, cmd)
		_, next := s.Update(msg)
		if i == 2 {
			if next == nil {
				t.Fatal("expected navigation command on completion")
			}
			nav := next()
			rep, ok := nav.(router.ReplaceScreenMsg)
			if !ok {
				t.Fatalf("expected ReplaceScreenMsg, got %T", nav)
			}
			if _, ok := rep.Screen.(*results.ResultsScreen); !ok {
				t.Fatalf("expected results screen, got %T", rep.Screen)
			}
		}
	}

	if !s.snap.Completed {
		t.Error("snapshot should be completed")
	}
}

func TestChoiceSelectionSubmitsKey(t *testing.T) {
	s := newTestScreen(t)

	// Advance to q3.
	for i := 0; i < 2; i++ {
		_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
		s.Update(drain(t, s, cmd))
	}
	if s.snap.NextQuestion.ID != "q3" {
		t.Fatalf("expected q3, got %s", s.snap.NextQuestion.ID)
	}

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	msg := drain(t, s, cmd)
	res := msg.(answerResultMsg)
	if res.Err != nil {
		t.Fatalf("submit failed: %v", res.Err)
	}
	if got := res.Snap.Answers["q3"].String(); got != "detailed-budget" {
		t.Errorf("stored answer = %q, want choice key", got)
	}
}

func TestViewShowsQuestionAndPosition(t *testing.T) {
	s := newTestScreen(t)
	view := s.View(80, 24)
	if view == "" {
		t.Fatal("expected non-empty view")
	}
	if !containsAll(view, "How fulfilled are you?", "Question 1 of 3", "Career Path") {
		t.Errorf("view missing expected content:\n%s", view)
	}
}

func TestChoiceLabel(t *testing.T) {
	if got := choiceLabel("detailed-budget"); got != "Detailed Budget" {
		t.Errorf("choiceLabel = %q", got)
	}
	if got := choiceLabel("under-35"); got != "Under 35" {
		t.Errorf("choiceLabel = %q", got)
	}
}

func containsAll(s string, subs ...string) bool {
	for _, sub := range subs {
		if !strings.Contains(s, sub) {
			return false
		}
	}
	return true
}
