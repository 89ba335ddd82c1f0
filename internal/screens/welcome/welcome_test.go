package welcome

import (
	"context"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/infinitelife/pulse/internal/auth"
	"github.com/infinitelife/pulse/internal/catalog"
	"github.com/infinitelife/pulse/internal/engine"
	"github.com/infinitelife/pulse/internal/router"
	"github.com/infinitelife/pulse/internal/screens/questionnaire"
	"github.com/infinitelife/pulse/internal/screens/results"
	"github.com/infinitelife/pulse/internal/scoring"
	"github.com/infinitelife/pulse/internal/store"
)

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

type memEventRepo struct{}

func (memEventRepo) AppendResponse(context.Context, store.ResponseEventData) error { return nil }
func (memEventRepo) AppendSummaryRequest(context.Context, store.SummaryRequestEventData) error {
	return nil
}

func newTestWelcome(t *testing.T, states store.StateRepo, sub auth.Subject) *WelcomeScreen {
	t.Helper()
	eng := engine.New(catalog.Builtin(), states, memEventRepo{}, engine.DefaultConfig())
	return New(eng, nil, sub)
}

func loadState(t *testing.T, w *WelcomeScreen) {
	t.Helper()
	cmd := w.Init()
	if cmd == nil {
		t.Fatal("Init should load state")
	}
	w.Update(cmd())
}

func TestFreshSessionOffersStart(t *testing.T) {
	w := newTestWelcome(t, newMemStateRepo(), auth.Subject{})
	loadState(t, w)

	if w.enterLabel() != "Start" {
		t.Errorf("enterLabel = %q, want Start", w.enterLabel())
	}
	view := w.View(80, 24)
	if !strings.Contains(view, "Press Enter to begin.") {
		t.Errorf("view missing begin hint:\n%s", view)
	}
}

func TestResumeHintForPartialSession(t *testing.T) {
	states := newMemStateRepo()
	cat := catalog.Builtin()
	first := cat.FirstQuestion()
	second, _ := cat.NextInFlow(first)

	states.recs["u1"] = &store.SessionRecord{
		UserID:         "u1",
		Answers:        scoring.AnswerSet{first: scoring.Number(7)},
		LastQuestionID: second,
		CatalogVersion: cat.Version(),
	}

	w := newTestWelcome(t, states, auth.Subject{ID: "u1"})
	loadState(t, w)

	if w.enterLabel() != "Resume" {
		t.Errorf("enterLabel = %q, want Resume", w.enterLabel())
	}
	if !strings.Contains(w.View(80, 24), "Welcome back") {
		t.Error("view missing resume hint")
	}
}

func TestEnterPushesQuestionnaire(t *testing.T) {
	w := newTestWelcome(t, newMemStateRepo(), auth.Subject{})
	loadState(t, w)

	_, cmd := w.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected push command")
	}
	msg := cmd()
	push, ok := msg.(router.PushScreenMsg)
	if !ok {
		t.Fatalf("expected PushScreenMsg, got %T", msg)
	}
	if _, ok := push.Screen.(*questionnaire.QuestionnaireScreen); !ok {
		t.Fatalf("expected questionnaire screen, got %T", push.Screen)
	}
}

func TestCompletedSessionOpensResults(t *testing.T) {
	states := newMemStateRepo()
	cat := catalog.Builtin()

	answers := make(scoring.AnswerSet)
	for _, p := range catalog.AllPillars() {
		for _, sid := range cat.SectionsOfPillar(p) {
			for _, qid := range cat.Section(sid).Questions {
				answers[qid] = scoring.Number(5)
			}
		}
	}
	states.recs["u1"] = &store.SessionRecord{
		UserID:         "u1",
		Answers:        answers,
		LastQuestionID: engine.Completed,
		CatalogVersion: cat.Version(),
	}

	w := newTestWelcome(t, states, auth.Subject{ID: "u1"})
	loadState(t, w)

	if w.enterLabel() != "Results" {
		t.Errorf("enterLabel = %q, want Results", w.enterLabel())
	}

	_, cmd := w.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected push command")
	}
	push, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatal("expected PushScreenMsg")
	}
	if _, ok := push.Screen.(*results.ResultsScreen); !ok {
		t.Fatalf("expected results screen, got %T", push.Screen)
	}
}

func TestRestartClearsSession(t *testing.T) {
	states := newMemStateRepo()
	cat := catalog.Builtin()
	states.recs["u1"] = &store.SessionRecord{
		UserID:         "u1",
		Answers:        scoring.AnswerSet{cat.FirstQuestion(): scoring.Number(5)},
		LastQuestionID: engine.Completed,
		CatalogVersion: cat.Version(),
	}

	w := newTestWelcome(t, states, auth.Subject{ID: "u1"})
	loadState(t, w)

	_, cmd := w.Update(tea.KeyPressMsg{Code: 'r'})
	if cmd == nil {
		t.Fatal("expected restart command")
	}
	msg := cmd()
	if _, ok := msg.(router.PushScreenMsg); !ok {
		t.Fatalf("expected PushScreenMsg after restart, got %T", msg)
	}
	if states.recs["u1"] != nil {
		t.Error("stored session should be deleted on restart")
	}
}
