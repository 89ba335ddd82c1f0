package engine

import (
	"context"
	"errors"
	"testing"

	"github.com/infinitelife/pulse/internal/auth"
	"github.com/infinitelife/pulse/internal/catalog"
	"github.com/infinitelife/pulse/internal/scoring"
	"github.com/infinitelife/pulse/internal/store"
)

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.New(catalog.Definition{
		Version: "v1.0.0",
		Questions: map[string]catalog.Question{
			"c1": {Text: "growth", Type: catalog.TypeSlider, Section: "career-a", Scoring: catalog.Scoring{Points: 10}},
			"c2": {Text: "autonomy", Type: catalog.TypeSlider, Section: "career-a", Scoring: catalog.Scoring{Points: 10}},
			"f1": {Text: "budget", Type: catalog.TypeYesNo, Section: "financials-b", Scoring: catalog.Scoring{Points: 10, TargetAnswer: "yes"}},
			"f2": {Text: "savings", Type: catalog.TypeMultipleChoice, Section: "financials-b", Scoring: catalog.Scoring{Choices: map[string]float64{"a": 5, "b": 2}}},
			"h1": {Text: "sleep", Type: catalog.TypeSlider, Section: "health-c", Scoring: catalog.Scoring{Points: 10}},
		},
		Sections: map[string]catalog.Section{
			"career-a": {
				Questions:        []string{"c1", "c2"},
				TotalPoints:      20,
				AdaptiveTriggers: []string{"c1"},
				AdaptiveMaxScore: 10,
			},
			"financials-b": {Questions: []string{"f1", "f2"}, TotalPoints: 15},
			"health-c":     {Questions: []string{"h1"}, TotalPoints: 10},
		},
		QuestionFlow: []string{"c1", "c2", "f1", "f2", "h1"},
		SectionFlow:  []string{"career-a", "financials-b", "health-c"},
	})
	if err != nil {
		t.Fatalf("build catalog: %v", err)
	}
	return cat
}

// memStateRepo is an in-memory StateRepo with injectable failures.
type memStateRepo struct {
	recs   map[string]*store.SessionRecord
	getErr error
	putErr error
}

func newMemStateRepo() *memStateRepo {
	return &memStateRepo{recs: map[string]*store.SessionRecord{}}
}

func (m *memStateRepo) Get(_ context.Context, userID string) (*store.SessionRecord, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
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

// memEventRepo records appended events.
type memEventRepo struct {
	responses []store.ResponseEventData
	summaries []store.SummaryRequestEventData
}

func (m *memEventRepo) AppendResponse(_ context.Context, data store.ResponseEventData) error {
	m.responses = append(m.responses, data)
	return nil
}

func (m *memEventRepo) AppendSummaryRequest(_ context.Context, data store.SummaryRequestEventData) error {
	m.summaries = append(m.summaries, data)
	return nil
}

func newTestEngine(t *testing.T, states store.StateRepo, events store.EventRepo) *Engine {
	t.Helper()
	return New(testCatalog(t), states, events, DefaultConfig())
}

func user(id string) auth.Subject { return auth.Subject{ID: id} }

func anon() auth.Subject { return auth.Subject{} }

func TestSubmitAnswerAdvances(t *testing.T) {
	e := newTestEngine(t, nil, nil)

	snap, err := e.SubmitAnswer(context.Background(), anon(), "c1", scoring.Number(4), nil)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if snap.Completed {
		t.Fatal("expected flow to continue")
	}
	if snap.NextQuestion == nil || snap.NextQuestion.ID != "c2" {
		t.Fatalf("next = %v, want c2", snap.NextQuestion)
	}
	if snap.SkippedFrom != "" {
		t.Errorf("skipped from = %q, want empty", snap.SkippedFrom)
	}
	if got := snap.SectionScores["career-a"]; got != 4 {
		t.Errorf("career-a score = %g, want 4", got)
	}
	if got := snap.PillarProgress[catalog.PillarCareer]; got != 20 {
		t.Errorf("career progress = %g, want 20", got)
	}
}

func TestSubmitAnswerAdaptiveSkip(t *testing.T) {
	e := newTestEngine(t, nil, nil)

	snap, err := e.SubmitAnswer(context.Background(), anon(), "c1", scoring.Number(9), nil)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if snap.NextQuestion == nil || snap.NextQuestion.ID != "f1" {
		t.Fatalf("next = %v, want f1", snap.NextQuestion)
	}
	if snap.SkippedFrom != "career-a" {
		t.Errorf("skipped from = %q, want career-a", snap.SkippedFrom)
	}
	if got := snap.SectionScores["career-a"]; got != 20 {
		t.Errorf("display score = %g, want clamped 20", got)
	}
	if !snap.CompletedSections["career-a"] {
		t.Error("expected career-a marked completed")
	}
	if got := snap.PillarProgress[catalog.PillarCareer]; got != 100 {
		t.Errorf("career progress = %g, want 100", got)
	}
}

func TestSubmitAnswerUnknownQuestion(t *testing.T) {
	states := newMemStateRepo()
	e := newTestEngine(t, states, nil)

	_, err := e.SubmitAnswer(context.Background(), user("u1"), "ghost", scoring.Number(1), nil)
	rej, ok := AsRejection(err)
	if !ok {
		t.Fatalf("expected rejection, got %v", err)
	}
	if rej.Code != CodeUnknownQuestion {
		t.Errorf("code = %q, want %q", rej.Code, CodeUnknownQuestion)
	}
	if len(states.recs) != 0 {
		t.Error("expected no state written on rejection")
	}
}

func TestSubmitAnswerPersistsRawScores(t *testing.T) {
	states := newMemStateRepo()
	e := newTestEngine(t, states, nil)

	snap, err := e.SubmitAnswer(context.Background(), user("u1"), "c1", scoring.Number(9), nil)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if snap.StorageErr != nil {
		t.Fatalf("storage err: %v", snap.StorageErr)
	}

	rec := states.recs["u1"]
	if rec == nil {
		t.Fatal("expected persisted record")
	}
	if got := rec.SectionScores["career-a"]; got != 9 {
		t.Errorf("persisted raw score = %g, want 9 (not clamped)", got)
	}
	if rec.LastQuestionID != "f1" {
		t.Errorf("last question = %q, want f1", rec.LastQuestionID)
	}
	if rec.CatalogVersion != "v1.0.0" {
		t.Errorf("catalog version = %q, want v1.0.0", rec.CatalogVersion)
	}
}

func TestSubmitAnswerPersistFailure(t *testing.T) {
	states := newMemStateRepo()
	states.putErr = errors.New("disk full")
	e := newTestEngine(t, states, nil)

	snap, err := e.SubmitAnswer(context.Background(), user("u1"), "c1", scoring.Number(4), nil)
	if err != nil {
		t.Fatalf("submit should not fail outright: %v", err)
	}
	if snap.StorageErr == nil {
		t.Fatal("expected storage error surfaced")
	}
	if snap.NextQuestion == nil || snap.NextQuestion.ID != "c2" {
		t.Errorf("computed result should survive persist failure, next = %v", snap.NextQuestion)
	}
}

func TestSubmitAnswerCompletesFlow(t *testing.T) {
	states := newMemStateRepo()
	e := newTestEngine(t, states, nil)

	answers := scoring.AnswerSet{
		"c1": scoring.Number(4),
		"c2": scoring.Number(5),
		"f1": scoring.Text("yes"),
		"f2": scoring.Text("a"),
	}
	snap, err := e.SubmitAnswer(context.Background(), user("u1"), "h1", scoring.Number(8), answers)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if !snap.Completed {
		t.Fatal("expected completion")
	}
	if snap.NextQuestion != nil {
		t.Errorf("next = %v, want nil", snap.NextQuestion)
	}
	if got := states.recs["u1"].LastQuestionID; got != Completed {
		t.Errorf("persisted position = %q, want %q", got, Completed)
	}
	for _, p := range []catalog.Pillar{catalog.PillarCareer, catalog.PillarFinances, catalog.PillarHealth} {
		if got := snap.PillarProgress[p]; got != 100 {
			t.Errorf("%s progress = %g, want 100", p, got)
		}
	}
}

func TestGoToPreviousRemovesAnswer(t *testing.T) {
	e := newTestEngine(t, nil, nil)

	answers := scoring.AnswerSet{"c1": scoring.Number(4), "c2": scoring.Number(5)}
	snap, err := e.GoToPrevious(context.Background(), anon(), "c2", answers)
	if err != nil {
		t.Fatalf("previous: %v", err)
	}
	if snap.NextQuestion == nil || snap.NextQuestion.ID != "c1" {
		t.Fatalf("next = %v, want c1", snap.NextQuestion)
	}
	if _, ok := snap.Answers["c2"]; ok {
		t.Error("expected c2's answer discarded")
	}
	if got := snap.SectionScores["career-a"]; got != 4 {
		t.Errorf("career-a score = %g, want 4 after discard", got)
	}
	if _, ok := answers["c2"]; !ok {
		t.Error("caller's answer set should not be mutated")
	}
}

func TestGoToPreviousAtStart(t *testing.T) {
	e := newTestEngine(t, nil, nil)

	_, err := e.GoToPrevious(context.Background(), anon(), "c1", nil)
	rej, ok := AsRejection(err)
	if !ok || rej.Code != CodeAtStartOfFlow {
		t.Fatalf("expected %s rejection, got %v", CodeAtStartOfFlow, err)
	}
}

func TestGoToPreviousUnknownQuestion(t *testing.T) {
	e := newTestEngine(t, nil, nil)

	_, err := e.GoToPrevious(context.Background(), anon(), "ghost", nil)
	rej, ok := AsRejection(err)
	if !ok || rej.Code != CodeUnknownQuestion {
		t.Fatalf("expected %s rejection, got %v", CodeUnknownQuestion, err)
	}
}

func TestSaveBulkRequiresAuth(t *testing.T) {
	e := newTestEngine(t, newMemStateRepo(), nil)

	_, err := e.SaveBulkProgress(context.Background(), anon(), scoring.AnswerSet{"c1": scoring.Number(4)})
	rej, ok := AsRejection(err)
	if !ok || rej.Code != CodeAuthRequired {
		t.Fatalf("expected %s rejection, got %v", CodeAuthRequired, err)
	}
}

func TestSaveBulkProgress(t *testing.T) {
	states := newMemStateRepo()
	e := newTestEngine(t, states, nil)

	answers := scoring.AnswerSet{
		"c1": scoring.Number(4),
		"c2": scoring.Number(5),
		"f1": scoring.Text("yes"),
	}
	snap, err := e.SaveBulkProgress(context.Background(), user("u1"), answers)
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if snap.NextQuestion == nil || snap.NextQuestion.ID != "f2" {
		t.Fatalf("next = %v, want f2", snap.NextQuestion)
	}

	rec := states.recs["u1"]
	if rec == nil {
		t.Fatal("expected persisted record")
	}
	if got := rec.SectionScores["career-a"]; got != 9 {
		t.Errorf("career-a raw = %g, want 9", got)
	}
	if got := rec.SectionScores["financials-b"]; got != 10 {
		t.Errorf("financials-b raw = %g, want 10", got)
	}
	if rec.LastQuestionID != "f2" {
		t.Errorf("last question = %q, want f2", rec.LastQuestionID)
	}
}

func TestSaveBulkCompletesAtEndOfFlow(t *testing.T) {
	states := newMemStateRepo()
	e := newTestEngine(t, states, nil)

	answers := scoring.AnswerSet{
		"c1": scoring.Number(4),
		"h1": scoring.Number(8),
	}
	snap, err := e.SaveBulkProgress(context.Background(), user("u1"), answers)
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if !snap.Completed {
		t.Fatal("expected completion when last flow question is answered")
	}
	if got := states.recs["u1"].LastQuestionID; got != Completed {
		t.Errorf("persisted position = %q, want %q", got, Completed)
	}
}

func TestCurrentStateFresh(t *testing.T) {
	e := newTestEngine(t, nil, nil)

	snap, err := e.CurrentState(context.Background(), anon())
	if err != nil {
		t.Fatalf("current state: %v", err)
	}
	if snap.NextQuestion == nil || snap.NextQuestion.ID != "c1" {
		t.Fatalf("next = %v, want c1", snap.NextQuestion)
	}
	if len(snap.Answers) != 0 {
		t.Errorf("answers = %d, want 0", len(snap.Answers))
	}
	for p, pct := range snap.PillarProgress {
		if pct != 0 {
			t.Errorf("%s progress = %g, want 0", p, pct)
		}
	}
}

func TestCurrentStateResumes(t *testing.T) {
	states := newMemStateRepo()
	states.recs["u1"] = &store.SessionRecord{
		UserID:         "u1",
		Answers:        scoring.AnswerSet{"c1": scoring.Number(4), "c2": scoring.Number(5)},
		SectionScores:  map[string]float64{"career-a": 9},
		LastQuestionID: "f1",
		CatalogVersion: "v1.0.0",
	}
	e := newTestEngine(t, states, nil)

	snap, err := e.CurrentState(context.Background(), user("u1"))
	if err != nil {
		t.Fatalf("current state: %v", err)
	}
	if snap.NextQuestion == nil || snap.NextQuestion.ID != "f1" {
		t.Fatalf("next = %v, want f1", snap.NextQuestion)
	}
	// Raw 9/10 on the trigger section clears the threshold, so the
	// resumed display score is clamped to the full section total.
	if got := snap.SectionScores["career-a"]; got != 20 {
		t.Errorf("career-a display score = %g, want 20", got)
	}
	if !snap.CompletedSections["career-a"] {
		t.Error("career-a should be marked completed")
	}
	if len(snap.Answers) != 2 {
		t.Errorf("answers = %d, want 2", len(snap.Answers))
	}
}

func TestCurrentStateCompleted(t *testing.T) {
	states := newMemStateRepo()
	states.recs["u1"] = &store.SessionRecord{
		UserID:         "u1",
		Answers:        scoring.AnswerSet{"c1": scoring.Number(9)},
		SectionScores:  map[string]float64{"career-a": 9},
		LastQuestionID: Completed,
		CatalogVersion: "v1.0.0",
	}
	e := newTestEngine(t, states, nil)

	snap, err := e.CurrentState(context.Background(), user("u1"))
	if err != nil {
		t.Fatalf("current state: %v", err)
	}
	if !snap.Completed {
		t.Fatal("expected completed state")
	}
	if snap.NextQuestion != nil {
		t.Errorf("next = %v, want nil", snap.NextQuestion)
	}
}

func TestCurrentStateStalePosition(t *testing.T) {
	states := newMemStateRepo()
	states.recs["u1"] = &store.SessionRecord{
		UserID:         "u1",
		Answers:        scoring.AnswerSet{"c1": scoring.Number(4)},
		SectionScores:  map[string]float64{"career-a": 4},
		LastQuestionID: "removed-question",
		CatalogVersion: "v0.9.0",
	}
	e := newTestEngine(t, states, nil)

	snap, err := e.CurrentState(context.Background(), user("u1"))
	if err != nil {
		t.Fatalf("current state: %v", err)
	}
	if snap.NextQuestion == nil || snap.NextQuestion.ID != "c1" {
		t.Fatalf("next = %v, want restart at c1", snap.NextQuestion)
	}
	if len(snap.Answers) != 1 {
		t.Errorf("answers = %d, want 1 (kept)", len(snap.Answers))
	}
}

func TestResetRequiresAuth(t *testing.T) {
	e := newTestEngine(t, newMemStateRepo(), nil)

	err := e.Reset(context.Background(), anon())
	rej, ok := AsRejection(err)
	if !ok || rej.Code != CodeAuthRequired {
		t.Fatalf("expected %s rejection, got %v", CodeAuthRequired, err)
	}
}

func TestResetDeletesState(t *testing.T) {
	states := newMemStateRepo()
	states.recs["u1"] = &store.SessionRecord{UserID: "u1"}
	e := newTestEngine(t, states, nil)

	if err := e.Reset(context.Background(), user("u1")); err != nil {
		t.Fatalf("reset: %v", err)
	}
	if _, ok := states.recs["u1"]; ok {
		t.Error("expected record deleted")
	}
}

func TestSubmitAnswerLogsEvent(t *testing.T) {
	events := &memEventRepo{}
	e := newTestEngine(t, nil, events)

	_, err := e.SubmitAnswer(context.Background(), anon(), "f1", scoring.Text("YES"), nil)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if len(events.responses) != 1 {
		t.Fatalf("events = %d, want 1", len(events.responses))
	}
	ev := events.responses[0]
	if ev.QuestionID != "f1" || ev.SectionID != "financials-b" {
		t.Errorf("event = %+v, want f1/financials-b", ev)
	}
	if ev.Score != 10 {
		t.Errorf("event score = %g, want 10 (case-insensitive target)", ev.Score)
	}
	if ev.UserID == "" {
		t.Error("expected anonymous event identity")
	}
}

func TestSubmitAnswerUsesStoredAnswers(t *testing.T) {
	states := newMemStateRepo()
	states.recs["u1"] = &store.SessionRecord{
		UserID:         "u1",
		Answers:        scoring.AnswerSet{"c1": scoring.Number(4)},
		SectionScores:  map[string]float64{"career-a": 4},
		LastQuestionID: "c2",
		CatalogVersion: "v1.0.0",
	}
	e := newTestEngine(t, states, nil)

	snap, err := e.SubmitAnswer(context.Background(), user("u1"), "c2", scoring.Number(5), nil)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	// The stored c1 answer merges with the new c2 one: raw 4+5 = 9,
	// which clears the trigger threshold and clamps the display score.
	if got := states.recs["u1"].SectionScores["career-a"]; got != 9 {
		t.Errorf("persisted raw score = %g, want 9 (merged with stored)", got)
	}
	if got := snap.SectionScores["career-a"]; got != 20 {
		t.Errorf("career-a display score = %g, want 20", got)
	}
	if !snap.CompletedSections["career-a"] {
		t.Error("career-a should be marked completed")
	}
	if len(snap.Answers) != 2 {
		t.Errorf("answers = %d, want 2", len(snap.Answers))
	}
}
