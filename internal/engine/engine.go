// Package engine coordinates the catalog, scorer, flow navigator and
// progress calculator into the questionnaire operations exposed to the
// CLI and the TUI.
package engine

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/infinitelife/pulse/internal/auth"
	"github.com/infinitelife/pulse/internal/catalog"
	"github.com/infinitelife/pulse/internal/flow"
	"github.com/infinitelife/pulse/internal/progress"
	"github.com/infinitelife/pulse/internal/scoring"
	"github.com/infinitelife/pulse/internal/store"
)

// Engine executes questionnaire operations. Anonymous subjects run
// fully transient sessions; authenticated subjects are loaded from and
// persisted to the state repository.
type Engine struct {
	cat    *catalog.Catalog
	nav    *flow.Navigator
	states store.StateRepo // nil disables persistence
	events store.EventRepo // nil disables event logging
	cfg    Config
	now    func() time.Time
	anonID string // per-process identity for anonymous event rows
}

// New creates an Engine. states and events may be nil for transient
// operation.
func New(cat *catalog.Catalog, states store.StateRepo, events store.EventRepo, cfg Config) *Engine {
	return &Engine{
		cat:    cat,
		nav:    flow.NewNavigator(cat, cfg.MasteryThreshold),
		states: states,
		events: events,
		cfg:    cfg,
		now:    time.Now,
		anonID: "anon-" + uuid.NewString(),
	}
}

// Catalog returns the catalog the engine was built with.
func (e *Engine) Catalog() *catalog.Catalog {
	return e.cat
}

// SubmitAnswer records an answer for qid and advances the flow. For
// anonymous subjects the caller supplies the answers accumulated so
// far in provided; for authenticated subjects the stored answer set is
// used and provided may be nil. A storage failure never discards the
// computed result: it is reported through Snapshot.StorageErr.
func (e *Engine) SubmitAnswer(ctx context.Context, sub auth.Subject, qid string, ans scoring.Answer, provided scoring.AnswerSet) (*Snapshot, error) {
	if qid == "" {
		return nil, reject(CodeMissingField, "question id is required")
	}
	q := e.cat.Question(qid)
	if q == nil {
		return nil, reject(CodeUnknownQuestion, "question %q is not in the catalog", qid)
	}

	working, prior, loadErr := e.workingSet(ctx, sub, provided)
	working[qid] = ans

	raw := scoring.Aggregate(e.cat, working)
	tr, err := e.nav.Next(qid, working, raw)
	switch {
	case errors.Is(err, flow.ErrUnknownQuestion):
		return nil, reject(CodeUnknownQuestion, "question %q is not in the catalog", qid)
	case err != nil:
		return nil, err
	}

	snap := e.snapshot(tr, working, raw)
	snap.StorageErr = errors.Join(loadErr, e.persist(ctx, sub, prior, snap, raw))

	e.logResponse(ctx, sub, q, ans, raw)
	return snap, nil
}

// GoToPrevious steps back from current to the preceding question in
// the linear flow, discarding current's answer from the working set.
// Adaptive skips are not retraced.
func (e *Engine) GoToPrevious(ctx context.Context, sub auth.Subject, current string, provided scoring.AnswerSet) (*Snapshot, error) {
	if current == "" {
		return nil, reject(CodeMissingField, "current question id is required")
	}

	prev, err := e.nav.Previous(current)
	switch {
	case errors.Is(err, flow.ErrUnknownQuestion):
		return nil, reject(CodeUnknownQuestion, "question %q is not in the catalog", current)
	case errors.Is(err, flow.ErrAtStart):
		return nil, reject(CodeAtStartOfFlow, "already at the first question")
	case err != nil:
		return nil, err
	}

	working, prior, loadErr := e.workingSet(ctx, sub, provided)
	delete(working, current)

	raw := scoring.Aggregate(e.cat, working)
	snap := e.snapshot(flow.Transition{Next: prev}, working, raw)
	snap.StorageErr = errors.Join(loadErr, e.persist(ctx, sub, prior, snap, raw))
	return snap, nil
}

// SaveBulkProgress replaces the stored answer set with the provided
// one, recomputing all scores from scratch. The resume position is
// derived from the latest answered question in flow order. Requires an
// authenticated subject.
func (e *Engine) SaveBulkProgress(ctx context.Context, sub auth.Subject, answers scoring.AnswerSet) (*Snapshot, error) {
	if sub.Anonymous() {
		return nil, reject(CodeAuthRequired, "saving progress requires a signed-in user")
	}
	if len(answers) == 0 {
		return nil, reject(CodeMissingField, "answers are required")
	}

	working := answers.Clone()
	raw := scoring.Aggregate(e.cat, working)

	tr := flow.Transition{Next: e.cat.FirstQuestion()}
	if last, ok := e.latestAnswered(working); ok {
		if next, ok := e.cat.NextInFlow(last); ok {
			tr = flow.Transition{Next: next}
		} else {
			tr = flow.Transition{Completed: true}
		}
	}

	prior, loadErr := e.load(ctx, sub)
	snap := e.snapshot(tr, working, raw)
	snap.StorageErr = errors.Join(loadErr, e.persist(ctx, sub, prior, snap, raw))
	return snap, nil
}

// CurrentState returns the resume point: the stored session for an
// authenticated subject, or a fresh session at the first question.
func (e *Engine) CurrentState(ctx context.Context, sub auth.Subject) (*Snapshot, error) {
	prior, loadErr := e.load(ctx, sub)
	if prior == nil {
		snap := e.fresh()
		snap.StorageErr = loadErr
		return snap, nil
	}

	position := prior.LastQuestionID
	if position != Completed && e.cat.Question(position) == nil {
		// The stored position no longer exists in this catalog
		// version. Keep the answers, restart the flow.
		position = e.cat.FirstQuestion()
	}

	raw := scoring.Aggregate(e.cat, prior.Answers)
	tr := flow.Transition{Next: position}
	if position == Completed {
		tr = flow.Transition{Completed: true}
	}

	snap := e.snapshot(tr, prior.Answers.Clone(), raw)
	snap.UpdatedAt = prior.UpdatedAt
	snap.StorageErr = loadErr
	return snap, nil
}

// Reset deletes the stored session for an authenticated subject.
func (e *Engine) Reset(ctx context.Context, sub auth.Subject) error {
	if sub.Anonymous() {
		return reject(CodeAuthRequired, "resetting progress requires a signed-in user")
	}
	if e.states == nil {
		return nil
	}
	return e.states.Delete(ctx, sub.ID)
}

// fresh builds the snapshot of an untouched session.
func (e *Engine) fresh() *Snapshot {
	return e.snapshot(flow.Transition{Next: e.cat.FirstQuestion()}, scoring.AnswerSet{}, map[string]float64{})
}

// snapshot derives the full presentation state from a transition, a
// working answer set and the raw section totals.
func (e *Engine) snapshot(tr flow.Transition, working scoring.AnswerSet, raw map[string]float64) *Snapshot {
	display, completed := scoring.DisplayScores(e.cat, working, raw, e.cfg.MasteryThreshold)

	nextPos := e.cat.FlowLen()
	if !tr.Completed {
		if pos, ok := e.cat.FlowPosition(tr.Next); ok {
			nextPos = pos
		}
	}

	return &Snapshot{
		NextQuestion:      e.cat.Question(tr.Next),
		Completed:         tr.Completed,
		SkippedFrom:       tr.SkippedFrom,
		Answers:           working,
		SectionScores:     display,
		CompletedSections: completed,
		PillarProgress:    progress.Calculate(e.cat, display, nextPos),
	}
}

// workingSet resolves the answer set an operation runs against:
// provided answers win, then the stored record, then empty.
func (e *Engine) workingSet(ctx context.Context, sub auth.Subject, provided scoring.AnswerSet) (scoring.AnswerSet, *store.SessionRecord, error) {
	prior, loadErr := e.load(ctx, sub)

	if provided != nil {
		return provided.Clone(), prior, loadErr
	}
	if prior != nil {
		return prior.Answers.Clone(), prior, loadErr
	}
	return scoring.AnswerSet{}, nil, loadErr
}

func (e *Engine) load(ctx context.Context, sub auth.Subject) (*store.SessionRecord, error) {
	if sub.Anonymous() || e.states == nil {
		return nil, nil
	}
	return e.states.Get(ctx, sub.ID)
}

// persist upserts the session record for authenticated subjects. Raw
// section totals are stored, never the clamped display scores.
func (e *Engine) persist(ctx context.Context, sub auth.Subject, prior *store.SessionRecord, snap *Snapshot, raw map[string]float64) error {
	if sub.Anonymous() || e.states == nil {
		return nil
	}

	rec := &store.SessionRecord{
		UserID:         sub.ID,
		Answers:        snap.Answers,
		SectionScores:  raw,
		LastQuestionID: snap.Position(),
		CatalogVersion: e.cat.Version(),
	}
	if prior != nil {
		rec.Summary = prior.Summary
		rec.CreatedAt = prior.CreatedAt
	}
	if err := e.states.Put(ctx, rec); err != nil {
		return err
	}
	snap.UpdatedAt = e.now()
	return nil
}

// logResponse appends a response event, best effort.
func (e *Engine) logResponse(ctx context.Context, sub auth.Subject, q *catalog.Question, ans scoring.Answer, raw map[string]float64) {
	if e.events == nil {
		return
	}
	userID := sub.ID
	if sub.Anonymous() {
		userID = e.anonID
	}
	_ = e.events.AppendResponse(ctx, store.ResponseEventData{
		UserID:     userID,
		QuestionID: q.ID,
		SectionID:  q.Section,
		Answer:     ans.String(),
		Score:      scoring.Score(q, ans),
	})
}

// latestAnswered returns the answered question furthest along the flow.
func (e *Engine) latestAnswered(answers scoring.AnswerSet) (string, bool) {
	best, bestPos := "", -1
	for qid := range answers {
		if pos, ok := e.cat.FlowPosition(qid); ok && pos > bestPos {
			best, bestPos = qid, pos
		}
	}
	return best, bestPos >= 0
}
