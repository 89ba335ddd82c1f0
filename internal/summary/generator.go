package summary

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/infinitelife/pulse/internal/auth"
	"github.com/infinitelife/pulse/internal/catalog"
	"github.com/infinitelife/pulse/internal/llm"
	"github.com/infinitelife/pulse/internal/scoring"
	"github.com/infinitelife/pulse/internal/store"
)

const maxSummaryTokens = 4000

// ErrNoAnswers is returned when there is nothing to summarise.
var ErrNoAnswers = fmt.Errorf("no answers to summarise")

// ErrNoSummary is returned by Cached when no summary has been stored.
var ErrNoSummary = fmt.Errorf("no stored summary")

// Result carries a generated summary plus any non-fatal storage error.
type Result struct {
	Summary *Summary

	// Raw is the validated JSON as returned by the provider.
	Raw json.RawMessage

	// Model is the model that served the request.
	Model string

	// StorageErr reports a persist failure. The summary itself is
	// valid regardless.
	StorageErr error
}

// Generator produces and stores self-discovery summaries.
type Generator struct {
	cat      *catalog.Catalog
	provider llm.Provider
	states   store.StateRepo // nil disables persistence
}

// NewGenerator creates a Generator. states may be nil for transient use.
func NewGenerator(cat *catalog.Catalog, provider llm.Provider, states store.StateRepo) *Generator {
	return &Generator{cat: cat, provider: provider, states: states}
}

// Generate builds the summary from the given answers, falling back to
// the stored answer set when answers is empty. For authenticated
// subjects with a stored session, the result is persisted onto it.
func (g *Generator) Generate(ctx context.Context, sub auth.Subject, answers scoring.AnswerSet) (*Result, error) {
	rec, _ := g.load(ctx, sub)
	if len(answers) == 0 && rec != nil {
		answers = rec.Answers
	}
	if len(answers) == 0 {
		return nil, ErrNoAnswers
	}

	if !sub.Anonymous() {
		ctx = llm.WithUser(ctx, sub.ID)
	}

	resp, err := g.provider.Generate(ctx, llm.Request{
		System:    systemPrompt,
		Prompt:    buildPrompt(Transcript(g.cat, answers)),
		Schema:    summarySchema(),
		MaxTokens: maxSummaryTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("generate summary: %w", err)
	}

	var s Summary
	if err := json.Unmarshal(resp.Content, &s); err != nil {
		return nil, fmt.Errorf("parse summary response: %w", err)
	}

	res := &Result{Summary: &s, Raw: resp.Content, Model: resp.Model}
	res.StorageErr = g.persist(ctx, sub, rec, &s)
	return res, nil
}

// Cached returns the previously stored summary for the subject.
func (g *Generator) Cached(ctx context.Context, sub auth.Subject) (*Summary, error) {
	rec, err := g.load(ctx, sub)
	if err != nil {
		return nil, err
	}
	if rec == nil || rec.Summary == nil {
		return nil, ErrNoSummary
	}
	return FromMap(rec.Summary)
}

func (g *Generator) load(ctx context.Context, sub auth.Subject) (*store.SessionRecord, error) {
	if sub.Anonymous() || g.states == nil {
		return nil, nil
	}
	return g.states.Get(ctx, sub.ID)
}

// persist attaches the summary to the stored session, if one exists.
func (g *Generator) persist(ctx context.Context, sub auth.Subject, rec *store.SessionRecord, s *Summary) error {
	if sub.Anonymous() || g.states == nil || rec == nil {
		return nil
	}
	m, err := s.ToMap()
	if err != nil {
		return err
	}
	rec.Summary = m
	return g.states.Put(ctx, rec)
}
