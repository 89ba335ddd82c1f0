// Package flow implements the adaptive question-flow state machine:
// every question ID is a state, plus a terminal completed state.
package flow

import (
	"errors"

	"github.com/infinitelife/pulse/internal/catalog"
	"github.com/infinitelife/pulse/internal/scoring"
)

// ErrUnknownQuestion is returned when the caller references a question
// the catalog does not define.
var ErrUnknownQuestion = errors.New("unknown question")

// ErrAtStart is returned when going back from the first question or
// from a state with no predecessor.
var ErrAtStart = errors.New("no previous question")

// Transition is the outcome of advancing past an answered question.
type Transition struct {
	// Next is the next question ID; empty when Completed.
	Next string

	// Completed marks the terminal state.
	Completed bool

	// SkippedFrom names the section that was adaptively finalized when
	// the transition jumped ahead, empty otherwise.
	SkippedFrom string
}

// Navigator decides the next question after each accepted answer.
type Navigator struct {
	cat       *catalog.Catalog
	threshold float64
}

// NewNavigator creates a Navigator with the given mastery threshold.
func NewNavigator(cat *catalog.Catalog, threshold float64) *Navigator {
	return &Navigator{cat: cat, threshold: threshold}
}

// Next evaluates the transition out of question qid given the full
// answer set and the raw section totals. The adaptive override fires
// when qid is a declared trigger and its section has reached mastery:
// the flow jumps to the first question of the next section, or to the
// terminal state when the section is the last one.
func (n *Navigator) Next(qid string, answers scoring.AnswerSet, raw map[string]float64) (Transition, error) {
	q := n.cat.Question(qid)
	if q == nil {
		return Transition{}, ErrUnknownQuestion
	}

	sec := n.cat.Section(q.Section)
	if sec != nil && sec.IsTrigger(qid) && scoring.SectionMastered(sec, answers, raw, n.threshold) {
		start, ok := n.cat.NextSectionStart(sec.ID)
		if !ok {
			return Transition{Completed: true, SkippedFrom: sec.ID}, nil
		}
		return Transition{Next: start, SkippedFrom: sec.ID}, nil
	}

	next, ok := n.cat.NextInFlow(qid)
	if !ok {
		return Transition{Completed: true}, nil
	}
	return Transition{Next: next}, nil
}

// Previous returns the question preceding current in the linear flow.
// No adaptive logic applies: moving back past a skip simply re-enters
// the flow's sequential order.
func (n *Navigator) Previous(current string) (string, error) {
	if n.cat.Question(current) == nil {
		return "", ErrUnknownQuestion
	}
	prev, ok := n.cat.PreviousInFlow(current)
	if !ok {
		return "", ErrAtStart
	}
	return prev, nil
}
