package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/infinitelife/pulse/ent"
	"github.com/infinitelife/pulse/ent/sessionstate"
	"github.com/infinitelife/pulse/internal/scoring"
)

// stateRepo implements StateRepo using the ent client.
type stateRepo struct {
	client *ent.Client
}

func (r *stateRepo) Get(ctx context.Context, userID string) (*SessionRecord, error) {
	s, err := r.client.SessionState.Query().
		Where(sessionstate.UserIDEQ(userID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query session state: %w", err)
	}
	return entStateToRecord(s)
}

func (r *stateRepo) Put(ctx context.Context, rec *SessionRecord) error {
	answers, err := answersToMap(rec.Answers)
	if err != nil {
		return fmt.Errorf("marshal answers: %w", err)
	}

	existing, err := r.client.SessionState.Query().
		Where(sessionstate.UserIDEQ(rec.UserID)).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("query session state: %w", err)
	}

	if existing == nil {
		create := r.client.SessionState.Create().
			SetUserID(rec.UserID).
			SetAnswers(answers).
			SetSectionScores(rec.SectionScores).
			SetLastQuestionID(rec.LastQuestionID).
			SetCatalogVersion(rec.CatalogVersion)
		if rec.Summary != nil {
			create.SetSummary(rec.Summary)
		}
		if _, err := create.Save(ctx); err != nil {
			return fmt.Errorf("create session state: %w", err)
		}
		return nil
	}

	update := existing.Update().
		SetAnswers(answers).
		SetSectionScores(rec.SectionScores).
		SetLastQuestionID(rec.LastQuestionID).
		SetCatalogVersion(rec.CatalogVersion)
	if rec.Summary != nil {
		update.SetSummary(rec.Summary)
	}
	if _, err := update.Save(ctx); err != nil {
		return fmt.Errorf("update session state: %w", err)
	}
	return nil
}

func (r *stateRepo) Delete(ctx context.Context, userID string) error {
	_, err := r.client.SessionState.Delete().
		Where(sessionstate.UserIDEQ(userID)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete session state: %w", err)
	}
	return nil
}

// answersToMap converts an AnswerSet to map[string]any for ent JSON storage.
func answersToMap(answers scoring.AnswerSet) (map[string]any, error) {
	b, err := json.Marshal(answers)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	if m == nil {
		m = map[string]any{}
	}
	return m, nil
}

// entStateToRecord converts an ent SessionState to a store SessionRecord.
func entStateToRecord(s *ent.SessionState) (*SessionRecord, error) {
	b, err := json.Marshal(s.Answers)
	if err != nil {
		return nil, fmt.Errorf("marshal ent answers: %w", err)
	}
	var answers scoring.AnswerSet
	if err := json.Unmarshal(b, &answers); err != nil {
		return nil, fmt.Errorf("unmarshal answers: %w", err)
	}
	return &SessionRecord{
		UserID:         s.UserID,
		Answers:        answers,
		SectionScores:  s.SectionScores,
		LastQuestionID: s.LastQuestionID,
		CatalogVersion: s.CatalogVersion,
		Summary:        s.Summary,
		CreatedAt:      s.CreatedAt,
		UpdatedAt:      s.UpdatedAt,
	}, nil
}
