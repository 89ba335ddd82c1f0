package store

import (
	"context"
	"time"

	"github.com/infinitelife/pulse/internal/scoring"
)

// SessionRecord is the persisted questionnaire state for one user.
type SessionRecord struct {
	UserID         string
	Answers        scoring.AnswerSet
	SectionScores  map[string]float64
	LastQuestionID string // next question to present, or "completed"
	CatalogVersion string
	Summary        map[string]any // generated self-discovery summary, nil until requested
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// StateRepo manages per-user session records.
type StateRepo interface {
	// Get returns the record for userID, or nil if none exists.
	Get(ctx context.Context, userID string) (*SessionRecord, error)

	// Put upserts the record keyed by its UserID.
	Put(ctx context.Context, rec *SessionRecord) error

	// Delete removes the record for userID. Deleting a missing record
	// is not an error.
	Delete(ctx context.Context, userID string) error
}

// ResponseEventData captures a single answer submission.
type ResponseEventData struct {
	UserID     string
	QuestionID string
	SectionID  string
	Answer     string
	Score      float64
}

// SummaryRequestEventData captures a single summary generation call.
type SummaryRequestEventData struct {
	UserID       string
	Provider     string
	Model        string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// EventRepo provides append access to domain events.
type EventRepo interface {
	// AppendResponse records an answer submission event.
	AppendResponse(ctx context.Context, data ResponseEventData) error

	// AppendSummaryRequest records a summary generation event.
	AppendSummaryRequest(ctx context.Context, data SummaryRequestEventData) error
}
