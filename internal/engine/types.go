package engine

import (
	"time"

	"github.com/infinitelife/pulse/internal/catalog"
	"github.com/infinitelife/pulse/internal/scoring"
)

// Completed is the terminal position marker stored in place of a
// question ID once the flow has been traversed.
const Completed = "completed"

// Snapshot is the computed view returned by every engine operation:
// the question to present next, the working answer set, and the scores
// derived from it.
type Snapshot struct {
	// NextQuestion is the question to present, nil when Completed.
	NextQuestion *catalog.Question

	// Completed marks the terminal state.
	Completed bool

	// SkippedFrom names the section that was adaptively finalized by
	// the transition that produced this snapshot, empty otherwise.
	SkippedFrom string

	// Answers is the working answer set the snapshot was computed from.
	Answers scoring.AnswerSet

	// SectionScores holds display scores per answered section, with
	// adaptively finalized sections clamped to their full total.
	SectionScores map[string]float64

	// CompletedSections marks sections finalized by the adaptive clamp.
	CompletedSections map[string]bool

	// PillarProgress holds completion percentages per pillar.
	PillarProgress map[catalog.Pillar]float64

	// UpdatedAt is the persisted record's timestamp, zero for
	// transient sessions.
	UpdatedAt time.Time

	// StorageErr reports a load or persist failure. The computed
	// fields above are valid regardless.
	StorageErr error
}

// Position returns the stored flow position for this snapshot.
func (s *Snapshot) Position() string {
	if s.Completed {
		return Completed
	}
	if s.NextQuestion == nil {
		return ""
	}
	return s.NextQuestion.ID
}
