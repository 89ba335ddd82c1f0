package catalog

// QuestionType identifies how a question is presented and scored.
type QuestionType string

const (
	TypeSlider         QuestionType = "slider"
	TypeYesNo          QuestionType = "yes-no"
	TypeMultipleChoice QuestionType = "multiple-choice"
)

// Scoring holds the type-dependent scoring rule for a question.
// Points and TargetAnswer apply to slider and yes-no questions;
// Choices maps a choice key to its point value for multiple-choice.
type Scoring struct {
	Points       float64            `json:"points,omitempty"`
	TargetAnswer string             `json:"target_answer,omitempty"`
	Choices      map[string]float64 `json:"choices,omitempty"`
}

// Question is a single catalog question. Immutable after load.
type Question struct {
	ID      string       `json:"id"`
	Text    string       `json:"text"`
	Type    QuestionType `json:"type"`
	Section string       `json:"section"`
	Scoring Scoring      `json:"scoring"`

	// ChoiceOrder lists multiple-choice keys in display order.
	// Optional; when empty, presentation order is unspecified.
	ChoiceOrder []string `json:"choice_order,omitempty"`
}

// Section is an ordered cluster of questions with its own point budget.
type Section struct {
	ID        string   `json:"id"`
	Title     string   `json:"title,omitempty"`
	Questions []string `json:"questions"`

	// TotalPoints is the full score achievable across all questions.
	TotalPoints float64 `json:"total_points"`

	// AdaptiveTriggers lists question IDs that, once answered, make the
	// section eligible for early full-credit completion.
	AdaptiveTriggers []string `json:"adaptive_trigger_questions,omitempty"`

	// AdaptiveMaxScore is the score achievable by the point the last
	// trigger fires. Zero disables adaptive completion for the section.
	AdaptiveMaxScore float64 `json:"adaptive_max_score,omitempty"`
}

// IsTrigger reports whether the given question is an adaptive trigger
// for this section.
func (s *Section) IsTrigger(questionID string) bool {
	for _, id := range s.AdaptiveTriggers {
		if id == questionID {
			return true
		}
	}
	return false
}
