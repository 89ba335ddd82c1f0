package questionnaire

import (
	"context"

	tea "charm.land/bubbletea/v2"

	"github.com/infinitelife/pulse/internal/auth"
	"github.com/infinitelife/pulse/internal/catalog"
	"github.com/infinitelife/pulse/internal/engine"
	"github.com/infinitelife/pulse/internal/router"
	"github.com/infinitelife/pulse/internal/scoring"
	"github.com/infinitelife/pulse/internal/screen"
	"github.com/infinitelife/pulse/internal/screens/results"
	"github.com/infinitelife/pulse/internal/summary"
	"github.com/infinitelife/pulse/internal/ui/components"
	"github.com/infinitelife/pulse/internal/ui/layout"
)

// QuestionnaireScreen implements screen.Screen for the question flow.
type QuestionnaireScreen struct {
	eng  *engine.Engine
	gen  *summary.Generator
	sub  auth.Subject
	snap *engine.Snapshot

	// Active input, switched on the current question's type.
	slider     components.Slider
	yesno      components.YesNo
	choice     components.Choice
	choiceKeys []string

	submitting bool
	skipNotice string
	errMsg     string
}

var _ screen.Screen = (*QuestionnaireScreen)(nil)
var _ screen.KeyHintProvider = (*QuestionnaireScreen)(nil)

// New creates a QuestionnaireScreen. A nil snapshot means the stored
// session is loaded on Init; a non-nil one resumes from it directly.
func New(eng *engine.Engine, gen *summary.Generator, sub auth.Subject, snap *engine.Snapshot) *QuestionnaireScreen {
	s := &QuestionnaireScreen{eng: eng, gen: gen, sub: sub}
	if snap != nil {
		s.applySnapshot(snap)
	}
	return s
}

func (s *QuestionnaireScreen) Init() tea.Cmd {
	if s.snap != nil {
		return nil
	}
	return s.loadState()
}

func (s *QuestionnaireScreen) Title() string {
	return "Questionnaire"
}

func (s *QuestionnaireScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "Enter", Description: "Answer"},
	}
	if s.snap != nil && s.snap.NextQuestion != nil {
		if _, ok := s.eng.Catalog().PreviousInFlow(s.snap.NextQuestion.ID); ok {
			hints = append(hints, layout.KeyHint{Key: "Shift+Tab", Description: "Previous"})
		}
	}
	hints = append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
	return hints
}

func (s *QuestionnaireScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case stateLoadedMsg:
		return s.handleStateLoaded(msg)

	case answerResultMsg:
		return s.handleAnswerResult(msg)

	case prevResultMsg:
		return s.handlePrevResult(msg)

	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *QuestionnaireScreen) handleStateLoaded(msg stateLoadedMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		s.errMsg = msg.Err.Error()
		return s, nil
	}
	s.applySnapshot(msg.Snap)
	if s.snap.Completed {
		return s, s.pushResults()
	}
	return s, nil
}

func (s *QuestionnaireScreen) handleAnswerResult(msg answerResultMsg) (screen.Screen, tea.Cmd) {
	s.submitting = false
	if msg.Err != nil {
		s.errMsg = msg.Err.Error()
		return s, nil
	}
	s.applySnapshot(msg.Snap)
	if section := s.eng.Catalog().Section(msg.Snap.SkippedFrom); section != nil {
		s.skipNotice = section.Title
	}
	if s.snap.Completed {
		return s, s.pushResults()
	}
	return s, nil
}

func (s *QuestionnaireScreen) handlePrevResult(msg prevResultMsg) (screen.Screen, tea.Cmd) {
	s.submitting = false
	if msg.Err != nil {
		if rej, ok := engine.AsRejection(msg.Err); ok && rej.Code == engine.CodeAtStartOfFlow {
			return s, nil
		}
		s.errMsg = msg.Err.Error()
		return s, nil
	}
	s.applySnapshot(msg.Snap)
	return s, nil
}

func (s *QuestionnaireScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.errMsg != "" {
		s.errMsg = ""
		return s, nil
	}

	if s.snap == nil || s.snap.NextQuestion == nil || s.submitting {
		return s, nil
	}

	switch key {
	case "esc":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	case "enter":
		return s.submit()
	case "shift+tab":
		return s.previous()
	}

	// Forward to the active input component.
	switch s.snap.NextQuestion.Type {
	case catalog.TypeSlider:
		s.slider, _ = s.slider.Update(msg)
	case catalog.TypeYesNo:
		s.yesno, _ = s.yesno.Update(msg)
	case catalog.TypeMultipleChoice:
		s.choice, _ = s.choice.Update(msg)
	}
	return s, nil
}

func (s *QuestionnaireScreen) submit() (screen.Screen, tea.Cmd) {
	q := s.snap.NextQuestion
	ans, ok := s.currentAnswer()
	if !ok {
		return s, nil
	}

	s.submitting = true
	s.skipNotice = ""
	eng, sub, answers := s.eng, s.sub, s.snap.Answers
	return s, func() tea.Msg {
		snap, err := eng.SubmitAnswer(context.Background(), sub, q.ID, ans, answers)
		return answerResultMsg{Snap: snap, Err: err}
	}
}

func (s *QuestionnaireScreen) previous() (screen.Screen, tea.Cmd) {
	q := s.snap.NextQuestion

	s.submitting = true
	s.skipNotice = ""
	eng, sub, answers := s.eng, s.sub, s.snap.Answers
	return s, func() tea.Msg {
		snap, err := eng.GoToPrevious(context.Background(), sub, q.ID, answers)
		return prevResultMsg{Snap: snap, Err: err}
	}
}

func (s *QuestionnaireScreen) loadState() tea.Cmd {
	eng, sub := s.eng, s.sub
	return func() tea.Msg {
		snap, err := eng.CurrentState(context.Background(), sub)
		return stateLoadedMsg{Snap: snap, Err: err}
	}
}

func (s *QuestionnaireScreen) pushResults() tea.Cmd {
	next := results.New(s.eng.Catalog(), s.gen, s.sub, s.snap)
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

// applySnapshot installs a snapshot and resets the input component for
// the question it presents, seeding it from any existing answer.
func (s *QuestionnaireScreen) applySnapshot(snap *engine.Snapshot) {
	s.snap = snap
	q := snap.NextQuestion
	if q == nil {
		return
	}

	prior, hasPrior := snap.Answers[q.ID]

	switch q.Type {
	case catalog.TypeSlider:
		s.slider = components.NewSlider("Not at all", "Completely")
		if v, ok := prior.Number(); hasPrior && ok {
			s.slider.Value = int(v)
		}
	case catalog.TypeYesNo:
		s.yesno = components.NewYesNo()
		if hasPrior {
			s.yesno.Yes = prior.String() == "yes"
		}
	case catalog.TypeMultipleChoice:
		s.choiceKeys = q.ChoiceOrder
		opts := make([]string, len(s.choiceKeys))
		for i, key := range s.choiceKeys {
			opts[i] = choiceLabel(key)
		}
		s.choice = components.NewChoice(opts)
		if hasPrior {
			for i, key := range s.choiceKeys {
				if key == prior.String() {
					s.choice.Selected = i
				}
			}
		}
	}
}

// currentAnswer reads the active input into an answer value.
func (s *QuestionnaireScreen) currentAnswer() (scoring.Answer, bool) {
	switch s.snap.NextQuestion.Type {
	case catalog.TypeSlider:
		return scoring.Number(float64(s.slider.Value)), true
	case catalog.TypeYesNo:
		return scoring.Text(s.yesno.Value()), true
	case catalog.TypeMultipleChoice:
		if s.choice.Selected < 0 || s.choice.Selected >= len(s.choiceKeys) {
			return scoring.Answer{}, false
		}
		return scoring.Text(s.choiceKeys[s.choice.Selected]), true
	}
	return scoring.Answer{}, false
}
