package results

import (
	"context"
	"errors"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/infinitelife/pulse/internal/auth"
	"github.com/infinitelife/pulse/internal/catalog"
	"github.com/infinitelife/pulse/internal/engine"
	"github.com/infinitelife/pulse/internal/router"
	"github.com/infinitelife/pulse/internal/screen"
	"github.com/infinitelife/pulse/internal/summary"
	"github.com/infinitelife/pulse/internal/ui/layout"
	"github.com/infinitelife/pulse/internal/ui/theme"
)

// summaryReadyMsg is sent when summary generation finishes.
type summaryReadyMsg struct {
	Summary *summary.Summary
	Cached  bool
	Err     error
}

// ResultsScreen shows section scores, pillar progress and the AI
// self-discovery summary for a completed questionnaire.
type ResultsScreen struct {
	cat  *catalog.Catalog
	gen  *summary.Generator
	sub  auth.Subject
	snap *engine.Snapshot

	sum        *summary.Summary
	spin       spinner.Model
	generating bool
	genErr     string
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)

// New creates a ResultsScreen. The generator may be nil when no LLM
// provider is configured; the scores view still works without it.
func New(cat *catalog.Catalog, gen *summary.Generator, sub auth.Subject, snap *engine.Snapshot) *ResultsScreen {
	spin := spinner.New(spinner.WithSpinner(spinner.Dot))
	spin.Style = lipgloss.NewStyle().Foreground(theme.Secondary)
	return &ResultsScreen{cat: cat, gen: gen, sub: sub, snap: snap, spin: spin}
}

func (s *ResultsScreen) Init() tea.Cmd {
	if s.gen == nil {
		return nil
	}
	return s.loadCached()
}

func (s *ResultsScreen) Title() string {
	return "Your Results"
}

func (s *ResultsScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{}
	if s.gen != nil && s.sum == nil && !s.generating {
		hints = append(hints, layout.KeyHint{Key: "G", Description: "Generate summary"})
	}
	if s.sum != nil {
		hints = append(hints, layout.KeyHint{Key: "G", Description: "Regenerate"})
	}
	hints = append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
	return hints
}

func (s *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !s.generating {
			return s, nil
		}
		var cmd tea.Cmd
		s.spin, cmd = s.spin.Update(msg)
		return s, cmd

	case summaryReadyMsg:
		s.generating = false
		if msg.Err != nil {
			// A cache miss is not an error worth surfacing.
			if !msg.Cached || !errors.Is(msg.Err, summary.ErrNoSummary) {
				s.genErr = msg.Err.Error()
			}
			return s, nil
		}
		s.genErr = ""
		s.sum = msg.Summary
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "g", "G":
			if s.gen != nil && !s.generating {
				s.generating = true
				s.genErr = ""
				return s, tea.Batch(s.generate(), s.spin.Tick)
			}
		}
	}
	return s, nil
}

// loadCached checks for a previously stored summary.
func (s *ResultsScreen) loadCached() tea.Cmd {
	gen, sub := s.gen, s.sub
	return func() tea.Msg {
		sum, err := gen.Cached(context.Background(), sub)
		return summaryReadyMsg{Summary: sum, Cached: true, Err: err}
	}
}

// generate requests a fresh summary from the provider.
func (s *ResultsScreen) generate() tea.Cmd {
	gen, sub, answers := s.gen, s.sub, s.snap.Answers
	return func() tea.Msg {
		res, err := gen.Generate(context.Background(), sub, answers)
		if err != nil {
			return summaryReadyMsg{Err: err}
		}
		return summaryReadyMsg{Summary: res.Summary}
	}
}
