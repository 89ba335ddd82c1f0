package welcome

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/infinitelife/pulse/internal/auth"
	"github.com/infinitelife/pulse/internal/engine"
	"github.com/infinitelife/pulse/internal/router"
	"github.com/infinitelife/pulse/internal/screen"
	"github.com/infinitelife/pulse/internal/screens/questionnaire"
	"github.com/infinitelife/pulse/internal/screens/results"
	"github.com/infinitelife/pulse/internal/summary"
	"github.com/infinitelife/pulse/internal/ui/layout"
	"github.com/infinitelife/pulse/internal/ui/theme"
)

const bannerArt = `  ╭─────────────────────────╮
  │   ◉  P U L S E          │
  │   your infinite life    │
  ╰─────────────────────────╯`

// stateLoadedMsg carries the stored session fetched on Init.
type stateLoadedMsg struct {
	Snap *engine.Snapshot
	Err  error
}

// WelcomeScreen is the entry screen: it loads any stored session and
// offers to begin or resume the questionnaire.
type WelcomeScreen struct {
	eng *engine.Engine
	gen *summary.Generator
	sub auth.Subject

	snap   *engine.Snapshot
	errMsg string
}

var _ screen.Screen = (*WelcomeScreen)(nil)
var _ screen.KeyHintProvider = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen with injected dependencies.
func New(eng *engine.Engine, gen *summary.Generator, sub auth.Subject) *WelcomeScreen {
	return &WelcomeScreen{eng: eng, gen: gen, sub: sub}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) Init() tea.Cmd {
	eng, sub := w.eng, w.sub
	return func() tea.Msg {
		snap, err := eng.CurrentState(context.Background(), sub)
		return stateLoadedMsg{Snap: snap, Err: err}
	}
}

func (w *WelcomeScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "Enter", Description: w.enterLabel()},
	}
	if w.snap != nil && w.snap.Completed && !w.sub.Anonymous() {
		hints = append(hints, layout.KeyHint{Key: "R", Description: "Restart"})
	}
	hints = append(hints, layout.KeyHint{Key: "Esc", Description: "Quit"})
	return hints
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case stateLoadedMsg:
		if msg.Err != nil {
			w.errMsg = msg.Err.Error()
			return w, nil
		}
		w.snap = msg.Snap
		return w, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			return w, w.begin()
		case "r", "R":
			if w.snap != nil && w.snap.Completed && !w.sub.Anonymous() {
				return w, w.restart()
			}
		}
	}
	return w, nil
}

// begin pushes the questionnaire, or the results when already done.
func (w *WelcomeScreen) begin() tea.Cmd {
	if w.snap == nil {
		return nil
	}
	snap := w.snap
	if snap.Completed {
		return func() tea.Msg {
			return router.PushScreenMsg{
				Screen: results.New(w.eng.Catalog(), w.gen, w.sub, snap),
			}
		}
	}
	return func() tea.Msg {
		return router.PushScreenMsg{
			Screen: questionnaire.New(w.eng, w.gen, w.sub, snap),
		}
	}
}

// restart wipes the stored session and starts over.
func (w *WelcomeScreen) restart() tea.Cmd {
	eng, gen, sub := w.eng, w.gen, w.sub
	return func() tea.Msg {
		if err := eng.Reset(context.Background(), sub); err != nil {
			return stateLoadedMsg{Err: err}
		}
		snap, err := eng.CurrentState(context.Background(), sub)
		if err != nil {
			return stateLoadedMsg{Err: err}
		}
		return router.PushScreenMsg{
			Screen: questionnaire.New(eng, gen, sub, snap),
		}
	}
}

func (w *WelcomeScreen) View(width, height int) string {
	var sections []string

	sections = append(sections, lipgloss.NewStyle().Foreground(theme.Primary).Render(bannerArt))
	sections = append(sections, "")

	tagline := lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Render("A few honest answers. A clearer picture of your life.")
	sections = append(sections, tagline)
	sections = append(sections, "")

	switch {
	case w.errMsg != "":
		sections = append(sections, lipgloss.NewStyle().
			Foreground(theme.Error).
			Render(w.errMsg))

	case w.snap == nil:
		sections = append(sections, lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render("Loading..."))

	default:
		sections = append(sections, lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Italic(true).
			Render(w.statusLine()))
	}

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

// statusLine summarises the stored session for the hint text.
func (w *WelcomeScreen) statusLine() string {
	if w.snap.Completed {
		return "You've completed the questionnaire. Press Enter to see your results."
	}
	if len(w.snap.Answers) == 0 {
		return "Press Enter to begin."
	}
	pos := 0
	if w.snap.NextQuestion != nil {
		pos, _ = w.eng.Catalog().FlowPosition(w.snap.NextQuestion.ID)
	}
	return fmt.Sprintf("Welcome back. Press Enter to resume at question %d of %d.",
		pos+1, w.eng.Catalog().FlowLen())
}

func (w *WelcomeScreen) enterLabel() string {
	switch {
	case w.snap == nil:
		return "Start"
	case w.snap.Completed:
		return "Results"
	case len(w.snap.Answers) > 0:
		return "Resume"
	default:
		return "Start"
	}
}
