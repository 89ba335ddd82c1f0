package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/infinitelife/pulse/internal/auth"
	"github.com/infinitelife/pulse/internal/engine"
	"github.com/infinitelife/pulse/internal/router"
	"github.com/infinitelife/pulse/internal/screen"
	"github.com/infinitelife/pulse/internal/screens/welcome"
	"github.com/infinitelife/pulse/internal/summary"
	"github.com/infinitelife/pulse/internal/ui/layout"
)

// Options carries the wired services the TUI runs against.
type Options struct {
	Engine    *engine.Engine
	Generator *summary.Generator
	Subject   auth.Subject
}

// Identity returns the header identity label for the subject.
func (o Options) Identity() string {
	if o.Subject.Anonymous() {
		return "guest"
	}
	return o.Subject.ID
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	opts   Options
	router *router.Router
	width  int
	height int
}

func newAppModel(opts Options) AppModel {
	entry := welcome.New(opts.Engine, opts.Generator, opts.Subject)
	return AppModel{
		opts:   opts,
		router: router.New(entry),
	}
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() == 1 {
				return m, tea.Quit
			}
			// Deeper screens decide what esc means for them.
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.opts.Identity(), m.width)

	footerHints := []layout.KeyHint{
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if hp, ok := active.(screen.KeyHintProvider); ok {
		if hints := hp.KeyHints(); len(hints) > 0 {
			footerHints = append(hints, footerHints...)
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
