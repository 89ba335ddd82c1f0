package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/infinitelife/pulse/internal/ui/theme"
)

// Choice is a multiple-choice selector. There is no right answer; the
// highlighted option is simply the one the user will submit.
type Choice struct {
	Options  []string
	Selected int
}

// NewChoice creates a choice selector over the given options.
func NewChoice(options []string) Choice {
	return Choice{Options: options}
}

// Update handles keyboard navigation.
func (c Choice) Update(msg tea.Msg) (Choice, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if c.Selected > 0 {
			c.Selected--
		}
	case "down", "j":
		if c.Selected < len(c.Options)-1 {
			c.Selected++
		}
	}

	return c, nil
}

// Value returns the currently highlighted option.
func (c Choice) Value() string {
	if c.Selected < 0 || c.Selected >= len(c.Options) {
		return ""
	}
	return c.Options[c.Selected]
}

// View renders the option list.
func (c Choice) View() string {
	var s string
	for i, opt := range c.Options {
		prefix := "  "
		if i == c.Selected {
			prefix = "▸ "
		}

		line := fmt.Sprintf("%s%s", prefix, opt)
		if i == c.Selected {
			s += lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line) + "\n"
		} else {
			s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
		}
	}
	return s
}
