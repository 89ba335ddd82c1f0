package components

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/infinitelife/pulse/internal/ui/theme"
)

// YesNo is a two-option toggle.
type YesNo struct {
	Yes bool
}

// NewYesNo creates a toggle defaulting to yes.
func NewYesNo() YesNo {
	return YesNo{Yes: true}
}

// Update handles left/right and y/n toggling.
func (y YesNo) Update(msg tea.Msg) (YesNo, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return y, nil
	}

	switch kmsg.String() {
	case "left", "right", "h", "l", "tab":
		y.Yes = !y.Yes
	case "y":
		y.Yes = true
	case "n":
		y.Yes = false
	}

	return y, nil
}

// Value returns "yes" or "no".
func (y YesNo) Value() string {
	if y.Yes {
		return "yes"
	}
	return "no"
}

// View renders the two options side by side.
func (y YesNo) View() string {
	render := func(label string, active bool) string {
		if active {
			return theme.ButtonActive.Render(" " + label + " ")
		}
		return theme.ButtonInactive.Render(" " + label + " ")
	}

	return lipgloss.JoinHorizontal(lipgloss.Center,
		render("Yes", y.Yes),
		"  ",
		render("No", !y.Yes),
	)
}
