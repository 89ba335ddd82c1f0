package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/infinitelife/pulse/internal/ui/theme"
)

// Slider selects an integer rating on a 0-10 scale.
type Slider struct {
	Min   int
	Max   int
	Value int

	LowLabel  string
	HighLabel string
}

// NewSlider creates a 0-10 slider positioned at the midpoint.
func NewSlider(lowLabel, highLabel string) Slider {
	return Slider{
		Min:       0,
		Max:       10,
		Value:     5,
		LowLabel:  lowLabel,
		HighLabel: highLabel,
	}
}

// Update handles left/right adjustment.
func (s Slider) Update(msg tea.Msg) (Slider, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "left", "h":
		if s.Value > s.Min {
			s.Value--
		}
	case "right", "l":
		if s.Value < s.Max {
			s.Value++
		}
	case "0", "1", "2", "3", "4", "5", "6", "7", "8", "9":
		s.Value = int(kmsg.String()[0] - '0')
	}

	return s, nil
}

// View renders the slider track with the current value highlighted.
func (s Slider) View() string {
	var track strings.Builder
	for v := s.Min; v <= s.Max; v++ {
		cell := fmt.Sprintf(" %d ", v)
		if v == s.Value {
			track.WriteString(lipgloss.NewStyle().
				Background(theme.Primary).
				Foreground(theme.BgDark).
				Bold(true).
				Render(cell))
		} else {
			track.WriteString(lipgloss.NewStyle().
				Foreground(theme.TextDim).
				Render(cell))
		}
	}

	out := track.String()

	if s.LowLabel != "" || s.HighLabel != "" {
		width := lipgloss.Width(out)
		gap := width - lipgloss.Width(s.LowLabel) - lipgloss.Width(s.HighLabel)
		if gap < 1 {
			gap = 1
		}
		labels := lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).
			Render(s.LowLabel + strings.Repeat(" ", gap) + s.HighLabel)
		out += "\n" + labels
	}

	return out
}
