package questionnaire

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/infinitelife/pulse/internal/catalog"
	"github.com/infinitelife/pulse/internal/ui/components"
	"github.com/infinitelife/pulse/internal/ui/theme"
)

func (s *QuestionnaireScreen) View(width, height int) string {
	if s.errMsg != "" {
		return renderError(width, s.errMsg)
	}
	if s.snap == nil {
		return renderLoading(width)
	}
	if s.snap.NextQuestion == nil {
		// Completed state is shown by the results screen; this view is
		// only briefly visible while the push is in flight.
		return renderLoading(width)
	}
	return s.renderQuestionView(width)
}

func (s *QuestionnaireScreen) renderQuestionView(width int) string {
	q := s.snap.NextQuestion
	cat := s.eng.Catalog()
	section := cat.SectionOf(q.ID)

	var b strings.Builder

	// Section line with question position.
	var sectionTitle string
	pillar := catalog.PillarOf(q.Section)
	if section != nil {
		sectionTitle = section.Title
	}
	infoLeft := lipgloss.NewStyle().
		Foreground(theme.PillarColor(string(pillar))).
		Bold(true).
		Render("  " + sectionTitle)

	pos, _ := cat.FlowPosition(q.ID)
	infoRight := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Question %d of %d", pos+1, cat.FlowLen()))

	infoLine := infoLeft
	rightPad := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight) - 4
	if rightPad > 0 {
		infoLine += strings.Repeat(" ", rightPad) + infoRight
	}

	b.WriteString(infoLine)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	// Skip notice from an adaptive section completion.
	if s.skipNotice != "" {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Accent).
			Render(fmt.Sprintf("Strong answers on %s — we've skipped ahead for you.", s.skipNotice)))
		b.WriteString("\n\n")
	}

	// Question text.
	questionStyle := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true)
	b.WriteString(questionStyle.Render(q.Text))
	b.WriteString("\n\n")

	// Input area.
	var input string
	switch q.Type {
	case catalog.TypeSlider:
		input = s.slider.View()
	case catalog.TypeYesNo:
		input = s.yesno.View()
	case catalog.TypeMultipleChoice:
		input = s.choice.View()
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, input))
	b.WriteString("\n\n")

	b.WriteString(s.renderPillarBars(width))

	if s.snap.StorageErr != nil {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render("Progress could not be saved; answers are kept for this session only."))
	}

	return b.String()
}

// renderPillarBars renders one progress bar per pillar.
func (s *QuestionnaireScreen) renderPillarBars(width int) string {
	barWidth := min(width-30, 40)
	if barWidth < 10 {
		barWidth = 10
	}

	var b strings.Builder
	for _, p := range catalog.AllPillars() {
		bar := components.NewProgressBar(catalog.PillarDisplayName(p), s.snap.PillarProgress[p], true, barWidth)
		bar.Color = theme.PillarColor(string(p))
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
		b.WriteString("\n")
	}
	return b.String()
}

// choiceLabel turns a choice key like "detailed-budget" into a
// presentable label.
func choiceLabel(key string) string {
	words := strings.Split(key, "-")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

func renderLoading(width int) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("\n\n\n  Loading your questionnaire...")
}

func renderError(width int, errMsg string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render(fmt.Sprintf("\n\n\n  %s\n\n  Press any key to continue.", errMsg))
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
