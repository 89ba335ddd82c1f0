package results

import (
	"fmt"
	"sort"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/infinitelife/pulse/internal/catalog"
	"github.com/infinitelife/pulse/internal/ui/components"
	"github.com/infinitelife/pulse/internal/ui/theme"
)

func (s *ResultsScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("Questionnaire complete!"))
	b.WriteString("\n\n")

	b.WriteString(s.renderPillars(width))
	b.WriteString("\n")
	b.WriteString(s.renderSections(width))
	b.WriteString("\n")
	b.WriteString(s.renderSummary(width))

	return b.String()
}

func (s *ResultsScreen) renderPillars(width int) string {
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

func (s *ResultsScreen) renderSections(width int) string {
	ids := make([]string, 0, len(s.snap.SectionScores))
	for id := range s.snap.SectionScores {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var b strings.Builder
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("Sections")))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", min(width-8, 60)))))
	b.WriteString("\n")

	for _, id := range ids {
		title := id
		if section := s.cat.Section(id); section != nil && section.Title != "" {
			title = section.Title
		}
		line := fmt.Sprintf("  %-34s %6.1f", title, s.snap.SectionScores[id])
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if s.snap.CompletedSections[id] {
			line += "  fast-tracked"
			style = style.Foreground(theme.Accent)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")
	}
	return b.String()
}

func (s *ResultsScreen) renderSummary(width int) string {
	if s.gen == nil {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("Configure an LLM provider to generate your self-discovery summary.")
	}
	if s.generating {
		return lipgloss.PlaceHorizontal(width, lipgloss.Center,
			s.spin.View()+lipgloss.NewStyle().Foreground(theme.TextDim).Render(" Generating your summary..."))
	}
	if s.genErr != "" {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render("Summary failed: " + s.genErr)
	}
	if s.sum == nil {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("Press G to generate your self-discovery summary.")
	}

	bodyWidth := min(width-8, 70)
	var b strings.Builder

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(s.sum.Title)))
	b.WriteString("\n\n")

	overall := lipgloss.NewStyle().Width(bodyWidth).Foreground(theme.Text).Render(s.sum.OverallSummary)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, overall))
	b.WriteString("\n\n")

	for _, ins := range s.sum.KeyInsights {
		block := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render(ins.Title) + "\n" +
			lipgloss.NewStyle().Width(bodyWidth).Foreground(theme.Text).Render(ins.Description)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, block))
		b.WriteString("\n\n")
	}

	for _, step := range s.sum.ActionableSteps {
		header := lipgloss.NewStyle().
			Foreground(theme.PillarColor(strings.ToLower(step.Pillar))).
			Bold(true).
			Render(step.Pillar)
		block := header + "\n" +
			lipgloss.NewStyle().Width(bodyWidth).Foreground(theme.Text).Render(step.Recommendation) + "\n" +
			lipgloss.NewStyle().Width(bodyWidth).Foreground(theme.TextDim).Italic(true).Render("First step: "+step.FirstStep)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, block))
		b.WriteString("\n\n")
	}

	return b.String()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
