package summary

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/sheetwise/internal/report"
	"github.com/abhisek/sheetwise/internal/ui/components"
	"github.com/abhisek/sheetwise/internal/ui/layout"
	"github.com/abhisek/sheetwise/internal/ui/theme"
)

func (s *SummaryScreen) View(width, height int) string {
	r := s.report
	if r == nil {
		return ""
	}
	cw := layout.ContentWidth(width)

	var b strings.Builder

	b.WriteString(theme.Title.Width(cw).Render("Interview Complete"))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Width(cw).Render("Comprehensive Performance Analysis"))
	b.WriteString("\n\n")

	b.WriteString(renderHeadline(r, cw))
	b.WriteString("\n\n")

	// Category and difficulty side by side on wide terminals.
	half := (cw - 4) / 2
	if layout.IsCompactWidth(width) {
		b.WriteString(renderGroups("Category Performance", r.CategoryAverages, cw))
		b.WriteString("\n\n")
		b.WriteString(renderGroups("Difficulty Analysis", r.DifficultyAverages, cw))
	} else {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
			renderGroups("Category Performance", r.CategoryAverages, half), "    ",
			renderGroups("Difficulty Analysis", r.DifficultyAverages, half)))
	}
	b.WriteString("\n\n")

	strengths := renderList("Key Strengths", r.Strengths, r.StrengthsNote(), theme.Success, "✓")
	improvements := renderList("Areas for Improvement", r.Improvements, r.ImprovementsNote(), theme.Improve, "↯")
	if layout.IsCompactWidth(width) {
		b.WriteString(strengths + "\n\n" + improvements)
	} else {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
			lipgloss.NewStyle().Width(half).Render(strengths), "    ",
			lipgloss.NewStyle().Width(half).Render(improvements)))
	}

	if len(r.Responses) > 0 {
		b.WriteString("\n\n")
		b.WriteString(s.renderDrillDown(cw))
	}

	if s.status != "" {
		b.WriteString("\n\n")
		style := theme.ErrorText
		if s.statusOK {
			style = lipgloss.NewStyle().Foreground(theme.Success)
		}
		b.WriteString(style.Render(s.status))
	}

	return layout.Center(width, lipgloss.NewStyle().Width(cw).Render(b.String()))
}

func renderHeadline(r *report.Report, width int) string {
	third := max(width/3-2, 12)
	cell := func(value, label string, fg color.Color) string {
		return lipgloss.NewStyle().Width(third).Align(lipgloss.Center).Render(
			lipgloss.NewStyle().Bold(true).Foreground(fg).Render(value) + "\n" + theme.Label.Render(label))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top,
		cell(fmt.Sprintf("%d%%", r.OverallScore), "Overall Score", theme.ScoreColor(r.OverallScore)),
		cell(string(r.Recommendation), "Recommendation", theme.RecommendationColor(r.Recommendation.Positive())),
		cell(fmt.Sprintf("%d", len(r.Strengths)), "Strong Areas", theme.Highlight),
	)
}

func renderGroups(title string, groups []report.GroupAverage, width int) string {
	labelWidth := 0
	for _, g := range groups {
		labelWidth = max(labelWidth, lipgloss.Width(g.Label))
	}

	var b strings.Builder
	b.WriteString(theme.Label.Render(title))
	for _, g := range groups {
		bar := components.NewScoreBar(g.Label, g.Average, width)
		bar.LabelWidth = labelWidth
		b.WriteString("\n")
		b.WriteString(bar.View())
	}
	return b.String()
}

func renderList(title string, items []string, fallback string, fg color.Color, icon string) string {
	style := lipgloss.NewStyle().Bold(true).Foreground(fg)

	var b strings.Builder
	b.WriteString(style.Render(title))
	if len(items) == 0 {
		b.WriteString("\n")
		b.WriteString(theme.Hint.Render(fallback))
		return b.String()
	}
	for _, item := range items {
		b.WriteString("\n")
		b.WriteString(style.UnsetBold().Render(icon + " " + item))
	}
	return b.String()
}

func (s *SummaryScreen) renderDrillDown(width int) string {
	responses := s.report.Responses
	sel := min(max(s.selected, 0), len(responses)-1)

	var b strings.Builder
	b.WriteString(theme.Label.Render("Detailed Response Analysis"))
	b.WriteString(theme.Hint.Render(fmt.Sprintf("  (%d of %d)", sel+1, len(responses))))
	b.WriteString("\n")

	for i, e := range responses {
		marker := "  "
		style := theme.Unselected
		if i == sel {
			marker = "▸ "
			style = theme.Selected
		}
		line := fmt.Sprintf("%sQ%d  %-18s %-12s %3d%%", marker, e.QuestionID, e.Category, e.Difficulty, e.Evaluation.Score)
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}

	e := responses[sel]
	ev := e.Evaluation
	detail := []string{
		theme.Body.Render(e.Question),
		"",
		theme.Hint.Render(e.Answer),
		"",
		fmt.Sprintf("Concept %d%%   Detail %d%%   Structure %d%%   Example %d%%",
			ev.ConceptScore, ev.DetailScore, ev.StructureScore, ev.ExampleScore),
		fmt.Sprintf("Keywords matched %d/%d: %s", ev.KeywordMatches, ev.TotalKeywords, strings.Join(ev.MatchedKeywords, ", ")),
	}
	b.WriteString(theme.Card.Width(width).Render(strings.Join(detail, "\n")))
	return b.String()
}
