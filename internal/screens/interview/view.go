package interview

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/sheetwise/internal/session"
	"github.com/abhisek/sheetwise/internal/ui/components"
	"github.com/abhisek/sheetwise/internal/ui/layout"
	"github.com/abhisek/sheetwise/internal/ui/theme"
)

// maxPreviousShown caps the previous-responses list on short terminals.
const maxPreviousShown = 5

func (s *InterviewScreen) View(width, height int) string {
	if s.showingQuitConfirm {
		return renderQuitConfirm(width, height)
	}

	cw := layout.ContentWidth(width)
	q, ok := s.session.CurrentQuestion()
	if !ok {
		return layout.Center(width, theme.Hint.Render("\n\nPreparing report..."))
	}

	var b strings.Builder

	// Progress line.
	p := s.session.Progress()
	b.WriteString(components.NewProgressBar(
		fmt.Sprintf("Question %d of %d", min(p.Answered+1, p.Total), p.Total),
		p.Percent()/100, true, cw,
	).View())
	b.WriteString("\n\n")

	// Badges.
	diff := theme.Badge.Foreground(theme.BgDark).Background(theme.DifficultyColor(q.Difficulty.String())).Render(q.Difficulty.String())
	cat := theme.Badge.Foreground(theme.Text).Background(theme.Primary).Render(q.Category)
	b.WriteString(diff + " " + cat)
	b.WriteString("\n\n")

	// Question card.
	b.WriteString(theme.Card.Width(cw).Foreground(theme.Text).Bold(true).Render(q.Text))
	b.WriteString("\n\n")

	b.WriteString(s.input.View())
	b.WriteString("\n\n")

	if s.evaluating {
		b.WriteString(s.spinner.View())
	} else {
		btn := components.NewButton("Submit Response")
		btn.Focused = true
		btn.Disabled = strings.TrimSpace(s.input.Value()) == ""
		b.WriteString(btn.View())
	}

	if s.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(theme.ErrorText.Render(s.errMsg))
	}

	if s.last != nil {
		b.WriteString("\n\n")
		b.WriteString(renderLastFeedback(*s.last))
	}

	if prev := s.session.Responses(); len(prev) > 0 && !layout.IsCompactHeight(height) {
		b.WriteString("\n\n")
		b.WriteString(renderPrevious(prev, cw))
	}

	return layout.Center(width, lipgloss.NewStyle().Width(cw).Render(b.String()))
}

func renderLastFeedback(r session.ScoredResponse) string {
	ev := r.Evaluation
	score := lipgloss.NewStyle().Foreground(theme.ScoreColor(ev.Score)).Bold(true).Render(fmt.Sprintf("%d%%", ev.Score))
	detail := fmt.Sprintf("  concept %d · detail %d · structure %d · example %d · keywords %d/%d",
		ev.ConceptScore, ev.DetailScore, ev.StructureScore, ev.ExampleScore, ev.KeywordMatches, ev.TotalKeywords)
	return theme.Label.Render(fmt.Sprintf("Q%d scored ", r.QuestionID)) + score + theme.Hint.Render(detail)
}

func renderPrevious(responses []session.ScoredResponse, width int) string {
	var b strings.Builder
	b.WriteString(theme.Label.Render("Previous Responses"))

	start := max(len(responses)-maxPreviousShown, 0)
	for _, r := range responses[start:] {
		b.WriteString("\n")
		head := fmt.Sprintf("Q%d: %s", r.QuestionID, r.Category)
		bar := components.NewScoreBar("", r.Evaluation.Score, 20).View()
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render(head) + "  " + bar)
		b.WriteString("\n")
		b.WriteString(theme.Hint.Render("  " + truncate(oneLine(r.Answer), width-2)))
	}
	return b.String()
}

func renderQuitConfirm(width, height int) string {
	box := theme.Card.
		BorderForeground(theme.Accent).
		Render("End the interview?\n\nAnswers given so far will be discarded.\n\n[Y] End interview   [N] Keep going")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}

func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// truncate shortens s to at most n runes, ending with an ellipsis.
func truncate(s string, n int) string {
	r := []rune(s)
	if n <= 1 || len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
