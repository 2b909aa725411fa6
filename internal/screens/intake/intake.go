// Package intake collects candidate details before the interview starts.
package intake

import (
	"errors"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/sheetwise/internal/candidate"
	"github.com/abhisek/sheetwise/internal/router"
	"github.com/abhisek/sheetwise/internal/screen"
	"github.com/abhisek/sheetwise/internal/ui/components"
	"github.com/abhisek/sheetwise/internal/ui/layout"
	"github.com/abhisek/sheetwise/internal/ui/theme"
)

// Field indices in tab order.
const (
	fieldName = iota
	fieldEmail
	fieldPosition
	fieldExperience
	fieldStart
	fieldCount
)

// StartFunc builds the interview screen for a validated candidate.
type StartFunc func(c candidate.Candidate) screen.Screen

// IntakeScreen is the candidate details form.
type IntakeScreen struct {
	inputs     [3]components.TextInput
	experience components.Select
	start      components.Button
	focus      int
	errMsg     string
	onStart    StartFunc
	questions  int
}

var _ screen.Screen = (*IntakeScreen)(nil)
var _ screen.KeyHintProvider = (*IntakeScreen)(nil)

// New creates the intake form. questions is the bank size shown in the
// process overview.
func New(questions int, onStart StartFunc) *IntakeScreen {
	s := &IntakeScreen{
		inputs: [3]components.TextInput{
			components.NewTextInput("Full Name", "Enter your full name", 100),
			components.NewTextInput("Email Address", "Enter your email address", 254),
			components.NewTextInput("Position Applied For", "e.g., Data Analyst, Financial Analyst", 100),
		},
		start:     components.NewButton("Start Interview"),
		onStart:   onStart,
		questions: questions,
	}

	opts := make([]components.Option, 0, len(candidate.AllExperience()))
	for _, e := range candidate.AllExperience() {
		opts = append(opts, components.Option{Label: e.Label(), Value: string(e)})
	}
	s.experience = components.NewSelect("Years of Excel Experience", candidate.Experience("").Label(), opts)
	return s
}

func (s *IntakeScreen) Init() tea.Cmd {
	return s.setFocus(fieldName)
}

func (s *IntakeScreen) Title() string {
	return "Candidate Details"
}

func (s *IntakeScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "Tab/↑↓", Description: "Next field"},
	}
	if s.focus == fieldExperience {
		hints = append(hints, layout.KeyHint{Key: "←→", Description: "Choose"})
	}
	return append(hints,
		layout.KeyHint{Key: "Enter", Description: "Start"},
		layout.KeyHint{Key: "Ctrl+C", Description: "Quit"},
	)
}

// Candidate returns the form contents, trimmed.
func (s *IntakeScreen) Candidate() candidate.Candidate {
	return candidate.Candidate{
		Name:       s.inputs[fieldName].Value(),
		Email:      s.inputs[fieldEmail].Value(),
		Position:   s.inputs[fieldPosition].Value(),
		Experience: candidate.Experience(s.experience.Value()),
	}.Normalize()
}

func (s *IntakeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, s.forward(msg)
	}

	switch kmsg.String() {
	case "tab", "down":
		return s, s.setFocus((s.focus + 1) % fieldCount)
	case "shift+tab", "up":
		return s, s.setFocus((s.focus + fieldCount - 1) % fieldCount)
	case "enter":
		if s.focus == fieldStart || s.ready() {
			return s, s.submit()
		}
		return s, s.setFocus((s.focus + 1) % fieldCount)
	}

	s.errMsg = ""
	return s, s.forward(msg)
}

func (s *IntakeScreen) forward(msg tea.Msg) tea.Cmd {
	switch {
	case s.focus < len(s.inputs):
		var cmd tea.Cmd
		s.inputs[s.focus], cmd = s.inputs[s.focus].Update(msg)
		return cmd
	case s.focus == fieldExperience:
		var cmd tea.Cmd
		s.experience, cmd = s.experience.Update(msg)
		return cmd
	}
	return nil
}

func (s *IntakeScreen) setFocus(i int) tea.Cmd {
	s.focus = i
	var cmd tea.Cmd
	for idx := range s.inputs {
		if idx == i {
			cmd = s.inputs[idx].Focus()
		} else {
			s.inputs[idx].Blur()
		}
	}
	s.experience.Focused = i == fieldExperience
	s.start.Focused = i == fieldStart
	return cmd
}

func (s *IntakeScreen) ready() bool {
	return s.Candidate().Ready()
}

func (s *IntakeScreen) submit() tea.Cmd {
	c := s.Candidate()
	if err := c.Validate(); err != nil {
		var ferr *candidate.FieldError
		if errors.As(err, &ferr) {
			s.errMsg = strings.Join(ferr.Problems, "\n")
		} else {
			s.errMsg = err.Error()
		}
		return nil
	}

	next := s.onStart(c)
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

func (s *IntakeScreen) View(width, height int) string {
	cw := min(layout.ContentWidth(width), 70)

	var b strings.Builder
	b.WriteString(theme.Title.Width(cw).Render("Excel Skills Assessment"))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Width(cw).Render("Technical interview for analyst positions"))
	b.WriteString("\n\n")

	for _, in := range s.inputs {
		b.WriteString(in.View())
		b.WriteString("\n\n")
	}
	b.WriteString(s.experience.View())
	b.WriteString("\n\n")

	overview := []string{
		"Interview Process:",
		fmt.Sprintf("• %d progressive technical questions", s.questions),
		"• Instant heuristic evaluation and feedback",
		"• Comprehensive performance report",
		"• Estimated time: 15-20 minutes",
	}
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Primary).Render(strings.Join(overview, "\n")))
	b.WriteString("\n\n")

	s.start.Disabled = !s.ready()
	b.WriteString(s.start.View())

	if s.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(theme.ErrorText.Render(s.errMsg))
	}

	return layout.Center(width, lipgloss.NewStyle().Width(cw).Render(b.String()))
}
