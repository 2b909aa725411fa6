package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/sheetwise/internal/ui/theme"
)

// Option is one choice in a Select.
type Option struct {
	Label string
	Value string
}

// Select is a single-choice field cycled with the left and right keys.
// Selected is -1 until a choice is made.
type Select struct {
	Label       string
	Placeholder string
	Options     []Option
	Selected    int
	Focused     bool
}

// NewSelect creates a select with nothing chosen.
func NewSelect(label, placeholder string, options []Option) Select {
	return Select{
		Label:       label,
		Placeholder: placeholder,
		Options:     options,
		Selected:    -1,
	}
}

// Update handles keyboard navigation while focused.
func (s Select) Update(msg tea.Msg) (Select, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || !s.Focused || len(s.Options) == 0 {
		return s, nil
	}

	switch kmsg.String() {
	case "right", "l", "space", " ":
		s.Selected = (s.Selected + 1) % len(s.Options)
	case "left", "h":
		if s.Selected <= 0 {
			s.Selected = len(s.Options) - 1
		} else {
			s.Selected--
		}
	}
	return s, nil
}

// Value returns the chosen value, or "" when nothing is chosen.
func (s Select) Value() string {
	if s.Selected < 0 || s.Selected >= len(s.Options) {
		return ""
	}
	return s.Options[s.Selected].Value
}

// View renders the select.
func (s Select) View() string {
	var b strings.Builder
	if s.Label != "" {
		labelStyle := theme.Label
		if s.Focused {
			labelStyle = labelStyle.Foreground(theme.Primary)
		}
		b.WriteString(labelStyle.Render(s.Label) + "\n")
	}

	text := s.Placeholder
	style := theme.Disabled
	if s.Selected >= 0 && s.Selected < len(s.Options) {
		text = s.Options[s.Selected].Label
		style = theme.Unselected
	}
	if s.Focused {
		style = theme.Selected
		text = "◂ " + text + " ▸"
	}
	b.WriteString(style.Render(text))
	return b.String()
}
