package components

import (
	"github.com/abhisek/sheetwise/internal/ui/theme"
)

// Button is a styled button. A disabled button renders dimmed, like the
// submit button while an answer is blank or being evaluated.
type Button struct {
	Label    string
	Focused  bool
	Disabled bool
}

// NewButton creates a new button.
func NewButton(label string) Button {
	return Button{Label: label}
}

// View renders the button.
func (b Button) View() string {
	label := " " + b.Label + " "
	switch {
	case b.Disabled:
		return theme.ButtonInactive.Render(label)
	case b.Focused:
		return theme.ButtonActive.Render("▸" + label)
	default:
		return theme.ButtonInactive.Foreground(theme.Text).Render(label)
	}
}
