package components

import (
	"fmt"
	"unicode/utf8"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/sheetwise/internal/ui/theme"
)

// TextInput wraps bubbles/textinput with Sheetwise styling.
type TextInput struct {
	Model     textinput.Model
	Label     string
	ShowCount bool
	Disabled  bool
	errMsg    string
}

// NewTextInput creates a new styled text input. A charLimit of 0 means no
// limit.
func NewTextInput(label, placeholder string, charLimit int) TextInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = charLimit

	return TextInput{
		Model: ti,
		Label: label,
	}
}

// Init returns the initial command.
func (t TextInput) Init() tea.Cmd {
	return nil
}

// Update handles messages. A disabled input swallows key presses.
func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	if t.Disabled {
		if _, ok := msg.(tea.KeyMsg); ok {
			return t, nil
		}
	}

	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	if _, ok := msg.(tea.KeyMsg); ok {
		t.errMsg = ""
	}
	return t, cmd
}

// Focus gives the input keyboard focus.
func (t *TextInput) Focus() tea.Cmd {
	return t.Model.Focus()
}

// Blur removes keyboard focus.
func (t *TextInput) Blur() {
	t.Model.Blur()
}

// Focused reports whether the input has focus.
func (t TextInput) Focused() bool {
	return t.Model.Focused()
}

// View renders the label, the input and any validation message.
func (t TextInput) View() string {
	var s string
	if t.Label != "" {
		labelStyle := theme.Label
		if t.Focused() {
			labelStyle = labelStyle.Foreground(theme.Primary)
		}
		s += labelStyle.Render(t.Label) + "\n"
	}

	view := t.Model.View()
	if t.Disabled {
		view = theme.Disabled.Render(t.Model.Value())
	}
	s += view

	if t.ShowCount {
		s += "\n" + theme.Hint.Render(fmt.Sprintf("%d characters", utf8.RuneCountInString(t.Model.Value())))
	}
	if t.errMsg != "" {
		s += "\n" + lipgloss.NewStyle().Foreground(theme.Error).Render(t.errMsg)
	}
	return s
}

// Value returns the current input value.
func (t TextInput) Value() string {
	return t.Model.Value()
}

// SetValue replaces the input value.
func (t *TextInput) SetValue(v string) {
	t.Model.SetValue(v)
}

// Reset clears the value and any error.
func (t *TextInput) Reset() {
	t.Model.Reset()
	t.errMsg = ""
}

// SetError shows a validation message under the input until the next key press.
func (t *TextInput) SetError(msg string) {
	t.errMsg = msg
}

// Error returns the current validation message.
func (t TextInput) Error() string {
	return t.errMsg
}
