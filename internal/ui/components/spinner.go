package components

import (
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/sheetwise/internal/ui/theme"
)

const spinnerInterval = 120 * time.Millisecond

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// SpinnerTickMsg advances the spinner animation. ID ties the tick to the
// spinner that scheduled it so stale ticks are dropped.
type SpinnerTickMsg struct {
	ID   int
	Time time.Time
}

// Spinner is a small animated activity indicator.
type Spinner struct {
	Label  string
	id     int
	frame  int
	active bool
}

var lastSpinnerID int

// NewSpinner creates an idle spinner.
func NewSpinner(label string) Spinner {
	lastSpinnerID++
	return Spinner{Label: label, id: lastSpinnerID}
}

// Start activates the spinner and schedules the first tick.
func (s *Spinner) Start() tea.Cmd {
	s.active = true
	s.frame = 0
	return s.tick()
}

// Stop halts the animation. Pending ticks are ignored.
func (s *Spinner) Stop() {
	s.active = false
}

// Active reports whether the spinner is running.
func (s Spinner) Active() bool {
	return s.active
}

// Update advances the frame on its own ticks.
func (s Spinner) Update(msg tea.Msg) (Spinner, tea.Cmd) {
	tick, ok := msg.(SpinnerTickMsg)
	if !ok || tick.ID != s.id || !s.active {
		return s, nil
	}
	s.frame = (s.frame + 1) % len(spinnerFrames)
	return s, s.tick()
}

func (s Spinner) tick() tea.Cmd {
	id := s.id
	return tea.Tick(spinnerInterval, func(t time.Time) tea.Msg {
		return SpinnerTickMsg{ID: id, Time: t}
	})
}

// View renders the current frame and label.
func (s Spinner) View() string {
	if !s.active {
		return ""
	}
	return lipgloss.NewStyle().Foreground(theme.Accent).Render(spinnerFrames[s.frame]) +
		" " + lipgloss.NewStyle().Foreground(theme.TextDim).Render(s.Label)
}
