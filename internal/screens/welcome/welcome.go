// Package welcome shows the splash screen before the intake form.
package welcome

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/sheetwise/internal/router"
	"github.com/abhisek/sheetwise/internal/screen"
	"github.com/abhisek/sheetwise/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	phase1End    = 500 * time.Millisecond
	phase2End    = 1500 * time.Millisecond
	totalDur     = 3000 * time.Millisecond
)

const gridArt = `  ┌────┬────┬────┐
  │ A1 │ B1 │ C1 │
  ├────┼────┼────┤
  │ 42 │ 17 │ =Σ │
  ├────┼────┼────┤
  │ 58 │ 23 │ 81 │
  └────┴────┴────┘`

// highlighted cell cycles across the formula row
var cursorFrames = []string{"42", "17", "=Σ"}

type tickMsg time.Time

// WelcomeScreen plays a short splash animation and then hands over to the
// screen produced by next.
type WelcomeScreen struct {
	next         func() screen.Screen
	elapsed      time.Duration
	tickCount    int
	transitioned bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen that transitions to the screen built by next.
func New(next func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{next: next}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		if w.transitioned {
			return w, nil
		}
		if w.elapsed < totalDur {
			w.elapsed += tickInterval
		}
		w.tickCount++
		return w, tick()

	case tea.KeyPressMsg:
		// Any key skips the rest of the animation.
		return w, w.transition()
	}

	return w, nil
}

func (w *WelcomeScreen) transition() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	next := w.next()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

func (w *WelcomeScreen) View(width, height int) string {
	var sections []string

	grid := gridArt
	if w.elapsed >= phase1End {
		cell := cursorFrames[w.tickCount/3%len(cursorFrames)]
		hl := lipgloss.NewStyle().Foreground(theme.BgDark).Background(theme.Accent).Bold(true)
		grid = strings.Replace(grid, " "+cell+" ", " "+hl.Render(cell)+" ", 1)
	}
	sections = append(sections, lipgloss.NewStyle().Foreground(theme.Secondary).Render(grid))

	if w.elapsed >= phase2End {
		sections = append(sections,
			"",
			RenderBanner(width),
			"",
			lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render("Excel skills screening for analyst roles"),
			"",
			theme.Hint.Render("press any key to continue"),
		)
	}

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
