// Package app wires the screens into the root Bubble Tea model.
package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/sheetwise/internal/candidate"
	"github.com/abhisek/sheetwise/internal/metrics"
	"github.com/abhisek/sheetwise/internal/questionbank"
	"github.com/abhisek/sheetwise/internal/report"
	"github.com/abhisek/sheetwise/internal/router"
	"github.com/abhisek/sheetwise/internal/screen"
	"github.com/abhisek/sheetwise/internal/screens/intake"
	"github.com/abhisek/sheetwise/internal/screens/interview"
	"github.com/abhisek/sheetwise/internal/screens/summary"
	"github.com/abhisek/sheetwise/internal/screens/welcome"
	"github.com/abhisek/sheetwise/internal/session"
	"github.com/abhisek/sheetwise/internal/ui/layout"
)

// Deps holds everything the screens need to run an interview.
type Deps struct {
	Bank      *questionbank.Bank
	Evaluator session.Evaluator
	Recorder  *metrics.Recorder // optional
	Logger    *zap.Logger
	ExportDir string

	// SkipSplash starts directly on the intake form.
	SkipSplash bool
}

// flow builds the screens of one interview and links them together.
type flow struct {
	deps Deps
	log  *zap.Logger
}

func newFlow(deps Deps) *flow {
	if deps.Bank == nil {
		deps.Bank = questionbank.Default()
	}
	if deps.Evaluator == nil {
		deps.Evaluator = session.HeuristicEvaluator{Delay: session.DefaultEvaluationDelay}
	}
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	if deps.ExportDir == "" {
		deps.ExportDir = "."
	}
	return &flow{deps: deps, log: deps.Logger.Named("app")}
}

func (f *flow) observer() session.Observer {
	obs := session.Observers{session.NewLogObserver(f.deps.Logger)}
	if f.deps.Recorder != nil {
		obs = append(obs, f.deps.Recorder)
	}
	return obs
}

func (f *flow) intake() screen.Screen {
	return intake.New(f.deps.Bank.Len(), f.start)
}

func (f *flow) start(c candidate.Candidate) screen.Screen {
	s := session.New(f.deps.Bank, c,
		session.WithEvaluator(f.deps.Evaluator),
		session.WithObserver(f.observer()),
	)
	f.log.Info("interview started",
		zap.String("session_id", s.ID()),
		zap.String("position", c.Position),
		zap.String("experience", string(c.Experience)),
		zap.Int("questions", f.deps.Bank.Len()),
	)
	return interview.New(s, f.complete, f.abandon(s.ID()))
}

func (f *flow) abandon(sessionID string) interview.AbandonFunc {
	return func() screen.Screen {
		f.log.Info("interview abandoned", zap.String("session_id", sessionID))
		return f.intake()
	}
}

func (f *flow) complete(r *report.Report) screen.Screen {
	if f.deps.Recorder != nil {
		f.deps.Recorder.ReportGenerated(r)
	}
	f.log.Info("report generated",
		zap.String("session_id", r.SessionID),
		zap.Int("overall_score", r.OverallScore),
		zap.String("recommendation", string(r.Recommendation)),
	)
	return summary.New(r, f.deps.ExportDir, f.intake)
}

func (f *flow) first() screen.Screen {
	if f.deps.SkipSplash {
		return f.intake()
	}
	return welcome.New(f.intake)
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	width  int
	height int
}

func newAppModel(deps Deps) AppModel {
	return AppModel{
		router: router.New(newFlow(deps).first()),
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			// Screens at the root handle esc themselves.
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true
	if m.width == 0 || m.height == 0 {
		return v
	}
	v.SetContent(m.render())
	return v
}

// render lays out header, active screen and footer for the current size.
func (m AppModel) render() string {
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	title, status := "", ""
	if active != nil {
		title = active.Title()
		if sp, ok := active.(screen.StatusProvider); ok {
			status = sp.Status()
		}
	}

	header := layout.RenderHeader(title, status, m.width)

	footerHints := []layout.KeyHint{
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if hp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = append(hp.KeyHints(), footerHints...)
	}
	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := max(m.height-headerHeight-footerHeight, 0)

	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(deps Deps) error {
	p := tea.NewProgram(newAppModel(deps))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
