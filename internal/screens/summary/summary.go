// Package summary renders the final interview report and handles export
// and restart.
package summary

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/sheetwise/internal/report"
	"github.com/abhisek/sheetwise/internal/router"
	"github.com/abhisek/sheetwise/internal/screen"
	"github.com/abhisek/sheetwise/internal/ui/layout"
)

// RestartFunc builds the screen for a new interview.
type RestartFunc func() screen.Screen

// exportedMsg reports the outcome of a report export.
type exportedMsg struct {
	Path string
	Err  error
}

// SummaryScreen displays the interview report.
type SummaryScreen struct {
	report    *report.Report
	exportDir string
	onRestart RestartFunc

	selected int // response shown in the drill-down
	status   string
	statusOK bool
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)
var _ screen.StatusProvider = (*SummaryScreen)(nil)

// New creates a SummaryScreen. Exports are written to exportDir.
func New(r *report.Report, exportDir string, onRestart RestartFunc) *SummaryScreen {
	return &SummaryScreen{report: r, exportDir: exportDir, onRestart: onRestart}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Interview Complete"
}

func (s *SummaryScreen) Status() string {
	return s.report.Candidate.Name
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Responses"},
		{Key: "T/J/Y", Description: "Export text/json/yaml"},
		{Key: "R", Description: "New interview"},
		{Key: "Q", Description: "Quit"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case exportedMsg:
		if msg.Err != nil {
			s.status = "Export failed: " + msg.Err.Error()
			s.statusOK = false
		} else {
			s.status = "Report saved to " + msg.Path
			s.statusOK = true
		}
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up":
			if s.selected > 0 {
				s.selected--
			}
		case "down":
			if s.selected < len(s.report.Responses)-1 {
				s.selected++
			}
		case "t":
			return s, s.export(report.FormatText)
		case "j":
			return s, s.export(report.FormatJSON)
		case "y":
			return s, s.export(report.FormatYAML)
		case "r":
			next := s.onRestart()
			return s, func() tea.Msg { return router.ResetScreenMsg{Screen: next} }
		case "q":
			return s, tea.Quit
		}
	}
	return s, nil
}

func (s *SummaryScreen) export(f report.Format) tea.Cmd {
	r := s.report
	dir := s.exportDir
	return func() tea.Msg {
		path, err := Export(dir, r, f)
		return exportedMsg{Path: path, Err: err}
	}
}

// Export writes r into dir in format f and returns the file path.
func Export(dir string, r *report.Report, f report.Format) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}
	path := filepath.Join(dir, FileName(r, f))

	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create report file: %w", err)
	}
	if err := report.Write(file, r, f); err != nil {
		file.Close()
		return "", err
	}
	if err := file.Close(); err != nil {
		return "", fmt.Errorf("close report file: %w", err)
	}
	return path, nil
}

// FileName builds a report file name from the candidate name and the
// report timestamp.
func FileName(r *report.Report, f report.Format) string {
	name := slug(r.Candidate.Name)
	if name == "" {
		name = "candidate"
	}
	stamp := r.GeneratedAt.Format("20060102-150405")
	return fmt.Sprintf("excel-assessment-%s-%s%s", name, stamp, f.Ext())
}

func slug(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			dash = false
		} else if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
