package summary

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/sheetwise/internal/candidate"
	"github.com/abhisek/sheetwise/internal/questionbank"
	"github.com/abhisek/sheetwise/internal/report"
	"github.com/abhisek/sheetwise/internal/router"
	"github.com/abhisek/sheetwise/internal/screen"
	"github.com/abhisek/sheetwise/internal/scorer"
)

type stubScreen struct{}

func (s *stubScreen) Init() tea.Cmd                           { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return "intake" }
func (s *stubScreen) Title() string                           { return "Intake" }

func testReport(t *testing.T) *report.Report {
	t.Helper()
	r, err := report.Aggregate([]report.Entry{
		{QuestionID: 1, Question: "Workbook vs worksheet?", Category: "Foundation", Difficulty: questionbank.DifficultyBasic,
			Answer: "A workbook holds sheets.", Evaluation: scorer.Evaluation{Score: 82, KeywordMatches: 3, TotalKeywords: 6}},
		{QuestionID: 2, Question: "VLOOKUP?", Category: "Formulas", Difficulty: questionbank.DifficultyIntermediate,
			Answer: "vlookup", Evaluation: scorer.Evaluation{Score: 40}},
	})
	if err != nil {
		t.Fatal(err)
	}
	r.Candidate = candidate.Candidate{Name: "Ada Lovelace"}
	r.GeneratedAt = time.Date(2026, 3, 1, 10, 30, 0, 0, time.UTC)
	return r
}

func newTestSummary(t *testing.T) (*SummaryScreen, *int) {
	restarts := 0
	s := New(testReport(t), t.TempDir(), func() screen.Screen {
		restarts++
		return &stubScreen{}
	})
	return s, &restarts
}

func TestSummaryScreen_Title(t *testing.T) {
	s, _ := newTestSummary(t)
	if s.Title() != "Interview Complete" {
		t.Errorf("Title = %q, want %q", s.Title(), "Interview Complete")
	}
	if s.Status() != "Ada Lovelace" {
		t.Errorf("Status = %q", s.Status())
	}
}

func TestSummaryScreen_Display(t *testing.T) {
	s, _ := newTestSummary(t)
	for _, width := range []int{80, 140} {
		view := s.View(width, 60)
		for _, want := range []string{"61%", string(report.Consider), "Foundation", "Formulas", "Detailed Response Analysis"} {
			if !strings.Contains(view, want) {
				t.Errorf("width %d: view missing %q", width, want)
			}
		}
	}
}

func TestSummaryScreen_DrillDownNavigation(t *testing.T) {
	s, _ := newTestSummary(t)
	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if s.selected != 1 {
		t.Errorf("selected = %d, want 1", s.selected)
	}
	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if s.selected != 1 {
		t.Errorf("selected = %d, want clamp at 1", s.selected)
	}
	s.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	if s.selected != 0 {
		t.Errorf("selected = %d, want 0", s.selected)
	}
}

func TestSummaryScreen_Restart(t *testing.T) {
	s, restarts := newTestSummary(t)
	_, cmd := s.Update(tea.KeyPressMsg{Code: 'r', Text: "r"})
	if cmd == nil {
		t.Fatal("expected a command on R")
	}
	if _, ok := cmd().(router.ResetScreenMsg); !ok {
		t.Error("expected ResetScreenMsg")
	}
	if *restarts != 1 {
		t.Errorf("restarts = %d, want 1", *restarts)
	}
}

func TestSummaryScreen_Export(t *testing.T) {
	s, _ := newTestSummary(t)
	_, cmd := s.Update(tea.KeyPressMsg{Code: 'j', Text: "j"})
	if cmd == nil {
		t.Fatal("expected an export command")
	}
	msg, ok := cmd().(exportedMsg)
	if !ok {
		t.Fatal("expected exportedMsg")
	}
	if msg.Err != nil {
		t.Fatalf("export error: %v", msg.Err)
	}
	if filepath.Ext(msg.Path) != ".json" {
		t.Errorf("path = %q, want .json", msg.Path)
	}
	data, err := os.ReadFile(msg.Path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"recommendation": "Consider"`) {
		t.Errorf("unexpected export content: %s", data)
	}

	s.Update(msg)
	if !strings.Contains(s.View(120, 60), "Report saved to") {
		t.Error("expected saved status in view")
	}
}

func TestFileName(t *testing.T) {
	r := testReport(t)
	if got := FileName(r, report.FormatText); got != "excel-assessment-ada-lovelace-20260301-103000.txt" {
		t.Errorf("FileName = %q", got)
	}
	r.Candidate.Name = "  ** "
	if got := FileName(r, report.FormatYAML); got != "excel-assessment-candidate-20260301-103000.yaml" {
		t.Errorf("FileName = %q", got)
	}
}

func TestSummaryScreen_KeyHints(t *testing.T) {
	s, _ := newTestSummary(t)
	if len(s.KeyHints()) != 4 {
		t.Errorf("KeyHints length = %d, want 4", len(s.KeyHints()))
	}
}
