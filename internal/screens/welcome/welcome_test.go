package welcome

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/sheetwise/internal/router"
	"github.com/abhisek/sheetwise/internal/screen"
)

// stubScreen is a minimal screen implementation for testing.
type stubScreen struct{}

func (s *stubScreen) Init() tea.Cmd                           { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return "intake" }
func (s *stubScreen) Title() string                           { return "Intake" }

func newTestWelcome() (*WelcomeScreen, *int) {
	callCount := 0
	factory := func() screen.Screen {
		callCount++
		return &stubScreen{}
	}
	return New(factory), &callCount
}

func sendTicks(w *WelcomeScreen, n int) {
	for i := 0; i < n; i++ {
		w.Update(tickMsg(time.Now()))
	}
}

func containsTagline(s string) bool {
	return strings.Contains(s, "Excel skills screening")
}

func TestPhaseTransitions(t *testing.T) {
	w, _ := newTestWelcome()

	if containsTagline(w.View(100, 30)) {
		t.Error("tagline should not be visible at start")
	}

	sendTicks(w, 5)
	if w.elapsed != 500*time.Millisecond {
		t.Errorf("elapsed = %v, want 500ms", w.elapsed)
	}

	sendTicks(w, 10)
	if w.elapsed != phase2End {
		t.Errorf("elapsed = %v, want %v", w.elapsed, phase2End)
	}
	if !containsTagline(w.View(100, 30)) {
		t.Error("tagline should be visible after phase 2")
	}
}

func TestElapsedCapped(t *testing.T) {
	w, _ := newTestWelcome()
	sendTicks(w, 60)
	if w.elapsed != totalDur {
		t.Errorf("elapsed = %v, want capped at %v", w.elapsed, totalDur)
	}
}

func TestKeypressEmitsReplace(t *testing.T) {
	w, callCount := newTestWelcome()
	sendTicks(w, 3)

	_, cmd := w.Update(tea.KeyPressMsg{Code: ' '})
	if cmd == nil {
		t.Fatal("keypress should trigger transition")
	}
	msg, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", cmd())
	}
	if msg.Screen == nil {
		t.Error("replace screen should not be nil")
	}
	if *callCount != 1 {
		t.Errorf("factory calls = %d, want 1", *callCount)
	}
}

func TestFactoryCalledOnce(t *testing.T) {
	w, callCount := newTestWelcome()
	w.Update(tea.KeyPressMsg{Code: 'a'})

	_, cmd := w.Update(tea.KeyPressMsg{Code: 'b'})
	if cmd != nil {
		t.Error("second keypress should not produce a command")
	}
	if *callCount != 1 {
		t.Errorf("factory calls = %d, want 1", *callCount)
	}
}

func TestTickStopsAfterTransition(t *testing.T) {
	w, _ := newTestWelcome()
	w.Update(tea.KeyPressMsg{Code: 'a'})
	if _, cmd := w.Update(tickMsg(time.Now())); cmd != nil {
		t.Error("ticks should stop once transitioned")
	}
}

func TestBannerCompactFallback(t *testing.T) {
	if !strings.Contains(RenderBanner(40), "S H E E T W I S E") {
		t.Error("narrow banner should use the compact form")
	}
	if strings.Contains(RenderBanner(120), "S H E E T W I S E") {
		t.Error("wide banner should use the block art")
	}
}

func TestTitleEmpty(t *testing.T) {
	w, _ := newTestWelcome()
	if w.Title() != "" {
		t.Errorf("Title = %q, want empty", w.Title())
	}
}
