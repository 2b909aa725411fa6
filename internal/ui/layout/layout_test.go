package layout

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
)

func TestIsTooSmall(t *testing.T) {
	tests := []struct {
		w, h int
		want bool
	}{
		{80, 24, false},
		{79, 24, true},
		{80, 23, true},
		{120, 40, false},
	}
	for _, tt := range tests {
		if got := IsTooSmall(tt.w, tt.h); got != tt.want {
			t.Errorf("IsTooSmall(%d, %d) = %v, want %v", tt.w, tt.h, got, tt.want)
		}
	}
}

func TestContentWidth(t *testing.T) {
	if got := ContentWidth(80); got != 76 {
		t.Errorf("ContentWidth(80) = %d, want 76", got)
	}
	if got := ContentWidth(300); got != MaxContentWidth {
		t.Errorf("ContentWidth(300) = %d, want %d", got, MaxContentWidth)
	}
	if got := ContentWidth(10); got != 20 {
		t.Errorf("ContentWidth(10) = %d, want 20", got)
	}
}

func TestRenderHeader(t *testing.T) {
	h := RenderHeader("Interview", "Q 2/5", 80)
	if !strings.Contains(h, "Sheetwise") || !strings.Contains(h, "Interview") || !strings.Contains(h, "Q 2/5") {
		t.Errorf("header missing parts: %q", h)
	}
	if got := lipgloss.Height(h); got != HeaderHeight {
		t.Errorf("header height = %d, want %d", got, HeaderHeight)
	}
}

func TestRenderFrame_Height(t *testing.T) {
	header := RenderHeader("T", "", 80)
	footer := RenderFooter([]KeyHint{{Key: "Enter", Description: "Submit"}}, 80)
	frame := RenderFrame(header, "body", footer, 80, 24)
	if got := lipgloss.Height(frame); got != 24 {
		t.Errorf("frame height = %d, want 24", got)
	}
}
