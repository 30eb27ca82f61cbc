package ui

import (
	"strings"
	"testing"
)

func TestBlockWidth(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  int
	}{
		{"empty", []string{}, 0},
		{"single", []string{"hello"}, 5},
		{"multiple", []string{"hi", "hello", "hey"}, 5},
		{"with ansi", []string{"\x1b[31mred\x1b[0m"}, 3}, // visual width is 3
		{"empty lines", []string{"", "", ""}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := blockWidth(tt.lines); got != tt.want {
				t.Errorf("blockWidth() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestSpliceRow(t *testing.T) {
	tests := []struct {
		name       string
		bgLine     string
		dialogLine string
		x          int
		width      int
		totalWidth int
	}{
		{"centered", "background text here", "[BOX]", 5, 5, 20},
		{"left edge", "background", "[B]", 0, 3, 10},
		{"background shorter than dialog position", "hi", "[BOX]", 10, 5, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := spliceRow(tt.bgLine, tt.dialogLine, tt.x, tt.width, tt.totalWidth)
			if !strings.Contains(got, tt.dialogLine) {
				t.Errorf("spliceRow() missing dialog content %q in %q", tt.dialogLine, got)
			}
		})
	}
}

func TestOverlayDialog(t *testing.T) {
	t.Run("centers the dialog", func(t *testing.T) {
		result := OverlayDialog("line1\nline2\nline3\nline4\nline5", "[D]", 10, 5)
		lines := strings.Split(result, "\n")
		if len(lines) != 5 {
			t.Fatalf("expected 5 lines, got %d", len(lines))
		}
		if !strings.Contains(lines[2], "[D]") {
			t.Error("dialog should land on the middle line")
		}
	})

	t.Run("strips ansi from background", func(t *testing.T) {
		result := OverlayDialog("\x1b[31mred\x1b[0m\n\x1b[32mgreen\x1b[0m", "X", 10, 3)
		if strings.Contains(result, "\x1b[31m") {
			t.Error("original red ANSI code should be stripped")
		}
		if !strings.Contains(result, "X") {
			t.Error("dialog content should be present")
		}
	})

	t.Run("dialog larger than background", func(t *testing.T) {
		result := OverlayDialog("a\nb", "DIALOG", 10, 5)
		lines := strings.Split(result, "\n")
		if len(lines) != 5 {
			t.Fatalf("expected 5 lines, got %d", len(lines))
		}
		if !strings.Contains(result, "DIALOG") {
			t.Error("dialog not found in result")
		}
	})
}
