// Package ui provides shared UI components and helpers for the TUI.
package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// DimStyle is applied to background content behind dialogs. Existing
// ANSI codes are stripped first because SGR 2 (faint) doesn't reliably
// combine with color codes in most terminals.
var DimStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))

// blockWidth returns the maximum visual width of the block's lines.
func blockWidth(lines []string) int {
	w := 0
	for _, line := range lines {
		if lw := ansi.StringWidth(line); lw > w {
			w = lw
		}
	}
	return w
}

// spliceRow lays dialogLine over bgLine starting at column x. The
// background on either side is stripped of ANSI codes and dimmed.
func spliceRow(bgLine, dialogLine string, x, dialogWidth, totalWidth int) string {
	var b strings.Builder

	stripped := ansi.Strip(bgLine)
	bgWidth := ansi.StringWidth(stripped)

	if x > 0 {
		left := ansi.Truncate(stripped, x, "")
		b.WriteString(DimStyle.Render(left))
		if pad := x - ansi.StringWidth(left); pad > 0 {
			b.WriteString(strings.Repeat(" ", pad))
		}
	}

	b.WriteString(dialogLine)

	if after := x + dialogWidth; after < totalWidth && bgWidth > after {
		b.WriteString(DimStyle.Render(ansi.Cut(stripped, after, bgWidth)))
	}

	return b.String()
}

// OverlayDialog composites a dialog, centered, on top of a dimmed
// background of the given dimensions.
func OverlayDialog(background, dialog string, width, height int) string {
	bgLines := strings.Split(background, "\n")
	dlgLines := strings.Split(dialog, "\n")

	dlgWidth := blockWidth(dlgLines)
	startX := (width - dlgWidth) / 2
	startY := (height - len(dlgLines)) / 2
	if startX < 0 {
		startX = 0
	}
	if startY < 0 {
		startY = 0
	}

	out := make([]string, 0, height)
	for y := 0; y < height; y++ {
		bgLine := ""
		if y < len(bgLines) {
			bgLine = bgLines[y]
		}

		row := y - startY
		if row >= 0 && row < len(dlgLines) {
			out = append(out, spliceRow(bgLine, dlgLines[row], startX, dlgWidth, width))
		} else {
			out = append(out, DimStyle.Render(ansi.Strip(bgLine)))
		}
	}

	return strings.Join(out, "\n")
}
