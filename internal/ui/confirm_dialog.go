package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/thisisdkyadav/hdnotes/internal/styles"
)

// DialogWidth is the default confirm dialog width.
const DialogWidth = 50

// ConfirmDialog is a keyboard-driven confirmation box. Left/right (or
// tab) moves focus between the two buttons, enter activates the
// focused one.
type ConfirmDialog struct {
	Title        string
	Message      string
	ConfirmLabel string // e.g. " Delete ", " Yes "
	CancelLabel  string // e.g. " Cancel ", " No "
	Danger       bool   // red border and confirm button

	confirmFocused bool
}

// NewConfirmDialog creates a dialog with cancel focused, so a stray
// enter never confirms.
func NewConfirmDialog(title, message string) *ConfirmDialog {
	return &ConfirmDialog{
		Title:        title,
		Message:      message,
		ConfirmLabel: " Confirm ",
		CancelLabel:  " Cancel ",
	}
}

// ToggleFocus moves focus to the other button.
func (d *ConfirmDialog) ToggleFocus() {
	d.confirmFocused = !d.confirmFocused
}

// ConfirmFocused reports whether enter would activate the confirm button.
func (d *ConfirmDialog) ConfirmFocused() bool {
	return d.confirmFocused
}

// View renders the dialog box.
func (d *ConfirmDialog) View() string {
	borderColor := styles.Primary
	confirmBg := styles.Primary
	if d.Danger {
		borderColor = styles.Error
		confirmBg = styles.Error
	}

	button := lipgloss.NewStyle().Padding(0, 1)
	focused := button.Bold(true).Foreground(styles.TextPrimary)
	blurred := button.Foreground(styles.TextMuted).Background(styles.BgTertiary)

	confirm := blurred.Render(d.ConfirmLabel)
	cancel := focused.Background(styles.BgTertiary).Render(d.CancelLabel)
	if d.confirmFocused {
		confirm = focused.Background(confirmBg).Render(d.ConfirmLabel)
		cancel = blurred.Render(d.CancelLabel)
	}
	buttons := lipgloss.JoinHorizontal(lipgloss.Top, confirm, "  ", cancel)

	inner := lipgloss.JoinVertical(lipgloss.Left,
		styles.Title.Render(d.Title),
		"",
		styles.Body.Width(DialogWidth-4).Render(d.Message),
		"",
		lipgloss.PlaceHorizontal(DialogWidth-4, lipgloss.Center, buttons),
	)

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(borderColor).
		Padding(0, 1).
		Width(DialogWidth).
		Render(inner)
}
