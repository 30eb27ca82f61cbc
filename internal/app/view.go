package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/thisisdkyadav/hdnotes/internal/api"
	"github.com/thisisdkyadav/hdnotes/internal/notelist"
	"github.com/thisisdkyadav/hdnotes/internal/styles"
	"github.com/thisisdkyadav/hdnotes/internal/ui"
)

const minListWidth = 28

// View renders the whole program.
func (m Model) View() string {
	if m.width == 0 {
		return ""
	}
	if m.screen == screenLogin {
		return m.viewLogin()
	}
	return m.viewNotes()
}

// ---- login screen ----

func (m Model) viewLogin() string {
	l := &m.login

	var b strings.Builder
	b.WriteString(styles.Logo.Render("hdnotes"))
	b.WriteString("\n\n")

	switch l.stage {
	case stageEmail:
		action := "Sign in"
		if l.signup {
			action = "Sign up"
		}
		b.WriteString(styles.Title.Render(action + " with email"))
		b.WriteString("\n\n")
		b.WriteString(renderField("Email", &l.email, l.focus == 0))
		if l.signup {
			b.WriteString(renderField("Name", &l.name, l.focus == 1))
			b.WriteString(renderField("Date of birth", &l.dob, l.focus == 2))
		}
		b.WriteString("\n")
		b.WriteString(styles.Muted.Render("enter send code · ctrl+s switch sign in/up · ctrl+g google"))

	case stageOTP:
		b.WriteString(styles.Title.Render("Check your email"))
		b.WriteString("\n\n")
		if l.info != "" {
			b.WriteString(styles.Muted.Render(l.info))
			b.WriteString("\n\n")
		}
		b.WriteString(renderField("Code", &l.otp, true))
		b.WriteString("\n")
		b.WriteString(styles.Muted.Render("enter verify · ctrl+r resend · esc back"))

	case stageGoogle:
		b.WriteString(styles.Title.Render("Sign in with Google"))
		b.WriteString("\n\n")
		b.WriteString(renderField("ID token", &l.google, true))
		b.WriteString("\n")
		b.WriteString(styles.Muted.Render("enter sign in · esc back"))
	}

	if l.busy {
		b.WriteString("\n\n")
		b.WriteString(styles.Muted.Render("working..."))
	}
	if l.err != "" {
		b.WriteString("\n\n")
		b.WriteString(styles.ErrorText.Render(l.err))
	}

	panel := styles.PanelActive.Width(56).Render(b.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, panel)
}

func renderField(label string, in *textinput.Model, focused bool) string {
	box := styles.InputInactive
	if focused {
		box = styles.InputActive
	}
	return styles.InputLabel.Render(label) + "\n" + box.Width(48).Render(in.View()) + "\n"
}

// ---- notes screen ----

func (m Model) viewNotes() string {
	header := m.viewHeader()
	tabs := m.viewTabs()
	footer := ""
	if m.cfg.UI.ShowFooter {
		footer = m.viewFooter()
	}

	bodyHeight := m.height - lipgloss.Height(header) - lipgloss.Height(tabs)
	if footer != "" {
		bodyHeight -= lipgloss.Height(footer)
	}
	if bodyHeight < 3 {
		bodyHeight = 3
	}

	var body string
	switch {
	case m.form != nil:
		body = m.viewForm(bodyHeight)
	default:
		body = m.viewSplit(bodyHeight)
	}

	parts := []string{header, tabs, body}
	if footer != "" {
		parts = append(parts, footer)
	}
	screen := lipgloss.JoinVertical(lipgloss.Left, parts...)

	if m.confirm != nil {
		return ui.OverlayDialog(screen, m.confirm.dialog.View(), m.width, m.height)
	}
	if m.profile != nil {
		return ui.OverlayDialog(screen, m.viewProfile(), m.width, m.height)
	}
	return screen
}

func (m Model) viewHeader() string {
	left := styles.Logo.Render("hdnotes")
	if sess := m.sessions.Current(); sess != nil {
		left += "  " + styles.Muted.Render(sess.User.Email)
		if exp := m.sessions.TokenExpiry(); !exp.IsZero() {
			left += styles.Subtle.Render("  session until " + exp.Format("Jan 2 15:04"))
		}
	}

	right := ""
	if m.toast != "" {
		if m.toastErr {
			right = styles.ToastError.Render(m.toast)
		} else {
			right = styles.ToastSuccess.Render(m.toast)
		}
	}

	pad := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if pad < 1 {
		pad = 1
	}
	return left + strings.Repeat(" ", pad) + right
}

func (m Model) viewTabs() string {
	var parts []string
	for _, k := range []notelist.Kind{notelist.Active, notelist.Archived} {
		label := fmt.Sprintf(" %s (%d) ", k, m.list.Pagination(k).TotalNotes)
		if k == m.tab {
			parts = append(parts, styles.Title.Background(styles.BgTertiary).Render(label))
		} else {
			parts = append(parts, styles.Muted.Render(label))
		}
	}
	line := strings.Join(parts, " ")
	if tags := m.list.TagFilter(); len(tags) > 0 {
		line += "  " + styles.NoteTag.Render("#"+strings.Join(tags, " #"))
	}
	if q := m.list.Query(); q != "" || m.searching {
		search := m.searchInput.View()
		if !m.searching {
			search = styles.Muted.Render("/ " + q)
		}
		line += "   " + search
	}
	return line + "\n"
}

func (m Model) viewSplit(height int) string {
	listWidth := m.width * 2 / 5
	if listWidth < minListWidth {
		listWidth = minListWidth
	}
	previewWidth := m.width - listWidth - 2

	list := m.viewList(listWidth, height)
	preview := m.viewPreview(previewWidth, height)
	return lipgloss.JoinHorizontal(lipgloss.Top, list, " ", preview)
}

func (m Model) viewList(width, height int) string {
	var lines []string

	if err := m.list.Err(m.tab); err != nil {
		lines = append(lines, styles.ErrorText.Render(
			runewidth.Truncate(api.UserMessage(err), width, "…")))
	}
	if m.list.Loading(m.tab) {
		lines = append(lines, styles.Muted.Render("loading..."))
	}

	notes := m.displayNotes(m.tab)
	if len(notes) == 0 && m.list.Loaded(m.tab) {
		if m.list.Query() != "" {
			lines = append(lines, styles.Muted.Render("no notes match your search"))
		} else {
			lines = append(lines, styles.Muted.Render("no notes yet, press n to create one"))
		}
	} else {
		hasPinned := m.tab == notelist.Active && len(notes) > 0 && notes[0].IsPinned
		for i, n := range notes {
			if hasPinned {
				if i == 0 {
					lines = append(lines, styles.SectionLabel.Render("PINNED"))
				}
				if !n.IsPinned && (i == 0 || notes[i-1].IsPinned) {
					lines = append(lines, styles.SectionLabel.Render("OTHERS"))
				}
			}
			lines = append(lines, m.renderNoteLine(n, i, width))
		}
	}

	if pg := m.list.Pagination(m.tab); pg.TotalPages > 1 {
		lines = append(lines, styles.Subtle.Render(
			fmt.Sprintf("page %d/%d", pg.CurrentPage, pg.TotalPages)))
	}

	if len(lines) > height {
		// Keep the cursor visible.
		start := m.selected[m.tab]
		if start > len(lines)-height {
			start = len(lines) - height
		}
		if start < 0 {
			start = 0
		}
		lines = lines[start : start+height]
	}
	return lipgloss.NewStyle().Width(width).Render(strings.Join(lines, "\n"))
}

// renderNoteLine renders one list row. idx is the display index used
// for cursor comparison; for the active tab pinned notes come first,
// matching the order SplitPinned produces.
func (m Model) renderNoteLine(n api.Note, idx, width int) string {
	marker := "  "
	if n.IsPinned {
		marker = styles.NotePinned.Render("* ")
	}
	title := n.Title
	if title == "" {
		title = "(untitled)"
	}
	line := runewidth.Truncate(title, width-6, "…")
	if len(n.Tags) > 0 {
		line += " " + styles.NoteTag.Render("#"+strings.Join(n.Tags, " #"))
		line = runewidth.Truncate(line, width-2, "…")
	}
	if idx == m.selected[m.tab] {
		return styles.NoteSelected.Render("> " + line)
	}
	return marker + styles.NoteTitle.Render(line)
}

func (m Model) viewPreview(width, height int) string {
	note, ok := m.list.Note(m.selectedNoteID())
	if !ok {
		return styles.PanelInactive.Width(width).Height(height - 2).Render(
			styles.Muted.Render("select a note"))
	}

	content := note.Content
	if r := m.renderer(width - 4); r != nil {
		if rendered, err := r.Render(content); err == nil {
			content = rendered
		}
	}

	head := styles.PanelHeader.Render(note.Title)
	meta := styles.Subtle.Render("updated " + note.UpdatedAt)
	body := head + "\n" + meta + "\n" + content

	lines := strings.Split(body, "\n")
	if max := height - 2; len(lines) > max && max > 0 {
		lines = lines[:max]
	}
	return styles.PanelInactive.Width(width).Height(height - 2).Render(strings.Join(lines, "\n"))
}

func (m Model) formWidth() int {
	w := m.width - 8
	if w < 40 {
		w = 40
	}
	return w
}

func (m Model) formHeight() int {
	h := m.height - 16
	if h < 5 {
		h = 5
	}
	return h
}

func (m Model) viewForm(height int) string {
	f := m.form
	title := "New note"
	if f.noteID != "" {
		title = "Edit note"
	}

	pin := "[ ] pinned"
	if f.pinned {
		pin = styles.NotePinned.Render("[*] pinned")
	}

	var b strings.Builder
	b.WriteString(styles.Title.Render(title))
	b.WriteString("  ")
	b.WriteString(pin)
	b.WriteString("\n\n")
	b.WriteString(renderFormInput("Title", f.title.View(), f.focus == 0, m.formWidth()))
	b.WriteString(renderFormInput("Tags", f.tags.View(), f.focus == 1, m.formWidth()))
	b.WriteString(styles.InputLabel.Render("Content"))
	b.WriteString("\n")
	box := styles.InputInactive
	if f.focus == 2 {
		box = styles.InputActive
	}
	b.WriteString(box.Width(m.formWidth()).Render(f.content.View()))
	if f.err != "" {
		b.WriteString("\n")
		b.WriteString(styles.ErrorText.Render(f.err))
	}

	return lipgloss.NewStyle().Padding(0, 2).MaxHeight(height).Render(b.String())
}

func renderFormInput(label, view string, focused bool, width int) string {
	box := styles.InputInactive
	if focused {
		box = styles.InputActive
	}
	return styles.InputLabel.Render(label) + "\n" + box.Width(width).Render(view) + "\n"
}

func (m Model) viewProfile() string {
	f := m.profile
	var b strings.Builder
	b.WriteString(styles.Title.Render("Profile"))
	b.WriteString("\n\n")
	b.WriteString(renderFormInput("Name", f.name.View(), f.focus == 0, 40))
	b.WriteString(renderFormInput("Date of birth", f.dob.View(), f.focus == 1, 40))
	if f.err != "" {
		b.WriteString(styles.ErrorText.Render(f.err))
		b.WriteString("\n")
	}
	b.WriteString(styles.Muted.Render("enter save · esc close"))

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.BorderActive).
		Padding(0, 1).
		Render(b.String())
}

func (m Model) viewFooter() string {
	var hints []string
	switch {
	case m.form != nil:
		hints = []string{"ctrl+s save", "ctrl+p pin", "tab field", "esc cancel"}
	case m.searching:
		hints = []string{"enter keep", "esc clear"}
	default:
		hints = []string{"n new", "enter edit", "p pin", "a archive", "d delete",
			"/ search", "t tags", "tab " + otherTab(m.tab).String(), "[ ] page",
			"P profile", "f footer", "ctrl+l logout", "q quit"}
	}
	styled := make([]string, len(hints))
	for i, h := range hints {
		styled[i] = styles.KeyHint.Render(h)
	}
	return strings.Join(styled, " ")
}

func otherTab(k notelist.Kind) notelist.Kind {
	if k == notelist.Active {
		return notelist.Archived
	}
	return notelist.Active
}
