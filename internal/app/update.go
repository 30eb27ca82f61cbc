package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/thisisdkyadav/hdnotes/internal/api"
	"github.com/thisisdkyadav/hdnotes/internal/config"
	"github.com/thisisdkyadav/hdnotes/internal/notelist"
)

// Update is the root message handler.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.form != nil {
			m.form.setSize(m.formWidth(), m.formHeight())
		}
		return m, nil

	case toastExpireMsg:
		if msg.seq == m.toastSeq {
			m.toast = ""
		}
		return m, nil

	case sessionChangedMsg:
		var cmd tea.Cmd
		m, cmd = m.handleSessionChanged()
		return m, cmd

	case otpSentMsg:
		var cmd tea.Cmd
		m, cmd = m.handleOTPSent(msg)
		return m, cmd

	case authResultMsg:
		var cmd tea.Cmd
		m, cmd = m.handleAuthResult(msg)
		return m, cmd

	case partitionLoadedMsg:
		if m.list.Apply(msg.kind, msg.seq, msg.resp, msg.err) {
			if msg.err != nil {
				m.logger.Warn("notes fetch failed",
					"partition", msg.kind.String(), "error", msg.err)
			}
			m.clampSelection()
		}
		return m, nil

	case searchDebounceMsg:
		if msg.version != m.searchVersion || m.screen != screenNotes {
			return m, nil
		}
		m.list.SetQuery(msg.query)
		return m, tea.Batch(m.refreshAll()...)

	case profileSavedMsg:
		var cmd tea.Cmd
		m, cmd = m.handleProfileSaved(msg)
		return m, cmd

	case noteMutatedMsg:
		var cmd tea.Cmd
		m, cmd = m.handleMutation(msg)
		return m, cmd

	case tea.KeyMsg:
		var cmd tea.Cmd
		if m.screen == screenLogin {
			m, cmd = m.updateLogin(msg)
		} else {
			m, cmd = m.updateNotes(msg)
		}
		return m, cmd
	}

	return m, nil
}

// handleSessionChanged re-reads the persisted session after its files
// changed on disk. If another process logged out, drop to the login
// screen; if the token changed, the next request picks it up from the
// store.
func (m Model) handleSessionChanged() (Model, tea.Cmd) {
	cmds := []tea.Cmd{waitForSessionChange(m.sessionEvents)}

	if m.sessions.Restore() == nil && m.screen == screenNotes {
		m.logger.Info("session removed externally, logging out")
		m.screen = screenLogin
		m.login = newLoginState()
		m.form = nil
		m.profile = nil
		m.confirm = nil
		m.list = notelist.New(m.cfg.UI.PageLimit)
	}
	return m, tea.Batch(cmds...)
}

func (m Model) handleProfileSaved(msg profileSavedMsg) (Model, tea.Cmd) {
	m.mutating = false
	if msg.err != nil {
		if m.profile != nil {
			m.profile.err = api.UserMessage(msg.err)
		}
		return m, nil
	}
	m.sessions.SetUser(*msg.user)
	m.profile = nil
	return m, m.showToast("Profile updated", false)
}

// updateNotes handles key input on the notes screen, giving layered
// surfaces (confirm dialog, forms, search input) priority over list
// navigation.
func (m Model) updateNotes(msg tea.KeyMsg) (Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.confirm != nil {
		return m.updateConfirm(msg)
	}
	if m.form != nil {
		return m.updateForm(msg)
	}
	if m.profile != nil {
		return m.updateProfileForm(msg)
	}
	if m.searching {
		return m.updateSearch(msg)
	}
	return m.updateList(msg)
}

func (m Model) updateConfirm(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "n":
		m.confirm = nil
		return m, nil
	case "tab", "left", "right", "h", "l":
		m.confirm.dialog.ToggleFocus()
		return m, nil
	case "y":
		return m.confirmDelete()
	case "enter":
		if m.confirm.dialog.ConfirmFocused() {
			return m.confirmDelete()
		}
		m.confirm = nil
		return m, nil
	}
	return m, nil
}

func (m Model) updateForm(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.form = nil
		return m, nil
	case "tab":
		m.form.setFocus(m.form.focus + 1)
		return m, nil
	case "shift+tab":
		m.form.setFocus(m.form.focus - 1)
		return m, nil
	case "ctrl+p":
		m.form.pinned = !m.form.pinned
		return m, nil
	case "ctrl+s":
		return m.submitForm()
	}
	return m, m.form.handleKey(msg)
}

func (m Model) updateProfileForm(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.profile = nil
		return m, nil
	case "tab", "shift+tab", "up", "down":
		m.profile.toggleFocus()
		return m, nil
	case "enter", "ctrl+s":
		return m.submitProfile()
	}
	return m, m.profile.handleKey(msg)
}

// updateSearch forwards keystrokes to the search input and schedules
// a debounced fetch for every edit, including the one that empties
// the query.
func (m Model) updateSearch(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.searching = false
		m.searchInput.Blur()
		m.searchInput.SetValue("")
		// Cancel any pending debounce even when nothing was committed,
		// otherwise the abandoned query still lands when its tick fires.
		m.searchVersion++
		if m.list.Query() == "" {
			return m, nil
		}
		m.list.SetQuery("")
		return m, tea.Batch(m.refreshAll()...)

	case "enter":
		// Keep the query, return focus to the list. The debounced
		// fetch for the final edit is already scheduled.
		m.searching = false
		m.searchInput.Blur()
		return m, nil
	}

	before := m.searchInput.Value()
	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	if m.searchInput.Value() == before {
		return m, cmd
	}

	m.searchVersion++
	return m, tea.Batch(cmd, m.scheduleSearch(m.searchInput.Value(), m.searchVersion))
}

func (m Model) updateList(msg tea.KeyMsg) (Model, tea.Cmd) {
	notes := m.displayNotes(m.tab)

	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "tab":
		if m.tab == notelist.Active {
			m.tab = notelist.Archived
		} else {
			m.tab = notelist.Active
		}
		return m, nil

	case "j", "down":
		if m.selected[m.tab] < len(notes)-1 {
			m.selected[m.tab]++
		}
		return m, nil

	case "k", "up":
		if m.selected[m.tab] > 0 {
			m.selected[m.tab]--
		}
		return m, nil

	case "g", "home":
		m.selected[m.tab] = 0
		return m, nil

	case "G", "end":
		if len(notes) > 0 {
			m.selected[m.tab] = len(notes) - 1
		}
		return m, nil

	case "[":
		return m.turnPage(-1)

	case "]":
		return m.turnPage(1)

	case "/":
		m.searching = true
		m.searchInput.SetValue(m.list.Query())
		m.searchInput.CursorEnd()
		return m, m.searchInput.Focus()

	case "r":
		return m, tea.Batch(m.refreshAll()...)

	case "n":
		m.form = newNoteForm(nil)
		m.form.setSize(m.formWidth(), m.formHeight())
		return m, nil

	case "enter", "e":
		if note, ok := m.list.Note(m.selectedNoteID()); ok {
			m.form = newNoteForm(&note)
			m.form.setSize(m.formWidth(), m.formHeight())
		}
		return m, nil

	case "t":
		// Toggle filtering by the selected note's tags.
		if len(m.list.TagFilter()) > 0 {
			m.list.SetTagFilter(nil)
			return m, tea.Batch(m.refreshAll()...)
		}
		if note, ok := m.list.Note(m.selectedNoteID()); ok && len(note.Tags) > 0 {
			m.list.SetTagFilter(note.Tags)
			return m, tea.Batch(m.refreshAll()...)
		}
		return m, nil

	case "p":
		return m.startTogglePin()

	case "a":
		return m.startToggleArchive()

	case "d":
		return m.startDelete()

	case "y":
		return m.yankContent()

	case "Y":
		return m.yankTitle()

	case "f":
		return m.toggleFooter()

	case "P":
		if sess := m.sessions.Current(); sess != nil {
			m.profile = newProfileForm(sess.User)
		}
		return m, nil

	case "ctrl+l":
		return m.logout()
	}
	return m, nil
}

// toggleFooter flips the key-hint footer and persists the preference
// so it sticks across restarts. A write failure only costs the
// persistence, the toggle itself still applies.
func (m Model) toggleFooter() (Model, tea.Cmd) {
	m.cfg.UI.ShowFooter = !m.cfg.UI.ShowFooter
	if err := config.Save(m.cfg); err != nil {
		m.logger.Warn("could not persist config", "error", err)
	}
	return m, nil
}

// turnPage moves the current partition one page and refetches it.
func (m Model) turnPage(delta int) (Model, tea.Cmd) {
	pg := m.list.Pagination(m.tab)
	if delta > 0 && !pg.HasNextPage {
		return m, nil
	}
	if delta < 0 && !pg.HasPrevPage {
		return m, nil
	}
	m.list.SetPage(m.tab, pg.CurrentPage+delta)
	m.selected[m.tab] = 0
	req := m.list.BeginRefresh(m.tab)
	return m, m.fetchPartition(req)
}

func (m Model) logout() (Model, tea.Cmd) {
	if err := m.sessions.Logout(); err != nil {
		m.logger.Warn("logout failed", "error", err)
	}
	m.screen = screenLogin
	m.login = newLoginState()
	m.form = nil
	m.profile = nil
	m.confirm = nil
	m.searching = false
	m.searchInput.SetValue("")
	m.list = notelist.New(m.cfg.UI.PageLimit)
	return m, nil
}

// submitProfile validates and dispatches the profile update. An
// unchanged form closes without a request.
func (m Model) submitProfile() (Model, tea.Cmd) {
	req, changed, ok := m.profile.request()
	if !ok {
		return m, nil
	}
	if !changed {
		m.profile = nil
		return m, nil
	}
	if !m.canMutate() {
		return m, nil
	}
	m.mutating = true
	return m, m.updateProfile(req)
}
