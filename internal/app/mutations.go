package app

import (
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/thisisdkyadav/hdnotes/internal/api"
	"github.com/thisisdkyadav/hdnotes/internal/ui"
)

// Note mutations never patch local state. Each success triggers a
// refresh of both partitions so the list always reflects what the
// backend actually stored, and a failed request leaves the list
// exactly as it was.

// canMutate gates every mutation entry point: one in flight at a
// time, and never without a credential.
func (m *Model) canMutate() bool {
	return !m.mutating && m.sessions.IsAuthenticated()
}

func (m Model) startTogglePin() (Model, tea.Cmd) {
	note, ok := m.list.Note(m.selectedNoteID())
	if !ok || !m.canMutate() {
		return m, nil
	}
	m.mutating = true
	req := api.UpdateNoteRequest{IsPinned: api.Bool(!note.IsPinned)}
	return m, m.updateNote(opPin, note.ID, req)
}

func (m Model) startToggleArchive() (Model, tea.Cmd) {
	note, ok := m.list.Note(m.selectedNoteID())
	if !ok || !m.canMutate() {
		return m, nil
	}
	m.mutating = true
	req := api.UpdateNoteRequest{IsArchived: api.Bool(!note.IsArchived)}
	return m, m.updateNote(opArchive, note.ID, req)
}

// startDelete opens the confirmation dialog. The delete itself is
// only dispatched from confirmDelete.
func (m Model) startDelete() (Model, tea.Cmd) {
	note, ok := m.list.Note(m.selectedNoteID())
	if !ok || !m.canMutate() {
		return m, nil
	}
	d := ui.NewConfirmDialog("Delete note", "Delete \""+note.Title+"\"? This cannot be undone.")
	d.ConfirmLabel = " Delete "
	d.Danger = true
	m.confirm = &confirmState{dialog: d, noteID: note.ID}
	return m, nil
}

func (m Model) confirmDelete() (Model, tea.Cmd) {
	if m.confirm == nil || !m.canMutate() {
		return m, nil
	}
	id := m.confirm.noteID
	m.confirm = nil
	m.mutating = true
	return m, m.deleteNote(id)
}

// submitForm dispatches the create or save for the open note form.
// An edit where nothing changed closes the form without a request.
func (m Model) submitForm() (Model, tea.Cmd) {
	if m.form == nil || !m.form.validate() || !m.canMutate() {
		return m, nil
	}

	if m.form.noteID == "" {
		m.mutating = true
		return m, m.createNote(m.form.createRequest())
	}

	req, changed := m.form.updateRequest()
	if !changed {
		m.form = nil
		return m, nil
	}
	m.mutating = true
	return m, m.updateNote(opSave, m.form.noteID, req)
}

// handleMutation finishes a mutation: toast the outcome and, on
// success, refresh both partitions.
func (m Model) handleMutation(msg noteMutatedMsg) (Model, tea.Cmd) {
	m.mutating = false

	if msg.err != nil {
		m.logger.Warn("note mutation failed", "op", string(msg.op), "id", msg.id, "error", msg.err)
		if m.form != nil && (msg.op == opCreate || msg.op == opSave) {
			m.form.err = api.UserMessage(msg.err)
			return m, nil
		}
		return m, m.showToast(api.UserMessage(msg.err), true)
	}

	var toast string
	switch msg.op {
	case opCreate:
		toast = "Note created"
		m.form = nil
	case opSave:
		toast = "Note saved"
		m.form = nil
	case opPin:
		toast = "Pin toggled"
	case opArchive:
		toast = "Archive toggled"
	case opDelete:
		toast = "Note deleted"
	}

	cmds := m.refreshAll()
	cmds = append(cmds, m.showToast(toast, false))
	return m, tea.Batch(cmds...)
}

// yankContent copies the selected note's content to the clipboard.
func (m Model) yankContent() (Model, tea.Cmd) {
	note, ok := m.list.Note(m.selectedNoteID())
	if !ok {
		return m, nil
	}
	if err := clipboard.WriteAll(note.Content); err != nil {
		return m, m.showToast("Clipboard unavailable", true)
	}
	return m, m.showToast("Copied note to clipboard", false)
}

// yankTitle copies the selected note's title to the clipboard.
func (m Model) yankTitle() (Model, tea.Cmd) {
	note, ok := m.list.Note(m.selectedNoteID())
	if !ok {
		return m, nil
	}
	if err := clipboard.WriteAll(note.Title); err != nil {
		return m, m.showToast("Clipboard unavailable", true)
	}
	return m, m.showToast("Copied title to clipboard", false)
}
