package app

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/thisisdkyadav/hdnotes/internal/api"
	"github.com/thisisdkyadav/hdnotes/internal/notelist"
)

const toastDuration = 3 * time.Second

// fetchPartition executes a notes fetch and reports the result
// together with the request's sequence number.
func (m *Model) fetchPartition(req notelist.Request) tea.Cmd {
	gw := m.gw
	return func() tea.Msg {
		resp, err := gw.ListNotes(context.Background(), req.Filter)
		return partitionLoadedMsg{kind: req.Kind, seq: req.Seq, resp: resp, err: err}
	}
}

// scheduleSearch sends a searchDebounceMsg after the configured quiet
// interval. The version lets the model ignore ticks that a later
// keystroke has superseded.
func (m *Model) scheduleSearch(query string, version int) tea.Cmd {
	return tea.Tick(m.cfg.Search.Debounce, func(time.Time) tea.Msg {
		return searchDebounceMsg{version: version, query: query}
	})
}

func (m *Model) sendOTP(req api.SendOTPRequest) tea.Cmd {
	gw := m.gw
	return func() tea.Msg {
		resp, err := gw.SendOTP(context.Background(), req)
		return otpSentMsg{resp: resp, err: err}
	}
}

func (m *Model) verifyOTP(req api.VerifyOTPRequest) tea.Cmd {
	gw := m.gw
	return func() tea.Msg {
		resp, err := gw.VerifyOTP(context.Background(), req)
		return authResultMsg{resp: resp, err: err}
	}
}

func (m *Model) loginWithGoogle(credential string) tea.Cmd {
	gw := m.gw
	return func() tea.Msg {
		resp, err := gw.LoginWithGoogle(context.Background(), credential)
		return authResultMsg{resp: resp, err: err}
	}
}

func (m *Model) updateProfile(req api.UpdateProfileRequest) tea.Cmd {
	gw := m.gw
	return func() tea.Msg {
		user, err := gw.UpdateProfile(context.Background(), req)
		return profileSavedMsg{user: user, err: err}
	}
}

func (m *Model) createNote(req api.CreateNoteRequest) tea.Cmd {
	gw := m.gw
	return func() tea.Msg {
		note, err := gw.CreateNote(context.Background(), req)
		return noteMutatedMsg{op: opCreate, note: note, err: err}
	}
}

func (m *Model) updateNote(op mutationOp, id string, req api.UpdateNoteRequest) tea.Cmd {
	gw := m.gw
	return func() tea.Msg {
		note, err := gw.UpdateNote(context.Background(), id, req)
		return noteMutatedMsg{op: op, id: id, note: note, err: err}
	}
}

func (m *Model) deleteNote(id string) tea.Cmd {
	gw := m.gw
	return func() tea.Msg {
		err := gw.DeleteNote(context.Background(), id)
		return noteMutatedMsg{op: opDelete, id: id, err: err}
	}
}

// waitForSessionChange blocks on the watcher channel and re-arms
// after each delivery.
func waitForSessionChange(ch <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return nil
		}
		return sessionChangedMsg{}
	}
}

// showToast sets the toast and schedules its expiry.
func (m *Model) showToast(text string, isErr bool) tea.Cmd {
	m.toast = text
	m.toastErr = isErr
	m.toastSeq++
	seq := m.toastSeq
	return tea.Tick(toastDuration, func(time.Time) tea.Msg {
		return toastExpireMsg{seq: seq}
	})
}
