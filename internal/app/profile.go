package app

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/thisisdkyadav/hdnotes/internal/api"
)

// profileForm edits the account name and date of birth. Saving with
// nothing changed is a local no-op.
type profileForm struct {
	name  textinput.Model
	dob   textinput.Model
	focus int
	err   string

	origName string
	origDOB  string
}

func newProfileForm(user api.User) *profileForm {
	name := textinput.New()
	name.Prompt = ""
	name.CharLimit = 100
	name.SetValue(user.Name)
	name.Focus()

	dob := textinput.New()
	dob.Prompt = ""
	dob.Placeholder = "YYYY-MM-DD"
	dob.CharLimit = 10
	dob.SetValue(user.DateOfBirth)

	return &profileForm{
		name:     name,
		dob:      dob,
		origName: user.Name,
		origDOB:  user.DateOfBirth,
	}
}

func (f *profileForm) toggleFocus() {
	f.focus = 1 - f.focus
	if f.focus == 0 {
		f.name.Focus()
		f.dob.Blur()
	} else {
		f.name.Blur()
		f.dob.Focus()
	}
}

func (f *profileForm) handleKey(msg tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd
	if f.focus == 0 {
		f.name, cmd = f.name.Update(msg)
	} else {
		f.dob, cmd = f.dob.Update(msg)
	}
	return cmd
}

// request builds the update payload. changed is false when the form
// matches the current profile.
func (f *profileForm) request() (req api.UpdateProfileRequest, changed bool, ok bool) {
	name := strings.TrimSpace(f.name.Value())
	dob := strings.TrimSpace(f.dob.Value())
	if name == "" {
		f.err = "Name cannot be empty"
		return req, false, false
	}
	f.err = ""
	if name == f.origName && dob == f.origDOB {
		return req, false, true
	}
	return api.UpdateProfileRequest{Name: name, DateOfBirth: dob}, true, true
}
