package app

import (
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/thisisdkyadav/hdnotes/internal/api"
)

const maxTitleLen = 200

// noteForm is the create/edit form. For edits it keeps the note it
// was opened from and submits only the fields that actually changed;
// the backend treats absent fields as "leave unchanged".
type noteForm struct {
	noteID string // empty for create
	orig   *api.Note

	title   textinput.Model
	tags    textinput.Model
	content textarea.Model
	pinned  bool

	focus int // 0 title, 1 tags, 2 content
	err   string
}

// newNoteForm builds a form. A nil note starts a blank create form;
// otherwise the form is seeded from the note for editing.
func newNoteForm(note *api.Note) *noteForm {
	title := textinput.New()
	title.Placeholder = "Title"
	title.Prompt = ""
	title.CharLimit = maxTitleLen
	title.Focus()

	tags := textinput.New()
	tags.Placeholder = "tags, comma, separated"
	tags.Prompt = ""
	tags.CharLimit = 500

	content := textarea.New()
	content.Placeholder = "Write your note..."
	content.CharLimit = 0
	content.ShowLineNumbers = false
	content.Blur()

	f := &noteForm{title: title, tags: tags, content: content}
	if note != nil {
		f.noteID = note.ID
		orig := *note
		f.orig = &orig
		f.title.SetValue(note.Title)
		f.tags.SetValue(strings.Join(note.Tags, ", "))
		f.content.SetValue(note.Content)
		f.pinned = note.IsPinned
	}
	return f
}

// setFocus moves focus between the three fields.
func (f *noteForm) setFocus(i int) {
	f.focus = ((i % 3) + 3) % 3
	f.title.Blur()
	f.tags.Blur()
	f.content.Blur()
	switch f.focus {
	case 0:
		f.title.Focus()
	case 1:
		f.tags.Focus()
	case 2:
		f.content.Focus()
	}
}

// handleKey forwards a keystroke to the focused field.
func (f *noteForm) handleKey(msg tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd
	switch f.focus {
	case 0:
		f.title, cmd = f.title.Update(msg)
	case 1:
		f.tags, cmd = f.tags.Update(msg)
	case 2:
		f.content, cmd = f.content.Update(msg)
	}
	return cmd
}

// setSize fits the textarea into the available space.
func (f *noteForm) setSize(width, height int) {
	f.title.Width = width
	f.tags.Width = width
	f.content.SetWidth(width)
	if height > 0 {
		f.content.SetHeight(height)
	}
}

// parseTags normalizes the tags field: split on commas, trim,
// lowercase, drop empties and duplicates, preserving first-seen order.
func (f *noteForm) parseTags() []string {
	var out []string
	seen := make(map[string]bool)
	for _, raw := range strings.Split(f.tags.Value(), ",") {
		tag := strings.ToLower(strings.TrimSpace(raw))
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		out = append(out, tag)
	}
	return out
}

// validate checks the form locally before any request is built.
func (f *noteForm) validate() bool {
	title := strings.TrimSpace(f.title.Value())
	if title == "" {
		f.err = "Title is required"
		return false
	}
	if utf8.RuneCountInString(title) > maxTitleLen {
		f.err = "Title is too long"
		return false
	}
	f.err = ""
	return true
}

// createRequest builds the POST /notes payload.
func (f *noteForm) createRequest() api.CreateNoteRequest {
	return api.CreateNoteRequest{
		Title:    strings.TrimSpace(f.title.Value()),
		Content:  f.content.Value(),
		Tags:     f.parseTags(),
		IsPinned: f.pinned,
	}
}

// updateRequest builds a partial PUT payload from the fields that
// differ from the note the form was opened with. changed is false
// when nothing differs, in which case no request should be sent.
func (f *noteForm) updateRequest() (req api.UpdateNoteRequest, changed bool) {
	if f.orig == nil {
		return req, false
	}

	if title := strings.TrimSpace(f.title.Value()); title != f.orig.Title {
		req.Title = api.String(title)
		changed = true
	}
	if content := f.content.Value(); content != f.orig.Content {
		req.Content = api.String(content)
		changed = true
	}
	if tags := f.parseTags(); !equalTags(tags, f.orig.Tags) {
		req.Tags = api.Strings(tags)
		changed = true
	}
	if f.pinned != f.orig.IsPinned {
		req.IsPinned = api.Bool(f.pinned)
		changed = true
	}
	return req, changed
}

func equalTags(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
