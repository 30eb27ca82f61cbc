// Package app wires the hdnotes screens into a single bubbletea
// program: the login flow, the two-partition note list, the note
// editor, and the transient dialogs layered over them.
package app

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"github.com/thisisdkyadav/hdnotes/internal/api"
	"github.com/thisisdkyadav/hdnotes/internal/config"
	"github.com/thisisdkyadav/hdnotes/internal/notelist"
	"github.com/thisisdkyadav/hdnotes/internal/session"
	"github.com/thisisdkyadav/hdnotes/internal/ui"
)

// screen identifies the top-level view.
type screen int

const (
	screenLogin screen = iota
	screenNotes
)

// Model is the root bubbletea model.
type Model struct {
	cfg      *config.Config
	gw       Gateway
	sessions *session.Store
	logger   *slog.Logger

	width  int
	height int
	screen screen

	login loginState

	// Note list state. selected tracks the cursor per partition so
	// switching tabs restores position.
	list     *notelist.Controller
	tab      notelist.Kind
	selected [2]int

	// Search state. searchInput is only consulted while searching;
	// the committed query lives in the controller. searchVersion
	// invalidates debounce ticks from superseded keystrokes.
	searchInput   textinput.Model
	searching     bool
	searchVersion int

	form    *noteForm
	profile *profileForm
	confirm *confirmState

	// mutating blocks further mutations while one is in flight.
	mutating bool

	toast    string
	toastErr bool
	toastSeq int

	// preview renders markdown note content; rebuilt on resize.
	preview      *glamour.TermRenderer
	previewWidth int

	// sessionEvents delivers change notifications for the persisted
	// session files. nil when the watcher could not start.
	sessionEvents <-chan struct{}
}

// confirmState pairs a dialog with the note id it would act on.
type confirmState struct {
	dialog *ui.ConfirmDialog
	noteID string
}

// New builds the root model. sessionEvents may be nil.
func New(cfg *config.Config, gw Gateway, sessions *session.Store, sessionEvents <-chan struct{}, logger *slog.Logger) Model {
	si := textinput.New()
	si.Placeholder = "search notes..."
	si.Prompt = "/ "
	si.CharLimit = 200

	m := Model{
		cfg:           cfg,
		gw:            gw,
		sessions:      sessions,
		logger:        logger,
		screen:        screenLogin,
		login:         newLoginState(),
		list:          notelist.New(cfg.UI.PageLimit),
		searchInput:   si,
		sessionEvents: sessionEvents,
	}

	if sessions.Restore() != nil {
		m.screen = screenNotes
	}
	return m
}

// Init starts the initial fetches and the session watcher wait.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink}
	if m.screen == screenNotes {
		cmds = append(cmds, m.refreshAll()...)
	}
	if m.sessionEvents != nil {
		cmds = append(cmds, waitForSessionChange(m.sessionEvents))
	}
	return tea.Batch(cmds...)
}

// refreshAll begins a refresh of both partitions and returns the
// fetch commands.
func (m *Model) refreshAll() []tea.Cmd {
	reqs := m.list.BeginRefreshAll()
	cmds := make([]tea.Cmd, 0, len(reqs))
	for _, req := range reqs {
		cmds = append(cmds, m.fetchPartition(req))
	}
	return cmds
}

// renderer returns a glamour renderer sized to the preview pane,
// rebuilding it when the width changes.
func (m *Model) renderer(width int) *glamour.TermRenderer {
	if m.preview != nil && m.previewWidth == width {
		return m.preview
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		m.logger.Warn("glamour init failed", "error", err)
		return nil
	}
	m.preview = r
	m.previewWidth = width
	return r
}

// displayNotes returns a partition's notes in display order: pinned
// first on the active tab, backend order otherwise. Navigation and
// rendering both use this ordering so the cursor lines up.
func (m *Model) displayNotes(k notelist.Kind) []api.Note {
	if k != notelist.Active {
		return m.list.Notes(k)
	}
	pinned, rest := m.list.SplitPinned()
	return append(pinned, rest...)
}

// selectedNoteID returns the id under the cursor on the current tab.
func (m *Model) selectedNoteID() string {
	notes := m.displayNotes(m.tab)
	idx := m.selected[m.tab]
	if idx < 0 || idx >= len(notes) {
		return ""
	}
	return notes[idx].ID
}

// clampSelection keeps the cursor inside the current partition after
// a refresh shrinks it.
func (m *Model) clampSelection() {
	for k := range m.selected {
		n := len(m.list.Notes(notelist.Kind(k)))
		if m.selected[k] >= n {
			m.selected[k] = n - 1
		}
		if m.selected[k] < 0 {
			m.selected[k] = 0
		}
	}
}
