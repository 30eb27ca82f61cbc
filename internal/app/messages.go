package app

import (
	"github.com/thisisdkyadav/hdnotes/internal/api"
	"github.com/thisisdkyadav/hdnotes/internal/notelist"
)

// partitionLoadedMsg carries the result of a notes fetch. Seq is the
// sequence number stamped when the fetch was issued; the controller
// discards results whose seq is no longer current for the partition.
type partitionLoadedMsg struct {
	kind notelist.Kind
	seq  uint64
	resp *api.NotesResponse
	err  error
}

// searchDebounceMsg fires after the search debounce interval. Version
// must match the model's current debounce version to take effect;
// ticks from superseded keystrokes carry an older version and are
// dropped.
type searchDebounceMsg struct {
	version int
	query   string
}

// otpSentMsg is the result of requesting an OTP email.
type otpSentMsg struct {
	resp *api.OTPResponse
	err  error
}

// authResultMsg is the result of an OTP verify or Google exchange.
type authResultMsg struct {
	resp *api.AuthResponse
	err  error
}

// profileSavedMsg is the result of a profile update.
type profileSavedMsg struct {
	user *api.User
	err  error
}

// mutationOp names a note mutation for toasts and logging.
type mutationOp string

const (
	opCreate  mutationOp = "create"
	opSave    mutationOp = "save"
	opPin     mutationOp = "pin"
	opArchive mutationOp = "archive"
	opDelete  mutationOp = "delete"
)

// noteMutatedMsg is the result of a note mutation. On success the
// model refreshes both partitions rather than patching local state.
type noteMutatedMsg struct {
	op   mutationOp
	id   string
	note *api.Note
	err  error
}

// sessionChangedMsg reports that the persisted session files changed
// on disk, e.g. a logout performed by another process.
type sessionChangedMsg struct{}

// toastExpireMsg clears the toast whose sequence number it carries.
type toastExpireMsg struct {
	seq int
}
