package ui

import (
	"strings"
	"testing"
)

func TestConfirmDialog_Focus(t *testing.T) {
	d := NewConfirmDialog("Delete note", "This cannot be undone.")
	if d.ConfirmFocused() {
		t.Error("cancel should be focused initially")
	}
	d.ToggleFocus()
	if !d.ConfirmFocused() {
		t.Error("toggle should focus confirm")
	}
	d.ToggleFocus()
	if d.ConfirmFocused() {
		t.Error("second toggle should focus cancel again")
	}
}

func TestConfirmDialog_View(t *testing.T) {
	d := NewConfirmDialog("Delete note", "Really delete?")
	d.ConfirmLabel = " Delete "
	d.Danger = true

	view := d.View()
	for _, want := range []string{"Delete note", "Really delete?", "Delete", "Cancel"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}
