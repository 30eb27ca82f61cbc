package app

import (
	"strings"
	"testing"

	"github.com/thisisdkyadav/hdnotes/internal/api"
)

func TestNoteForm_ParseTags(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty", "", nil},
		{"single", "work", []string{"work"}},
		{"trims and lowercases", " Work ,  HOME ", []string{"work", "home"}},
		{"dedupes keeping first", "a, b, A, b", []string{"a", "b"}},
		{"drops empties", "a,,, ,b", []string{"a", "b"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newNoteForm(nil)
			f.tags.SetValue(tt.input)
			got := f.parseTags()
			if len(got) != len(tt.want) {
				t.Fatalf("parseTags(%q) = %v, want %v", tt.input, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("parseTags(%q)[%d] = %q, want %q", tt.input, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestNoteForm_Validate(t *testing.T) {
	f := newNoteForm(nil)
	if f.validate() {
		t.Error("empty title should fail")
	}

	f.title.SetValue("  ")
	if f.validate() {
		t.Error("whitespace title should fail")
	}

	f.title.SetValue("ok")
	if !f.validate() {
		t.Errorf("valid title rejected: %s", f.err)
	}
	if f.err != "" {
		t.Error("error should clear on success")
	}
}

func TestNoteForm_TitleLengthCap(t *testing.T) {
	f := newNoteForm(nil)
	// CharLimit stops typing at the cap; a programmatic overlong value
	// must still be rejected.
	f.title.CharLimit = 0
	f.title.SetValue(strings.Repeat("x", maxTitleLen+1))
	if f.validate() {
		t.Error("title over the cap should fail validation")
	}

	// The cap counts characters, not bytes: a 150-rune multibyte title
	// is well within it.
	f.title.SetValue(strings.Repeat("é", 150))
	if !f.validate() {
		t.Errorf("150-char multibyte title rejected: %s", f.err)
	}

	f.title.SetValue(strings.Repeat("é", maxTitleLen+1))
	if f.validate() {
		t.Error("multibyte title over the cap should fail validation")
	}
}

func TestNoteForm_UpdateRequestDiffsOnly(t *testing.T) {
	orig := &api.Note{
		ID: "n1", Title: "Old", Content: "body",
		Tags: []string{"work"}, IsPinned: true,
	}
	f := newNoteForm(orig)

	// Change only the title.
	f.title.SetValue("New")
	req, changed := f.updateRequest()
	if !changed {
		t.Fatal("title edit should mark the form changed")
	}
	if req.Title == nil || *req.Title != "New" {
		t.Errorf("title = %v", req.Title)
	}
	if req.Content != nil || req.Tags != nil || req.IsPinned != nil || req.IsArchived != nil {
		t.Errorf("unchanged fields must stay absent: %+v", req)
	}

	// Revert; nothing should be sent.
	f.title.SetValue("Old")
	if _, changed := f.updateRequest(); changed {
		t.Error("reverted form should report no changes")
	}
}

func TestNoteForm_ExplicitEmptyTags(t *testing.T) {
	orig := &api.Note{ID: "n1", Title: "T", Tags: []string{"work"}}
	f := newNoteForm(orig)
	f.tags.SetValue("")

	req, changed := f.updateRequest()
	if !changed {
		t.Fatal("clearing tags is a change")
	}
	if req.Tags == nil {
		t.Fatal("cleared tags must be sent explicitly, not omitted")
	}
	if len(*req.Tags) != 0 {
		t.Errorf("tags = %v, want empty", *req.Tags)
	}
}
