package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// CreateNote submits a draft. The returned note is the backend's
// canonical version: id and timestamps assigned, tags normalized.
func (c *Client) CreateNote(ctx context.Context, req CreateNoteRequest) (*Note, error) {
	var out Note
	if err := c.do(ctx, http.MethodPost, "/notes", req, &out, "Failed to create note"); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListNotes fetches one page of notes matching the filter.
func (c *Client) ListNotes(ctx context.Context, f Filter) (*NotesResponse, error) {
	var out NotesResponse
	path := "/notes"
	if q := f.encode(); q != "" {
		path += "?" + q
	}
	if err := c.do(ctx, http.MethodGet, path, nil, &out, "Failed to fetch notes"); err != nil {
		return nil, err
	}
	return &out, nil
}

// Note fetches a single note by id.
func (c *Client) Note(ctx context.Context, id string) (*Note, error) {
	var out Note
	if err := c.do(ctx, http.MethodGet, "/notes/"+url.PathEscape(id), nil, &out, "Failed to fetch note"); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateNote applies a partial update. Nil fields in req are omitted
// from the request body and left unchanged server-side.
func (c *Client) UpdateNote(ctx context.Context, id string, req UpdateNoteRequest) (*Note, error) {
	var out Note
	if err := c.do(ctx, http.MethodPut, "/notes/"+url.PathEscape(id), req, &out, "Failed to update note"); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteNote deletes a note. The note must remain visible client-side
// until this call succeeds.
func (c *Client) DeleteNote(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/notes/"+url.PathEscape(id), nil, nil, "Failed to delete note")
}

// encode renders the filter as URL query parameters, omitting unset
// fields so the backend applies its own defaults.
func (f Filter) encode() string {
	q := url.Values{}
	if f.Page > 0 {
		q.Set("page", strconv.Itoa(f.Page))
	}
	if f.Limit > 0 {
		q.Set("limit", strconv.Itoa(f.Limit))
	}
	if f.Search != "" {
		q.Set("search", f.Search)
	}
	for _, tag := range f.Tags {
		q.Add("tags", tag)
	}
	if f.IsPinned != nil {
		q.Set("isPinned", strconv.FormatBool(*f.IsPinned))
	}
	if f.IsArchived != nil {
		q.Set("isArchived", strconv.FormatBool(*f.IsArchived))
	}
	return q.Encode()
}
