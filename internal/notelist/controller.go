// Package notelist tracks the fetched state of the two note
// partitions shown in the UI: active notes and archived notes. Each
// partition is fetched independently, and responses are applied
// last-writer-wins using monotonic sequence numbers so a slow reply
// can never clobber the result of a newer request.
package notelist

import (
	"github.com/thisisdkyadav/hdnotes/internal/api"
)

// Kind identifies a note partition.
type Kind int

const (
	// Active holds notes where isArchived is false.
	Active Kind = iota
	// Archived holds notes where isArchived is true.
	Archived

	numKinds
)

// String returns the tab label for the partition.
func (k Kind) String() string {
	switch k {
	case Active:
		return "notes"
	case Archived:
		return "archived"
	default:
		return "unknown"
	}
}

// Partition is the fetched state of one note partition.
type Partition struct {
	Notes      []api.Note
	Pagination api.Pagination
	Loading    bool
	Err        error
	Page       int

	// issued is the sequence number of the newest request for this
	// partition. Responses carrying an older number are discarded.
	issued uint64
	loaded bool
}

// Request describes a fetch the caller should perform. The seq must be
// handed back to Apply together with the result.
type Request struct {
	Kind   Kind
	Seq    uint64
	Filter api.Filter
}

// Controller owns partition state for the note list. It is not safe
// for concurrent use; it is driven from the program's update loop.
type Controller struct {
	parts   [numKinds]Partition
	nextSeq uint64
	query   string
	tags    []string
	limit   int
}

// New returns a controller whose fetch requests ask for limit notes
// per page.
func New(limit int) *Controller {
	c := &Controller{limit: limit}
	for i := range c.parts {
		c.parts[i].Page = 1
	}
	return c
}

// Query returns the search query applied to both partitions.
func (c *Controller) Query() string { return c.query }

// SetQuery records a new search query and resets both partitions to
// their first page. It does not fetch; call BeginRefreshAll for that.
func (c *Controller) SetQuery(q string) {
	if q == c.query {
		return
	}
	c.query = q
	for i := range c.parts {
		c.parts[i].Page = 1
	}
}

// TagFilter returns the tag filter applied to both partitions.
func (c *Controller) TagFilter() []string { return c.tags }

// SetTagFilter records a tag filter and resets both partitions to
// their first page. nil clears the filter.
func (c *Controller) SetTagFilter(tags []string) {
	c.tags = tags
	for i := range c.parts {
		c.parts[i].Page = 1
	}
}

// SetPage moves a partition to the given page, clamped to the page
// range reported by the last response.
func (c *Controller) SetPage(kind Kind, page int) {
	p := &c.parts[kind]
	if page < 1 {
		page = 1
	}
	if p.Pagination.TotalPages > 0 && page > p.Pagination.TotalPages {
		page = p.Pagination.TotalPages
	}
	p.Page = page
}

// BeginRefresh stamps a new sequence number for the partition, marks
// it loading, and returns the request the caller should execute.
func (c *Controller) BeginRefresh(kind Kind) Request {
	c.nextSeq++
	p := &c.parts[kind]
	p.issued = c.nextSeq
	p.Loading = true

	f := api.Filter{
		Page:       p.Page,
		Limit:      c.limit,
		Search:     c.query,
		Tags:       c.tags,
		IsArchived: api.Bool(kind == Archived),
	}
	return Request{Kind: kind, Seq: c.nextSeq, Filter: f}
}

// BeginRefreshAll starts a refresh of both partitions.
func (c *Controller) BeginRefreshAll() []Request {
	return []Request{c.BeginRefresh(Active), c.BeginRefresh(Archived)}
}

// Apply records the result of a fetch. It reports whether the result
// was applied; results for sequence numbers older than the newest
// issued request for the partition are discarded. A failed fetch
// keeps the previously shown notes and records the error.
func (c *Controller) Apply(kind Kind, seq uint64, resp *api.NotesResponse, err error) bool {
	p := &c.parts[kind]
	if seq != p.issued {
		return false
	}
	p.Loading = false
	if err != nil {
		p.Err = err
		return true
	}
	p.Err = nil
	p.loaded = true
	p.Notes = resp.Notes
	p.Pagination = resp.Pagination
	if resp.Pagination.CurrentPage > 0 {
		p.Page = resp.Pagination.CurrentPage
	}
	return true
}

// Notes returns the notes last applied for the partition.
func (c *Controller) Notes(kind Kind) []api.Note { return c.parts[kind].Notes }

// Loading reports whether a request for the partition is in flight.
func (c *Controller) Loading(kind Kind) bool { return c.parts[kind].Loading }

// Loaded reports whether the partition has ever applied a successful
// response. It distinguishes "empty" from "not fetched yet".
func (c *Controller) Loaded(kind Kind) bool { return c.parts[kind].loaded }

// Err returns the error from the newest failed fetch, or nil.
func (c *Controller) Err(kind Kind) error { return c.parts[kind].Err }

// Pagination returns the pagination from the last applied response.
func (c *Controller) Pagination(kind Kind) api.Pagination { return c.parts[kind].Pagination }

// Note returns the note with the given id from either partition.
func (c *Controller) Note(id string) (api.Note, bool) {
	for k := range c.parts {
		for _, n := range c.parts[k].Notes {
			if n.ID == id {
				return n, true
			}
		}
	}
	return api.Note{}, false
}

// SplitPinned divides the active partition into pinned and unpinned
// notes, preserving backend order within each group.
func (c *Controller) SplitPinned() (pinned, rest []api.Note) {
	for _, n := range c.parts[Active].Notes {
		if n.IsPinned {
			pinned = append(pinned, n)
		} else {
			rest = append(rest, n)
		}
	}
	return pinned, rest
}
