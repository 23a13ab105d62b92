package routes

import (
	"errors"
	"fmt"
	"strings"

	"MedSyncAI/internal/pages"
)

// Wildcard is the path of the fallback entry.
const Wildcard = "*"

// Entry maps one URL path to a page. Guarded entries need an authenticated
// session.
type Entry struct {
	Path    string   `json:"path"`
	Page    pages.ID `json:"page"`
	Guarded bool     `json:"guarded"`
}

var (
	ErrDuplicatePath = errors.New("routes: duplicate path")
	ErrInvalidPath   = errors.New("routes: path must start with /")
	ErrUnknownPage   = errors.New("routes: unknown page")
)

// Table resolves paths by exact match. It is immutable once built.
type Table struct {
	ordered  []Entry
	byPath   map[string]Entry
	fallback Entry
}

// NewTable validates entries and builds a table whose unmatched paths resolve
// to fallback.
func NewTable(entries []Entry, fallback pages.ID) (*Table, error) {
	if !pages.Known(fallback) {
		return nil, fmt.Errorf("%w: fallback %q", ErrUnknownPage, fallback)
	}
	t := &Table{
		ordered:  make([]Entry, 0, len(entries)),
		byPath:   make(map[string]Entry, len(entries)),
		fallback: Entry{Path: Wildcard, Page: fallback},
	}
	for _, e := range entries {
		if !strings.HasPrefix(e.Path, "/") {
			return nil, fmt.Errorf("%w: %q", ErrInvalidPath, e.Path)
		}
		if _, dup := t.byPath[e.Path]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicatePath, e.Path)
		}
		if !pages.Known(e.Page) {
			return nil, fmt.Errorf("%w: %q for %q", ErrUnknownPage, e.Page, e.Path)
		}
		t.byPath[e.Path] = e
		t.ordered = append(t.ordered, e)
	}
	return t, nil
}

// Resolve never fails: anything without an exact entry gets the fallback.
func (t *Table) Resolve(path string) Entry {
	if e, ok := t.byPath[path]; ok {
		return e
	}
	return t.fallback
}

// Entries returns the configured entries in declaration order, without the
// fallback.
func (t *Table) Entries() []Entry {
	out := make([]Entry, len(t.ordered))
	copy(out, t.ordered)
	return out
}

func (t *Table) Fallback() Entry {
	return t.fallback
}

// PathOf returns the path serving page id, if any.
func (t *Table) PathOf(id pages.ID) (string, bool) {
	for _, e := range t.ordered {
		if e.Page == id {
			return e.Path, true
		}
	}
	return "", false
}

func defaultEntries() []Entry {
	return []Entry{
		{Path: "/", Page: pages.Landing},
		{Path: "/signup", Page: pages.SignUp},
		{Path: "/signin", Page: pages.SignIn},
		{Path: "/dashboard", Page: pages.Dashboard, Guarded: true},
		{Path: "/blog", Page: pages.Blog, Guarded: true},
		{Path: "/medications", Page: pages.Medications, Guarded: true},
		{Path: "/conditions", Page: pages.Conditions, Guarded: true},
		{Path: "/activity", Page: pages.Activity, Guarded: true},
		{Path: "/sleep", Page: pages.Sleep, Guarded: true},
		{Path: "/hydration", Page: pages.Hydration, Guarded: true},
		{Path: "/weight", Page: pages.Weight, Guarded: true},
		{Path: "/vitals", Page: pages.Vitals, Guarded: true},
		{Path: "/cycle", Page: pages.Cycle, Guarded: true},
		{Path: "/symptoms", Page: pages.Symptoms, Guarded: true},
		{Path: "/timeline", Page: pages.Timeline, Guarded: true},
		{Path: "/assistant", Page: pages.Assistant, Guarded: true},
	}
}

// Default is the application's route table.
func Default() *Table {
	t, err := NewTable(defaultEntries(), pages.NotFound)
	if err != nil {
		panic(err)
	}
	return t
}

const (
	SignInPath    = "/signin"
	SignUpPath    = "/signup"
	DashboardPath = "/dashboard"
)
