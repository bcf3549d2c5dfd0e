// Package ui provides the screen scaffolding every entity of the portal
// instantiates: list screens with local filtering, multi-step form wizards,
// read-only detail views and print cards. Screens own their data exclusively;
// nothing here is shared across screen instances.
package ui

import (
	"context"
	"strings"
	"sync"
)

// ScreenState is the list screen's lifecycle: Idle, then Loading, settling in
// Loaded or Error, and re-entering Loading on every reload.
type ScreenState int

const (
	StateIdle ScreenState = iota
	StateLoading
	StateLoaded
	StateError
)

func (s ScreenState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateLoaded:
		return "loaded"
	case StateError:
		return "error"
	}
	return "unknown"
}

type (
	// Fetcher loads the screen's collection.
	Fetcher[T any] func(ctx context.Context) ([]T, error)

	// Matcher reports whether a record's searchable fields contain the query.
	// The query arrives already case-folded.
	Matcher[T any] func(rec T, query string) bool

	// Deleter removes one record by id.
	Deleter func(ctx context.Context, id string) error
)

// ListScreen is the fetch-all/filter/act pattern behind every table screen.
type ListScreen[T any] struct {
	fetch Fetcher[T]
	match Matcher[T]

	mu    sync.Mutex
	state ScreenState
	items []T
	err   error
	gen   uint64 // load generation; stale completions are discarded
}

func NewListScreen[T any](fetch Fetcher[T], match Matcher[T]) *ListScreen[T] {
	return &ListScreen[T]{fetch: fetch, match: match, state: StateIdle}
}

// Load (re-)fetches the collection. A Load started while another is in flight
// supersedes it: the older completion is discarded, whatever order the
// responses arrive in.
func (s *ListScreen[T]) Load(ctx context.Context) error {
	s.mu.Lock()
	s.gen++
	gen := s.gen
	s.state = StateLoading
	s.mu.Unlock()

	items, err := s.fetch(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.gen {
		// superseded by a newer Load
		return nil
	}
	if err != nil {
		s.state = StateError
		s.err = err
		return err
	}
	s.state = StateLoaded
	s.items = items
	s.err = nil
	return nil
}

func (s *ListScreen[T]) State() ScreenState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *ListScreen[T]) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// Items returns the last loaded collection.
func (s *ListScreen[T]) Items() []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.items
}

// Filter returns the records whose searchable fields case-insensitively
// contain query as a substring. An empty query returns the collection
// unchanged. Pure; recomputed on every call.
func (s *ListScreen[T]) Filter(query string) []T {
	s.mu.Lock()
	items := s.items
	s.mu.Unlock()

	if query == "" {
		return items
	}
	query = strings.ToLower(query)
	out := make([]T, 0, len(items))
	for _, rec := range items {
		if s.match(rec, query) {
			out = append(out, rec)
		}
	}
	return out
}

// Delete runs the destructive row action: it asks confirm first, and only on
// explicit acceptance calls del and reloads the collection. Declining issues
// no network call and leaves the collection unchanged.
func (s *ListScreen[T]) Delete(ctx context.Context, id string, del Deleter, confirm Confirmer) (bool, error) {
	if !confirm.Confirm("Delete record " + id + "? This cannot be undone.") {
		return false, nil
	}
	if err := del(ctx, id); err != nil {
		return false, err
	}
	return true, s.Load(ctx)
}
