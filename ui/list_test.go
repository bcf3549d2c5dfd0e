package ui

import (
	"context"
	"runtime"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

type row struct {
	ID   string
	Name string
	City string
}

func matchRow(r row, q string) bool {
	q = strings.ToLower(q)
	return strings.Contains(strings.ToLower(r.Name), q) ||
		strings.Contains(strings.ToLower(r.City), q)
}

var sampleRows = []row{
	{ID: "1", Name: "North Campus", City: "Lahore"},
	{ID: "2", Name: "City Campus", City: "Karachi"},
	{ID: "3", Name: "Model Town", City: "Lahore"},
}

func staticFetch(rows []row) Fetcher[row] {
	return func(context.Context) ([]row, error) { return rows, nil }
}

func TestListScreenLifecycle(t *testing.T) {
	s := NewListScreen(staticFetch(sampleRows), matchRow)
	assert.Equal(t, StateIdle, s.State())

	assert.NoError(t, s.Load(context.Background()))
	assert.Equal(t, StateLoaded, s.State())
	assert.Len(t, s.Items(), 3)

	// error transition keeps nothing stale around
	s = NewListScreen(func(context.Context) ([]row, error) {
		return nil, errors.New("boom")
	}, matchRow)
	assert.Error(t, s.Load(context.Background()))
	assert.Equal(t, StateError, s.State())
	assert.EqualError(t, s.Err(), "boom")
}

func TestFilter(t *testing.T) {
	s := NewListScreen(staticFetch(sampleRows), matchRow)
	_ = s.Load(context.Background())

	tests := []struct {
		name  string
		query string
		want  []string // expected ids, in collection order
	}{
		{name: "empty query returns all unchanged", query: "", want: []string{"1", "2", "3"}},
		{name: "case-insensitive substring", query: "campus", want: []string{"1", "2"}},
		{name: "matches any searchable field", query: "LAHORE", want: []string{"1", "3"}},
		{name: "no match", query: "islamabad", want: []string{}},
		{name: "partial word", query: "odel", want: []string{"3"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.Filter(tt.query)
			ids := make([]string, 0, len(got))
			for _, r := range got {
				ids = append(ids, r.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestFilterFoldsQueryForMatcher(t *testing.T) {
	// matchers receive the query already case-folded; one that only folds
	// the record side must still match mixed-case input
	s := NewListScreen(staticFetch(sampleRows), func(r row, q string) bool {
		return strings.Contains(strings.ToLower(r.Name), q)
	})
	_ = s.Load(context.Background())

	got := s.Filter("CamPus")
	ids := make([]string, 0, len(got))
	for _, r := range got {
		ids = append(ids, r.ID)
	}
	assert.Equal(t, []string{"1", "2"}, ids)
}

func TestDeleteConfirmationGating(t *testing.T) {
	s := NewListScreen(staticFetch(sampleRows), matchRow)
	_ = s.Load(context.Background())

	var deleted []string
	del := func(_ context.Context, id string) error {
		deleted = append(deleted, id)
		return nil
	}

	// declined: no call, collection unchanged
	ok, err := s.Delete(context.Background(), "2", del, ConfirmFunc(func(string) bool { return false }))
	assert.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, deleted)
	assert.Len(t, s.Items(), 3)

	// accepted: exactly one call, then reload
	ok, err = s.Delete(context.Background(), "2", del, ConfirmFunc(func(string) bool { return true }))
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []string{"2"}, deleted)
}

func TestStaleLoadDiscarded(t *testing.T) {
	release := make(chan struct{})
	var calls int32
	fetch := func(context.Context) ([]row, error) {
		if atomic.AddInt32(&calls, 1) == 1 {
			<-release // first load resolves late
			return []row{{ID: "stale"}}, nil
		}
		return []row{{ID: "fresh"}}, nil
	}
	s := NewListScreen(fetch, matchRow)

	done := make(chan error)
	go func() { done <- s.Load(context.Background()) }()

	// second load supersedes the first while it is still in flight
	for s.State() != StateLoading {
		runtime.Gosched()
	}
	assert.NoError(t, s.Load(context.Background()))
	close(release)
	assert.NoError(t, <-done)

	items := s.Items()
	if assert.Len(t, items, 1) {
		assert.Equal(t, "fresh", items[0].ID)
	}
	assert.Equal(t, StateLoaded, s.State())
}
