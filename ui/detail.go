package ui

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/bluejays/schoolsys/core"
)

// DetailField is one label/value pair of a read-only detail view.
type DetailField struct {
	Label string
	Value string
}

// DetailView is the fetch-one-and-render pattern. Renderer maps the fetched
// record to display fields; empty optional values render as "N/A".
type DetailView[T any] struct {
	Title    string
	Fetch    func(ctx context.Context, id string) (T, error)
	Renderer func(rec T) []DetailField
}

// Show fetches the record and writes the formatted summary. On fetch failure
// nothing is rendered and the error is returned for the caller to surface;
// the view is considered closed.
func (v DetailView[T]) Show(ctx context.Context, id string, w io.Writer) error {
	rec, err := v.Fetch(ctx, id)
	if err != nil {
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	if v.Title != "" {
		fmt.Fprintf(tw, "%s\n\n", v.Title)
	}
	for _, fld := range v.Renderer(rec) {
		fmt.Fprintf(tw, "%s:\t%s\n", fld.Label, core.OrNA(fld.Value))
	}
	return tw.Flush()
}
