package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/bluejays/schoolsys/core"
)

const cardWidth = 46

// PrintCard composes static branding with resource fields into the fixed
// two-page ID-card layout. Rendering is pure text against an io.Writer; no
// network round trip happens during printing.
type PrintCard struct {
	Branding string // school/branch header line
	Front    []DetailField
	Back     []DetailField
}

// Render writes both card pages, separated by a form feed so the print
// pipeline paginates them.
func (c PrintCard) Render(w io.Writer) error {
	if err := c.page(w, c.Front); err != nil {
		return err
	}
	if _, err := fmt.Fprint(w, "\f"); err != nil {
		return err
	}
	return c.page(w, c.Back)
}

func (c PrintCard) page(w io.Writer, fields []DetailField) error {
	rule := strings.Repeat("=", cardWidth)
	if _, err := fmt.Fprintf(w, "%s\n%s\n%s\n", rule, center(c.Branding), rule); err != nil {
		return err
	}
	for _, fld := range fields {
		if _, err := fmt.Fprintf(w, "%-16s %s\n", fld.Label+":", core.OrNA(fld.Value)); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "%s\n", rule)
	return err
}

func center(s string) string {
	if len(s) >= cardWidth {
		return s
	}
	pad := (cardWidth - len(s)) / 2
	return strings.Repeat(" ", pad) + s
}
