package ui

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bluejays/schoolsys/core"
)

type person struct {
	ID, Name, Phone string
}

func TestDetailViewShow(t *testing.T) {
	view := DetailView[person]{
		Title: "Staff Detail",
		Fetch: func(_ context.Context, id string) (person, error) {
			if id != "p-1" {
				return person{}, &core.APIError{Status: 404, Message: "not found"}
			}
			return person{ID: "p-1", Name: "Ayesha Khan"}, nil
		},
		Renderer: func(p person) []DetailField {
			return []DetailField{
				{Label: "Name", Value: p.Name},
				{Label: "Phone", Value: p.Phone},
			}
		},
	}

	var buf bytes.Buffer
	assert.NoError(t, view.Show(context.Background(), "p-1", &buf))
	out := buf.String()
	assert.Contains(t, out, "Staff Detail")
	assert.Contains(t, out, "Ayesha Khan")
	// missing optional field defaults to the placeholder
	assert.Contains(t, out, "N/A")

	// fetch failure renders nothing; the error propagates for notification
	buf.Reset()
	err := view.Show(context.Background(), "missing", &buf)
	var apiErr *core.APIError
	assert.ErrorAs(t, err, &apiErr)
	assert.Zero(t, buf.Len())
}

func TestPrintCardTwoPages(t *testing.T) {
	card := PrintCard{
		Branding: "BLUE JAYS SCHOOL SYSTEM",
		Front: []DetailField{
			{Label: "Name", Value: "Bilal Ahmed"},
			{Label: "Class", Value: "Semester 1"},
		},
		Back: []DetailField{
			{Label: "Guardian", Value: "Tariq Ahmed"},
			{Label: "Phone", Value: ""},
		},
	}
	var buf bytes.Buffer
	assert.NoError(t, card.Render(&buf))

	pages := strings.Split(buf.String(), "\f")
	assert.Len(t, pages, 2)
	assert.Contains(t, pages[0], "BLUE JAYS SCHOOL SYSTEM")
	assert.Contains(t, pages[0], "Bilal Ahmed")
	assert.Contains(t, pages[1], "BLUE JAYS SCHOOL SYSTEM")
	assert.Contains(t, pages[1], "N/A")
}

func TestConsolePrompterSequentialReads(t *testing.T) {
	// multi-line input sources (piped stdin, pasted input) feed several
	// prompts in a row; lines buffered ahead of one read must survive for
	// the next, the way the admission wizard consumes them
	var out bytes.Buffer
	p := &ConsolePrompter{In: strings.NewReader("North Campus\nLahore\nyes\n"), Out: &out}

	name, err := p.ReadLine("Name")
	assert.NoError(t, err)
	assert.Equal(t, "North Campus", name)

	city, err := p.ReadLine("City")
	assert.NoError(t, err)
	assert.Equal(t, "Lahore", city)

	assert.True(t, p.Confirm("Proceed?"))
}

func TestConsoleConfirm(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"y\n", true},
		{"Y\n", true},
		{"yes\n", true},
		{"n\n", false},
		{"\n", false},
		{"whatever\n", false},
	}
	for _, tt := range tests {
		var out bytes.Buffer
		p := &ConsolePrompter{In: strings.NewReader(tt.in), Out: &out}
		assert.Equal(t, tt.want, p.Confirm("Delete record 1?"), "input %q", tt.in)
		assert.Contains(t, out.String(), "[y/N]")
	}
}
