package explorer

import (
	"fmt"
	"io"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/pfrederiksen/nps-explorer/internal/places"
	"github.com/pfrederiksen/nps-explorer/internal/site"
)

// NewTable returns a rounded table writer that renders to w
func NewTable(w io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.SetOutputMirror(w)
	return t
}

// WriteSiteTable renders sites numbered from 1
func WriteSiteTable(w io.Writer, sites []*site.Site) {
	if len(sites) == 0 {
		fmt.Fprintln(w, "No sites found.")
		return
	}

	t := NewTable(w)
	t.AppendHeader(table.Row{"#", "Name", "Category", "Address", "Zip", "Phone"})
	for i, s := range sites {
		t.AppendRow(table.Row{"[" + strconv.Itoa(i+1) + "]", s.Name, s.Category, s.Address, s.Zipcode, s.Phone})
	}
	t.Render()
}

// WritePlaces prints one line per place
func WritePlaces(w io.Writer, nearby []places.Place) {
	if len(nearby) == 0 {
		fmt.Fprintln(w, "No places found.")
		return
	}
	for _, p := range nearby {
		fmt.Fprintln(w, p.String())
	}
}
