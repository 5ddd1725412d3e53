package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/pfrederiksen/nps-explorer/internal/explorer"
	"github.com/pfrederiksen/nps-explorer/internal/places"
	"github.com/pfrederiksen/nps-explorer/internal/scraper"
	"github.com/pfrederiksen/nps-explorer/internal/site"
)

// OutputFormat specifies the output format
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// SitesResult contains the sites of one state
type SitesResult struct {
	State     string       `json:"state"`
	CheckedAt time.Time    `json:"checked_at"`
	Sites     []*site.Site `json:"sites"`
	Count     int          `json:"count"`
}

// stateEntry is one state in JSON output
type stateEntry struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// WriteSites writes the result in the specified format
func WriteSites(w io.Writer, result *SitesResult, format OutputFormat) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, result)
	case FormatText:
		fmt.Fprintf(w, "%s (%d sites):\n", result.State, result.Count)
		explorer.WriteSiteTable(w, result.Sites)
		return nil
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// WriteStates writes the directory in alphabetical order
func WriteStates(w io.Writer, dir scraper.Directory, format OutputFormat) error {
	names := dir.Names()

	switch format {
	case FormatJSON:
		entries := make([]stateEntry, 0, len(names))
		for _, name := range names {
			entries = append(entries, stateEntry{Name: name, URL: dir[name]})
		}
		return writeJSON(w, entries)
	case FormatText:
		t := explorer.NewTable(w)
		t.AppendHeader(table.Row{"State", "URL"})
		for _, name := range names {
			t.AppendRow(table.Row{name, dir[name]})
		}
		t.AppendFooter(table.Row{"Total", len(names)})
		t.Render()
		return nil
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// WritePlaces prints nearby places one per line
func WritePlaces(w io.Writer, nearby []places.Place) error {
	explorer.WritePlaces(w, nearby)
	return nil
}

func writeJSON(w io.Writer, v interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
