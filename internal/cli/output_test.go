package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/pfrederiksen/nps-explorer/internal/places"
	"github.com/pfrederiksen/nps-explorer/internal/scraper"
	"github.com/pfrederiksen/nps-explorer/internal/site"
)

func sampleSites() []*site.Site {
	return []*site.Site{
		site.New("National Park", "Isle Royale", "Houghton, MI", "49931", "(906) 482-0984", "https://www.nps.gov/isro/"),
		site.New("National Lakeshore", "Sleeping Bear Dunes", "Empire, MI", "49630", "(231) 326-4700", "https://www.nps.gov/slbe/"),
	}
}

func TestWriteSites_JSON(t *testing.T) {
	var buf bytes.Buffer
	result := &SitesResult{
		State:     "michigan",
		CheckedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		Sites:     sampleSites(),
		Count:     2,
	}

	if err := WriteSites(&buf, result, FormatJSON); err != nil {
		t.Fatalf("WriteSites() error: %v", err)
	}

	var decoded struct {
		State string `json:"state"`
		Count int    `json:"count"`
		Sites []struct {
			Name    string `json:"name"`
			Zipcode string `json:"zipcode"`
		} `json:"sites"`
	}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}

	if decoded.State != "michigan" || decoded.Count != 2 {
		t.Errorf("decoded = %+v", decoded)
	}
	if len(decoded.Sites) != 2 || decoded.Sites[1].Zipcode != "49630" {
		t.Errorf("decoded sites = %+v", decoded.Sites)
	}
}

func TestWriteSites_Text(t *testing.T) {
	var buf bytes.Buffer
	result := &SitesResult{State: "michigan", Sites: sampleSites(), Count: 2}

	if err := WriteSites(&buf, result, FormatText); err != nil {
		t.Fatalf("WriteSites() error: %v", err)
	}

	output := buf.String()
	for _, want := range []string{"michigan (2 sites):", "[1]", "Isle Royale", "[2]", "Empire, MI"} {
		if !strings.Contains(output, want) {
			t.Errorf("output missing %q:\n%s", want, output)
		}
	}
}

func TestWriteSites_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteSites(&buf, &SitesResult{}, OutputFormat("xml")); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestWriteStates(t *testing.T) {
	dir := scraper.Directory{
		"wyoming":  "https://www.nps.gov/state/wy/index.htm",
		"michigan": "https://www.nps.gov/state/mi/index.htm",
	}

	var buf bytes.Buffer
	if err := WriteStates(&buf, dir, FormatJSON); err != nil {
		t.Fatalf("WriteStates() error: %v", err)
	}

	var entries []stateEntry
	if err := json.Unmarshal(buf.Bytes(), &entries); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if len(entries) != 2 || entries[0].Name != "michigan" || entries[1].Name != "wyoming" {
		t.Errorf("entries = %+v, want michigan then wyoming", entries)
	}

	buf.Reset()
	if err := WriteStates(&buf, dir, FormatText); err != nil {
		t.Fatalf("WriteStates() error: %v", err)
	}
	output := buf.String()
	if strings.Index(output, "michigan") > strings.Index(output, "wyoming") {
		t.Errorf("states not sorted:\n%s", output)
	}
}

func TestWritePlaces(t *testing.T) {
	var buf bytes.Buffer
	nearby := []places.Place{
		{Name: "Keweenaw Coffee Works", Category: "Eating Places", Address: "100 Quincy St", City: "Hancock"},
		{Name: "Trailhead"},
	}

	if err := WritePlaces(&buf, nearby); err != nil {
		t.Fatalf("WritePlaces() error: %v", err)
	}

	want := "- Keweenaw Coffee Works (Eating Places): 100 Quincy St, Hancock\n" +
		"- Trailhead (no category): no address, no city\n"
	if buf.String() != want {
		t.Errorf("WritePlaces() = %q, want %q", buf.String(), want)
	}
}
