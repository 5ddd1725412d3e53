package scraper

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/pfrederiksen/nps-explorer/internal/cache"
	"github.com/pfrederiksen/nps-explorer/internal/logger"
)

// Directory maps a lowercase state name to its listing page URL,
// e.g. "michigan" -> "https://www.nps.gov/state/mi/index.htm"
type Directory map[string]string

// Lookup finds a state by name, ignoring case and surrounding whitespace
func (d Directory) Lookup(name string) (string, bool) {
	u, ok := d[normalizeState(name)]
	return u, ok
}

// Names returns the state names in alphabetical order
func (d Directory) Names() []string {
	names := make([]string, 0, len(d))
	for name := range d {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func normalizeState(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// BuildStateDirectory returns the state directory, reusing the saved snapshot when the
// configured validator accepts it. Otherwise the index page is fetched, parsed and the
// snapshot rewritten.
func (s *Scraper) BuildStateDirectory(ctx context.Context) (Directory, error) {
	if lookup := s.cache.Load(cache.StateDirectoryKey, s.directoryValid); lookup.Hit {
		var dir Directory
		err := json.Unmarshal(lookup.Content, &dir)
		if err == nil && len(dir) > 0 {
			return dir, nil
		}
		logger.Warn("Discarding state directory snapshot", logger.Fields{"key": cache.StateDirectoryKey}, err)
	}

	indexURL := s.IndexURL()
	body, err := s.fetch(ctx, indexURL)
	if err != nil {
		return nil, fmt.Errorf("fetching state index: %w", err)
	}

	dir, err := s.parseStateDirectory(bytes.NewReader(body), indexURL)
	if err != nil {
		return nil, err
	}

	data, err := json.MarshalIndent(dir, "", "    ")
	if err != nil {
		logger.Warn("Encoding state directory failed", nil, err)
		return dir, nil
	}
	s.cache.Store(cache.StateDirectoryKey, data)

	logger.Info("Rebuilt state directory", logger.Fields{"states": len(dir), "source": s.IndexURL()})
	return dir, nil
}

// parseStateDirectory extracts the state links from the index page menu
func (s *Scraper) parseStateDirectory(r io.Reader, sourceURL string) (Directory, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, &ParseError{URL: sourceURL, Element: "document", Err: err}
	}

	menu := doc.FindMatcher(stateMenu.sel).First()
	if menu.Length() == 0 {
		return nil, &ParseError{URL: sourceURL, Element: stateMenu.css}
	}

	dir := make(Directory)
	var parseErr error
	menu.FindMatcher(anchor.sel).EachWithBreak(func(i int, link *goquery.Selection) bool {
		name := normalizeState(link.Text())
		href, ok := link.Attr("href")
		if name == "" || !ok {
			return true
		}

		abs, err := s.resolve(href)
		if err != nil {
			parseErr = &ParseError{URL: sourceURL, Element: stateMenu.css + " a[href]", Err: err}
			return false
		}
		dir[name] = abs
		return true
	})
	if parseErr != nil {
		return nil, parseErr
	}

	return dir, nil
}
