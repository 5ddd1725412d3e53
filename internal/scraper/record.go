package scraper

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/pfrederiksen/nps-explorer/internal/site"
)

var errEmptyTitle = errors.New("empty title")

// ExtractSite fetches a site detail page and builds its record.
// Every region must be present; there is no partial result.
func (s *Scraper) ExtractSite(ctx context.Context, siteURL string) (*site.Site, error) {
	body, err := s.fetchOrReuse(ctx, siteURL)
	if err != nil {
		return nil, err
	}
	return parseSite(bytes.NewReader(body), siteURL)
}

func parseSite(r io.Reader, sourceURL string) (*site.Site, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, &ParseError{URL: sourceURL, Element: "document", Err: err}
	}

	fields := make(map[string]string, 6)
	for _, reg := range []region{heroTitle, heroDesig, locality, regionName, postalCode, telephone} {
		match := doc.FindMatcher(reg.sel).First()
		if match.Length() == 0 {
			return nil, &ParseError{URL: sourceURL, Element: reg.css}
		}
		fields[reg.css] = strings.TrimSpace(match.Text())
	}

	name := fields[heroTitle.css]
	if name == "" {
		return nil, &ParseError{URL: sourceURL, Element: heroTitle.css, Err: errEmptyTitle}
	}

	address := fmt.Sprintf("%s, %s", fields[locality.css], fields[regionName.css])

	return site.New(
		fields[heroDesig.css],
		name,
		address,
		fields[postalCode.css],
		fields[telephone.css],
		sourceURL,
	), nil
}

// SitesForState lists a state's sites and extracts each one in page order.
// The first failure aborts the whole run.
func (s *Scraper) SitesForState(ctx context.Context, stateURL string) ([]*site.Site, error) {
	urls, err := s.ListSiteURLs(ctx, stateURL)
	if err != nil {
		return nil, fmt.Errorf("listing sites: %w", err)
	}

	sites := make([]*site.Site, 0, len(urls))
	for _, u := range urls {
		st, err := s.ExtractSite(ctx, u)
		if err != nil {
			return nil, fmt.Errorf("extracting site: %w", err)
		}
		sites = append(sites, st)
	}

	return sites, nil
}
