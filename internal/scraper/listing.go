package scraper

import (
	"bytes"
	"context"
	"io"

	"github.com/PuerkitoBio/goquery"
)

// ListSiteURLs returns the detail page URL of every site on a state listing page,
// in page order
func (s *Scraper) ListSiteURLs(ctx context.Context, stateURL string) ([]string, error) {
	body, err := s.fetchOrReuse(ctx, stateURL)
	if err != nil {
		return nil, err
	}
	return s.parseSiteURLs(bytes.NewReader(body), stateURL)
}

func (s *Scraper) parseSiteURLs(r io.Reader, sourceURL string) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, &ParseError{URL: sourceURL, Element: "document", Err: err}
	}

	entries := doc.FindMatcher(siteEntry.sel)
	if entries.Length() == 0 {
		return nil, &ParseError{URL: sourceURL, Element: siteEntry.css}
	}

	// The last li.clearfix on a state page is not a site
	entries = entries.Slice(0, entries.Length()-1)

	urls := make([]string, 0, entries.Length())
	var parseErr error
	entries.EachWithBreak(func(i int, entry *goquery.Selection) bool {
		link := entry.FindMatcher(heading.sel).First().FindMatcher(anchor.sel).First()
		href, ok := link.Attr("href")
		if !ok {
			parseErr = &ParseError{URL: sourceURL, Element: siteEntry.css + " h3 a[href]"}
			return false
		}

		abs, err := s.resolve(href)
		if err != nil {
			parseErr = &ParseError{URL: sourceURL, Element: siteEntry.css + " h3 a[href]", Err: err}
			return false
		}
		urls = append(urls, abs)
		return true
	})
	if parseErr != nil {
		return nil, parseErr
	}

	return urls, nil
}
