// Package scraper fetches and parses National Park Service pages.
//
// Three page shapes are understood: the nps.gov index, whose "find a park by state" menu
// becomes a Directory; a state listing page, which yields the detail page URL of every site
// in that state; and a site detail page, which yields a site.Site. Every document goes
// through the fetch cache first and is only requested over HTTP on a miss.
//
// The extractors depend on class names and itemprop markers of the live site. When nps.gov
// changes its layout the affected extractor fails with a ParseError instead of returning a
// partial result.
package scraper
