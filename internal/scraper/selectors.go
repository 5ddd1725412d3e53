package scraper

import (
	"github.com/andybalholm/cascadia"
)

// region is a compiled selector that keeps its source for error messages
type region struct {
	css string
	sel cascadia.Selector
}

func newRegion(css string) region {
	return region{css: css, sel: cascadia.MustCompile(css)}
}

var (
	stateMenu  = newRegion("ul.dropdown-menu.SearchBar-keywordSearch")
	anchor     = newRegion("a")
	siteEntry  = newRegion("li.clearfix")
	heading    = newRegion("h3")
	heroTitle  = newRegion("a.Hero-title")
	heroDesig  = newRegion("span.Hero-designation")
	locality   = newRegion(`span[itemprop="addressLocality"]`)
	regionName = newRegion(`span[itemprop="addressRegion"]`)
	postalCode = newRegion(`span[itemprop="postalCode"]`)
	telephone  = newRegion(`span[itemprop="telephone"]`)
)
