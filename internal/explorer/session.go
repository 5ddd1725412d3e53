package explorer

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pfrederiksen/nps-explorer/internal/logger"
	"github.com/pfrederiksen/nps-explorer/internal/places"
	"github.com/pfrederiksen/nps-explorer/internal/scraper"
	"github.com/pfrederiksen/nps-explorer/internal/site"
)

const (
	statePrompt = "Enter a state name (e.g. Michigan, michigan) or \"exit\"\n:"
	sitePrompt  = "Choose the number for detail search or \"exit\" or \"back\"\n:"
)

// State is the step a Session is waiting on
type State int

const (
	SelectingState State = iota
	SelectingSite
	Done
)

func (s State) String() string {
	switch s {
	case SelectingState:
		return "selecting-state"
	case SelectingSite:
		return "selecting-site"
	case Done:
		return "done"
	default:
		return "unknown"
	}
}

// SiteSource lists the sites of one state
type SiteSource interface {
	SitesForState(ctx context.Context, stateURL string) ([]*site.Site, error)
}

// PlaceFinder finds places near a zip code
type PlaceFinder interface {
	Nearby(ctx context.Context, zipcode string) ([]places.Place, error)
}

// Session holds everything the interactive loop needs between inputs
type Session struct {
	directory scraper.Directory
	sites     SiteSource
	places    PlaceFinder
	out       io.Writer

	state     State
	stateName string
	current   []*site.Site
}

// NewSession creates a session waiting for a state name
func NewSession(directory scraper.Directory, sites SiteSource, finder PlaceFinder, out io.Writer) *Session {
	return &Session{
		directory: directory,
		sites:     sites,
		places:    finder,
		out:       out,
		state:     SelectingState,
	}
}

// State returns the current step
func (s *Session) State() State {
	return s.state
}

// StateName returns the state the user selected, as typed
func (s *Session) StateName() string {
	return s.stateName
}

// Sites returns the sites listed for the selected state
func (s *Session) Sites() []*site.Site {
	return s.current
}

// Prompt returns the text asking for the next input
func (s *Session) Prompt() string {
	if s.state == SelectingSite {
		return sitePrompt
	}
	return statePrompt
}

// Handle applies one line of input
func (s *Session) Handle(ctx context.Context, input string) {
	input = strings.TrimSpace(input)
	if strings.EqualFold(input, "exit") {
		s.state = Done
		return
	}

	switch s.state {
	case SelectingState:
		s.selectState(ctx, input)
	case SelectingSite:
		s.selectSite(ctx, input)
	}
}

func (s *Session) selectState(ctx context.Context, input string) {
	stateURL, ok := s.directory.Lookup(input)
	if !ok {
		fmt.Fprintf(s.out, "[Error] Enter proper state name\n\n")
		return
	}

	sites, err := s.sites.SitesForState(ctx, stateURL)
	if err != nil {
		logger.Error("Listing sites failed", logger.Fields{"state": input, "url": stateURL}, err)
		fmt.Fprintf(s.out, "[Error] Could not load sites for %s: %v\n\n", input, err)
		return
	}

	s.stateName = input
	s.current = sites
	s.state = SelectingSite

	title := "List of national sites in " + input
	rule := strings.Repeat("-", len(title))
	fmt.Fprintf(s.out, "%s\n%s\n%s\n", rule, title, rule)
	WriteSiteTable(s.out, sites)
	fmt.Fprintln(s.out)
}

func (s *Session) selectSite(ctx context.Context, input string) {
	if strings.EqualFold(input, "back") {
		s.state = SelectingState
		s.current = nil
		s.stateName = ""
		return
	}

	n, err := strconv.Atoi(input)
	if !allDigits(input) || err != nil || n < 1 || n > len(s.current) {
		fmt.Fprintf(s.out, "[Error] Invalid input\n\n")
		return
	}

	chosen := s.current[n-1]
	title := "Places near " + chosen.Name
	rule := strings.Repeat("-", len(title))
	fmt.Fprintf(s.out, "%s\n%s\n%s\n", rule, title, rule)

	nearby, err := s.places.Nearby(ctx, chosen.Zipcode)
	if err != nil {
		logger.Error("Nearby search failed", logger.Fields{"site": chosen.Name, "zipcode": chosen.Zipcode}, err)
		fmt.Fprintf(s.out, "[Error] Could not search nearby places: %v\n\n", err)
		return
	}

	WritePlaces(s.out, nearby)
	fmt.Fprintln(s.out)
}

// Run prompts and handles lines from in until "exit" or end of input
func (s *Session) Run(ctx context.Context, in io.Reader) error {
	scanner := bufio.NewScanner(in)
	for s.state != Done {
		fmt.Fprint(s.out, s.Prompt())
		if !scanner.Scan() {
			fmt.Fprintln(s.out)
			return scanner.Err()
		}

		s.Handle(ctx, scanner.Text())

		if err := ctx.Err(); err != nil {
			return err
		}
	}
	return nil
}

// allDigits rejects signs and spaces that Atoi would accept
func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
