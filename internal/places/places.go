// Package places looks up points of interest near a zip code with the MapQuest
// radius search API.
package places

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	DefaultBaseURL = "http://www.mapquestapi.com"
	SearchPath     = "/search/v2/radius"

	// Radius is the search radius in miles
	Radius     = 10.0
	MaxMatches = 10
)

// ErrMissingAPIKey is returned before any request when no key is configured
var ErrMissingAPIKey = errors.New("MAPQUEST_API_KEY is not set")

// Place is one search result
type Place struct {
	Name     string
	Category string
	Address  string
	City     string
}

// String renders the place the way the explorer lists it,
// e.g. "- Cafe (Eating Places): 1 Main St, Houghton"
func (p Place) String() string {
	category := p.Category
	if category == "" {
		category = "no category"
	}
	address := p.Address
	if address == "" {
		address = "no address"
	}
	city := p.City
	if city == "" {
		city = "no city"
	}
	return fmt.Sprintf("- %s (%s): %s, %s", p.Name, category, address, city)
}

type searchResponse struct {
	SearchResults []searchResult `json:"searchResults"`
}

type searchResult struct {
	Name             string `json:"name"`
	GroupSICCodeName string `json:"group_sic_code_name"`
	Fields           struct {
		Address string `json:"address"`
		City    string `json:"city"`
	} `json:"fields"`
}

// Client queries the radius search endpoint
type Client struct {
	apiKey string
	http   *resty.Client
}

// NewClient creates a client. An empty baseURL selects DefaultBaseURL.
func NewClient(apiKey, baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	client := resty.New()
	client.SetBaseURL(strings.TrimRight(baseURL, "/"))
	client.SetHeader("Accept", "application/json")
	client.SetTimeout(time.Second * 30)

	return &Client{
		apiKey: apiKey,
		http:   client,
	}
}

// Nearby returns up to MaxMatches places within Radius miles of zipcode
func (c *Client) Nearby(ctx context.Context, zipcode string) ([]Place, error) {
	if c.apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	if zipcode == "" {
		return nil, fmt.Errorf("searching nearby places: empty zipcode")
	}

	var result searchResponse
	res, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"key":         c.apiKey,
			"origin":      zipcode,
			"radius":      strconv.FormatFloat(Radius, 'f', 1, 64),
			"maxMatches":  strconv.Itoa(MaxMatches),
			"ambiguities": "ignore",
			"outFormat":   "json",
		}).
		SetResult(&result).
		Get(SearchPath)
	if err != nil {
		return nil, fmt.Errorf("searching nearby places: %w", err)
	}
	if res.IsError() {
		return nil, fmt.Errorf("searching nearby places: API returned status %d", res.StatusCode())
	}

	places := make([]Place, 0, len(result.SearchResults))
	for _, r := range result.SearchResults {
		places = append(places, Place{
			Name:     r.Name,
			Category: r.GroupSICCodeName,
			Address:  r.Fields.Address,
			City:     r.Fields.City,
		})
	}

	return places, nil
}
