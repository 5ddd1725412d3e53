package scraper

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pfrederiksen/nps-explorer/internal/cache"
	"github.com/pfrederiksen/nps-explorer/internal/logger"
)

const (
	BaseURL   = "https://www.nps.gov"
	IndexPath = "/index.htm"
	UserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64; rv:73.0) Gecko/20100101 Firefox/73.0"
	Timeout   = 30 * time.Second

	// DirectoryTTL is how long a saved state directory is trusted by default
	DirectoryTTL = 7 * 24 * time.Hour
)

// Options configures a Scraper. Zero values select the defaults above.
type Options struct {
	BaseURL string
	Timeout time.Duration

	// DirectoryValidator decides whether the saved state directory can be reused
	DirectoryValidator cache.Validator
}

// Scraper fetches nps.gov pages through the fetch cache and parses them
type Scraper struct {
	client         *http.Client
	base           *url.URL
	cache          *cache.Store
	directoryValid cache.Validator
}

// New creates a Scraper that caches documents in store
func New(store *cache.Store, opts Options) (*Scraper, error) {
	if store == nil {
		return nil, fmt.Errorf("scraper requires a cache store")
	}

	rawBase := opts.BaseURL
	if rawBase == "" {
		rawBase = BaseURL
	}
	base, err := url.Parse(strings.TrimRight(rawBase, "/"))
	if err != nil || base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("invalid base URL %q", rawBase)
	}

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = Timeout
	}

	valid := opts.DirectoryValidator
	if valid == nil {
		valid = cache.MaxAge(DirectoryTTL)
	}

	return &Scraper{
		client: &http.Client{
			Timeout: timeout,
		},
		base:           base,
		cache:          store,
		directoryValid: valid,
	}, nil
}

// IndexURL returns the page carrying the state menu
func (s *Scraper) IndexURL() string {
	return s.base.String() + IndexPath
}

// fetch performs the GET and offers the body to the cache
func (s *Scraper) fetch(ctx context.Context, pageURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, &NetworkError{URL: pageURL, Err: fmt.Errorf("creating request: %w", err)}
	}
	req.Header.Set("User-Agent", UserAgent)

	logger.Debug("Fetching", logger.Fields{"url": pageURL})
	logger.IncrCounter("fetch.requests")
	start := time.Now()

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, &NetworkError{URL: pageURL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &NetworkError{URL: pageURL, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &NetworkError{URL: pageURL, Err: fmt.Errorf("reading body: %w", err)}
	}
	logger.RecordTiming("fetch.duration", time.Since(start))

	s.cache.Store(cache.DeriveKey(pageURL), body)
	return body, nil
}

// fetchOrReuse returns the cached copy of pageURL when one exists, fetching otherwise
func (s *Scraper) fetchOrReuse(ctx context.Context, pageURL string) ([]byte, error) {
	if lookup := s.cache.Load(cache.DeriveKey(pageURL), cache.Exists); lookup.Hit {
		return lookup.Content, nil
	}
	return s.fetch(ctx, pageURL)
}

// resolve makes href absolute against the base URL. Root-relative hrefs are joined
// onto the base so a base with a path prefix keeps it, matching IndexURL.
func (s *Scraper) resolve(href string) (string, error) {
	ref, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		return "", err
	}
	if ref.IsAbs() || ref.Host != "" {
		return ref.String(), nil
	}

	root := *s.base
	root.Path = strings.TrimRight(root.Path, "/") + "/"
	root.RawPath = ""

	ref.Path = strings.TrimPrefix(ref.Path, "/")
	ref.RawPath = ""
	return root.ResolveReference(ref).String(), nil
}
