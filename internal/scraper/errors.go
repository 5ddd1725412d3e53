package scraper

import (
	"errors"
	"fmt"
)

var (
	// ErrNetwork matches any *NetworkError via errors.Is
	ErrNetwork = errors.New("network error")
	// ErrParse matches any *ParseError via errors.Is
	ErrParse = errors.New("parse error")
)

// NetworkError reports a failed fetch: transport failure or a non-2xx status
type NetworkError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *NetworkError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetching %s: unexpected status code: %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("fetching %s: %v", e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

func (e *NetworkError) Is(target error) bool {
	return target == ErrNetwork
}

// ParseError reports that an expected element is absent from a document
type ParseError struct {
	URL     string
	Element string
	Err     error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("parsing %s: %s: %v", e.URL, e.Element, e.Err)
	}
	return fmt.Sprintf("parsing %s: %s not found", e.URL, e.Element)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}
