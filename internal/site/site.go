package site

import (
	"strings"
)

const (
	zipcodeChars = "0123456789-"
	phoneChars   = "0123456789() -"
)

// Site represents one protected site listed on nps.gov
type Site struct {
	Category string `json:"category"`
	Name     string `json:"name"`
	Address  string `json:"address"`
	Zipcode  string `json:"zipcode"`
	Phone    string `json:"phone"`
	URL      string `json:"url,omitempty"`
}

// New creates a Site with Zipcode and Phone normalized
func New(category, name, address, zipcode, phone, sourceURL string) *Site {
	return &Site{
		Category: category,
		Name:     name,
		Address:  address,
		Zipcode:  NormalizeZipcode(zipcode),
		Phone:    NormalizePhone(phone),
		URL:      sourceURL,
	}
}

// Info returns the one-line summary used in site listings,
// e.g. "Isle Royale (National Park): Houghton, MI 49931"
func (s *Site) Info() string {
	return s.Name + " (" + s.Category + "): " + s.Address + " " + s.Zipcode
}

// NormalizeZipcode keeps only digits and hyphens
func NormalizeZipcode(raw string) string {
	return keepOnly(raw, zipcodeChars)
}

// NormalizePhone keeps only digits, parentheses, hyphens and spaces
func NormalizePhone(raw string) string {
	return keepOnly(raw, phoneChars)
}

func keepOnly(raw, allowed string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if strings.ContainsRune(allowed, r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
