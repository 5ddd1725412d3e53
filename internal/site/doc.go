// Package site provides the record type for a single National Park Service site.
//
// A Site is built once from a parsed detail page and is read-only afterwards. Zip codes
// and phone numbers are normalized at construction by dropping every character outside
// their allowed sets, so a Site never carries stray whitespace or punctuation in those fields.
package site
