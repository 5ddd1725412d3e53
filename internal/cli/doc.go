// Package cli implements the command-line interface for nps-explorer.
//
// The cli package provides the Cobra-based CLI: the root command runs the interactive
// explorer, and the states, sites, nearby and cache subcommands expose the same pipeline
// non-interactively with text or JSON output. It wires configuration, the fetch cache,
// the scraper and the places client together.
package cli
