// Package explorer implements the interactive browsing session.
//
// A Session moves between two states. In SelectingState it waits for a state name and
// lists that state's sites; in SelectingSite it waits for a site number and lists places
// near the chosen site, or "back" to pick another state. "exit" ends the session from
// either state. Fetch and parse failures are reported and the session re-prompts.
package explorer
