// Package cache provides the on-disk fetch cache used by the scraper.
//
// Every fetched document is stored as one file in the cache directory, named by a key
// derived from its URL. A lookup returns a Lookup value that is either a hit carrying the
// stored bytes or a miss; read problems are misses, never errors. Whether an existing entry
// may be trusted is decided by a Validator supplied per lookup, so page caches and the state
// directory snapshot can apply different rules. The default location is ~/.cache/nps-explorer/.
package cache
