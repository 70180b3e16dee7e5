// Package fuzzy resolves free-text queries to item ids.
//
// Queries and candidate names are normalized (NFC, trimmed, whitespace collapsed,
// case folded) before comparison. Resolution policy lives in Resolver and is
// independent of the Scorer, which can be swapped by configuration:
//
//   - LevenshteinScorer: 1 - edit distance / longer length.
//   - TokenScorer: per-word best alignment, tolerant of word order.
//
// Failed resolutions return a *ResolveError wrapping ErrNoMatch together with the closest candidates.
package fuzzy
