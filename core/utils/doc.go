// Package utils provides small helpers shared across Tataru: item ID parsing and
// the name normalization used for case-insensitive and fuzzy comparisons.
package utils
