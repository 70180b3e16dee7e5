// Package models defines the domain records shared by the cache, the remote source
// and the lookup features: items, recipes and market prices.
package models
