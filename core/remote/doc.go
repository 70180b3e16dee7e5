// Package remote fetches authoritative item data and market prices.
//
// Client implements Source against two HTTP APIs:
//
//   - XIVAPI v2 sheets: /api/1/sheet/Item/{id} for the item row and
//     /api/1/search?sheets=Recipe&query=ItemResult={id} for its recipe. Both requests
//     run concurrently. Name lookups use /api/1/search?sheets=Item and keep exact
//     case-insensitive matches only.
//   - Universalis: /api/v2/aggregated/{world}/{id} for the cheapest NQ and HQ listings
//     per world, data center and region.
//
// Responses are decoded with gjson so that unexpected shapes degrade to missing fields
// instead of decode failures.
//
// # Errors
//
// Every call ends in a record, ErrNotFound or an error wrapping ErrSourceUnavailable.
// NotFound is only returned on an authoritative answer (HTTP 404, empty search result,
// item listed in failedItems). Timeouts, transport errors, 429, 5xx and malformed
// bodies are unavailability and must not be treated as absence.
//
// # Caching
//
// Identical in-flight calls are collapsed with singleflight. NotFoundCache adds an LRU
// of NotFound answers in front of any Source. Prices are never cached.
package remote
