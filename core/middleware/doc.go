// Package middleware groups the fiber middleware installed by the start command.
//
//   - rayid: tags every request with an X-Ray-ID (taken from the caller or a new
//     UUID) and stores it in Locals for logger.WithRayID.
//   - auth: requires the configured API key in the X-API-Key header or the
//     api_key query parameter. An empty key leaves the API open.
//
// Swagger is mounted before auth so the documentation stays public.
package middleware
