// Package logger builds the zap loggers used across Tataru.
//
// New picks the development preset for level "debug" and the production preset
// otherwise, encodes as json or console, and writes to stderr, stdout or a file.
// Field names are fixed to level, time and message so that log shippers see the
// same keys in every environment.
//
// HTTP handlers derive a per-request logger with WithRayID, which attaches the
// ray_id set by the rayid middleware:
//
//	l := logger.WithRayID(log, c)
//	l.Warn("Recipe data contains a cycle", zap.Error(err))
package logger
