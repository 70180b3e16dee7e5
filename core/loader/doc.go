// Package loader registers the HTTP features of the server.
//
// A feature (lookup, recipe, integrity) is built around its service and
// implements Feature:
//
//	type Feature interface {
//	    Name() string
//	    IsEnabled() bool
//	    Load(app fiber.Router) error
//	}
//
// Manager keeps features in registration order. Registering a name twice
// replaces the earlier feature, and LoadAll skips disabled features and stops
// at the first one whose routes fail to load.
package loader
