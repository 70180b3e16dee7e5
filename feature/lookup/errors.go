package lookup

import (
	"errors"

	"tataru/core/fuzzy"

	"github.com/gofiber/fiber/v2"
)

var (
	// ErrItemNotFound means neither the cache nor the source knows the item.
	ErrItemNotFound = errors.New("item not found")
	// ErrTemporaryFailure means the source could not be reached; retry later.
	ErrTemporaryFailure = errors.New("temporary failure, try again later")
	// ErrInvalidQuery is returned for empty queries.
	ErrInvalidQuery = errors.New("invalid query")
	// ErrInvalidEmoji is returned when an emoji annotation fails validation.
	ErrInvalidEmoji = errors.New("invalid emoji")
	// ErrNoMarketData means the market has no data for a resolved item.
	ErrNoMarketData = errors.New("no market data for item")
)

// StatusFor maps a lookup error to an HTTP status.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, ErrInvalidQuery), errors.Is(err, ErrInvalidEmoji):
		return fiber.StatusBadRequest
	case errors.Is(err, ErrTemporaryFailure):
		return fiber.StatusServiceUnavailable
	case errors.Is(err, fuzzy.ErrNoMatch):
		return fiber.StatusUnprocessableEntity
	case errors.Is(err, ErrItemNotFound), errors.Is(err, ErrNoMarketData):
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}

// ErrorBody renders an error with its near matches for JSON responses.
func ErrorBody(err error) fiber.Map {
	body := fiber.Map{"error": err.Error()}
	if sugg := fuzzy.Suggestions(err); len(sugg) > 0 {
		body["suggestions"] = sugg
	}
	return body
}
