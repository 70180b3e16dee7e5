package remote

import (
	"context"
	"errors"

	"tataru/core/models"
)

var (
	// ErrNotFound means the source answered authoritatively that the item does not exist.
	ErrNotFound = errors.New("item not found at source")
	// ErrSourceUnavailable covers transport failures, timeouts, rate limiting,
	// server errors and unreadable responses. It is never proof of absence.
	ErrSourceUnavailable = errors.New("source unavailable")
)

// Source fetches authoritative item records and market prices.
type Source interface {
	// FetchByID returns the full record, recipe included, for an item ID.
	FetchByID(ctx context.Context, id int) (models.Item, error)
	// FetchByExactName returns the record whose name matches exactly (case-insensitive).
	FetchByExactName(ctx context.Context, name string) (models.Item, error)
	// FetchPrice returns a fresh market snapshot for an item ID.
	FetchPrice(ctx context.Context, id int) (models.Price, error)
}
