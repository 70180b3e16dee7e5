package remote

import (
	"context"
	"errors"
	"strconv"

	"tataru/core/models"
	"tataru/core/utils"

	lru "github.com/hashicorp/golang-lru/v2"
)

// NotFoundCache remembers authoritative NotFound answers so repeated lookups of
// unknown ids or names skip the network. Successful records are not cached here
// (the local store owns them) and unavailability is never cached.
type NotFoundCache struct {
	cache  *lru.Cache[string, struct{}]
	source Source
}

var _ Source = (*NotFoundCache)(nil)

// NewNotFoundCache wraps source with an LRU of the given size.
func NewNotFoundCache(source Source, size int) (*NotFoundCache, error) {
	if size <= 0 {
		size = 1024
	}
	cache, err := lru.New[string, struct{}](size)
	if err != nil {
		return nil, err
	}
	return &NotFoundCache{cache: cache, source: source}, nil
}

func (c *NotFoundCache) FetchByID(ctx context.Context, id int) (models.Item, error) {
	key := "id:" + strconv.Itoa(id)
	if c.cache.Contains(key) {
		return models.Item{}, ErrNotFound
	}
	it, err := c.source.FetchByID(ctx, id)
	c.remember(key, err)
	return it, err
}

func (c *NotFoundCache) FetchByExactName(ctx context.Context, name string) (models.Item, error) {
	key := "name:" + utils.NormalizeName(name)
	if c.cache.Contains(key) {
		return models.Item{}, ErrNotFound
	}
	it, err := c.source.FetchByExactName(ctx, name)
	c.remember(key, err)
	return it, err
}

// FetchPrice is always forwarded; prices must be fresh on every request.
func (c *NotFoundCache) FetchPrice(ctx context.Context, id int) (models.Price, error) {
	return c.source.FetchPrice(ctx, id)
}

// Forget drops every remembered answer.
func (c *NotFoundCache) Forget() {
	c.cache.Purge()
}

// Len returns how many NotFound answers are remembered.
func (c *NotFoundCache) Len() int {
	return c.cache.Len()
}

func (c *NotFoundCache) remember(key string, err error) {
	if errors.Is(err, ErrNotFound) {
		c.cache.Add(key, struct{}{})
	}
}
