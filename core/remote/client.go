package remote

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"tataru/core/models"
	"tataru/core/utils"

	"github.com/tidwall/gjson"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

// maxBody caps response bodies read from the remote APIs.
const maxBody = 4 << 20

// Client implements Source over XIVAPI (items, recipes) and Universalis (prices).
type Client struct {
	cfg    Config
	http   *http.Client
	logger *zap.Logger
	group  singleflight.Group
	now    func() time.Time
}

var _ Source = (*Client)(nil)

// NewClient creates a Client. A nil httpClient selects a default client.
func NewClient(cfg Config, httpClient *http.Client, logger *zap.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{cfg: cfg, http: httpClient, logger: logger, now: time.Now}
}

// FetchByID fetches the item row and its recipe concurrently.
func (c *Client) FetchByID(ctx context.Context, id int) (models.Item, error) {
	if id <= 0 {
		return models.Item{}, ErrNotFound
	}
	v, err := c.shared(ctx, "id:"+strconv.Itoa(id), func(ctx context.Context) (any, error) {
		return c.fetchItem(ctx, id)
	})
	if err != nil {
		return models.Item{}, err
	}
	return v.(models.Item).Clone(), nil
}

// FetchByExactName searches the Item sheet and keeps only an exact (case-insensitive) match.
func (c *Client) FetchByExactName(ctx context.Context, name string) (models.Item, error) {
	key := utils.NormalizeName(name)
	if key == "" {
		return models.Item{}, ErrNotFound
	}
	v, err := c.shared(ctx, "name:"+key, func(ctx context.Context) (any, error) {
		q := url.Values{}
		q.Set("sheets", "Item")
		q.Set("query", fmt.Sprintf("Name=%q", strings.TrimSpace(name)))
		q.Set("fields", itemFields)
		q.Set("limit", "10")
		body, err := c.get(ctx, c.xivapi("/api/1/search?"+q.Encode()))
		if err != nil {
			return nil, err
		}
		if !gjson.ValidBytes(body) {
			return nil, fmt.Errorf("%w: malformed search response", ErrSourceUnavailable)
		}
		matchID := 0
		gjson.GetBytes(body, "results").ForEach(func(_, row gjson.Result) bool {
			if utils.NormalizeName(row.Get("fields.Name").String()) != key {
				return true
			}
			if id := int(row.Get("row_id").Int()); id > 0 && (matchID == 0 || id < matchID) {
				matchID = id
			}
			return true
		})
		if matchID == 0 {
			return nil, ErrNotFound
		}
		return c.fetchItem(ctx, matchID)
	})
	if err != nil {
		return models.Item{}, err
	}
	return v.(models.Item).Clone(), nil
}

// FetchPrice fetches the aggregated market data for one item. Prices are never shared
// between callers beyond a single in-flight request.
func (c *Client) FetchPrice(ctx context.Context, id int) (models.Price, error) {
	if id <= 0 {
		return models.Price{}, ErrNotFound
	}
	v, err := c.shared(ctx, "price:"+strconv.Itoa(id), func(ctx context.Context) (any, error) {
		u := fmt.Sprintf("%s/api/v2/aggregated/%s/%d",
			strings.TrimRight(c.cfg.UniversalisURL, "/"), url.PathEscape(c.cfg.World), id)
		body, err := c.get(ctx, u)
		if err != nil {
			return nil, err
		}
		return parseAggregated(body, id, c.cfg.World, c.now().UTC())
	})
	if err != nil {
		return models.Price{}, err
	}
	return v.(models.Price).Clone(), nil
}

func (c *Client) fetchItem(ctx context.Context, id int) (models.Item, error) {
	var (
		item      models.Item
		recipe    *models.Recipe
		itemErr   error
		recipeErr error
	)
	// Both requests always run to completion so that the item outcome decides
	// between NotFound and unavailability.
	var g errgroup.Group
	g.Go(func() error {
		body, err := c.get(ctx, c.xivapi(fmt.Sprintf("/api/1/sheet/Item/%d?fields=%s", id, url.QueryEscape(itemFields))))
		if err != nil {
			itemErr = err
			return nil
		}
		if !gjson.ValidBytes(body) {
			itemErr = fmt.Errorf("%w: malformed item response", ErrSourceUnavailable)
			return nil
		}
		item, itemErr = parseItemRow(gjson.ParseBytes(body), c.cfg.XIVAPIURL)
		return nil
	})
	g.Go(func() error {
		q := url.Values{}
		q.Set("sheets", "Recipe")
		q.Set("query", fmt.Sprintf("ItemResult=%d", id))
		q.Set("fields", recipeFields)
		q.Set("limit", "1")
		body, err := c.get(ctx, c.xivapi("/api/1/search?"+q.Encode()))
		if errors.Is(err, ErrNotFound) {
			return nil
		}
		if err != nil {
			recipeErr = err
			return nil
		}
		recipe, recipeErr = parseRecipeSearch(body, id)
		return nil
	})
	_ = g.Wait()

	if itemErr != nil {
		return models.Item{}, itemErr
	}
	if recipeErr != nil {
		return models.Item{}, recipeErr
	}
	item.Recipe = recipe
	item.Hydrated = true
	c.logger.Debug("Fetched item from source", zap.Int("id", id), zap.String("name", item.Name), zap.Bool("craftable", item.Craftable()))
	return item, nil
}

// shared collapses concurrent identical calls and bounds them by the configured timeout.
// The shared call is detached from any single caller's cancellation; each caller
// still returns as soon as its own context is done.
func (c *Client) shared(ctx context.Context, key string, fn func(context.Context) (any, error)) (any, error) {
	ch := c.group.DoChan(key, func() (any, error) {
		callCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.cfg.Timeout())
		defer cancel()
		return fn(callCtx)
	})
	select {
	case res := <-ch:
		return res.Val, res.Err
	case <-ctx.Done():
		return nil, fmt.Errorf("%w: %v", ErrSourceUnavailable, ctx.Err())
	}
}

func (c *Client) xivapi(path string) string {
	return strings.TrimRight(c.cfg.XIVAPIURL, "/") + path
}

// get performs a GET and classifies the outcome. 404 maps to ErrNotFound, every
// other failure wraps ErrSourceUnavailable.
func (c *Client) get(ctx context.Context, u string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}
	req.Header.Set("Accept", "application/json")
	if c.cfg.UserAgent != "" {
		req.Header.Set("User-Agent", c.cfg.UserAgent)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			c.logger.Warn("Source request timed out", zap.String("url", u))
		} else {
			c.logger.Warn("Source request failed", zap.String("url", u), zap.Error(err))
		}
		return nil, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, ErrNotFound
	case resp.StatusCode == http.StatusTooManyRequests:
		c.logger.Warn("Source rate limited", zap.String("url", u))
		return nil, fmt.Errorf("%w: rate limited", ErrSourceUnavailable)
	case resp.StatusCode >= 400:
		c.logger.Warn("Source returned error status", zap.String("url", u), zap.Int("status", resp.StatusCode))
		return nil, fmt.Errorf("%w: status %d", ErrSourceUnavailable, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %v", ErrSourceUnavailable, err)
	}
	return body, nil
}
