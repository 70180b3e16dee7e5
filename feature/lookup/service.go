package lookup

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"tataru/core/fuzzy"
	"tataru/core/models"
	"tataru/core/remote"
	"tataru/core/store"
	"tataru/core/utils"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Mode selects what a lookup must guarantee about the returned record.
type Mode int

const (
	// ModeSearch serves cached data when present.
	ModeSearch Mode = iota
	// ModePrice always refreshes the market price from the source.
	ModePrice
)

// Origin tells where the record of a result came from.
type Origin string

const (
	OriginCache  Origin = "cache"
	OriginRemote Origin = "remote"
)

// Result is a resolved item.
type Result struct {
	Item models.Item `json:"item"`
	// Origin is remote when the record had to be fetched or refreshed.
	Origin Origin `json:"origin"`
	// Fuzzy is true when the name query matched approximately.
	Fuzzy bool    `json:"fuzzy"`
	Score float64 `json:"score,omitempty"`
	// Related lists other close names for search summaries.
	Related []fuzzy.Match `json:"related,omitempty"`
}

// Service resolves user queries to items, using the local store first and the
// remote source on misses.
type Service struct {
	store    *store.Store
	source   remote.Source
	resolver *fuzzy.Resolver
	cfg      Config
	logger   *zap.Logger
	flight   singleflight.Group
}

// NewService creates a lookup service.
func NewService(st *store.Store, source remote.Source, cfg Config, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		store:    st,
		source:   source,
		resolver: fuzzy.NewResolver(fuzzy.ScorerByName(cfg.Scorer), cfg.FuzzyThreshold, cfg.Suggestions),
		cfg:      cfg,
		logger:   logger,
	}
}

// Logger returns the service logger.
func (s *Service) Logger() *zap.Logger {
	return s.logger
}

// Store returns the backing item store.
func (s *Service) Store() *store.Store {
	return s.store
}

// Search resolves a query and lists related names.
func (s *Service) Search(ctx context.Context, query string) (*Result, error) {
	res, err := s.Resolve(ctx, query, ModeSearch)
	if err != nil {
		return nil, err
	}
	if _, isID := utils.ParseID(query); !isID {
		for _, m := range s.resolver.Rank(query, s.store.AllNames(), s.resolver.Suggestions+1) {
			if m.ID != res.Item.ID && m.Score >= s.resolver.Threshold {
				res.Related = append(res.Related, m)
			}
		}
	}
	return res, nil
}

// Price resolves a query and refreshes its market price.
func (s *Service) Price(ctx context.Context, query string) (*Result, error) {
	return s.Resolve(ctx, query, ModePrice)
}

// Resolve runs a query through ID or name resolution.
//
// Numeric queries are item IDs. Anything else is matched against cached names;
// when that fails the source is asked for an exact name before giving up.
func (s *Service) Resolve(ctx context.Context, query string, mode Mode) (*Result, error) {
	q := strings.TrimSpace(query)
	if q == "" {
		return nil, ErrInvalidQuery
	}

	var (
		res *Result
		err error
	)
	if id, ok := utils.ParseID(q); ok {
		res, err = s.byID(ctx, id)
	} else {
		res, err = s.byName(ctx, q)
	}
	if err != nil {
		return nil, err
	}

	if mode == ModePrice {
		if err := s.refreshPrice(ctx, res); err != nil {
			return nil, err
		}
	}
	return res, nil
}

// ResolveID returns the item with the given ID, fetching and caching it on a miss.
func (s *Service) ResolveID(ctx context.Context, id int) (models.Item, error) {
	res, err := s.byID(ctx, id)
	if err != nil {
		return models.Item{}, err
	}
	return res.Item, nil
}

// SetEmoji validates and stores an emoji annotation. Surrounding colons are
// stripped; the result must be 1 to 24 characters without whitespace.
func (s *Service) SetEmoji(ctx context.Context, id int, emoji string) (models.Item, error) {
	e, err := ValidateEmoji(emoji)
	if err != nil {
		return models.Item{}, err
	}
	it, err := s.store.SetField(ctx, id, store.FieldEmoji, e)
	if errors.Is(err, store.ErrNotFound) {
		return models.Item{}, fmt.Errorf("%w: id %d", ErrItemNotFound, id)
	}
	if err != nil {
		return models.Item{}, err
	}
	s.logger.Info("Emoji updated", zap.Int("id", id), zap.String("emoji", e))
	return it, nil
}

// ValidateEmoji normalizes an emoji shortcode.
func ValidateEmoji(emoji string) (string, error) {
	e := utils.TrimEmoji(emoji)
	switch {
	case e == "":
		return "", fmt.Errorf("%w: empty", ErrInvalidEmoji)
	case len([]rune(e)) > 24:
		return "", fmt.Errorf("%w: longer than 24 characters", ErrInvalidEmoji)
	case strings.ContainsAny(e, " \t\r\n:"):
		return "", fmt.Errorf("%w: %q", ErrInvalidEmoji, e)
	}
	return e, nil
}

func (s *Service) byID(ctx context.Context, id int) (*Result, error) {
	cached, err := s.store.Get(id)
	if err == nil {
		if cached.Hydrated {
			return &Result{Item: cached, Origin: OriginCache}, nil
		}
		return s.hydrate(ctx, cached)
	}
	if !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}

	// Concurrent misses for the same id share one fetch. The store is checked
	// again inside the flight because an earlier flight may have just written it.
	// The flight outlives any single caller; the source bounds it with its own timeout.
	flightCtx := context.WithoutCancel(ctx)
	ch := s.flight.DoChan("id:"+strconv.Itoa(id), func() (any, error) {
		if cached, err := s.store.Get(id); err == nil {
			return &Result{Item: cached, Origin: OriginCache}, nil
		}
		fresh, err := s.source.FetchByID(flightCtx, id)
		if err != nil {
			return nil, s.sourceError(err, fmt.Sprintf("id %d", id))
		}
		return s.writeBack(flightCtx, fresh)
	})
	var out singleflight.Result
	select {
	case out = <-ch:
	case <-ctx.Done():
		return nil, fmt.Errorf("%w: %w", ErrTemporaryFailure, ctx.Err())
	}
	if out.Err != nil {
		return nil, out.Err
	}
	res := *out.Val.(*Result)
	res.Item = res.Item.Clone()
	return &res, nil
}

func (s *Service) byName(ctx context.Context, q string) (*Result, error) {
	match, resolveErr := s.resolver.Resolve(q, s.store.AllNames())
	if resolveErr == nil {
		res, err := s.byID(ctx, match.ID)
		if err != nil {
			return nil, err
		}
		res.Score = match.Score
		res.Fuzzy = utils.NormalizeName(q) != utils.NormalizeName(match.Name)
		return res, nil
	}

	s.logger.Debug("No local name match, asking source", zap.String("query", q), zap.Error(resolveErr))
	fresh, err := s.source.FetchByExactName(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", s.sourceError(err, fmt.Sprintf("%q", q)), resolveErr)
	}
	return s.writeBack(ctx, fresh)
}

// hydrate completes a legacy record from the source. The cached record is served
// as is when the source cannot help.
func (s *Service) hydrate(ctx context.Context, cached models.Item) (*Result, error) {
	fresh, err := s.source.FetchByID(ctx, cached.ID)
	if err != nil {
		s.logger.Warn("Serving unhydrated record", zap.Int("id", cached.ID), zap.Error(err))
		return &Result{Item: cached, Origin: OriginCache}, nil
	}
	it, err := s.store.Upsert(ctx, cached.Merge(fresh))
	if err != nil {
		return nil, err
	}
	return &Result{Item: it, Origin: OriginRemote}, nil
}

func (s *Service) writeBack(ctx context.Context, fresh models.Item) (*Result, error) {
	if cached, err := s.store.Get(fresh.ID); err == nil {
		fresh = cached.Merge(fresh)
	}
	it, err := s.store.Upsert(ctx, fresh)
	if err != nil {
		return nil, err
	}
	s.logger.Info("Cached item from source", zap.Int("id", it.ID), zap.String("name", it.Name))
	return &Result{Item: it, Origin: OriginRemote}, nil
}

func (s *Service) refreshPrice(ctx context.Context, res *Result) error {
	p, err := s.source.FetchPrice(ctx, res.Item.ID)
	switch {
	case errors.Is(err, remote.ErrNotFound):
		return fmt.Errorf("%w: %s", ErrNoMarketData, res.Item.Name)
	case err != nil:
		s.logger.Warn("Price refresh failed", zap.Int("id", res.Item.ID), zap.Error(err))
		return fmt.Errorf("%w: %v", ErrTemporaryFailure, err)
	}
	it, err := s.store.SetField(ctx, res.Item.ID, store.FieldPrice, p)
	if err != nil {
		return err
	}
	res.Item = it
	res.Origin = OriginRemote
	return nil
}

// sourceError translates source failures into lookup errors.
func (s *Service) sourceError(err error, what string) error {
	switch {
	case errors.Is(err, remote.ErrNotFound):
		return fmt.Errorf("%w: %s", ErrItemNotFound, what)
	case errors.Is(err, remote.ErrSourceUnavailable):
		s.logger.Warn("Source unavailable", zap.String("query", what), zap.Error(err))
		return fmt.Errorf("%w: %v", ErrTemporaryFailure, err)
	default:
		return err
	}
}
