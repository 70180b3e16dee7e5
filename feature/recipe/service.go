package recipe

import (
	"context"

	"tataru/feature/lookup"

	"go.uber.org/zap"
)

// Report is the answer to a recipe query.
type Report struct {
	Lookup    *lookup.Result `json:"lookup"`
	Tree      *Tree          `json:"tree"`
	Materials []Material     `json:"materials"`
}

// Service answers recipe queries.
type Service struct {
	lookup   *lookup.Service
	expander *Expander
	logger   *zap.Logger
}

// NewService creates a recipe service on top of the lookup service.
func NewService(lk *lookup.Service, cfg lookup.Config, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		lookup:   lk,
		expander: NewExpander(lk, cfg.RecipeMaxDepth, cfg.RecipeConcurrency),
		logger:   logger,
	}
}

// Recipe resolves a query like a search and expands the item's recipe.
func (s *Service) Recipe(ctx context.Context, query string, opts Options) (*Report, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	res, err := s.lookup.Search(ctx, query)
	if err != nil {
		return nil, err
	}
	tree, err := s.expander.Expand(ctx, res.Item.ID, opts)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("Recipe expanded",
		zap.Int("id", res.Item.ID),
		zap.Bool("self_reliance", opts.SelfReliance),
		zap.Int("depth", tree.Depth()),
	)
	return &Report{Lookup: res, Tree: tree, Materials: tree.Materials()}, nil
}
