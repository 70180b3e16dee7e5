package integrity

import (
	"context"
	"errors"
	"fmt"

	"tataru/core/models"
	"tataru/core/store"
	"tataru/feature/integrity/checks"

	"go.uber.org/zap"
)

// Resolver fetches an item into the cache by id.
type Resolver interface {
	ResolveID(ctx context.Context, id int) (models.Item, error)
}

// BackendReport describes the persistence backend of the store.
type BackendReport struct {
	Backend string               `json:"backend"`
	Schema  *checks.SchemaReport `json:"schema,omitempty"`
	Bucket  *checks.BucketReport `json:"bucket,omitempty"`
	Status  string               `json:"status"` // "ok", "error"
}

// Service handles integrity checks.
type Service struct {
	store    *store.Store
	resolver Resolver
	logger   *zap.Logger
}

// NewService creates a new integrity service. resolver may be nil, in which
// case dangling ingredients can be reported but not fixed.
func NewService(st *store.Store, resolver Resolver, logger *zap.Logger) *Service {
	return &Service{
		store:    st,
		resolver: resolver,
		logger:   logger,
	}
}

// CheckCache inspects the cached records.
func (s *Service) CheckCache() *checks.CacheReport {
	return checks.CheckCache(s.store)
}

// FixDangling fetches the missing recipe ingredients into the cache and
// returns the ids that were fetched.
func (s *Service) FixDangling(ctx context.Context, missing []int) ([]int, error) {
	if s.resolver == nil {
		return nil, errors.New("no item resolver configured")
	}

	fixed := []int{}
	var errs []error
	for _, id := range missing {
		if err := ctx.Err(); err != nil {
			return fixed, err
		}
		if _, err := s.resolver.ResolveID(ctx, id); err != nil {
			s.logger.Warn("Failed to fetch missing ingredient", zap.Int("id", id), zap.Error(err))
			errs = append(errs, fmt.Errorf("item %d: %w", id, err))
			continue
		}
		s.logger.Info("Fetched missing ingredient", zap.Int("id", id))
		fixed = append(fixed, id)
	}
	return fixed, errors.Join(errs...)
}

// CheckBackend inspects the persistence backend the store writes to.
func (s *Service) CheckBackend(ctx context.Context) (*BackendReport, error) {
	report := &BackendReport{Backend: s.store.Backend().Name(), Status: "ok"}

	switch b := s.store.Backend().(type) {
	case *store.DatabaseBackend:
		schema, err := checks.CheckSchema(b.DB())
		if err != nil {
			return nil, err
		}
		report.Schema = schema
		if !schema.Matched {
			report.Status = "error"
		}
	case *store.ObjectBackend:
		bucket, err := checks.CheckBucket(ctx, b.Client(), b.Bucket(), b.Key())
		if err != nil {
			return nil, err
		}
		report.Bucket = bucket
		report.Status = bucket.Status
	}
	return report, nil
}

// FixBackend repairs the backend layout: it migrates the database tables or
// creates the missing bucket. Other backends need no repair.
func (s *Service) FixBackend(ctx context.Context) error {
	switch b := s.store.Backend().(type) {
	case *store.DatabaseBackend:
		return b.Migrate(ctx)
	case *store.ObjectBackend:
		return checks.FixBucket(ctx, b.Client(), b.Bucket(), b.Region())
	}
	return nil
}

// Report runs every check and combines the results.
func (s *Service) Report(ctx context.Context) map[string]interface{} {
	report := make(map[string]interface{})
	report["cache"] = s.CheckCache()

	if backend, err := s.CheckBackend(ctx); err != nil {
		report["backend"] = map[string]interface{}{"status": "error", "error": err.Error()}
	} else {
		report["backend"] = backend
	}
	return report
}
