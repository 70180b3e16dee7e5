package lookup

import (
	"context"
	"errors"
	"sync/atomic"

	"tataru/core/models"
	"tataru/core/remote"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// HydrateReport summarizes a HydrateAll run.
type HydrateReport struct {
	Checked     int `json:"checked"`
	Hydrated    int `json:"hydrated"`
	Missing     int `json:"missing"`
	Unavailable int `json:"unavailable"`
}

// HydrateAll completes every unhydrated record from the source with bounded
// concurrency. Source failures are counted and skipped; a storage failure stops the run.
func (s *Service) HydrateAll(ctx context.Context) (HydrateReport, error) {
	var pending []models.Item
	for _, it := range s.store.All() {
		if !it.Hydrated {
			pending = append(pending, it)
		}
	}

	var hydrated, missing, unavailable atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	limit := s.cfg.HydrateConcurrency
	if limit <= 0 {
		limit = 4
	}
	g.SetLimit(limit)

	for _, it := range pending {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			fresh, err := s.source.FetchByID(gctx, it.ID)
			switch {
			case errors.Is(err, remote.ErrNotFound):
				missing.Add(1)
				return nil
			case err != nil:
				unavailable.Add(1)
				return nil
			}
			if _, err := s.store.Update(gctx, it.ID, func(cur *models.Item) error {
				*cur = cur.Merge(fresh)
				return nil
			}); err != nil {
				return err
			}
			hydrated.Add(1)
			return nil
		})
	}
	err := g.Wait()

	report := HydrateReport{
		Checked:     len(pending),
		Hydrated:    int(hydrated.Load()),
		Missing:     int(missing.Load()),
		Unavailable: int(unavailable.Load()),
	}
	s.logger.Info("Hydrate finished",
		zap.Int("checked", report.Checked),
		zap.Int("hydrated", report.Hydrated),
		zap.Int("missing", report.Missing),
		zap.Int("unavailable", report.Unavailable),
	)
	if err == nil {
		err = ctx.Err()
	}
	return report, err
}
