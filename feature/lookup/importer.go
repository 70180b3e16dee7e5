package lookup

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"tataru/core/models"
	"tataru/core/utils"

	"go.uber.org/zap"
)

// legacyColumns is the header of the legacy items.csv file.
var legacyColumns = []string{"item_name", "item_id", "emoji", "category", "icon_url"}

// ImportReport summarizes an Import run.
type ImportReport struct {
	Rows    int `json:"rows"`
	Written int `json:"written"`
	Skipped int `json:"skipped"`
}

// Import loads a legacy items.csv (item_name,item_id,emoji,category,icon_url).
// New items are stored unhydrated. Existing items only gain a missing emoji.
func (s *Service) Import(ctx context.Context, r io.Reader) (ImportReport, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	var (
		report ImportReport
		batch  []models.Item
		seen   = map[int]bool{}
	)
	for line := 1; ; line++ {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return report, fmt.Errorf("failed to read line %d: %w", line, err)
		}
		if line == 1 && isLegacyHeader(row) {
			continue
		}
		report.Rows++

		it, ok := parseLegacyRow(row)
		if !ok || seen[it.ID] {
			report.Skipped++
			continue
		}
		seen[it.ID] = true

		if cached, err := s.store.Get(it.ID); err == nil {
			if cached.Emoji != "" || it.Emoji == "" {
				report.Skipped++
				continue
			}
			cached.Emoji = it.Emoji
			it = cached
		}
		batch = append(batch, it)
	}

	n, err := s.store.UpsertMany(ctx, batch)
	if err != nil {
		return report, err
	}
	report.Written = n
	report.Skipped += len(batch) - n
	s.logger.Info("Legacy import finished",
		zap.Int("rows", report.Rows),
		zap.Int("written", report.Written),
		zap.Int("skipped", report.Skipped),
	)
	return report, nil
}

func isLegacyHeader(row []string) bool {
	return len(row) > 0 && strings.EqualFold(strings.TrimSpace(row[0]), legacyColumns[0])
}

func parseLegacyRow(row []string) (models.Item, bool) {
	if len(row) < 2 {
		return models.Item{}, false
	}
	id, ok := utils.ParseID(row[1])
	name := strings.TrimSpace(row[0])
	if !ok || id <= 0 || name == "" {
		return models.Item{}, false
	}
	it := models.Item{ID: id, Name: name}
	if len(row) > 2 {
		if e, err := ValidateEmoji(row[2]); err == nil {
			it.Emoji = e
		}
	}
	if len(row) > 3 {
		it.Category = strings.TrimSpace(row[3])
	}
	if len(row) > 4 {
		it.IconURL = strings.TrimSpace(row[4])
	}
	return it, true
}
