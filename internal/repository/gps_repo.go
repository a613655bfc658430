package repository

import (
	"context"
	"errors"

	"github.com/pdv-survey-api/internal/config"
	"github.com/pdv-survey-api/internal/models"
	"github.com/pdv-survey-api/internal/sheetstore"
)

type gpsRepo struct {
	store sheetstore.Store
	cfg   *config.SheetsConfig
}

// NewGPSRepo creates a GPSRepository over the given store
func NewGPSRepo(store sheetstore.Store, cfg *config.SheetsConfig) GPSRepository {
	return &gpsRepo{store: store, cfg: cfg}
}

// Append writes one GPS fix, creating the log tab with its header when the
// spreadsheet has never logged before.
func (r *gpsRepo) Append(ctx context.Context, row []string) error {
	_, err := r.store.ReadRange(ctx, r.cfg.GPSLogSheet, "A1")
	if errors.Is(err, sheetstore.ErrTabNotFound) {
		if err := r.store.CreateTab(ctx, r.cfg.GPSLogSheet, models.GPSLogHeader); err != nil {
			return err
		}
	} else if err != nil {
		return err
	}
	return r.store.AppendRow(ctx, r.cfg.GPSLogSheet, row)
}

// All returns every parseable log entry. A missing tab means nobody has
// logged yet and yields an empty result, not an error.
func (r *gpsRepo) All(ctx context.Context) ([]models.GPSLog, error) {
	rows, err := r.store.ReadRange(ctx, r.cfg.GPSLogSheet, "A:G")
	if errors.Is(err, sheetstore.ErrTabNotFound) {
		return []models.GPSLog{}, nil
	}
	if err != nil {
		return nil, err
	}
	logs := make([]models.GPSLog, 0, len(rows))
	for i, row := range rows {
		if i == 0 {
			continue // header
		}
		if log := models.ParseGPSLogRow(i-1, row); log != nil {
			logs = append(logs, *log)
		}
	}
	return logs, nil
}
