package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/pdv-survey-api/internal/config"
	"github.com/pdv-survey-api/internal/models"
	"github.com/pdv-survey-api/internal/sheetstore"
)

// permissionRepo reads and writes the permissions tab (columns A-D: email,
// comma-joined ID list, assigned sheet, level). Row 1 is the header.
type permissionRepo struct {
	store sheetstore.Store
	cfg   *config.SheetsConfig
}

// NewPermissionRepo creates a PermissionRepository over the given store
func NewPermissionRepo(store sheetstore.Store, cfg *config.SheetsConfig) PermissionRepository {
	return &permissionRepo{store: store, cfg: cfg}
}

// Get finds the record for an email via case-insensitive linear scan. A
// missing record resolves to the default (level 1, nothing granted). A
// missing tab is bootstrapped with its header and resolves the same way.
func (r *permissionRepo) Get(ctx context.Context, email string) (*models.PermissionRecord, error) {
	rows, err := r.readAll(ctx)
	if err != nil {
		return nil, err
	}
	want := strings.ToLower(strings.TrimSpace(email))
	for _, row := range rows {
		rec := models.ParsePermissionRow(row)
		if rec != nil && strings.ToLower(rec.Email) == want {
			return rec, nil
		}
	}
	return models.DefaultPermissions(email), nil
}

// All returns every record in the tab, skipping the header row and rows
// with an empty email cell.
func (r *permissionRepo) All(ctx context.Context) ([]models.PermissionRecord, error) {
	rows, err := r.readAll(ctx)
	if err != nil {
		return nil, err
	}
	records := make([]models.PermissionRecord, 0, len(rows))
	for i, row := range rows {
		if i == 0 {
			continue // header
		}
		if rec := models.ParsePermissionRow(row); rec != nil {
			records = append(records, *rec)
		}
	}
	return records, nil
}

// Save upserts one record. When the email already exists its physical row
// is overwritten in place and the stored level is preserved: the level can
// only be changed by editing the sheet directly, never through the API.
func (r *permissionRepo) Save(ctx context.Context, email string, allowedIDs []string, assignedSheet string, level models.Level) error {
	rows, err := r.readAll(ctx)
	if err != nil {
		return err
	}

	want := strings.ToLower(strings.TrimSpace(email))
	rowNumber := 0
	effectiveLevel := level
	for i := 1; i < len(rows); i++ {
		rec := models.ParsePermissionRow(rows[i])
		if rec != nil && strings.ToLower(rec.Email) == want {
			rowNumber = i + 1 // 1-based, row 1 is the header
			effectiveLevel = rec.Level
			break
		}
	}

	record := models.PermissionRecord{
		Email:         email,
		AllowedIDs:    allowedIDs,
		AssignedSheet: assignedSheet,
		Level:         effectiveLevel,
	}

	if rowNumber > 0 {
		span := fmt.Sprintf("A%d:D%d", rowNumber, rowNumber)
		return r.store.UpdateRange(ctx, r.cfg.PermissionsSheet, span, [][]string{record.Row()})
	}
	return r.store.AppendRow(ctx, r.cfg.PermissionsSheet, record.Row())
}

// readAll fetches columns A-D, creating the tab on first use.
func (r *permissionRepo) readAll(ctx context.Context) ([][]string, error) {
	rows, err := r.store.ReadRange(ctx, r.cfg.PermissionsSheet, "A:D")
	if errors.Is(err, sheetstore.ErrTabNotFound) {
		if createErr := r.store.CreateTab(ctx, r.cfg.PermissionsSheet, models.PermissionsHeader); createErr != nil {
			return nil, createErr
		}
		return [][]string{models.PermissionsHeader}, nil
	}
	if err != nil {
		return nil, err
	}
	return rows, nil
}
