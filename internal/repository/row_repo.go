package repository

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/pdv-survey-api/internal/config"
	"github.com/pdv-survey-api/internal/models"
	"github.com/pdv-survey-api/internal/sheetstore"
)

// dataSpan covers every column a survey worksheet uses (A through AM).
const dataSpan = "A:AM"

type rowRepo struct {
	store sheetstore.Store
	cfg   *config.SheetsConfig
}

// NewRowRepo creates a RowRepository over the given store
func NewRowRepo(store sheetstore.Store, cfg *config.SheetsConfig) RowRepository {
	return &rowRepo{store: store, cfg: cfg}
}

// Catalog returns all tabs except the hidden infrastructure ones, in
// spreadsheet order.
func (r *rowRepo) Catalog(ctx context.Context) ([]string, error) {
	tabs, err := r.store.ListTabs(ctx)
	if err != nil {
		return nil, err
	}
	catalog := make([]string, 0, len(tabs))
	for _, tab := range tabs {
		if !r.cfg.IsHidden(tab) {
			catalog = append(catalog, tab)
		}
	}
	return catalog, nil
}

// WorksheetTabs returns the tabs eligible for the combined view and for
// statistics: everything except infrastructure tabs and the legacy main tab.
func (r *rowRepo) WorksheetTabs(ctx context.Context) ([]string, error) {
	tabs, err := r.store.ListTabs(ctx)
	if err != nil {
		return nil, err
	}
	eligible := make([]string, 0, len(tabs))
	for _, tab := range tabs {
		if !r.cfg.IsExcludedFromStats(tab) {
			eligible = append(eligible, tab)
		}
	}
	return eligible, nil
}

// DefaultTab resolves the data tab served when no tab is requested: the
// configured default, else the first catalog tab, else the first tab of the
// spreadsheet.
func (r *rowRepo) DefaultTab(ctx context.Context) (string, error) {
	if r.cfg.DefaultSheet != "" {
		return r.cfg.DefaultSheet, nil
	}
	catalog, err := r.Catalog(ctx)
	if err != nil {
		return "", err
	}
	if len(catalog) > 0 {
		return catalog[0], nil
	}
	tabs, err := r.store.ListTabs(ctx)
	if err != nil {
		return "", err
	}
	if len(tabs) == 0 {
		return "", fmt.Errorf("spreadsheet has no tabs")
	}
	return tabs[0], nil
}

// Data returns the full contents of one tab, header row included.
func (r *rowRepo) Data(ctx context.Context, tab string) ([][]string, error) {
	return r.store.ReadRange(ctx, tab, dataSpan)
}

// Combined merges the given tabs into one synthetic view: the first tab's
// header plus every data row, each row extended with the tab it came from,
// sorted by numeric ID. Tabs that fail to read are skipped; the view is a
// best-effort aggregation, same as the dashboard it replaces.
func (r *rowRepo) Combined(ctx context.Context, tabs []string) ([][]string, error) {
	var headers []string
	var combined [][]string

	for _, tab := range tabs {
		data, err := r.store.ReadRange(ctx, tab, dataSpan)
		if err != nil {
			continue
		}
		if len(data) == 0 {
			continue
		}
		if headers == nil {
			headers = append(append([]string{}, data[0]...), models.SheetNameColumn)
		}
		for _, row := range data[1:] {
			combined = append(combined, append(append([]string{}, row...), tab))
		}
	}

	sort.SliceStable(combined, func(i, j int) bool {
		return numericID(combined[i]) < numericID(combined[j])
	})

	if headers == nil {
		return [][]string{}, nil
	}
	return append([][]string{headers}, combined...), nil
}

// IDs returns the trimmed, non-empty column-A values of a tab, header
// excluded.
func (r *rowRepo) IDs(ctx context.Context, tab string) ([]string, error) {
	rows, err := r.store.ReadRange(ctx, tab, "A:A")
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(rows))
	for i, row := range rows {
		if i == 0 || len(row) == 0 {
			continue
		}
		if id := strings.TrimSpace(row[0]); id != "" {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

// UpdateRow overwrites one physical row across the full data span.
func (r *rowRepo) UpdateRow(ctx context.Context, tab string, rowNumber int, values []string) error {
	span := fmt.Sprintf("A%d:AM%d", rowNumber, rowNumber)
	return r.store.UpdateRange(ctx, tab, span, [][]string{values})
}

// AppendPDV appends a new registration row to the ALTA PDV tab.
func (r *rowRepo) AppendPDV(ctx context.Context, row []string) error {
	return r.store.AppendRow(ctx, r.cfg.AltaPDVSheet, row)
}

// EnsureAltaTab creates the ALTA PDV tab with its header when missing.
func (r *rowRepo) EnsureAltaTab(ctx context.Context) error {
	_, err := r.store.ReadRange(ctx, r.cfg.AltaPDVSheet, "A1")
	if errors.Is(err, sheetstore.ErrTabNotFound) {
		return r.store.CreateTab(ctx, r.cfg.AltaPDVSheet, models.AltaPDVHeader)
	}
	return err
}

func numericID(row []string) int {
	if len(row) == 0 {
		return 0
	}
	n, _ := strconv.Atoi(strings.TrimSpace(row[0]))
	return n
}
