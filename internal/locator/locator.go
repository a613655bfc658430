// Package locator maps logical row identifiers (the value in column A) to
// physical sheet coordinates. The scan is performed fresh on every call:
// the table may have been rewritten between requests and the spreadsheet is
// the only source of truth.
package locator

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/pdv-survey-api/internal/apperr"
	"github.com/pdv-survey-api/internal/sheetstore"
)

// Location is the physical position of a row: tab name plus 1-based row
// number (the header is row 1).
type Location struct {
	Sheet string
	Row   int
}

// NotFoundDetails is attached to locate misses so the caller can
// self-diagnose stale data. Field names match what the dashboard expects.
type NotFoundDetails struct {
	SearchedID string   `json:"searchedId"`
	TotalRows  int      `json:"totalRows"`
	SheetName  string   `json:"sheetName,omitempty"`
	Tabs       []string `json:"searchedSheets,omitempty"`
}

// Locate scans the given tabs in order for the first row whose column-A
// value case-insensitively equals rowID, skipping each tab's header row.
// A miss across all tabs is a NotFound outcome, not a server error.
func Locate(ctx context.Context, store sheetstore.Store, tabs []string, rowID string) (*Location, error) {
	want := strings.ToLower(strings.TrimSpace(rowID))
	totalRows := 0

	for _, tab := range tabs {
		rows, err := store.ReadRange(ctx, tab, "A2:A")
		if err != nil {
			return nil, err
		}
		totalRows += len(rows)
		for i, row := range rows {
			if len(row) == 0 {
				continue
			}
			if strings.ToLower(strings.TrimSpace(row[0])) == want {
				return &Location{Sheet: tab, Row: i + 2}, nil
			}
		}
	}

	details := NotFoundDetails{SearchedID: rowID, TotalRows: totalRows}
	if len(tabs) == 1 {
		details.SheetName = tabs[0]
	} else {
		details.Tabs = tabs
	}
	msg := fmt.Sprintf("No se encontró el registro con ID %q en el Sheet", rowID)
	return nil, apperr.New(apperr.NotFound, msg).WithDetails(details)
}

// NextID allocates the next PDV identifier: one more than the highest
// numeric value in the tab's ID column, never below floor+1. Non-numeric
// cells count as zero. This is max+1, not a sequence generator; the caller
// serializes allocation per tab.
func NextID(ctx context.Context, store sheetstore.Store, tab string, floor int) (int, error) {
	rows, err := store.ReadRange(ctx, tab, "A:A")
	if err != nil {
		return 0, err
	}
	maxID := floor
	for i, row := range rows {
		if i == 0 || len(row) == 0 {
			continue // header
		}
		if id, err := strconv.Atoi(strings.TrimSpace(row[0])); err == nil && id > maxID {
			maxID = id
		}
	}
	return maxID + 1, nil
}
