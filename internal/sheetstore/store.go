// Package sheetstore abstracts the single backing spreadsheet. Everything
// the rest of the service knows about Google Sheets goes through the Store
// interface, so tests run against an in-memory implementation.
package sheetstore

import (
	"context"
	"errors"
)

// ErrTabNotFound reports that a named tab does not exist in the
// spreadsheet. Repositories recognize it specifically and self-heal by
// creating the tab with its header row.
var ErrTabNotFound = errors.New("sheet tab not found")

// Store is the spreadsheet backend contract. Spans use A1 notation without
// the tab prefix ("A:D", "A2:AM", "A5:AM5").
type Store interface {
	// ReadRange returns the rectangular cell range as strings. Trailing
	// empty cells may be absent, so rows are ragged.
	ReadRange(ctx context.Context, tab, span string) ([][]string, error)

	// UpdateRange overwrites the given range with rows.
	UpdateRange(ctx context.Context, tab, span string, rows [][]string) error

	// AppendRow inserts a row at the end of the tab's table.
	AppendRow(ctx context.Context, tab string, row []string) error

	// ListTabs returns all tab titles in spreadsheet order.
	ListTabs(ctx context.Context) ([]string, error)

	// CreateTab adds a new tab, writing header as row 1 when non-empty.
	CreateTab(ctx context.Context, tab string, header []string) error
}

// Factory builds a Store bound to one caller's OAuth access token. The
// spreadsheet is accessed with the caller's own credentials on every
// request; the server holds no credentials of its own.
type Factory interface {
	ForToken(token string) Store
}
