package sheetstore

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/oauth2"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// GoogleFactory builds Google Sheets stores for one spreadsheet document.
type GoogleFactory struct {
	spreadsheetID string
}

// NewGoogleFactory creates a factory bound to the backing spreadsheet.
func NewGoogleFactory(spreadsheetID string) *GoogleFactory {
	return &GoogleFactory{spreadsheetID: spreadsheetID}
}

// ForToken returns a Store that acts with the caller's access token.
func (f *GoogleFactory) ForToken(token string) Store {
	return &googleStore{spreadsheetID: f.spreadsheetID, token: token}
}

type googleStore struct {
	spreadsheetID string
	token         string
}

func (s *googleStore) service(ctx context.Context) (*sheets.Service, error) {
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: s.token})
	srv, err := sheets.NewService(ctx, option.WithTokenSource(ts))
	if err != nil {
		return nil, fmt.Errorf("creating sheets client: %w", err)
	}
	return srv, nil
}

func (s *googleStore) ReadRange(ctx context.Context, tab, span string) ([][]string, error) {
	srv, err := s.service(ctx)
	if err != nil {
		return nil, err
	}
	resp, err := srv.Spreadsheets.Values.Get(s.spreadsheetID, rangeRef(tab, span)).Context(ctx).Do()
	if err != nil {
		return nil, mapError(tab, err)
	}
	rows := make([][]string, 0, len(resp.Values))
	for _, raw := range resp.Values {
		row := make([]string, len(raw))
		for i, cell := range raw {
			if cell != nil {
				row[i] = fmt.Sprint(cell)
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func (s *googleStore) UpdateRange(ctx context.Context, tab, span string, rows [][]string) error {
	srv, err := s.service(ctx)
	if err != nil {
		return err
	}
	_, err = srv.Spreadsheets.Values.Update(s.spreadsheetID, rangeRef(tab, span), valueRange(rows)).
		ValueInputOption("USER_ENTERED").
		Context(ctx).Do()
	if err != nil {
		return mapError(tab, err)
	}
	return nil
}

func (s *googleStore) AppendRow(ctx context.Context, tab string, row []string) error {
	srv, err := s.service(ctx)
	if err != nil {
		return err
	}
	_, err = srv.Spreadsheets.Values.Append(s.spreadsheetID, rangeRef(tab, "A1"), valueRange([][]string{row})).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).Do()
	if err != nil {
		return mapError(tab, err)
	}
	return nil
}

func (s *googleStore) ListTabs(ctx context.Context) ([]string, error) {
	srv, err := s.service(ctx)
	if err != nil {
		return nil, err
	}
	meta, err := srv.Spreadsheets.Get(s.spreadsheetID).
		Fields("sheets.properties.title").
		Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("listing tabs: %w", err)
	}
	names := make([]string, 0, len(meta.Sheets))
	for _, sh := range meta.Sheets {
		if sh.Properties != nil && sh.Properties.Title != "" {
			names = append(names, sh.Properties.Title)
		}
	}
	return names, nil
}

func (s *googleStore) CreateTab(ctx context.Context, tab string, header []string) error {
	srv, err := s.service(ctx)
	if err != nil {
		return err
	}
	req := &sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{{
			AddSheet: &sheets.AddSheetRequest{
				Properties: &sheets.SheetProperties{Title: tab},
			},
		}},
	}
	if _, err := srv.Spreadsheets.BatchUpdate(s.spreadsheetID, req).Context(ctx).Do(); err != nil {
		return fmt.Errorf("creating tab %q: %w", tab, err)
	}
	if len(header) > 0 {
		return s.UpdateRange(ctx, tab, "A1", [][]string{header})
	}
	return nil
}

func valueRange(rows [][]string) *sheets.ValueRange {
	values := make([][]interface{}, len(rows))
	for i, row := range rows {
		cells := make([]interface{}, len(row))
		for j, c := range row {
			cells[j] = c
		}
		values[i] = cells
	}
	return &sheets.ValueRange{Values: values}
}

func rangeRef(tab, span string) string {
	return fmt.Sprintf("'%s'!%s", tab, span)
}

// mapError converts the Sheets API's "no such tab" signature (HTTP 400 with
// an "Unable to parse range" message) into ErrTabNotFound so callers can
// bootstrap the tab instead of failing.
func mapError(tab string, err error) error {
	var gErr *googleapi.Error
	if errors.As(err, &gErr) && gErr.Code == 400 &&
		strings.Contains(gErr.Message, "Unable to parse range") {
		return fmt.Errorf("tab %q: %w", tab, ErrTabNotFound)
	}
	return err
}
