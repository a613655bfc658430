package mocks

import (
	"context"
	"fmt"
	"strings"

	"github.com/pdv-survey-api/internal/sheetstore"
)

// Store is an in-memory implementation of sheetstore.Store. It understands
// the A1-notation spans the repositories use and reproduces the backend's
// "tab does not exist" signal so bootstrap paths can be exercised.
type Store struct {
	order []string
	tabs  map[string][][]string

	ReadErr   error
	WriteErr  error
	ReadCalls int
	Appends   map[string][][]string
}

// NewStore creates an empty in-memory spreadsheet.
func NewStore() *Store {
	return &Store{
		tabs:    make(map[string][][]string),
		Appends: make(map[string][][]string),
	}
}

// SetTab replaces a tab's full contents (header row included).
func (s *Store) SetTab(name string, rows [][]string) {
	if _, exists := s.tabs[name]; !exists {
		s.order = append(s.order, name)
	}
	copied := make([][]string, len(rows))
	for i, row := range rows {
		copied[i] = append([]string{}, row...)
	}
	s.tabs[name] = copied
}

// Tab returns a tab's current contents.
func (s *Store) Tab(name string) [][]string {
	return s.tabs[name]
}

// HasTab reports whether a tab exists.
func (s *Store) HasTab(name string) bool {
	_, ok := s.tabs[name]
	return ok
}

func (s *Store) ReadRange(ctx context.Context, tab, span string) ([][]string, error) {
	s.ReadCalls++
	if s.ReadErr != nil {
		return nil, s.ReadErr
	}
	data, ok := s.tabs[tab]
	if !ok {
		return nil, fmt.Errorf("tab %q: %w", tab, sheetstore.ErrTabNotFound)
	}
	startCol, startRow, endCol, endRow := parseSpan(span)
	var out [][]string
	for r := startRow; r <= len(data); r++ {
		if endRow > 0 && r > endRow {
			break
		}
		row := data[r-1]
		last := len(row)
		if endCol >= 0 && endCol+1 < last {
			last = endCol + 1
		}
		if startCol >= last {
			out = append(out, []string{})
			continue
		}
		out = append(out, append([]string{}, row[startCol:last]...))
	}
	return out, nil
}

func (s *Store) UpdateRange(ctx context.Context, tab, span string, rows [][]string) error {
	if s.WriteErr != nil {
		return s.WriteErr
	}
	data, ok := s.tabs[tab]
	if !ok {
		return fmt.Errorf("tab %q: %w", tab, sheetstore.ErrTabNotFound)
	}
	startCol, startRow, _, _ := parseSpan(span)
	for i, row := range rows {
		target := startRow - 1 + i
		for target >= len(data) {
			data = append(data, []string{})
		}
		for startCol+len(row) > len(data[target]) {
			data[target] = append(data[target], "")
		}
		copy(data[target][startCol:], row)
	}
	s.tabs[tab] = data
	return nil
}

func (s *Store) AppendRow(ctx context.Context, tab string, row []string) error {
	if s.WriteErr != nil {
		return s.WriteErr
	}
	data, ok := s.tabs[tab]
	if !ok {
		return fmt.Errorf("tab %q: %w", tab, sheetstore.ErrTabNotFound)
	}
	s.tabs[tab] = append(data, append([]string{}, row...))
	s.Appends[tab] = append(s.Appends[tab], append([]string{}, row...))
	return nil
}

func (s *Store) ListTabs(ctx context.Context) ([]string, error) {
	if s.ReadErr != nil {
		return nil, s.ReadErr
	}
	return append([]string{}, s.order...), nil
}

func (s *Store) CreateTab(ctx context.Context, tab string, header []string) error {
	if s.WriteErr != nil {
		return s.WriteErr
	}
	if _, exists := s.tabs[tab]; exists {
		return fmt.Errorf("tab %q already exists", tab)
	}
	rows := [][]string{}
	if len(header) > 0 {
		rows = append(rows, append([]string{}, header...))
	}
	s.order = append(s.order, tab)
	s.tabs[tab] = rows
	return nil
}

// Factory satisfies sheetstore.Factory with a fixed store for every token.
type Factory struct {
	Store sheetstore.Store
}

func (f *Factory) ForToken(token string) sheetstore.Store {
	return f.Store
}

// parseSpan interprets the A1-notation subset the repositories use:
// "A1", "A:D", "A2:A", "A5:AM5". Columns are 0-based; rows are 1-based.
// endCol == -1 or endRow == 0 mean unbounded.
func parseSpan(span string) (startCol, startRow, endCol, endRow int) {
	parts := strings.SplitN(span, ":", 2)
	startCol, startRow = parseCellRef(parts[0])
	if startRow == 0 {
		startRow = 1
	}
	if len(parts) == 1 {
		return startCol, startRow, startCol, startRow
	}
	endCol, endRow = parseCellRef(parts[1])
	return startCol, startRow, endCol, endRow
}

// parseCellRef splits "AM12" into column index 38 and row 12. A missing
// row part yields 0.
func parseCellRef(ref string) (col, row int) {
	i := 0
	for i < len(ref) && ref[i] >= 'A' && ref[i] <= 'Z' {
		i++
	}
	col = -1
	for _, c := range ref[:i] {
		col = (col+1)*26 + int(c-'A')
	}
	if col < 0 {
		col = 0
	}
	for _, c := range ref[i:] {
		if c < '0' || c > '9' {
			break
		}
		row = row*10 + int(c-'0')
	}
	return col, row
}
