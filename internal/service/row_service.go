package service

import (
	"context"
	"strings"

	"github.com/pdv-survey-api/internal/locator"
	"github.com/pdv-survey-api/internal/models"
)

type rowService struct {
	base
	locks *keyedLock
}

// Update overwrites the full row identified by the request's logical ID.
// The write is a full-row replacement (the client sends back its whole row
// snapshot), so locate-then-write runs under a per-ID lock: within this
// process, two concurrent editors of the same row are serialized instead of
// silently dropping one editor's fields. Writers in other processes are
// still last-writer-wins; the spreadsheet offers nothing better.
func (s *rowService) Update(ctx context.Context, token string, id *models.Identity, req *models.UpdateRowRequest) error {
	rowID := req.RowIDString()

	target, err := s.pol.AuthorizeWrite(id, req.Sheet, rowID)
	if err != nil {
		return err
	}

	unlock := s.locks.Lock("row:" + strings.ToLower(strings.TrimSpace(rowID)))
	defer unlock()

	repos := s.repos(token)

	var tabs []string
	switch {
	case target.Combined:
		all, err := repos.Rows.WorksheetTabs(ctx)
		if err != nil {
			return err
		}
		tabs = s.pol.EligibleTabs(id, all)
	case target.Tab == "":
		tab, err := repos.Rows.DefaultTab(ctx)
		if err != nil {
			return err
		}
		tabs = []string{tab}
	default:
		tabs = []string{target.Tab}
	}

	loc, err := locator.Locate(ctx, s.stores.ForToken(token), tabs, rowID)
	if err != nil {
		return err
	}

	s.log.Info().
		Str("row_id", rowID).
		Str("sheet", loc.Sheet).
		Int("row", loc.Row).
		Str("email", id.Email).
		Msg("Updating row")

	return repos.Rows.UpdateRow(ctx, loc.Sheet, loc.Row, req.ValueStrings())
}
