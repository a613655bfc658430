package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/pdv-survey-api/internal/apperr"
	"github.com/pdv-survey-api/internal/models"
	"github.com/pdv-survey-api/internal/policy"
)

type statsService struct {
	base
}

// Overview returns every worksheet's raw data plus a survey-progress
// summary. A worksheet with data but no recognizable surveyor column is an
// error: progress cannot be derived from it and silently reporting zero
// would be wrong. Admin only.
func (s *statsService) Overview(ctx context.Context, token string, id *models.Identity) (*models.StatsResult, error) {
	if id.Role != models.RoleAdmin {
		return nil, apperr.New(apperr.Forbidden, policy.MsgAdminOnlyStats)
	}

	repos := s.repos(token)

	available, err := repos.Rows.Catalog(ctx)
	if err != nil {
		return nil, err
	}
	tabs, err := repos.Rows.WorksheetTabs(ctx)
	if err != nil {
		return nil, err
	}

	result := &models.StatsResult{
		Sheets:          make(map[string][][]string, len(tabs)),
		AvailableSheets: available,
		Summary:         make(map[string]models.SheetSummary, len(tabs)),
	}

	for _, tab := range tabs {
		data, err := repos.Rows.Data(ctx, tab)
		if err != nil {
			// a tab that cannot be read contributes nothing, same as the
			// dashboard's per-sheet error handling
			s.log.Warn().Err(err).Str("sheet", tab).Msg("Skipping unreadable sheet in stats")
			result.Sheets[tab] = [][]string{}
			result.Summary[tab] = models.SheetSummary{}
			continue
		}
		result.Sheets[tab] = data

		if len(data) == 0 {
			result.Summary[tab] = models.SheetSummary{}
			continue
		}

		col, err := models.SurveyorColumn(data[0])
		if err != nil {
			msg := fmt.Sprintf("La hoja %q no tiene columna de relevador: %v", tab, err)
			return nil, apperr.New(apperr.Validation, msg)
		}

		summary := models.SheetSummary{Total: len(data) - 1}
		for _, row := range data[1:] {
			if col < len(row) && strings.TrimSpace(row[col]) != "" {
				summary.Surveyed++
			}
		}
		summary.Pending = summary.Total - summary.Surveyed
		result.Summary[tab] = summary
	}

	return result, nil
}
