package service

import (
	"context"

	"github.com/pdv-survey-api/internal/models"
	"github.com/pdv-survey-api/internal/policy"
)

type dataService struct {
	base
}

// Fetch returns the rows the caller's read scope allows. The scope is
// recomputed from the spreadsheet on every call; there is no cache.
func (s *dataService) Fetch(ctx context.Context, token string, id *models.Identity, requestedSheet string) (*models.DataResult, error) {
	scope := s.pol.AuthorizeRead(id, requestedSheet)
	repos := s.repos(token)

	perms := models.DataPermissions{
		AllowedIDs:    id.AllowedIDs,
		IsAdmin:       id.Elevated(),
		AssignedSheet: id.AssignedSheet,
		Role:          id.Role,
	}
	if id.Elevated() {
		perms.CurrentSheet = requestedSheet
		perms.AllowedIDs = []string{}
	}

	var all [][]string
	var err error
	if scope.Combined {
		var tabs []string
		if tabs, err = repos.Rows.WorksheetTabs(ctx); err != nil {
			return nil, err
		}
		if all, err = repos.Rows.Combined(ctx, s.pol.EligibleTabs(id, tabs)); err != nil {
			return nil, err
		}
	} else {
		tab := scope.Tab
		if tab == "" {
			if tab, err = repos.Rows.DefaultTab(ctx); err != nil {
				return nil, err
			}
		}
		if all, err = repos.Rows.Data(ctx, tab); err != nil {
			return nil, err
		}
	}

	if len(all) == 0 {
		return &models.DataResult{Headers: []string{}, Data: [][]string{}, Permissions: perms}, nil
	}

	headers := all[0]
	rows := all[1:]
	if scope.Filtered {
		if len(scope.AllowedIDs) == 0 {
			rows = [][]string{}
		} else {
			rows = policy.FilterRows(rows, scope.AllowedIDs)
		}
	}

	return &models.DataResult{Headers: headers, Data: rows, Permissions: perms}, nil
}
