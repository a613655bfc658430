package service

import (
	"context"

	"github.com/pdv-survey-api/internal/apperr"
	"github.com/pdv-survey-api/internal/models"
	"github.com/pdv-survey-api/internal/policy"
)

type sheetService struct {
	base
}

// List returns the tab catalog the caller may browse. Admins and
// supervisors only; supervisors never see the restricted tab.
func (s *sheetService) List(ctx context.Context, token string, id *models.Identity) ([]string, error) {
	if !s.pol.CanBrowseSheets(id) {
		return nil, apperr.New(apperr.Forbidden, policy.MsgElevatedOnly)
	}
	tabs, err := s.repos(token).Rows.Catalog(ctx)
	if err != nil {
		return nil, err
	}
	return s.pol.EligibleTabs(id, tabs), nil
}

// IDs returns the column-A values of one tab for the permission editor.
func (s *sheetService) IDs(ctx context.Context, token string, id *models.Identity, sheetName string) ([]string, error) {
	if !s.pol.CanBrowseSheets(id) {
		return nil, apperr.New(apperr.Forbidden, "No autorizado. Solo administradores pueden obtener IDs de hojas.")
	}
	if !s.pol.CanReadSheet(id, sheetName) {
		return nil, apperr.New(apperr.Forbidden, policy.MsgForbiddenSheet)
	}
	return s.repos(token).Rows.IDs(ctx, sheetName)
}
