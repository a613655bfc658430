package service

import (
	"context"

	"github.com/pdv-survey-api/internal/apperr"
	"github.com/pdv-survey-api/internal/models"
	"github.com/pdv-survey-api/internal/policy"
)

type permissionService struct {
	base
}

// All returns every permission record. Admins and supervisors may read the
// whole table; only admins may change it.
func (s *permissionService) All(ctx context.Context, token string, id *models.Identity) ([]models.PermissionRecord, error) {
	if !s.pol.CanReadAllPermissions(id) {
		return nil, apperr.New(apperr.Forbidden, policy.MsgAdminOnly)
	}
	return s.repos(token).Permissions.All(ctx)
}

// Save upserts one user's grants. The stored level of an existing record is
// always preserved; levels change only by editing the sheet directly.
func (s *permissionService) Save(ctx context.Context, token string, id *models.Identity, email string, allowedIDs []string, assignedSheet string) error {
	if !s.pol.CanWritePermissions(id) {
		return apperr.New(apperr.Forbidden, policy.MsgAdminOnly)
	}

	s.log.Info().
		Str("email", email).
		Int("id_count", len(allowedIDs)).
		Str("assigned_sheet", assignedSheet).
		Str("granted_by", id.Email).
		Msg("Saving permissions")

	return s.repos(token).Permissions.Save(ctx, email, allowedIDs, assignedSheet, models.LevelUser)
}
