package service

import (
	"context"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/pdv-survey-api/internal/apperr"
	"github.com/pdv-survey-api/internal/models"
	"github.com/pdv-survey-api/internal/policy"
)

type gpsService struct {
	base
}

// Log appends one GPS fix for the authenticated caller. Date and time are
// rendered the way the sheet has always stored them (es-AR, dd/mm/yyyy).
func (s *gpsService) Log(ctx context.Context, token string, id *models.Identity, fix *models.GPSFixRequest) error {
	now := time.Now()
	device := "Desktop"
	if fix.IsMobile {
		device = "Mobile"
	}

	row := []string{
		now.Format("02/01/2006"),
		now.Format("15:04:05"),
		id.Email,
		strconv.FormatFloat(fix.Latitude, 'f', -1, 64),
		strconv.FormatFloat(fix.Longitude, 'f', -1, 64),
		device,
		models.GPSEventLabel(fix.Reason),
	}

	if err := s.repos(token).GPS.Append(ctx, row); err != nil {
		return err
	}

	s.log.Info().
		Str("email", id.Email).
		Float64("latitude", fix.Latitude).
		Float64("longitude", fix.Longitude).
		Str("event", fix.Reason).
		Msg("GPS fix logged")

	return nil
}

// Logs returns all fixes, newest first, optionally filtered to one email.
// The distinct user list is computed before filtering so the dashboard's
// user picker stays complete. Admin only.
func (s *gpsService) Logs(ctx context.Context, token string, id *models.Identity, filterEmail string) (*models.GPSLogsResult, error) {
	if id.Role != models.RoleAdmin {
		return nil, apperr.New(apperr.Forbidden, policy.MsgAdminOnlyGPS)
	}

	logs, err := s.repos(token).GPS.All(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	users := make([]string, 0)
	for _, log := range logs {
		if _, ok := seen[log.Email]; !ok {
			seen[log.Email] = struct{}{}
			users = append(users, log.Email)
		}
	}
	sort.Strings(users)

	if filterEmail != "" {
		filtered := make([]models.GPSLog, 0, len(logs))
		for _, log := range logs {
			if strings.EqualFold(log.Email, filterEmail) {
				filtered = append(filtered, log)
			}
		}
		logs = filtered
	}

	// newest first, comparing the stored date+time strings the same way
	// the dashboard always has
	sort.SliceStable(logs, func(i, j int) bool {
		return logs[i].Fecha+" "+logs[i].Hora > logs[j].Fecha+" "+logs[j].Hora
	})

	return &models.GPSLogsResult{Logs: logs, Users: users}, nil
}
