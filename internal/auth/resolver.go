// Package auth resolves bearer tokens into verified identities: the email
// comes from Google's userinfo endpoint, the level from the permissions
// tab, and the role is a pure function of both plus the injected
// super-admin set.
package auth

import (
	"context"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/oauth2"
	goauth2 "google.golang.org/api/oauth2/v2"
	"google.golang.org/api/option"

	"github.com/pdv-survey-api/internal/apperr"
	"github.com/pdv-survey-api/internal/config"
	"github.com/pdv-survey-api/internal/models"
	"github.com/pdv-survey-api/internal/repository"
	"github.com/pdv-survey-api/internal/sheetstore"
)

// MsgTokenRequired and MsgTokenInvalid are the exact messages the dashboard
// shows for the two authentication failures.
const (
	MsgTokenRequired = "No autorizado. Token de acceso requerido."
	MsgTokenInvalid  = "Token inválido o expirado, cierre sesión y vuelva a ingresar."
)

// Resolver turns a bearer token into a verified identity.
type Resolver interface {
	Resolve(ctx context.Context, token string) (*models.Identity, error)
}

// TokenFromHeader extracts the bearer token from an Authorization header
// value. Returns false when the header is absent or not a Bearer scheme.
func TokenFromHeader(header string) (string, bool) {
	if !strings.HasPrefix(header, "Bearer ") {
		return "", false
	}
	token := strings.TrimPrefix(header, "Bearer ")
	return token, token != ""
}

// GoogleResolver validates tokens against Google's userinfo endpoint and
// loads the caller's permission record from the spreadsheet.
type GoogleResolver struct {
	stores      sheetstore.Factory
	sheetsCfg   *config.SheetsConfig
	superAdmins SuperAdmins
	log         zerolog.Logger
}

// NewGoogleResolver creates the production resolver.
func NewGoogleResolver(stores sheetstore.Factory, cfg *config.Config, log zerolog.Logger) *GoogleResolver {
	return &GoogleResolver{
		stores:      stores,
		sheetsCfg:   &cfg.Sheets,
		superAdmins: NewSuperAdmins(cfg.Auth.SuperAdminEmails),
		log:         log.With().Str("component", "auth").Logger(),
	}
}

// Resolve exchanges the token for an email, then derives level and role.
// Any provider failure, including a missing email, is Unauthenticated: the
// caller cannot distinguish an expired token from a revoked one and should
// simply sign in again. A failure reading the permissions tab is tolerated
// and falls back to the default record, matching the dashboard's behavior.
func (r *GoogleResolver) Resolve(ctx context.Context, token string) (*models.Identity, error) {
	email, err := r.userEmail(ctx, token)
	if err != nil {
		return nil, apperr.Wrap(apperr.Unauthenticated, MsgTokenInvalid, err)
	}

	record := models.DefaultPermissions(email)
	repos := repository.New(r.stores.ForToken(token), r.sheetsCfg)
	if rec, err := repos.Permissions.Get(ctx, email); err != nil {
		r.log.Warn().Err(err).Str("email", email).Msg("Permissions lookup failed, using defaults")
	} else {
		record = rec
	}

	return &models.Identity{
		Email:         email,
		Level:         record.Level,
		Role:          RoleFor(email, record.Level, r.superAdmins),
		AllowedIDs:    record.AllowedIDs,
		AssignedSheet: record.AssignedSheet,
	}, nil
}

func (r *GoogleResolver) userEmail(ctx context.Context, token string) (string, error) {
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	svc, err := goauth2.NewService(ctx, option.WithTokenSource(ts))
	if err != nil {
		return "", err
	}
	info, err := svc.Userinfo.Get().Context(ctx).Do()
	if err != nil {
		return "", err
	}
	if info.Email == "" {
		return "", apperr.New(apperr.Unauthenticated, MsgTokenInvalid)
	}
	return strings.ToLower(info.Email), nil
}
