package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/pdv-survey-api/internal/config"
	"github.com/pdv-survey-api/internal/models"
	"github.com/pdv-survey-api/internal/policy"
	"github.com/pdv-survey-api/internal/repository"
	"github.com/pdv-survey-api/internal/sheetstore"
)

// DataService defines the interface for scoped worksheet reads
type DataService interface {
	Fetch(ctx context.Context, token string, id *models.Identity, requestedSheet string) (*models.DataResult, error)
}

// RowService defines the interface for row updates
type RowService interface {
	Update(ctx context.Context, token string, id *models.Identity, req *models.UpdateRowRequest) error
}

// SheetService defines the interface for tab browsing
type SheetService interface {
	List(ctx context.Context, token string, id *models.Identity) ([]string, error)
	IDs(ctx context.Context, token string, id *models.Identity, sheetName string) ([]string, error)
}

// PermissionService defines the interface for permission management
type PermissionService interface {
	All(ctx context.Context, token string, id *models.Identity) ([]models.PermissionRecord, error)
	Save(ctx context.Context, token string, id *models.Identity, email string, allowedIDs []string, assignedSheet string) error
}

// AltaService defines the interface for PDV registration
type AltaService interface {
	NextID(ctx context.Context, token string) (int, error)
	Create(ctx context.Context, token string, id *models.Identity, input *models.PDVInput) (int, error)
}

// GPSService defines the interface for GPS fix logging
type GPSService interface {
	Log(ctx context.Context, token string, id *models.Identity, fix *models.GPSFixRequest) error
	Logs(ctx context.Context, token string, id *models.Identity, filterEmail string) (*models.GPSLogsResult, error)
}

// StatsService defines the interface for survey progress statistics
type StatsService interface {
	Overview(ctx context.Context, token string, id *models.Identity) (*models.StatsResult, error)
}

// GeocodeService defines the interface for the address-lookup proxy
type GeocodeService interface {
	Search(ctx context.Context, query string) (interface{}, error)
}

// Services holds all service interfaces
type Services struct {
	Data        DataService
	Rows        RowService
	Sheets      SheetService
	Permissions PermissionService
	Alta        AltaService
	GPS         GPSService
	Stats       StatsService
	Geocode     GeocodeService
}

// base carries what every service needs: the per-token store factory, the
// sheet layout, the policy and a logger. Repositories are rebuilt per call
// because each request acts with the caller's own token.
type base struct {
	stores sheetstore.Factory
	cfg    *config.Config
	pol    *policy.Policy
	log    zerolog.Logger
}

func (b *base) repos(token string) *repository.Repositories {
	return repository.New(b.stores.ForToken(token), &b.cfg.Sheets)
}

// NewServices creates all services
func NewServices(stores sheetstore.Factory, cfg *config.Config, log zerolog.Logger) *Services {
	pol := policy.New(cfg.Sheets.AltaPDVSheet)
	b := base{stores: stores, cfg: cfg, pol: pol, log: log}

	// one lock table shared by row updates and ID allocation, so the two
	// races of the old dashboard (lost update, duplicate max+1) cannot
	// happen between requests handled by this process
	locks := newKeyedLock()

	return &Services{
		Data:        &dataService{base: b},
		Rows:        &rowService{base: b, locks: locks},
		Sheets:      &sheetService{base: b},
		Permissions: &permissionService{base: b},
		Alta:        &altaService{base: b, locks: locks},
		GPS:         &gpsService{base: b},
		Stats:       &statsService{base: b},
		Geocode:     newGeocodeService(&cfg.Geocode, log),
	}
}
