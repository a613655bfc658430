package repository

import (
	"context"

	"github.com/pdv-survey-api/internal/config"
	"github.com/pdv-survey-api/internal/models"
	"github.com/pdv-survey-api/internal/sheetstore"
)

// PermissionRepository defines the interface for permission-tab operations
type PermissionRepository interface {
	Get(ctx context.Context, email string) (*models.PermissionRecord, error)
	All(ctx context.Context) ([]models.PermissionRecord, error)
	Save(ctx context.Context, email string, allowedIDs []string, assignedSheet string, level models.Level) error
}

// RowRepository defines the interface for survey-worksheet operations
type RowRepository interface {
	Catalog(ctx context.Context) ([]string, error)
	WorksheetTabs(ctx context.Context) ([]string, error)
	DefaultTab(ctx context.Context) (string, error)
	Data(ctx context.Context, tab string) ([][]string, error)
	Combined(ctx context.Context, tabs []string) ([][]string, error)
	IDs(ctx context.Context, tab string) ([]string, error)
	UpdateRow(ctx context.Context, tab string, rowNumber int, values []string) error
	AppendPDV(ctx context.Context, row []string) error
	EnsureAltaTab(ctx context.Context) error
}

// GPSRepository defines the interface for the GPS log tab
type GPSRepository interface {
	Append(ctx context.Context, row []string) error
	All(ctx context.Context) ([]models.GPSLog, error)
}

// Repositories holds all repository interfaces. A set is built per request
// around the caller's own spreadsheet client; construction is free of I/O.
type Repositories struct {
	Permissions PermissionRepository
	Rows        RowRepository
	GPS         GPSRepository
}

// New creates all repositories over the given store
func New(store sheetstore.Store, cfg *config.SheetsConfig) *Repositories {
	return &Repositories{
		Permissions: NewPermissionRepo(store, cfg),
		Rows:        NewRowRepo(store, cfg),
		GPS:         NewGPSRepo(store, cfg),
	}
}
