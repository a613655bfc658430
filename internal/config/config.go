package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	Server ServerConfig

	// Spreadsheet configuration
	Sheets SheetsConfig

	// Auth configuration
	Auth AuthConfig

	// Geocoding configuration
	Geocode GeocodeConfig

	// Logging configuration
	Log LogConfig
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

// SheetsConfig holds the spreadsheet layout: which document backs the
// service and which tabs are infrastructure rather than survey data.
type SheetsConfig struct {
	// SpreadsheetID identifies the single backing spreadsheet document.
	SpreadsheetID string

	// DefaultSheet is the data tab served to users without an assigned
	// sheet. Empty means "first non-hidden tab of the spreadsheet".
	DefaultSheet string

	// PermissionsSheet is the tab holding one permission record per user.
	PermissionsSheet string

	// AltaPDVSheet is the tab new PDV records are appended to.
	AltaPDVSheet string

	// GPSLogSheet is the tab GPS fixes are appended to.
	GPSLogSheet string

	// HiddenSheets are excluded from the data catalog.
	HiddenSheets []string

	// StatsExcludedSheets are additionally excluded from the combined view
	// and from statistics (infrastructure tabs plus the legacy main tab).
	StatsExcludedSheets []string

	// AltaStartingID is the floor for new PDV ID allocation.
	AltaStartingID int
}

// AuthConfig holds identity settings
type AuthConfig struct {
	// SuperAdminEmails always resolve to the admin role regardless of the
	// level stored in the permissions tab. Matched case-insensitively.
	SuperAdminEmails []string
}

// GeocodeConfig holds the address-lookup proxy settings
type GeocodeConfig struct {
	BaseURL string
	Suffix  string
	Timeout time.Duration
}

// LogConfig holds logging settings
type LogConfig struct {
	Level  string
	Format string // "json" or "pretty"
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:            getEnv("PORT", "8080"),
			ReadTimeout:     getDurationEnv("SERVER_READ_TIMEOUT", 30*time.Second),
			WriteTimeout:    getDurationEnv("SERVER_WRITE_TIMEOUT", 60*time.Second),
			ShutdownTimeout: getDurationEnv("SERVER_SHUTDOWN_TIMEOUT", 30*time.Second),
		},
		Sheets: SheetsConfig{
			SpreadsheetID:    getEnv("SPREADSHEET_ID", ""),
			DefaultSheet:     getEnv("DEFAULT_SHEET", ""),
			PermissionsSheet: getEnv("PERMISSIONS_SHEET", "Permisos"),
			AltaPDVSheet:     getEnv("ALTA_PDV_SHEET", "ALTA PDV"),
			GPSLogSheet:      getEnv("GPS_LOG_SHEET", "LOGs GPS"),
			HiddenSheets: getListEnv("HIDDEN_SHEETS",
				[]string{"Permisos", "Actividad", "Hoja 2"}),
			StatsExcludedSheets: getListEnv("STATS_EXCLUDED_SHEETS",
				[]string{"Permisos", "Actividad", "Hoja 2", "Hoja 1", "LOGs GPS", "ALTA PDV"}),
			AltaStartingID: getIntEnv("ALTA_STARTING_ID", 4279),
		},
		Auth: AuthConfig{
			SuperAdminEmails: getListEnv("SUPER_ADMIN_EMAILS", nil),
		},
		Geocode: GeocodeConfig{
			BaseURL: getEnv("GEOCODE_BASE_URL", "https://nominatim.openstreetmap.org/search"),
			Suffix:  getEnv("GEOCODE_QUERY_SUFFIX", "CABA, Buenos Aires, Argentina"),
			Timeout: getDurationEnv("GEOCODE_TIMEOUT", 10*time.Second),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
	}

	// Validate required configuration
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Sheets.SpreadsheetID == "" {
		return fmt.Errorf("SPREADSHEET_ID is required")
	}
	if c.Sheets.PermissionsSheet == "" {
		return fmt.Errorf("PERMISSIONS_SHEET must not be empty")
	}
	return nil
}

// IsHidden reports whether a tab is excluded from the data catalog.
func (c *SheetsConfig) IsHidden(tab string) bool {
	return containsName(c.HiddenSheets, tab)
}

// IsExcludedFromStats reports whether a tab is excluded from the combined
// view and statistics.
func (c *SheetsConfig) IsExcludedFromStats(tab string) bool {
	return containsName(c.StatsExcludedSheets, tab)
}

func containsName(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}

// Helper functions for environment variable parsing

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getListEnv(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parts := strings.Split(value, ",")
	list := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			list = append(list, p)
		}
	}
	if len(list) == 0 {
		return defaultValue
	}
	return list
}
