package models

// DataPermissions describes the caller's scope alongside a data response.
// The dashboard branches on the isAdmin boolean (supervisors share the
// elevated UI, so it covers both); the precise role travels next to it.
type DataPermissions struct {
	AllowedIDs    []string `json:"allowedIds"`
	IsAdmin       bool     `json:"isAdmin"`
	AssignedSheet string   `json:"assignedSheet"`
	CurrentSheet  string   `json:"currentSheet,omitempty"`
	Role          Role     `json:"role"`
}

// DataResult is the body of GET /api/data.
type DataResult struct {
	Headers     []string        `json:"headers"`
	Data        [][]string      `json:"data"`
	Permissions DataPermissions `json:"permissions"`
}

// GPSLogsResult is the body of GET /api/gps-logs: parsed fixes newest
// first, plus the distinct emails seen across all fixes.
type GPSLogsResult struct {
	Logs  []GPSLog `json:"logs"`
	Users []string `json:"users"`
}

// SheetSummary is the per-worksheet survey progress.
type SheetSummary struct {
	Total    int `json:"total"`
	Surveyed int `json:"surveyed"`
	Pending  int `json:"pending"`
}

// StatsResult is the body of GET /api/stats: raw per-worksheet data (the
// dashboard computes its own charts from it) plus server-side progress
// summaries.
type StatsResult struct {
	Sheets          map[string][][]string   `json:"sheets"`
	AvailableSheets []string                `json:"availableSheets"`
	Summary         map[string]SheetSummary `json:"summary"`
}
