package models

import (
	"strconv"
	"strings"
)

// PermissionsHeader is row 1 of the permissions tab. Columns A-D.
var PermissionsHeader = []string{"Email", "IDs Permitidos", "Hoja Asignada", "Nivel"}

// PermissionRecord is one row of the permissions tab: which rows and/or tab
// a user may access and their numeric level. At most one record exists per
// email (case-insensitive).
type PermissionRecord struct {
	Email         string   `json:"email"`
	AllowedIDs    []string `json:"allowedIds"`
	AssignedSheet string   `json:"assignedSheet"`
	Level         Level    `json:"level"`
}

// DefaultPermissions is the record applied to a user with no row in the
// permissions tab: no IDs, no assigned sheet, level 1.
func DefaultPermissions(email string) *PermissionRecord {
	return &PermissionRecord{Email: email, AllowedIDs: []string{}, Level: LevelUser}
}

// ParsePermissionRow turns one raw sheet row (columns A-D) into a record.
// Returns nil when the email cell is empty.
func ParsePermissionRow(row []string) *PermissionRecord {
	if len(row) == 0 || strings.TrimSpace(row[0]) == "" {
		return nil
	}
	rec := &PermissionRecord{
		Email:      strings.TrimSpace(row[0]),
		AllowedIDs: SplitIDList(cell(row, 1)),
		Level:      LevelUser,
	}
	rec.AssignedSheet = strings.TrimSpace(cell(row, 2))
	if n, err := strconv.Atoi(strings.TrimSpace(cell(row, 3))); err == nil {
		rec.Level = ParseLevel(n)
	}
	return rec
}

// Row renders the record back into columns A-D.
func (r *PermissionRecord) Row() []string {
	return []string{
		r.Email,
		strings.Join(r.AllowedIDs, ", "),
		r.AssignedSheet,
		strconv.Itoa(int(r.Level)),
	}
}

// SplitIDList parses the comma-separated allow-list cell.
func SplitIDList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return []string{}
	}
	parts := strings.Split(s, ",")
	ids := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			ids = append(ids, p)
		}
	}
	return ids
}

func cell(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}
