// Package policy decides what a resolved identity may read and write.
// Read scope and write scope are computed independently from the same
// three inputs (role, assigned sheet, allow-list): being able to see a row
// never implies being able to edit it, and vice versa.
package policy

import (
	"strings"

	"github.com/pdv-survey-api/internal/apperr"
	"github.com/pdv-survey-api/internal/models"
)

// CombinedSheet is the synthetic "all worksheets" view name the dashboard
// requests.
const CombinedSheet = "Todos"

// restrictedSheet is the worksheet supervisors may never see.
const restrictedSheet = "test"

// MsgForbiddenRow and friends are the exact denial messages the dashboard
// displays.
const (
	MsgForbiddenRow   = "No tienes permiso para editar este registro"
	MsgForbiddenSheet = "No autorizado para acceder a esta hoja."
	MsgAdminOnly      = "No autorizado. Solo administradores pueden asignar permisos."
	MsgElevatedOnly   = "No autorizado. Solo administradores pueden ver las hojas."
	MsgAdminOnlyGPS   = "Solo administradores pueden ver los logs de GPS"
	MsgAdminOnlyStats = "No autorizado. Solo administradores pueden ver estas estadísticas."
)

// Policy evaluates access decisions. It holds only fixed tab names; every
// decision is a pure function of the identity and the request.
type Policy struct {
	altaSheet string
}

// New creates a Policy. altaSheet is the registration tab readable by any
// assigned-sheet user in addition to their own tab.
func New(altaSheet string) *Policy {
	return &Policy{altaSheet: altaSheet}
}

// ReadScope describes what a read request may return.
type ReadScope struct {
	// Combined selects the synthetic all-worksheets view.
	Combined bool

	// Tab is the single tab to serve; empty means the default data tab.
	// Meaningful only when Combined is false.
	Tab string

	// Filtered restricts the result to rows whose column-A ID is in
	// AllowedIDs. An empty AllowedIDs with Filtered set yields no rows.
	Filtered   bool
	AllowedIDs []string
}

// AuthorizeRead computes the read scope for a requested sheet name.
// Requests are never rejected: callers outside their scope are served what
// their scope allows instead.
func (p *Policy) AuthorizeRead(id *models.Identity, requestedSheet string) ReadScope {
	switch id.Role {
	case models.RoleAdmin:
		if requestedSheet == CombinedSheet {
			return ReadScope{Combined: true}
		}
		return ReadScope{Tab: requestedSheet}

	case models.RoleSupervisor:
		// the restricted tab is silently replaced by the combined view
		if requestedSheet == CombinedSheet || strings.EqualFold(requestedSheet, restrictedSheet) {
			return ReadScope{Combined: true}
		}
		return ReadScope{Tab: requestedSheet}
	}

	if id.AssignedSheet != "" {
		// the tab assignment is the grant: its full contents, unfiltered
		if strings.EqualFold(requestedSheet, p.altaSheet) {
			return ReadScope{Tab: p.altaSheet}
		}
		return ReadScope{Tab: id.AssignedSheet}
	}

	return ReadScope{Filtered: true, AllowedIDs: id.AllowedIDs}
}

// WriteTarget describes where the row named in a write request may live.
type WriteTarget struct {
	// Combined means the row is located by scanning every eligible
	// worksheet tab in listing order.
	Combined bool

	// Tab is the single tab the write must land in; empty means the
	// default data tab. Meaningful only when Combined is false.
	Tab string
}

// AuthorizeWrite decides whether the identity may overwrite the row with
// the given ID, and in which tab(s) the row may be located. requestedSheet
// is the tab the client explicitly named, if any.
func (p *Policy) AuthorizeWrite(id *models.Identity, requestedSheet, rowID string) (WriteTarget, error) {
	switch id.Role {
	case models.RoleAdmin:
		if requestedSheet != "" {
			return WriteTarget{Tab: requestedSheet}, nil
		}
		return WriteTarget{Combined: true}, nil

	case models.RoleSupervisor:
		if strings.EqualFold(requestedSheet, restrictedSheet) {
			return WriteTarget{}, apperr.New(apperr.Forbidden, MsgForbiddenSheet)
		}
		if requestedSheet != "" {
			return WriteTarget{Tab: requestedSheet}, nil
		}
		return WriteTarget{Combined: true}, nil
	}

	if id.AssignedSheet != "" {
		// blanket write over the one assigned tab, no ID-list check; a
		// request naming any other tab is a scope violation
		if requestedSheet != "" && !strings.EqualFold(requestedSheet, id.AssignedSheet) {
			return WriteTarget{}, apperr.New(apperr.Forbidden, MsgForbiddenRow)
		}
		return WriteTarget{Tab: id.AssignedSheet}, nil
	}

	// ID-list users: membership grants the write, but only in the default
	// tab. Two tabs can reuse the same row ID, so the tab identity is
	// reconfirmed by locating within the default tab alone.
	if !containsFold(id.AllowedIDs, rowID) {
		return WriteTarget{}, apperr.New(apperr.Forbidden, MsgForbiddenRow)
	}
	return WriteTarget{Tab: ""}, nil
}

// CanReadAllPermissions reports whether the identity may list every
// permission record.
func (p *Policy) CanReadAllPermissions(id *models.Identity) bool {
	return id.Elevated()
}

// CanWritePermissions reports whether the identity may mutate the
// permission table. Strictly admin; supervisors read but never write.
func (p *Policy) CanWritePermissions(id *models.Identity) bool {
	return id.Role == models.RoleAdmin
}

// CanBrowseSheets reports whether the identity may list tabs and fetch
// per-tab ID sets.
func (p *Policy) CanBrowseSheets(id *models.Identity) bool {
	return id.Elevated()
}

// CanReadSheet reports whether the identity may fetch the named tab through
// the sheet-browsing endpoints.
func (p *Policy) CanReadSheet(id *models.Identity, sheet string) bool {
	if !id.Elevated() {
		return false
	}
	if id.Role == models.RoleSupervisor && strings.EqualFold(sheet, restrictedSheet) {
		return false
	}
	return true
}

// EligibleTabs filters a worksheet catalog down to what the identity may
// see: supervisors never see the restricted tab, in catalogs or in the
// combined view.
func (p *Policy) EligibleTabs(id *models.Identity, tabs []string) []string {
	if id.Role != models.RoleSupervisor {
		return tabs
	}
	eligible := make([]string, 0, len(tabs))
	for _, tab := range tabs {
		if !strings.EqualFold(tab, restrictedSheet) {
			eligible = append(eligible, tab)
		}
	}
	return eligible
}

// FilterRows returns only the rows whose column-A value case-insensitively
// matches an allowed ID. Row order is preserved. Each allowed ID matches at
// most once (first occurrence wins), so the result never exceeds the
// allow-list in size even when a worksheet repeats an ID.
func FilterRows(rows [][]string, allowedIDs []string) [][]string {
	allowed := make(map[string]struct{}, len(allowedIDs))
	for _, id := range allowedIDs {
		allowed[normalizeID(id)] = struct{}{}
	}
	filtered := make([][]string, 0, len(allowedIDs))
	for _, row := range rows {
		if len(row) == 0 || row[0] == "" {
			continue
		}
		key := normalizeID(row[0])
		if _, ok := allowed[key]; ok {
			filtered = append(filtered, row)
			delete(allowed, key)
		}
	}
	return filtered
}

func containsFold(ids []string, want string) bool {
	want = normalizeID(want)
	for _, id := range ids {
		if normalizeID(id) == want {
			return true
		}
	}
	return false
}

func normalizeID(id string) string {
	return strings.ToLower(strings.TrimSpace(id))
}
