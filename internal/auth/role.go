package auth

import (
	"strings"

	"github.com/pdv-survey-api/internal/models"
)

// SuperAdmins is the injected set of emails that always resolve to the
// admin role, independent of the level stored in the permissions tab.
type SuperAdmins map[string]struct{}

// NewSuperAdmins builds the set from configuration. Emails are normalized
// to lower case once, at process start.
func NewSuperAdmins(emails []string) SuperAdmins {
	set := make(SuperAdmins, len(emails))
	for _, e := range emails {
		if e = strings.ToLower(strings.TrimSpace(e)); e != "" {
			set[e] = struct{}{}
		}
	}
	return set
}

// Contains reports whether an email is a super admin.
func (s SuperAdmins) Contains(email string) bool {
	_, ok := s[strings.ToLower(strings.TrimSpace(email))]
	return ok
}

// LevelToRole maps the stored numeric level to a role.
// Level 1 = user, 2 = supervisor, 3 = admin.
func LevelToRole(level models.Level) models.Role {
	switch level {
	case models.LevelAdmin:
		return models.RoleAdmin
	case models.LevelSupervisor:
		return models.RoleSupervisor
	default:
		return models.RoleUser
	}
}

// RoleFor derives the role from (email, level) and the super-admin set, and
// from nothing else. Super admins are admin regardless of stored level,
// including when they have no permission record at all.
func RoleFor(email string, level models.Level, superAdmins SuperAdmins) models.Role {
	if superAdmins.Contains(email) {
		return models.RoleAdmin
	}
	return LevelToRole(level)
}
