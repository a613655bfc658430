package auth_test

import (
	"testing"

	"github.com/pdv-survey-api/internal/auth"
	"github.com/pdv-survey-api/internal/models"
)

func TestLevelToRole(t *testing.T) {
	tests := []struct {
		level models.Level
		want  models.Role
	}{
		{models.LevelUser, models.RoleUser},
		{models.LevelSupervisor, models.RoleSupervisor},
		{models.LevelAdmin, models.RoleAdmin},
	}

	for _, tt := range tests {
		if got := auth.LevelToRole(tt.level); got != tt.want {
			t.Errorf("LevelToRole(%d) = %q, want %q", tt.level, got, tt.want)
		}
	}
}

func TestParseLevelClampsInvalidValues(t *testing.T) {
	for _, n := range []int{0, 1, 4, -1, 99} {
		if got := models.ParseLevel(n); n != 1 && got != models.LevelUser {
			t.Errorf("ParseLevel(%d) = %d, want %d", n, got, models.LevelUser)
		}
	}
	if got := models.ParseLevel(2); got != models.LevelSupervisor {
		t.Errorf("ParseLevel(2) = %d, want %d", got, models.LevelSupervisor)
	}
	if got := models.ParseLevel(3); got != models.LevelAdmin {
		t.Errorf("ParseLevel(3) = %d, want %d", got, models.LevelAdmin)
	}
}

func TestRoleForSuperAdmin(t *testing.T) {
	superAdmins := auth.NewSuperAdmins([]string{"Jefe@Example.com"})

	// super admins are admin whatever the stored level says
	for _, level := range []models.Level{models.LevelUser, models.LevelSupervisor, models.LevelAdmin} {
		if got := auth.RoleFor("jefe@example.com", level, superAdmins); got != models.RoleAdmin {
			t.Errorf("RoleFor(super admin, level %d) = %q, want admin", level, got)
		}
	}

	// everyone else follows the stored level
	if got := auth.RoleFor("otro@example.com", models.LevelSupervisor, superAdmins); got != models.RoleSupervisor {
		t.Errorf("RoleFor(regular, level 2) = %q, want supervisor", got)
	}
	if got := auth.RoleFor("otro@example.com", models.LevelUser, superAdmins); got != models.RoleUser {
		t.Errorf("RoleFor(regular, level 1) = %q, want user", got)
	}
}

func TestRoleForWithoutSuperAdmins(t *testing.T) {
	none := auth.NewSuperAdmins(nil)
	if got := auth.RoleFor("jefe@example.com", models.LevelUser, none); got != models.RoleUser {
		t.Errorf("RoleFor with empty super-admin set = %q, want user", got)
	}
}

func TestTokenFromHeader(t *testing.T) {
	tests := []struct {
		header    string
		wantToken string
		wantOK    bool
	}{
		{"Bearer abc123", "abc123", true},
		{"Bearer ", "", false},
		{"", "", false},
		{"Basic abc123", "", false},
		{"abc123", "", false},
	}

	for _, tt := range tests {
		token, ok := auth.TokenFromHeader(tt.header)
		if token != tt.wantToken || ok != tt.wantOK {
			t.Errorf("TokenFromHeader(%q) = (%q, %v), want (%q, %v)",
				tt.header, token, ok, tt.wantToken, tt.wantOK)
		}
	}
}
