package models

// Role is the derived access class of a caller.
type Role string

const (
	RoleUser       Role = "user"
	RoleSupervisor Role = "supervisor"
	RoleAdmin      Role = "admin"
)

// Level is the numeric access level stored per user in the permissions tab.
// 1 = ordinary surveyor, 2 = supervisor, 3 = administrator.
type Level int

const (
	LevelUser       Level = 1
	LevelSupervisor Level = 2
	LevelAdmin      Level = 3
)

// ParseLevel clamps an arbitrary stored value to a valid level. Anything
// other than 2 or 3 is an ordinary user.
func ParseLevel(n int) Level {
	if n == 2 || n == 3 {
		return Level(n)
	}
	return LevelUser
}

// Identity is a fully resolved caller: verified email plus the permission
// record that applies to it. It is re-derived on every request because the
// spreadsheet is the single source of truth.
type Identity struct {
	Email         string
	Level         Level
	Role          Role
	AllowedIDs    []string
	AssignedSheet string
}

// Elevated reports whether the identity has the admin or supervisor role.
func (id *Identity) Elevated() bool {
	return id.Role == RoleAdmin || id.Role == RoleSupervisor
}
