package auth

// Role is the access level a session logs in with.
type Role string

const (
	RoleStudent Role = "student"
	RoleTeacher Role = "teacher"
	RoleAdmin   Role = "admin"
)

// ParseRole returns the Role for s, or false if s is not a known role.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleStudent, RoleTeacher, RoleAdmin:
		return Role(s), true
	}
	return "", false
}

// Actor identifies the session performing an operation.
type Actor struct {
	Name string
	Role Role
}

// IsAdmin reports whether the actor holds announcement-management rights.
func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}
