package authdomain

// Role represents a caller's role within one league.
type Role string

const (
	RoleMember  Role = "member"
	RoleCaptain Role = "captain"
	RoleAdmin   Role = "admin"
)

// IsValid checks if the role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleMember, RoleCaptain, RoleAdmin:
		return true
	default:
		return false
	}
}

// Satisfies reports whether holding r is enough for a check requiring
// required. Admin satisfies every role and captain satisfies member.
func (r Role) Satisfies(required Role) bool {
	switch r {
	case RoleAdmin:
		return required.IsValid()
	case RoleCaptain:
		return required == RoleCaptain || required == RoleMember
	case RoleMember:
		return required == RoleMember
	default:
		return false
	}
}

// String returns the string representation of the role.
func (r Role) String() string {
	return string(r)
}
