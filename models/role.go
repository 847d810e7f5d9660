package models

// Role is the closed set of account roles recognised by the platform.
// Authorization policy on every route is declared in terms of these values,
// and tokens carrying any other role string are rejected during parsing.
type Role string

const (
	RoleAdmin         Role = "admin"
	RoleHiringManager Role = "hiring_manager"
	RoleRecruiter     Role = "recruiter"
	RoleJobSeeker     Role = "jobseeker"
)

// ParseRole converts a raw claim string into a Role.
// The ok flag is false for any value outside the closed enumeration.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleAdmin, RoleHiringManager, RoleRecruiter, RoleJobSeeker:
		return Role(s), true
	default:
		return "", false
	}
}

// In reports whether the role is a member of the given allowed set.
// An empty set means the route declares no restriction, so any
// authenticated role passes.
func (r Role) In(allowed []Role) bool {
	if len(allowed) == 0 {
		return true
	}
	for _, a := range allowed {
		if r == a {
			return true
		}
	}
	return false
}
