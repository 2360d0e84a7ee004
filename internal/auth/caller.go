package auth

// Role classifies a caller for access-control decisions
type Role int

const (
	RoleAnonymous Role = iota
	RoleAuthenticated
	RoleStaff
)

// String returns the role name for logging
func (r Role) String() string {
	switch r {
	case RoleStaff:
		return "staff"
	case RoleAuthenticated:
		return "authenticated"
	default:
		return "anonymous"
	}
}

// Caller is the per-request identity derived from request credentials.
// It is never persisted; ownership checks compare Caller.ID against a
// resource's author id.
type Caller struct {
	ID              int64
	IsAuthenticated bool
	IsStaff         bool
}

// Anonymous returns the caller used for requests without credentials
func Anonymous() Caller {
	return Caller{}
}

// Role derives the caller's role from its identity flags
func (c Caller) Role() Role {
	switch {
	case c.IsStaff:
		return RoleStaff
	case c.IsAuthenticated:
		return RoleAuthenticated
	default:
		return RoleAnonymous
	}
}
