package models

// AuthContext is the per-request identity derived from a validated bearer
// token. It is attached to the request context by the authentication
// middleware and discarded when the response is sent.
type AuthContext struct {
	// UserID is the authenticated account identifier (the "sub" claim).
	UserID int64

	// Role is the account role used for route authorization.
	Role Role

	// OrgID is the tenant scope applied to organization-bound resources.
	// Zero for accounts without an organization binding.
	OrgID int64
}
