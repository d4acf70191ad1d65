package domain

import "time"

// Roles assignable to a user. Role changes are an administrative action;
// registration always produces RoleUser.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User is a registered account. Advertising entities are never stored
// locally; a user relates to them only through ownership records.
type User struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// IsAdmin reports whether the user holds the admin role.
func (u User) IsAdmin() bool { return u.Role == RoleAdmin }

// Identity is the authenticated caller as supplied by the token layer.
// Orchestration logic trusts it without re-verification.
type Identity struct {
	ID    int64
	Email string
	Role  string
}
