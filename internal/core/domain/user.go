package domain

import "time"

// Role values a user account may hold. Access checks are exact membership
// tests against a required set; there is no hierarchy between roles.
const (
	RoleUser     = "USER"
	RoleOperator = "OPERATOR"
	RoleAuditor  = "AUDITOR"
	RoleAdmin    = "ADMIN"
)

// Roles lists every role the system knows about, in declaration order.
var Roles = []string{RoleUser, RoleOperator, RoleAuditor, RoleAdmin}

// ValidRole reports whether role is one of the known role values.
func ValidRole(role string) bool {
	for _, r := range Roles {
		if r == role {
			return true
		}
	}
	return false
}

// User models a registered account. PasswordHash is never serialized in any
// outward response.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

// TokenClaims is the identity payload embedded in an access token.
// Subject carries the user ID in string form.
type TokenClaims struct {
	Username  string    `json:"username"`
	Subject   string    `json:"sub"`
	Role      string    `json:"role"`
	ExpiresAt time.Time `json:"-"`
}
