package domain

import "time"

// Role classifies what an account is allowed to do.
type Role string

const (
	RoleMember Role = "member"
	RoleAdmin  Role = "admin"
)

// Valid reports whether the role is one of the known values.
func (r Role) Valid() bool {
	switch r {
	case RoleMember, RoleAdmin:
		return true
	}
	return false
}

// Account represents a registered member of the club site.
// PasswordHash holds the bcrypt verifier, never the plaintext.
type Account struct {
	ID           string
	Email        string
	Name         string
	Role         Role
	PasswordHash string
	CreatedAt    time.Time
}
