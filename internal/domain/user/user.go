// Package user holds the application user entity. Authentication token
// issuance lives at the interface layer; the domain only knows identity,
// credentials and role.
package user

import (
	"strings"
	"time"

	"bookworm/internal/shared/constants"
	apperrors "bookworm/internal/shared/errors"
)

// User represents a registered customer or administrator.
type User struct {
	id           uint
	email        string
	passwordHash string
	firstName    string
	lastName     string
	role         string
	createdAt    time.Time
	updatedAt    time.Time
}

// NewUser creates a new user with an already-hashed password.
func NewUser(email, passwordHash, firstName, lastName string) (*User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, apperrors.NewValidationError("a valid email is required")
	}
	if passwordHash == "" {
		return nil, apperrors.NewValidationError("password hash is required")
	}

	now := time.Now().UTC()
	return &User{
		email:        email,
		passwordHash: passwordHash,
		firstName:    firstName,
		lastName:     lastName,
		role:         constants.RoleCustomer,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

// ReconstructUser rebuilds a user from persistence.
func ReconstructUser(id uint, email, passwordHash, firstName, lastName, role string, createdAt, updatedAt time.Time) *User {
	return &User{
		id:           id,
		email:        email,
		passwordHash: passwordHash,
		firstName:    firstName,
		lastName:     lastName,
		role:         role,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (u *User) ID() uint             { return u.id }
func (u *User) Email() string        { return u.email }
func (u *User) PasswordHash() string { return u.passwordHash }
func (u *User) FirstName() string    { return u.firstName }
func (u *User) LastName() string     { return u.lastName }
func (u *User) Role() string         { return u.role }
func (u *User) CreatedAt() time.Time { return u.createdAt }
func (u *User) UpdatedAt() time.Time { return u.updatedAt }

// SetID sets the user ID (only for persistence layer use)
func (u *User) SetID(id uint) { u.id = id }

// IsAdmin reports whether the user has administrator privileges.
func (u *User) IsAdmin() bool { return u.role == constants.RoleAdmin }
