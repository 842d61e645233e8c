package user

import (
	"errors"
	"net/mail"
	"strings"
	"time"

	"github.com/hairizuanbinnoorazman/qa-workbench/internal/idgen"
)

var (
	// ErrInvalidEmail is returned when an email is empty or invalid.
	ErrInvalidEmail = errors.New("a valid email is required")

	// ErrInvalidUsername is returned when a username is empty or invalid.
	ErrInvalidUsername = errors.New("username is required")

	// ErrInvalidRole is returned for a role outside the known set.
	ErrInvalidRole = errors.New("invalid role")
)

// Role is a user's permission level in the workbench.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleManager Role = "manager"
	RoleTester  Role = "tester"
	RoleViewer  Role = "viewer"
)

// DefaultRole is assigned when the backend sends no role.
const DefaultRole = RoleTester

// IsValid reports whether r is a known role.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleTester, RoleViewer:
		return true
	}
	return false
}

// User represents a user in the system.
type User struct {
	ID         string `json:"id"`
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Username   string `json:"username"`
	Email      string `json:"email"`
	Role       Role   `json:"role"`
	IsVerified bool   `json:"isVerified"`
	VerifiedAt string `json:"verifiedAt,omitempty"`
	CreatedAt  string `json:"createdAt"`
	LastLogin  string `json:"lastLogin,omitempty"`
	Phone      string `json:"phone"`
	Department string `json:"department"`
	Avatar     string `json:"avatar"`
}

// DisplayName returns "First Last", falling back to the username.
func (u *User) DisplayName() string {
	name := strings.TrimSpace(u.FirstName + " " + u.LastName)
	if name == "" {
		return u.Username
	}
	return name
}

// Validate checks if the user has valid required fields.
func (u *User) Validate() error {
	if _, err := mail.ParseAddress(u.Email); err != nil || strings.TrimSpace(u.Email) == "" {
		return ErrInvalidEmail
	}
	if strings.TrimSpace(u.Username) == "" {
		return ErrInvalidUsername
	}
	if u.Role != "" && !u.Role.IsValid() {
		return ErrInvalidRole
	}
	return nil
}

// Normalize fills the optional fields a backend may omit: the username
// defaults to the email's local part, the role to DefaultRole and the
// creation time to now.
func Normalize(u User, now time.Time) User {
	u.Email = strings.TrimSpace(u.Email)
	if u.Username == "" {
		local, _, _ := strings.Cut(u.Email, "@")
		u.Username = local
	}
	if !Role(strings.ToLower(string(u.Role))).IsValid() {
		u.Role = DefaultRole
	} else {
		u.Role = Role(strings.ToLower(string(u.Role)))
	}
	if u.CreatedAt == "" {
		u.CreatedAt = idgen.ISO(now)
	}
	if u.IsVerified && u.VerifiedAt == "" {
		u.VerifiedAt = u.CreatedAt
	}
	return u
}
