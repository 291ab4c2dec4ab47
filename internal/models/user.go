package models

import "time"

// SessionUser is the locally cached user record written at login. The admin
// flags mirror what the backend reports; any one of them grants admin access.
type SessionUser struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`

	IsAdmin     bool `json:"is_admin"`
	IsStaff     bool `json:"is_staff"`
	IsSuperuser bool `json:"is_superuser"`
}

// HasAdminRole reports whether any of the admin-granting flags is set.
func (u SessionUser) HasAdminRole() bool {
	return u.IsAdmin || u.IsStaff || u.IsSuperuser
}

// LoginRequest holds credentials for authenticating against the backend.
type LoginRequest struct {
	EmailOrPhone string `json:"email_or_phone" validate:"required"`
	Password     string `json:"password" validate:"required"`
}

// LoginResponse returns the issued tokens and user info.
type LoginResponse struct {
	AccessToken  string      `json:"access_token"`
	RefreshToken string      `json:"refresh_token"`
	User         SessionUser `json:"user"`
}

// TokenClaims is the decoded (unverified) access-token payload, shown by
// whoami for operator convenience. Expiry enforcement stays server-side.
type TokenClaims struct {
	Subject   string
	Email     string
	ExpiresAt *time.Time
}
