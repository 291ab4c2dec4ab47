package session

import (
	"encoding/json"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"github.com/openlearn-labs/lms-console/internal/models"
)

// Session answers "is there a logged-in user" and "is that user an admin"
// from the cached record. It is presentational gating only: the backend
// independently authorizes every mutating call, this layer just decides what
// the operator gets to see.
type Session struct {
	store  Store
	logger *zap.Logger
}

// New wraps a store with typed accessors.
func New(store Store, logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Session{store: store, logger: logger}
}

// AccessToken implements api.TokenProvider, preferring the primary key and
// falling back to the legacy duplicate.
func (s *Session) AccessToken() string {
	record, err := s.store.Get()
	if err != nil {
		return ""
	}
	if record.AccessToken != "" {
		return record.AccessToken
	}
	return record.AuthToken
}

// User returns the cached user record. Malformed JSON fails closed: the
// second return is false and no error escapes to the caller.
func (s *Session) User() (models.SessionUser, bool) {
	record, err := s.store.Get()
	if err != nil {
		return models.SessionUser{}, false
	}
	raw := record.User
	if len(raw) == 0 {
		raw = record.UserData
	}
	if len(raw) == 0 {
		return models.SessionUser{}, false
	}
	var user models.SessionUser
	if err := json.Unmarshal(raw, &user); err != nil {
		s.logger.Debug("cached user record is malformed; treating as logged out", zap.Error(err))
		return models.SessionUser{}, false
	}
	return user, true
}

// IsAuthenticated is true iff a token and a parseable user record are both
// present. Either one alone is unauthenticated.
func (s *Session) IsAuthenticated() bool {
	if s.AccessToken() == "" {
		return false
	}
	_, ok := s.User()
	return ok
}

// IsAdmin is true iff a user record exists and any admin-granting flag is
// set. No user record means false.
func (s *Session) IsAdmin() bool {
	user, ok := s.User()
	return ok && user.HasAdminRole()
}

// SaveLogin records a successful login. remember controls whether the login
// identifier is kept for pre-filling the next login.
func (s *Session) SaveLogin(resp models.LoginResponse, identifier string, remember bool) error {
	prior, _ := s.store.Get()
	userJSON, err := json.Marshal(resp.User)
	if err != nil {
		return err
	}
	record := Record{
		AccessToken:        resp.AccessToken,
		AuthToken:          resp.AccessToken,
		RefreshToken:       resp.RefreshToken,
		LegacyRefreshToken: resp.RefreshToken,
		User:               userJSON,
		UserData:           userJSON,
		RememberedLogin:    prior.RememberedLogin,
	}
	if remember {
		record.RememberedLogin = identifier
	}
	return s.store.Set(record)
}

// Logout clears the session, keeping only the remembered login identifier.
func (s *Session) Logout() error {
	prior, _ := s.store.Get()
	if err := s.store.Clear(); err != nil {
		return err
	}
	if prior.RememberedLogin == "" {
		return nil
	}
	return s.store.Set(Record{RememberedLogin: prior.RememberedLogin})
}

// RememberedLogin returns the last remembered login identifier, if any.
func (s *Session) RememberedLogin() string {
	record, err := s.store.Get()
	if err != nil {
		return ""
	}
	return record.RememberedLogin
}

// Claims decodes the access token payload without verifying the signature.
// Display only; token validity stays a backend concern.
func (s *Session) Claims() (*models.TokenClaims, bool) {
	token := s.AccessToken()
	if token == "" {
		return nil, false
	}
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return nil, false
	}
	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return nil, false
	}

	out := &models.TokenClaims{}
	if sub, err := claims.GetSubject(); err == nil {
		out.Subject = sub
	}
	if email, ok := claims["email"].(string); ok {
		out.Email = email
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		t := exp.Time
		out.ExpiresAt = &t
	}
	return out, true
}
