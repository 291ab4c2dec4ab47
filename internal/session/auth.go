package session

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/openlearn-labs/lms-console/internal/models"
	"github.com/openlearn-labs/lms-console/pkg/api"
	apperrors "github.com/openlearn-labs/lms-console/pkg/errors"
)

// Auth drives the login and logout flows, the only writers of the session
// record.
type Auth struct {
	client   *api.Client
	session  *Session
	validate *validator.Validate
	logger   *zap.Logger
}

// NewAuth builds the auth flow against the shared client.
func NewAuth(client *api.Client, sess *Session, logger *zap.Logger) *Auth {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Auth{client: client, session: sess, validate: validator.New(), logger: logger}
}

// Login authenticates against the backend and persists the session exactly
// once. A failed login leaves the prior session untouched.
func (a *Auth) Login(ctx context.Context, req models.LoginRequest, remember bool) (models.SessionUser, error) {
	if err := a.validate.Struct(req); err != nil {
		return models.SessionUser{}, apperrors.Wrap(err, apperrors.ErrValidation.Code, apperrors.ErrValidation.Status, "email/phone and password are required")
	}

	var resp models.LoginResponse
	if err := a.client.Post(ctx, "/auth/login/", req, &resp); err != nil {
		return models.SessionUser{}, err
	}
	if resp.AccessToken == "" {
		return models.SessionUser{}, apperrors.Clone(apperrors.ErrAPI, "login response carried no token")
	}

	if err := a.session.SaveLogin(resp, req.EmailOrPhone, remember); err != nil {
		return models.SessionUser{}, err
	}
	a.logger.Info("logged in", zap.String("user", resp.User.Email))
	return resp.User, nil
}

// Logout clears the local session. The backend keeps its own token state;
// no server call is made.
func (a *Auth) Logout() error {
	return a.session.Logout()
}
