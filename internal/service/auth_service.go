package service

import (
	"context"
	"errors"

	"storefront-service/internal/client"
	"storefront-service/internal/entity"
)

var (
	ErrInvalidCredentials  = errors.New("invalid email/CPF or password")
	ErrMissingRegistration = errors.New("name, email, cpf and password are required")
	ErrPasswordMismatch    = errors.New("password confirmation does not match")
)

// Authenticator exchanges credentials for a session at the auth
// service.
type Authenticator interface {
	Login(ctx context.Context, emailOrCPF, password string) (*entity.Session, error)
	Register(ctx context.Context, req *entity.RegisterRequest) (*entity.Session, error)
}

// SessionStore persists the cached user projection and token pair.
type SessionStore interface {
	Save(ctx context.Context, session *entity.Session) error
	Get(ctx context.Context, userID string) (*entity.Session, error)
	Delete(ctx context.Context, userID string) error
}

// AuthService logs customers in against the auth service and keeps the
// resulting session. Expired tokens are not refreshed automatically: a
// 401 upstream invalidates the session and the customer logs in again.
type AuthService struct {
	auth     Authenticator
	sessions SessionStore
}

// NewAuthService creates a new instance of AuthService.
func NewAuthService(auth Authenticator, sessions SessionStore) *AuthService {
	return &AuthService{auth: auth, sessions: sessions}
}

// Login validates credentials locally, authenticates upstream and
// persists the session.
func (s *AuthService) Login(ctx context.Context, emailOrCPF, password string) (*entity.Session, error) {
	if emailOrCPF == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	session, err := s.auth.Login(ctx, emailOrCPF, password)
	if err != nil {
		var backendErr *client.BackendError
		if errors.As(err, &backendErr) && (backendErr.Status == 401 || backendErr.Status == 403) {
			return nil, ErrInvalidCredentials
		}
		logger.Error().Err(err).Msg("Error logging in")
		return nil, err
	}

	if err := s.sessions.Save(ctx, session); err != nil {
		logger.Error().Err(err).Str("userId", session.User.ID).Msg("Error persisting session")
		return nil, err
	}

	logger.Info().Str("userId", session.User.ID).Msg("Customer logged in")
	return session, nil
}

// Register passes the account creation through to the auth service and
// persists the resulting session, logging the customer in directly.
func (s *AuthService) Register(ctx context.Context, req *entity.RegisterRequest) (*entity.Session, error) {
	if req.Name == "" || req.Email == "" || req.CPF == "" || req.Password == "" {
		return nil, ErrMissingRegistration
	}
	if req.Password != req.ConfirmPassword {
		return nil, ErrPasswordMismatch
	}

	session, err := s.auth.Register(ctx, req)
	if err != nil {
		logger.Error().Err(err).Msg("Error registering customer")
		return nil, err
	}

	if err := s.sessions.Save(ctx, session); err != nil {
		logger.Error().Err(err).Str("userId", session.User.ID).Msg("Error persisting session")
		return nil, err
	}

	logger.Info().Str("userId", session.User.ID).Msg("Customer registered")
	return session, nil
}

func (s *AuthService) Session(ctx context.Context, userID string) (*entity.Session, error) {
	return s.sessions.Get(ctx, userID)
}

func (s *AuthService) Logout(ctx context.Context, userID string) error {
	return s.sessions.Delete(ctx, userID)
}

// Invalidate drops a session whose token was rejected upstream.
func (s *AuthService) Invalidate(ctx context.Context, userID string) {
	if err := s.sessions.Delete(ctx, userID); err != nil {
		logger.Error().Err(err).Str("userId", userID).Msg("Error invalidating session")
	}
}
