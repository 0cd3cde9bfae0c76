package service_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront-service/internal/client"
	"storefront-service/internal/entity"
	"storefront-service/internal/repository"
	"storefront-service/internal/service"
)

type stubAuthenticator struct {
	session *entity.Session
	err     error
}

func (s *stubAuthenticator) Login(_ context.Context, _, _ string) (*entity.Session, error) {
	return s.session, s.err
}

func (s *stubAuthenticator) Register(_ context.Context, _ *entity.RegisterRequest) (*entity.Session, error) {
	return s.session, s.err
}

type memSessionStore struct {
	mu       sync.Mutex
	sessions map[string]entity.Session
}

func newMemSessionStore() *memSessionStore {
	return &memSessionStore{sessions: make(map[string]entity.Session)}
}

func (m *memSessionStore) Save(_ context.Context, session *entity.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[session.User.ID] = *session
	return nil
}

func (m *memSessionStore) Get(_ context.Context, userID string) (*entity.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	session, ok := m.sessions[userID]
	if !ok {
		return nil, repository.ErrSessionNotFound
	}
	return &session, nil
}

func (m *memSessionStore) Delete(_ context.Context, userID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, userID)
	return nil
}

func TestLoginPersistsSession(t *testing.T) {
	session := &entity.Session{
		Token: "jwt-token",
		User:  entity.User{ID: "user-1", Name: "Maria", Email: "maria@example.com"},
	}
	store := newMemSessionStore()
	svc := service.NewAuthService(&stubAuthenticator{session: session}, store)

	got, err := svc.Login(context.Background(), "maria@example.com", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, "jwt-token", got.Token)

	stored, err := svc.Session(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, "Maria", stored.User.Name)
}

func TestLoginRejectsBlankCredentials(t *testing.T) {
	svc := service.NewAuthService(&stubAuthenticator{}, newMemSessionStore())

	_, err := svc.Login(context.Background(), "", "s3cret")
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), "maria@example.com", "")
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)
}

func TestLoginMapsUpstreamRejection(t *testing.T) {
	auth := &stubAuthenticator{err: &client.BackendError{Status: 401, Message: "invalid credentials"}}
	svc := service.NewAuthService(auth, newMemSessionStore())

	_, err := svc.Login(context.Background(), "maria@example.com", "wrong")
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)

	auth.err = &client.BackendError{Status: 500, Message: "boom"}
	_, err = svc.Login(context.Background(), "maria@example.com", "s3cret")
	assert.NotErrorIs(t, err, service.ErrInvalidCredentials, "server faults are not credential errors")
}

func TestRegisterLogsCustomerIn(t *testing.T) {
	session := &entity.Session{Token: "jwt", User: entity.User{ID: "user-2", Name: "João"}}
	store := newMemSessionStore()
	svc := service.NewAuthService(&stubAuthenticator{session: session}, store)

	got, err := svc.Register(context.Background(), &entity.RegisterRequest{
		Name: "João", Email: "joao@example.com", CPF: "12345678901",
		Password: "s3cret", ConfirmPassword: "s3cret",
	})
	require.NoError(t, err)
	assert.Equal(t, "jwt", got.Token)

	stored, err := svc.Session(context.Background(), "user-2")
	require.NoError(t, err)
	assert.Equal(t, "João", stored.User.Name)
}

func TestRegisterRequiresAllFields(t *testing.T) {
	svc := service.NewAuthService(&stubAuthenticator{}, newMemSessionStore())

	_, err := svc.Register(context.Background(), &entity.RegisterRequest{
		Name: "João", Email: "joao@example.com",
	})
	assert.ErrorIs(t, err, service.ErrMissingRegistration)
}

func TestRegisterRejectsMismatchedConfirmation(t *testing.T) {
	svc := service.NewAuthService(&stubAuthenticator{}, newMemSessionStore())

	_, err := svc.Register(context.Background(), &entity.RegisterRequest{
		Name: "João", Email: "joao@example.com", CPF: "12345678901",
		Password: "s3cret", ConfirmPassword: "other",
	})
	assert.ErrorIs(t, err, service.ErrPasswordMismatch)
}

func TestLogoutDropsSession(t *testing.T) {
	session := &entity.Session{Token: "jwt", User: entity.User{ID: "user-1"}}
	store := newMemSessionStore()
	svc := service.NewAuthService(&stubAuthenticator{session: session}, store)

	_, err := svc.Login(context.Background(), "maria@example.com", "s3cret")
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), "user-1"))
	_, err = svc.Session(context.Background(), "user-1")
	assert.Error(t, err)
}
