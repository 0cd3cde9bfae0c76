package client

import (
	"context"
	"net/http"
	"time"

	"storefront-service/internal/entity"
)

// AuthClient talks to the auth service.
type AuthClient struct {
	baseURL string
	hc      *http.Client
}

func NewAuthClient(baseURL string, timeout time.Duration) *AuthClient {
	return &AuthClient{baseURL: baseURL, hc: newHTTPClient(timeout)}
}

// Login exchanges credentials for a token pair plus a user projection.
func (c *AuthClient) Login(ctx context.Context, emailOrCPF, password string) (*entity.Session, error) {
	req := entity.LoginRequest{EmailOrCPF: emailOrCPF, Password: password}

	var session entity.Session
	err := doJSON(ctx, c.hc, http.MethodPost, joinURL(c.baseURL, "/api/Auth/login"), "", &req, &session)
	if err != nil {
		return nil, err
	}
	return &session, nil
}

// Register creates a customer account. The confirmation field is a
// local check and is not forwarded. The auth service answers with a
// session, logging the customer in directly.
func (c *AuthClient) Register(ctx context.Context, req *entity.RegisterRequest) (*entity.Session, error) {
	body := struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		CPF      string `json:"cpf"`
		Phone    string `json:"phone,omitempty"`
		Password string `json:"password"`
	}{req.Name, req.Email, req.CPF, req.Phone, req.Password}

	var session entity.Session
	err := doJSON(ctx, c.hc, http.MethodPost, joinURL(c.baseURL, "/api/Auth/register"), "", &body, &session)
	if err != nil {
		return nil, err
	}
	return &session, nil
}
