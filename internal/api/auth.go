package api

import (
	"github.com/labstack/echo/v4"

	"storefront-service/internal/entity"
	"storefront-service/internal/service"
)

type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler creates a new instance of AuthHandler
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login authenticates a customer --> /api/auth/login
func (h *AuthHandler) Login(c echo.Context) error {
	login := entity.LoginRequest{}
	if err := c.Bind(&login); err != nil {
		return c.JSON(400, map[string]string{"error": "Invalid request payload"})
	}

	session, err := h.authService.Login(c.Request().Context(), login.EmailOrCPF, login.Password)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(200, session)
}

// Register creates an account and logs the customer in --> /api/auth/register
func (h *AuthHandler) Register(c echo.Context) error {
	req := entity.RegisterRequest{}
	if err := c.Bind(&req); err != nil {
		return c.JSON(400, map[string]string{"error": "Invalid request payload"})
	}

	session, err := h.authService.Register(c.Request().Context(), &req)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(201, session)
}

// Me returns the cached session of the authenticated customer --> /api/auth/me
func (h *AuthHandler) Me(c echo.Context) error {
	session, err := h.authService.Session(c.Request().Context(), userID(c))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(200, session.User)
}

// Logout drops the stored session --> /api/auth/logout
func (h *AuthHandler) Logout(c echo.Context) error {
	if err := h.authService.Logout(c.Request().Context(), userID(c)); err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(200, map[string]string{"message": "Logged out"})
}
