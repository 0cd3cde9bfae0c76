package api

import (
	"errors"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"storefront-service/internal/client"
	"storefront-service/internal/entity"
	"storefront-service/internal/repository"
	"storefront-service/internal/service"
)

// userID extracts the authenticated customer id from the JWT placed in
// the context by the jwt middleware.
func userID(c echo.Context) string {
	token, ok := c.Get("user").(*jwt.Token)
	if !ok {
		return ""
	}
	subject, err := token.Claims.GetSubject()
	if err != nil {
		return ""
	}
	return subject
}

// bearerToken returns the raw bearer token of the incoming request so
// it can be forwarded to the upstream services.
func bearerToken(c echo.Context) string {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
}

// errorJSON maps service errors to response codes in the shared
// {"error": ...} shape.
func errorJSON(c echo.Context, err error) error {
	switch {
	case errors.Is(err, service.ErrAuthRequired),
		errors.Is(err, service.ErrInvalidCredentials):
		return c.JSON(401, map[string]string{"error": err.Error()})
	case errors.Is(err, entity.ErrInvalidQuantity),
		errors.Is(err, service.ErrEmptyCart),
		errors.Is(err, service.ErrEmptyReason),
		errors.Is(err, service.ErrInvalidDeliveryMethod),
		errors.Is(err, service.ErrEmptyVerificationCode),
		errors.Is(err, service.ErrMissingRegistration),
		errors.Is(err, service.ErrPasswordMismatch):
		return c.JSON(400, map[string]string{"error": err.Error()})
	case errors.Is(err, service.ErrOrderNotFound),
		errors.Is(err, repository.ErrSessionNotFound):
		return c.JSON(404, map[string]string{"error": err.Error()})
	case errors.Is(err, service.ErrCheckoutInFlight),
		errors.Is(err, service.ErrDuplicateSubmission),
		errors.Is(err, service.ErrCancelNotAllowed):
		return c.JSON(409, map[string]string{"error": err.Error()})
	case errors.Is(err, client.ErrTimeout):
		return c.JSON(504, map[string]string{"error": err.Error()})
	}

	var backendErr *client.BackendError
	if errors.As(err, &backendErr) {
		return c.JSON(502, map[string]string{"error": backendErr.Error()})
	}

	return c.JSON(500, map[string]string{"error": err.Error()})
}
