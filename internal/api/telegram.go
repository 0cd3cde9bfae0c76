package api

import (
	"github.com/labstack/echo/v4"

	"storefront-service/internal/entity"
	"storefront-service/internal/service"
)

type TelegramHandler struct {
	telegramService *service.TelegramService
}

// NewTelegramHandler creates a new instance of TelegramHandler
func NewTelegramHandler(telegramService *service.TelegramService) *TelegramHandler {
	return &TelegramHandler{telegramService: telegramService}
}

// RequestCode asks the bot for a verification code --> /api/telegram/request-code
func (h *TelegramHandler) RequestCode(c echo.Context) error {
	code, err := h.telegramService.RequestCode(c.Request().Context(), bearerToken(c))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(200, map[string]string{"code": code})
}

// LinkAccount verifies a code and links the chat --> /api/telegram/link-account
func (h *TelegramHandler) LinkAccount(c echo.Context) error {
	req := entity.LinkAccountRequest{}
	if err := c.Bind(&req); err != nil {
		return c.JSON(400, map[string]string{"error": "Invalid request payload"})
	}

	resp, err := h.telegramService.LinkAccount(c.Request().Context(), bearerToken(c), userID(c), req.VerificationCode)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(200, resp)
}

// Status reads the current link state --> /api/telegram/status
func (h *TelegramHandler) Status(c echo.Context) error {
	status, err := h.telegramService.Status(c.Request().Context(), bearerToken(c))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(200, status)
}

// Unlink removes the chat link --> /api/telegram/unlink-account
func (h *TelegramHandler) Unlink(c echo.Context) error {
	if err := h.telegramService.Unlink(c.Request().Context(), bearerToken(c)); err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(200, map[string]string{"message": "Account unlinked"})
}

// Promotion reports the first-order discount standing --> /api/telegram/promotion
func (h *TelegramHandler) Promotion(c echo.Context) error {
	promo, err := h.telegramService.Promotion(c.Request().Context(), userID(c))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(200, promo)
}

// DismissBanner records that the promo banner was dismissed --> /api/telegram/promotion/dismiss
func (h *TelegramHandler) DismissBanner(c echo.Context) error {
	if err := h.telegramService.DismissBanner(c.Request().Context(), userID(c)); err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(200, map[string]string{"message": "Banner dismissed"})
}
