package api

import (
	"net/url"

	"github.com/labstack/echo/v4"
)

// SupportHandler serves the contact links derived from configuration:
// the Telegram bot deep link and the WhatsApp chat URL.
type SupportHandler struct {
	botUsername    string
	whatsAppNumber string
}

// NewSupportHandler creates a new instance of SupportHandler
func NewSupportHandler(botUsername, whatsAppNumber string) *SupportHandler {
	return &SupportHandler{botUsername: botUsername, whatsAppNumber: whatsAppNumber}
}

// GetLinks returns the support contact links --> /api/support
func (h *SupportHandler) GetLinks(c echo.Context) error {
	links := map[string]string{
		"telegramBotUrl": botDeepLink(h.botUsername, c.QueryParam("start")),
	}
	if h.whatsAppNumber != "" {
		links["whatsappUrl"] = "https://wa.me/" + h.whatsAppNumber
	}
	return c.JSON(200, links)
}

// botDeepLink builds the t.me link, carrying the start parameter when
// one is given so the bot opens on the right conversation step.
func botDeepLink(username, start string) string {
	link := "https://t.me/" + username
	if start != "" {
		link += "?start=" + url.QueryEscape(start)
	}
	return link
}
