package client

import (
	"context"
	"net/http"
	"time"

	"storefront-service/internal/entity"
)

// TelegramClient talks to the Telegram linking service. Every call is
// independent; link status in particular is read fresh each time.
type TelegramClient struct {
	baseURL string
	hc      *http.Client
}

func NewTelegramClient(baseURL string, timeout time.Duration) *TelegramClient {
	return &TelegramClient{baseURL: baseURL, hc: newHTTPClient(timeout)}
}

// RequestCode asks the bot to issue a verification code for the
// authenticated customer.
func (c *TelegramClient) RequestCode(ctx context.Context, token string) (string, error) {
	var resp struct {
		Code string `json:"code"`
	}
	err := doJSON(ctx, c.hc, http.MethodPost, joinURL(c.baseURL, "/telegram/request-code"), token, nil, &resp)
	if err != nil {
		return "", err
	}
	return resp.Code, nil
}

// LinkAccount verifies a code and links the customer's chat.
func (c *TelegramClient) LinkAccount(ctx context.Context, token, code string) (*entity.LinkAccountResponse, error) {
	req := entity.LinkAccountRequest{VerificationCode: code}

	var resp entity.LinkAccountResponse
	err := doJSON(ctx, c.hc, http.MethodPost, joinURL(c.baseURL, "/telegram/link-account"), token, &req, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// Status returns the current link state.
func (c *TelegramClient) Status(ctx context.Context, token string) (*entity.LinkStatus, error) {
	var status entity.LinkStatus
	err := doJSON(ctx, c.hc, http.MethodGet, joinURL(c.baseURL, "/telegram/status"), token, nil, &status)
	if err != nil {
		return nil, err
	}
	return &status, nil
}

// Unlink removes the customer's chat link.
func (c *TelegramClient) Unlink(ctx context.Context, token string) error {
	return doJSON(ctx, c.hc, http.MethodPost, joinURL(c.baseURL, "/telegram/unlink-account"), token, nil, nil)
}

// Notify forwards an order notification; the linking service resolves
// the chat id for the customer.
func (c *TelegramClient) Notify(ctx context.Context, token string, notification *entity.TelegramNotification) error {
	return doJSON(ctx, c.hc, http.MethodPost, joinURL(c.baseURL, "/telegram/notify"), token, notification, nil)
}
