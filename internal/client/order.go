package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"storefront-service/internal/entity"
)

// OrderClient talks to the order service.
type OrderClient struct {
	baseURL string
	hc      *http.Client
}

func NewOrderClient(baseURL string, timeout time.Duration) *OrderClient {
	return &OrderClient{baseURL: baseURL, hc: newHTTPClient(timeout)}
}

// CreateOrder submits a new order and returns the service-assigned
// identifier. Deployments answer with either "id" or "orderId".
func (c *OrderClient) CreateOrder(ctx context.Context, token string, req *entity.CreateOrderRequest) (string, error) {
	var resp struct {
		ID      interface{} `json:"id"`
		OrderID interface{} `json:"orderId"`
	}
	err := doJSON(ctx, c.hc, http.MethodPost, joinURL(c.baseURL, "/api/orders"), token, req, &resp)
	if err != nil {
		return "", err
	}

	orderID := stringifyID(resp.ID)
	if orderID == "" {
		orderID = stringifyID(resp.OrderID)
	}
	if orderID == "" {
		return "", fmt.Errorf("%w: missing order id", ErrMalformedResponse)
	}
	return orderID, nil
}

// ListOrders fetches every order belonging to the customer.
func (c *OrderClient) ListOrders(ctx context.Context, token, customerID string) ([]entity.Order, error) {
	endpoint := joinURL(c.baseURL, "/api/orders") + "?customerId=" + url.QueryEscape(customerID)

	var orders []entity.Order
	if err := doJSON(ctx, c.hc, http.MethodGet, endpoint, token, nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// CancelOrder asks the order service to cancel an order. The order
// list must be re-fetched afterwards; local state is never patched
// speculatively.
func (c *OrderClient) CancelOrder(ctx context.Context, token, orderID string, req *entity.CancelOrderRequest) error {
	endpoint := joinURL(c.baseURL, "/api/orders/cancel/") + url.PathEscape(orderID)
	return doJSON(ctx, c.hc, http.MethodPut, endpoint, token, req, nil)
}

// stringifyID normalizes the id field, which some deployments send as a
// JSON number.
func stringifyID(v interface{}) string {
	switch id := v.(type) {
	case string:
		return id
	case float64:
		return fmt.Sprintf("%.0f", id)
	default:
		return ""
	}
}
