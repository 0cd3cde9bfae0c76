package client

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"storefront-service/internal/entity"
)

// MenuClient talks to the menu service.
type MenuClient struct {
	baseURL string
	hc      *http.Client
}

func NewMenuClient(baseURL string, timeout time.Duration) *MenuClient {
	return &MenuClient{baseURL: baseURL, hc: newHTTPClient(timeout)}
}

// Categories fetches the category list.
func (c *MenuClient) Categories(ctx context.Context) ([]entity.Category, error) {
	var categories []entity.Category
	err := doJSON(ctx, c.hc, http.MethodGet, joinURL(c.baseURL, "/api/categories"), "", nil, &categories)
	if err != nil {
		return nil, err
	}
	return categories, nil
}

// Products fetches the menu, optionally filtered by category and a
// trimmed search term.
func (c *MenuClient) Products(ctx context.Context, categoryID, search string) ([]entity.Product, error) {
	query := url.Values{}
	if categoryID != "" {
		query.Set("categoryId", categoryID)
	}
	if s := strings.TrimSpace(search); s != "" {
		query.Set("search", s)
	}

	endpoint := joinURL(c.baseURL, "/api/menu")
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var products []entity.Product
	if err := doJSON(ctx, c.hc, http.MethodGet, endpoint, "", nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}
