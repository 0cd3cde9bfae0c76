package api

import (
	"github.com/labstack/echo/v4"

	"storefront-service/internal/entity"
	"storefront-service/internal/service"
)

type CartHandler struct {
	cartService *service.CartService
}

// NewCartHandler creates a new instance of CartHandler
func NewCartHandler(cartService *service.CartService) *CartHandler {
	return &CartHandler{cartService: cartService}
}

// GetCart returns the customer's cart --> /api/cart
func (h *CartHandler) GetCart(c echo.Context) error {
	cart, err := h.cartService.Get(c.Request().Context(), userID(c))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(200, cartView(cart))
}

// AddItem adds a product to the cart --> /api/cart/items
func (h *CartHandler) AddItem(c echo.Context) error {
	req := struct {
		Product      entity.Product `json:"product"`
		Quantity     int            `json:"quantity"`
		Observations string         `json:"observations"`
	}{}
	if err := c.Bind(&req); err != nil {
		return c.JSON(400, map[string]string{"error": "Invalid request payload"})
	}
	if req.Product.ID == "" {
		return c.JSON(400, map[string]string{"error": "Missing product"})
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	cart, err := h.cartService.AddItem(c.Request().Context(), userID(c), req.Product, req.Quantity, req.Observations)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(200, cartView(cart))
}

// UpdateItem overwrites an entry's quantity --> /api/cart/items/:productId
func (h *CartHandler) UpdateItem(c echo.Context) error {
	req := struct {
		Quantity int `json:"quantity"`
	}{}
	if err := c.Bind(&req); err != nil {
		return c.JSON(400, map[string]string{"error": "Invalid request payload"})
	}

	cart, err := h.cartService.UpdateQuantity(c.Request().Context(), userID(c), c.Param("productId"), req.Quantity)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(200, cartView(cart))
}

// RemoveItem removes an entry --> /api/cart/items/:productId
func (h *CartHandler) RemoveItem(c echo.Context) error {
	cart, err := h.cartService.RemoveItem(c.Request().Context(), userID(c), c.Param("productId"))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(200, cartView(cart))
}

// ClearCart empties the cart --> /api/cart
func (h *CartHandler) ClearCart(c echo.Context) error {
	if err := h.cartService.Clear(c.Request().Context(), userID(c)); err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(200, map[string]string{"message": "Cart cleared"})
}

// cartView decorates the cart with its derived values so clients never
// recompute them.
func cartView(cart *entity.Cart) map[string]interface{} {
	return map[string]interface{}{
		"items":     cart.Items,
		"itemCount": cart.ItemCount(),
		"subtotal":  cart.Subtotal(),
	}
}
