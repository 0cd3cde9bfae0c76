package api

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"storefront-service/internal/entity"
	"storefront-service/internal/service"
)

type OrderHandler struct {
	checkoutService *service.CheckoutService
	orderService    *service.OrderService
}

// NewOrderHandler creates a new instance of OrderHandler
func NewOrderHandler(checkoutService *service.CheckoutService, orderService *service.OrderService) *OrderHandler {
	return &OrderHandler{checkoutService: checkoutService, orderService: orderService}
}

// Quote prices the cart for a delivery method --> /api/checkout/quote
func (h *OrderHandler) Quote(c echo.Context) error {
	method := entity.DeliveryMethod(c.QueryParam("deliveryMethod"))

	quote, err := h.checkoutService.Quote(c.Request().Context(), userID(c), method)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(200, quote)
}

// Checkout submits the cart as an order --> /api/checkout
func (h *OrderHandler) Checkout(c echo.Context) error {
	req := struct {
		DeliveryMethod string `json:"deliveryMethod"`
		Address        string `json:"address"`
	}{}
	if err := c.Bind(&req); err != nil {
		return c.JSON(400, map[string]string{"error": "Invalid request payload"})
	}

	idempotencyKey := c.Request().Header.Get("Idempotency-Key")
	orderID, err := h.checkoutService.Submit(c.Request().Context(), bearerToken(c), userID(c), entity.DeliveryMethod(req.DeliveryMethod), req.Address, idempotencyKey)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(201, map[string]string{"orderId": orderID})
}

// ListOrders returns one page of the order history --> /api/orders
func (h *OrderHandler) ListOrders(c echo.Context) error {
	page, err := strconv.Atoi(c.QueryParam("page"))
	if err != nil {
		page = 1
	}

	result, err := h.orderService.ListOrders(c.Request().Context(), bearerToken(c), userID(c), page)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(200, orderPageView(result))
}

// CancelOrder cancels an order with a reason --> /api/orders/cancel/:id
func (h *OrderHandler) CancelOrder(c echo.Context) error {
	req := struct {
		CancelReason string `json:"cancelReason"`
	}{}
	if err := c.Bind(&req); err != nil {
		return c.JSON(400, map[string]string{"error": "Invalid request payload"})
	}

	orders, err := h.orderService.Cancel(c.Request().Context(), bearerToken(c), c.Param("id"), req.CancelReason, userID(c))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(200, map[string]interface{}{"message": "Order cancelled", "orders": decorateOrders(orders)})
}

type orderView struct {
	entity.Order
	DisplayStatus entity.OrderStatus `json:"displayStatus"`
	Progress      float64            `json:"progress"`
	HasProgress   bool               `json:"hasProgress"`
	CanCancel     bool               `json:"canCancel"`
}

// decorateOrders attaches the mapped display status, the progress
// fraction and the cancellation eligibility to each order.
func decorateOrders(orders []entity.Order) []orderView {
	views := make([]orderView, 0, len(orders))
	for _, order := range orders {
		status := entity.MapStatus(order.Status)
		progress, hasProgress := status.Progress()
		views = append(views, orderView{
			Order:         order,
			DisplayStatus: status,
			Progress:      progress,
			HasProgress:   hasProgress,
			CanCancel:     status.CanCancel(),
		})
	}
	return views
}

func orderPageView(page *entity.OrderPage) map[string]interface{} {
	return map[string]interface{}{
		"orders":     decorateOrders(page.Orders),
		"page":       page.Page,
		"totalPages": page.TotalPages,
		"totalItems": page.TotalItems,
	}
}
