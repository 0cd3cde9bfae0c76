package entity

// DeliveryMethod selects how the customer receives the order.
type DeliveryMethod string

const (
	DeliveryBalcao    DeliveryMethod = "balcao"
	DeliveryDriveThru DeliveryMethod = "drive-thru"
	DeliveryDelivery  DeliveryMethod = "delivery"
)

// DeliveryFee is the flat surcharge applied to delivery orders.
const DeliveryFee = 3.00

func (m DeliveryMethod) Valid() bool {
	switch m {
	case DeliveryBalcao, DeliveryDriveThru, DeliveryDelivery:
		return true
	}
	return false
}

// Fee returns the surcharge for the method; only delivery is charged.
func (m DeliveryMethod) Fee() float64 {
	if m == DeliveryDelivery {
		return DeliveryFee
	}
	return 0
}

// OrderItem is a line of a placed order with the unit price frozen at
// submission time.
type OrderItem struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
}

type OrderStatusChange struct {
	Status     string `json:"status"`
	StatusDate string `json:"statusDate"`
	UpdatedBy  string `json:"updatedBy"`
}

// Order is the order service's representation of a placed order. The
// status field carries the backend vocabulary; MapStatus translates it
// to the display enumeration.
type Order struct {
	ID             string              `json:"id"`
	CustomerID     string              `json:"customerId"`
	OrderDate      string              `json:"orderDate"`
	Status         string              `json:"status"`
	DeliveryMethod DeliveryMethod      `json:"deliveryMethod"`
	CancelReason   string              `json:"cancelReason,omitempty"`
	Address        string              `json:"address,omitempty"`
	Total          float64             `json:"total"`
	Items          []OrderItem         `json:"items"`
	StatusHistory  []OrderStatusChange `json:"statusHistory,omitempty"`
}

// CreateOrderRequest is the payload for POST /api/orders.
type CreateOrderRequest struct {
	CustomerID     string      `json:"customerId"`
	DeliveryMethod string      `json:"deliveryMethod"`
	Items          []OrderItem `json:"items"`
	Address        string      `json:"address,omitempty"`
}

// CancelOrderRequest is the payload for PUT /api/orders/cancel/{id}.
type CancelOrderRequest struct {
	Status       string `json:"status"`
	UpdatedBy    string `json:"updatedBy"`
	CancelReason string `json:"cancelReason"`
}

// OrderPage is one fixed-size page of a customer's order history.
type OrderPage struct {
	Orders     []Order `json:"orders"`
	Page       int     `json:"page"`
	TotalPages int     `json:"totalPages"`
	TotalItems int     `json:"totalItems"`
}

// OrderEvent is the message published on the order events topic when an
// order changes status.
type OrderEvent struct {
	OrderID    string `json:"orderId"`
	CustomerID string `json:"customerId"`
	Status     string `json:"status"`
}
