package service

import (
	"context"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"storefront-service/internal/entity"
)

// DemoOrderSource is the in-memory order source behind DEMO_MODE. Each
// customer is lazily seeded with example orders on first listing; the
// simulator advances them to emulate kitchen progress. It never holds
// backend-sourced orders.
type DemoOrderSource struct {
	mu     sync.Mutex
	orders map[string][]entity.Order
}

func NewDemoOrderSource() *DemoOrderSource {
	return &DemoOrderSource{orders: make(map[string][]entity.Order)}
}

func (d *DemoOrderSource) ListOrders(_ context.Context, _, customerID string) ([]entity.Order, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.orders[customerID]; !ok {
		d.orders[customerID] = seedOrders(customerID)
	}

	orders := make([]entity.Order, len(d.orders[customerID]))
	copy(orders, d.orders[customerID])
	return orders, nil
}

func (d *DemoOrderSource) CancelOrder(_ context.Context, _, orderID string, req *entity.CancelOrderRequest) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	for customerID := range d.orders {
		for i := range d.orders[customerID] {
			if d.orders[customerID][i].ID == orderID {
				d.orders[customerID][i].Status = req.Status
				d.orders[customerID][i].CancelReason = req.CancelReason
				return nil
			}
		}
	}
	return ErrOrderNotFound
}

// AdvanceRandom moves one randomly chosen non-terminal order to its
// next status and returns the change, or false when every order is
// terminal.
func (d *DemoOrderSource) AdvanceRandom() (entity.OrderEvent, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	type ref struct {
		customerID string
		index      int
		next       entity.OrderStatus
	}
	var candidates []ref

	for customerID, orders := range d.orders {
		for i := range orders {
			next, ok := entity.MapStatus(orders[i].Status).Next()
			if ok {
				candidates = append(candidates, ref{customerID, i, next})
			}
		}
	}
	if len(candidates) == 0 {
		return entity.OrderEvent{}, false
	}

	pick := candidates[rand.Intn(len(candidates))]
	order := &d.orders[pick.customerID][pick.index]
	order.Status = string(pick.next)
	order.StatusHistory = append(order.StatusHistory, entity.OrderStatusChange{
		Status:     string(pick.next),
		StatusDate: time.Now().UTC().Format(time.RFC3339),
		UpdatedBy:  "demo-simulator",
	})

	return entity.OrderEvent{OrderID: order.ID, CustomerID: order.CustomerID, Status: order.Status}, true
}

func demoOrderID() string {
	return "demo-" + strings.SplitN(uuid.NewString(), "-", 2)[0]
}

func seedOrders(customerID string) []entity.Order {
	now := time.Now().UTC()
	stamp := func(age time.Duration) string {
		return now.Add(-age).Format(time.RFC3339)
	}

	return []entity.Order{
		{
			ID: demoOrderID(), CustomerID: customerID, OrderDate: stamp(2 * time.Hour),
			Status: "completed", DeliveryMethod: entity.DeliveryDelivery, Total: 50.30,
			Items: []entity.OrderItem{
				{ProductID: "1", Name: "Big FastTech", Quantity: 2, UnitPrice: 18.90},
				{ProductID: "5", Name: "Coca-Cola 350ml", Quantity: 1, UnitPrice: 4.50},
			},
		},
		{
			ID: demoOrderID(), CustomerID: customerID, OrderDate: stamp(30 * time.Minute),
			Status: "preparing", DeliveryMethod: entity.DeliveryBalcao, Total: 24.40,
			Items: []entity.OrderItem{
				{ProductID: "2", Name: "Chicken Deluxe", Quantity: 1, UnitPrice: 16.50},
				{ProductID: "9", Name: "Batata Frita Grande", Quantity: 1, UnitPrice: 7.90},
			},
		},
		{
			ID: demoOrderID(), CustomerID: customerID, OrderDate: stamp(10 * time.Minute),
			Status: "ready", DeliveryMethod: entity.DeliveryDriveThru, Total: 8.50,
			Items: []entity.OrderItem{
				{ProductID: "12", Name: "Torta de Chocolate", Quantity: 1, UnitPrice: 8.50},
			},
		},
		{
			ID: demoOrderID(), CustomerID: customerID, OrderDate: stamp(5 * time.Minute),
			Status: "accepted", DeliveryMethod: entity.DeliveryDelivery, Total: 20.50,
			Items: []entity.OrderItem{
				{ProductID: "4", Name: "Veggie Burger", Quantity: 1, UnitPrice: 17.50},
			},
		},
		{
			ID: demoOrderID(), CustomerID: customerID, OrderDate: stamp(1 * time.Minute),
			Status: "received", DeliveryMethod: entity.DeliveryBalcao, Total: 15.90,
			Items: []entity.OrderItem{
				{ProductID: "3", Name: "Fish Burger", Quantity: 1, UnitPrice: 15.90},
			},
		},
	}
}

var _ OrderSource = (*DemoOrderSource)(nil)
