package service_test

import (
	"context"
	"errors"
	"sync"

	"storefront-service/internal/entity"
)

type memCartStore struct {
	mu    sync.Mutex
	carts map[string]entity.Cart
}

func newMemCartStore() *memCartStore {
	return &memCartStore{carts: make(map[string]entity.Cart)}
}

func (m *memCartStore) Get(_ context.Context, customerID string) (*entity.Cart, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	cart := m.carts[customerID]
	items := make([]entity.CartItem, len(cart.Items))
	copy(items, cart.Items)
	return &entity.Cart{Items: items}, nil
}

func (m *memCartStore) Save(_ context.Context, customerID string, cart *entity.Cart) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	items := make([]entity.CartItem, len(cart.Items))
	copy(items, cart.Items)
	m.carts[customerID] = entity.Cart{Items: items}
	return nil
}

func (m *memCartStore) Delete(_ context.Context, customerID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.carts, customerID)
	return nil
}

type memPromoStore struct {
	mu    sync.Mutex
	flags map[string]bool
}

func newMemPromoStore() *memPromoStore {
	return &memPromoStore{flags: make(map[string]bool)}
}

func (m *memPromoStore) get(key string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.flags[key], nil
}

func (m *memPromoStore) set(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.flags[key] = true
	return nil
}

func (m *memPromoStore) BotConfigured(_ context.Context, userID string) (bool, error) {
	return m.get("bot:" + userID)
}

func (m *memPromoStore) MarkBotConfigured(_ context.Context, userID string) error {
	return m.set("bot:" + userID)
}

func (m *memPromoStore) HasOrdered(_ context.Context, userID string) (bool, error) {
	return m.get("ordered:" + userID)
}

func (m *memPromoStore) MarkOrdered(_ context.Context, userID string) error {
	return m.set("ordered:" + userID)
}

func (m *memPromoStore) PromoUsed(_ context.Context, userID string) (bool, error) {
	return m.get("used:" + userID)
}

func (m *memPromoStore) MarkPromoUsed(_ context.Context, userID string) error {
	return m.set("used:" + userID)
}

func (m *memPromoStore) BannerDismissed(_ context.Context, userID string) (bool, error) {
	return m.get("banner:" + userID)
}

func (m *memPromoStore) DismissBanner(_ context.Context, userID string) error {
	return m.set("banner:" + userID)
}

type memIdempotencyStore struct {
	mu   sync.Mutex
	keys map[string]bool
}

func newMemIdempotencyStore() *memIdempotencyStore {
	return &memIdempotencyStore{keys: make(map[string]bool)}
}

func (m *memIdempotencyStore) Reserve(_ context.Context, key string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.keys[key] {
		return false, nil
	}
	m.keys[key] = true
	return true, nil
}

type mockOrderCreator struct {
	mu       sync.Mutex
	calls    int
	requests []entity.CreateOrderRequest
	orderID  string
	err      error
	// block, when set, holds CreateOrder until released; when
	// blockCustomer is set too, only that customer's calls are held
	block         chan struct{}
	blockCustomer string
}

func (m *mockOrderCreator) CreateOrder(_ context.Context, _ string, req *entity.CreateOrderRequest) (string, error) {
	m.mu.Lock()
	m.calls++
	m.requests = append(m.requests, *req)
	block := m.block
	if m.blockCustomer != "" && m.blockCustomer != req.CustomerID {
		block = nil
	}
	m.mu.Unlock()

	if block != nil {
		<-block
	}
	if m.err != nil {
		return "", m.err
	}
	if m.orderID == "" {
		return "order-123", nil
	}
	return m.orderID, nil
}

func (m *mockOrderCreator) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

type mockOrderSource struct {
	mu          sync.Mutex
	orders      []entity.Order
	listCalls   int
	cancelCalls int
	listErr     error
	cancelErr   error
}

func (m *mockOrderSource) ListOrders(_ context.Context, _, customerID string) ([]entity.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listCalls++
	if m.listErr != nil {
		return nil, m.listErr
	}
	var orders []entity.Order
	for _, order := range m.orders {
		if order.CustomerID == customerID {
			orders = append(orders, order)
		}
	}
	return orders, nil
}

func (m *mockOrderSource) CancelOrder(_ context.Context, _, orderID string, req *entity.CancelOrderRequest) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cancelCalls++
	if m.cancelErr != nil {
		return m.cancelErr
	}
	for i := range m.orders {
		if m.orders[i].ID == orderID {
			m.orders[i].Status = req.Status
			m.orders[i].CancelReason = req.CancelReason
			return nil
		}
	}
	return errors.New("order not found upstream")
}

func (m *mockOrderSource) networkCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.listCalls + m.cancelCalls
}
