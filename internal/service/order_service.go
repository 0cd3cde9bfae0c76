package service

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"storefront-service/internal/entity"
)

var (
	ErrOrderNotFound    = errors.New("order not found")
	ErrEmptyReason      = errors.New("cancellation reason must not be empty")
	ErrCancelNotAllowed = errors.New("order can no longer be cancelled")
)

// OrderSource lists and cancels a customer's orders. The order service
// client is the production source; the demo source backs DEMO_MODE.
type OrderSource interface {
	ListOrders(ctx context.Context, token, customerID string) ([]entity.Order, error)
	CancelOrder(ctx context.Context, token, orderID string, req *entity.CancelOrderRequest) error
}

// OrderService tracks the customer's order history: most-recent-first
// listing in fixed-size pages, display-status mapping and the
// cancellation rules. The last fetched list is kept per customer so an
// ineligible cancellation is rejected without touching the network.
type OrderService struct {
	source   OrderSource
	pageSize int

	mu      sync.Mutex
	fetched map[string][]entity.Order
}

// NewOrderService creates a new instance of OrderService.
func NewOrderService(source OrderSource, pageSize int) *OrderService {
	if pageSize <= 0 {
		pageSize = 6
	}
	return &OrderService{source: source, pageSize: pageSize, fetched: make(map[string][]entity.Order)}
}

// FetchOrders returns every order for the customer, newest first.
func (s *OrderService) FetchOrders(ctx context.Context, token, customerID string) ([]entity.Order, error) {
	orders, err := s.source.ListOrders(ctx, token, customerID)
	if err != nil {
		logger.Error().Err(err).Str("customerId", customerID).Msg("Error fetching orders")
		return nil, err
	}

	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].OrderDate > orders[j].OrderDate
	})

	s.mu.Lock()
	s.fetched[customerID] = orders
	s.mu.Unlock()

	return orders, nil
}

// ListOrders returns one page of the customer's order history. Pages
// are 1-based; a page past the end is empty, not an error, and a
// customer with no orders gets a single empty page.
func (s *OrderService) ListOrders(ctx context.Context, token, customerID string, page int) (*entity.OrderPage, error) {
	orders, err := s.FetchOrders(ctx, token, customerID)
	if err != nil {
		return nil, err
	}

	if page < 1 {
		page = 1
	}
	totalPages := (len(orders) + s.pageSize - 1) / s.pageSize
	if totalPages == 0 {
		totalPages = 1
	}

	start := (page - 1) * s.pageSize
	if start > len(orders) {
		start = len(orders)
	}
	end := start + s.pageSize
	if end > len(orders) {
		end = len(orders)
	}

	return &entity.OrderPage{
		Orders:     orders[start:end],
		Page:       page,
		TotalPages: totalPages,
		TotalItems: len(orders),
	}, nil
}

// CanCancel reports whether the order's mapped status still allows a
// customer cancellation.
func (s *OrderService) CanCancel(order *entity.Order) bool {
	return entity.MapStatus(order.Status).CanCancel()
}

// lastFetched finds the order in the customer's last fetched list.
func (s *OrderService) lastFetched(customerID, orderID string) (*entity.Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.fetched[customerID] {
		if s.fetched[customerID][i].ID == orderID {
			order := s.fetched[customerID][i]
			return &order, true
		}
	}
	return nil, false
}

// Cancel cancels the customer's order. The reason and the eligibility
// of the current status are validated locally first, against the last
// fetched list when available, so an ineligible order costs no network
// call. On success the list is re-fetched so callers see the
// authoritative cancelled state; on failure nothing is patched
// locally.
func (s *OrderService) Cancel(ctx context.Context, token, orderID, reason, userID string) ([]entity.Order, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, ErrEmptyReason
	}

	target, ok := s.lastFetched(userID, orderID)
	if !ok {
		orders, err := s.FetchOrders(ctx, token, userID)
		if err != nil {
			return nil, err
		}
		for i := range orders {
			if orders[i].ID == orderID {
				target = &orders[i]
				break
			}
		}
	}
	if target == nil {
		return nil, ErrOrderNotFound
	}
	if !s.CanCancel(target) {
		return nil, ErrCancelNotAllowed
	}

	req := &entity.CancelOrderRequest{
		Status:       string(entity.StatusCancelled),
		UpdatedBy:    userID,
		CancelReason: reason,
	}
	if err := s.source.CancelOrder(ctx, token, orderID, req); err != nil {
		logger.Error().Err(err).Str("orderId", orderID).Msg("Error cancelling order")
		return nil, err
	}

	logger.Info().Str("orderId", orderID).Str("customerId", userID).Msg("Order cancelled")
	return s.FetchOrders(ctx, token, userID)
}
