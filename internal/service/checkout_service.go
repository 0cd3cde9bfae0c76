package service

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"

	"storefront-service/internal/entity"
)

var (
	ErrAuthRequired          = errors.New("authentication required before checkout")
	ErrEmptyCart             = errors.New("cannot check out an empty cart")
	ErrInvalidDeliveryMethod = errors.New("unknown delivery method")
	ErrCheckoutInFlight      = errors.New("a checkout is already in progress")
	ErrDuplicateSubmission   = errors.New("order was already submitted")
)

// OrderCreator submits an order-creation request and returns the
// service-assigned order id.
type OrderCreator interface {
	CreateOrder(ctx context.Context, token string, req *entity.CreateOrderRequest) (string, error)
}

// PromoStore holds the per-customer promotion flags.
type PromoStore interface {
	BotConfigured(ctx context.Context, userID string) (bool, error)
	MarkBotConfigured(ctx context.Context, userID string) error
	HasOrdered(ctx context.Context, userID string) (bool, error)
	MarkOrdered(ctx context.Context, userID string) error
	PromoUsed(ctx context.Context, userID string) (bool, error)
	MarkPromoUsed(ctx context.Context, userID string) error
	BannerDismissed(ctx context.Context, userID string) (bool, error)
	DismissBanner(ctx context.Context, userID string) error
}

// IdempotencyStore reserves submission keys so a retried request can
// never create a second order.
type IdempotencyStore interface {
	Reserve(ctx context.Context, key string) (bool, error)
}

// CheckoutService converts a cart snapshot into an order-creation
// request. At most one submission is in flight per customer, so a
// double click can never create two orders while other customers
// check out undisturbed.
type CheckoutService struct {
	orders OrderCreator
	carts  CartStore
	promos PromoStore
	keys   IdempotencyStore

	inFlight sync.Map
}

// NewCheckoutService creates a new instance of CheckoutService.
func NewCheckoutService(orders OrderCreator, carts CartStore, promos PromoStore, keys IdempotencyStore) *CheckoutService {
	return &CheckoutService{orders: orders, carts: carts, promos: promos, keys: keys}
}

// Quote prices the current cart for a delivery method without
// submitting anything.
func (s *CheckoutService) Quote(ctx context.Context, customerID string, method entity.DeliveryMethod) (*entity.CheckoutQuote, error) {
	if !method.Valid() {
		return nil, ErrInvalidDeliveryMethod
	}

	cart, err := s.carts.Get(ctx, customerID)
	if err != nil {
		return nil, err
	}

	subtotal := cart.Subtotal()
	discount := 0.0
	eligible, err := s.promoEligible(ctx, customerID)
	if err != nil {
		logger.Error().Err(err).Str("customerId", customerID).Msg("Error reading promotion flags, quoting without discount")
	} else if eligible {
		discount = entity.TelegramDiscount(subtotal)
	}

	return &entity.CheckoutQuote{
		Subtotal:       subtotal,
		DeliveryFee:    method.Fee(),
		Discount:       discount,
		Total:          subtotal + method.Fee() - discount,
		DeliveryMethod: method,
		ItemCount:      cart.ItemCount(),
	}, nil
}

// Submit places the order built from an immutable snapshot of the
// customer's cart. Unit prices are frozen at submission time; later
// catalog changes never alter a placed order. The cart is cleared only
// after the order service confirms, so a failed submission can be
// retried as-is. A client-supplied idempotency key is reserved before
// the order call; a retried key is rejected without creating an order.
func (s *CheckoutService) Submit(ctx context.Context, token, customerID string, method entity.DeliveryMethod, address, idempotencyKey string) (string, error) {
	if customerID == "" {
		return "", ErrAuthRequired
	}
	if _, loaded := s.inFlight.LoadOrStore(customerID, struct{}{}); loaded {
		return "", ErrCheckoutInFlight
	}
	defer s.inFlight.Delete(customerID)

	if !method.Valid() {
		return "", ErrInvalidDeliveryMethod
	}

	cart, err := s.carts.Get(ctx, customerID)
	if err != nil {
		return "", err
	}
	if cart.IsEmpty() {
		return "", ErrEmptyCart
	}

	snapshot := cart.Snapshot()
	subtotal := cart.Subtotal()

	// a client that sends no key gets no cross-request protection
	if idempotencyKey == "" {
		idempotencyKey = uuid.NewString()
	}
	reserved, err := s.keys.Reserve(ctx, idempotencyKey)
	if err != nil {
		return "", err
	}
	if !reserved {
		return "", ErrDuplicateSubmission
	}

	items := make([]entity.OrderItem, 0, len(snapshot))
	for _, item := range snapshot {
		items = append(items, entity.OrderItem{
			ProductID: item.Product.ID,
			Name:      item.Product.Name,
			Quantity:  item.Quantity,
			UnitPrice: item.Product.Price,
		})
	}

	req := &entity.CreateOrderRequest{
		CustomerID:     customerID,
		DeliveryMethod: string(method),
		Items:          items,
		Address:        address,
	}

	orderID, err := s.orders.CreateOrder(ctx, token, req)
	if err != nil {
		logger.Error().Err(err).Str("customerId", customerID).Msg("Error creating order")
		return "", err
	}

	if err := s.carts.Delete(ctx, customerID); err != nil {
		logger.Error().Err(err).Str("customerId", customerID).Msg("Error clearing cart after checkout")
	}
	s.settlePromo(ctx, customerID, subtotal)

	logger.Info().Str("orderId", orderID).Str("customerId", customerID).Msg("Order created")
	return orderID, nil
}

func (s *CheckoutService) promoEligible(ctx context.Context, customerID string) (bool, error) {
	configured, err := s.promos.BotConfigured(ctx, customerID)
	if err != nil || !configured {
		return false, err
	}
	ordered, err := s.promos.HasOrdered(ctx, customerID)
	if err != nil || ordered {
		return false, err
	}
	used, err := s.promos.PromoUsed(ctx, customerID)
	if err != nil {
		return false, err
	}
	return !used, nil
}

// settlePromo marks the first-order promotion spent once an order went
// through, but only when the order actually earned a discount; a
// below-minimum order leaves the promotion available. Flag failures are
// logged, not surfaced: the order exists.
func (s *CheckoutService) settlePromo(ctx context.Context, customerID string, subtotal float64) {
	if eligible, err := s.promoEligible(ctx, customerID); err == nil && eligible && entity.TelegramDiscount(subtotal) > 0 {
		if err := s.promos.MarkPromoUsed(ctx, customerID); err != nil {
			logger.Error().Err(err).Str("customerId", customerID).Msg("Error marking promotion as used")
		}
	}
	if err := s.promos.MarkOrdered(ctx, customerID); err != nil {
		logger.Error().Err(err).Str("customerId", customerID).Msg("Error marking first order flag")
	}
}
