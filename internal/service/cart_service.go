package service

import (
	"context"

	"storefront-service/internal/entity"
)

// CartStore persists one cart per customer.
type CartStore interface {
	Get(ctx context.Context, customerID string) (*entity.Cart, error)
	Save(ctx context.Context, customerID string, cart *entity.Cart) error
	Delete(ctx context.Context, customerID string) error
}

// CartService applies cart mutations against the store. Mutations are
// applied in call order; derived values come from entity.Cart and are
// never cached here.
type CartService struct {
	carts CartStore
}

// NewCartService creates a new instance of CartService.
func NewCartService(carts CartStore) *CartService {
	return &CartService{carts: carts}
}

func (s *CartService) Get(ctx context.Context, customerID string) (*entity.Cart, error) {
	return s.carts.Get(ctx, customerID)
}

// AddItem adds a product to the customer's cart, merging quantities
// when the product is already present.
func (s *CartService) AddItem(ctx context.Context, customerID string, product entity.Product, quantity int, observations string) (*entity.Cart, error) {
	cart, err := s.carts.Get(ctx, customerID)
	if err != nil {
		return nil, err
	}

	if err := cart.AddItem(product, quantity, observations); err != nil {
		return nil, err
	}

	if err := s.carts.Save(ctx, customerID, cart); err != nil {
		logger.Error().Err(err).Str("customerId", customerID).Msg("Error saving cart")
		return nil, err
	}
	return cart, nil
}

func (s *CartService) RemoveItem(ctx context.Context, customerID, productID string) (*entity.Cart, error) {
	cart, err := s.carts.Get(ctx, customerID)
	if err != nil {
		return nil, err
	}

	cart.RemoveItem(productID)

	if err := s.carts.Save(ctx, customerID, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

func (s *CartService) UpdateQuantity(ctx context.Context, customerID, productID string, quantity int) (*entity.Cart, error) {
	cart, err := s.carts.Get(ctx, customerID)
	if err != nil {
		return nil, err
	}

	cart.UpdateQuantity(productID, quantity)

	if err := s.carts.Save(ctx, customerID, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

func (s *CartService) Clear(ctx context.Context, customerID string) error {
	return s.carts.Delete(ctx, customerID)
}
