package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront-service/internal/entity"
	"storefront-service/internal/service"
)

func TestCartServiceRoundTrip(t *testing.T) {
	svc := service.NewCartService(newMemCartStore())
	ctx := context.Background()
	burger := entity.Product{ID: "1", Name: "Classic Burger", Price: 25.90}

	cart, err := svc.AddItem(ctx, "user-1", burger, 2, "sem cebola")
	require.NoError(t, err)
	assert.Equal(t, 2, cart.ItemCount())

	// persisted, not just returned
	cart, err = svc.Get(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, "sem cebola", cart.Items[0].Observations)

	cart, err = svc.UpdateQuantity(ctx, "user-1", "1", 5)
	require.NoError(t, err)
	assert.Equal(t, 5, cart.ItemCount())

	cart, err = svc.UpdateQuantity(ctx, "user-1", "1", 0)
	require.NoError(t, err)
	assert.True(t, cart.IsEmpty(), "quantity zero removes the line")
}

func TestCartServiceAddRejectsInvalidQuantity(t *testing.T) {
	store := newMemCartStore()
	svc := service.NewCartService(store)
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "user-1", entity.Product{ID: "1", Price: 9.90}, 0, "")
	assert.ErrorIs(t, err, entity.ErrInvalidQuantity)

	cart, err := svc.Get(ctx, "user-1")
	require.NoError(t, err)
	assert.True(t, cart.IsEmpty(), "rejected mutation must not be persisted")
}

func TestCartServiceRemoveAndClear(t *testing.T) {
	svc := service.NewCartService(newMemCartStore())
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "user-1", entity.Product{ID: "1", Price: 9.90}, 1, "")
	require.NoError(t, err)
	_, err = svc.AddItem(ctx, "user-1", entity.Product{ID: "2", Price: 12.90}, 1, "")
	require.NoError(t, err)

	cart, err := svc.RemoveItem(ctx, "user-1", "1")
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, "2", cart.Items[0].Product.ID)

	require.NoError(t, svc.Clear(ctx, "user-1"))
	cart, err = svc.Get(ctx, "user-1")
	require.NoError(t, err)
	assert.True(t, cart.IsEmpty())
}
