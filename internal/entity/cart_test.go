package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront-service/internal/entity"
)

func burger() entity.Product {
	return entity.Product{ID: "1", Name: "Big FastTech", Price: 18.90, Category: entity.CategoryLanche, Availability: true}
}

func soda() entity.Product {
	return entity.Product{ID: "5", Name: "Coca-Cola 350ml", Price: 4.50, Category: entity.CategoryBebida, Availability: true}
}

func TestAddItemMergesByProduct(t *testing.T) {
	cart := &entity.Cart{}

	require.NoError(t, cart.AddItem(burger(), 2, ""))
	require.NoError(t, cart.AddItem(burger(), 3, ""))

	require.Len(t, cart.Items, 1)
	assert.Equal(t, 5, cart.Items[0].Quantity)
	assert.Equal(t, 5, cart.ItemCount())
}

func TestAddItemRejectsNonPositiveQuantity(t *testing.T) {
	cart := &entity.Cart{}

	assert.ErrorIs(t, cart.AddItem(burger(), 0, ""), entity.ErrInvalidQuantity)
	assert.ErrorIs(t, cart.AddItem(burger(), -2, ""), entity.ErrInvalidQuantity)
	assert.True(t, cart.IsEmpty())
}

func TestAddItemObservations(t *testing.T) {
	cart := &entity.Cart{}

	require.NoError(t, cart.AddItem(burger(), 1, "Sem cebola"))

	t.Run("absent observation keeps existing", func(t *testing.T) {
		require.NoError(t, cart.AddItem(burger(), 1, ""))
		assert.Equal(t, "Sem cebola", cart.Items[0].Observations)
	})

	t.Run("new observation overwrites", func(t *testing.T) {
		require.NoError(t, cart.AddItem(burger(), 1, "Sem tomate"))
		assert.Equal(t, "Sem tomate", cart.Items[0].Observations)
	})
}

func TestDerivedValuesRecomputed(t *testing.T) {
	cart := &entity.Cart{}

	require.NoError(t, cart.AddItem(burger(), 2, ""))
	require.NoError(t, cart.AddItem(soda(), 1, ""))

	assert.Equal(t, 3, cart.ItemCount())
	assert.InDelta(t, 2*18.90+4.50, cart.Subtotal(), 1e-9)

	cart.UpdateQuantity("1", 1)
	assert.Equal(t, 2, cart.ItemCount())
	assert.InDelta(t, 18.90+4.50, cart.Subtotal(), 1e-9)
}

func TestUpdateQuantityRemovesOnNonPositive(t *testing.T) {
	cart := &entity.Cart{}
	require.NoError(t, cart.AddItem(burger(), 2, ""))
	require.NoError(t, cart.AddItem(soda(), 1, ""))

	cart.UpdateQuantity("1", 0)
	require.Len(t, cart.Items, 1)

	cart.UpdateQuantity("5", -1)
	assert.True(t, cart.IsEmpty())
}

func TestRemoveItemAbsentIsNoop(t *testing.T) {
	cart := &entity.Cart{}
	require.NoError(t, cart.AddItem(burger(), 1, ""))

	cart.RemoveItem("does-not-exist")

	require.Len(t, cart.Items, 1)
}

func TestClear(t *testing.T) {
	cart := &entity.Cart{}
	require.NoError(t, cart.AddItem(burger(), 2, "extra"))

	cart.Clear()

	assert.True(t, cart.IsEmpty())
	assert.Equal(t, 0, cart.ItemCount())
	assert.Zero(t, cart.Subtotal())
}

func TestSnapshotIsDecoupled(t *testing.T) {
	cart := &entity.Cart{}
	require.NoError(t, cart.AddItem(burger(), 2, ""))

	snapshot := cart.Snapshot()
	cart.UpdateQuantity("1", 9)
	cart.Items[0].Product.Price = 99.99

	assert.Equal(t, 2, snapshot[0].Quantity)
	assert.InDelta(t, 18.90, snapshot[0].Product.Price, 1e-9)
}

func TestDeliveryFee(t *testing.T) {
	assert.InDelta(t, 3.00, entity.DeliveryDelivery.Fee(), 1e-9)
	assert.Zero(t, entity.DeliveryBalcao.Fee())
	assert.Zero(t, entity.DeliveryDriveThru.Fee())

	// 47.00 subtotal plus the delivery surcharge
	cart := &entity.Cart{}
	require.NoError(t, cart.AddItem(entity.Product{ID: "x", Price: 23.50}, 2, ""))
	assert.InDelta(t, 50.00, cart.Subtotal()+entity.DeliveryDelivery.Fee(), 1e-9)
	assert.InDelta(t, 47.00, cart.Subtotal()+entity.DeliveryBalcao.Fee(), 1e-9)
}

func TestDeliveryMethodValid(t *testing.T) {
	assert.True(t, entity.DeliveryBalcao.Valid())
	assert.True(t, entity.DeliveryDriveThru.Valid())
	assert.True(t, entity.DeliveryDelivery.Valid())
	assert.False(t, entity.DeliveryMethod("mail").Valid())
}
