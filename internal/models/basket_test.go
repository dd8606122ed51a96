package models_test

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Keoroanthony/storefront/internal/models"
)

func sampleProduct(id uint) models.Product {
	return models.Product{ID: id, Name: "Board", Price: decimal.RequireFromString("200.00")}
}

func TestAddItem(t *testing.T) {
	t.Run("Appends a new line for an unseen product", func(t *testing.T) {
		basket := models.Basket{ID: 4}

		require.NoError(t, basket.AddItem(sampleProduct(1), 2))

		require.Len(t, basket.Items, 1)
		assert.Equal(t, uint(1), basket.Items[0].ProductID)
		assert.Equal(t, uint(4), basket.Items[0].BasketID)
		assert.Equal(t, 2, basket.Items[0].Quantity)
		assert.Equal(t, "Board", basket.Items[0].Product.Name)
	})

	t.Run("Merges quantities for the same product", func(t *testing.T) {
		basket := models.Basket{}

		require.NoError(t, basket.AddItem(sampleProduct(1), 2))
		require.NoError(t, basket.AddItem(sampleProduct(1), 3))

		require.Len(t, basket.Items, 1)
		assert.Equal(t, 5, basket.Items[0].Quantity)
	})

	t.Run("Keeps separate lines per product", func(t *testing.T) {
		basket := models.Basket{}

		require.NoError(t, basket.AddItem(sampleProduct(1), 1))
		require.NoError(t, basket.AddItem(sampleProduct(2), 1))

		assert.Len(t, basket.Items, 2)
	})

	t.Run("Rejects a merge that would overflow the quantity", func(t *testing.T) {
		basket := models.Basket{}
		require.NoError(t, basket.AddItem(sampleProduct(1), math.MaxInt))

		assert.ErrorIs(t, basket.AddItem(sampleProduct(1), 1), models.ErrInvalidQuantity)

		require.Len(t, basket.Items, 1)
		assert.Equal(t, math.MaxInt, basket.Items[0].Quantity)
	})

	t.Run("Rejects zero and negative quantities", func(t *testing.T) {
		basket := models.Basket{}

		assert.ErrorIs(t, basket.AddItem(sampleProduct(1), 0), models.ErrInvalidQuantity)
		assert.ErrorIs(t, basket.AddItem(sampleProduct(1), -3), models.ErrInvalidQuantity)
		assert.Empty(t, basket.Items)
	})
}

func TestRemoveItem(t *testing.T) {
	t.Run("Decrements quantity", func(t *testing.T) {
		basket := models.Basket{}
		require.NoError(t, basket.AddItem(sampleProduct(1), 5))

		require.NoError(t, basket.RemoveItem(1, 2))

		require.Len(t, basket.Items, 1)
		assert.Equal(t, 3, basket.Items[0].Quantity)
	})

	t.Run("Drops the line when quantity reaches zero", func(t *testing.T) {
		basket := models.Basket{}
		require.NoError(t, basket.AddItem(sampleProduct(1), 2))
		require.NoError(t, basket.AddItem(sampleProduct(2), 1))

		require.NoError(t, basket.RemoveItem(1, 2))

		require.Len(t, basket.Items, 1)
		assert.Equal(t, uint(2), basket.Items[0].ProductID)
	})

	t.Run("Drops the line when removing more than present", func(t *testing.T) {
		basket := models.Basket{}
		require.NoError(t, basket.AddItem(sampleProduct(1), 2))

		require.NoError(t, basket.RemoveItem(1, 10))

		assert.Empty(t, basket.Items)
	})

	t.Run("Ignores products not in the basket", func(t *testing.T) {
		basket := models.Basket{}
		require.NoError(t, basket.AddItem(sampleProduct(1), 2))

		assert.NoError(t, basket.RemoveItem(99, 1))

		require.Len(t, basket.Items, 1)
		assert.Equal(t, 2, basket.Items[0].Quantity)
	})

	t.Run("Rejects non-positive quantities", func(t *testing.T) {
		basket := models.Basket{}
		require.NoError(t, basket.AddItem(sampleProduct(1), 2))

		assert.ErrorIs(t, basket.RemoveItem(1, 0), models.ErrInvalidQuantity)
		assert.Equal(t, 2, basket.Items[0].Quantity)
	})
}
