// Package store is the persistence boundary for the catalog and baskets.
// Callers always receive fully materialized aggregates.
package store

import (
	"context"
	"errors"

	"github.com/Keoroanthony/storefront/internal/models"
)

var ErrNotFound = errors.New("record not found")

type ProductStore interface {
	ListProducts(ctx context.Context) ([]models.Product, error)
	GetProduct(ctx context.Context, id uint) (*models.Product, error)
	DeleteProduct(ctx context.Context, id uint) error
}

type BasketStore interface {
	// FindByBuyer loads the basket with its items and their products.
	FindByBuyer(ctx context.Context, buyerID string) (*models.Basket, error)
	// Save commits the aggregate: the basket row, every current item, and
	// the deletion of items no longer in the collection.
	Save(ctx context.Context, basket *models.Basket) error
}
