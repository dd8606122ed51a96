package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Keoroanthony/storefront/internal/models"
)

type Baskets struct {
	db *gorm.DB
}

func NewBaskets(db *gorm.DB) *Baskets {
	return &Baskets{db: db}
}

func (s *Baskets) FindByBuyer(ctx context.Context, buyerID string) (*models.Basket, error) {
	conn := s.db.WithContext(ctx)

	var basket models.Basket
	err := conn.Where("buyer_id = ?", buyerID).First(&basket).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("basket for buyer %s: %w", buyerID, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load basket: %w", err)
	}

	err = conn.Preload("Product").
		Where("basket_id = ?", basket.ID).
		Order("id").
		Find(&basket.Items).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load basket %d items: %w", basket.ID, err)
	}

	return &basket, nil
}

func (s *Baskets) Save(ctx context.Context, basket *models.Basket) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if basket.ID == 0 {
			if err := tx.Omit(clause.Associations).Create(basket).Error; err != nil {
				return fmt.Errorf("failed to create basket: %w", err)
			}
		}

		kept := make([]uint, 0, len(basket.Items))
		for i := range basket.Items {
			item := &basket.Items[i]
			item.BasketID = basket.ID

			if item.ID == 0 {
				if err := tx.Omit(clause.Associations).Create(item).Error; err != nil {
					return fmt.Errorf("failed to add product %d to basket: %w", item.ProductID, err)
				}
			} else {
				err := tx.Model(&models.BasketItem{}).
					Where("id = ?", item.ID).
					Update("quantity", item.Quantity).Error
				if err != nil {
					return fmt.Errorf("failed to update basket item %d: %w", item.ID, err)
				}
			}
			kept = append(kept, item.ID)
		}

		stale := tx.Where("basket_id = ?", basket.ID)
		if len(kept) > 0 {
			stale = stale.Where("id NOT IN ?", kept)
		}
		if err := stale.Delete(&models.BasketItem{}).Error; err != nil {
			return fmt.Errorf("failed to remove basket items: %w", err)
		}

		return nil
	})
}
