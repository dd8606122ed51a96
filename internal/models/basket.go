package models

import (
	"errors"
	"math"
)

var ErrInvalidQuantity = errors.New("quantity must be a positive integer")

// Basket is owned by the buyer token stored in the client's cookie.
type Basket struct {
	ID      uint         `gorm:"primaryKey"`
	BuyerID string       `gorm:"uniqueIndex;not null"`
	Items   []BasketItem `gorm:"foreignKey:BasketID;constraint:OnDelete:CASCADE"`
}

type BasketItem struct {
	ID        uint    `gorm:"primaryKey"`
	BasketID  uint    `gorm:"index;not null"`
	ProductID uint    `gorm:"index;not null"`
	Product   Product `gorm:"constraint:OnDelete:CASCADE"`
	Quantity  int     `gorm:"not null"`
}

// AddItem merges quantity into the existing line for product, or appends a
// new line. Only the in-memory aggregate changes.
func (b *Basket) AddItem(product Product, quantity int) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}

	if item := b.findItem(product.ID); item != nil {
		if item.Quantity > math.MaxInt-quantity {
			return ErrInvalidQuantity
		}
		item.Quantity += quantity
		return nil
	}

	b.Items = append(b.Items, BasketItem{
		BasketID:  b.ID,
		ProductID: product.ID,
		Product:   product,
		Quantity:  quantity,
	})
	return nil
}

// RemoveItem decrements the line for productID and drops it once the
// quantity reaches zero. Absent products are ignored.
func (b *Basket) RemoveItem(productID uint, quantity int) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}

	for i := range b.Items {
		if b.Items[i].ProductID != productID {
			continue
		}
		b.Items[i].Quantity -= quantity
		if b.Items[i].Quantity <= 0 {
			b.Items = append(b.Items[:i], b.Items[i+1:]...)
		}
		return nil
	}
	return nil
}

func (b *Basket) findItem(productID uint) *BasketItem {
	for i := range b.Items {
		if b.Items[i].ProductID == productID {
			return &b.Items[i]
		}
	}
	return nil
}
