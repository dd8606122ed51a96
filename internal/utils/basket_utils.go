package utils

import (
	"github.com/shopspring/decimal"

	"github.com/Keoroanthony/storefront/internal/models"
)

type BasketItemDTO struct {
	ProductID  uint            `json:"productId"`
	Name       string          `json:"name"`
	Price      decimal.Decimal `json:"price"`
	PictureURL string          `json:"pictureUrl"`
	Brand      string          `json:"brand"`
	Type       string          `json:"type"`
	Quantity   int             `json:"quantity"`
}

type BasketDTO struct {
	ID      uint            `json:"id"`
	BuyerID string          `json:"buyerId"`
	Items   []BasketItemDTO `json:"items"`
}

// MapBasketToDTO flattens each item with its product's display fields.
func MapBasketToDTO(basket *models.Basket) BasketDTO {
	items := make([]BasketItemDTO, 0, len(basket.Items))
	for _, item := range basket.Items {
		items = append(items, BasketItemDTO{
			ProductID:  item.ProductID,
			Name:       item.Product.Name,
			Price:      item.Product.Price,
			PictureURL: item.Product.PictureURL,
			Brand:      item.Product.Brand,
			Type:       item.Product.Type,
			Quantity:   item.Quantity,
		})
	}

	return BasketDTO{
		ID:      basket.ID,
		BuyerID: basket.BuyerID,
		Items:   items,
	}
}
