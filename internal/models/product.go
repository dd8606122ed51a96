package models

import "github.com/shopspring/decimal"

type Product struct {
	ID              uint            `gorm:"primaryKey" json:"id"`
	Name            string          `gorm:"not null" json:"name"`
	Description     string          `json:"description"`
	Price           decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	PictureURL      string          `json:"pictureUrl"`
	Type            string          `json:"type"`
	Brand           string          `json:"brand"`
	QuantityInStock int             `json:"quantityInStock"`
}
