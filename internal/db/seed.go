package db

import (
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/Keoroanthony/storefront/internal/models"
)

// Seed fills an empty catalog. It reports how many products were inserted.
func Seed(conn *gorm.DB) (int, error) {
	var count int64
	if err := conn.Model(&models.Product{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count products: %w", err)
	}
	if count > 0 {
		return 0, nil
	}

	products := catalog()
	if err := conn.CreateInBatches(&products, len(products)).Error; err != nil {
		return 0, fmt.Errorf("failed to seed products: %w", err)
	}
	return len(products), nil
}

func catalog() []models.Product {
	item := func(name, desc, price, picture, brand, kind string, stock int) models.Product {
		return models.Product{
			Name:            name,
			Description:     desc,
			Price:           decimal.RequireFromString(price),
			PictureURL:      "/images/products/" + picture,
			Brand:           brand,
			Type:            kind,
			QuantityInStock: stock,
		}
	}

	return []models.Product{
		item("Angular Speedster Board 2000", "Lorem ipsum dolor sit amet, consectetuer adipiscing elit.", "200.00", "sb-ang1.png", "Angular", "Boards", 100),
		item("Green Angular Board 3000", "Nunc viverra imperdiet enim. Fusce est. Vivamus a tellus.", "150.00", "sb-ang2.png", "Angular", "Boards", 100),
		item("Core Board Speed Rush 3", "Suspendisse dui purus, scelerisque at, vulputate vitae, pretium mattis, nunc.", "180.00", "sb-core1.png", "NetCore", "Boards", 100),
		item("Net Core Super Board", "Pellentesque habitant morbi tristique senectus et netus et malesuada fames.", "300.00", "sb-core2.png", "NetCore", "Boards", 100),
		item("React Board Super Whizzy Fast", "Lorem ipsum dolor sit amet, consectetuer adipiscing elit.", "250.00", "sb-react1.png", "React", "Boards", 100),
		item("Typescript Entry Board", "Aenean nec lorem. In porttitor. Donec laoreet nonummy augue.", "120.00", "sb-ts1.png", "TypeScript", "Boards", 100),
		item("Core Blue Hat", "Fusce posuere, magna sed pulvinar ultricies, purus lectus malesuada libero.", "10.00", "hat-core1.png", "NetCore", "Hats", 100),
		item("Green React Woolen Hat", "Fusce posuere, magna sed pulvinar ultricies, purus lectus malesuada libero.", "8.00", "hat-react1.png", "React", "Hats", 100),
		item("Purple React Woolen Hat", "Fusce posuere, magna sed pulvinar ultricies, purus lectus malesuada libero.", "15.00", "hat-react2.png", "React", "Hats", 100),
		item("Blue Code Gloves", "Fusce posuere, magna sed pulvinar ultricies, purus lectus malesuada libero.", "18.00", "glove-code1.png", "VS Code", "Gloves", 100),
		item("Green Code Gloves", "Fusce posuere, magna sed pulvinar ultricies, purus lectus malesuada libero.", "15.00", "glove-code2.png", "VS Code", "Gloves", 100),
		item("Purple React Gloves", "Fusce posuere, magna sed pulvinar ultricies, purus lectus malesuada libero.", "16.00", "glove-react1.png", "React", "Gloves", 100),
		item("Green React Gloves", "Fusce posuere, magna sed pulvinar ultricies, purus lectus malesuada libero.", "14.00", "glove-react2.png", "React", "Gloves", 100),
		item("Redis Red Boots", "Suspendisse dui purus, scelerisque at, vulputate vitae, pretium mattis, nunc.", "250.00", "boot-redis1.png", "Redis", "Boots", 100),
		item("Core Red Boots", "Suspendisse dui purus, scelerisque at, vulputate vitae, pretium mattis, nunc.", "189.99", "boot-core2.png", "NetCore", "Boots", 100),
		item("Core Purple Boots", "Suspendisse dui purus, scelerisque at, vulputate vitae, pretium mattis, nunc.", "199.99", "boot-core1.png", "NetCore", "Boots", 100),
		item("Angular Purple Boots", "Aenean nec lorem. In porttitor. Donec laoreet nonummy augue.", "150.00", "boot-ang2.png", "Angular", "Boots", 100),
		item("Angular Blue Boots", "Suspendisse dui purus, scelerisque at, vulputate vitae, pretium mattis, nunc.", "180.00", "boot-ang1.png", "Angular", "Boots", 100),
	}
}
