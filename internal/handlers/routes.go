package handlers

import "github.com/gin-gonic/gin"

func Register(api *gin.RouterGroup, products *ProductHandler, basket *BasketHandler) {
	api.GET("/products", products.GetProducts)
	api.GET("/products/:id", products.GetProduct)

	api.GET("/basket", basket.GetBasket)
	api.POST("/basket", basket.AddItemToBasket)
	api.DELETE("/basket", basket.DeleteBasketItem)
}
