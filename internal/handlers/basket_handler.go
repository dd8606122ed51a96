package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Keoroanthony/storefront/internal/buyer"
	"github.com/Keoroanthony/storefront/internal/store"
	"github.com/Keoroanthony/storefront/internal/utils"
)

const basketLocation = "/api/basket"

// BasketItemQuery binds ?productId=&quantity= on add and remove.
type BasketItemQuery struct {
	ProductID uint `form:"productId" binding:"required"`
	Quantity  int  `form:"quantity" binding:"required,gt=0"`
}

type BasketHandler struct {
	resolver *buyer.Resolver
	products store.ProductStore
	baskets  store.BasketStore
	logger   *slog.Logger
}

func NewBasketHandler(resolver *buyer.Resolver, products store.ProductStore, baskets store.BasketStore, logger *slog.Logger) *BasketHandler {
	return &BasketHandler{
		resolver: resolver,
		products: products,
		baskets:  baskets,
		logger:   logger,
	}
}

func (h *BasketHandler) GetBasket(c *gin.Context) {
	basket, err := h.resolver.RetrieveBasket(c.Request.Context(), c)
	if isMissingBasket(err) {
		utils.AbortWithProblem(c, http.StatusNotFound, "Basket not found", "")
		return
	}
	if err != nil {
		h.logger.Error("retrieve basket", "error", err)
		utils.AbortWithProblem(c, http.StatusInternalServerError, "Failed to load basket", "")
		return
	}

	c.JSON(http.StatusOK, utils.MapBasketToDTO(basket))
}

func (h *BasketHandler) AddItemToBasket(c *gin.Context) {
	var query BasketItemQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		utils.AbortWithProblem(c, http.StatusBadRequest, "Invalid basket item", err.Error())
		return
	}

	ctx := c.Request.Context()

	product, err := h.products.GetProduct(ctx, query.ProductID)
	if errors.Is(err, store.ErrNotFound) {
		utils.AbortWithProblem(c, http.StatusNotFound, "Product not found", "")
		return
	}
	if err != nil {
		h.logger.Error("get product for basket", "product_id", query.ProductID, "error", err)
		utils.AbortWithProblem(c, http.StatusInternalServerError, "Failed to load product", "")
		return
	}

	basket, err := h.resolver.RetrieveOrCreate(ctx, c)
	if err != nil {
		h.logger.Error("retrieve basket", "error", err)
		utils.AbortWithProblem(c, http.StatusInternalServerError, "Failed to load basket", "")
		return
	}

	if err := basket.AddItem(*product, query.Quantity); err != nil {
		utils.AbortWithProblem(c, http.StatusBadRequest, "Invalid basket item", err.Error())
		return
	}

	if err := h.baskets.Save(ctx, basket); err != nil {
		h.logger.Error("save basket", "buyer_id", basket.BuyerID, "product_id", product.ID, "error", err)
		utils.AbortWithProblem(c, http.StatusBadRequest, "Problem saving item to the basket", "")
		return
	}

	c.Header("Location", basketLocation)
	c.JSON(http.StatusCreated, utils.MapBasketToDTO(basket))
}

func (h *BasketHandler) DeleteBasketItem(c *gin.Context) {
	var query BasketItemQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		utils.AbortWithProblem(c, http.StatusBadRequest, "Invalid basket item", err.Error())
		return
	}

	ctx := c.Request.Context()

	basket, err := h.resolver.RetrieveBasket(ctx, c)
	if isMissingBasket(err) {
		utils.AbortWithProblem(c, http.StatusNotFound, "Basket not found", "")
		return
	}
	if err != nil {
		h.logger.Error("retrieve basket", "error", err)
		utils.AbortWithProblem(c, http.StatusInternalServerError, "Failed to load basket", "")
		return
	}

	if err := basket.RemoveItem(query.ProductID, query.Quantity); err != nil {
		utils.AbortWithProblem(c, http.StatusBadRequest, "Invalid basket item", err.Error())
		return
	}

	if err := h.baskets.Save(ctx, basket); err != nil {
		h.logger.Error("save basket", "buyer_id", basket.BuyerID, "product_id", query.ProductID, "error", err)
		utils.AbortWithProblem(c, http.StatusBadRequest, "Problem removing item from the basket", "")
		return
	}

	c.Status(http.StatusOK)
}

func isMissingBasket(err error) bool {
	return errors.Is(err, buyer.ErrNoBuyerID) || errors.Is(err, store.ErrNotFound)
}
