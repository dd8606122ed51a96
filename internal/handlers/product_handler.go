package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Keoroanthony/storefront/internal/store"
	"github.com/Keoroanthony/storefront/internal/utils"
)

type ProductHandler struct {
	products store.ProductStore
	logger   *slog.Logger
}

func NewProductHandler(products store.ProductStore, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{products: products, logger: logger}
}

// GetProducts returns the whole catalog, unpaged.
func (h *ProductHandler) GetProducts(c *gin.Context) {
	products, err := h.products.ListProducts(c.Request.Context())
	if err != nil {
		h.logger.Error("list products", "error", err)
		utils.AbortWithProblem(c, http.StatusInternalServerError, "Failed to load products", "")
		return
	}

	c.JSON(http.StatusOK, products)
}

func (h *ProductHandler) GetProduct(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		utils.AbortWithProblem(c, http.StatusBadRequest, "Invalid product id", "")
		return
	}

	product, err := h.products.GetProduct(c.Request.Context(), uint(id))
	if errors.Is(err, store.ErrNotFound) {
		utils.AbortWithProblem(c, http.StatusNotFound, "Product not found", "")
		return
	}
	if err != nil {
		h.logger.Error("get product", "product_id", id, "error", err)
		utils.AbortWithProblem(c, http.StatusInternalServerError, "Failed to load product", "")
		return
	}

	c.JSON(http.StatusOK, product)
}
