package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	catalogapp "github.com/stonique/storefront/internal/catalog/app"
)

type listProductsQuery struct {
	Category string `form:"category"`
	Price    string `form:"price" binding:"omitempty,oneof=all low medium high"`
	Q        string `form:"q"`
}

func (h *handlers) listProducts(c *gin.Context) {
	var q listProductsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "code": "INVALID_ARGUMENT"})
		return
	}

	spec := catalogapp.FilterSpec{
		Category: q.Category,
		Price:    catalogapp.ParseBracket(q.Price),
		Search:   q.Q,
	}

	products, err := h.catalog.Filtered(c.Request.Context(), spec)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"products": products})
}

func (h *handlers) listCategories(c *gin.Context) {
	categories, err := h.catalog.Categories(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}
