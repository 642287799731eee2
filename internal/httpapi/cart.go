package httpapi

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	checkoutapp "github.com/stonique/storefront/internal/checkout/app"
	checkoutadapter "github.com/stonique/storefront/internal/checkout/infra/adapter"
)

type cartLineView struct {
	ID       int     `json:"id"`
	Title    string  `json:"title"`
	Price    float64 `json:"price"`
	Image    string  `json:"image"`
	Category string  `json:"category"`
	Quantity int     `json:"quantity"`
	Selected bool    `json:"selected"`
}

type cartView struct {
	Items      []cartLineView `json:"items"`
	TotalItems int            `json:"totalItems"`
	Subtotal   float64        `json:"subtotal"`
	Pulse      bool           `json:"pulse"`
}

func viewOf(sess *Session) cartView {
	items := sess.Cart.Items()
	lines := make([]cartLineView, 0, len(items))
	for _, it := range items {
		lines = append(lines, cartLineView{
			ID:       it.ID,
			Title:    it.Title,
			Price:    it.Price,
			Image:    it.Image,
			Category: it.Category,
			Quantity: it.Quantity,
			Selected: sess.Selection.Selected(it.ID),
		})
	}
	return cartView{
		Items:      lines,
		TotalItems: sess.Cart.TotalItems(),
		Subtotal:   sess.Cart.Subtotal(),
		Pulse:      sess.Cart.Pulse(),
	}
}

func (h *handlers) getCart(c *gin.Context) {
	c.JSON(http.StatusOK, viewOf(currentSession(c)))
}

type addItemRequest struct {
	ProductID int `json:"productId" binding:"required"`
}

func (h *handlers) addItem(c *gin.Context) {
	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "code": "INVALID_ARGUMENT"})
		return
	}

	product, err := h.catalog.Product(c.Request.Context(), req.ProductID)
	if err != nil {
		writeError(c, err)
		return
	}

	sess := currentSession(c)
	sess.Cart.AddProduct(c.Request.Context(), product)
	c.JSON(http.StatusOK, viewOf(sess))
}

// setQuantityRequest carries no binding constraint on purpose: quantities
// below 1 are a store-level no-op, not a request error.
type setQuantityRequest struct {
	Quantity int `json:"quantity"`
}

func (h *handlers) setQuantity(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid item id", "code": "INVALID_ARGUMENT"})
		return
	}

	var req setQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "code": "INVALID_ARGUMENT"})
		return
	}

	sess := currentSession(c)
	// Quantities below 1 are a documented no-op, not an error.
	sess.Cart.SetQuantity(c.Request.Context(), id, req.Quantity)
	c.JSON(http.StatusOK, viewOf(sess))
}

func (h *handlers) removeItem(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid item id", "code": "INVALID_ARGUMENT"})
		return
	}

	sess := currentSession(c)
	sess.Cart.Remove(c.Request.Context(), id)
	sess.Selection.Deselect(id)
	c.JSON(http.StatusOK, viewOf(sess))
}

func (h *handlers) clearCart(c *gin.Context) {
	sess := currentSession(c)
	sess.Cart.Clear(c.Request.Context())
	sess.Selection.Clear()
	c.JSON(http.StatusOK, viewOf(sess))
}

type selectionRequest struct {
	Action string `json:"action" binding:"required,oneof=toggle all none"`
	ID     int    `json:"id"`
}

func (h *handlers) updateSelection(c *gin.Context) {
	var req selectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "code": "INVALID_ARGUMENT"})
		return
	}

	sess := currentSession(c)
	switch req.Action {
	case "toggle":
		sess.Selection.Toggle(req.ID)
	case "all":
		sess.Selection.SelectAll(sess.Cart.Items())
	case "none":
		sess.Selection.Clear()
	}
	c.JSON(http.StatusOK, viewOf(sess))
}

func (h *handlers) removeSelected(c *gin.Context) {
	sess := currentSession(c)
	sess.Selection.RemoveSelected(c.Request.Context(), sess.Cart)
	c.JSON(http.StatusOK, viewOf(sess))
}

func (h *handlers) summary(c *gin.Context) {
	sess := currentSession(c)

	svc := checkoutapp.NewService(
		checkoutadapter.NewCartServiceReader(sess.Cart),
		checkoutadapter.NewCatalogServiceReader(h.catalog),
		h.shipping,
		0,
	)

	summary, err := svc.Summarize(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}
