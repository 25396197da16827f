// internal/interfaces/http/handlers/cart.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/KarenBrasil/Cestas-Presentes/internal/domain/basket"
	"github.com/KarenBrasil/Cestas-Presentes/internal/domain/pricing"
	"github.com/KarenBrasil/Cestas-Presentes/internal/pkg/money"
	"github.com/KarenBrasil/Cestas-Presentes/internal/session"
)

// CartHandler handles cart endpoints
type CartHandler struct {
	store   session.Store
	pricing *pricing.Engine
}

// NewCartHandler creates a new cart handler
func NewCartHandler(store session.Store, engine *pricing.Engine) *CartHandler {
	return &CartHandler{store: store, pricing: engine}
}

type cartEntryResponse struct {
	Basket         basket.Basket `json:"basket"`
	Quantity       int           `json:"quantity"`
	Total          int64         `json:"total"`
	TotalFormatted string        `json:"total_formatted"`
}

type cartResponse struct {
	Items          []cartEntryResponse `json:"items"`
	ItemCount      int                 `json:"item_count"`
	Total          int64               `json:"total"`
	TotalFormatted string              `json:"total_formatted"`
}

func (h *CartHandler) toCartResponse(state *session.State) cartResponse {
	entries := state.Cart.Entries()
	items := make([]cartEntryResponse, len(entries))
	for i, entry := range entries {
		total := h.pricing.BasketTotal(entry.Basket) * int64(entry.Quantity)
		items[i] = cartEntryResponse{
			Basket:         entry.Basket,
			Quantity:       entry.Quantity,
			Total:          total,
			TotalFormatted: money.Format(total),
		}
	}

	total := h.pricing.CartTotal(state.Cart)
	return cartResponse{
		Items:          items,
		ItemCount:      state.Cart.Len(),
		Total:          total,
		TotalFormatted: money.Format(total),
	}
}

// GetCart handles GET /cart
func (h *CartHandler) GetCart(c *gin.Context) {
	state, _, ok := loadSession(c, h.store)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart retrieved successfully",
		"data":    h.toCartResponse(state),
	})
}

// RemoveBasket handles DELETE /cart/baskets/:id. Removing an absent
// basket is a no-op, not an error.
func (h *CartHandler) RemoveBasket(c *gin.Context) {
	state, sessionID, ok := loadSession(c, h.store)
	if !ok {
		return
	}

	state.Cart.Remove(c.Param("id"))
	if !saveSession(c, h.store, sessionID, state) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Basket removed from cart",
		"data":    h.toCartResponse(state),
	})
}
