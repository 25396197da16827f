// internal/interfaces/http/handlers/builder.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/KarenBrasil/Cestas-Presentes/internal/domain/basket"
	"github.com/KarenBrasil/Cestas-Presentes/internal/domain/catalog"
	"github.com/KarenBrasil/Cestas-Presentes/internal/domain/flow"
	"github.com/KarenBrasil/Cestas-Presentes/internal/domain/pricing"
	"github.com/KarenBrasil/Cestas-Presentes/internal/pkg/money"
	"github.com/KarenBrasil/Cestas-Presentes/internal/session"
)

// BuilderHandler handles the custom and standard basket builder flows
type BuilderHandler struct {
	store   session.Store
	catalog *catalog.Catalog
	pricing *pricing.Engine
}

// NewBuilderHandler creates a new builder handler
func NewBuilderHandler(store session.Store, cat *catalog.Catalog, engine *pricing.Engine) *BuilderHandler {
	return &BuilderHandler{store: store, catalog: cat, pricing: engine}
}

// AddItemRequest represents an add to custom basket request
type AddItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
}

// SetMessageRequest represents a gift message update
type SetMessageRequest struct {
	Message string `json:"message"`
}

// SetBouquetRequest represents a bouquet selection update
type SetBouquetRequest struct {
	Bouquet catalog.BouquetSize `json:"bouquet" binding:"required"`
}

// StandardUpdateRequest is a partial update of the standard basket selections
type StandardUpdateRequest struct {
	Color   *catalog.BasketColor `json:"color"`
	Bouquet *catalog.BouquetSize `json:"bouquet"`
	Message *string              `json:"message"`
}

// AddCustomItem handles POST /builder/custom/items
func (h *BuilderHandler) AddCustomItem(c *gin.Context) {
	var req AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "details": err.Error()})
		return
	}

	product, ok := h.catalog.Product(req.ProductID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	state, sessionID, ok := loadSession(c, h.store)
	if !ok {
		return
	}

	state.CustomBuilder.AddItem(product)
	if !saveSession(c, h.store, sessionID, state) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Item added to basket",
		"data":    h.customBuilderResponse(state),
	})
}

// RemoveCustomItem handles DELETE /builder/custom/items/:id
func (h *BuilderHandler) RemoveCustomItem(c *gin.Context) {
	state, sessionID, ok := loadSession(c, h.store)
	if !ok {
		return
	}

	state.CustomBuilder.RemoveItem(c.Param("id"))
	if !saveSession(c, h.store, sessionID, state) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Item removed from basket",
		"data":    h.customBuilderResponse(state),
	})
}

// SetCustomMessage handles PUT /builder/custom/message
func (h *BuilderHandler) SetCustomMessage(c *gin.Context) {
	var req SetMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "details": err.Error()})
		return
	}

	state, sessionID, ok := loadSession(c, h.store)
	if !ok {
		return
	}

	state.CustomBuilder.SetMessage(req.Message)
	if !saveSession(c, h.store, sessionID, state) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Gift message updated"})
}

// SetCustomBouquet handles PUT /builder/custom/bouquet
func (h *BuilderHandler) SetCustomBouquet(c *gin.Context) {
	var req SetBouquetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "details": err.Error()})
		return
	}
	if !req.Bouquet.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown bouquet size"})
		return
	}

	state, sessionID, ok := loadSession(c, h.store)
	if !ok {
		return
	}

	state.CustomBuilder.SetBouquet(req.Bouquet)
	if !saveSession(c, h.store, sessionID, state) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Bouquet updated"})
}

// GetCustomBuilder handles GET /builder/custom
func (h *BuilderHandler) GetCustomBuilder(c *gin.Context) {
	state, _, ok := loadSession(c, h.store)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Builder retrieved successfully",
		"data":    h.customBuilderResponse(state),
	})
}

// FinalizeCustom handles POST /builder/custom/finalize. On success the
// basket goes to the cart and the flow moves to checkout.
func (h *BuilderHandler) FinalizeCustom(c *gin.Context) {
	state, sessionID, ok := loadSession(c, h.store)
	if !ok {
		return
	}

	result, err := state.CustomBuilder.Finalize()
	if err != nil {
		if errors.Is(err, basket.ErrEmptyBasket) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Cesta vazia: adicione ao menos um item"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to finalize basket"})
		return
	}

	h.placeBasket(c, sessionID, state, result)
}

// UpdateStandard handles PUT /builder/standard
func (h *BuilderHandler) UpdateStandard(c *gin.Context) {
	var req StandardUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "details": err.Error()})
		return
	}
	if req.Color != nil && !req.Color.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown basket color"})
		return
	}
	if req.Bouquet != nil && !req.Bouquet.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown bouquet size"})
		return
	}

	state, sessionID, ok := loadSession(c, h.store)
	if !ok {
		return
	}

	if req.Color != nil {
		state.StandardBuilder.SetColor(*req.Color)
	}
	if req.Bouquet != nil {
		state.StandardBuilder.SetBouquet(*req.Bouquet)
	}
	if req.Message != nil {
		state.StandardBuilder.SetMessage(*req.Message)
	}

	if !saveSession(c, h.store, sessionID, state) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Standard basket updated",
		"data":    state.StandardBuilder,
	})
}

// GetStandard handles GET /builder/standard
func (h *BuilderHandler) GetStandard(c *gin.Context) {
	state, _, ok := loadSession(c, h.store)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Builder retrieved successfully",
		"data":    state.StandardBuilder,
	})
}

// FinalizeStandard handles POST /builder/standard/finalize
func (h *BuilderHandler) FinalizeStandard(c *gin.Context) {
	state, sessionID, ok := loadSession(c, h.store)
	if !ok {
		return
	}

	result := state.StandardBuilder.Finalize(h.catalog.StandardBasePrice())
	h.placeBasket(c, sessionID, state, result)
}

// placeBasket adds a finalized basket to the cart and moves the flow to
// checkout.
func (h *BuilderHandler) placeBasket(c *gin.Context, sessionID string, state *session.State, result basket.Basket) {
	state.Cart.Add(result)
	if err := state.Flow.Navigate(flow.ViewCheckout, state.Cart.IsEmpty()); err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}

	if !saveSession(c, h.store, sessionID, state) {
		return
	}

	total := h.pricing.BasketTotal(result)
	c.JSON(http.StatusCreated, gin.H{
		"message": "Basket placed in cart",
		"data": gin.H{
			"basket":          result,
			"total":           total,
			"total_formatted": money.Format(total),
			"view":            state.Flow.Current,
		},
	})
}

type customBuilderResponse struct {
	Items          []basket.LineItem   `json:"items"`
	Message        string              `json:"message"`
	Bouquet        catalog.BouquetSize `json:"bouquet"`
	Total          int64               `json:"total"`
	TotalFormatted string              `json:"total_formatted"`
}

// customBuilderResponse previews the working set priced as if finalized now
func (h *BuilderHandler) customBuilderResponse(state *session.State) customBuilderResponse {
	b := state.CustomBuilder
	preview := basket.Basket{
		IsCustomizable: true,
		Items:          b.Items,
		Options:        basket.Options{Bouquet: b.Bouquet},
	}
	total := h.pricing.BasketTotal(preview)

	return customBuilderResponse{
		Items:          b.Items,
		Message:        b.Message,
		Bouquet:        b.Bouquet,
		Total:          total,
		TotalFormatted: money.Format(total),
	}
}
