// internal/interfaces/http/handlers/flow.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/KarenBrasil/Cestas-Presentes/internal/domain/flow"
	"github.com/KarenBrasil/Cestas-Presentes/internal/session"
)

// FlowHandler handles the storefront navigation state machine
type FlowHandler struct {
	store session.Store
}

// NewFlowHandler creates a new flow handler
func NewFlowHandler(store session.Store) *FlowHandler {
	return &FlowHandler{store: store}
}

// NavigateRequest represents a view change request
type NavigateRequest struct {
	View flow.View `json:"view" binding:"required"`
}

// SetNoteRequest represents an order-level note update
type SetNoteRequest struct {
	Note string `json:"note"`
}

// GetFlow handles GET /flow
func (h *FlowHandler) GetFlow(c *gin.Context) {
	state, _, ok := loadSession(c, h.store)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Flow retrieved successfully",
		"data": gin.H{
			"view":       state.Flow.Current,
			"order_note": state.OrderNote,
			"cart_empty": state.Cart.IsEmpty(),
		},
	})
}

// Navigate handles POST /flow/navigate
func (h *FlowHandler) Navigate(c *gin.Context) {
	var req NavigateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "details": err.Error()})
		return
	}

	state, sessionID, ok := loadSession(c, h.store)
	if !ok {
		return
	}

	h.transition(c, sessionID, state, req.View)
}

// SetNote handles PUT /flow/note
func (h *FlowHandler) SetNote(c *gin.Context) {
	var req SetNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "details": err.Error()})
		return
	}

	state, sessionID, ok := loadSession(c, h.store)
	if !ok {
		return
	}

	state.OrderNote = req.Note
	if !saveSession(c, h.store, sessionID, state) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Order note updated"})
}

// Confirm handles POST /flow/confirm: checkout to order confirmation
func (h *FlowHandler) Confirm(c *gin.Context) {
	state, sessionID, ok := loadSession(c, h.store)
	if !ok {
		return
	}

	h.transition(c, sessionID, state, flow.ViewSuccess)
}

// Finish handles POST /flow/finish: leave the confirmation screen. The
// cart and order note are discarded on the way home.
func (h *FlowHandler) Finish(c *gin.Context) {
	state, sessionID, ok := loadSession(c, h.store)
	if !ok {
		return
	}

	if state.Flow.Current != flow.ViewSuccess {
		c.JSON(http.StatusConflict, gin.H{"error": "No confirmed order to finish"})
		return
	}

	h.transition(c, sessionID, state, flow.ViewHome)
}

// transition applies a navigation with its side effects and writes the
// response. Leaving SUCCESS for HOME clears the cart and the order note.
func (h *FlowHandler) transition(c *gin.Context, sessionID string, state *session.State, to flow.View) {
	from := state.Flow.Current

	if err := state.Flow.Navigate(to, state.Cart.IsEmpty()); err != nil {
		status := http.StatusConflict
		if errors.Is(err, flow.ErrInvalidTransition) && !to.Valid() {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	if from == flow.ViewSuccess && to == flow.ViewHome {
		state.Cart.Clear()
		state.OrderNote = ""
	}

	if !saveSession(c, h.store, sessionID, state) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Navigation successful",
		"data": gin.H{
			"view":       state.Flow.Current,
			"cart_empty": state.Cart.IsEmpty(),
		},
	})
}
