// internal/interfaces/http/handlers/message.go
package handlers

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"

	"github.com/KarenBrasil/Cestas-Presentes/internal/interfaces/http/middleware"
	"github.com/KarenBrasil/Cestas-Presentes/internal/pkg/draft"
)

// MessageHandler handles gift message draft requests
type MessageHandler struct {
	drafts   *draft.Client
	inFlight sync.Map // sessionID -> struct{}
}

// NewMessageHandler creates a new message handler
func NewMessageHandler(drafts *draft.Client) *MessageHandler {
	return &MessageHandler{drafts: drafts}
}

// Draft handles POST /messages/draft. The response always carries usable
// text: the draft client converts every failure into a fallback message.
// A second draft for the same session while one is pending is rejected.
func (h *MessageHandler) Draft(c *gin.Context) {
	sessionID := middleware.GetSessionID(c)
	if sessionID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Session ID required"})
		return
	}

	var req draft.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "details": err.Error()})
		return
	}

	if _, busy := h.inFlight.LoadOrStore(sessionID, struct{}{}); busy {
		c.JSON(http.StatusConflict, gin.H{"error": "A draft is already being generated"})
		return
	}
	defer h.inFlight.Delete(sessionID)

	text := h.drafts.Generate(c.Request.Context(), req)

	c.JSON(http.StatusOK, gin.H{
		"message": "Draft generated",
		"data":    gin.H{"text": text},
	})
}
