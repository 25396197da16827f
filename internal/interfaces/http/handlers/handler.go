// internal/interfaces/http/handlers/handler.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/KarenBrasil/Cestas-Presentes/internal/interfaces/http/middleware"
	"github.com/KarenBrasil/Cestas-Presentes/internal/session"
)

// loadSession resolves the request's session state. On failure it writes
// the error response and returns ok=false.
func loadSession(c *gin.Context, store session.Store) (state *session.State, sessionID string, ok bool) {
	sessionID = middleware.GetSessionID(c)
	if sessionID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Session ID required"})
		return nil, "", false
	}

	state, err := store.Load(c.Request.Context(), sessionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load session"})
		return nil, "", false
	}
	return state, sessionID, true
}

// saveSession persists the session state. On failure it writes the error
// response and returns false.
func saveSession(c *gin.Context, store session.Store, sessionID string, state *session.State) bool {
	if err := store.Save(c.Request.Context(), sessionID, state); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save session"})
		return false
	}
	return true
}
