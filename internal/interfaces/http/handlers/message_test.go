package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KarenBrasil/Cestas-Presentes/internal/config"
	"github.com/KarenBrasil/Cestas-Presentes/internal/interfaces/http/middleware"
	"github.com/KarenBrasil/Cestas-Presentes/internal/pkg/draft"
)

func newMessageRouter(baseURL, apiKey string) *gin.Engine {
	gin.SetMode(gin.TestMode)

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	client := draft.NewClient(config.DraftConfig{
		APIKey:  apiKey,
		BaseURL: baseURL,
		Model:   "gemini-2.5-flash",
		Timeout: 2 * time.Second,
	}, logger)

	router := gin.New()
	router.Use(middleware.Session())
	router.POST("/messages/draft", NewMessageHandler(client).Draft)
	return router
}

func postDraft(t *testing.T, router *gin.Engine, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, json.NewEncoder(&buf).Encode(body))

	req := httptest.NewRequest(http.MethodPost, "/messages/draft", &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Session-ID", "draft-session")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func draftText(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var resp struct {
		Data struct {
			Text string `json:"text"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Data.Text
}

func TestDraftMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"candidates": []map[string]any{
				{"content": map[string]any{"parts": []map[string]any{
					{"text": "Maria, você merece o mundo e mais esta cesta."},
				}}},
			},
		})
	}))
	defer srv.Close()

	router := newMessageRouter(srv.URL, "test-key")
	w := postDraft(t, router, gin.H{"recipient": "Maria", "occasion": "Aniversário"})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Maria, você merece o mundo e mais esta cesta.", draftText(t, w))
}

func TestDraftMessageServiceFailureReturnsFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	router := newMessageRouter(srv.URL, "test-key")
	w := postDraft(t, router, gin.H{"recipient": "Maria", "occasion": "Natal"})

	// Failures still answer 200 with usable fallback text
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, draftText(t, w))
}

func TestDraftMessageRequiresRecipientAndOccasion(t *testing.T) {
	router := newMessageRouter("http://localhost:0", "test-key")

	w := postDraft(t, router, gin.H{"occasion": "Natal"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = postDraft(t, router, gin.H{"recipient": "Maria"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
