// internal/pkg/draft/client.go
package draft

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/KarenBrasil/Cestas-Presentes/internal/config"
)

// Tone values accepted by the card assistant
const (
	ToneRomantic = "Romântico"
	ToneFunny    = "Engraçado"
	ToneFormal   = "Formal"
	ToneCaring   = "Carinhoso"
)

// Fallback messages shown when a draft cannot be produced. The message
// field is optional, so the caller always receives usable text instead
// of an error.
const (
	fallbackMissingKey = "Erro: Chave de API não configurada. Por favor, escreva sua mensagem manualmente."
	fallbackCallFailed = "Ocorreu um erro ao gerar a mensagem. Tente novamente."
	fallbackEmptyReply = "Não foi possível gerar a mensagem."
)

// Request describes a gift message draft request
type Request struct {
	Recipient string `json:"recipient" binding:"required"`
	Occasion  string `json:"occasion" binding:"required"`
	Tone      string `json:"tone"`
	Details   string `json:"details"`
}

// Client calls the Gemini text generation API to draft gift card messages
type Client struct {
	config config.DraftConfig
	client *http.Client
	logger *logrus.Logger
}

// NewClient creates a draft client. The HTTP timeout bounds every call;
// expiry is treated like any other failure.
func NewClient(cfg config.DraftConfig, logger *logrus.Logger) *Client {
	return &Client{
		config: cfg,
		client: &http.Client{Timeout: cfg.Timeout},
		logger: logger,
	}
}

// generateContent API structures

type generateContentRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateContentResponse struct {
	Candidates []struct {
		Content struct {
			Parts []part `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// Generate drafts a gift card message. It never returns an error: any
// failure (missing credentials, network error, bad status, empty reply)
// yields a human-readable fallback string instead, since the user can
// always write the message manually.
func (c *Client) Generate(ctx context.Context, req Request) string {
	if c.config.APIKey == "" {
		c.logger.Warn("Draft API key is missing")
		return fallbackMissingKey
	}

	text, err := c.generate(ctx, req)
	if err != nil {
		c.logger.WithError(err).Error("Failed to generate gift message")
		return fallbackCallFailed
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return fallbackEmptyReply
	}
	return text
}

func (c *Client) generate(ctx context.Context, req Request) (string, error) {
	tone := req.Tone
	if tone == "" {
		tone = ToneRomantic
	}

	prompt := fmt.Sprintf(`Escreva uma mensagem curta e emocionante para um cartão de presente.
Destinatário: %s
Ocasião: %s
Tom da mensagem: %s
Detalhes extras: %s

A mensagem deve ter no máximo 300 caracteres. Seja criativo e toque o coração.`,
		req.Recipient, req.Occasion, tone, req.Details)

	body := generateContentRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	}

	jsonData, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("failed to marshal draft request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", c.config.BaseURL, c.config.Model)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create draft request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-goog-api-key", c.config.APIKey)

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("failed to call draft service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("draft service returned status %d", resp.StatusCode)
	}

	var result generateContentResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("failed to decode draft response: %w", err)
	}

	if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 {
		return "", nil
	}
	return result.Candidates[0].Content.Parts[0].Text, nil
}
