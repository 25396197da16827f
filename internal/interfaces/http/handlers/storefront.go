// internal/interfaces/http/handlers/storefront.go
package handlers

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
)

// StorefrontHandler serves static storefront content
type StorefrontHandler struct{}

// NewStorefrontHandler creates a new storefront handler
func NewStorefrontHandler() *StorefrontHandler {
	return &StorefrontHandler{}
}

type faqEntry struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

var faqs = []faqEntry{
	{
		Question: "Qual o prazo de entrega?",
		Answer:   "Entregamos no mesmo dia para pedidos feitos até as 14h. Para pedidos após esse horário, a entrega é no dia seguinte pela manhã.",
	},
	{
		Question: "Posso escolher a data e horário?",
		Answer:   "Sim! Na finalização do pedido, você pode colocar nas observações a data e turno de preferência.",
	},
	{
		Question: "Quais as formas de pagamento?",
		Answer:   "Aceitamos Pix, Cartão de Crédito e Débito no momento da entrega ou link de pagamento.",
	},
	{
		Question: "As cestas já vêm embaladas?",
		Answer:   "Sim, todas as cestas vão em embalagem de luxo com laço de cetim e cartão personalizado.",
	},
}

const (
	whatsappNumber   = "5585998370928"
	whatsappGreeting = "Olá! Gostaria de tirar uma dúvida sobre as Cestas & Mimos."
)

// GetFAQ handles GET /storefront/faq
func (h *StorefrontHandler) GetFAQ(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "FAQ retrieved successfully",
		"data":    faqs,
	})
}

// GetContact handles GET /storefront/contact
func (h *StorefrontHandler) GetContact(c *gin.Context) {
	link := fmt.Sprintf("https://wa.me/%s?text=%s", whatsappNumber, url.QueryEscape(whatsappGreeting))

	c.JSON(http.StatusOK, gin.H{
		"message": "Contact retrieved successfully",
		"data": gin.H{
			"whatsapp_number": whatsappNumber,
			"whatsapp_link":   link,
		},
	})
}
