// internal/domain/basket/builder.go
package basket

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/KarenBrasil/Cestas-Presentes/internal/domain/catalog"
)

// ErrEmptyBasket is returned when a custom basket is finalized with no items
var ErrEmptyBasket = errors.New("custom basket has no items")

const (
	customBasketImage   = "https://images.unsplash.com/photo-1549465220-1a8b9238cd48?auto=format&fit=crop&q=80&w=400"
	standardBasketImage = "https://images.unsplash.com/photo-1621406833973-7e4499097e3f?auto=format&fit=crop&q=80&w=400"
)

// CustomBuilder accumulates the working state of the custom basket flow.
// Fields are exported for session snapshotting; mutate through the methods.
type CustomBuilder struct {
	Items   []LineItem          `json:"items"`
	Message string              `json:"message"`
	Bouquet catalog.BouquetSize `json:"bouquet"`
}

// NewCustomBuilder creates an empty custom basket builder
func NewCustomBuilder() *CustomBuilder {
	return &CustomBuilder{
		Items:   []LineItem{},
		Bouquet: catalog.BouquetNone,
	}
}

// AddItem adds one unit of a product to the working set. A product already
// present has its quantity incremented.
func (b *CustomBuilder) AddItem(p catalog.Product) {
	for i := range b.Items {
		if b.Items[i].Product.ID == p.ID {
			b.Items[i].Quantity++
			return
		}
	}
	b.Items = append(b.Items, LineItem{Product: p, Quantity: 1})
}

// RemoveItem removes one unit of a product from the working set. The line
// disappears when its quantity reaches zero. Absent products are a no-op.
func (b *CustomBuilder) RemoveItem(productID string) {
	for i := range b.Items {
		if b.Items[i].Product.ID != productID {
			continue
		}
		if b.Items[i].Quantity > 1 {
			b.Items[i].Quantity--
		} else {
			b.Items = append(b.Items[:i], b.Items[i+1:]...)
		}
		return
	}
}

// Quantity returns the working quantity for a product, zero when absent
func (b *CustomBuilder) Quantity(productID string) int {
	for _, item := range b.Items {
		if item.Product.ID == productID {
			return item.Quantity
		}
	}
	return 0
}

// SetMessage replaces the pending gift message
func (b *CustomBuilder) SetMessage(text string) {
	b.Message = text
}

// SetBouquet replaces the pending bouquet selection
func (b *CustomBuilder) SetBouquet(size catalog.BouquetSize) {
	b.Bouquet = size
}

// Finalize builds an immutable custom Basket from the working set and
// resets the builder. It fails with ErrEmptyBasket when no items were
// selected, leaving the builder untouched.
func (b *CustomBuilder) Finalize() (Basket, error) {
	if len(b.Items) == 0 {
		return Basket{}, ErrEmptyBasket
	}

	items := make([]LineItem, len(b.Items))
	copy(items, b.Items)

	result := Basket{
		ID:             newBasketID("custom"),
		Name:           "Minha Cesta Personalizada",
		Description:    "Cesta exclusiva montada com seus itens favoritos.",
		BasePrice:      0,
		Items:          items,
		IsCustomizable: true,
		Image:          customBasketImage,
		Message:        b.Message,
		Options:        Options{Bouquet: b.Bouquet},
	}

	b.Reset()
	return result, nil
}

// Reset restores the builder to its initial empty state
func (b *CustomBuilder) Reset() {
	b.Items = []LineItem{}
	b.Message = ""
	b.Bouquet = catalog.BouquetNone
}

// StandardBuilder holds the working state of the standard basket flow
type StandardBuilder struct {
	Color   catalog.BasketColor `json:"color"`
	Bouquet catalog.BouquetSize `json:"bouquet"`
	Message string              `json:"message"`
}

// NewStandardBuilder creates a standard builder with the default selections
func NewStandardBuilder() *StandardBuilder {
	return &StandardBuilder{
		Color:   catalog.ColorRed,
		Bouquet: catalog.BouquetNone,
	}
}

// SetColor replaces the chosen basket color
func (b *StandardBuilder) SetColor(color catalog.BasketColor) {
	b.Color = color
}

// SetBouquet replaces the chosen bouquet size
func (b *StandardBuilder) SetBouquet(size catalog.BouquetSize) {
	b.Bouquet = size
}

// SetMessage replaces the pending gift message
func (b *StandardBuilder) SetMessage(text string) {
	b.Message = text
}

// Finalize builds an immutable standard Basket and resets the builder.
// A standard basket is always valid; there is no emptiness constraint.
func (b *StandardBuilder) Finalize(basePrice int64) Basket {
	color := b.Color

	result := Basket{
		ID:             newBasketID("std"),
		Name:           fmt.Sprintf("Cesta Surpresa de Doces - %s", color.DisplayName()),
		Description:    fmt.Sprintf("Seleção especial de doces na cor %s.", strings.ToLower(string(color))),
		BasePrice:      basePrice,
		Items:          []LineItem{},
		IsCustomizable: false,
		Image:          standardBasketImage,
		Message:        b.Message,
		Options:        Options{Color: &color, Bouquet: b.Bouquet},
	}

	b.Reset()
	return result
}

// Reset restores the builder to its default selections
func (b *StandardBuilder) Reset() {
	b.Color = catalog.ColorRed
	b.Bouquet = catalog.BouquetNone
	b.Message = ""
}

// newBasketID generates a session-unique basket identifier. The prefix
// distinguishes custom from standard baskets.
func newBasketID(prefix string) string {
	return fmt.Sprintf("%s-%s", prefix, uuid.New().String())
}
