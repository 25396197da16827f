// internal/domain/cart/cart.go
package cart

import (
	"github.com/KarenBrasil/Cestas-Presentes/internal/domain/basket"
)

// Entry pairs a purchased basket with a quantity. Observed usage is always
// quantity 1, but the model supports more.
type Entry struct {
	Basket   basket.Basket `json:"basket"`
	Quantity int           `json:"quantity"`
}

// Cart is the ordered collection of purchased baskets. Insertion order is
// the display order. Baskets are never merged: every finalized basket has
// a distinct identifier.
type Cart struct {
	Items []Entry `json:"items"`
}

// New creates an empty cart
func New() *Cart {
	return &Cart{Items: []Entry{}}
}

// Add appends a basket to the cart with quantity 1
func (c *Cart) Add(b basket.Basket) {
	c.Items = append(c.Items, Entry{Basket: b, Quantity: 1})
}

// Remove deletes the entry whose basket identifier matches. Removing an
// absent basket is a no-op.
func (c *Cart) Remove(basketID string) {
	for i := range c.Items {
		if c.Items[i].Basket.ID == basketID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return
		}
	}
}

// Entries returns the cart entries in insertion order
func (c *Cart) Entries() []Entry {
	out := make([]Entry, len(c.Items))
	copy(out, c.Items)
	return out
}

// Clear empties the cart; used on order confirmation
func (c *Cart) Clear() {
	c.Items = []Entry{}
}

// Len returns the number of entries
func (c *Cart) Len() int {
	return len(c.Items)
}

// IsEmpty reports whether the cart holds no entries
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}
