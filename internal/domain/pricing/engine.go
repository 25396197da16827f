// internal/domain/pricing/engine.go
package pricing

import (
	"github.com/KarenBrasil/Cestas-Presentes/internal/domain/basket"
	"github.com/KarenBrasil/Cestas-Presentes/internal/domain/cart"
	"github.com/KarenBrasil/Cestas-Presentes/internal/domain/catalog"
)

// Engine computes basket and cart totals from the catalog price tables.
// It is stateless: every total is a pure function of its inputs, in
// integer centavos so display precision is exact.
type Engine struct {
	catalog *catalog.Catalog
}

// NewEngine creates a pricing engine over a catalog
func NewEngine(c *catalog.Catalog) *Engine {
	return &Engine{catalog: c}
}

// BasketTotal computes the total price of a basket in centavos. Line items
// count only for customizable baskets, regardless of how the basket was
// constructed; the bouquet surcharge always applies.
func (e *Engine) BasketTotal(b basket.Basket) int64 {
	total := b.BasePrice
	if b.IsCustomizable {
		for _, item := range b.Items {
			total += item.Product.Price * int64(item.Quantity)
		}
	}
	total += e.catalog.BouquetSurcharge(b.Options.Bouquet)
	return total
}

// CartTotal computes the aggregate total of a cart in centavos
func (e *Engine) CartTotal(c *cart.Cart) int64 {
	var total int64
	for _, entry := range c.Entries() {
		total += e.BasketTotal(entry.Basket) * int64(entry.Quantity)
	}
	return total
}
