// internal/domain/basket/entity.go
package basket

import (
	"github.com/KarenBrasil/Cestas-Presentes/internal/domain/catalog"
)

// LineItem pairs a catalog product with a positive quantity
type LineItem struct {
	Product  catalog.Product `json:"product"`
	Quantity int             `json:"quantity"`
}

// Options holds the presentation choices recorded at finalization.
// Color is set by the standard flow only.
type Options struct {
	Color   *catalog.BasketColor `json:"selected_color,omitempty"`
	Bouquet catalog.BouquetSize  `json:"bouquet_size"`
}

// Basket is the finalized, priced unit of purchase. It is built once by a
// builder flow and treated as immutable afterwards; its price is a pure
// function of its own fields.
type Basket struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	Description    string     `json:"description"`
	BasePrice      int64      `json:"base_price"` // Price in centavos
	Items          []LineItem `json:"items"`
	IsCustomizable bool       `json:"is_customizable"`
	Image          string     `json:"image"`
	Message        string     `json:"message,omitempty"`
	Options        Options    `json:"options"`
}
