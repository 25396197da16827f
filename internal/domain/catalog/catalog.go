// internal/domain/catalog/catalog.go
package catalog

// Category represents a product category in the storefront
type Category string

const (
	CategoryChocolate Category = "Chocolates & Doces"
	CategoryWine      Category = "Vinhos & Bebidas"
	CategoryCosmetic  Category = "Cosméticos & Maquiagem"
	CategoryLingerie  Category = "Lingerie & Moda Íntima"
	CategoryExtras    Category = "Fotos, Ímãs & Pelúcias"
)

// Categories returns all categories in display order
func Categories() []Category {
	return []Category{
		CategoryChocolate,
		CategoryWine,
		CategoryCosmetic,
		CategoryLingerie,
		CategoryExtras,
	}
}

// BouquetSize represents the flower bouquet option attached to a basket
type BouquetSize string

const (
	BouquetNone  BouquetSize = "NENHUM"
	BouquetSmall BouquetSize = "PEQUENO"
	BouquetLarge BouquetSize = "GRANDE"
)

// BasketColor selects the presentation of a standard basket
type BasketColor string

const (
	ColorRed   BasketColor = "VERMELHO"
	ColorGreen BasketColor = "VERDE"
	ColorLilac BasketColor = "LILAS"
)

// colorNames is the total display-name table for standard basket colors
var colorNames = map[BasketColor]string{
	ColorRed:   "Paixão (Vermelho)",
	ColorGreen: "Esperança (Verde)",
	ColorLilac: "Carinho (Lilás)",
}

// DisplayName returns the storefront name for a basket color
func (c BasketColor) DisplayName() string {
	return colorNames[c]
}

// Valid reports whether the color is one of the known values
func (c BasketColor) Valid() bool {
	_, ok := colorNames[c]
	return ok
}

// bouquetSurcharges maps each bouquet size to its surcharge in centavos
var bouquetSurcharges = map[BouquetSize]int64{
	BouquetNone:  0,
	BouquetSmall: 4500,
	BouquetLarge: 9000,
}

// Valid reports whether the size is one of the known values
func (b BouquetSize) Valid() bool {
	_, ok := bouquetSurcharges[b]
	return ok
}

// Product represents a catalog entry
type Product struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Brand       string   `json:"brand"`
	Price       int64    `json:"price"` // Price in centavos
	Category    Category `json:"category"`
	Image       string   `json:"image"`
	Description string   `json:"description,omitempty"`
}

// Catalog holds the static product and pricing reference data.
// It is built once at startup and never mutated.
type Catalog struct {
	products []Product
	byID     map[string]Product
}

// New creates a catalog seeded with the storefront product list
func New() *Catalog {
	byID := make(map[string]Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	return &Catalog{
		products: products,
		byID:     byID,
	}
}

// Products returns all products in declaration order
func (c *Catalog) Products() []Product {
	out := make([]Product, len(c.products))
	copy(out, c.products)
	return out
}

// ProductsByCategory returns the products of a category in declaration
// order. An unknown category yields an empty slice, not an error.
func (c *Catalog) ProductsByCategory(category Category) []Product {
	out := []Product{}
	for _, p := range c.products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

// Product looks up a product by its identifier
func (c *Catalog) Product(id string) (Product, bool) {
	p, ok := c.byID[id]
	return p, ok
}

// BouquetSurcharge returns the surcharge in centavos for a bouquet size.
// Unknown sizes price as no bouquet.
func (c *Catalog) BouquetSurcharge(size BouquetSize) int64 {
	return bouquetSurcharges[size]
}

// StandardBasePrice returns the fixed price of the standard basket in centavos
func (c *Catalog) StandardBasePrice() int64 {
	return standardBasketPrice
}
