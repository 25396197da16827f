// internal/domain/catalog/data.go
package catalog

// standardBasketPrice is the fixed price of the standard sweets basket in centavos
const standardBasketPrice int64 = 12990

// products is the static storefront catalog. Prices in centavos.
var products = []Product{
	// Chocolates
	{ID: "c1", Name: "Caixa Bombons Finos", Brand: "Lindt", Price: 6990, Category: CategoryChocolate, Image: "https://images.unsplash.com/photo-1620980776848-8531bacde684?auto=format&fit=crop&q=80&w=300"},
	{ID: "c2", Name: "Kit Kat & Trento (Kit)", Brand: "Nestlé/Peccin", Price: 2800, Category: CategoryChocolate, Image: "https://images.unsplash.com/photo-1623066348421-a1e48eb27f12?auto=format&fit=crop&q=80&w=300"},
	{ID: "c3", Name: "Ferrero Rocher Box", Brand: "Ferrero", Price: 3990, Category: CategoryChocolate, Image: "https://images.unsplash.com/photo-1548133547-a8a29367eb78?auto=format&fit=crop&q=80&w=300"},
	{ID: "c4", Name: "Coração de Trufas", Brand: "Kopenhagen", Price: 5500, Category: CategoryChocolate, Image: "https://images.unsplash.com/photo-1549007994-cb92caebd54b?auto=format&fit=crop&q=80&w=300"},

	// Wines & Drinks
	{ID: "w1", Name: "Vinho Tinto Suave", Brand: "Pergola", Price: 4500, Category: CategoryWine, Image: "https://images.unsplash.com/photo-1559563362-c667ba5f5480?auto=format&fit=crop&q=80&w=300"},
	{ID: "w2", Name: "Espumante Rosé", Brand: "Chandon", Price: 11000, Category: CategoryWine, Image: "https://images.unsplash.com/photo-1599305090598-fe179d501227?auto=format&fit=crop&q=80&w=300"},
	{ID: "w3", Name: "Coca-Cola Garrafa Vidro", Brand: "Coca-Cola", Price: 1200, Category: CategoryWine, Image: "https://images.unsplash.com/photo-1622483767028-3f66f32aef97?auto=format&fit=crop&q=80&w=300"},

	// Cosmetics & Make
	{ID: "k1", Name: "Kit Spa & Banho", Brand: "Natura", Price: 8990, Category: CategoryCosmetic, Image: "https://images.unsplash.com/photo-1556228552-523de5147bb6?auto=format&fit=crop&q=80&w=300"},
	{ID: "k2", Name: "Batom & Gloss", Brand: "MAC", Price: 9900, Category: CategoryCosmetic, Image: "https://images.unsplash.com/photo-1631214548051-eb24177579bb?auto=format&fit=crop&q=80&w=300"},
	{ID: "k3", Name: "Paleta Sombras Nude", Brand: "O Boticário", Price: 12990, Category: CategoryCosmetic, Image: "https://images.unsplash.com/photo-1512496015851-a90fb38ba796?auto=format&fit=crop&q=80&w=300"},

	// Lingerie
	{ID: "l1", Name: "Conjunto Renda Sexy", Brand: "Romance", Price: 12990, Category: CategoryLingerie, Image: "https://images.unsplash.com/photo-1632299863773-f1dfb3935294?auto=format&fit=crop&q=80&w=300"},
	{ID: "l2", Name: "Body Rendado", Brand: "Intimissimi", Price: 18000, Category: CategoryLingerie, Image: "https://images.unsplash.com/photo-1563178406-4cdc2923acbc?auto=format&fit=crop&q=80&w=300"},
	{ID: "l3", Name: "Camisola de Seda", Brand: "Valisere", Price: 14000, Category: CategoryLingerie, Image: "https://images.unsplash.com/photo-1583209814683-c91e44a947d2?auto=format&fit=crop&q=80&w=300"},

	// Extras
	{ID: "e1", Name: "Balão Coração Metalizado", Brand: "Festas", Price: 2500, Category: CategoryExtras, Image: "https://images.unsplash.com/photo-1530103862676-de3c9da59af7?auto=format&fit=crop&q=80&w=300"},
	{ID: "e2", Name: "Pelúcia Stitch/Urso", Brand: "Disney/Gen", Price: 7990, Category: CategoryExtras, Image: "https://images.unsplash.com/photo-1598528859737-234b67664741?auto=format&fit=crop&q=80&w=300"},
	{ID: "e3", Name: "Varal de Fotos Polaroid", Brand: "Personalizado", Price: 3500, Category: CategoryExtras, Image: "https://images.unsplash.com/photo-1526047932273-341f2a7631f9?auto=format&fit=crop&q=80&w=300"},
}
