package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KarenBrasil/Cestas-Presentes/internal/domain/basket"
	"github.com/KarenBrasil/Cestas-Presentes/internal/domain/cart"
	"github.com/KarenBrasil/Cestas-Presentes/internal/domain/catalog"
)

func newEngine() *Engine {
	return NewEngine(catalog.New())
}

func standardBasket(color catalog.BasketColor, bouquet catalog.BouquetSize) basket.Basket {
	return basket.Basket{
		ID:             "std-test",
		BasePrice:      12990,
		IsCustomizable: false,
		Options:        basket.Options{Color: &color, Bouquet: bouquet},
	}
}

func customBasket(bouquet catalog.BouquetSize, items ...basket.LineItem) basket.Basket {
	return basket.Basket{
		ID:             "custom-test",
		BasePrice:      0,
		IsCustomizable: true,
		Items:          items,
		Options:        basket.Options{Bouquet: bouquet},
	}
}

func TestBasketTotalStandardWithSmallBouquet(t *testing.T) {
	// Base 129,90 + small bouquet 45,00 = 174,90
	total := newEngine().BasketTotal(standardBasket(catalog.ColorRed, catalog.BouquetSmall))
	assert.Equal(t, int64(17490), total)
}

func TestBasketTotalCustom(t *testing.T) {
	// 69,90 + 2x28,00 + no bouquet = 125,90
	b := customBasket(catalog.BouquetNone,
		basket.LineItem{Product: catalog.Product{ID: "c1", Price: 6990}, Quantity: 1},
		basket.LineItem{Product: catalog.Product{ID: "c2", Price: 2800}, Quantity: 2},
	)
	assert.Equal(t, int64(12590), newEngine().BasketTotal(b))
}

func TestBasketTotalStandardIgnoresLineItems(t *testing.T) {
	// A non-customizable basket prices by base price only, even if it
	// somehow carries line items.
	b := standardBasket(catalog.ColorLilac, catalog.BouquetNone)
	b.Items = []basket.LineItem{
		{Product: catalog.Product{ID: "w2", Price: 11000}, Quantity: 3},
	}

	assert.Equal(t, int64(12990), newEngine().BasketTotal(b))
}

func TestBasketTotalAbsentBouquetPricesAsNone(t *testing.T) {
	e := newEngine()

	b := customBasket("", basket.LineItem{Product: catalog.Product{Price: 1000}, Quantity: 1})
	assert.Equal(t, int64(1000), e.BasketTotal(b))

	b.Options.Bouquet = catalog.BouquetLarge
	assert.Equal(t, int64(10000), e.BasketTotal(b))
}

func TestBasketTotalNeverNegative(t *testing.T) {
	e := newEngine()

	baskets := []basket.Basket{
		{},
		standardBasket(catalog.ColorRed, catalog.BouquetNone),
		standardBasket(catalog.ColorGreen, catalog.BouquetLarge),
		customBasket(catalog.BouquetNone),
		customBasket(catalog.BouquetSmall,
			basket.LineItem{Product: catalog.Product{Price: 1200}, Quantity: 30}),
	}
	for _, b := range baskets {
		assert.GreaterOrEqual(t, e.BasketTotal(b), int64(0))
	}

	// Standard basket with no bouquet prices exactly at base price
	assert.Equal(t, int64(12990), e.BasketTotal(standardBasket(catalog.ColorRed, catalog.BouquetNone)))
}

func TestCartTotal(t *testing.T) {
	e := newEngine()
	c := cart.New()

	c.Add(standardBasket(catalog.ColorRed, catalog.BouquetSmall)) // 174,90
	c.Add(customBasket(catalog.BouquetNone, // 125,90
		basket.LineItem{Product: catalog.Product{ID: "c1", Price: 6990}, Quantity: 1},
		basket.LineItem{Product: catalog.Product{ID: "c2", Price: 2800}, Quantity: 2},
	))

	assert.Equal(t, int64(30080), e.CartTotal(c))
}

func TestCartTotalMatchesSumOfBasketTotals(t *testing.T) {
	e := newEngine()
	c := cart.New()

	baskets := []basket.Basket{
		standardBasket(catalog.ColorGreen, catalog.BouquetLarge),
		customBasket(catalog.BouquetSmall,
			basket.LineItem{Product: catalog.Product{Price: 4500}, Quantity: 2}),
		customBasket(catalog.BouquetNone,
			basket.LineItem{Product: catalog.Product{Price: 990}, Quantity: 7}),
	}

	var want int64
	for _, b := range baskets {
		c.Add(b)
		want += e.BasketTotal(b)
	}

	require.Equal(t, want, e.CartTotal(c))
	assert.Equal(t, int64(0), e.CartTotal(cart.New()))
}

func TestCartTotalScalesByEntryQuantity(t *testing.T) {
	e := newEngine()
	c := cart.New()
	c.Add(standardBasket(catalog.ColorRed, catalog.BouquetNone))
	c.Items[0].Quantity = 3

	assert.Equal(t, int64(3*12990), e.CartTotal(c))
}
