package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KarenBrasil/Cestas-Presentes/internal/domain/basket"
	"github.com/KarenBrasil/Cestas-Presentes/internal/domain/catalog"
	"github.com/KarenBrasil/Cestas-Presentes/internal/domain/flow"
)

func TestNewStateDefaults(t *testing.T) {
	s := NewState()

	assert.Equal(t, flow.ViewHome, s.Flow.Current)
	assert.True(t, s.Cart.IsEmpty())
	assert.Empty(t, s.CustomBuilder.Items)
	assert.Equal(t, catalog.ColorRed, s.StandardBuilder.Color)
	assert.Empty(t, s.OrderNote)
}

func TestMemoryStoreLoadUnknownSession(t *testing.T) {
	store := NewMemoryStore()

	state, err := store.Load(context.Background(), "fresh-session")
	require.NoError(t, err)
	assert.Equal(t, flow.ViewHome, state.Flow.Current)
	assert.True(t, state.Cart.IsEmpty())
}

func TestMemoryStoreRequiresSessionID(t *testing.T) {
	_, err := NewMemoryStore().Load(context.Background(), "")
	assert.Error(t, err)
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	state := NewState()
	state.CustomBuilder.AddItem(catalog.Product{ID: "c1", Name: "Bombons", Price: 6990})
	state.CustomBuilder.SetBouquet(catalog.BouquetSmall)
	state.StandardBuilder.SetColor(catalog.ColorLilac)
	state.OrderNote = "Entregar sábado pela manhã"
	state.Cart.Add(basket.Basket{ID: "std-1", BasePrice: 12990})
	require.NoError(t, state.Flow.Navigate(flow.ViewCheckout, false))

	require.NoError(t, store.Save(ctx, "s1", state))

	loaded, err := store.Load(ctx, "s1")
	require.NoError(t, err)

	assert.Equal(t, flow.ViewCheckout, loaded.Flow.Current)
	assert.Equal(t, "Entregar sábado pela manhã", loaded.OrderNote)
	assert.Equal(t, 1, loaded.Cart.Len())
	assert.Equal(t, "std-1", loaded.Cart.Entries()[0].Basket.ID)
	assert.Equal(t, 1, loaded.CustomBuilder.Quantity("c1"))
	assert.Equal(t, catalog.BouquetSmall, loaded.CustomBuilder.Bouquet)
	assert.Equal(t, catalog.ColorLilac, loaded.StandardBuilder.Color)
}

func TestMemoryStoreIsolatesSessions(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	a := NewState()
	a.OrderNote = "sessão A"
	require.NoError(t, store.Save(ctx, "a", a))

	b, err := store.Load(ctx, "b")
	require.NoError(t, err)
	assert.Empty(t, b.OrderNote)
}

func TestMemoryStoreDelete(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	state := NewState()
	state.OrderNote = "alguma coisa"
	require.NoError(t, store.Save(ctx, "s1", state))
	require.NoError(t, store.Delete(ctx, "s1"))

	loaded, err := store.Load(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, loaded.OrderNote, "deleted session loads fresh")
}

func TestSessionKey(t *testing.T) {
	assert.Equal(t, "storefront:session:abc-123", sessionKey("abc-123"))
}
