// internal/state/favorites_test.go
package state

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crownshop/storefront/internal/models"
)

func TestToggleFavoriteInvolution(t *testing.T) {
	store := newTestStore(t)
	favorites := NewFavorites(store)

	hat := testProduct("Crown Hat", 450)

	assert.True(t, favorites.Toggle(hat))
	assert.True(t, favorites.IsFavorite(hat.ID))

	assert.False(t, favorites.Toggle(hat))
	assert.False(t, favorites.IsFavorite(hat.ID))
	assert.Empty(t, favorites.All())
}

func TestFavoritesPersistAcrossRestart(t *testing.T) {
	store := newTestStore(t)

	first := NewFavorites(store)
	hat := testProduct("Crown Hat", 450)
	first.Toggle(hat)

	second := NewFavorites(store)
	assert.True(t, second.IsFavorite(hat.ID))
	require.Len(t, second.All(), 1)
	assert.Equal(t, hat.Name, second.All()[0].Name)
}

func TestToggleOffWritesEmptyList(t *testing.T) {
	store := newTestStore(t)
	favorites := NewFavorites(store)

	hat := testProduct("Crown Hat", 450)
	favorites.Toggle(hat)
	favorites.Toggle(hat)

	// Unlike the cart there is no clear; the empty list stays written.
	assert.True(t, store.Has(KeyFavorites))

	var persisted []models.Product
	assert.True(t, store.Read(KeyFavorites, &persisted))
	assert.Empty(t, persisted)
}

func TestIsFavoriteUnknownProduct(t *testing.T) {
	store := newTestStore(t)
	favorites := NewFavorites(store)

	assert.False(t, favorites.IsFavorite(uuid.New()))
}
