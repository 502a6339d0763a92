// internal/state/favorites.go
package state

import (
	"sync"

	"github.com/google/uuid"

	"github.com/crownshop/storefront/internal/localstore"
	"github.com/crownshop/storefront/internal/models"
)

// Favorites holds the shopper's marked products as full snapshots,
// unique by product id. Snapshots may go stale relative to the live
// catalog; nothing refreshes them.
type Favorites struct {
	mu       sync.Mutex
	store    *localstore.Store
	products []models.Product
}

func NewFavorites(store *localstore.Store) *Favorites {
	f := &Favorites{store: store}
	f.store.Read(KeyFavorites, &f.products)
	return f
}

// Toggle removes the product when present, appends its snapshot when
// absent, and reports the resulting membership. Unlike the cart there
// is no bulk clear, so an empty list is written through as an empty
// array rather than removing the key.
func (f *Favorites) Toggle(product models.Product) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	for i, p := range f.products {
		if p.ID == product.ID {
			f.products = append(f.products[:i], f.products[i+1:]...)
			f.persist()
			return false
		}
	}

	f.products = append(f.products, product)
	f.persist()
	return true
}

func (f *Favorites) IsFavorite(productID uuid.UUID) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, p := range f.products {
		if p.ID == productID {
			return true
		}
	}
	return false
}

func (f *Favorites) All() []models.Product {
	f.mu.Lock()
	defer f.mu.Unlock()

	products := make([]models.Product, len(f.products))
	copy(products, f.products)
	return products
}

func (f *Favorites) persist() {
	if f.products == nil {
		f.products = []models.Product{}
	}
	f.store.Write(KeyFavorites, f.products)
}
