// internal/state/cart.go
package state

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/crownshop/storefront/internal/host"
	"github.com/crownshop/storefront/internal/localstore"
	"github.com/crownshop/storefront/internal/models"
)

// Cart holds a shopper's ordered list of cart items in memory and
// mirrors every mutation to local persistence. The persisted list is
// the session-spanning source; derived totals are recomputed on read
// from the denormalized add-time prices.
type Cart struct {
	mu     sync.Mutex
	store  *localstore.Store
	notify host.Notifier
	items  []models.CartItem
}

func NewCart(store *localstore.Store, notify host.Notifier) *Cart {
	c := &Cart{store: store, notify: notify}
	c.store.Read(KeyCartItems, &c.items)
	return c
}

// Add merges the product into the cart: an existing item's quantity is
// incremented, otherwise a new item is appended. Quantities below one
// are ignored.
func (c *Cart) Add(product models.Product, quantity int) {
	if quantity < 1 {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	merged := false
	for i := range c.items {
		if c.items[i].Product.ID == product.ID {
			c.items[i].Quantity += quantity
			merged = true
			break
		}
	}
	if !merged {
		c.items = append(c.items, models.CartItem{Product: product, Quantity: quantity})
	}

	c.persist()

	plural := ""
	if quantity > 1 {
		plural = "s"
	}
	c.notify.Toast(fmt.Sprintf("Added %d item%s to cart", quantity, plural))
}

// Remove drops the item for productID. Removing an absent product is a
// no-op.
func (c *Cart) Remove(productID uuid.UUID) {
	c.mu.Lock()
	defer c.mu.Unlock()

	filtered := c.items[:0]
	for _, item := range c.items {
		if item.Product.ID != productID {
			filtered = append(filtered, item)
		}
	}
	c.items = filtered
	c.persist()
}

// Clear empties the cart and removes the persisted key entirely, so a
// cleared cart cannot be confused with stale stored data.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = nil
	c.store.Remove(KeyCartItems)
}

func (c *Cart) Items() []models.CartItem {
	c.mu.Lock()
	defer c.mu.Unlock()

	items := make([]models.CartItem, len(c.items))
	copy(items, c.items)
	return items
}

func (c *Cart) TotalItems() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	total := 0
	for _, item := range c.items {
		total += item.Quantity
	}
	return total
}

func (c *Cart) TotalPrice() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	var total int64
	for _, item := range c.items {
		total += item.Product.Price * int64(item.Quantity)
	}
	return total
}

// persist writes through after every mutation; caller holds the lock.
func (c *Cart) persist() {
	c.store.Write(KeyCartItems, c.items)
}
