// internal/models/cart.go
package models

// CartItem pairs a product snapshot, denormalized at add-time, with a
// positive quantity. A cart holds at most one item per product id.
// A later catalog price change does not reach items already in carts.
type CartItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}
