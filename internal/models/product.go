// internal/models/product.go
package models

import (
	"time"

	"github.com/google/uuid"
)

// Product is a catalog row. The column set is the wire contract shared
// with the mini-app webview, so JSON names mirror the table exactly.
// Prices are whole currency units (ETB).
type Product struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	CreatedAt   time.Time `json:"created_at"`
	Name        string    `json:"name" gorm:"size:255;not null"`
	Description string    `json:"description,omitempty" gorm:"type:text"`
	Price       int64     `json:"price" gorm:"not null"`
	ImageURL    string    `json:"image_url,omitempty" gorm:"column:image_url"`
	Category    string    `json:"category,omitempty" gorm:"size:100;index"`
	Gender      string    `json:"gender,omitempty" gorm:"size:50;index"`
}

// ProductPatch carries the changed fields of an admin edit. Nil fields
// are left untouched so a dirty-checked save only touches what moved.
type ProductPatch struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Price       *int64  `json:"price,omitempty" validate:"omitempty,min=0"`
	ImageURL    *string `json:"image_url,omitempty"`
	Category    *string `json:"category,omitempty"`
	Gender      *string `json:"gender,omitempty"`
}

// Columns returns the patch as a column→value map for the catalog
// update call. Empty patches update nothing.
func (p *ProductPatch) Columns() map[string]interface{} {
	cols := make(map[string]interface{})
	if p.Name != nil {
		cols["name"] = *p.Name
	}
	if p.Description != nil {
		cols["description"] = *p.Description
	}
	if p.Price != nil {
		cols["price"] = *p.Price
	}
	if p.ImageURL != nil {
		cols["image_url"] = *p.ImageURL
	}
	if p.Category != nil {
		cols["category"] = *p.Category
	}
	if p.Gender != nil {
		cols["gender"] = *p.Gender
	}
	return cols
}

// Apply mirrors a successful remote update onto a locally held snapshot.
func (p *ProductPatch) Apply(product *Product) {
	if p.Name != nil {
		product.Name = *p.Name
	}
	if p.Description != nil {
		product.Description = *p.Description
	}
	if p.Price != nil {
		product.Price = *p.Price
	}
	if p.ImageURL != nil {
		product.ImageURL = *p.ImageURL
	}
	if p.Category != nil {
		product.Category = *p.Category
	}
	if p.Gender != nil {
		product.Gender = *p.Gender
	}
}
