// internal/repository/repository.go
package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/crownshop/storefront/internal/models"
)

var (
	// ErrProductNotFound is returned by reads that match no row.
	ErrProductNotFound = errors.New("product not found")

	// ErrNotPermitted is returned by update/delete calls that matched
	// zero rows. The remote store silently filters rows the caller is
	// not authorized for, so an unmatched write is a permission
	// failure, distinct from a transport error.
	ErrNotPermitted = errors.New("no matching row affected: you might not have permission for this product")

	// ErrNotFound is returned by ownership probes that match no record.
	ErrNotFound = errors.New("record not found")
)

// Catalog is the remote product table. Every call is a network round
// trip that can fail; a single InsertProducts call is applied
// all-or-nothing by the remote store.
type Catalog interface {
	ListProducts(ctx context.Context) ([]models.Product, error)
	GetProduct(ctx context.Context, id uuid.UUID) (*models.Product, error)
	InsertProducts(ctx context.Context, rows []models.Product) ([]models.Product, error)
	UpdateProduct(ctx context.Context, id uuid.UUID, columns map[string]interface{}) error
	DeleteProduct(ctx context.Context, id uuid.UUID) error
}

// Ownership resolves store-admin privileges for a host user identity.
type Ownership interface {
	StoreByOwner(ctx context.Context, ownerID int64) (*models.Store, error)
	StoreAdminByTelegramID(ctx context.Context, telegramID int64) (*models.StoreAdmin, error)
}
