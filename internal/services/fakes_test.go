// internal/services/fakes_test.go
package services

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/crownshop/storefront/internal/models"
	"github.com/crownshop/storefront/internal/repository"
)

// fakeCatalog is an in-memory stand-in for the remote product table.
type fakeCatalog struct {
	mu       sync.Mutex
	products []models.Product

	listCalls   int
	insertCalls int

	listErr   error
	insertErr error
	updateErr error
	deleteErr error
}

func (f *fakeCatalog) ListProducts(ctx context.Context) ([]models.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.listCalls++
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]models.Product, len(f.products))
	copy(out, f.products)
	return out, nil
}

func (f *fakeCatalog) GetProduct(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, p := range f.products {
		if p.ID == id {
			found := p
			return &found, nil
		}
	}
	return nil, repository.ErrProductNotFound
}

func (f *fakeCatalog) InsertProducts(ctx context.Context, rows []models.Product) ([]models.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.insertCalls++
	if f.insertErr != nil {
		return nil, f.insertErr
	}

	inserted := make([]models.Product, len(rows))
	for i, row := range rows {
		if row.ID == uuid.Nil {
			row.ID = uuid.New()
		}
		inserted[i] = row
	}
	f.products = append(f.products, inserted...)
	return inserted, nil
}

func (f *fakeCatalog) UpdateProduct(ctx context.Context, id uuid.UUID, columns map[string]interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.updateErr != nil {
		return f.updateErr
	}
	for i := range f.products {
		if f.products[i].ID == id {
			if name, ok := columns["name"].(string); ok {
				f.products[i].Name = name
			}
			if price, ok := columns["price"].(int64); ok {
				f.products[i].Price = price
			}
			return nil
		}
	}
	return repository.ErrNotPermitted
}

func (f *fakeCatalog) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.deleteErr != nil {
		return f.deleteErr
	}
	for i := range f.products {
		if f.products[i].ID == id {
			f.products = append(f.products[:i], f.products[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotPermitted
}

// fakeImageStore records uploads and hands back deterministic URLs.
type fakeImageStore struct {
	mu        sync.Mutex
	uploads   []string
	deleted   []string
	uploadErr error
	deleteErr error
}

func (f *fakeImageStore) Upload(ctx context.Context, data []byte, fileName, contentType string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.uploadErr != nil {
		return "", f.uploadErr
	}
	f.uploads = append(f.uploads, fileName)
	return fmt.Sprintf("https://cdn.example.com/products/%s", fileName), nil
}

func (f *fakeImageStore) Delete(ctx context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, key)
	return nil
}

func (f *fakeImageStore) KeyFromURL(url string) string {
	idx := strings.Index(url, "/products/")
	if idx < 0 {
		return ""
	}
	return "products/" + url[idx+len("/products/"):]
}

func (f *fakeImageStore) uploadCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.uploads)
}

// fakeOwnership answers the gate probes from fixed maps.
type fakeOwnership struct {
	owners map[int64]*models.Store
	admins map[int64]*models.StoreAdmin

	ownerErr error
	adminErr error
}

func (f *fakeOwnership) StoreByOwner(ctx context.Context, ownerID int64) (*models.Store, error) {
	if f.ownerErr != nil {
		return nil, f.ownerErr
	}
	if store, ok := f.owners[ownerID]; ok {
		return store, nil
	}
	return nil, repository.ErrNotFound
}

func (f *fakeOwnership) StoreAdminByTelegramID(ctx context.Context, telegramID int64) (*models.StoreAdmin, error) {
	if f.adminErr != nil {
		return nil, f.adminErr
	}
	if admin, ok := f.admins[telegramID]; ok {
		return admin, nil
	}
	return nil, repository.ErrNotFound
}
