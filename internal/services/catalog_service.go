// internal/services/catalog_service.go
package services

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"

	"github.com/crownshop/storefront/internal/models"
	"github.com/crownshop/storefront/internal/repository"
)

// CatalogService fronts the remote product table for the storefront
// views and the admin console. The full newest-first listing is cached
// in process and invalidated after every successful admin mutation, so
// storefront reads reflect changes without a full reload.
type CatalogService struct {
	repo   repository.Catalog
	images ImageStore

	mu     sync.Mutex
	cached []models.Product
	valid  bool
	sfg    singleflight.Group // Prevents cache stampede
}

func NewCatalogService(repo repository.Catalog, images ImageStore) *CatalogService {
	return &CatalogService{
		repo:   repo,
		images: images,
	}
}

// ListProducts returns the catalog ordered by creation time descending.
func (s *CatalogService) ListProducts(ctx context.Context) ([]models.Product, error) {
	s.mu.Lock()
	if s.valid {
		products := s.snapshotLocked()
		s.mu.Unlock()
		return products, nil
	}
	s.mu.Unlock()

	// Concurrent misses collapse into one remote fetch
	v, err, _ := s.sfg.Do("products", func() (interface{}, error) {
		products, err := s.repo.ListProducts(ctx)
		if err != nil {
			return nil, err
		}

		s.mu.Lock()
		s.cached = products
		s.valid = true
		products = s.snapshotLocked()
		s.mu.Unlock()

		return products, nil
	})
	if err != nil {
		return nil, err
	}

	return v.([]models.Product), nil
}

func (s *CatalogService) GetProduct(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	return s.repo.GetProduct(ctx, id)
}

// InsertProducts inserts the whole batch in one remote call and
// invalidates the cached listing on success.
func (s *CatalogService) InsertProducts(ctx context.Context, rows []models.Product) ([]models.Product, error) {
	inserted, err := s.repo.InsertProducts(ctx, rows)
	if err != nil {
		return nil, err
	}

	s.Invalidate()
	return inserted, nil
}

// UpdateProduct applies a dirty-checked patch. A zero-affected-row
// update surfaces as repository.ErrNotPermitted and leaves both the
// cache and the returned snapshot untouched. On success the pre-fetched
// snapshot is patched optimistically instead of refetched.
func (s *CatalogService) UpdateProduct(ctx context.Context, id uuid.UUID, patch *models.ProductPatch) (*models.Product, error) {
	columns := patch.Columns()
	if len(columns) == 0 {
		return nil, fmt.Errorf("no fields to update")
	}

	product, err := s.repo.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.repo.UpdateProduct(ctx, id, columns); err != nil {
		return nil, err
	}

	patch.Apply(product)
	s.Invalidate()
	return product, nil
}

// DeleteProduct removes the row and then best-effort deletes the stored
// image blob derived from its URL. A failed blob delete is logged and
// never rolls back the row deletion.
func (s *CatalogService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	product, err := s.repo.GetProduct(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.DeleteProduct(ctx, id); err != nil {
		return err
	}

	if product.ImageURL != "" {
		key := s.images.KeyFromURL(product.ImageURL)
		if key != "" {
			if err := s.images.Delete(ctx, key); err != nil {
				logrus.WithError(err).WithField("key", key).Warn("failed to delete orphaned product image")
			}
		}
	}

	s.Invalidate()
	return nil
}

// ChangeImage uploads a replacement image and patches the product's
// image URL. The previous blob is left in place.
func (s *CatalogService) ChangeImage(ctx context.Context, id uuid.UUID, data []byte, fileName, contentType string) (*models.Product, error) {
	url, err := s.images.Upload(ctx, data, fileName, contentType)
	if err != nil {
		return nil, err
	}

	return s.UpdateProduct(ctx, id, &models.ProductPatch{ImageURL: &url})
}

// Invalidate drops the cached listing; the next read refetches.
func (s *CatalogService) Invalidate() {
	s.mu.Lock()
	s.cached = nil
	s.valid = false
	s.mu.Unlock()
}

func (s *CatalogService) snapshotLocked() []models.Product {
	products := make([]models.Product, len(s.cached))
	copy(products, s.cached)
	return products
}

// FilterProducts applies the grid's client-side filters over a fetched
// listing: a category filter matches the category column or the gender
// segment tag; search is a case-insensitive substring match over name
// and description. "All" and empty select everything.
func FilterProducts(products []models.Product, category, search string) []models.Product {
	filtered := make([]models.Product, 0, len(products))
	search = strings.ToLower(strings.TrimSpace(search))

	for _, p := range products {
		if category != "" && category != "All" &&
			!strings.EqualFold(p.Category, category) && !strings.EqualFold(p.Gender, category) {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(p.Name), search) &&
			!strings.Contains(strings.ToLower(p.Description), search) {
			continue
		}
		filtered = append(filtered, p)
	}

	return filtered
}
