// internal/services/catalog_service_test.go
package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crownshop/storefront/internal/models"
	"github.com/crownshop/storefront/internal/repository"
)

func seedProduct(name string, price int64, category, gender string) models.Product {
	return models.Product{
		ID:       uuid.New(),
		Name:     name,
		Price:    price,
		Category: category,
		Gender:   gender,
		ImageURL: "https://cdn.example.com/products/" + name + ".png",
	}
}

func TestListProductsCachesUntilInvalidated(t *testing.T) {
	repo := &fakeCatalog{products: []models.Product{seedProduct("Hat", 450, models.CategoryFashion, "")}}
	svc := NewCatalogService(repo, &fakeImageStore{})

	ctx := context.Background()
	first, err := svc.ListProducts(ctx)
	require.NoError(t, err)
	second, err := svc.ListProducts(ctx)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, repo.listCalls)

	svc.Invalidate()
	_, err = svc.ListProducts(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, repo.listCalls)
}

func TestInsertProductsInvalidatesCache(t *testing.T) {
	repo := &fakeCatalog{}
	svc := NewCatalogService(repo, &fakeImageStore{})
	ctx := context.Background()

	_, err := svc.ListProducts(ctx)
	require.NoError(t, err)

	_, err = svc.InsertProducts(ctx, []models.Product{seedProduct("Hat", 450, models.CategoryFashion, "")})
	require.NoError(t, err)

	listed, err := svc.ListProducts(ctx)
	require.NoError(t, err)
	assert.Len(t, listed, 1)
	assert.Equal(t, 2, repo.listCalls)
}

func TestUpdateProductAppliesPatchOptimistically(t *testing.T) {
	hat := seedProduct("Hat", 450, models.CategoryFashion, "")
	repo := &fakeCatalog{products: []models.Product{hat}}
	svc := NewCatalogService(repo, &fakeImageStore{})
	ctx := context.Background()

	name := "Gold Hat"
	price := int64(500)
	updated, err := svc.UpdateProduct(ctx, hat.ID, &models.ProductPatch{Name: &name, Price: &price})
	require.NoError(t, err)

	assert.Equal(t, "Gold Hat", updated.Name)
	assert.Equal(t, int64(500), updated.Price)
	// Untouched fields keep their fetched values.
	assert.Equal(t, hat.Category, updated.Category)
}

func TestUpdateProductEmptyPatch(t *testing.T) {
	svc := NewCatalogService(&fakeCatalog{}, &fakeImageStore{})

	_, err := svc.UpdateProduct(context.Background(), uuid.New(), &models.ProductPatch{})
	assert.ErrorContains(t, err, "no fields to update")
}

func TestUpdateProductPermissionFailure(t *testing.T) {
	hat := seedProduct("Hat", 450, models.CategoryFashion, "")
	repo := &fakeCatalog{
		products:  []models.Product{hat},
		updateErr: repository.ErrNotPermitted,
	}
	svc := NewCatalogService(repo, &fakeImageStore{})
	ctx := context.Background()

	cachedBefore, err := svc.ListProducts(ctx)
	require.NoError(t, err)

	name := "Stolen Hat"
	_, err = svc.UpdateProduct(ctx, hat.ID, &models.ProductPatch{Name: &name})
	require.ErrorIs(t, err, repository.ErrNotPermitted)

	// The cached listing is untouched: no local patch on failure.
	cachedAfter, err := svc.ListProducts(ctx)
	require.NoError(t, err)
	assert.Equal(t, cachedBefore, cachedAfter)
	assert.Equal(t, "Hat", cachedAfter[0].Name)
	assert.Equal(t, 1, repo.listCalls)
}

func TestDeleteProductCleansUpImage(t *testing.T) {
	hat := seedProduct("Hat", 450, models.CategoryFashion, "")
	repo := &fakeCatalog{products: []models.Product{hat}}
	images := &fakeImageStore{}
	svc := NewCatalogService(repo, images)

	require.NoError(t, svc.DeleteProduct(context.Background(), hat.ID))
	require.Len(t, images.deleted, 1)
	assert.Equal(t, "products/Hat.png", images.deleted[0])
}

func TestDeleteProductSurvivesBlobFailure(t *testing.T) {
	hat := seedProduct("Hat", 450, models.CategoryFashion, "")
	repo := &fakeCatalog{products: []models.Product{hat}}
	images := &fakeImageStore{deleteErr: assert.AnError}
	svc := NewCatalogService(repo, images)

	// The row deletion stands even when the blob cleanup fails.
	assert.NoError(t, svc.DeleteProduct(context.Background(), hat.ID))
	assert.Empty(t, repo.products)
}

func TestFilterProducts(t *testing.T) {
	products := []models.Product{
		seedProduct("Gold Crown", 900, models.CategoryFashion, models.SegmentMen),
		seedProduct("Silver Ring", 300, models.CategoryFashion, models.SegmentWomen),
		seedProduct("Smart Watch", 1200, models.CategoryElectronics, ""),
	}

	assert.Len(t, FilterProducts(products, "", ""), 3)
	assert.Len(t, FilterProducts(products, "All", ""), 3)

	fashion := FilterProducts(products, models.CategoryFashion, "")
	assert.Len(t, fashion, 2)

	// A segment tag matches through the category filter too.
	men := FilterProducts(products, models.SegmentMen, "")
	require.Len(t, men, 1)
	assert.Equal(t, "Gold Crown", men[0].Name)

	// Search is a case-insensitive substring over name and description.
	silver := FilterProducts(products, "", "SILVER")
	require.Len(t, silver, 1)
	assert.Equal(t, "Silver Ring", silver[0].Name)

	assert.Empty(t, FilterProducts(products, models.CategoryElectronics, "crown"))
}
